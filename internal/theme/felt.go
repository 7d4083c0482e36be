package theme

import (
	"github.com/gdamore/tcell/v2"
)

var (
	feltGreen  = tcell.NewHexColor(0x1B3A2B)
	feltDark   = tcell.NewHexColor(0x10241A)
	feltCream  = tcell.NewHexColor(0xEDE6D3)
	feltBrass  = tcell.NewHexColor(0xC6A15B)
	feltWine   = tcell.NewHexColor(0x7A2E2E)
	feltMuted  = tcell.NewHexColor(0x7F8C83)
	feltBright = tcell.NewHexColor(0x56F442)
)

// FeltTheme is a dark green tabletop look
type FeltTheme struct{}

func NewFeltTheme() *FeltTheme {
	return &FeltTheme{}
}

func (t *FeltTheme) Name() string {
	return "felt"
}

func (t *FeltTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: feltGreen,
		Foreground: feltCream,
		Border:     feltBrass,
		Title:      feltBrass,
		SelectedBg: feltBrass,
		SelectedFg: feltDark,
		ButtonBg:   feltBrass,
		ButtonFg:   feltDark,
		FieldBg:    feltDark,
		FieldFg:    feltCream,
	}
}

func (t *FeltTheme) MenuColors() MenuColors {
	return MenuColors{
		Background: feltGreen,
		Foreground: feltCream,
		SelectedBg: feltWine,
		SelectedFg: feltCream,
		DisabledFg: feltMuted,
	}
}

func (t *FeltTheme) EditorColors() EditorColors {
	return EditorColors{
		Background: feltDark,
		Foreground: feltCream,
		Border:     feltBrass,
		Cursor:     feltCream,
		Selection:  feltGreen,
	}
}

func (t *FeltTheme) StatusColors() StatusColors {
	return StatusColors{
		Background:  feltGreen,
		Foreground:  feltCream,
		HighlightFg: feltBrass,
		ErrorFg:     tcell.NewHexColor(0xE85545),
		SavedFg:     feltBright,
		ModifiedFg:  tcell.NewHexColor(0xC6C930),
	}
}

func (t *FeltTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: feltDark,
		Foreground: feltCream,
		Border:     feltMuted,
		Title:      feltBrass,
		SelectedBg: feltBrass,
		SelectedFg: feltDark,
	}
}

func (t *FeltTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      feltMuted,
		TitleColor: feltBrass,
		Padding:    0,
	}
}
