package theme

import (
	"github.com/gdamore/tcell/v2"
)

// DOS colors used by the telix theme
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)
	DOSDarkGray  = tcell.NewHexColor(0x808080)
	DOSLightRed  = tcell.NewHexColor(0xFF0000)
	DOSLightCyan = tcell.NewHexColor(0x00FFFF)
	DOSYellow    = tcell.NewHexColor(0xFFFF00)
	DOSGreen     = tcell.NewHexColor(0x00FF00)
	DOSWhite     = tcell.NewHexColor(0xFFFFFF)
)

// TelixTheme implements the classic blue DOS editor look
type TelixTheme struct{}

// NewTelixTheme creates a new Telix theme instance
func NewTelixTheme() *TelixTheme {
	return &TelixTheme{}
}

// Name returns the theme name
func (t *TelixTheme) Name() string {
	return "telix"
}

// DialogColors returns the dialog color scheme
func (t *TelixTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: DOSBlue,
		Foreground: DOSWhite,
		Border:     DOSWhite,
		Title:      DOSWhite,
		SelectedBg: DOSWhite,
		SelectedFg: DOSBlack,
		ButtonBg:   DOSLightGray,
		ButtonFg:   DOSBlack,
		FieldBg:    tcell.NewHexColor(0x000040), // darker blue
		FieldFg:    DOSWhite,
	}
}

// MenuColors returns the picker color scheme
func (t *TelixTheme) MenuColors() MenuColors {
	return MenuColors{
		Background: DOSBlue,
		Foreground: DOSLightGray,
		SelectedBg: DOSRed,
		SelectedFg: DOSWhite,
		DisabledFg: DOSDarkGray,
	}
}

// EditorColors returns the editor color scheme
func (t *TelixTheme) EditorColors() EditorColors {
	return EditorColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Border:     DOSLightGray,
		Cursor:     DOSWhite,
		Selection:  DOSBlue,
	}
}

// StatusColors returns the status bar color scheme
func (t *TelixTheme) StatusColors() StatusColors {
	return StatusColors{
		Background:  DOSBlue,
		Foreground:  DOSLightGray,
		HighlightFg: DOSLightCyan,
		ErrorFg:     DOSLightRed,
		SavedFg:     DOSGreen,
		ModifiedFg:  DOSYellow,
	}
}

// PanelColors returns the panel color scheme
func (t *TelixTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Border:     DOSLightGray,
		Title:      DOSLightGray,
		SelectedBg: DOSLightGray,
		SelectedFg: DOSBlack,
	}
}

// BorderStyle returns the border styling
func (t *TelixTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      DOSLightGray,
		TitleColor: DOSLightGray,
		Padding:    0,
	}
}
