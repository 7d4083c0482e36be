package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ThemedComponents provides convenience factory functions for creating themed components
// while still allowing manual styling using theme properties
type ThemedComponents struct {
	theme Theme
}

// NewThemedComponents creates a new themed components factory
func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// NewPanelList creates a bordered list for the unit and profile panels
func (tc *ThemedComponents) NewPanelList() *tview.List {
	list := tview.NewList()
	colors := tc.theme.PanelColors()
	border := tc.theme.BorderStyle()

	list.ShowSecondaryText(false)
	list.SetHighlightFullLine(true)
	list.SetBackgroundColor(colors.Background)
	list.SetMainTextColor(colors.Foreground)
	list.SetSelectedTextColor(colors.SelectedFg)
	list.SetSelectedBackgroundColor(colors.SelectedBg)
	list.SetBorderColor(colors.Border)
	list.SetTitleColor(colors.Title)
	list.SetBorder(true)
	list.SetBorderPadding(border.Padding, border.Padding, border.Padding, border.Padding)

	return list
}

// NewMenuList creates a new list specifically styled for pickers
func (tc *ThemedComponents) NewMenuList() *tview.List {
	list := tview.NewList()
	colors := tc.theme.MenuColors()

	list.SetBackgroundColor(colors.Background)
	list.SetMainTextColor(colors.Foreground)
	list.SetSecondaryTextColor(colors.DisabledFg)
	list.SetSelectedTextColor(colors.SelectedFg)
	list.SetSelectedBackgroundColor(colors.SelectedBg)
	list.SetBorderColor(colors.Foreground)
	list.SetTitleColor(colors.Foreground)
	list.SetBorder(true)

	return list
}

// NewModal creates a new modal with theme applied
func (tc *ThemedComponents) NewModal() *tview.Modal {
	modal := tview.NewModal()
	colors := tc.theme.DialogColors()

	modal.SetBackgroundColor(colors.Background)
	modal.SetTextColor(colors.Foreground)
	modal.SetButtonBackgroundColor(colors.ButtonBg)
	modal.SetButtonTextColor(colors.ButtonFg)

	return modal
}

// NewTextArea creates the raw description editor
func (tc *ThemedComponents) NewTextArea() *tview.TextArea {
	area := tview.NewTextArea()
	colors := tc.theme.EditorColors()
	border := tc.theme.BorderStyle()

	area.SetBackgroundColor(colors.Background)
	area.SetTextStyle(tcell.StyleDefault.Background(colors.Background).Foreground(colors.Foreground))
	area.SetSelectedStyle(tcell.StyleDefault.Background(colors.Selection).Foreground(colors.Cursor))
	area.SetBorderColor(colors.Border)
	area.SetTitleColor(border.TitleColor)
	area.SetBorder(true)

	return area
}

// NewPreview creates the text view showing the colored description
func (tc *ThemedComponents) NewPreview() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.EditorColors()
	border := tc.theme.BorderStyle()

	textView.SetDynamicColors(true)
	textView.SetWrap(true)
	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(colors.Border)
	textView.SetTitleColor(border.TitleColor)
	textView.SetBorder(true)

	return textView
}

// NewFlex creates a new flex with theme applied (typically for overlays)
func (tc *ThemedComponents) NewFlex() *tview.Flex {
	flex := tview.NewFlex()
	colors := tc.theme.PanelColors()

	flex.SetBackgroundColor(colors.Background)

	return flex
}

// NewStatusBar creates a new text view styled for status bars
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.StatusColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)

	return textView
}

// NewForm creates a new form with theme applied
func (tc *ThemedComponents) NewForm() *tview.Form {
	form := tview.NewForm()
	colors := tc.theme.DialogColors()

	form.SetBackgroundColor(colors.Background)
	form.SetFieldBackgroundColor(colors.FieldBg)
	form.SetFieldTextColor(colors.FieldFg)
	form.SetLabelColor(colors.Foreground)
	form.SetButtonBackgroundColor(colors.ButtonBg)
	form.SetButtonTextColor(colors.ButtonFg)
	form.SetBorderColor(colors.Border)
	form.SetTitleColor(colors.Title)
	form.SetBorder(true)

	return form
}

// Global factory instance using current theme
var defaultFactory = &ThemedComponents{}

// updateDefaultFactory updates the global factory with current theme
func updateDefaultFactory() {
	defaultFactory.theme = defaultThemeManager.Current()
}

// Convenience functions using global theme
func NewPanelList() *tview.List {
	updateDefaultFactory()
	return defaultFactory.NewPanelList()
}

func NewMenuList() *tview.List {
	updateDefaultFactory()
	return defaultFactory.NewMenuList()
}

func NewModal() *tview.Modal {
	updateDefaultFactory()
	return defaultFactory.NewModal()
}

func NewTextArea() *tview.TextArea {
	updateDefaultFactory()
	return defaultFactory.NewTextArea()
}

func NewPreview() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewPreview()
}

func NewFlex() *tview.Flex {
	updateDefaultFactory()
	return defaultFactory.NewFlex()
}

func NewStatusBar() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewStatusBar()
}

func NewForm() *tview.Form {
	updateDefaultFactory()
	return defaultFactory.NewForm()
}
