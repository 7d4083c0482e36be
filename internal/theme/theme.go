package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// DialogColors defines color scheme for dialogs and modals
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
	FieldBg    tcell.Color // Input field background
	FieldFg    tcell.Color // Input field text
}

// MenuColors defines color scheme for picker lists
type MenuColors struct {
	Background tcell.Color
	Foreground tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	DisabledFg tcell.Color
}

// EditorColors defines color scheme for the raw description editor and preview
type EditorColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Cursor     tcell.Color
	Selection  tcell.Color
}

// StatusColors defines color scheme for the status bar
type StatusColors struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HighlightFg tcell.Color
	ErrorFg     tcell.Color
	SavedFg     tcell.Color
	ModifiedFg  tcell.Color
}

// PanelColors defines color scheme for the unit and profile panels
type PanelColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
}

// BorderStyle defines border styling options
type BorderStyle struct {
	Color      tcell.Color
	TitleColor tcell.Color
	Padding    int
}

// Theme interface defines all theming properties
type Theme interface {
	Name() string

	DialogColors() DialogColors
	MenuColors() MenuColors
	EditorColors() EditorColors
	StatusColors() StatusColors
	PanelColors() PanelColors

	BorderStyle() BorderStyle
}

// ThemeManager manages theme selection and application
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// DefaultTheme is the theme selected when no configuration says otherwise
const DefaultTheme = "telix"

// NewThemeManager creates a new theme manager
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	tm.RegisterTheme(NewTelixTheme())
	tm.RegisterTheme(NewFeltTheme())

	tm.SetTheme(DefaultTheme)

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Has reports whether a theme with the given name is registered
func (tm *ThemeManager) Has(name string) bool {
	_, exists := tm.themes[name]
	return exists
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the sorted list of available theme names
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme manager instance
var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}
