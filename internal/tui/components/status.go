package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rivo/tview"
	"ttsedit/internal/theme"
)

const keyHints = "^S save  ^G generate  ^P color  ^E end tag  ^T template  ^N normalize  ^Q quit  Alt-1..4 panes"

// StatusComponent manages the bottom status bar
type StatusComponent struct {
	wrapper  *tview.TextView
	file     string
	unit     string
	profile  string
	modified bool
	message  string
	isError  bool
}

// NewStatusComponent creates a new status bar component
func NewStatusComponent() *StatusComponent {
	statusBar := theme.NewStatusBar().
		SetTextAlign(tview.AlignLeft).
		SetWrap(false)

	sc := &StatusComponent{wrapper: statusBar}
	sc.UpdateStatus()
	return sc
}

// GetWrapper returns the status bar TextView
func (sc *StatusComponent) GetWrapper() *tview.TextView {
	return sc.wrapper
}

// SetFile shows the save file being edited
func (sc *StatusComponent) SetFile(path string) {
	sc.file = path
	sc.UpdateStatus()
}

// SetSelection shows the current unit and profile
func (sc *StatusComponent) SetSelection(unit, profile string) {
	sc.unit = unit
	sc.profile = profile
	sc.UpdateStatus()
}

// SetModified flags unsaved raw edits
func (sc *StatusComponent) SetModified(modified bool) {
	sc.modified = modified
	sc.UpdateStatus()
}

// Modified reports the unsaved flag
func (sc *StatusComponent) Modified() bool {
	return sc.modified
}

// SetMessage shows an informational message
func (sc *StatusComponent) SetMessage(msg string) {
	sc.message = msg
	sc.isError = false
	sc.UpdateStatus()
}

// SetError shows an error message
func (sc *StatusComponent) SetError(err error) {
	sc.message = err.Error()
	sc.isError = true
	sc.UpdateStatus()
}

// Message returns the last message and whether it was an error
func (sc *StatusComponent) Message() (string, bool) {
	return sc.message, sc.isError
}

// UpdateStatus updates the status bar display
func (sc *StatusComponent) UpdateStatus() {
	colors := theme.Current().StatusColors()
	sc.wrapper.SetTextColor(colors.Foreground)

	var statusText strings.Builder
	statusText.WriteString(" ")
	if sc.file == "" {
		statusText.WriteString("No file")
	} else {
		statusText.WriteString(fmt.Sprintf("[%s]%s[-]", colors.HighlightFg.String(), tview.Escape(filepath.Base(sc.file))))
	}

	if sc.unit != "" {
		statusText.WriteString(" | " + tview.Escape(sc.unit))
		if sc.profile != "" {
			statusText.WriteString(" / " + tview.Escape(sc.profile))
		}
	}

	if sc.modified {
		statusText.WriteString(fmt.Sprintf(" | [%s]modified[-]", colors.ModifiedFg.String()))
	}

	if sc.message != "" {
		color := colors.SavedFg
		if sc.isError {
			color = colors.ErrorFg
		}
		statusText.WriteString(fmt.Sprintf(" | [%s]%s[-]", color.String(), tview.Escape(sc.message)))
	}

	statusText.WriteString("\n " + keyHints)

	sc.wrapper.SetText(statusText.String())
}
