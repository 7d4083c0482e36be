package components

import (
	"github.com/rivo/tview"
	"ttsedit/internal/theme"
)

// EditorComponent is the raw description editor stacked over its preview
type EditorComponent struct {
	area    *tview.TextArea
	preview *tview.TextView
	wrapper *tview.Flex
	palette *theme.Palette

	onChange func()
}

// NewEditorComponent creates the editor. The preview is refreshed after
// every change to the raw text.
func NewEditorComponent(palette *theme.Palette) *EditorComponent {
	ec := &EditorComponent{
		area:    theme.NewTextArea(),
		preview: theme.NewPreview(),
		palette: palette,
	}
	ec.area.SetTitle(" Description ")
	ec.preview.SetTitle(" Preview ")

	ec.area.SetChangedFunc(func() {
		ec.refreshPreview()
		if ec.onChange != nil {
			ec.onChange()
		}
	})

	ec.wrapper = theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ec.area, 0, 1, true).
		AddItem(ec.preview, 0, 1, false)

	return ec
}

// GetWrapper returns the editor layout
func (ec *EditorComponent) GetWrapper() *tview.Flex {
	return ec.wrapper
}

// Area returns the text area for focusing
func (ec *EditorComponent) Area() *tview.TextArea {
	return ec.area
}

// SetChangedFunc is called after every edit of the raw text
func (ec *EditorComponent) SetChangedFunc(handler func()) {
	ec.onChange = handler
}

// SetText replaces the raw text
func (ec *EditorComponent) SetText(text string) {
	ec.area.SetText(text, false)
	ec.refreshPreview()
}

// Text returns the raw text
func (ec *EditorComponent) Text() string {
	return ec.area.GetText()
}

// Preview returns the text currently shown in the preview pane
func (ec *EditorComponent) Preview() string {
	return ec.preview.GetText(false)
}

// Insert puts text at the cursor, replacing any selection
func (ec *EditorComponent) Insert(text string) {
	_, start, end := ec.area.GetSelection()
	ec.area.Replace(start, end, text)
}

func (ec *EditorComponent) refreshPreview() {
	ec.preview.SetText(PreviewText(ec.area.GetText(), ec.palette))
}
