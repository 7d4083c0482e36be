package components

import (
	"github.com/rivo/tview"
	"ttsedit/internal/theme"
)

// ModalList is a centered picker list shown as its own page
type ModalList struct {
	list     *tview.List
	title    string
	items    []string
	callback func(int)
}

// NewModalList creates a picker; callback receives the chosen index
func NewModalList(title string, items []string, callback func(int)) *ModalList {
	ml := &ModalList{
		title:    title,
		items:    items,
		callback: callback,
	}

	ml.setupComponents()
	return ml
}

func (ml *ModalList) setupComponents() {
	ml.list = theme.NewMenuList()
	ml.list.SetTitle(" " + ml.title + " ")
	ml.list.SetTitleAlign(tview.AlignLeft)
	ml.list.ShowSecondaryText(false)

	for i, item := range ml.items {
		i := i
		ml.list.AddItem(item, "", 0, func() {
			if ml.callback != nil {
				ml.callback(i)
			}
		})
	}
}

// GetView returns the list centered in a transparent frame
func (ml *ModalList) GetView() tview.Primitive {
	width := len(ml.title) + 6
	for _, item := range ml.items {
		if w := tview.TaggedStringWidth(item) + 4; w > width {
			width = w
		}
	}

	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(ml.list, len(ml.items)+2, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

// GetList returns the internal list component
func (ml *ModalList) GetList() *tview.List {
	return ml.list
}

// SetDoneFunc sets the function to call when the picker is dismissed
func (ml *ModalList) SetDoneFunc(handler func()) {
	ml.list.SetDoneFunc(handler)
}
