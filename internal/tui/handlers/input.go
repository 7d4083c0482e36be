package handlers

import (
	"github.com/gdamore/tcell/v2"
	"ttsedit/internal/log"
)

// Actions are the editor operations bound to keys. Nil entries are skipped.
type Actions struct {
	Save       func()
	Generate   func()
	Palette    func()
	EndTag     func()
	Template   func()
	Normalize  func()
	Quit       func()
	Focus      func(pane int)
	CloseModal func()
}

// InputHandler maps global key events to editor actions
type InputHandler struct {
	actions      Actions
	modalVisible bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(actions Actions) *InputHandler {
	return &InputHandler{actions: actions}
}

// SetModalVisible sets the modal visibility state
func (ih *InputHandler) SetModalVisible(visible bool) {
	ih.modalVisible = visible
}

// ModalVisible reports whether a picker is open
func (ih *InputHandler) ModalVisible() bool {
	return ih.modalVisible
}

// HandleKeyEvent consumes the keys it handles and passes the rest on
func (ih *InputHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if ih.modalVisible {
		return ih.handleModalInput(event)
	}

	if event.Key() == tcell.KeyRune && event.Modifiers()&tcell.ModAlt != 0 {
		if r := event.Rune(); r >= '1' && r <= '4' {
			return ih.run(event, func() {
				if ih.actions.Focus != nil {
					ih.actions.Focus(int(r - '1'))
				}
			})
		}
		return event
	}

	switch event.Key() {
	case tcell.KeyCtrlS:
		return ih.run(event, ih.actions.Save)
	case tcell.KeyCtrlG:
		return ih.run(event, ih.actions.Generate)
	case tcell.KeyCtrlP:
		return ih.run(event, ih.actions.Palette)
	case tcell.KeyCtrlE:
		return ih.run(event, ih.actions.EndTag)
	case tcell.KeyCtrlT:
		return ih.run(event, ih.actions.Template)
	case tcell.KeyCtrlN:
		return ih.run(event, ih.actions.Normalize)
	case tcell.KeyCtrlQ:
		return ih.run(event, ih.actions.Quit)
	}

	return event
}

// handleModalInput lets the picker see every key except Esc
func (ih *InputHandler) handleModalInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		return ih.run(event, ih.actions.CloseModal)
	}
	return event
}

func (ih *InputHandler) run(event *tcell.EventKey, action func()) *tcell.EventKey {
	if action == nil {
		return event
	}
	log.Debug("key action", "key", event.Name())
	action()
	return nil
}
