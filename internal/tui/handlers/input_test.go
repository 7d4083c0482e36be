package handlers

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestHandleKeyEvent(t *testing.T) {
	var called []string
	record := func(name string) func() {
		return func() { called = append(called, name) }
	}
	focused := -1

	ih := NewInputHandler(Actions{
		Save:       record("save"),
		Generate:   record("generate"),
		Palette:    record("palette"),
		EndTag:     record("endtag"),
		Template:   record("template"),
		Normalize:  record("normalize"),
		Quit:       record("quit"),
		CloseModal: record("close"),
		Focus:      func(pane int) { focused = pane },
	})

	tests := []struct {
		name  string
		event *tcell.EventKey
		want  string
	}{
		{"ctrl-s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), "save"},
		{"ctrl-g", tcell.NewEventKey(tcell.KeyCtrlG, 0, tcell.ModCtrl), "generate"},
		{"ctrl-p", tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModCtrl), "palette"},
		{"ctrl-e", tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModCtrl), "endtag"},
		{"ctrl-t", tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl), "template"},
		{"ctrl-n", tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl), "normalize"},
		{"ctrl-q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = nil
			assert.Nil(t, ih.HandleKeyEvent(tt.event), "handled keys are consumed")
			assert.Equal(t, []string{tt.want}, called)
		})
	}

	t.Run("alt digits focus panes", func(t *testing.T) {
		assert.Nil(t, ih.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModAlt)))
		assert.Equal(t, 2, focused)
	})

	t.Run("plain runes pass through", func(t *testing.T) {
		called = nil
		event := tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)
		assert.Same(t, event, ih.HandleKeyEvent(event))
		event = tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModAlt)
		assert.Same(t, event, ih.HandleKeyEvent(event))
		assert.Empty(t, called)
	})
}

func TestHandleKeyEvent_Modal(t *testing.T) {
	closed := 0
	saved := 0
	ih := NewInputHandler(Actions{
		Save:       func() { saved++ },
		CloseModal: func() { closed++ },
	})
	ih.SetModalVisible(true)
	assert.True(t, ih.ModalVisible())

	save := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	assert.Same(t, save, ih.HandleKeyEvent(save), "picker owns the keyboard")
	assert.Nil(t, ih.HandleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, 1, closed)
	assert.Equal(t, 0, saved)
}

func TestHandleKeyEvent_MissingAction(t *testing.T) {
	ih := NewInputHandler(Actions{})
	event := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	assert.Same(t, event, ih.HandleKeyEvent(event))
}
