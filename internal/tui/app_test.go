package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ttsedit/internal/assets"
	"ttsedit/internal/database"
	"ttsedit/internal/description"
	"ttsedit/internal/markup"
)

type memoryHistory struct {
	edits []database.Edit
}

func (m *memoryHistory) RecordEdit(edit database.Edit) error {
	m.edits = append(m.edits, edit)
	return nil
}

func (m *memoryHistory) Edits(string, int) ([]database.Edit, error) {
	return m.edits, nil
}

func (m *memoryHistory) Close() error { return nil }

func newTestApp(t *testing.T) (*EditorApp, *memoryHistory, string) {
	t.Helper()
	data, err := os.ReadFile("../assets/testdata/army.json")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "army.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	lib, err := assets.OpenFile(path)
	require.NoError(t, err)

	history := &memoryHistory{}
	return NewApplication(Options{Library: lib, History: history, Backup: true}), history, path
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func TestNewApplication_SelectsFirstUnit(t *testing.T) {
	ea, _, _ := newTestApp(t)

	assert.Equal(t, 0, ea.unitIndex)
	assert.Equal(t, 0, ea.profileIndex)
	assert.Equal(t, 4, ea.panelComponent.Units().GetItemCount())
	assert.Equal(t, 1, ea.panelComponent.Profiles().GetItemCount())

	unit := ea.library.Units()[0]
	assert.Equal(t, "aggressor squad", unit.Name)
	assert.Equal(t, unit.Profiles[0].Description, ea.editorComponent.Text())
	assert.Contains(t, ea.editorComponent.Preview(), "[#7bc596]")
	assert.False(t, ea.statusComponent.Modified())

	d := ea.formComponent.Description()
	require.Len(t, d.RangedWeapons, 1)
	assert.Equal(t, "Flamestorm gauntlets", d.RangedWeapons[0].Name)
}

func TestSelectUnit_LoadsProfiles(t *testing.T) {
	ea, _, _ := newTestApp(t)

	ea.selectUnit(2)
	assert.Equal(t, 3, ea.panelComponent.Profiles().GetItemCount())
	label, _ := ea.panelComponent.Profiles().GetItemText(0)
	assert.Equal(t, "Standard (×2)", label)

	ea.selectProfile(1)
	assert.Equal(t, 1, ea.profileIndex)
	assert.Equal(t, []string{"Leader"}, ea.formComponent.Description().Abilities)

	ea.selectProfile(7)
	assert.Equal(t, 1, ea.profileIndex, "out of range selection ignored")
}

func TestSave_WritesEveryObjectAndJournals(t *testing.T) {
	ea, history, path := newTestApp(t)
	ea.selectUnit(2)

	ea.replaceText("rewritten")
	assert.True(t, ea.statusComponent.Modified())

	assert.Nil(t, ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlS)))

	require.Len(t, history.edits, 1)
	edit := history.edits[0]
	assert.Equal(t, "Intercessor Squad", edit.Unit)
	assert.Equal(t, []int{0, 1}, edit.Indices)
	assert.Equal(t, "rewritten", edit.After)
	assert.False(t, ea.statusComponent.Modified())
	msg, isErr := ea.statusComponent.Message()
	assert.False(t, isErr)
	assert.Equal(t, "Saved 2 object(s)", msg)

	reloaded, err := assets.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", reloaded.Description(0))
	assert.Equal(t, "rewritten", reloaded.Description(1))

	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)

	// saving the same text again is not journaled
	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlS))
	assert.Len(t, history.edits, 1)
}

func TestSave_FailedWriteNotJournaled(t *testing.T) {
	ea, history, path := newTestApp(t)
	ea.replaceText("rewritten")
	require.NoError(t, os.RemoveAll(filepath.Dir(path)))

	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlS))

	msg, isErr := ea.statusComponent.Message()
	assert.True(t, isErr)
	assert.Contains(t, msg, "writing "+path)
	assert.Empty(t, history.edits)
}

func TestPalettePicker_InsertsTag(t *testing.T) {
	ea, _, _ := newTestApp(t)
	first := ea.palette.Known()[0]

	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlP))
	list, ok := ea.app.GetFocus().(*tview.List)
	require.True(t, ok)
	list.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})

	assert.False(t, ea.inputHandler.ModalVisible())
	assert.Contains(t, ea.editorComponent.Text(), markup.Tag(first.Code))
	msg, isErr := ea.statusComponent.Message()
	assert.False(t, isErr)
	assert.Equal(t, "Inserted "+first.Name+" tag", msg)
}

func TestNormalize(t *testing.T) {
	ea, _, _ := newTestApp(t)
	ea.selectUnit(1)
	original := ea.editorComponent.Text()

	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlN))
	assert.Equal(t, description.Normalize(original), ea.editorComponent.Text())
	assert.True(t, ea.statusComponent.Modified())

	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlN))
	msg, _ := ea.statusComponent.Message()
	assert.Equal(t, "Already canonical", msg)
}

func TestGenerate(t *testing.T) {
	ea, _, _ := newTestApp(t)
	ea.selectUnit(1)
	ea.formComponent.AddWeapon(description.Ranged)

	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlG))
	assert.Equal(t, description.Render(ea.formComponent.Description()), ea.editorComponent.Text())
	assert.Contains(t, ea.editorComponent.Text(), "Ranged weapons")
	assert.True(t, ea.statusComponent.Modified())
}

func TestPickers_OpenAndClose(t *testing.T) {
	ea, _, _ := newTestApp(t)

	for _, k := range []tcell.Key{tcell.KeyCtrlP, tcell.KeyCtrlT} {
		ea.inputHandler.HandleKeyEvent(key(k))
		assert.True(t, ea.inputHandler.ModalVisible())
		assert.True(t, ea.pages.HasPage(pageModal))

		assert.Nil(t, ea.inputHandler.HandleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
		assert.False(t, ea.inputHandler.ModalVisible())
		assert.False(t, ea.pages.HasPage(pageModal))
	}
}

func TestNoLibrary(t *testing.T) {
	ea := NewApplication(Options{})

	ea.inputHandler.HandleKeyEvent(key(tcell.KeyCtrlS))
	msg, isErr := ea.statusComponent.Message()
	assert.True(t, isErr)
	assert.Equal(t, "nothing selected", msg)
}
