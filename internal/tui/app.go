// Package tui is the terminal editor for unit descriptions in a save file.
package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"ttsedit/internal/assets"
	"ttsedit/internal/database"
	"ttsedit/internal/description"
	"ttsedit/internal/log"
	"ttsedit/internal/markup"
	"ttsedit/internal/theme"
	"ttsedit/internal/tui/components"
	"ttsedit/internal/tui/handlers"
)

const (
	pageMain  = "main"
	pageModal = "modal"
)

// Focusable panes, in Alt-1..Alt-4 order
const (
	PaneUnits = iota
	PaneProfiles
	PaneEditor
	PaneForm
)

// Options configure a new editor
type Options struct {
	Library *assets.Library
	History database.History
	Palette *theme.Palette
	Backup  bool
}

// EditorApp represents the main tview application
type EditorApp struct {
	app     *tview.Application
	pages   *tview.Pages
	grid    *tview.Grid
	library *assets.Library
	history database.History
	palette *theme.Palette
	backup  bool

	panelComponent  *components.PanelComponent
	editorComponent *components.EditorComponent
	formComponent   *components.FormComponent
	statusComponent *components.StatusComponent

	inputHandler *handlers.InputHandler

	unitIndex    int
	profileIndex int
	loading      bool
}

// NewApplication creates and configures the tview application
func NewApplication(opts Options) *EditorApp {
	if opts.History == nil {
		opts.History = database.Nop{}
	}
	if opts.Palette == nil {
		opts.Palette = theme.NewPalette()
	}

	ea := &EditorApp{
		app:             tview.NewApplication(),
		library:         opts.Library,
		history:         opts.History,
		palette:         opts.Palette,
		backup:          opts.Backup,
		panelComponent:  components.NewPanelComponent(),
		editorComponent: components.NewEditorComponent(opts.Palette),
		formComponent:   components.NewFormComponent(),
		statusComponent: components.NewStatusComponent(),
		unitIndex:       -1,
		profileIndex:    -1,
	}

	ea.setupUI()
	ea.setupInputHandling()
	ea.loadLibrary()

	return ea
}

// setupUI configures the user interface layout
func (ea *EditorApp) setupUI() {
	ea.grid = tview.NewGrid().
		SetRows(0, 2).
		SetColumns(30, 0, 44).
		SetBorders(false)

	ea.grid.AddItem(ea.panelComponent.GetWrapper(), 0, 0, 1, 1, 0, 0, true)
	ea.grid.AddItem(ea.editorComponent.GetWrapper(), 0, 1, 1, 1, 0, 0, false)
	ea.grid.AddItem(ea.formComponent.GetView(), 0, 2, 1, 1, 0, 0, false)
	ea.grid.AddItem(ea.statusComponent.GetWrapper(), 1, 0, 1, 3, 0, 0, false)

	ea.pages = tview.NewPages()
	ea.pages.AddPage(pageMain, ea.grid, true, true)

	ea.app.SetRoot(ea.pages, true)
}

// setupInputHandling wires the components and global keys together
func (ea *EditorApp) setupInputHandling() {
	ea.panelComponent.SetHandlers(ea.selectUnit, ea.selectProfile)

	ea.editorComponent.SetChangedFunc(func() {
		if !ea.loading && !ea.statusComponent.Modified() {
			ea.statusComponent.SetModified(true)
		}
	})

	ea.formComponent.SetGenerateFunc(func(text string) {
		ea.replaceText(text)
		ea.statusComponent.SetMessage("Generated from form")
	})

	ea.inputHandler = handlers.NewInputHandler(handlers.Actions{
		Save:       ea.save,
		Generate:   func() { ea.formComponent.Generate() },
		Palette:    ea.showPalette,
		EndTag:     func() { ea.editorComponent.Insert(markup.EndMarker) },
		Template:   ea.showTemplates,
		Normalize:  ea.normalize,
		Quit:       ea.exit,
		Focus:      ea.focus,
		CloseModal: ea.closeModal,
	})

	ea.app.SetInputCapture(ea.inputHandler.HandleKeyEvent)
}

// Run starts the TUI application
func (ea *EditorApp) Run() error {
	return ea.app.Run()
}

func (ea *EditorApp) loadLibrary() {
	if ea.library == nil {
		ea.statusComponent.SetMessage("No save file loaded")
		return
	}

	ea.statusComponent.SetFile(ea.library.Path())
	units := ea.library.Units()
	ea.panelComponent.SetUnits(units)
	if len(units) == 0 {
		ea.statusComponent.SetMessage("No units in save file")
		return
	}
	ea.selectUnit(0)
}

// selectUnit shows the unit's profiles and loads the first one
func (ea *EditorApp) selectUnit(index int) {
	if ea.library == nil || index < 0 || index >= len(ea.library.Units()) {
		return
	}
	unit := ea.library.Units()[index]
	ea.unitIndex = index
	ea.panelComponent.SetProfiles(unit.Profiles)
	ea.selectProfile(0)
}

// selectProfile loads a profile into the editor, preview and form
func (ea *EditorApp) selectProfile(index int) {
	if ea.library == nil {
		return
	}
	unit, profile, err := ea.library.Profile(ea.unitIndex, index)
	if err != nil {
		log.Debug("profile selection ignored", "unit", ea.unitIndex, "profile", index, "error", err)
		return
	}
	ea.profileIndex = index

	ea.loading = true
	ea.editorComponent.SetText(profile.Description)
	ea.loading = false

	ea.formComponent.Load(profile.Parsed())
	ea.statusComponent.SetSelection(unit.Name, profile.Label())
	ea.statusComponent.SetModified(false)
	log.Debug("profile loaded", "unit", unit.Name, "profile", profile.Name, "objects", profile.Count())
}

// save writes the raw text into every object of the profile, journals the
// change and writes the save file
func (ea *EditorApp) save() {
	if ea.library == nil || ea.profileIndex < 0 {
		ea.statusComponent.SetError(fmt.Errorf("nothing selected"))
		return
	}

	edit, err := ea.library.SaveProfile(ea.unitIndex, ea.profileIndex, ea.editorComponent.Text())
	if err != nil {
		log.Error("save profile failed", "error", err)
		ea.statusComponent.SetError(err)
		return
	}

	if ea.library.Path() != "" {
		if err := ea.library.Save(ea.backup); err != nil {
			log.Error("writing save file failed", "file", ea.library.Path(), "error", err)
			ea.statusComponent.SetError(fmt.Errorf("writing %s: %w", ea.library.Path(), err))
			return
		}
	}

	// journal only what reached disk
	if edit.Changed() {
		if err := ea.history.RecordEdit(edit); err != nil {
			log.Warn("journal write failed", "error", err)
		}
	}

	unit := ea.library.Units()[ea.unitIndex]
	ea.panelComponent.RefreshProfileLabels(unit.Profiles)
	ea.formComponent.Load(description.Parse(edit.After))
	ea.statusComponent.SetModified(false)
	ea.statusComponent.SetMessage(fmt.Sprintf("Saved %d object(s)", len(edit.Indices)))
	log.Info("profile saved", "unit", edit.Unit, "profile", edit.Profile, "objects", len(edit.Indices))
}

// normalize rewrites the raw text in canonical form
func (ea *EditorApp) normalize() {
	text := ea.editorComponent.Text()
	normalized := description.Normalize(text)
	if normalized == text {
		ea.statusComponent.SetMessage("Already canonical")
		return
	}
	ea.replaceText(normalized)
	ea.formComponent.Load(description.Parse(normalized))
	ea.statusComponent.SetMessage("Normalized")
}

func (ea *EditorApp) replaceText(text string) {
	changed := text != ea.editorComponent.Text()
	ea.loading = true
	ea.editorComponent.SetText(text)
	ea.loading = false
	if changed {
		ea.statusComponent.SetModified(true)
	}
}

// showPalette offers the known colors and inserts the chosen tag
func (ea *EditorApp) showPalette() {
	colors := ea.palette.Known()
	items := make([]string, len(colors))
	for i, c := range colors {
		items[i] = fmt.Sprintf("[%s]■[-] %s (%s)", c.Color.String(), c.Name, c.Code)
	}

	ea.showModal("Colors", items, func(index int) {
		ea.closeModal()
		code := colors[index].Code
		ea.editorComponent.Insert(markup.Tag(code))
		ea.statusComponent.SetMessage("Inserted " + ea.palette.Name(code) + " tag")
	})
}

// showTemplates offers a skeleton per section
func (ea *EditorApp) showTemplates() {
	items := make([]string, len(description.AllSections))
	for i, section := range description.AllSections {
		items[i] = strings.ToUpper(section.String()[:1]) + section.String()[1:]
	}

	ea.showModal("Templates", items, func(index int) {
		ea.closeModal()
		ea.editorComponent.Insert(description.Template(description.AllSections[index]))
	})
}

func (ea *EditorApp) showModal(title string, items []string, callback func(int)) {
	modal := components.NewModalList(title, items, callback)
	modal.SetDoneFunc(ea.closeModal)

	ea.inputHandler.SetModalVisible(true)
	ea.pages.AddPage(pageModal, modal.GetView(), true, true)
	ea.app.SetFocus(modal.GetList())
}

func (ea *EditorApp) closeModal() {
	if !ea.inputHandler.ModalVisible() {
		return
	}
	ea.inputHandler.SetModalVisible(false)
	ea.pages.RemovePage(pageModal)
	ea.app.SetFocus(ea.editorComponent.Area())
}

func (ea *EditorApp) focus(pane int) {
	switch pane {
	case PaneUnits:
		ea.app.SetFocus(ea.panelComponent.Units())
	case PaneProfiles:
		ea.app.SetFocus(ea.panelComponent.Profiles())
	case PaneEditor:
		ea.app.SetFocus(ea.editorComponent.Area())
	case PaneForm:
		ea.app.SetFocus(ea.formComponent.GetView())
	}
}

// exit shuts down the application
func (ea *EditorApp) exit() {
	if ea.statusComponent.Modified() {
		log.Warn("quitting with unsaved changes", "unit", ea.unitIndex, "profile", ea.profileIndex)
	}
	ea.app.Stop()
}
