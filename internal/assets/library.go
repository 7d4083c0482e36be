package assets

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"ttsedit/internal/database"
	"ttsedit/internal/description"
	"ttsedit/internal/log"
)

// Library is a loaded save together with its unit grouping
type Library struct {
	doc   *Document
	path  string
	units []*Unit
}

// Open groups an already decoded document
func Open(doc *Document) *Library {
	return &Library{doc: doc, units: Group(doc)}
}

// OpenFile loads and groups the save at path
func OpenFile(path string) (*Library, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	lib := Open(doc)
	lib.path = path
	log.Info("grouped units", "file", path, "units", len(lib.units))
	return lib, nil
}

// Path returns the file the library was loaded from, if any
func (l *Library) Path() string {
	return l.path
}

// Document returns the underlying save
func (l *Library) Document() *Document {
	return l.doc
}

// Units returns the units in display order
func (l *Library) Units() []*Unit {
	return l.units
}

// Find returns the unit whose name matches case-insensitively
func (l *Library) Find(name string) (int, *Unit, bool) {
	for i, unit := range l.units {
		if sameName(unit.Name, name) {
			return i, unit, true
		}
	}
	return -1, nil, false
}

func sameName(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// Profile returns a profile by unit and profile index
func (l *Library) Profile(unitIndex, profileIndex int) (*Unit, *Profile, error) {
	if unitIndex < 0 || unitIndex >= len(l.units) {
		return nil, nil, fmt.Errorf("unit %d: %w", unitIndex, ErrIndexOutOfRange)
	}
	unit := l.units[unitIndex]
	if profileIndex < 0 || profileIndex >= len(unit.Profiles) {
		return nil, nil, fmt.Errorf("profile %d of %s: %w", profileIndex, unit.Name, ErrIndexOutOfRange)
	}
	return unit, unit.Profiles[profileIndex], nil
}

// SaveProfile writes text into every object sharing the profile and returns
// the edit for the journal. The grouping is not recomputed.
func (l *Library) SaveProfile(unitIndex, profileIndex int, text string) (database.Edit, error) {
	unit, profile, err := l.Profile(unitIndex, profileIndex)
	if err != nil {
		return database.Edit{}, err
	}

	edit := database.Edit{
		File:    l.path,
		Unit:    unit.Name,
		Profile: profile.Name,
		Indices: append([]int(nil), profile.Indices...),
		Before:  profile.Description,
		After:   text,
		At:      time.Now(),
	}

	for _, index := range profile.Indices {
		if err := l.doc.SetDescription(index, text); err != nil {
			return database.Edit{}, err
		}
	}
	profile.Description = text

	log.Debug("profile updated", "unit", unit.Name, "profile", profile.Name, "objects", profile.Count())
	return edit, nil
}

// NormalizeAll rewrites every profile description in canonical form and
// returns the edits that changed something
func (l *Library) NormalizeAll(unitName string) ([]database.Edit, error) {
	var edits []database.Edit
	for ui, unit := range l.units {
		if unitName != "" && !sameName(unit.Name, unitName) {
			continue
		}
		for pi, profile := range unit.Profiles {
			normalized := description.Normalize(profile.Description)
			if normalized == profile.Description {
				continue
			}
			edit, err := l.SaveProfile(ui, pi, normalized)
			if err != nil {
				return edits, err
			}
			edits = append(edits, edit)
		}
	}
	return edits, nil
}

// Save writes the document back to the file it was loaded from
func (l *Library) Save(backup bool) error {
	if l.path == "" {
		return fmt.Errorf("library has no file to save to")
	}
	return l.doc.SaveFile(l.path, backup)
}
