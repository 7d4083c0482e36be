package components

import (
	"github.com/rivo/tview"
	"ttsedit/internal/assets"
	"ttsedit/internal/theme"
)

// PanelComponent manages the unit and profile lists on the left
type PanelComponent struct {
	units    *tview.List
	profiles *tview.List
	wrapper  *tview.Flex

	onUnit    func(int)
	onProfile func(int)
	loading   bool
}

// NewPanelComponent creates the two side lists
func NewPanelComponent() *PanelComponent {
	pc := &PanelComponent{
		units:    theme.NewPanelList(),
		profiles: theme.NewPanelList(),
	}
	pc.units.SetTitle(" Units ")
	pc.profiles.SetTitle(" Profiles ")

	// tview fires the changed func on the first AddItem, so the handlers
	// are installed up front and muted while a list is being filled
	pc.units.SetChangedFunc(func(index int, _, _ string, _ rune) {
		if !pc.loading && pc.onUnit != nil {
			pc.onUnit(index)
		}
	})
	pc.profiles.SetChangedFunc(func(index int, _, _ string, _ rune) {
		if !pc.loading && pc.onProfile != nil {
			pc.onProfile(index)
		}
	})

	pc.wrapper = theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(pc.units, 0, 2, true).
		AddItem(pc.profiles, 0, 1, false)

	return pc
}

// GetWrapper returns the panel layout
func (pc *PanelComponent) GetWrapper() *tview.Flex {
	return pc.wrapper
}

// Units returns the unit list
func (pc *PanelComponent) Units() *tview.List {
	return pc.units
}

// Profiles returns the profile list
func (pc *PanelComponent) Profiles() *tview.List {
	return pc.profiles
}

// SetHandlers installs the selection callbacks
func (pc *PanelComponent) SetHandlers(onUnit, onProfile func(int)) {
	pc.onUnit = onUnit
	pc.onProfile = onProfile
}

// SetUnits fills the unit list without firing the callbacks
func (pc *PanelComponent) SetUnits(units []*assets.Unit) {
	pc.loading = true
	defer func() { pc.loading = false }()

	pc.units.Clear()
	for _, unit := range units {
		pc.units.AddItem(unit.Name, "", 0, nil)
	}
}

// SetProfiles fills the profile list without firing the callbacks
func (pc *PanelComponent) SetProfiles(profiles []*assets.Profile) {
	pc.loading = true
	defer func() { pc.loading = false }()

	pc.profiles.Clear()
	for _, profile := range profiles {
		pc.profiles.AddItem(profile.Label(), "", 0, nil)
	}
}

// RefreshProfileLabels rewrites the labels in place, keeping the selection
func (pc *PanelComponent) RefreshProfileLabels(profiles []*assets.Profile) {
	for i, profile := range profiles {
		if i < pc.profiles.GetItemCount() {
			pc.profiles.SetItemText(i, profile.Label(), "")
		}
	}
}

// UnitIndex returns the selected unit
func (pc *PanelComponent) UnitIndex() int {
	return pc.units.GetCurrentItem()
}

// ProfileIndex returns the selected profile
func (pc *PanelComponent) ProfileIndex() int {
	return pc.profiles.GetCurrentItem()
}
