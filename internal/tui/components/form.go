package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"ttsedit/internal/description"
	"ttsedit/internal/theme"
)

const fieldWidth = 24

// FormComponent edits a working copy of a description field by field
type FormComponent struct {
	form *tview.Form
	desc description.Description

	onGenerate func(string)
}

// NewFormComponent creates an empty form
func NewFormComponent() *FormComponent {
	fc := &FormComponent{form: theme.NewForm()}
	fc.form.SetTitle(" Structured ")
	fc.form.SetItemPadding(0)
	fc.rebuild()
	return fc
}

// GetView returns the form
func (fc *FormComponent) GetView() *tview.Form {
	return fc.form
}

// SetGenerateFunc receives the rendered text when Generate is pressed
func (fc *FormComponent) SetGenerateFunc(handler func(string)) {
	fc.onGenerate = handler
}

// Load replaces the working copy and rebuilds the fields
func (fc *FormComponent) Load(d description.Description) {
	fc.desc = d
	fc.desc.RangedWeapons = append([]description.Weapon(nil), d.RangedWeapons...)
	fc.desc.MeleeWeapons = append([]description.Weapon(nil), d.MeleeWeapons...)
	fc.desc.Abilities = append([]string(nil), d.Abilities...)
	fc.rebuild()
}

// Description returns the working copy
func (fc *FormComponent) Description() description.Description {
	return fc.desc
}

// Generate renders the working copy and hands it to the generate handler
func (fc *FormComponent) Generate() string {
	text := description.Render(fc.desc)
	if fc.onGenerate != nil {
		fc.onGenerate(text)
	}
	return text
}

// AddWeapon appends an empty weapon of the given kind
func (fc *FormComponent) AddWeapon(kind description.WeaponKind) {
	weapons := fc.desc.Weapons(kind)
	fc.desc.SetWeapons(kind, append(weapons, description.Weapon{Kind: kind}))
	fc.rebuild()
}

// RemoveWeapon drops the last weapon of the given kind
func (fc *FormComponent) RemoveWeapon(kind description.WeaponKind) {
	weapons := fc.desc.Weapons(kind)
	if len(weapons) == 0 {
		return
	}
	fc.desc.SetWeapons(kind, weapons[:len(weapons)-1])
	fc.rebuild()
}

func (fc *FormComponent) rebuild() {
	fc.form.Clear(true)

	for _, label := range description.StatLabels {
		label := label
		fc.form.AddInputField(label, fc.desc.Stats.Get(label), 8, nil, func(text string) {
			fc.desc.Stats.Set(label, text)
		})
	}

	fc.addWeaponFields(description.Ranged)
	fc.addWeaponFields(description.Melee)

	fc.form.AddTextArea("Abilities", strings.Join(fc.desc.Abilities, "\n"), 0, 6, 0, func(text string) {
		fc.desc.Abilities = splitAbilities(text)
	})

	fc.form.AddButton("Add ranged", func() { fc.AddWeapon(description.Ranged) })
	fc.form.AddButton("Add melee", func() { fc.AddWeapon(description.Melee) })
	fc.form.AddButton("Remove ranged", func() { fc.RemoveWeapon(description.Ranged) })
	fc.form.AddButton("Remove melee", func() { fc.RemoveWeapon(description.Melee) })
	fc.form.AddButton("Generate", func() { fc.Generate() })
}

func (fc *FormComponent) addWeaponFields(kind description.WeaponKind) {
	weapons := fc.desc.Weapons(kind)
	for i := range weapons {
		i := i
		prefix := fmt.Sprintf("%s %d ", kind, i+1)

		fc.form.AddInputField(prefix+"name", weapons[i].Name, fieldWidth, nil, func(text string) {
			fc.desc.Weapons(kind)[i].Name = text
		})
		for _, field := range weapons[i].Fields() {
			field := field
			fc.form.AddInputField(prefix+field.Label, field.Value, 8, nil, func(text string) {
				fc.desc.Weapons(kind)[i].Set(field.Label, text)
			})
		}
		fc.form.AddInputField(prefix+"abilities", weapons[i].Abilities, fieldWidth, nil, func(text string) {
			fc.desc.Weapons(kind)[i].Abilities = text
		})
	}
}

// splitAbilities keeps one ability per non-blank line
func splitAbilities(text string) []string {
	var abilities []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			abilities = append(abilities, line)
		}
	}
	return abilities
}
