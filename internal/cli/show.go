package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"ttsedit/internal/assets"
	"ttsedit/internal/description"
)

type unitView struct {
	Name     string        `yaml:"name"`
	Objects  int           `yaml:"objects"`
	Profiles []profileView `yaml:"profiles"`
}

type profileView struct {
	Name        string                  `yaml:"name"`
	Indices     []int                   `yaml:"indices"`
	Description string                  `yaml:"description"`
	Parsed      description.Description `yaml:"parsed"`
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		unitName string
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "List units, profiles and their parsed descriptions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := fileArg(opts, args)
			if err != nil {
				return err
			}
			lib, err := assets.OpenFile(file)
			if err != nil {
				return err
			}

			units := lib.Units()
			if unitName != "" {
				_, unit, ok := lib.Find(unitName)
				if !ok {
					return fmt.Errorf("unit %q not found in %s", unitName, file)
				}
				units = []*assets.Unit{unit}
			}

			if asYAML {
				return writeYAML(cmd.OutOrStdout(), units)
			}
			writeUnits(cmd.OutOrStdout(), units)
			return nil
		},
	}

	cmd.Flags().StringVar(&unitName, "unit", "", "only show this unit (case-insensitive)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML including the raw descriptions")

	return cmd
}

func writeYAML(w io.Writer, units []*assets.Unit) error {
	views := make([]unitView, 0, len(units))
	for _, unit := range units {
		view := unitView{Name: unit.Name, Objects: unit.ObjectCount()}
		for _, p := range unit.Profiles {
			view.Profiles = append(view.Profiles, profileView{
				Name:        p.Name,
				Indices:     p.Indices,
				Description: p.Description,
				Parsed:      p.Parsed(),
			})
		}
		views = append(views, view)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeUnits(w io.Writer, units []*assets.Unit) {
	for _, unit := range units {
		fmt.Fprintf(w, "%s (%d objects)\n", unit.Name, unit.ObjectCount())
		for _, p := range unit.Profiles {
			fmt.Fprintf(w, "  %s\n", p.Label())

			d := p.Parsed()
			if !d.Stats.IsZero() {
				stats := make([]string, 0, len(description.StatLabels))
				for _, label := range description.StatLabels {
					stats = append(stats, label+":"+d.Stats.Get(label))
				}
				fmt.Fprintf(w, "    %s\n", strings.Join(stats, " "))
			}
			for _, kind := range []description.WeaponKind{description.Ranged, description.Melee} {
				for _, weapon := range d.Weapons(kind) {
					fields := make([]string, 0, 6)
					for _, f := range weapon.Fields() {
						fields = append(fields, f.Label+":"+f.Value)
					}
					fmt.Fprintf(w, "    %s %s  %s", kind, weapon.Name, strings.Join(fields, " "))
					if weapon.Abilities != "" {
						fmt.Fprintf(w, "  [%s]", weapon.Abilities)
					}
					fmt.Fprintln(w)
				}
			}
			if len(d.Abilities) > 0 {
				fmt.Fprintf(w, "    abilities: %s\n", strings.Join(d.Abilities, ", "))
			}
		}
	}
}
