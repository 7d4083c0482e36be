package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"ttsedit/internal/assets"
	"ttsedit/internal/description"
)

// Fixture is one profile description together with what it parses to
type Fixture struct {
	Unit        string                  `yaml:"unit"`
	Profile     string                  `yaml:"profile"`
	Description string                  `yaml:"description"`
	Parsed      description.Description `yaml:"parsed"`
}

func main() {
	var (
		inFile   = flag.String("in", "", "Path to the Tabletop Simulator save file")
		outFile  = flag.String("out", "", "Output YAML file path (prints to stdout if not specified)")
		unitName = flag.String("unit", "", "Only extract this unit")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Println("Error: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	lib, err := assets.OpenFile(*inFile)
	if err != nil {
		fmt.Printf("Error reading save file: %v\n", err)
		os.Exit(1)
	}

	fixtures := extractFixtures(lib, *unitName)

	data, err := yaml.Marshal(fixtures)
	if err != nil {
		fmt.Printf("Error encoding fixtures: %v\n", err)
		os.Exit(1)
	}

	if *outFile == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*outFile, data, 0644); err != nil {
		fmt.Printf("Error writing fixture file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d fixtures to %s\n", len(fixtures), *outFile)
}

func extractFixtures(lib *assets.Library, unitName string) []Fixture {
	var fixtures []Fixture
	for _, unit := range lib.Units() {
		if unitName != "" && unit.Name != unitName {
			continue
		}
		for _, profile := range unit.Profiles {
			fixtures = append(fixtures, Fixture{
				Unit:        unit.Name,
				Profile:     profile.Name,
				Description: profile.Description,
				Parsed:      profile.Parsed(),
			})
		}
	}
	return fixtures
}
