package repo

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeedEntry is a roster member loaded at process start.
type SeedEntry struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	DonationsRaised int64  `yaml:"donationsRaised"`
}

type seedFile struct {
	Interns []SeedEntry `yaml:"interns"`
}

// DefaultSeed returns the built-in demo roster.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{Name: "Shiva", Email: "shiv@example.com", DonationsRaised: 15420},
		{Name: "Sarah", Email: "sara@example.com", DonationsRaised: 12800},
		{Name: "Vishnu", Email: "vishnu@example.com", DonationsRaised: 9650},
		{Name: "Ram", Email: "ram@example.com", DonationsRaised: 8200},
		{Name: "Krishna", Email: "krishna@example.com", DonationsRaised: 7100},
	}
}

// ParseSeed decodes a YAML roster document.
func ParseSeed(data []byte) ([]SeedEntry, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: decode yaml: %w", err)
	}
	for i, e := range f.Interns {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("seed: entry %d: name is required", i)
		}
		if e.DonationsRaised < 0 {
			return nil, fmt.Errorf("seed: entry %d (%s): donationsRaised must not be negative", i, e.Name)
		}
	}
	return f.Interns, nil
}

// LoadSeed reads the roster at path, falling back to DefaultSeed when path is empty.
func LoadSeed(path string) ([]SeedEntry, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return ParseSeed(data)
}
