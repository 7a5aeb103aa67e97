package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads every *.yaml/*.yml file in dir and decodes it into a
// Scenario. Files are read in name-sorted order, so "last-load-wins" name
// collisions are deterministic given a directory listing.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
		}
		var s Scenario
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("scenario: decoding %s: %w", path, err)
		}
		if s.ID == "" {
			return nil, fmt.Errorf("scenario: %s is missing an id", path)
		}
		if s.ConstraintSetName == "" {
			s.ConstraintSetName = "base"
		}
		scenarios = append(scenarios, &s)
	}
	return scenarios, nil
}
