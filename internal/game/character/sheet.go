package character

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSheet reads and parses a YAML character sheet file.
//
// Precondition: path names a readable YAML file.
// Postcondition: Returns a non-nil Character or a descriptive error.
func LoadSheet(path string) (*Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", path, err)
	}
	return ParseSheet(data)
}

// ParseSheet parses YAML sheet data into a Character.
func ParseSheet(data []byte) (*Character, error) {
	var c Character
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing sheet: %w", err)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("parsing sheet: name must not be empty")
	}
	if c.Level < 1 {
		return nil, fmt.Errorf("parsing sheet: level must be >= 1, got %d", c.Level)
	}
	return &c, nil
}

// ExportJSON renders the sheet as a JSON backup.
//
// Postcondition: the output round-trips through ImportJSON.
func ExportJSON(c *Character) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting sheet: %w", err)
	}
	return data, nil
}

// ImportJSON parses a JSON backup produced by ExportJSON.
func ImportJSON(data []byte) (*Character, error) {
	var c Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("importing sheet: %w", err)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("importing sheet: name must not be empty")
	}
	return &c, nil
}
