// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

// ErrNoDefaultPreset is returned when a preset file lacks the "default" entry.
var ErrNoDefaultPreset = errors.New("defs: preset library has no default preset")

// PresetLibrary maps preset IDs to their definitions.
type PresetLibrary map[string]PresetDefinition

// BuiltinPresets parses the embedded preset file.
func BuiltinPresets() (PresetLibrary, error) {
	return ParsePresets(builtinPresets)
}

// LoadPresetDefinitions reads a preset file and merges it over the built-in presets.
func LoadPresetDefinitions(path string) (PresetLibrary, error) {
	lib, err := BuiltinPresets()
	if err != nil {
		return nil, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset definitions file: %w", err)
	}
	extra, err := parseList(file)
	if err != nil {
		return nil, err
	}
	for _, def := range extra {
		lib[def.ID] = def
	}
	return lib, nil
}

// ParsePresets parses a YAML list of presets. The list must contain "default".
func ParsePresets(data []byte) (PresetLibrary, error) {
	defs, err := parseList(data)
	if err != nil {
		return nil, err
	}
	lib := make(PresetLibrary, len(defs))
	for _, def := range defs {
		lib[def.ID] = def
	}
	if _, ok := lib[DefaultPresetID]; !ok {
		return nil, ErrNoDefaultPreset
	}
	return lib, nil
}

func parseList(data []byte) ([]PresetDefinition, error) {
	var defs []PresetDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset definitions: %w", err)
	}
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("preset #%d has no id", i)
		}
	}
	return defs, nil
}

// Lookup returns the preset with the given id. ok is false when the
// default preset was substituted.
func (l PresetLibrary) Lookup(id string) (def PresetDefinition, ok bool) {
	if def, ok := l[id]; ok {
		return def, true
	}
	return l[DefaultPresetID], false
}

// IDs returns the preset ids, sorted.
func (l PresetLibrary) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
