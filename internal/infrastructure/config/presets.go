package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/story-core/internal/domain/entities"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// PresetsConfig holds saved story inputs (read/write).
type PresetsConfig struct {
	Presets map[string]PresetEntry `yaml:"presets,omitempty"`
}

// PresetEntry is a reusable set of story inputs.
type PresetEntry struct {
	Characters   string `yaml:"characters"`
	Setting      string `yaml:"setting"`
	Genre        string `yaml:"genre,omitempty"`
	Length       string `yaml:"length,omitempty"`
	Language     string `yaml:"language,omitempty"`
	OtherDetails string `yaml:"other_details,omitempty"`
}

// Inputs converts the preset to story inputs.
func (p PresetEntry) Inputs() entities.StoryInputs {
	return entities.StoryInputs{
		Characters:   p.Characters,
		Setting:      p.Setting,
		Genre:        p.Genre,
		Length:       entities.StoryLength(p.Length),
		Language:     p.Language,
		OtherDetails: p.OtherDetails,
	}
}

// PresetFromInputs converts story inputs to a preset entry.
func PresetFromInputs(in entities.StoryInputs) PresetEntry {
	return PresetEntry{
		Characters:   in.Characters,
		Setting:      in.Setting,
		Genre:        in.Genre,
		Length:       string(in.Length),
		Language:     in.Language,
		OtherDetails: in.OtherDetails,
	}
}

// LoadPresets loads presets from the .story directory.
func LoadPresets(basePath string) (*PresetsConfig, error) {
	data, err := os.ReadFile(PresetsFilePath(basePath))
	if os.IsNotExist(err) {
		// Return empty config if file doesn't exist
		return &PresetsConfig{
			Presets: make(map[string]PresetEntry),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}

	if cfg.Presets == nil {
		cfg.Presets = make(map[string]PresetEntry)
	}

	return &cfg, nil
}

// Save writes the presets to the presets file.
func (p *PresetsConfig) Save(basePath string) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling presets: %w", err)
	}

	if err := os.WriteFile(PresetsFilePath(basePath), data, 0600); err != nil {
		return fmt.Errorf("writing presets file: %w", err)
	}

	return nil
}

// Add stores a preset under its sanitized name and returns that name.
func (p *PresetsConfig) Add(name string, entry PresetEntry) string {
	if p.Presets == nil {
		p.Presets = make(map[string]PresetEntry)
	}
	key := SanitizePresetName(name)
	p.Presets[key] = entry
	return key
}

// Remove removes a preset.
func (p *PresetsConfig) Remove(name string) {
	if p.Presets != nil {
		delete(p.Presets, SanitizePresetName(name))
	}
}

// Get returns a preset by name.
func (p *PresetsConfig) Get(name string) (*PresetEntry, error) {
	if len(p.Presets) == 0 {
		return nil, errors.New("no presets saved")
	}

	entry, ok := p.Presets[SanitizePresetName(name)]
	if !ok {
		names := p.Names()
		if len(names) > 5 {
			names = append(names[:5], "...")
		}
		return nil, fmt.Errorf("preset %q not found (available: %s)", name, strings.Join(names, ", "))
	}

	return &entry, nil
}

// Names returns the preset names in sorted order.
func (p *PresetsConfig) Names() []string {
	names := make([]string, 0, len(p.Presets))
	for k := range p.Presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SanitizePresetName converts a preset name to a stable key.
func SanitizePresetName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(strings.TrimSpace(name))

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return "default"
	}

	return name
}
