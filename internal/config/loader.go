package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".driller"

// LoadDriller loads driller configuration.
// Search order: customPath -> ~/.driller/configs/driller.yaml -> ./configs/driller.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file may set only the keys
// it wants to change.
func LoadDriller(customPath string) (DrillerConfig, error) {
	cfg := DefaultDrillerConfig()

	// Custom path errors are reported; the others fall through silently.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{
		DataPath("configs", "driller.yaml"),
		filepath.Join("configs", "driller.yaml"),
	} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultDrillerConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultDrillerYAML, &cfg); err != nil {
		return DefaultDrillerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// DataPath joins elem under ~/.driller, or returns "" if home is unavailable.
func DataPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ApplyDrillerPreset modifies the config based on a difficulty preset.
func ApplyDrillerPreset(cfg *DrillerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the field based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Air.RecoverPercent = 30
		cfg.Blocks.BrownChance = 0.03
	case DifficultyHard:
		cfg.Air.RecoverPercent = 15
		cfg.Blocks.ShakeFrames = 20
	}
}
