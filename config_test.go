package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".casaview.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name           string
		configJSON     string
		expectedWidth  int
		expectedHeight int
		expectedCache  int
		expectedSort   int
	}{
		{
			name: "Valid config",
			configJSON: `{
				"window_width": 1000,
				"window_height": 800,
				"cache_size": 48,
				"photo_sort": 1
			}`,
			expectedWidth:  1000,
			expectedHeight: 800,
			expectedCache:  48,
			expectedSort:   SortLexical,
		},
		{
			name: "Width too small",
			configJSON: `{
				"window_width": 200,
				"window_height": 600
			}`,
			expectedWidth:  defaultWidth,
			expectedHeight: 600,
			expectedCache:  32,
			expectedSort:   SortNatural,
		},
		{
			name: "Height too small",
			configJSON: `{
				"window_width": 800,
				"window_height": 100
			}`,
			expectedWidth:  800,
			expectedHeight: defaultHeight,
			expectedCache:  32,
			expectedSort:   SortNatural,
		},
		{
			name: "Cache size clamped",
			configJSON: `{
				"window_width": 800,
				"window_height": 600,
				"cache_size": 9999
			}`,
			expectedWidth:  800,
			expectedHeight: 600,
			expectedCache:  128,
			expectedSort:   SortNatural,
		},
		{
			name: "Invalid sort method",
			configJSON: `{
				"window_width": 800,
				"window_height": 600,
				"photo_sort": 42
			}`,
			expectedWidth:  800,
			expectedHeight: 600,
			expectedCache:  32,
			expectedSort:   SortNatural,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.configJSON)
			result := loadConfigFromPath(path)
			config := result.Config

			if config.WindowWidth != tt.expectedWidth {
				t.Errorf("Expected width %d, got %d", tt.expectedWidth, config.WindowWidth)
			}
			if config.WindowHeight != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, config.WindowHeight)
			}
			if config.CacheSize != tt.expectedCache {
				t.Errorf("Expected cache size %d, got %d", tt.expectedCache, config.CacheSize)
			}
			if config.PhotoSort != tt.expectedSort {
				t.Errorf("Expected sort method %d, got %d", tt.expectedSort, config.PhotoSort)
			}
		})
	}
}

func TestConfigMissingFile(t *testing.T) {
	result := loadConfigFromPath(filepath.Join(t.TempDir(), "missing.json"))

	if result.Status != "Default" {
		t.Errorf("Status = %q, want Default", result.Status)
	}
	if result.HasError {
		t.Error("a missing config file is not an error")
	}
	if result.Config.WindowWidth != defaultWidth || result.Config.WindowHeight != defaultHeight {
		t.Errorf("defaults not applied: %dx%d", result.Config.WindowWidth, result.Config.WindowHeight)
	}
	if result.Config.Keybindings == nil {
		t.Error("default keybindings should be populated")
	}
}

func TestConfigInvalidJSON(t *testing.T) {
	path := writeTestConfig(t, "{broken json")
	result := loadConfigFromPath(path)

	if result.Status != "Error" {
		t.Errorf("Status = %q, want Error", result.Status)
	}
	if !result.HasError {
		t.Error("HasError should be set for malformed JSON")
	}
	if result.Config.WindowWidth != defaultWidth {
		t.Errorf("defaults should survive a parse failure, got width %d", result.Config.WindowWidth)
	}
}

func TestConfigKeybindings(t *testing.T) {
	t.Run("missing actions filled with defaults", func(t *testing.T) {
		path := writeTestConfig(t, `{
			"window_width": 800,
			"window_height": 600,
			"keybindings": {"next": ["KeyN"]}
		}`)
		config := loadConfigFromPath(path).Config

		if got := config.Keybindings["next"]; len(got) != 1 || got[0] != "KeyN" {
			t.Errorf("custom binding lost: %v", got)
		}
		if len(config.Keybindings["previous"]) == 0 {
			t.Error("missing actions should fall back to defaults")
		}
	})

	t.Run("conflicting bindings revert to defaults", func(t *testing.T) {
		path := writeTestConfig(t, `{
			"window_width": 800,
			"window_height": 600,
			"keybindings": {
				"next": ["Space"],
				"previous": ["Space"]
			}
		}`)
		result := loadConfigFromPath(path)

		if result.Status != "Warning" {
			t.Errorf("Status = %q, want Warning", result.Status)
		}
		defaults := getDefaultKeybindings()
		if got := result.Config.Keybindings["next"]; len(got) != len(defaults["next"]) {
			t.Errorf("conflicting bindings should revert to defaults: %v", got)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := writeTestConfig(t, `{
			"window_width": 800,
			"window_height": 600,
			"keybindings": {"next": ["KeyBogus"]}
		}`)
		result := loadConfigFromPath(path)

		if result.Status != "Warning" {
			t.Errorf("Status = %q, want Warning", result.Status)
		}
	})
}

func TestValidateKeyString(t *testing.T) {
	validKeys := getValidKeyNames()

	tests := []struct {
		name    string
		keyStr  string
		wantErr bool
	}{
		{"plain key", "Space", false},
		{"modifier combo", "Ctrl+Equal", false},
		{"double modifier", "Ctrl+Shift+KeyF", false},
		{"function key", "F11", false},
		{"unknown key", "KeyBogus", true},
		{"unknown modifier", "Hyper+Space", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKeyString(tt.keyStr, validKeys)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateKeyString(%q) error = %v, wantErr %v", tt.keyStr, err, tt.wantErr)
			}
		})
	}
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".casaview.json")

	config := loadConfigFromPath(path).Config
	config.WindowWidth = 1024
	config.WindowHeight = 768
	config.PhotoSort = SortEntryOrder
	saveConfigToPath(config, path)

	reloaded := loadConfigFromPath(path).Config
	if reloaded.WindowWidth != 1024 || reloaded.WindowHeight != 768 {
		t.Errorf("window size not preserved: %dx%d", reloaded.WindowWidth, reloaded.WindowHeight)
	}
	if reloaded.PhotoSort != SortEntryOrder {
		t.Errorf("PhotoSort = %d, want %d", reloaded.PhotoSort, SortEntryOrder)
	}
}

func TestConfigSaveRejectsInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".casaview.json")

	config := loadConfigFromPath(path).Config
	config.WindowWidth = 10
	saveConfigToPath(config, path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config with an invalid window size should not be written")
	}
}
