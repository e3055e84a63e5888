package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 400
	minHeight     = 300
)

// getDefaultKeybindings returns the default keybinding configuration
func getDefaultKeybindings() map[string][]string {
	return GetDefaultKeybindings()
}

// getDefaultMousebindings returns the default mouse binding configuration
func getDefaultMousebindings() map[string][]string {
	return GetDefaultMousebindings()
}

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	// Check for valid key formats and detect conflicts
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			// Validate key format
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			// Check for conflicts
			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	parts := strings.Split(keyStr, "+")
	if len(parts) == 0 {
		return fmt.Errorf("empty key string")
	}

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	// Check modifiers
	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}

// getValidKeyNames returns a set of valid key names
func getValidKeyNames() map[string]bool {
	// Add all keys from the key mapping
	keyMapping := map[string]bool{
		// Letters
		"KeyA": true, "KeyB": true, "KeyC": true, "KeyD": true,
		"KeyE": true, "KeyF": true, "KeyG": true, "KeyH": true,
		"KeyI": true, "KeyJ": true, "KeyK": true, "KeyL": true,
		"KeyM": true, "KeyN": true, "KeyO": true, "KeyP": true,
		"KeyQ": true, "KeyR": true, "KeyS": true, "KeyT": true,
		"KeyU": true, "KeyV": true, "KeyW": true, "KeyX": true,
		"KeyY": true, "KeyZ": true,

		// Numbers
		"Key0": true, "Key1": true, "Key2": true, "Key3": true,
		"Key4": true, "Key5": true, "Key6": true, "Key7": true,
		"Key8": true, "Key9": true,

		// Special keys
		"Space": true, "Backspace": true, "Enter": true, "Escape": true,
		"Tab": true, "Home": true, "End": true, "PageUp": true, "PageDown": true,
		"ArrowUp": true, "ArrowDown": true, "ArrowLeft": true, "ArrowRight": true,

		// Function keys
		"F1": true, "F2": true, "F3": true, "F4": true, "F5": true, "F6": true,
		"F7": true, "F8": true, "F9": true, "F10": true, "F11": true, "F12": true,

		// Punctuation
		"Comma": true, "Period": true, "Slash": true, "Semicolon": true,
		"Quote": true, "Minus": true, "Equal": true,

		// Numpad
		"Numpad0": true, "Numpad1": true, "Numpad2": true, "Numpad3": true,
		"Numpad4": true, "Numpad5": true, "Numpad6": true, "Numpad7": true,
		"Numpad8": true, "Numpad9": true, "NumpadEnter": true,
	}

	return keyMapping
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Warning", "Error"
}

type Config struct {
	WindowWidth    int                 `json:"window_width"`
	WindowHeight   int                 `json:"window_height"`
	FontSize       float64             `json:"font_size"`
	PhotoSort      int                 `json:"photo_sort"`
	Fullscreen     bool                `json:"fullscreen"`
	CacheSize      int                 `json:"cache_size"`
	PreloadEnabled bool                `json:"preload_enabled"`
	Keybindings    map[string][]string `json:"keybindings"`
	Mousebindings  map[string][]string `json:"mousebindings"`
	Mouse          MouseSettings       `json:"mouse"`
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "casaview.json"
	}
	return filepath.Join(homeDir, ".casaview.json")
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := Config{
		WindowWidth:    defaultWidth,
		WindowHeight:   defaultHeight,
		FontSize:       16.0,                      // Default UI font size
		PhotoSort:      SortNatural,               // Default to natural sort
		Fullscreen:     false,                     // Default to windowed mode
		CacheSize:      32,                        // Default cache size for images
		PreloadEnabled: true,                      // Default: enable preloading
		Keybindings:    getDefaultKeybindings(),   // Default keybindings
		Mousebindings:  getDefaultMousebindings(), // Default mouse bindings
		Mouse:          GetDefaultMouseSettings(),
	}

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		// Invalid config file - log warning and use defaults
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		// Keep default config values
		return result
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate font size (minimum 10px for readability)
	if config.FontSize < 10.0 {
		config.FontSize = 16.0
	}

	// Validate sort method
	if config.PhotoSort < SortNatural || config.PhotoSort > SortEntryOrder {
		config.PhotoSort = SortNatural
	}

	// Validate cache size (minimum 1, maximum 128)
	if config.CacheSize < 1 {
		config.CacheSize = 32
	} else if config.CacheSize > 128 {
		config.CacheSize = 128
	}

	// Validate mouse settings
	if config.Mouse.WheelSensitivity <= 0 {
		config.Mouse.WheelSensitivity = 1.0
	}
	if config.Mouse.DoubleClickTime <= 0 {
		config.Mouse.DoubleClickTime = 300
	}
	if config.Mouse.DragThreshold <= 0 {
		config.Mouse.DragThreshold = 5
	}
	if config.Mouse.DragSensitivity <= 0 {
		config.Mouse.DragSensitivity = 1.0
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = getDefaultKeybindings()
	} else {
		// Fill in missing keybindings with defaults
		defaults := getDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		// Validate keybindings and resolve conflicts
		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = getDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	// Fill in missing mouse bindings with defaults
	if config.Mousebindings == nil {
		config.Mousebindings = getDefaultMousebindings()
	} else {
		defaults := getDefaultMousebindings()
		for action, defaultActions := range defaults {
			if _, exists := config.Mousebindings[action]; !exists {
				config.Mousebindings[action] = defaultActions
			}
		}
	}

	// Update the result with the final config
	result.Config = config
	return result
}

// getPhotoSortName returns the human-readable name of a sort method
func getPhotoSortName(sortMethod int) string {
	return GetPhotoOrder(sortMethod).Name()
}

func saveConfig(config Config) {
	saveConfigToPath(config, getConfigPath())
}

func saveConfigToPath(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Printf("Warning: Not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Printf("Error: Failed to marshal config: %v", err)
		return
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		log.Printf("Error: Failed to save config to %s: %v", configPath, err)
	}
}
