package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"dismiss", []string{"Escape"}, []string{}, "Exit zoom, or close the gallery when not zoomed"},
	{"next", []string{"ArrowRight", "ArrowDown", "Space"}, []string{"WheelDown"}, "Next image"},
	{"previous", []string{"ArrowLeft", "ArrowUp"}, []string{"WheelUp"}, "Previous image"},
	{"jump_first", []string{"Home"}, []string{}, "Jump to first image"},
	{"jump_last", []string{"End"}, []string{}, "Jump to last image"},

	// Zoom actions
	{"zoom_in", []string{"Equal", "Shift+Equal"}, []string{"Ctrl+WheelUp"}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, []string{"Ctrl+WheelDown"}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, []string{}, "Reset to 100% zoom"},
	{"zoom_toggle", []string{}, []string{"DoubleLeftClick"}, "Toggle 2x zoom"},

	{"fullscreen", []string{"KeyF", "F11"}, []string{}, "Toggle fullscreen"},
}

// ActionExecutor provides centralized action execution logic shared by
// the keybinding and mousebinding managers.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the GalleryActions interface.
// This is the single source of truth for all action execution logic.
func (ae *ActionExecutor) ExecuteAction(action string, actions GalleryActions, state InputState) bool {
	switch action {
	case "dismiss":
		actions.Dismiss()
	case "next":
		actions.Next()
	case "previous":
		actions.Previous()
	case "jump_first":
		actions.JumpFirst()
	case "jump_last":
		actions.JumpLast()
	case "zoom_in":
		actions.ZoomIn()
	case "zoom_out":
		actions.ZoomOut()
	case "zoom_reset":
		actions.ResetZoom()
	case "zoom_toggle":
		actions.ToggleZoom()
	case "fullscreen":
		actions.ToggleFullscreen()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
