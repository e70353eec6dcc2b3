package input

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve YAML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":        system(IntentQuit),
		"toggle_mute": system(IntentToggleMute),
		"cancel":      system(IntentCancel),
		"confirm":     system(IntentConfirm),
		"erase":       system(IntentErase),

		// Movement
		"move_left":  move(DirLeft),
		"move_right": move(DirRight),
		"move_up":    move(DirUp),
		"move_down":  move(DirDown),

		// Actions
		"toggle_coordinates":   action(IntentToggleCoordinates),
		"toggle_advanced_info": action(IntentToggleAdvancedInfo),
		"sign":                 action(IntentSignCreateOrEdit),
		"delete":               action(IntentDeleteAtPlayer),
		"delete_by_address":    action(IntentDeleteByAddress),
		"teleport":             action(IntentTeleportMode),
		"create":               action(IntentCreationMode),
		"quick_vortex":         action(IntentQuickVortex),
		"pick_up_place":        action(IntentPickUpPlace),
	}
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names (for documentation/validation)
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
