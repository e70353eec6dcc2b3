package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"colon":     ':',
	"hash":      '#',
}

// KeyConfig is the keymap section of the config file
// Each section maps a key to an action name; "none" unbinds
type KeyConfig struct {
	Normal     map[string]string `yaml:"normal"`
	NormalKeys map[string]string `yaml:"normal_keys"`
	TextKeys   map[string]string `yaml:"text_keys"`
}

// LoadKeyConfig parses standalone YAML keymap data into a sparse override KeyTable
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var kc KeyConfig
	if err := yaml.Unmarshal(data, &kc); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return kc.Overrides()
}

// Overrides converts the config into a sparse override KeyTable
// Only sections present in the config are populated
// Returns error on unknown action names or invalid key names
func (kc KeyConfig) Overrides() (*KeyTable, error) {
	kt := &KeyTable{}
	var err error

	if kc.Normal != nil {
		if kt.NormalRunes, err = parseRuneSection("normal", kc.Normal); err != nil {
			return nil, err
		}
	}
	if kc.NormalKeys != nil {
		if kt.SpecialKeys, err = parseSpecialKeySection("normal_keys", kc.NormalKeys); err != nil {
			return nil, err
		}
	}
	if kc.TextKeys != nil {
		if kt.TextKeys, err = parseSpecialKeySection("text_keys", kc.TextKeys); err != nil {
			return nil, err
		}
	}
	return kt, nil
}

// parseRuneSection parses rune key → action name bindings
func parseRuneSection(section string, data map[string]string) (map[rune]KeyEntry, error) {
	result := make(map[rune]KeyEntry, len(data))

	for keyStr, actionName := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[r] = entry
	}

	return result, nil
}

// parseSpecialKeySection parses tcell key name → action name bindings
func parseSpecialKeySection(section string, data map[string]string) (map[tcell.Key]KeyEntry, error) {
	result := make(map[tcell.Key]KeyEntry, len(data))

	for keyStr, actionName := range data {
		k, ok := KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[k] = entry
	}

	return result, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	mergeMap(result.NormalRunes, override.NormalRunes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.TextKeys, override.TextKeys)

	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	if override == nil {
		return
	}
	for k, v := range override {
		if v.Behavior == BehaviorNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
