package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write literally
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// prefixG marks a g-prefixed binding, e.g. "g+g"
const prefixG = "g+"

// keyNames indexes tcell's key names case-insensitively
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyByName resolves a tcell key name such as "PgDn" or "Ctrl-S"
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// LoadKeyConfig builds a sparse override table from action name → key list bindings
// Binding an action to "none" removes the listed keys from the result of MergeKeyTable
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:    make(map[tcell.Key]Action),
		Runes:   make(map[rune]Action),
		PrefixG: make(map[rune]Action),
	}
	for name, keys := range bindings {
		action, err := resolveAction(name)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if err := kt.bind(key, action); err != nil {
				return nil, fmt.Errorf("[keys] %s: %w", name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(key string, action Action) error {
	if rest, ok := strings.CutPrefix(key, prefixG); ok && rest != "" {
		r, err := resolveRune(rest)
		if err != nil {
			return err
		}
		kt.PrefixG[r] = action
		return nil
	}
	if r, err := resolveRune(key); err == nil {
		kt.Runes[r] = action
		return nil
	}
	if k, ok := KeyByName(key); ok {
		kt.Keys[k] = action
		return nil
	}
	return fmt.Errorf("unknown key: %q", key)
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

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.PrefixG, override.PrefixG)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
