package input

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
)

// Keys is the held-key map updated by key events.
type Keys struct {
	held map[string]bool
}

func NewKeys() *Keys {
	return &Keys{held: make(map[string]bool)}
}

// Set records key as pressed or released. Identifiers are lower-cased.
func (k *Keys) Set(key string, down bool) {
	k.held[strings.ToLower(key)] = down
}

// Reset releases every key. Called when the window loses focus.
func (k *Keys) Reset() {
	clear(k.held)
}

// Snapshot copies the current key state so a frame sees one consistent view.
func (k *Keys) Snapshot() (Snapshot, error) {
	held := make(map[string]bool, len(k.held))
	if err := copier.CopyWithOption(&held, k.held, copier.Option{DeepCopy: true}); err != nil {
		return Snapshot{}, fmt.Errorf("input: snapshot keys: %w", err)
	}
	return Snapshot{held: held}, nil
}

// Snapshot is an immutable copy of key state taken once per frame.
type Snapshot struct {
	held map[string]bool
}

// SnapshotOf builds a Snapshot with the given keys held.
func SnapshotOf(keys ...string) Snapshot {
	held := make(map[string]bool, len(keys))
	for _, key := range keys {
		held[strings.ToLower(key)] = true
	}
	return Snapshot{held: held}
}

// Any reports whether any of keys is held.
func (s Snapshot) Any(keys ...string) bool {
	for _, key := range keys {
		if s.held[key] {
			return true
		}
	}
	return false
}
