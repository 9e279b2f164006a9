// Package input reads the keyboard through ebitengine.
package input

import (
	"fmt"

	"github.com/automoto/rario/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard maps actions to the ebiten keys bound to them.
type Keyboard struct {
	bindings [config.ActionCount][]ebiten.Key
}

// NewKeyboard parses key names such as "ArrowLeft" or "Space".
func NewKeyboard(c config.InputConfig) (*Keyboard, error) {
	k := &Keyboard{}
	for action, names := range c.Bindings() {
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("input %s: %w", action, err)
			}
			k.bindings[action] = append(k.bindings[action], key)
		}
	}
	return k, nil
}

// Pressed reports whether any key bound to action is held.
func (k *Keyboard) Pressed(action config.ActionID) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any key bound to action went down this tick.
func (k *Keyboard) JustPressed(action config.ActionID) bool {
	for _, key := range k.bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
