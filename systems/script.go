package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/rario/config"
)

// HeldActions is an ActionSource for headless runs: the listed actions are
// held for the whole run.
type HeldActions map[config.ActionID]bool

func (h HeldActions) Pressed(a config.ActionID) bool { return h[a] }

// ParseActions reads a comma separated list of action names, e.g. "right,jump".
func ParseActions(list string) (HeldActions, error) {
	held := HeldActions{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for a := config.ActionNone + 1; a < config.ActionCount; a++ {
			if a.String() == name {
				held[a] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown action %q", name)
		}
	}
	return held, nil
}
