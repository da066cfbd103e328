package remote

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/hammer/internal/models"
)

// KeyMap maps input tokens to logical buttons. Tokens are matched lower-cased.
type KeyMap map[string]models.Button

// arrow key escape sequences as sent by a terminal
var arrows = map[string]string{
	"\x1b[A": "up",
	"\x1b[B": "down",
	"\x1b[C": "right",
	"\x1b[D": "left",
}

// DefaultKeyMap matches the remote's keyboard codes: power reads as "s",
// the d-pad centre as return
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"s":      models.ButtonPower,
		"power":  models.ButtonPower,
		"a":      models.ButtonTeamA,
		"b":      models.ButtonTeamB,
		"return": models.ButtonConfirm,
		"enter":  models.ButtonConfirm,
		"ok":     models.ButtonConfirm,
		"up":     models.ButtonUp,
		"down":   models.ButtonDown,
		"left":   models.ButtonLeft,
		"right":  models.ButtonRight,
	}
}

// Lookup returns the button bound to token
func (k KeyMap) Lookup(token string) (models.Button, bool) {
	b, ok := k[strings.ToLower(token)]
	return b, ok
}

// ParseKeyMap applies "token=button" pairs separated by commas on top of the
// default map, e.g. "p=power,x=confirm"
func ParseKeyMap(bindings string) (KeyMap, error) {
	keys := DefaultKeyMap()
	if strings.TrimSpace(bindings) == "" {
		return keys, nil
	}

	valid := make(map[models.Button]bool, len(models.Buttons))
	for _, b := range models.Buttons {
		valid[b] = true
	}

	for _, pair := range strings.Split(bindings, ",") {
		token, button, ok := strings.Cut(strings.TrimSpace(pair), "=")
		token = strings.ToLower(strings.TrimSpace(token))
		b := models.Button(strings.TrimSpace(button))
		if !ok || token == "" {
			return nil, fmt.Errorf("invalid key binding %q", pair)
		}
		if !valid[b] {
			return nil, fmt.Errorf("unknown button %q in key binding %q", b, pair)
		}
		keys[token] = b
	}
	return keys, nil
}

// tokens splits a line into key tokens, expanding arrow escapes
func tokens(line string) []string {
	for seq, name := range arrows {
		line = strings.ReplaceAll(line, seq, " "+name+" ")
	}
	return strings.Fields(line)
}
