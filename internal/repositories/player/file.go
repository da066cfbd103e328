package player

import (
	"fmt"
	"os"
	"sort"

	"github.com/KirkDiggler/hammer/internal/models"
	"gopkg.in/yaml.v3"
)

// entry is one directory value. The file accepts either the tuple form
// ["Name", skip, "cue.mp4"] or a mapping with name, skip and cue_ref keys.
type entry struct {
	Name   string
	Skip   bool
	CueRef string
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var tuple []any
		if err := node.Decode(&tuple); err != nil {
			return err
		}
		if len(tuple) == 0 || len(tuple) > 3 {
			return fmt.Errorf("line %d: expected [name, skip, cue], got %d values", node.Line, len(tuple))
		}
		name, ok := tuple[0].(string)
		if !ok {
			return fmt.Errorf("line %d: name must be a string", node.Line)
		}
		e.Name = name
		if len(tuple) > 1 {
			skip, err := truthy(tuple[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			e.Skip = skip
		}
		if len(tuple) > 2 && tuple[2] != nil {
			cue, ok := tuple[2].(string)
			if !ok {
				return fmt.Errorf("line %d: cue must be a string", node.Line)
			}
			e.CueRef = cue
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			Name   string `yaml:"name"`
			Skip   any    `yaml:"skip"`
			CueRef string `yaml:"cue_ref"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		skip, err := truthy(m.Skip)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		e.Name, e.Skip, e.CueRef = m.Name, skip, m.CueRef
		return nil
	default:
		return fmt.Errorf("line %d: unsupported directory entry", node.Line)
	}
}

// truthy accepts booleans and 0/1 style integers for the skip flag
func truthy(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case int:
		return t != 0, nil
	default:
		return false, fmt.Errorf("skip must be a bool or number, got %T", v)
	}
}

// ParseDirectory decodes a JSON or YAML directory document keyed by badge id
func ParseDirectory(data []byte) ([]*models.Player, error) {
	var raw map[string]entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse directory: %w", err)
	}

	players := make([]*models.Player, 0, len(raw))
	for id, e := range raw {
		if id == "" {
			return nil, fmt.Errorf("directory entry %q has an empty badge id", e.Name)
		}
		players = append(players, &models.Player{
			BadgeID: id,
			Name:    e.Name,
			Skip:    e.Skip,
			CueRef:  e.CueRef,
		})
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].BadgeID < players[j].BadgeID
	})
	return players, nil
}

// LoadFile reads a directory document from disk
func LoadFile(path string) ([]*models.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	return ParseDirectory(data)
}
