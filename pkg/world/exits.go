package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Exit is a named direction leading to another room.
type Exit struct {
	Direction   string
	Destination string // room id
}

// Exits is an ordered direction → room id mapping. It is stored as a YAML
// mapping and keeps the document's key order in both directions.
type Exits []Exit

// Lookup returns the destination for direction.
func (e Exits) Lookup(direction string) (string, bool) {
	for _, exit := range e {
		if exit.Direction == direction {
			return exit.Destination, true
		}
	}
	return "", false
}

// Directions lists the exit directions in stored order.
func (e Exits) Directions() []string {
	dirs := make([]string, 0, len(e))
	for _, exit := range e {
		dirs = append(dirs, exit.Direction)
	}
	return dirs
}

func (e Exits) clone() Exits {
	if e == nil {
		return nil
	}
	return append(make(Exits, 0, len(e)), e...)
}

// UnmarshalYAML decodes a mapping node, preserving key order.
func (e *Exits) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*e = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: exits must be a mapping of direction to room id", node.Line)
	}

	exits := make(Exits, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var exit Exit
		if err := node.Content[i].Decode(&exit.Direction); err != nil {
			return fmt.Errorf("line %d: invalid exit direction: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&exit.Destination); err != nil {
			return fmt.Errorf("line %d: invalid exit destination: %w", node.Content[i+1].Line, err)
		}
		if seen[exit.Direction] {
			return fmt.Errorf("line %d: duplicate exit %q", node.Content[i].Line, exit.Direction)
		}
		seen[exit.Direction] = true
		exits = append(exits, exit)
	}
	*e = exits
	return nil
}

// MarshalYAML encodes the exits as a mapping in stored order.
func (e Exits) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, exit := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: exit.Direction},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: exit.Destination},
		)
	}
	return node, nil
}
