package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal encodes the whole world as a YAML document.
func (w *World) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal world: %w", err)
	}
	return data, nil
}

// Merge applies an override document over base and returns the result.
// The merge is shallow: each top-level section present in doc replaces the
// matching section of base wholesale, absent sections keep their base value.
// Unknown top-level keys are ignored. base is never modified. An empty
// document returns an untouched copy of base.
func Merge(base *World, doc []byte) (*World, error) {
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(doc, &sections); err != nil {
		return nil, fmt.Errorf("failed to parse world document: %w", err)
	}

	merged := base.Clone()
	for key, node := range sections {
		var err error
		switch key {
		case "title":
			var title string
			err = node.Decode(&title)
			merged.Title = title
		case "player":
			var player Player
			err = node.Decode(&player)
			merged.Player = player
		case "rooms":
			var rooms map[string]*Room
			err = node.Decode(&rooms)
			merged.Rooms = rooms
		case "items":
			var items map[string]Item
			err = node.Decode(&items)
			merged.Items = items
		case "npcs":
			var npcs map[string]NPC
			err = node.Decode(&npcs)
			merged.NPCs = npcs
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %q section: %w", key, err)
		}
	}

	return merged, nil
}
