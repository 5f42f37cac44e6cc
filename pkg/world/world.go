package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidWorld is returned when a world references ids missing from its own tables.
var ErrInvalidWorld = errors.New("invalid world")

// World is the complete game state: rooms, items, NPCs and the player.
type World struct {
	Title  string           `yaml:"title"`
	Player Player           `yaml:"player"`
	Rooms  map[string]*Room `yaml:"rooms"`
	Items  map[string]Item  `yaml:"items"`
	NPCs   map[string]NPC   `yaml:"npcs"`
}

// Player is the only mutable part of the world during play.
type Player struct {
	Location  string   `yaml:"location"`
	Karma     int      `yaml:"karma"`
	Inventory []string `yaml:"inventory"` // item ids, duplicates allowed
	Memory    []string `yaml:"memory"`    // reserved, no command writes to it yet
}

// Room is a discrete location with exits, contents and an optional lock.
type Room struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Exits       Exits             `yaml:"exits,omitempty"`
	Items       []string          `yaml:"items,omitempty"`
	NPCs        []string          `yaml:"npcs,omitempty"`
	Locked      bool              `yaml:"locked,omitempty"`
	LockMessage string            `yaml:"lock_message,omitempty"`
	Events      map[string]string `yaml:"events,omitempty"` // e.g. "look_note" → text shown by "look note"
}

// Item is a takeable or fixed object.
type Item struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Takeable    *bool  `yaml:"takeable,omitempty"` // nil means takeable
}

// CanTake reports whether the item may be picked up.
func (i Item) CanTake() bool {
	return i.Takeable == nil || *i.Takeable
}

// NPC is a non-player character with a pool of dialogue lines.
type NPC struct {
	Name     string   `yaml:"name"`
	Dialogue []string `yaml:"dialogue"`
}

// CurrentRoom returns the room the player is standing in.
func (w *World) CurrentRoom() (*Room, bool) {
	room, ok := w.Rooms[w.Player.Location]
	return room, ok && room != nil
}

// RemoveItem removes the first occurrence of id from the room's items.
func (r *Room) RemoveItem(id string) bool {
	for i, itemID := range r.Items {
		if itemID == id {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy that shares no containers with w.
func (w *World) Clone() *World {
	if w == nil {
		return nil
	}
	c := &World{
		Title: w.Title,
		Player: Player{
			Location:  w.Player.Location,
			Karma:     w.Player.Karma,
			Inventory: cloneStrings(w.Player.Inventory),
			Memory:    cloneStrings(w.Player.Memory),
		},
	}
	if w.Rooms != nil {
		c.Rooms = make(map[string]*Room, len(w.Rooms))
		for id, room := range w.Rooms {
			c.Rooms[id] = room.Clone()
		}
	}
	if w.Items != nil {
		c.Items = make(map[string]Item, len(w.Items))
		for id, item := range w.Items {
			if item.Takeable != nil {
				takeable := *item.Takeable
				item.Takeable = &takeable
			}
			c.Items[id] = item
		}
	}
	if w.NPCs != nil {
		c.NPCs = make(map[string]NPC, len(w.NPCs))
		for id, npc := range w.NPCs {
			npc.Dialogue = cloneStrings(npc.Dialogue)
			c.NPCs[id] = npc
		}
	}
	return c
}

// Clone returns a deep copy of the room.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Exits = r.Exits.clone()
	c.Items = cloneStrings(r.Items)
	c.NPCs = cloneStrings(r.NPCs)
	if r.Events != nil {
		c.Events = make(map[string]string, len(r.Events))
		for k, v := range r.Events {
			c.Events[k] = v
		}
	}
	return &c
}

// Validate checks that every id referenced by the player and the rooms
// exists in its owning table.
func (w *World) Validate() error {
	var problems []string

	if _, ok := w.CurrentRoom(); !ok {
		problems = append(problems, fmt.Sprintf("player location %q is not a room", w.Player.Location))
	}
	for _, id := range w.Player.Inventory {
		if _, ok := w.Items[id]; !ok {
			problems = append(problems, fmt.Sprintf("inventory item %q is not an item", id))
		}
	}

	roomIDs := make([]string, 0, len(w.Rooms))
	for id := range w.Rooms {
		roomIDs = append(roomIDs, id)
	}
	sort.Strings(roomIDs)

	for _, id := range roomIDs {
		room := w.Rooms[id]
		if room == nil {
			problems = append(problems, fmt.Sprintf("room %q is empty", id))
			continue
		}
		for _, exit := range room.Exits {
			if dest, ok := w.Rooms[exit.Destination]; !ok || dest == nil {
				problems = append(problems, fmt.Sprintf("room %q exit %q leads to unknown room %q", id, exit.Direction, exit.Destination))
			}
		}
		for _, itemID := range room.Items {
			if _, ok := w.Items[itemID]; !ok {
				problems = append(problems, fmt.Sprintf("room %q holds unknown item %q", id, itemID))
			}
		}
		for _, npcID := range room.NPCs {
			if _, ok := w.NPCs[npcID]; !ok {
				problems = append(problems, fmt.Sprintf("room %q holds unknown npc %q", id, npcID))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidWorld, strings.Join(problems, "; "))
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
