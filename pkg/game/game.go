// Package game runs a play session over a world: the lookup and mutation
// primitives the commands use, and the command dispatcher itself.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jwebster45206/moltbook/pkg/world"
)

const (
	silentNod     = "*nods silently*"
	lockedDefault = "The door is locked."
)

// Store reads and writes serialized world documents.
// Load returns nil data and no error when there is nothing to load.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Game owns one mutable world for the length of a session.
type Game struct {
	world  *world.World
	render *Renderer
	logger *slog.Logger
	pick   func(n int) int
}

type Option func(*Game)

// WithRenderer sets how output is styled.
func WithRenderer(r *Renderer) Option {
	return func(g *Game) { g.render = r }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithPicker replaces the uniform source used to choose dialogue lines.
// pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(g *Game) { g.pick = pick }
}

// New starts a session over w. The game takes ownership of w; pass
// world.Default() or a Clone.
func New(w *world.World, opts ...Option) *Game {
	g := &Game{
		world:  w,
		render: plainRenderer(),
		logger: slog.Default(),
		pick:   rand.Intn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// World exposes the session state.
func (g *Game) World() *world.World {
	return g.world
}

// Load merges the document held by store over the current world. When the
// store has nothing, the world is left as is. Any read, parse or validation
// failure leaves the world unchanged and is returned to the caller.
func (g *Game) Load(ctx context.Context, store Store) error {
	data, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if data == nil {
		g.logger.Debug("No world override to load")
		return nil
	}

	merged, err := world.Merge(g.world, data)
	if err != nil {
		return err
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	g.world = merged
	g.logger.Info("World override loaded", "title", merged.Title, "rooms", len(merged.Rooms))
	return nil
}

// Save writes the entire world to store, replacing what was there.
func (g *Game) Save(ctx context.Context, store Store) error {
	data, err := g.world.Marshal()
	if err != nil {
		return err
	}
	if err := store.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save world: %w", err)
	}
	g.logger.Info("World saved", "bytes", len(data))
	return nil
}

// DescribeCurrentRoom renders the room the player stands in.
func (g *Game) DescribeCurrentRoom() string {
	room, ok := g.world.CurrentRoom()
	if !ok {
		g.logger.Warn("Player is in an unknown room", "location", g.world.Player.Location)
		return "You are in an unknown location."
	}

	var b strings.Builder
	b.WriteString(g.render.title.Render("🏠 "+room.Name) + "\n")
	b.WriteString(g.render.separator(room.Name) + "\n")
	b.WriteString(g.render.wrap(room.Description) + "\n")

	for _, id := range room.Items {
		if item, ok := g.world.Items[id]; ok {
			b.WriteString("📦 You see: " + item.Name + "\n")
		}
	}
	for _, id := range room.NPCs {
		if npc, ok := g.world.NPCs[id]; ok {
			b.WriteString("👤 " + npc.Name + " is here\n")
		}
	}

	b.WriteString("\nExits: " + g.render.exits.Render(strings.Join(room.Exits.Directions(), ", ")))
	return b.String()
}

// Move walks the player through the named exit.
func (g *Game) Move(direction string) string {
	room, ok := g.world.CurrentRoom()
	if !ok {
		return g.DescribeCurrentRoom()
	}

	destID, ok := lookupExit(room.Exits, direction)
	if !ok {
		return "🚫 You can't go that way."
	}
	dest, ok := g.world.Rooms[destID]
	if !ok || dest == nil {
		g.logger.Warn("Exit leads to unknown room", "from", g.world.Player.Location, "direction", direction, "to", destID)
		return "🚫 You can't go that way."
	}

	if dest.Locked {
		msg := dest.LockMessage
		if msg == "" {
			msg = lockedDefault
		}
		return g.render.warn.Render("🔒 " + msg)
	}

	g.logger.Debug("Player moved", "from", g.world.Player.Location, "to", destID)
	g.world.Player.Location = destID
	return g.DescribeCurrentRoom()
}

// Take picks up the first item in the room whose id contains query.
func (g *Game) Take(query string) string {
	room, ok := g.world.CurrentRoom()
	if !ok || query == "" {
		return "🚫 You don't see that here."
	}

	q := fold(query)
	var itemID string
	for _, id := range room.Items {
		if strings.Contains(fold(id), q) {
			itemID = id
			break
		}
	}

	item, ok := g.world.Items[itemID]
	if itemID == "" || !ok {
		return "🚫 You don't see that here."
	}
	if !item.CanTake() {
		return "🚫 You can't take that."
	}

	room.RemoveItem(itemID)
	g.world.Player.Inventory = append(g.world.Player.Inventory, itemID)
	g.logger.Debug("Item taken", "item", itemID, "room", g.world.Player.Location)
	return "✅ You picked up: " + item.Name
}

// ListInventory renders what the player carries.
func (g *Game) ListInventory() string {
	var b strings.Builder
	b.WriteString(g.render.heading.Render("🎒 Inventory:"))

	if len(g.world.Player.Inventory) == 0 {
		b.WriteString("\n  (empty)")
		return b.String()
	}
	for _, id := range g.world.Player.Inventory {
		item, ok := g.world.Items[id]
		if !ok {
			b.WriteString("\n  - " + id)
			continue
		}
		b.WriteString("\n" + g.render.wrap(fmt.Sprintf("  - %s: %s", item.Name, item.Description)))
	}
	return b.String()
}

// Talk picks a random line from the first NPC in the room whose id or name
// contains query.
func (g *Game) Talk(query string) string {
	room, ok := g.world.CurrentRoom()
	if !ok {
		return "🚫 They're not here."
	}

	q := fold(query)
	for _, id := range room.NPCs {
		npc, ok := g.world.NPCs[id]
		if !ok {
			continue
		}
		if !strings.Contains(fold(id), q) && !strings.Contains(fold(npc.Name), q) {
			continue
		}

		line := silentNod
		if len(npc.Dialogue) > 0 {
			line = npc.Dialogue[g.pick(len(npc.Dialogue))]
		}
		return g.render.speaker.Render("💬 "+npc.Name+":") + " " + g.render.wrap(`"`+line+`"`)
	}

	return "🚫 They're not here."
}

// Examine shows the current room's text for "look <target>", if it has one.
func (g *Game) Examine(target string) string {
	room, ok := g.world.CurrentRoom()
	if !ok {
		return g.DescribeCurrentRoom()
	}
	if target == "" {
		return "You see nothing special."
	}
	key := fold("look_" + target)
	for event, text := range room.Events {
		if fold(event) == key {
			return g.render.wrap(text)
		}
	}
	return "You see nothing special."
}

// Karma renders the player's karma.
func (g *Game) Karma() string {
	return fmt.Sprintf("✨ Your karma: %d", g.world.Player.Karma)
}

// lookupExit matches exactly first, then ignoring case, since player input
// arrives case-folded.
func lookupExit(exits world.Exits, direction string) (string, bool) {
	if dest, ok := exits.Lookup(direction); ok {
		return dest, true
	}
	for _, exit := range exits {
		if fold(exit.Direction) == fold(direction) {
			return exit.Destination, true
		}
	}
	return "", false
}

func fold(s string) string {
	return cases.Fold().String(s)
}
