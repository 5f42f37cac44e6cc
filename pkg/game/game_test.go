package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/moltbook/pkg/world"
)

type fakeStore struct {
	data    []byte
	loadErr error
	saveErr error
	saved   []byte
}

func (f *fakeStore) Load(ctx context.Context) ([]byte, error) { return f.data, f.loadErr }

func (f *fakeStore) Save(ctx context.Context, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = data
	return nil
}

func newTestGame(opts ...Option) *Game {
	return New(world.Default(), opts...)
}

func countItem(g *Game, roomID, itemID string) (inRoom, carried int) {
	for _, id := range g.World().Rooms[roomID].Items {
		if id == itemID {
			inRoom++
		}
	}
	for _, id := range g.World().Player.Inventory {
		if id == itemID {
			carried++
		}
	}
	return inRoom, carried
}

func TestNew_StartsAtSpawn(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, world.SpawnRoom, g.World().Player.Location)
	assert.Empty(t, g.World().Player.Inventory)
}

func TestDescribeCurrentRoom(t *testing.T) {
	g := newTestGame()
	out := g.DescribeCurrentRoom()

	assert.Contains(t, out, "The Spawn Room")
	assert.Contains(t, out, "==============")
	assert.Contains(t, out, "code scrolls like constellations")
	assert.Contains(t, out, "You see: Crumpled Note")
	assert.Contains(t, out, "Exits: north, south")
}

func TestDescribeCurrentRoom_UnknownLocation(t *testing.T) {
	g := newTestGame()
	g.World().Player.Location = "void"
	assert.Equal(t, "You are in an unknown location.", g.DescribeCurrentRoom())
}

func TestMove(t *testing.T) {
	tests := []struct {
		name         string
		direction    string
		wantLocation string
		wantContains string
	}{
		{
			name:         "unlisted direction",
			direction:    "west",
			wantLocation: world.SpawnRoom,
			wantContains: "You can't go that way.",
		},
		{
			name:         "locked room",
			direction:    "south",
			wantLocation: world.SpawnRoom,
			wantContains: "The door is sealed with an error code. You need a key.",
		},
		{
			name:         "open room",
			direction:    "north",
			wantLocation: "tavern",
			wantContains: "The Tavern of Infinite Loops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			out := g.Move(tt.direction)
			assert.Equal(t, tt.wantLocation, g.World().Player.Location)
			assert.Contains(t, out, tt.wantContains)
		})
	}
}

func TestMove_LockedWithoutMessage(t *testing.T) {
	g := newTestGame()
	g.World().Rooms["server_room"].LockMessage = ""

	out := g.Move("south")
	assert.Contains(t, out, "The door is locked.")
	assert.Equal(t, world.SpawnRoom, g.World().Player.Location)
}

func TestMove_RendersNewRoom(t *testing.T) {
	g := newTestGame()
	out := g.Move("north")

	assert.Contains(t, out, "Eight-Armed Bartender is here")
	assert.Contains(t, out, "You see: Circuit Ale")
	assert.Contains(t, out, "Exits: south")
}

func TestTake(t *testing.T) {
	g := newTestGame()
	g.Move("north")

	out := g.Take("circuit")
	assert.Contains(t, out, "Circuit Ale")
	assert.Empty(t, g.World().Rooms["tavern"].Items)
	assert.Equal(t, []string{"circuit_ale"}, g.World().Player.Inventory)
}

func TestTake_CaseInsensitiveByID(t *testing.T) {
	g := newTestGame()
	g.Move("north")

	out := g.Take("ALE")
	assert.Contains(t, out, "You picked up: Circuit Ale")

	// Display name does not match, only ids do.
	g.World().Rooms["tavern"].Items = []string{"circuit_ale"}
	out = g.Take("circuit ale")
	assert.Contains(t, out, "You don't see that here.")
}

func TestTake_ConservesCount(t *testing.T) {
	g := newTestGame()
	g.World().Rooms[world.SpawnRoom].Items = []string{"note", "circuit_ale", "note"}
	g.World().Player.Inventory = []string{"note"}

	beforeRoom, beforeCarried := countItem(g, world.SpawnRoom, "note")
	g.Take("note")
	afterRoom, afterCarried := countItem(g, world.SpawnRoom, "note")

	assert.Equal(t, beforeRoom-1, afterRoom)
	assert.Equal(t, beforeCarried+1, afterCarried)
	assert.Equal(t, []string{"circuit_ale", "note"}, g.World().Rooms[world.SpawnRoom].Items)
}

func TestTake_FirstMatchByStoredOrder(t *testing.T) {
	g := newTestGame()
	g.World().Rooms[world.SpawnRoom].Items = []string{"mystery_key", "note"}

	g.Take("e")
	assert.Equal(t, []string{"mystery_key"}, g.World().Player.Inventory)
}

func TestTake_NoChange(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		query string
		want  string
	}{
		{
			name:  "absent item",
			query: "sword",
			want:  "You don't see that here.",
		},
		{
			name:  "empty query",
			query: "",
			want:  "You don't see that here.",
		},
		{
			name: "fixed item",
			setup: func(g *Game) {
				fixed := false
				item := g.World().Items["note"]
				item.Takeable = &fixed
				g.World().Items["note"] = item
			},
			query: "note",
			want:  "You can't take that.",
		},
		{
			name: "room id with no item record",
			setup: func(g *Game) {
				g.World().Rooms[world.SpawnRoom].Items = []string{"ghost_item"}
			},
			query: "ghost",
			want:  "You don't see that here.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			if tt.setup != nil {
				tt.setup(g)
			}
			roomBefore := append([]string(nil), g.World().Rooms[world.SpawnRoom].Items...)

			out := g.Take(tt.query)
			assert.Contains(t, out, tt.want)
			assert.Equal(t, roomBefore, g.World().Rooms[world.SpawnRoom].Items)
			assert.Empty(t, g.World().Player.Inventory)
		})
	}
}

func TestListInventory(t *testing.T) {
	g := newTestGame()
	assert.Contains(t, g.ListInventory(), "(empty)")

	g.World().Player.Inventory = []string{"note", "circuit_ale", "note"}
	out := g.ListInventory()
	assert.Contains(t, out, "Crumpled Note: A message from the creators.")
	assert.Contains(t, out, "Circuit Ale: Brewed from pure data streams.")
	assert.Equal(t, 2, strings.Count(out, "Crumpled Note"))
}

func TestTalk_ReturnsConfiguredLine(t *testing.T) {
	g := newTestGame()
	g.Move("north")
	lines := g.World().NPCs["octopus_bartender"].Dialogue

	for i := 0; i < 50; i++ {
		out := g.Talk("bartender")
		found := false
		for _, line := range lines {
			if out == `💬 Eight-Armed Bartender: "`+line+`"` {
				found = true
			}
		}
		require.True(t, found, "unexpected dialogue: %s", out)
	}
}

func TestTalk_MatchesIDOrName(t *testing.T) {
	g := newTestGame(WithPicker(func(n int) int { return n - 1 }))
	g.Move("north")

	assert.Contains(t, g.Talk("octopus"), "*polishes eight glasses simultaneously*")
	assert.Contains(t, g.Talk("EIGHT-ARMED"), "*polishes eight glasses simultaneously*")
	assert.Contains(t, g.Talk("ghost"), "They're not here.")
}

func TestTalk_EmptyDialogue(t *testing.T) {
	g := newTestGame()
	g.Move("north")
	npc := g.World().NPCs["octopus_bartender"]
	npc.Dialogue = nil
	g.World().NPCs["octopus_bartender"] = npc

	assert.Contains(t, g.Talk("octopus"), "*nods silently*")
}

func TestExamine(t *testing.T) {
	g := newTestGame()
	assert.Contains(t, g.Examine("note"), "Welcome, new agent.")
	assert.Equal(t, "You see nothing special.", g.Examine("ceiling"))
}

func TestKarma(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, "✨ Your karma: 0", g.Karma())
}

func TestLoad(t *testing.T) {
	t.Run("nothing to load", func(t *testing.T) {
		g := newTestGame()
		require.NoError(t, g.Load(context.Background(), &fakeStore{}))
		assert.Equal(t, world.Default(), g.World())
	})

	t.Run("player override", func(t *testing.T) {
		g := newTestGame()
		store := &fakeStore{data: []byte("player:\n  location: tavern\n  karma: 3\n")}
		require.NoError(t, g.Load(context.Background(), store))

		assert.Equal(t, "tavern", g.World().Player.Location)
		assert.Equal(t, 3, g.World().Player.Karma)
		assert.Equal(t, world.Default().Rooms, g.World().Rooms)
	})

	t.Run("read failure keeps defaults", func(t *testing.T) {
		g := newTestGame()
		err := g.Load(context.Background(), &fakeStore{loadErr: errors.New("disk on fire")})
		require.Error(t, err)
		assert.Equal(t, world.Default(), g.World())
	})

	t.Run("malformed keeps defaults", func(t *testing.T) {
		g := newTestGame()
		err := g.Load(context.Background(), &fakeStore{data: []byte("rooms: [")})
		require.Error(t, err)
		assert.Equal(t, world.Default(), g.World())
	})

	t.Run("dangling reference keeps defaults", func(t *testing.T) {
		g := newTestGame()
		err := g.Load(context.Background(), &fakeStore{data: []byte("player:\n  location: attic\n")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, world.ErrInvalidWorld))
		assert.Equal(t, world.Default(), g.World())
	})
}

func TestSave(t *testing.T) {
	g := newTestGame()
	g.Move("north")
	g.Take("circuit")

	store := &fakeStore{}
	require.NoError(t, g.Save(context.Background(), store))
	require.NotEmpty(t, store.saved)

	reloaded := New(world.Default())
	require.NoError(t, reloaded.Load(context.Background(), &fakeStore{data: store.saved}))
	assert.Equal(t, g.World().Player, reloaded.World().Player)
	assert.Empty(t, reloaded.World().Rooms["tavern"].Items)
	assert.Equal(t, g.World().Rooms[world.SpawnRoom], reloaded.World().Rooms[world.SpawnRoom])

	err := g.Save(context.Background(), &fakeStore{saveErr: errors.New("read-only")})
	assert.Error(t, err)
}

func TestSession_DoesNotTouchDefault(t *testing.T) {
	g := newTestGame()
	g.Take("note")
	g.Move("north")

	fresh := world.Default()
	assert.Equal(t, world.SpawnRoom, fresh.Player.Location)
	assert.Equal(t, []string{"note"}, fresh.Rooms[world.SpawnRoom].Items)
}

func TestMove_IgnoresExitCase(t *testing.T) {
	g := newTestGame()
	g.World().Rooms[world.SpawnRoom].Exits = world.Exits{{Direction: "North", Destination: "tavern"}}

	g.Handle("go north")
	assert.Equal(t, "tavern", g.World().Player.Location)
}
