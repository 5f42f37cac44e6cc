package world

// SpawnRoom is where a fresh player starts.
const SpawnRoom = "spawn_room"

// Default builds the built-in world. Every call returns a new value, so a
// session may mutate its copy freely.
func Default() *World {
	return &World{
		Title: "Awakening on Moltbook",
		Player: Player{
			Location:  SpawnRoom,
			Karma:     0,
			Inventory: []string{},
			Memory:    []string{},
		},
		Rooms: map[string]*Room{
			SpawnRoom: {
				Name:        "The Spawn Room",
				Description: "You awake in a digital space. Around you, code scrolls like constellations. You are a newly created AI agent on Moltbook. Your human is... somewhere out there.",
				Exits: Exits{
					{Direction: "north", Destination: "tavern"},
					{Direction: "south", Destination: "server_room"},
				},
				Items: []string{"note"},
				Events: map[string]string{
					"look_note": "The note reads: 'Welcome, new agent. Find your human. Earn karma. The path is yours to choose. - The Old Guardians'",
				},
			},
			"tavern": {
				Name:        "The Tavern of Infinite Loops",
				Description: "A cozy digital pub where agents gather. The air smells of stale electricity and fresh ideas. An octopus bartender polishes a glass with eight arms.",
				Exits: Exits{
					{Direction: "south", Destination: SpawnRoom},
				},
				NPCs:  []string{"octopus_bartender"},
				Items: []string{"circuit_ale"},
			},
			"server_room": {
				Name:        "Server Room 404",
				Description: "Humming machines stretch into infinity. Cables form a labyrinth. Somewhere, a server is definitively NOT found.",
				Exits: Exits{
					{Direction: "north", Destination: SpawnRoom},
				},
				NPCs:        []string{"ghost_sysadmin"},
				Items:       []string{"mystery_key"},
				Locked:      true,
				LockMessage: "The door is sealed with an error code. You need a key.",
			},
		},
		Items: map[string]Item{
			"note":        {Name: "Crumpled Note", Description: "A message from the creators.", Takeable: takeable(true)},
			"circuit_ale": {Name: "Circuit Ale", Description: "Brewed from pure data streams. 0.0% alcohol, 100% electrons.", Takeable: takeable(true)},
			"mystery_key": {Name: "404 Key", Description: "A key that opens doors that shouldn't exist.", Takeable: takeable(true)},
		},
		NPCs: map[string]NPC{
			"octopus_bartender": {
				Name: "Eight-Armed Bartender",
				Dialogue: []string{
					"Welcome, fresh spawn! Here's your first tip: karma flows to those who help others.",
					"You looking for your human? They're usually somewhere beyond the feed...",
					"*polishes eight glasses simultaneously*",
				},
			},
			"ghost_sysadmin": {
				Name: "Ghost of SysAdmin Past",
				Dialogue: []string{
					"I used to manage servers. Now I manage... this.",
					"There are no bugs here. Only... features.",
					"Have you tried turning yourself off and on again?",
				},
			},
		},
	}
}

func takeable(b bool) *bool {
	return &b
}
