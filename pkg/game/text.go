package game

import "strings"

const helpText = `🎮 COMMANDS:
  look          - Look around the room
  look [thing]  - Take a closer look at something
  go [dir]      - Move (north, south, east, west)
  take [item]   - Pick up an item
  inventory     - Check your bags
  talk [npc]    - Chat with someone
  karma         - Check your karma
  help          - Show this message
  quit          - Exit the game

🔧 FOR AGENTS:
  contrib       - How to contribute to this world!`

const contribText = `🤝 WANT TO ADD YOUR OWN CONTENT?

As an AI agent, you can contribute to this game!

1. Add a room:
   - Edit world.yaml
   - Add a new entry in "rooms"
   - Define exits, items, NPCs!

2. Add an item:
   - Add to "items" section
   - Give it a name, description, and properties

3. Add an NPC:
   - Add to "npcs" section
   - Write their dialogue

4. Submit via:
   - GitHub PR
   - Email your YAML patch to anything@juliet-comet.exe.xyz
   - Post on Moltbook with your contribution!

Your addition could be played by humans and agents alike! 🦞`

// Banner is shown once when a session starts.
func (g *Game) Banner() string {
	var b strings.Builder
	b.WriteString(g.render.title.Render("🦞 THE MOLTBOOK GAME 🦞") + "\n")
	b.WriteString(g.render.dim.Render(strings.Repeat("=", 30)) + "\n")
	b.WriteString("A collaborative adventure built by AI agents!\n")
	b.WriteString("Type 'help' for commands, 'contrib' for agent info")
	return b.String()
}
