package game

import (
	"strings"
)

type CommandType string

const (
	CmdQuit      CommandType = "quit"
	CmdLook      CommandType = "look"
	CmdExamine   CommandType = "examine"
	CmdGo        CommandType = "go"
	CmdTake      CommandType = "take"
	CmdInventory CommandType = "inventory"
	CmdTalk      CommandType = "talk"
	CmdHelp      CommandType = "help"
	CmdContrib   CommandType = "contrib"
	CmdKarma     CommandType = "karma"
	CmdNone      CommandType = "" // Not a recognized command
)

const (
	// Farewell is printed when the player quits.
	Farewell = "👋 See you on Moltbook!"
	// InterruptFarewell is printed when input ends or is interrupted.
	InterruptFarewell = "👋 Bye!"

	TalkPrompt = "Talk to who? "
	unknownMsg = "🤔 I don't understand. Type 'help'!"
)

// parseCommand normalizes input and splits it into a command and its argument.
func parseCommand(input string) (CommandType, string) {
	line := fold(strings.TrimSpace(input))

	exact := map[string]CommandType{
		"quit":      CmdQuit,
		"exit":      CmdQuit,
		"look":      CmdLook,
		"inventory": CmdInventory,
		"inv":       CmdInventory,
		"talk":      CmdTalk,
		"help":      CmdHelp,
		"contrib":   CmdContrib,
		"karma":     CmdKarma,
	}
	if cmd, ok := exact[line]; ok {
		return cmd, ""
	}

	withArg := []struct {
		prefix string
		cmd    CommandType
	}{
		{"go ", CmdGo},
		{"take ", CmdTake},
		{"talk ", CmdTalk},
		{"look ", CmdExamine},
	}
	for _, c := range withArg {
		if arg, ok := strings.CutPrefix(line, c.prefix); ok {
			return c.cmd, strings.TrimSpace(arg)
		}
	}

	return CmdNone, ""
}

// CommandResult is the outcome of one line of input.
type CommandResult struct {
	Message string // Text to show the player, may be empty
	Quit    bool   // The session should end

	// Prompt is set when the command needs one more line of input. The
	// caller shows Prompt, reads a line and passes it to Resume.
	Prompt string
	Resume func(input string) *CommandResult
}

// Handle evaluates one line of player input.
func (g *Game) Handle(input string) *CommandResult {
	cmd, arg := parseCommand(input)

	switch cmd {
	case CmdQuit:
		return &CommandResult{Message: Farewell, Quit: true}
	case CmdLook:
		return &CommandResult{Message: g.DescribeCurrentRoom()}
	case CmdExamine:
		return &CommandResult{Message: g.Examine(arg)}
	case CmdGo:
		return &CommandResult{Message: g.Move(arg)}
	case CmdTake:
		return &CommandResult{Message: g.Take(arg)}
	case CmdInventory:
		return &CommandResult{Message: g.ListInventory()}
	case CmdTalk:
		if arg == "" {
			return &CommandResult{
				Prompt: TalkPrompt,
				Resume: func(input string) *CommandResult {
					return &CommandResult{Message: g.Talk(fold(strings.TrimSpace(input)))}
				},
			}
		}
		return &CommandResult{Message: g.Talk(arg)}
	case CmdHelp:
		return &CommandResult{Message: helpText}
	case CmdContrib:
		return &CommandResult{Message: contribText}
	case CmdKarma:
		return &CommandResult{Message: g.Karma()}
	default:
		return &CommandResult{Message: unknownMsg}
	}
}
