package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/moltbook/pkg/game"
)

const PlaceHolderText = "Type a command (help for a list)..."

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	game         *game.Game
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	transcript   []string
	lastResponse string
	pending      *game.CommandResult // waiting on a follow-up line
	farewell     string
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(3)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(g *game.Game) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	return ConsoleUI{
		game:         g,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: viewport.New(20, 20),
		transcript:   []string{g.Banner(), g.DescribeCurrentRoom()},
		farewell:     game.InterruptFarewell,
	}
}

func writeMetadata(g *game.Game) string {
	w := g.World()

	var content strings.Builder
	content.WriteString(titleStyle.Render("PLAYER") + "\n\n")

	content.WriteString("Location:\n")
	if room, ok := w.CurrentRoom(); ok {
		content.WriteString(room.Name + "\n\n")
	} else {
		content.WriteString(w.Player.Location + "\n\n")
	}

	content.WriteString(fmt.Sprintf("Karma:\n%d\n\n", w.Player.Karma))

	content.WriteString("Carrying:\n")
	if len(w.Player.Inventory) == 0 {
		content.WriteString("Nothing\n")
	}
	for _, id := range w.Player.Inventory {
		name := id
		if item, ok := w.Items[id]; ok {
			name = item.Name
		}
		content.WriteString("• " + name + "\n")
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+Y: Copy reply\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

// writeChatContent rebuilds the transcript for the current viewport width
func (m *ConsoleUI) writeChatContent() {
	width := m.chatViewport.Width - 4
	if width < 10 {
		width = 10
	}

	blocks := make([]string, 0, len(m.transcript))
	for _, block := range m.transcript {
		blocks = append(blocks, wordwrap.String(block, width))
	}

	m.chatViewport.SetContent(strings.Join(blocks, "\n\n"))
	m.chatViewport.GotoBottom()
	m.metaViewport.SetContent(writeMetadata(m.game))
}

func (m *ConsoleUI) respond(message string) {
	if message == "" {
		return
	}
	m.lastResponse = message
	m.transcript = append(m.transcript, message)
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 5
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 2
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlY:
			if m.lastResponse != "" {
				if err := clipboard.WriteAll(m.lastResponse); err != nil {
					m.transcript = append(m.transcript, noticeStyle.Render("Could not copy: "+err.Error()))
				} else {
					m.transcript = append(m.transcript, noticeStyle.Render("Copied last reply."))
				}
				m.writeChatContent()
			}
			return m, nil

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			return m.submit(input)
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// submit evaluates one line, either a new command or the answer to a
// pending prompt.
func (m ConsoleUI) submit(input string) (tea.Model, tea.Cmd) {
	var res *game.CommandResult
	if m.pending != nil {
		m.transcript = append(m.transcript, userStyle.Render(m.pending.Prompt)+input)
		res = m.pending.Resume(input)
		m.pending = nil
	} else {
		if input == "" {
			return m, nil
		}
		m.transcript = append(m.transcript, userStyle.Render("> ")+input)
		res = m.game.Handle(input)
	}

	if res.Resume != nil {
		m.pending = res
		m.transcript = append(m.transcript, userStyle.Render(res.Prompt))
	}
	m.respond(res.Message)
	m.writeChatContent()

	if res.Quit {
		m.farewell = res.Message
		return m, tea.Quit
	}
	return m, nil
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 1).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// Farewell is the line to print once the program has left the alt screen.
func (m ConsoleUI) Farewell() string {
	return m.farewell
}
