package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"
	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	placeholder   = "Enter your command..."
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

// SessionFunc starts a new game session. It is called once at startup and
// again on every /restart.
type SessionFunc func() (*engine.Engine, error)

type model struct {
	state      sessionState
	engine     *engine.Engine
	newSession SessionFunc
	textInput  textinput.Model
	viewport   viewport.Model
	err        error
	width      int
	height     int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(newSession SessionFunc) model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	// Letters belong to the input line, so the log only scrolls by page or mouse.
	vp := viewport.New(logWidth(defaultWidth), defaultHeight-6)
	vp.MouseWheelEnabled = true
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	m := model{
		newSession: newSession,
		textInput:  ti,
		viewport:   vp,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.restart()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// restart replaces the running session with a fresh one.
func (m *model) restart() {
	eng, err := m.newSession()
	if err != nil {
		m.err = err
		m.state = stateError
		return
	}
	m.engine = eng
	m.state = statePlaying
	m.textInput.Reset()
	m.refreshLog()
}

func (m *model) refreshLog() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			action := m.textInput.Value()
			m.textInput.Reset()

			switch strings.TrimSpace(action) {
			case "/quit":
				return m, tea.Quit
			case "/restart":
				m.restart()
				return m, nil
			}

			m.engine.ProcessTurn(action)
			m.refreshLog()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = logWidth(msg.Width)
		m.viewport.Height = max(msg.Height-6, 1)
		if m.state == statePlaying {
			m.refreshLog()
		}
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, tea.Batch(cmd, vpCmd)
	}

	return m, nil
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Press Enter to submit. /restart starts over, /quit or Esc leaves.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = "\n  Error: " + m.err.Error() + "\n\nPress Esc to quit."
	}

	return "\n" + s + "\n"
}

// renderState draws the side panel: command key, location and inventory.
func (m model) renderState() string {
	if m.engine == nil {
		return ""
	}
	state := m.engine.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("COMMAND KEY") + "\n")
	for _, c := range engine.Commands() {
		b.WriteString("• " + c.Usage + "\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("LOCATION") + "\n")
	b.WriteString(state.CurrentRoom + "\n\n")

	b.WriteString(titleStyle.Render("INVENTORY") + "\n")
	if len(state.Inventory) == 0 {
		b.WriteString("(empty)\n")
	} else {
		for _, item := range state.Inventory {
			b.WriteString("- " + item + "\n")
		}
	}

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

// renderLog formats the output log oldest first, one paragraph per line.
func (m model) renderLog() string {
	if m.engine == nil {
		return ""
	}
	width := m.viewport.Width
	if width <= 0 {
		width = logWidth(defaultWidth)
	}

	lines := m.engine.Log()
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped := wordwrap.String(line, width)
		if strings.HasPrefix(line, "> ") {
			rendered = append(rendered, userStyle.Render(wrapped))
			continue
		}
		rendered = append(rendered, gameStyle.Render(wrapped))
	}
	return strings.Join(rendered, "\n\n")
}

func logWidth(total int) int {
	return max(int(float64(total)*0.75), 1)
}

// DefaultSession starts a session in the built-in world.
func DefaultSession(logger zerolog.Logger) SessionFunc {
	return func() (*engine.Engine, error) {
		w, err := models.DefaultWorld()
		if err != nil {
			return nil, err
		}
		eng := engine.NewEngine(w, logger)
		state := eng.State()
		logger.Info().Str("session_id", state.ID.String()).Str("room", state.CurrentRoom).Msg("session started")
		return eng, nil
	}
}

// Run starts the TUI and blocks until the player quits.
func Run(newSession SessionFunc, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithMouseCellMotion())
	p := tea.NewProgram(NewModel(newSession), opts...)
	_, err := p.Run()
	return err
}
