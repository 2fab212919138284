// Package tui provides the terminal UI for the puzzle, including SSH
// server support via Wish.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ostankin/ricochet-tui/internal/config"
	"github.com/ostankin/ricochet-tui/internal/engine"
	"github.com/ostankin/ricochet-tui/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	solvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Model is the Bubble Tea model for a puzzle session.
type Model struct {
	session  *engine.Session
	store    *storage.Store
	cfg      config.Config
	strategy engine.Strategy
	seed     int64
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	status   string
	alert    bool
	quitting bool
}

// NewModel creates a puzzle model. A zero seed is replaced with a
// time-based one. The store may be nil; solutions are then not persisted.
func NewModel(cfg config.Config, store *storage.Store, strategy engine.Strategy, seed int64) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	params := cfg.Generation.GenParams()

	board, err := generateBoard(strategy, rng, params, cfg.Generation.RegenAttempts)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  engine.NewSession(board, rng, params),
		store:    store,
		cfg:      cfg,
		strategy: strategy,
		seed:     seed,
		keys:     DefaultKeyMap(),
		help:     h,
	}, nil
}

// generateBoard retries generation with fresh layouts until a board with
// a legal target comes out, or the retry budget runs dry.
func generateBoard(strategy engine.Strategy, rng *rand.Rand, p engine.GenParams, attempts int) (*engine.Board, error) {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		var board *engine.Board
		board, err = engine.Generate(strategy, rng, p)
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, engine.ErrNoLegalTarget) && !errors.Is(err, engine.ErrGenerationFailed) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no playable board after %d attempts: %w", attempts, err)
}

// Init implements tea.Model. The model is purely event driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.SelectRed):
		m.selectColor(engine.Red)
	case key.Matches(msg, m.keys.SelectGreen):
		m.selectColor(engine.Green)
	case key.Matches(msg, m.keys.SelectBlue):
		m.selectColor(engine.Blue)
	case key.Matches(msg, m.keys.SelectYellow):
		m.selectColor(engine.Yellow)

	case key.Matches(msg, m.keys.Deselect):
		m.session.Deselect()
		m.setStatus("", false)

	case key.Matches(msg, m.keys.Up):
		m.slide(engine.Up)
	case key.Matches(msg, m.keys.Down):
		m.slide(engine.Down)
	case key.Matches(msg, m.keys.Left):
		m.slide(engine.Left)
	case key.Matches(msg, m.keys.Right):
		m.slide(engine.Right)

	case key.Matches(msg, m.keys.Undo):
		m.session.UndoLast()
		m.setStatus("", false)

	case key.Matches(msg, m.keys.Reset):
		m.session.ResetRound()
		m.setStatus("round reset", false)

	case key.Matches(msg, m.keys.NewRound):
		if err := m.session.NewRound(); err != nil {
			m.setStatus("no legal target left on this board", true)
		} else {
			m.setStatus(fmt.Sprintf("round %d", m.session.Round()), false)
		}
	}

	return m, nil
}

func (m *Model) selectColor(c engine.Color) {
	m.session.SelectColor(c)
	m.setStatus(fmt.Sprintf("%s selected", c), false)
}

func (m *Model) slide(d engine.Dir) {
	dist, err := m.session.RequestSlide(d)
	switch {
	case errors.Is(err, engine.ErrNoActivePiece):
		m.setStatus("select a piece first (r/g/b/y)", true)
	case err != nil:
		m.setStatus(err.Error(), true)
	case m.session.Solved():
		moves := m.session.HistoryLen()
		m.setStatus(fmt.Sprintf("solved in %d moves! n starts the next round", moves), false)
		m.saveSolution(moves)
	case dist == 0:
		m.setStatus("piece cannot move that way", false)
	default:
		m.setStatus("", false)
	}
}

func (m *Model) setStatus(s string, alert bool) {
	m.status = s
	m.alert = alert
}

// saveSolution persists a solved round. Best effort: a storage failure
// never interrupts play.
func (m *Model) saveSolution(moves int) {
	if m.store == nil {
		return
	}
	_, _ = m.store.SaveSolution(string(m.strategy), m.seed, m.session.Round(), moves)
}

// View renders the puzzle screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && (m.width < BoardW || m.height < BoardH+4) {
		return fmt.Sprintf("Window too small: need at least %dx%d, have %dx%d.\nResize the terminal or press q to quit.",
			BoardW, BoardH+4, m.width, m.height)
	}

	board := RenderScreen(DrawBoard(m.session.Board(), m.session.ActiveColor(), m.cfg.UI.ShowReachHints))
	if m.cfg.UI.ShowCoordinates {
		board = WithCoordinates(board)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Ricochet"))
	sb.WriteString("  ")
	sb.WriteString(statusStyle.Render(m.headerLine()))
	sb.WriteString("\n")
	sb.WriteString(board)
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) headerLine() string {
	target := m.session.Board().Target
	line := fmt.Sprintf("round %d | target %s %s | moves %d",
		m.session.Round(), target.Color, target.Cell, m.session.HistoryLen())
	if best, ok := m.session.BestLen(); ok {
		line += fmt.Sprintf(" | best %d", best)
	}
	return line
}

func (m Model) statusLine() string {
	if m.status == "" {
		return statusStyle.Render("select a piece, then slide it with the arrows")
	}
	if m.alert {
		return alertStyle.Render(m.status)
	}
	if m.session.Solved() {
		return solvedStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

// Run starts the puzzle UI in the current terminal and blocks until the
// user quits.
func Run(cfg config.Config, store *storage.Store, strategy engine.Strategy, seed int64) error {
	model, err := NewModel(cfg, store, strategy, seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
