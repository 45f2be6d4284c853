// internal/tui/model.go
//
// Package tui is the terminal front end.
// Responsibilities:
//   - Feed every keystroke in a hidden text field through GuessState normalization.
//   - Commit on Enter/Tab and clear the field.
//   - Redraw the 5x6 board after every event, highlighting cells that flipped.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wurdle/internal/game"
	"github.com/robalobadob/wurdle/internal/grid"
)

// popDoneMsg ends the highlight started by redraw generation gen.
type popDoneMsg struct{ gen int }

// Model is the bubbletea model for one game session.
type Model struct {
	state *game.GuessState
	input textinput.Model // never rendered; only its value is used
	keys  keyMap
	help  help.Model

	board   grid.Grid  // last rendered board
	changed []grid.Pos // cells that flipped on the last redraw
	gen     int
	anim    time.Duration

	width  int
	height int
}

// New creates a model with an empty GuessState. anim is how long a freshly
// filled or cleared cell stays highlighted; zero disables the highlight.
func New(anim time.Duration) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	st := game.New()
	return Model{
		state: st,
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
		board: grid.FromSnapshot(st.Snapshot()),
		anim:  anim,
	}
}

// Init returns the initial command (nil; the input is focused in New).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes key presses into the GuessState.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case popDoneMsg:
		if msg.gen == m.gen {
			m.changed = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			if m.state.CommitIfComplete() {
				log.Debug().Int("guesses", len(m.state.History())).Msg("guess committed")
			}
			m.syncInput()
			return m, m.redraw()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.state.SetCurrentGuess(m.input.Value())
		m.syncInput()
		return m, tea.Batch(cmd, m.redraw())
	}
	return m, nil
}

// syncInput writes the normalized guess back into the hidden field so the
// next edit starts from what the board shows.
func (m *Model) syncInput() {
	if cur := m.state.CurrentGuess(); m.input.Value() != cur {
		m.input.SetValue(cur)
		m.input.CursorEnd()
	}
}

// redraw re-derives the board and starts a highlight for flipped cells.
func (m *Model) redraw() tea.Cmd {
	next := grid.FromSnapshot(m.state.Snapshot())
	changed := grid.Transitions(m.board, next)
	m.board = next
	if len(changed) == 0 || m.anim <= 0 {
		return nil
	}
	m.gen++
	m.changed = changed
	gen := m.gen
	return tea.Tick(m.anim, func(time.Time) tea.Msg { return popDoneMsg{gen: gen} })
}

func (m Model) popped(r, c int) bool {
	for _, p := range m.changed {
		if p.Row == r && p.Col == c {
			return true
		}
	}
	return false
}

// View renders the title, board and help line.
func (m Model) View() string {
	rows := make([]string, 0, game.Rows)
	for r := 0; r < game.Rows; r++ {
		cells := make([]string, 0, game.Cols)
		for c := 0; c < game.Cols; c++ {
			cells = append(cells, m.renderCell(r, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	status := fmt.Sprintf("guesses: %d", len(m.state.History()))
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("W U R D L E"),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		statusStyle.Render(status),
		m.help.View(m.keys),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderCell(r, c int) string {
	cell := m.board[r][c]
	ch := " "
	if cell.Filled {
		ch = string(cell.Char)
	}
	switch {
	case m.popped(r, c):
		return popCellStyle.Render(ch)
	case cell.Filled:
		return filledCellStyle.Render(ch)
	default:
		return cellStyle.Render(ch)
	}
}

// Run starts the terminal game and blocks until the player quits or ctx ends.
func Run(ctx context.Context, anim time.Duration) error {
	p := tea.NewProgram(New(anim), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
