// Package review provides an interactive terminal table for inspecting
// and correcting a parsed pin list before generation.
package review

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type inputKind int

const (
	inputNone inputKind = iota
	inputRename
	inputPosition
	inputInsert
)

type model struct {
	name     string
	pins     []pinout.Pin
	orig     []pinout.Pin
	cursor   int
	offset   int
	height   int
	input    inputKind
	buf      string
	status   string
	accepted bool
}

func newModel(name string, pins []pinout.Pin) model {
	orig := make([]pinout.Pin, len(pins))
	copy(orig, pins)
	return model{name: name, pins: pins, orig: orig, height: 20}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 4)
		return m, nil
	case tea.KeyMsg:
		if m.input != inputNone {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.accepted = false
		return m, tea.Quit
	case "enter":
		m.accepted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pins)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = max(len(m.pins)-1, 0)
	case "s":
		m.pins = CycleSide(m.pins, m.cursor)
	case "t":
		m.pins = CycleType(m.pins, m.cursor)
	case "r":
		if len(m.pins) > 0 {
			m.input = inputRename
			m.buf = m.pins[m.cursor].Name
		}
	case "p":
		if len(m.pins) > 0 {
			m.input = inputPosition
			m.buf = strconv.Itoa(m.pins[m.cursor].Position)
		}
	case "a":
		m.input = inputInsert
		m.buf = ""
	case "d":
		m.pins = Delete(m.pins, m.cursor)
		if m.cursor >= len(m.pins) && m.cursor > 0 {
			m.cursor--
		}
	case "u":
		m.pins = make([]pinout.Pin, len(m.orig))
		copy(m.pins, m.orig)
		m.cursor = min(m.cursor, max(len(m.pins)-1, 0))
		m.status = "reverted all edits"
	}
	m.clampOffset()
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.input = inputNone
		m.buf = ""
	case "enter":
		switch m.input {
		case inputRename:
			m.pins = Rename(m.pins, m.cursor, strings.TrimSpace(m.buf))
		case inputPosition:
			n, err := strconv.Atoi(strings.TrimSpace(m.buf))
			if err != nil || n < 0 {
				m.status = "position must be a non-negative integer"
			} else {
				m.pins = SetPosition(m.pins, m.cursor, n)
			}
		case inputInsert:
			before := len(m.pins)
			m.pins = Insert(m.pins, m.cursor, strings.TrimSpace(m.buf))
			if len(m.pins) > before {
				m.cursor++
			}
		}
		m.input = inputNone
		m.buf = ""
	case "backspace":
		if len(m.buf) > 0 {
			m.buf = m.buf[:len(m.buf)-1]
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.buf += string(msg.Runes)
		case tea.KeySpace:
			m.buf += " "
		}
	}
	m.clampOffset()
	return m, nil
}

func (m *model) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		titleStyle.Render("Pin review"), dimStyle.Render(m.name))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-8s %-16s %-8s %-4s %s",
		"PIN", "NAME", "SIDE", "POS", "TYPE")))
	b.WriteString("\n")

	end := min(m.offset+m.height, len(m.pins))
	for i := m.offset; i < end; i++ {
		p := m.pins[i]
		side := p.Side
		if side == "" {
			side = pinout.SideLeft
		}
		row := fmt.Sprintf("  %-8s %-16s %-8s %-4d %s",
			p.Number, p.Name, side, p.Position, p.Type)
		if i == m.cursor {
			row = cursorStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	if len(m.pins) == 0 {
		b.WriteString(dimStyle.Render("  (no pins)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.input {
	case inputRename:
		fmt.Fprintf(&b, "rename pin to: %s█\n", m.buf)
	case inputPosition:
		fmt.Fprintf(&b, "position: %s█\n", m.buf)
	case inputInsert:
		fmt.Fprintf(&b, "new pin number: %s█\n", m.buf)
	default:
		b.WriteString(dimStyle.Render("s side  t type  r rename  p position  a add  d delete  u undo all  enter accept  q cancel"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(errStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// Run shows the review table and blocks until the user accepts or
// cancels. It returns the edited pin list and whether generation
// should proceed.
func Run(name string, pins []pinout.Pin) ([]pinout.Pin, bool, error) {
	prog := tea.NewProgram(newModel(name, pins))
	final, err := prog.Run()
	if err != nil {
		return nil, false, fmt.Errorf("review: %w", err)
	}
	m := final.(model)
	return m.pins, m.accepted, nil
}
