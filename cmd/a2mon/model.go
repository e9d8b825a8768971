// Command a2mon is an interactive text-mode debugger for the core:
// step the CPU, inspect registers and memory pages, set breakpoints,
// and watch Disk II drive state, all driven from a bubbletea TUI
// instead of a line-oriented prompt.
package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/a2emu/a2plus/machine"
)

type model struct {
	m *machine.Machine

	prevPC     uint16
	breakpoint map[uint16]struct{}
	running    bool
	err        error
}

func newModel(m *machine.Machine) model {
	return model{m: m, breakpoint: make(map[uint16]struct{})}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "s":
			m.prevPC = m.m.CPU.PC
			m.m.CPU.Step()

		case "r":
			m.running = true
			for i := 0; i < 1_000_000; i++ {
				if _, hit := m.breakpoint[m.m.CPU.PC]; hit {
					break
				}
				m.prevPC = m.m.CPU.PC
				m.m.CPU.Step()
			}
			m.running = false

		case "e":
			m.m.Reset()

		case "b":
			m.breakpoint[m.m.CPU.PC] = struct{}{}

		case "c":
			m.breakpoint = make(map[uint16]struct{})
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.m.Bus.Read(addr)
		if addr == m.m.CPU.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	base := m.m.CPU.PC &^ 0x00FF
	rows := []string{"addr | " + strings.Repeat(" x  ", 16)}
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(uint16(int(base)+i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	c := m.m.CPU
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x   X: %02x   Y: %02x  SP: %02x
%s

Disk drive %d: half-track %d (track %d), nibble %d
`,
		c.PC, m.prevPC, c.A, c.X, c.Y, c.SP, c.String(),
		m.m.Disk.CurrentDrive(),
		m.m.Disk.Drive(m.m.Disk.CurrentDrive()).HalfTrack(),
		m.m.Disk.Drive(m.m.Disk.CurrentDrive()).Track(),
		m.m.Disk.Drive(m.m.Disk.CurrentDrive()).Nibble(),
	)
}

func (m model) breakpoints() string {
	if len(m.breakpoint) == 0 {
		return "breakpoints: none"
	}
	var addrs []string
	for a := range m.breakpoint {
		addrs = append(addrs, fmt.Sprintf("%04x", a))
	}
	return "breakpoints: " + strings.Join(addrs, " ")
}

func (m model) View() string {
	help := "space/s step   r run-to-breakpoint   b set breakpoint   c clear breakpoints   e reset   q quit"
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		m.breakpoints(),
		help,
		"",
		spew.Sdump(m.m.IO),
	)
}
