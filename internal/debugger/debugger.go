// Package debugger is a bubbletea TUI over a gb.System: a page of
// memory scrolled with the up/down keys (PC highlighted when it falls
// on the page), the register file, and the last disassembled
// instruction, stepped one instruction at a time.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"golang.design/x/clipboard"

	"github.com/dmg-emu/core/gb"
)

const pageRows = 8

type model struct {
	sys    *gb.System
	offset uint16

	prevPC      uint16
	fatal       error
	clipReady   bool
	copiedFlash string
}

// New constructs the debugger model over an already-built system.
func New(sys *gb.System) tea.Model {
	return model{sys: sys, clipReady: clipboard.Init() == nil}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ", "n":
		m.prevPC = m.sys.CPU.Regs.PC
		if err := m.sys.CPU.Step(); err != nil {
			m.fatal = err
			return m, tea.Quit
		}

	case "y":
		// Copy the last disassembled line to the system clipboard, for
		// pasting into a bug report.
		m.copiedFlash = ""
		if m.clipReady {
			clipboard.Write(clipboard.FmtText, []byte(m.sys.CPU.DebugString()))
			m.copiedFlash = "copied"
		}

	case "up":
		if m.offset >= 16 {
			m.offset -= 16
		}

	case "down":
		m.offset += 16
	}

	return m, nil
}

func (m model) renderPage(start uint16) string {
	line := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.sys.Bus.Read8(addr)
		if addr == m.sys.CPU.Regs.PC {
			line += fmt.Sprintf("[%02x] ", b)
		} else {
			line += fmt.Sprintf(" %02x  ", b)
		}
	}
	return line
}

func (m model) pageTable() string {
	header := "addr | " + strings.Repeat("  .  ", 16)
	lines := []string{header}
	for row := 0; row < pageRows; row++ {
		lines = append(lines, m.renderPage(m.offset+uint16(row*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	r := m.sys.CPU.Regs
	flagBit := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	flags := []byte{
		flagBit(r.GetFlag(gb.FlagZ), 'Z'),
		flagBit(r.GetFlag(gb.FlagN), 'N'),
		flagBit(r.GetFlag(gb.FlagH), 'H'),
		flagBit(r.GetFlag(gb.FlagC), 'C'),
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
SP: %04x
A: %02x F: %02x [%s]
B: %02x C: %02x
D: %02x E: %02x
H: %02x L: %02x
IME: %v
`,
		r.PC, m.prevPC, r.SP,
		r.A, r.F, flags,
		r.B, r.C, r.D, r.E, r.H, r.L, r.IME)
}

func (m model) View() string {
	if m.fatal != nil {
		return fmt.Sprintf("stopped: %v\n", m.fatal)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(m.sys.CPU.DebugString()),
		m.copiedFlash,
		"space/n: step   y: copy last line   q: quit",
	)
	return body
}

// Run starts the interactive TUI over sys and blocks until the user
// quits or the emulated CPU hits a fatal error.
func Run(sys *gb.System) error {
	finalModel, err := tea.NewProgram(New(sys)).Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(model); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}
