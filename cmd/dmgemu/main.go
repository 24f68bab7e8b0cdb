// Command dmgemu runs, steps, or disassembles a console image: the
// three cobra subcommands are the thinnest possible wrapper around
// gb.System, internal/display, and internal/debugger.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmg-emu/core/gb"
	"github.com/dmg-emu/core/internal/debugger"
	"github.com/dmg-emu/core/internal/display"
)

func main() {
	root := &cobra.Command{
		Use:   "dmgemu",
		Short: "An 8-bit handheld console emulator",
	}

	var bootPath string

	runCmd := &cobra.Command{
		Use:   "run [cart.gb]",
		Short: "Run a cartridge image in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindowed(args[0], bootPath, false)
		},
	}
	runCmd.Flags().StringVar(&bootPath, "boot", "", "boot ROM image (defaults to 256 zero bytes)")

	debugCmd := &cobra.Command{
		Use:   "debug [cart.gb]",
		Short: "Run a cartridge image under the TUI instruction debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebugger(args[0], bootPath)
		},
	}
	debugCmd.Flags().StringVar(&bootPath, "boot", "", "boot ROM image (defaults to 256 zero bytes)")

	var raw bool
	var start, count int
	disasmCmd := &cobra.Command{
		Use:   "disasm [cart.gb]",
		Short: "Disassemble a cartridge image instruction by instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisasm(args[0], bootPath, start, count, raw)
		},
	}
	disasmCmd.Flags().StringVar(&bootPath, "boot", "", "boot ROM image (defaults to 256 zero bytes)")
	disasmCmd.Flags().IntVar(&start, "start", 0, "address to start disassembling from")
	disasmCmd.Flags().IntVar(&count, "count", 64, "number of instructions to disassemble")
	disasmCmd.Flags().BoolVar(&raw, "raw", false, "page output one screen at a time using raw terminal mode")

	root.AddCommand(runCmd, debugCmd, disasmCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadImage(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func newSystem(cartPath, bootPath string) (*gb.System, error) {
	cart, err := loadImage(cartPath)
	if err != nil {
		return nil, fmt.Errorf("reading cartridge image: %w", err)
	}

	boot := make([]byte, 0x100)
	if bootPath != "" {
		boot, err = loadImage(bootPath)
		if err != nil {
			return nil, fmt.Errorf("reading boot image: %w", err)
		}
	}

	return gb.NewSystem(boot, cart), nil
}

func runWindowed(cartPath, bootPath string, debugPanel bool) error {
	sys, err := newSystem(cartPath, bootPath)
	if err != nil {
		return err
	}
	if debugPanel {
		sys.SetLogger(log.New(io.Discard, "", 0))
	}

	// pixelgl.Run must own the main OS thread, so the emulation loop
	// runs inside the callback it invokes.
	var runErr error
	pixelgl.Run(func() {
		win := display.New(debugPanel)
		ctl := display.NewController()

		for !win.Closed() {
			if err := sys.RunFrame(); err != nil {
				runErr = err
				return
			}
			win.UploadFrame(sys.Frame)
			if debugPanel {
				win.WriteDebugText(sys.CPU.DebugString())
			}
			win.Update()
			ctl.Poll(win.Window())
		}
	})
	return runErr
}

func runDebugger(cartPath, bootPath string) error {
	sys, err := newSystem(cartPath, bootPath)
	if err != nil {
		return err
	}
	// The CPU only records its last disassembled line when a logger
	// is attached; the debugger displays and copies that line.
	sys.SetLogger(log.New(io.Discard, "", 0))
	return debugger.Run(sys)
}

func runDisasm(cartPath, bootPath string, start, count int, raw bool) error {
	sys, err := newSystem(cartPath, bootPath)
	if err != nil {
		return err
	}
	sys.CPU.Regs.PC = uint16(start)
	sys.SetLogger(log.New(io.Discard, "", 0))

	pageSize := 24
	if raw && term.IsTerminal(int(os.Stdin.Fd())) {
		return pageDisasm(sys, count, pageSize)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for i := 0; i < count; i++ {
		pc := sys.CPU.Regs.PC
		if err := sys.CPU.Step(); err != nil {
			fmt.Fprintf(out, "$%04X: %v\n", pc, err)
			return nil
		}
		fmt.Fprintln(out, sys.CPU.DebugString())
	}
	return nil
}

// pageDisasm prints one screenful of disassembly at a time, putting
// the terminal into raw mode so a single keypress advances to the
// next page without waiting for Enter.
func pageDisasm(sys *gb.System, count, pageSize int) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	for i := 0; i < count; i++ {
		pc := sys.CPU.Regs.PC
		if err := sys.CPU.Step(); err != nil {
			fmt.Printf("\r\n$%04X: %v\r\n", pc, err)
			return nil
		}
		fmt.Printf("%s\r\n", sys.CPU.DebugString())

		if (i+1)%pageSize == 0 {
			fmt.Print("-- more --\r")
			if _, err := os.Stdin.Read(buf); err != nil {
				return nil
			}
			if buf[0] == 'q' {
				return nil
			}
		}
	}
	return nil
}
