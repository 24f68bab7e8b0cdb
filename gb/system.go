package gb

import (
	"log"
	"time"
)

// System wires a CPU, its bus, and the PPU into the single step loop a
// presentation collaborator drives. It owns the frame buffer the PPU
// composites into.
type System struct {
	CPU *CPU
	Bus *Bus
	PPU *PPU

	Frame []byte
}

// NewSystem builds a fresh console state from a boot image and a
// cartridge image, boot overlay enabled, PPU at OAM/LY=0.
func NewSystem(boot, cart []byte) *System {
	bus := NewBus(NewBootROM(boot), NewCartridge(cart))
	return &System{
		CPU:   NewCPU(bus),
		Bus:   bus,
		PPU:   NewPPU(),
		Frame: make([]byte, FrameBytes),
	}
}

// SetLogger attaches a disassembly logger to the CPU; nil disables it.
func (s *System) SetLogger(l *log.Logger) {
	s.CPU.Logger = l
}

// Step executes exactly one CPU instruction and drives the PPU with
// the resulting cycle count. It reports whether a frame became ready
// during this step, and any fatal error from the CPU.
func (s *System) Step() (frameReady bool, err error) {
	if err := s.CPU.Step(); err != nil {
		return false, err
	}
	return s.PPU.Step(s.Bus, s.Bus.Cycles, s.Frame), nil
}

// RunFrame steps the system until a frame becomes ready or a fatal
// error occurs. When a logger is attached it reports how long the
// frame took to produce.
func (s *System) RunFrame() error {
	defer TimeTrack(s.CPU.Logger, time.Now())

	for {
		ready, err := s.Step()
		if err != nil {
			return err
		}
		if ready {
			return nil
		}
	}
}
