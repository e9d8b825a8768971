// Package machine is the executive that composes the CPU, bus, I/O
// dispatcher, and Disk II controller into a runnable Apple II Plus,
// and exposes the host-facing exec/reset/irq/nmi/goto contract.
package machine

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/a2emu/a2plus/bus"
	"github.com/a2emu/a2plus/cpu"
	"github.com/a2emu/a2plus/diskii"
	"github.com/a2emu/a2plus/iodispatch"
)

// DiskBootEntry is the slot-6 boot PROM's well-known entry point; the
// host jumps here via Goto to boot from a loaded disk image.
const DiskBootEntry = 0xC600

// Machine wires a CPU to a Bus backed by the I/O dispatcher and Disk
// II controller. Between calls to Exec the CPU is quiescent; Exec
// runs whole instructions only, so mid-instruction state is never
// observable from outside a call.
type Machine struct {
	CPU    *cpu.CPU
	Bus    *bus.Bus
	IO     *iodispatch.Dispatcher
	Disk   *diskii.Controller
	LC     *bus.LanguageCard
}

// New returns a Machine with an empty RAM/ROM image and no disk
// loaded. audioTick, if non-nil, is invoked on every speaker-toggling
// soft-switch access with the number of cycles since the previous
// toggle.
func New(audioTick func(cyclesSinceLast uint64)) *Machine {
	lc := bus.NewLanguageCard()
	disk := diskii.New()

	m := &Machine{Disk: disk, LC: lc}

	var c *cpu.CPU
	io := iodispatch.New(lc, disk, func() uint64 {
		if c == nil {
			return 0
		}
		return c.Cycles
	}, audioTick)

	b := bus.New(io, lc)
	c = cpu.New(b)

	m.CPU = c
	m.Bus = b
	m.IO = io
	return m
}

// LoadROM installs the 12 KiB $D000-$FFFF ROM image.
func (m *Machine) LoadROM(data []byte) error {
	if err := m.Bus.LoadROM(data); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	return nil
}

// LoadBootPROM installs the 256-byte slot-6 PROM image.
func (m *Machine) LoadBootPROM(data []byte) error {
	if err := m.Bus.LoadPROM(data); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	return nil
}

// LoadDisk installs a pre-nibblized .nib image into the given drive
// bay (0 or 1).
func (m *Machine) LoadDisk(drive int, data []byte, readOnly bool) {
	m.Disk.Drive(drive).LoadImage(data, readOnly)
}

// Reset performs the 6502 reset sequence.
func (m *Machine) Reset() {
	glog.V(1).Info("machine: reset")
	m.CPU.Reset()
}

// IRQ requests a maskable interrupt; it is a no-op if the CPU has
// interrupts disabled.
func (m *Machine) IRQ() { m.CPU.IRQ() }

// NMI requests a non-maskable interrupt.
func (m *Machine) NMI() { m.CPU.NMI() }

// Break forces a BRK instruction for debugger use.
func (m *Machine) Break() { m.CPU.ForceBreak() }

// Goto forces PC to addr, used by the host to jump to the Disk II
// boot entry point after selecting a disk.
func (m *Machine) Goto(addr uint16) { m.CPU.Goto(addr) }

// Exec runs whole instructions until the CPU's cycle counter has
// advanced by at least budget cycles, then returns. Every instruction
// is atomic from the caller's perspective: Exec never returns
// mid-instruction.
func (m *Machine) Exec(budget uint64) uint16 {
	return m.CPU.Exec(budget)
}

// BootFromDisk is a convenience wrapper: it points PC at the slot-6
// boot PROM entry, the same way the host does when the user picks
// "boot from drive 1" in a real machine.
func (m *Machine) BootFromDisk() {
	m.Goto(DiskBootEntry)
}
