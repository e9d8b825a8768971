// Package bus implements the Apple II Plus 64 KiB address space: 48
// KiB of RAM, 12 KiB of ROM (optionally shadowed by a Language Card),
// the slot-6 boot PROM, and a delegate for the $C000-$C0FF I/O page
// and its dispatcher catch-all ranges.
package bus

import "fmt"

const (
	ramSize  = 0xC000 // $0000-$BFFF
	romSize  = 0x3000 // $D000-$FFFF, 12 KiB
	promSize = 0x0100 // $C600-$C6FF, slot-6 boot PROM

	ioEnd     = 0xC0FF
	slot6Base = 0xC600
	slot6End  = 0xC6FF
	romBase   = 0xD000
)

// IODispatcher decodes the $C000-$C0FF soft-switch page and the
// dispatcher catch-all ranges ($C100-$C5FF, $C700-$CFFF). It is
// implemented by iodispatch.Dispatcher; Bus only depends on this
// narrow interface to avoid an import cycle.
type IODispatcher interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Bus owns every backing byte store in the machine: RAM, ROM, the
// slot-6 PROM, and (through LanguageCard) the bank-switched RAM that
// can shadow ROM at $D000-$FFFF.
type Bus struct {
	ram  [ramSize]uint8
	rom  [romSize]uint8
	prom [promSize]uint8

	lc *LanguageCard
	io IODispatcher
}

// New returns a Bus wired to the given I/O dispatcher and Language Card.
func New(io IODispatcher, lc *LanguageCard) *Bus {
	return &Bus{io: io, lc: lc}
}

// LoadROM installs the 12 KiB $D000-$FFFF image.
func (b *Bus) LoadROM(data []byte) error {
	if len(data) != romSize {
		return fmt.Errorf("bus: ROM must be exactly %d bytes, got %d", romSize, len(data))
	}
	copy(b.rom[:], data)
	return nil
}

// LoadPROM installs the 256-byte slot-6 boot PROM.
func (b *Bus) LoadPROM(data []byte) error {
	if len(data) != promSize {
		return fmt.Errorf("bus: slot-6 PROM must be exactly %d bytes, got %d", promSize, len(data))
	}
	copy(b.prom[:], data)
	return nil
}

// RAM exposes the 48 KiB RAM buffer directly, for host video refresh
// and manual pokes.
func (b *Bus) RAM() []uint8 {
	return b.ram[:]
}

// Read resolves a single byte read per §4.2's routing table.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < ramSize:
		return b.ram[addr]
	case addr <= ioEnd:
		return b.io.Read(addr)
	case addr >= slot6Base && addr <= slot6End:
		return b.prom[addr-slot6Base]
	case addr < romBase:
		// $C100-$C5FF, $C700-$CFFF: dispatcher catch-all.
		return b.io.Read(addr)
	default: // addr >= romBase
		if b.lc.ReadEnabled() {
			return b.lc.read(addr)
		}
		return b.rom[addr-romBase]
	}
}

// Write resolves a single byte write per §4.2's routing table.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < ramSize:
		b.ram[addr] = val
	case addr <= ioEnd:
		b.io.Write(addr, val)
	case addr >= slot6Base && addr <= slot6End:
		// The slot-6 PROM is read-only.
	case addr < romBase:
		b.io.Write(addr, val)
	default: // addr >= romBase
		if b.lc.WriteEnabled() {
			b.lc.write(addr, val)
		}
		// ROM is never writable; a write with the Language Card
		// disabled for write is silently dropped per §7.
	}
}
