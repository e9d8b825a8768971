package cpu

// Addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	IMPLICIT = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect, (zp,X)
	INDIRECT_Y // Indirect Indexed, (zp),Y
)

// instrFunc is the small execute function attached to each opcode
// table entry; mode tells it how to resolve its operand.
type instrFunc func(c *CPU, mode uint8)

type opcode struct {
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
	exec   instrFunc
}

// opcodeTable is indexed directly by opcode byte. Entries left zero
// (nil exec) decode as a documented 2-cycle no-op, per §4.1.
var opcodeTable [256]opcode

func init() {
	for _, e := range []struct {
		op uint8
		opcode
	}{
		{0x69, opcode{"ADC", IMMEDIATE, 2, 2, (*CPU).opADC}},
		{0x65, opcode{"ADC", ZERO_PAGE, 2, 3, (*CPU).opADC}},
		{0x75, opcode{"ADC", ZERO_PAGE_X, 2, 4, (*CPU).opADC}},
		{0x6D, opcode{"ADC", ABSOLUTE, 3, 4, (*CPU).opADC}},
		{0x7D, opcode{"ADC", ABSOLUTE_X, 3, 4, (*CPU).opADC}},
		{0x79, opcode{"ADC", ABSOLUTE_Y, 3, 4, (*CPU).opADC}},
		{0x61, opcode{"ADC", INDIRECT_X, 2, 6, (*CPU).opADC}},
		{0x71, opcode{"ADC", INDIRECT_Y, 2, 5, (*CPU).opADC}},

		{0x29, opcode{"AND", IMMEDIATE, 2, 2, (*CPU).opAND}},
		{0x25, opcode{"AND", ZERO_PAGE, 2, 3, (*CPU).opAND}},
		{0x35, opcode{"AND", ZERO_PAGE_X, 2, 4, (*CPU).opAND}},
		{0x2D, opcode{"AND", ABSOLUTE, 3, 4, (*CPU).opAND}},
		{0x3D, opcode{"AND", ABSOLUTE_X, 3, 4, (*CPU).opAND}},
		{0x39, opcode{"AND", ABSOLUTE_Y, 3, 4, (*CPU).opAND}},
		{0x21, opcode{"AND", INDIRECT_X, 2, 6, (*CPU).opAND}},
		{0x31, opcode{"AND", INDIRECT_Y, 2, 5, (*CPU).opAND}},

		{0x0A, opcode{"ASL", ACCUMULATOR, 1, 2, (*CPU).opASL}},
		{0x06, opcode{"ASL", ZERO_PAGE, 2, 5, (*CPU).opASL}},
		{0x16, opcode{"ASL", ZERO_PAGE_X, 2, 6, (*CPU).opASL}},
		{0x0E, opcode{"ASL", ABSOLUTE, 3, 6, (*CPU).opASL}},
		{0x1E, opcode{"ASL", ABSOLUTE_X, 3, 7, (*CPU).opASL}},

		{0x90, opcode{"BCC", RELATIVE, 2, 2, (*CPU).opBCC}},
		{0xB0, opcode{"BCS", RELATIVE, 2, 2, (*CPU).opBCS}},
		{0xF0, opcode{"BEQ", RELATIVE, 2, 2, (*CPU).opBEQ}},
		{0x24, opcode{"BIT", ZERO_PAGE, 2, 3, (*CPU).opBIT}},
		{0x2C, opcode{"BIT", ABSOLUTE, 3, 4, (*CPU).opBIT}},
		{0x30, opcode{"BMI", RELATIVE, 2, 2, (*CPU).opBMI}},
		{0xD0, opcode{"BNE", RELATIVE, 2, 2, (*CPU).opBNE}},
		{0x10, opcode{"BPL", RELATIVE, 2, 2, (*CPU).opBPL}},
		{0x00, opcode{"BRK", IMPLICIT, 2, 7, (*CPU).opBRK}},
		{0x50, opcode{"BVC", RELATIVE, 2, 2, (*CPU).opBVC}},
		{0x70, opcode{"BVS", RELATIVE, 2, 2, (*CPU).opBVS}},

		{0x18, opcode{"CLC", IMPLICIT, 1, 2, (*CPU).opCLC}},
		{0xD8, opcode{"CLD", IMPLICIT, 1, 2, (*CPU).opCLD}},
		{0x58, opcode{"CLI", IMPLICIT, 1, 2, (*CPU).opCLI}},
		{0xB8, opcode{"CLV", IMPLICIT, 1, 2, (*CPU).opCLV}},

		{0xC9, opcode{"CMP", IMMEDIATE, 2, 2, (*CPU).opCMP}},
		{0xC5, opcode{"CMP", ZERO_PAGE, 2, 3, (*CPU).opCMP}},
		{0xD5, opcode{"CMP", ZERO_PAGE_X, 2, 4, (*CPU).opCMP}},
		{0xCD, opcode{"CMP", ABSOLUTE, 3, 4, (*CPU).opCMP}},
		{0xDD, opcode{"CMP", ABSOLUTE_X, 3, 4, (*CPU).opCMP}},
		{0xD9, opcode{"CMP", ABSOLUTE_Y, 3, 4, (*CPU).opCMP}},
		{0xC1, opcode{"CMP", INDIRECT_X, 2, 6, (*CPU).opCMP}},
		{0xD1, opcode{"CMP", INDIRECT_Y, 2, 5, (*CPU).opCMP}},

		{0xE0, opcode{"CPX", IMMEDIATE, 2, 2, (*CPU).opCPX}},
		{0xE4, opcode{"CPX", ZERO_PAGE, 2, 3, (*CPU).opCPX}},
		{0xEC, opcode{"CPX", ABSOLUTE, 3, 4, (*CPU).opCPX}},

		{0xC0, opcode{"CPY", IMMEDIATE, 2, 2, (*CPU).opCPY}},
		{0xC4, opcode{"CPY", ZERO_PAGE, 2, 3, (*CPU).opCPY}},
		{0xCC, opcode{"CPY", ABSOLUTE, 3, 4, (*CPU).opCPY}},

		{0xC6, opcode{"DEC", ZERO_PAGE, 2, 5, (*CPU).opDEC}},
		{0xD6, opcode{"DEC", ZERO_PAGE_X, 2, 6, (*CPU).opDEC}},
		{0xCE, opcode{"DEC", ABSOLUTE, 3, 6, (*CPU).opDEC}},
		{0xDE, opcode{"DEC", ABSOLUTE_X, 3, 7, (*CPU).opDEC}},

		{0xCA, opcode{"DEX", IMPLICIT, 1, 2, (*CPU).opDEX}},
		{0x88, opcode{"DEY", IMPLICIT, 1, 2, (*CPU).opDEY}},

		{0x49, opcode{"EOR", IMMEDIATE, 2, 2, (*CPU).opEOR}},
		{0x45, opcode{"EOR", ZERO_PAGE, 2, 3, (*CPU).opEOR}},
		{0x55, opcode{"EOR", ZERO_PAGE_X, 2, 4, (*CPU).opEOR}},
		{0x4D, opcode{"EOR", ABSOLUTE, 3, 4, (*CPU).opEOR}},
		{0x5D, opcode{"EOR", ABSOLUTE_X, 3, 4, (*CPU).opEOR}},
		{0x59, opcode{"EOR", ABSOLUTE_Y, 3, 4, (*CPU).opEOR}},
		{0x41, opcode{"EOR", INDIRECT_X, 2, 6, (*CPU).opEOR}},
		{0x51, opcode{"EOR", INDIRECT_Y, 2, 5, (*CPU).opEOR}},

		{0xE6, opcode{"INC", ZERO_PAGE, 2, 5, (*CPU).opINC}},
		{0xF6, opcode{"INC", ZERO_PAGE_X, 2, 6, (*CPU).opINC}},
		{0xEE, opcode{"INC", ABSOLUTE, 3, 6, (*CPU).opINC}},
		{0xFE, opcode{"INC", ABSOLUTE_X, 3, 7, (*CPU).opINC}},

		{0xE8, opcode{"INX", IMPLICIT, 1, 2, (*CPU).opINX}},
		{0xC8, opcode{"INY", IMPLICIT, 1, 2, (*CPU).opINY}},

		{0x4C, opcode{"JMP", ABSOLUTE, 3, 3, (*CPU).opJMP}},
		{0x6C, opcode{"JMP", INDIRECT, 3, 5, (*CPU).opJMP}},
		{0x20, opcode{"JSR", ABSOLUTE, 3, 6, (*CPU).opJSR}},

		{0xA9, opcode{"LDA", IMMEDIATE, 2, 2, (*CPU).opLDA}},
		{0xA5, opcode{"LDA", ZERO_PAGE, 2, 3, (*CPU).opLDA}},
		{0xB5, opcode{"LDA", ZERO_PAGE_X, 2, 4, (*CPU).opLDA}},
		{0xAD, opcode{"LDA", ABSOLUTE, 3, 4, (*CPU).opLDA}},
		{0xBD, opcode{"LDA", ABSOLUTE_X, 3, 4, (*CPU).opLDA}},
		{0xB9, opcode{"LDA", ABSOLUTE_Y, 3, 4, (*CPU).opLDA}},
		{0xA1, opcode{"LDA", INDIRECT_X, 2, 6, (*CPU).opLDA}},
		{0xB1, opcode{"LDA", INDIRECT_Y, 2, 5, (*CPU).opLDA}},

		{0xA2, opcode{"LDX", IMMEDIATE, 2, 2, (*CPU).opLDX}},
		{0xA6, opcode{"LDX", ZERO_PAGE, 2, 3, (*CPU).opLDX}},
		{0xB6, opcode{"LDX", ZERO_PAGE_Y, 2, 4, (*CPU).opLDX}},
		{0xAE, opcode{"LDX", ABSOLUTE, 3, 4, (*CPU).opLDX}},
		{0xBE, opcode{"LDX", ABSOLUTE_Y, 3, 4, (*CPU).opLDX}},

		{0xA0, opcode{"LDY", IMMEDIATE, 2, 2, (*CPU).opLDY}},
		{0xA4, opcode{"LDY", ZERO_PAGE, 2, 3, (*CPU).opLDY}},
		{0xB4, opcode{"LDY", ZERO_PAGE_X, 2, 4, (*CPU).opLDY}},
		{0xAC, opcode{"LDY", ABSOLUTE, 3, 4, (*CPU).opLDY}},
		{0xBC, opcode{"LDY", ABSOLUTE_X, 3, 4, (*CPU).opLDY}},

		{0x4A, opcode{"LSR", ACCUMULATOR, 1, 2, (*CPU).opLSR}},
		{0x46, opcode{"LSR", ZERO_PAGE, 2, 5, (*CPU).opLSR}},
		{0x56, opcode{"LSR", ZERO_PAGE_X, 2, 6, (*CPU).opLSR}},
		{0x4E, opcode{"LSR", ABSOLUTE, 3, 6, (*CPU).opLSR}},
		{0x5E, opcode{"LSR", ABSOLUTE_X, 3, 7, (*CPU).opLSR}},

		{0xEA, opcode{"NOP", IMPLICIT, 1, 2, (*CPU).opNOP}},

		{0x09, opcode{"ORA", IMMEDIATE, 2, 2, (*CPU).opORA}},
		{0x05, opcode{"ORA", ZERO_PAGE, 2, 3, (*CPU).opORA}},
		{0x15, opcode{"ORA", ZERO_PAGE_X, 2, 4, (*CPU).opORA}},
		{0x0D, opcode{"ORA", ABSOLUTE, 3, 4, (*CPU).opORA}},
		{0x1D, opcode{"ORA", ABSOLUTE_X, 3, 4, (*CPU).opORA}},
		{0x19, opcode{"ORA", ABSOLUTE_Y, 3, 4, (*CPU).opORA}},
		{0x01, opcode{"ORA", INDIRECT_X, 2, 6, (*CPU).opORA}},
		{0x11, opcode{"ORA", INDIRECT_Y, 2, 5, (*CPU).opORA}},

		{0x48, opcode{"PHA", IMPLICIT, 1, 3, (*CPU).opPHA}},
		{0x08, opcode{"PHP", IMPLICIT, 1, 3, (*CPU).opPHP}},
		{0x68, opcode{"PLA", IMPLICIT, 1, 4, (*CPU).opPLA}},
		{0x28, opcode{"PLP", IMPLICIT, 1, 4, (*CPU).opPLP}},

		{0x2A, opcode{"ROL", ACCUMULATOR, 1, 2, (*CPU).opROL}},
		{0x26, opcode{"ROL", ZERO_PAGE, 2, 5, (*CPU).opROL}},
		{0x36, opcode{"ROL", ZERO_PAGE_X, 2, 6, (*CPU).opROL}},
		{0x2E, opcode{"ROL", ABSOLUTE, 3, 6, (*CPU).opROL}},
		{0x3E, opcode{"ROL", ABSOLUTE_X, 3, 7, (*CPU).opROL}},

		{0x6A, opcode{"ROR", ACCUMULATOR, 1, 2, (*CPU).opROR}},
		{0x66, opcode{"ROR", ZERO_PAGE, 2, 5, (*CPU).opROR}},
		{0x76, opcode{"ROR", ZERO_PAGE_X, 2, 6, (*CPU).opROR}},
		{0x6E, opcode{"ROR", ABSOLUTE, 3, 6, (*CPU).opROR}},
		{0x7E, opcode{"ROR", ABSOLUTE_X, 3, 7, (*CPU).opROR}},

		{0x40, opcode{"RTI", IMPLICIT, 1, 6, (*CPU).opRTI}},
		{0x60, opcode{"RTS", IMPLICIT, 1, 6, (*CPU).opRTS}},

		{0xE9, opcode{"SBC", IMMEDIATE, 2, 2, (*CPU).opSBC}},
		{0xE5, opcode{"SBC", ZERO_PAGE, 2, 3, (*CPU).opSBC}},
		{0xF5, opcode{"SBC", ZERO_PAGE_X, 2, 4, (*CPU).opSBC}},
		{0xED, opcode{"SBC", ABSOLUTE, 3, 4, (*CPU).opSBC}},
		{0xFD, opcode{"SBC", ABSOLUTE_X, 3, 4, (*CPU).opSBC}},
		{0xF9, opcode{"SBC", ABSOLUTE_Y, 3, 4, (*CPU).opSBC}},
		{0xE1, opcode{"SBC", INDIRECT_X, 2, 6, (*CPU).opSBC}},
		{0xF1, opcode{"SBC", INDIRECT_Y, 2, 5, (*CPU).opSBC}},

		{0x38, opcode{"SEC", IMPLICIT, 1, 2, (*CPU).opSEC}},
		{0xF8, opcode{"SED", IMPLICIT, 1, 2, (*CPU).opSED}},
		{0x78, opcode{"SEI", IMPLICIT, 1, 2, (*CPU).opSEI}},

		{0x85, opcode{"STA", ZERO_PAGE, 2, 3, (*CPU).opSTA}},
		{0x95, opcode{"STA", ZERO_PAGE_X, 2, 4, (*CPU).opSTA}},
		{0x8D, opcode{"STA", ABSOLUTE, 3, 4, (*CPU).opSTA}},
		{0x9D, opcode{"STA", ABSOLUTE_X, 3, 5, (*CPU).opSTA}},
		{0x99, opcode{"STA", ABSOLUTE_Y, 3, 5, (*CPU).opSTA}},
		{0x81, opcode{"STA", INDIRECT_X, 2, 6, (*CPU).opSTA}},
		{0x91, opcode{"STA", INDIRECT_Y, 2, 6, (*CPU).opSTA}},

		{0x86, opcode{"STX", ZERO_PAGE, 2, 3, (*CPU).opSTX}},
		{0x96, opcode{"STX", ZERO_PAGE_Y, 2, 4, (*CPU).opSTX}},
		{0x8E, opcode{"STX", ABSOLUTE, 3, 4, (*CPU).opSTX}},

		{0x84, opcode{"STY", ZERO_PAGE, 2, 3, (*CPU).opSTY}},
		{0x94, opcode{"STY", ZERO_PAGE_X, 2, 4, (*CPU).opSTY}},
		{0x8C, opcode{"STY", ABSOLUTE, 3, 4, (*CPU).opSTY}},

		{0xAA, opcode{"TAX", IMPLICIT, 1, 2, (*CPU).opTAX}},
		{0xA8, opcode{"TAY", IMPLICIT, 1, 2, (*CPU).opTAY}},
		{0xBA, opcode{"TSX", IMPLICIT, 1, 2, (*CPU).opTSX}},
		{0x8A, opcode{"TXA", IMPLICIT, 1, 2, (*CPU).opTXA}},
		{0x9A, opcode{"TXS", IMPLICIT, 1, 2, (*CPU).opTXS}},
		{0x98, opcode{"TYA", IMPLICIT, 1, 2, (*CPU).opTYA}},
	} {
		opcodeTable[e.op] = e.opcode
	}

	// Every byte not assigned above decodes as an undefined no-op:
	// 1 byte, 2 cycles, no side effect.
	for i := range opcodeTable {
		if opcodeTable[i].name == "" {
			opcodeTable[i] = opcode{name: "???", mode: IMPLICIT, bytes: 1, cycles: 2, exec: nil}
		}
	}
}

// operandAddr resolves the address an instruction's operand lives at
// for every mode except IMPLICIT and ACCUMULATOR (which never call
// it). It reports whether the resolved address crossed a page
// boundary from the mode's un-indexed base address; callers decide
// whether that's billable (reads are, writes and RMW ops aren't, per
// §4.1's cycle count notes).
func (c *CPU) operandAddr(mode uint8) (uint16, bool) {
	switch mode {
	case IMMEDIATE:
		return c.PC, false
	case ZERO_PAGE:
		return uint16(c.bus.Read(c.PC)), false
	case ZERO_PAGE_X:
		return uint16(c.bus.Read(c.PC) + c.X), false
	case ZERO_PAGE_Y:
		return uint16(c.bus.Read(c.PC) + c.Y), false
	case ABSOLUTE:
		return c.read16(c.PC), false
	case ABSOLUTE_X:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		return addr, pageCrossed(base, addr)
	case ABSOLUTE_Y:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case INDIRECT:
		ptr := c.read16(c.PC)
		lo := uint16(c.bus.Read(ptr))
		// The JMP-indirect page-wrap bug: the high byte is fetched
		// from (ptr & 0xFF00) | ((ptr+1) & 0xFF), never crossing into
		// the next page.
		hi := uint16(c.bus.Read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF)))
		return lo | hi<<8, false
	case INDIRECT_X:
		zp := c.bus.Read(c.PC) + c.X
		lo := uint16(c.bus.Read(uint16(zp)))
		hi := uint16(c.bus.Read(uint16(zp + 1)))
		return lo | hi<<8, false
	case INDIRECT_Y:
		zp := c.bus.Read(c.PC)
		lo := uint16(c.bus.Read(uint16(zp)))
		hi := uint16(c.bus.Read(uint16(zp + 1)))
		base := lo | hi<<8
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case RELATIVE:
		off := int8(c.bus.Read(c.PC))
		return uint16(int32(c.PC) + 1 + int32(off)), false
	}
	panic("cpu: operandAddr called with an implicit/accumulator mode")
}

// loadOperand resolves and reads an instruction's operand, billing
// the page-cross cycle when the mode crossed a page boundary.
func (c *CPU) loadOperand(mode uint8) uint8 {
	addr, crossed := c.operandAddr(mode)
	if crossed {
		c.Cycles++
	}
	return c.bus.Read(addr)
}

// storeAddr resolves an instruction's destination address without
// billing a page-cross cycle: writes and read-modify-write
// instructions never get the page-cross bonus in this core.
func (c *CPU) storeAddr(mode uint8) uint16 {
	addr, _ := c.operandAddr(mode)
	return addr
}
