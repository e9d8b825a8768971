package iodispatch

// languageCardControl decodes one access to $C080-$C08F into the
// canonical four-bit Language Card encoding: bit 3 selects bank 2 vs
// bank 1, and bits 0-1 select one of four read/write-enable
// combinations. Write-enable only actually commits after two
// consecutive *read* accesses to a write-enabling address, matching
// the hardware's pre-write flip-flop (§4.1's Language Card
// invariant).
func (d *Dispatcher) languageCardControl(addr uint16, isWrite bool) {
	n := int(addr - addrLCLo)

	d.lc.SetBank2(n&0x08 == 0)

	readRAM := (n & 1) == ((n >> 1) & 1)
	d.lc.SetReadEnable(readRAM)

	writeSwitch := n&1 == 1
	if !writeSwitch {
		d.lc.SetWriteEnable(false)
		d.lc.SetPreWriteArmed(false)
		return
	}

	if isWrite {
		// A write access to a write-enabling address never itself
		// enables writing; it only disarms the flip-flop.
		d.lc.SetPreWriteArmed(false)
		return
	}

	if d.lc.PreWriteArmed() {
		d.lc.SetWriteEnable(true)
	} else {
		d.lc.SetPreWriteArmed(true)
	}
}
