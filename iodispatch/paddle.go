package iodispatch

// paddleButton handles $C061-$C063 reads, returning PB0/PB1/PB2.
// Writes to these addresses have no effect beyond the shared
// catch-all-style read they otherwise fall through to, but a write is
// still routed here for address-decode simplicity.
func (d *Dispatcher) paddleButton(addr uint16) uint8 {
	switch addr {
	case addrPaddleBtnLo:
		return d.PB0
	case addrPaddleBtnLo + 1:
		return d.PB1
	default:
		return d.PB2
	}
}

// paddleCountdown handles $C064-$C067: returns 0x80 while the
// relevant paddle's countdown has not yet expired, 0 afterward. Only
// GC0 (paddle 0, addresses $C064/$C065) and GC1 (paddle 1, addresses
// $C066/$C067) are modeled, matching the two-paddle Apple II Plus
// game port.
func (d *Dispatcher) paddleCountdown(addr uint16) uint8 {
	elapsed := float64(d.cycles() - d.paddleResetAt)
	n := addr - addrPaddleCDLo
	var expires float64
	if n < 2 {
		expires = d.paddle0Expires
	} else {
		expires = d.paddle1Expires
	}
	if elapsed*d.decayRate < expires {
		return 0x80
	}
	return 0
}

// resetPaddles handles $C070: arms both paddle countdowns to the
// square of their current positions and latches the reset time.
func (d *Dispatcher) resetPaddles() {
	d.paddleResetAt = d.cycles()
	d.paddle0Expires = d.GC0 * d.GC0
	d.paddle1Expires = d.GC1 * d.GC1
}
