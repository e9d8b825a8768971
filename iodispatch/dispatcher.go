// Package iodispatch decodes the $C000-$C0FF soft-switch page (and
// its $C100-$C5FF / $C700-$CFFF catch-all neighbors) into side
// effects against the keyboard latch, speaker, video-mode flags,
// paddle timers, Language Card control, and the Disk II controller.
package iodispatch

import (
	"github.com/golang/glog"

	"github.com/a2emu/a2plus/bus"
	"github.com/a2emu/a2plus/diskii"
)

const (
	addrKBD      = 0xC000
	addrKBDStrobe = 0xC010
	addrSPKR1    = 0xC020
	addrSPKR2    = 0xC030
	addrSPKR3    = 0xC033
	addrVideoLo  = 0xC050
	addrVideoHi  = 0xC057
	addrPaddleBtnLo = 0xC061
	addrPaddleBtnHi = 0xC063
	addrPaddleCDLo  = 0xC064
	addrPaddleCDHi  = 0xC067
	addrPaddleReset = 0xC070
	addrLCLo     = 0xC080
	addrLCHi     = 0xC08F
	addrDiskLo   = 0xC0E0
	addrDiskHi   = 0xC0EF
)

// Dispatcher implements bus.IODispatcher. It holds shared mutable
// references to soft-switch state and to the Disk II controller;
// Bus delegates both the I/O page and the catch-all ranges to it.
type Dispatcher struct {
	lc   *bus.LanguageCard
	disk *diskii.Controller

	cycles func() uint64 // current CPU cycle counter, for paddle timing and the catch-all byte

	KBD uint8 // bit 7 = strobe

	muted      bool
	speakerCycle uint64 // cycle count at the last speaker toggle
	audioTick  func(cyclesSinceLast uint64)

	TEXT, MIXED, HIRES bool
	PAGE               int // 1 or 2

	PB0, PB1, PB2 uint8 // 0x00 or 0xFF, set by the host from controller button state

	GC0, GC1       float64 // paddle positions, set by the host; countdown seeded to position^2
	paddle0Expires float64
	paddle1Expires float64
	paddleResetAt  uint64
	decayRate      float64
}

// New returns a Dispatcher wired to the given Language Card and Disk
// II controller. cycles supplies the CPU's running cycle count for
// paddle-timer decay and the catch-all byte; audioTick is invoked on
// every speaker-toggling access with the number of cycles elapsed
// since the previous toggle.
func New(lc *bus.LanguageCard, disk *diskii.Controller, cycles func() uint64, audioTick func(uint64)) *Dispatcher {
	if audioTick == nil {
		audioTick = func(uint64) {}
	}
	return &Dispatcher{
		lc:        lc,
		disk:      disk,
		cycles:    cycles,
		audioTick: audioTick,
		PAGE:      1,
		decayRate: 1.0,
	}
}

// Read implements bus.IODispatcher.
func (d *Dispatcher) Read(addr uint16) uint8 {
	return d.access(addr, false, 0)
}

// Write implements bus.IODispatcher.
func (d *Dispatcher) Write(addr uint16, val uint8) {
	d.access(addr, true, val)
}

// access funnels every soft-switch and catch-all touch through a
// single routine, since on real hardware most switches are triggered
// by address alone: a read and a write to the same address are
// usually equivalent side effects.
func (d *Dispatcher) access(addr uint16, isWrite bool, val uint8) uint8 {
	switch {
	case addr == addrKBD:
		return d.KBD

	case addr == addrKBDStrobe:
		d.KBD &^= 0x80
		return d.KBD

	case addr == addrSPKR1 || addr == addrSPKR2 || addr == addrSPKR3:
		d.toggleSpeaker()
		return 0

	case addr >= addrVideoLo && addr <= addrVideoHi:
		d.setVideoFlag(addr)
		return 0

	case addr >= addrPaddleBtnLo && addr <= addrPaddleBtnHi:
		return d.paddleButton(addr)

	case addr >= addrPaddleCDLo && addr <= addrPaddleCDHi:
		return d.paddleCountdown(addr)

	case addr == addrPaddleReset:
		d.resetPaddles()
		return 0

	case addr >= addrLCLo && addr <= addrLCHi:
		d.languageCardControl(addr, isWrite)
		return 0

	case addr >= addrDiskLo && addr <= addrDiskHi:
		return d.diskAccess(addr, isWrite, val)

	default:
		// Dispatcher catch-all for $C100-$C5FF and $C700-$CFFF, plus
		// any unlisted address within $C000-$C0FF.
		glog.V(2).Infof("iodispatch: catch-all access at $%04X (write=%v)", addr, isWrite)
		return uint8(d.cycles())
	}
}

func (d *Dispatcher) toggleSpeaker() {
	now := d.cycles()
	elapsed := now - d.speakerCycle
	d.speakerCycle = now
	d.muted = !d.muted
	d.audioTick(elapsed)
}

func (d *Dispatcher) setVideoFlag(addr uint16) {
	n := addr - addrVideoLo
	switch n / 2 {
	case 0: // $C050/$C051: graphics/text
		d.TEXT = n%2 == 1
	case 1: // $C052/$C053: full-screen/mixed
		d.MIXED = n%2 == 1
	case 2: // $C054/$C055: page 1/2
		if n%2 == 0 {
			d.PAGE = 1
		} else {
			d.PAGE = 2
		}
	case 3: // $C056/$C057: lo-res/hi-res
		d.HIRES = n%2 == 1
	}
}
