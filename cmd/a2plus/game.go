package main

import (
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/a2emu/a2plus/machine"
)

// cyclesPerFrame approximates an Apple II Plus's ~1.023 MHz clock
// divided across ebiten's 60Hz Update cadence.
const cyclesPerFrame = cpuHz / 60

// game implements ebiten.Game, mirroring console.Bus's role in the
// teacher repo: it is the only thing the host window system talks to,
// and it drives the emulation from Update rather than a separate
// goroutine, since a single Machine.Exec call per frame is cheap
// enough not to need one.
type game struct {
	m *machine.Machine
}

func newGame(m *machine.Machine) *game {
	return &game{m: m}
}

// Layout returns the constant Apple II resolution; ebiten scales the
// window around it, matching console.Bus.Layout's comment about
// forcing that behavior.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// Update is ebiten's ~60Hz driver. It polls the keyboard into the I/O
// dispatcher's KBD latch (mirroring controller.go's poll-on-Update
// style) and runs one frame's worth of CPU cycles.
func (g *game) Update() error {
	if ascii, ok := pollKeyboard(); ok {
		g.m.IO.KBD = ascii
	}
	g.m.Exec(cyclesPerFrame)
	return nil
}

// Draw blits the current video mode's RAM-backed region to screen.
func (g *game) Draw(screen *ebiten.Image) {
	drawVideo(screen, g.m.Bus.RAM(), g.m.IO)
}

func runGame(m *machine.Machine) {
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle("a2plus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(m)); err != nil {
		glog.Fatalf("a2plus: %v", err)
	}
}
