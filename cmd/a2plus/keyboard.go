package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyMap follows controller.go's polling style in the teacher repo:
// a static table of ebiten keys consulted once per Update, rather
// than consuming ebiten's input-event stream directly. Apple II
// software wants ASCII in the KBD latch, not button bits, so this
// table maps straight to ASCII instead of a bitmask.
var keyMap = []struct {
	key   ebiten.Key
	ascii uint8
}{
	{ebiten.KeySpace, ' '},
	{ebiten.KeyEnter, 0x0D},
	{ebiten.KeyBackspace, 0x08},
	{ebiten.KeyEscape, 0x1B},
	{ebiten.KeyTab, 0x09},
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		k := ebiten.Key(int(ebiten.KeyA) + int(c-'A'))
		keyMap = append(keyMap, struct {
			key   ebiten.Key
			ascii uint8
		}{k, uint8(c)})
	}
	for d := '0'; d <= '9'; d++ {
		k := ebiten.Key(int(ebiten.Key0) + int(d-'0'))
		keyMap = append(keyMap, struct {
			key   ebiten.Key
			ascii uint8
		}{k, uint8(d)})
	}
}

// pollKeyboard scans the key table for a newly pressed key and
// returns the ASCII byte to latch into KBD (with the strobe bit set),
// or 0, false if nothing is newly pressed this frame.
func pollKeyboard() (uint8, bool) {
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.key) {
			return k.ascii | 0x80, true
		}
	}
	return 0, false
}
