package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/a2emu/a2plus/iodispatch"
)

const (
	screenW = 280
	screenH = 192
	scanW   = 40 // text/lores columns
	scanH   = 24 // text/lores rows (lores is 40x48, two blocks per text row)
)

// textRowBase returns the $0400/$0800-relative offset of the first
// column of text row r, following the Apple II's famous non-linear
// screen-row interleave (each group of three rows is 0x28 apart, and
// groups repeat every 8 rows with a 0x80 stride).
func textRowBase(r int) uint16 {
	group := r % 8
	third := r / 8
	return uint16(group*0x80 + third*0x28)
}

var loresPalette = [16]color.RGBA{
	{0, 0, 0, 255}, {227, 30, 96, 255}, {96, 78, 189, 255}, {255, 68, 253, 255},
	{0, 163, 96, 255}, {156, 156, 156, 255}, {20, 207, 253, 255}, {208, 195, 255, 255},
	{96, 114, 3, 255}, {255, 106, 60, 255}, {156, 156, 156, 255}, {255, 160, 208, 255},
	{20, 245, 60, 255}, {208, 221, 141, 255}, {114, 255, 208, 255}, {255, 255, 255, 255},
}

// drawVideo renders the current video mode's RAM-backed region into
// screen. It is a simplified reference renderer: text is drawn as
// solid low/high glyph cells rather than a faithful character ROM
// bitmap, lo-res is drawn as the documented 16-entry NTSC-ish
// palette, and hi-res is drawn monochrome (color-fringing artifacts
// are out of scope, matching spec's exclusion of double-hires).
func drawVideo(screen *ebiten.Image, ram []uint8, io *iodispatch.Dispatcher) {
	pageBase := uint16(0x0400)
	if io.PAGE == 2 {
		pageBase = 0x0800
	}

	switch {
	case io.HIRES && !io.TEXT:
		drawHires(screen, ram, io)
	case io.TEXT:
		drawText(screen, ram, pageBase, scanH)
	default: // lo-res graphics, MIXED reserves the bottom 4 rows for text
		textRows := 0
		if io.MIXED {
			textRows = 4
			// Text goes down first; the lo-res pass then covers every
			// pixel of the rows above the bottom textRows.
			drawText(screen, ram, pageBase, scanH)
		}
		drawLores(screen, ram, pageBase, scanH-textRows)
	}
}

func drawText(screen *ebiten.Image, ram []uint8, base uint16, rows int) {
	cellW, cellH := screenW/scanW, screenH/scanH
	for row := 0; row < rows; row++ {
		rowBase := base + textRowBase(row)
		for col := 0; col < scanW; col++ {
			ch := ram[rowBase+uint16(col)]
			on := ch&0x80 == 0 // inverse/flash bit 7 clear -> treat as "lit" cell
			clr := color.RGBA{0, 0, 0, 255}
			if on {
				clr = color.RGBA{0xE0, 0xE0, 0xE0, 255}
			}
			x0, y0 := col*cellW, row*cellH
			for dy := 1; dy < cellH-1; dy++ {
				for dx := 1; dx < cellW-1; dx++ {
					screen.Set(x0+dx, y0+dy, clr)
				}
			}
		}
	}
}

func drawLores(screen *ebiten.Image, ram []uint8, base uint16, rows int) {
	blockW, blockH := screenW/scanW, screenH/48
	for row := 0; row < rows*2; row++ {
		textRow := row / 2
		rowBase := base + textRowBase(textRow)
		for col := 0; col < scanW; col++ {
			b := ram[rowBase+uint16(col)]
			nibble := b & 0x0F
			if row%2 == 1 {
				nibble = b >> 4
			}
			clr := loresPalette[nibble]
			x0, y0 := col*blockW, row*blockH
			for dy := 0; dy < blockH; dy++ {
				for dx := 0; dx < blockW; dx++ {
					screen.Set(x0+dx, y0+dy, clr)
				}
			}
		}
	}
}

// hiresRowBase mirrors textRowBase's interleave but across the 8 KiB
// hi-res region's 192 scanlines, grouped in 64-line bands of 8
// sub-rows of 8 lines each, with a 0x28-per-band, 0x80-per-sub-row,
// 0x400-per-line layout.
func hiresRowBase(y int) uint16 {
	band := y / 64
	sub := (y % 64) / 8
	line := y % 8
	return uint16(band*0x28 + sub*0x80 + line*0x400)
}

func drawHires(screen *ebiten.Image, ram []uint8, io *iodispatch.Dispatcher) {
	base := uint16(0x2000)
	if io.PAGE == 2 {
		base = 0x4000
	}
	on := color.RGBA{0xE0, 0xE0, 0xE0, 255}
	off := color.RGBA{0, 0, 0, 255}
	for y := 0; y < screenH; y++ {
		rowBase := base + hiresRowBase(y)
		for byteCol := 0; byteCol < 40; byteCol++ {
			b := ram[rowBase+uint16(byteCol)]
			for bit := 0; bit < 7; bit++ {
				x := byteCol*7 + bit
				if x >= screenW {
					continue
				}
				clr := off
				if b&(1<<uint(bit)) != 0 {
					clr = on
				}
				screen.Set(x, y, clr)
			}
		}
	}
}
