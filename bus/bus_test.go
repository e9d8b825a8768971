package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubIO is a minimal IODispatcher for bus-routing tests; it records
// the last address touched so tests can confirm delegation without
// depending on iodispatch.
type stubIO struct {
	lastReadAddr  uint16
	lastWriteAddr uint16
	lastWriteVal  uint8
	readVal       uint8
}

func (s *stubIO) Read(addr uint16) uint8 {
	s.lastReadAddr = addr
	return s.readVal
}

func (s *stubIO) Write(addr uint16, val uint8) {
	s.lastWriteAddr = addr
	s.lastWriteVal = val
}

func newTestBus() (*Bus, *stubIO, *LanguageCard) {
	io := &stubIO{}
	lc := NewLanguageCard()
	return New(io, lc), io, lc
}

func TestRAMRoundTrip(t *testing.T) {
	b, _, _ := newTestBus()
	b.Write(0x1234, 0x55)
	assert.Equal(t, uint8(0x55), b.Read(0x1234))
}

func TestIOPageDelegates(t *testing.T) {
	b, io, _ := newTestBus()
	io.readVal = 0x42
	assert.Equal(t, uint8(0x42), b.Read(0xC030))
	assert.Equal(t, uint16(0xC030), io.lastReadAddr)

	b.Write(0xC000, 0x01)
	assert.Equal(t, uint16(0xC000), io.lastWriteAddr)
	assert.Equal(t, uint8(0x01), io.lastWriteVal)
}

func TestDispatcherCatchAllDelegates(t *testing.T) {
	b, io, _ := newTestBus()
	io.readVal = 0x99
	assert.Equal(t, uint8(0x99), b.Read(0xC300))
	assert.Equal(t, uint16(0xC300), io.lastReadAddr)

	b.Write(0xC700, 0x07)
	assert.Equal(t, uint16(0xC700), io.lastWriteAddr)
}

func TestSlot6PROMIsReadOnly(t *testing.T) {
	b, _, _ := newTestBus()
	prom := make([]byte, 256)
	prom[0] = 0xAB
	assert.NoError(t, b.LoadPROM(prom))

	assert.Equal(t, uint8(0xAB), b.Read(0xC600))
	b.Write(0xC600, 0xFF) // dropped, PROM is read-only
	assert.Equal(t, uint8(0xAB), b.Read(0xC600))
}

func TestROMServedWhenLanguageCardReadDisabled(t *testing.T) {
	b, _, _ := newTestBus()
	rom := make([]byte, romSize)
	rom[0] = 0x60 // RTS at $D000
	assert.NoError(t, b.LoadROM(rom))

	assert.Equal(t, uint8(0x60), b.Read(0xD000))
}

func TestLanguageCardShadowsROMWhenReadEnabled(t *testing.T) {
	b, _, lc := newTestBus()
	rom := make([]byte, romSize)
	rom[0] = 0x60
	assert.NoError(t, b.LoadROM(rom))

	lc.SetReadEnable(true)
	lc.SetWriteEnable(true)
	b.Write(0xD000, 0xEA)

	assert.Equal(t, uint8(0xEA), b.Read(0xD000))
	// ROM underneath is untouched.
	lc.SetReadEnable(false)
	assert.Equal(t, uint8(0x60), b.Read(0xD000))
}

func TestLanguageCardWriteDisabledDropsWrite(t *testing.T) {
	b, _, lc := newTestBus()
	lc.SetReadEnable(true)
	lc.SetWriteEnable(false)

	b.Write(0xD000, 0x42)
	assert.Equal(t, uint8(0x00), b.Read(0xD000))
}

func TestLanguageCardBankSwitch(t *testing.T) {
	b, _, lc := newTestBus()
	lc.SetReadEnable(true)
	lc.SetWriteEnable(true)

	lc.SetBank2(false)
	b.Write(0xD050, 0x11)

	lc.SetBank2(true)
	b.Write(0xD050, 0x22)

	assert.Equal(t, uint8(0x22), b.Read(0xD050))
	lc.SetBank2(false)
	assert.Equal(t, uint8(0x11), b.Read(0xD050))
}

func TestLanguageCardHighBankSharedAcrossBankSelect(t *testing.T) {
	b, _, lc := newTestBus()
	lc.SetReadEnable(true)
	lc.SetWriteEnable(true)

	lc.SetBank2(false)
	b.Write(0xE050, 0x77) // $E000-$FFFF is not affected by bank2

	lc.SetBank2(true)
	assert.Equal(t, uint8(0x77), b.Read(0xE050))
}

func TestRAMExposedForHostAccess(t *testing.T) {
	b, _, _ := newTestBus()
	b.RAM()[0x0400] = 0x41
	assert.Equal(t, uint8(0x41), b.Read(0x0400))
}

func TestLoadROMRejectsWrongSize(t *testing.T) {
	b, _, _ := newTestBus()
	assert.Error(t, b.LoadROM(make([]byte, 10)))
}

func TestLoadPROMRejectsWrongSize(t *testing.T) {
	b, _, _ := newTestBus()
	assert.Error(t, b.LoadPROM(make([]byte, 10)))
}
