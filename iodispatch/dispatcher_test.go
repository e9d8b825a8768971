package iodispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a2emu/a2plus/bus"
	"github.com/a2emu/a2plus/diskii"
)

func newTestDispatcher() (*Dispatcher, *bus.LanguageCard, func(uint64)) {
	lc := bus.NewLanguageCard()
	disk := diskii.New()
	var cycles uint64
	d := New(lc, disk, func() uint64 { return cycles }, nil)
	return d, lc, func(n uint64) { cycles = n }
}

func TestKeyboardLatchAndStrobeClear(t *testing.T) {
	d, _, _ := newTestDispatcher()
	d.KBD = 0x80 | 'A'

	assert.Equal(t, uint8(0x80|'A'), d.Read(0xC000))
	d.Read(0xC010)
	assert.Equal(t, uint8('A'), d.KBD)
}

func TestSpeakerToggleInvokesAudioTick(t *testing.T) {
	var calls []uint64
	lc := bus.NewLanguageCard()
	disk := diskii.New()
	cycles := uint64(0)
	d := New(lc, disk, func() uint64 { return cycles }, func(n uint64) {
		calls = append(calls, n)
	})

	d.Read(0xC030)
	cycles = 200
	d.Read(0xC030)

	assert.Equal(t, []uint64{0, 200}, calls)
}

func TestVideoModeFlags(t *testing.T) {
	d, _, _ := newTestDispatcher()

	d.Read(0xC051) // TEXT on
	assert.True(t, d.TEXT)
	d.Read(0xC050) // TEXT off
	assert.False(t, d.TEXT)

	d.Read(0xC053)
	assert.True(t, d.MIXED)

	d.Read(0xC055)
	assert.Equal(t, 2, d.PAGE)
	d.Read(0xC054)
	assert.Equal(t, 1, d.PAGE)

	d.Read(0xC057)
	assert.True(t, d.HIRES)
}

func TestPaddleButtons(t *testing.T) {
	d, _, _ := newTestDispatcher()
	d.PB0, d.PB1, d.PB2 = 0xFF, 0x00, 0xFF

	assert.Equal(t, uint8(0xFF), d.Read(0xC061))
	assert.Equal(t, uint8(0x00), d.Read(0xC062))
	assert.Equal(t, uint8(0xFF), d.Read(0xC063))
}

func TestPaddleCountdownExpires(t *testing.T) {
	d, _, setCycles := newTestDispatcher()
	d.GC0 = 10 // expires after 100 cycle-equivalents

	d.Read(0xC070) // reset countdown at cycle 0
	assert.Equal(t, uint8(0x80), d.Read(0xC064))

	setCycles(50)
	assert.Equal(t, uint8(0x80), d.Read(0xC064))

	setCycles(200)
	assert.Equal(t, uint8(0x00), d.Read(0xC064))
}

func TestLanguageCardScenarioE(t *testing.T) {
	d, lc, _ := newTestDispatcher()

	d.Read(0xC081)
	d.Read(0xC081)

	assert.True(t, lc.WriteEnabled())
	assert.False(t, lc.ReadEnabled())
}

func TestLanguageCardWriteAccessDoesNotArm(t *testing.T) {
	d, lc, _ := newTestDispatcher()

	d.Write(0xC081, 0x00)
	d.Read(0xC081)

	// The write reset the flip-flop, so a single subsequent read only
	// arms it; write-enable must still be off.
	assert.False(t, lc.WriteEnabled())
}

func TestLanguageCardDisableSwitchesOffWrite(t *testing.T) {
	d, lc, _ := newTestDispatcher()
	d.Read(0xC081)
	d.Read(0xC081)
	assert.True(t, lc.WriteEnabled())

	d.Read(0xC080) // a non-write-switch access turns write-enable back off
	assert.False(t, lc.WriteEnabled())
}

func TestLanguageCardBank2Selection(t *testing.T) {
	d, lc, _ := newTestDispatcher()

	d.Read(0xC080) // n=0, bit3 clear -> bank2
	assert.True(t, lc.Bank2Selected())

	d.Read(0xC088) // n=8, bit3 set -> bank1
	assert.False(t, lc.Bank2Selected())
}

func TestDiskRegistersDelegateToController(t *testing.T) {
	d, _, _ := newTestDispatcher()

	d.Read(0xC0EA) // select drive 0
	d.Read(0xC0E9) // motor on

	d.Write(0xC0EF, 0) // write mode
	d.Write(0xC0ED, 0x5A)
	d.Read(0xC0EC) // shift: advances the head (no image, so nothing is stored)

	d.Read(0xC0EE) // read mode
	// $C0EE reports the selected drive's write-protect status.
	assert.Equal(t, uint8(0x00), d.Read(0xC0EE)&0x80) // not read-only (no image loaded is not read-only)
}

func TestDispatcherCatchAllReturnsCycleByte(t *testing.T) {
	d, _, setCycles := newTestDispatcher()
	setCycles(0x1234)
	assert.Equal(t, uint8(0x34), d.Read(0xC200))
}
