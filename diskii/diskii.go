// Package diskii simulates the Disk II floppy controller down to the
// stepper motor and nibble-stream level: two drive units, a four-phase
// stepper state machine driving half-track position, and a rotating
// head over a pre-nibblized track image.
package diskii

import "github.com/golang/glog"

const (
	// NibblesPerTrack is the length of one nibblized track, matching
	// the 232,960-byte .nib image format (0x1A00 * 35 tracks).
	NibblesPerTrack = 0x1A00

	maxHalfTrack = 140
	numPhases    = 4
)

// Drive holds one floppy unit's electromechanical state: the stepper
// motor phases, half-track position, spindle motor, and read/write
// head position within the current track's nibble stream.
type Drive struct {
	phase     [numPhases]bool // current on/off state of each phase coil
	phaseB    [numPhases]bool // phase, one access previously shifted in
	phaseBB   [numPhases]bool // phase, two accesses previously shifted in
	idx       int8            // phase index touched by the current access
	idxB      int8            // phase index touched by the previous access
	halfTrack int
	motorOn   bool
	nibble    int
	writeMode bool
	readOnly  bool
	image     []uint8 // raw nibble stream, NibblesPerTrack * trackCount
}

// NewDrive returns an empty, unloaded drive at half-track 0.
func NewDrive() *Drive {
	return &Drive{}
}

// LoadImage installs a pre-nibblized disk image. Per §4.4's failure
// model a missing image reads as all zeroes, so a short image is
// zero-padded rather than rejected.
func (d *Drive) LoadImage(data []uint8, readOnly bool) {
	want := NibblesPerTrack * 35
	if len(data) < want {
		glog.Warningf("diskii: image is %d bytes, short of the expected %d; zero-padding", len(data), want)
		padded := make([]uint8, want)
		copy(padded, data)
		data = padded
	}
	d.image = data
	d.readOnly = readOnly
	d.nibble = 0
}

// Track returns the current whole-track number derived from the
// half-track position.
func (d *Drive) Track() int { return (d.halfTrack + 1) / 2 }

// HalfTrack returns the current half-track position, clamped to
// [0, 140] by the stepper.
func (d *Drive) HalfTrack() int { return d.halfTrack }

// Nibble returns the current head offset within the track, for the
// debug monitor.
func (d *Drive) Nibble() int { return d.nibble }

// MotorOn reports whether the drive's spindle motor is spinning.
func (d *Drive) MotorOn() bool { return d.motorOn }

// stepPhase implements §4.4's stepper state machine for one access to
// $C0E0+n on this drive. Every access, on or off, shifts the touched
// phase index one generation back (phaseB takes phase's old value,
// phaseBB takes phaseB's old value) before the index itself updates —
// so a half-track step only fires once a phase two accesses ago is
// still recorded as having been on, not merely the most recent one.
func (d *Drive) stepPhase(n int) {
	phase := n >> 1
	on := n&1 == 1

	d.phaseBB[d.idxB] = d.phaseB[d.idxB]
	d.phaseB[d.idx] = d.phase[d.idx]
	d.idxB = d.idx
	d.idx = int8(phase)

	if !on {
		d.phase[phase] = false
		return
	}

	if d.phaseBB[(phase+1)%numPhases] {
		d.halfTrack--
		if d.halfTrack < 0 {
			d.halfTrack = 0
		}
	}
	if d.phaseBB[(phase+numPhases-1)%numPhases] {
		d.halfTrack++
		if d.halfTrack > maxHalfTrack {
			d.halfTrack = maxHalfTrack
		}
	}

	d.phase[phase] = true
	d.nibble = 0
}

// readNibble returns the byte under the head and advances it by one,
// modulo the track length. A position past the end of the image reads
// as zero.
func (d *Drive) readNibble() uint8 {
	var v uint8
	if off := d.Track()*NibblesPerTrack + d.nibble; off < len(d.image) {
		v = d.image[off]
	}
	d.nibble = (d.nibble + 1) % NibblesPerTrack
	return v
}

// writeNibble stores val under the head (if the drive is not
// read-only and the position lies within the image) and advances the
// head by one.
func (d *Drive) writeNibble(val uint8) {
	if off := d.Track()*NibblesPerTrack + d.nibble; off < len(d.image) && !d.readOnly {
		d.image[off] = val
	}
	d.nibble = (d.nibble + 1) % NibblesPerTrack
}

// Controller owns both Disk II drive units and the shared read/write
// head state ($C0EC-$C0EF). The slot-6 boot PROM at $C600-$C6FF is
// owned and served directly by the bus, per the bus's routing table.
type Controller struct {
	drives  [2]*Drive
	curDrv  int
	latch   uint8
	writing bool
}

// New returns a controller with both drive bays empty.
func New() *Controller {
	return &Controller{drives: [2]*Drive{NewDrive(), NewDrive()}}
}

// Drive returns drive 0 or 1 for inspection by the debug monitor.
func (c *Controller) Drive(n int) *Drive { return c.drives[n&1] }

// CurrentDrive returns the currently selected drive index (0 or 1).
func (c *Controller) CurrentDrive() int { return c.curDrv }

// StepPhase handles an access to $C0E0-$C0E7 on the selected drive.
func (c *Controller) StepPhase(n int) {
	c.drives[c.curDrv].stepPhase(n)
}

// SetMotor handles $C0E8 (off) / $C0E9 (on) for the selected drive.
func (c *Controller) SetMotor(on bool) {
	c.drives[c.curDrv].motorOn = on
}

// SelectDrive handles $C0EA (drive 0) / $C0EB (drive 1). The newly
// selected drive inherits the motor-on state that either drive held;
// the drive being deselected is forced off.
func (c *Controller) SelectDrive(n int) {
	motorOn := c.drives[0].motorOn || c.drives[1].motorOn
	other := 1 - (n & 1)
	c.drives[other].motorOn = false
	c.curDrv = n & 1
	c.drives[c.curDrv].motorOn = motorOn
}

// ShiftLatch handles $C0EC: in read mode it returns the nibble under
// the head and advances it; in write mode it stores the latch value
// under the head and advances it.
func (c *Controller) ShiftLatch() uint8 {
	d := c.drives[c.curDrv]
	if c.writing {
		d.writeNibble(c.latch)
		return 0
	}
	v := d.readNibble()
	c.latch = v
	return v
}

// LoadLatch handles $C0ED: load the data latch without touching the
// head.
func (c *Controller) LoadLatch(val uint8) { c.latch = val }

// EnterReadMode handles $C0EE: switch to read mode and report
// write-protect status of the selected drive.
func (c *Controller) EnterReadMode() uint8 {
	c.writing = false
	if c.drives[c.curDrv].readOnly {
		return 0x80
	}
	return 0
}

// EnterWriteMode handles $C0EF.
func (c *Controller) EnterWriteMode() { c.writing = true }
