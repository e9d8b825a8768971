package iodispatch

// diskAccess decodes one access to $C0E0-$C0EF into the corresponding
// Disk II controller call.
func (d *Dispatcher) diskAccess(addr uint16, isWrite bool, val uint8) uint8 {
	n := int(addr - addrDiskLo)
	switch {
	case n <= 0x07:
		d.disk.StepPhase(n)
		return 0
	case n == 0x08:
		d.disk.SetMotor(false)
		return 0
	case n == 0x09:
		d.disk.SetMotor(true)
		return 0
	case n == 0x0A:
		d.disk.SelectDrive(0)
		return 0
	case n == 0x0B:
		d.disk.SelectDrive(1)
		return 0
	case n == 0x0C:
		return d.disk.ShiftLatch()
	case n == 0x0D:
		if isWrite {
			d.disk.LoadLatch(val)
		}
		return 0
	case n == 0x0E:
		return d.disk.EnterReadMode()
	default: // 0x0F
		d.disk.EnterWriteMode()
		return 0
	}
}
