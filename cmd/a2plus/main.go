// Command a2plus is the host reference harness for the emulation
// core: an ebiten window that drives Machine.Exec once per frame,
// polls the keyboard, blits video RAM, and plays the speaker through
// ebiten/audio.
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/a2emu/a2plus/machine"
	"github.com/a2emu/a2plus/romload"
)

var (
	romFile  = flag.String("rom", "", "Path to the 12 KiB $D000-$FFFF ROM image.")
	promFile = flag.String("prom", "", "Path to the 256-byte slot-6 boot PROM.")
	disk0    = flag.String("disk1", "", "Path to a pre-nibblized .nib image for drive 1.")
	disk1    = flag.String("disk2", "", "Path to a pre-nibblized .nib image for drive 2.")
	bootDisk = flag.Bool("boot_disk", false, "Jump to the slot-6 boot entry point instead of the reset vector.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if *romFile == "" {
		glog.Fatalf("a2plus: -rom is required")
	}
	rom, err := romload.ReadExact(*romFile, romload.ROMSize)
	if err != nil {
		glog.Fatalf("a2plus: %v", err)
	}

	spk := newSpeaker()
	m := machine.New(spk.onTick)

	if err := m.LoadROM(rom); err != nil {
		glog.Fatalf("a2plus: %v", err)
	}

	if *promFile != "" {
		prom, err := romload.ReadExact(*promFile, romload.PROMSize)
		if err != nil {
			glog.Fatalf("a2plus: %v", err)
		}
		if err := m.LoadBootPROM(prom); err != nil {
			glog.Fatalf("a2plus: %v", err)
		}
	}

	loadDiskFlag(m, 0, *disk0)
	loadDiskFlag(m, 1, *disk1)

	m.Reset()
	if *bootDisk {
		m.BootFromDisk()
	}

	runGame(m)
}

func loadDiskFlag(m *machine.Machine, drive int, path string) {
	if path == "" {
		return
	}
	data, err := romload.ReadDiskImage(path)
	if err != nil {
		glog.Fatalf("a2plus: %v", err)
	}
	m.LoadDisk(drive, data, false)
}
