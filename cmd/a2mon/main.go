package main

import (
	"flag"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/a2emu/a2plus/machine"
	"github.com/a2emu/a2plus/romload"
)

var (
	romFile  = flag.String("rom", "", "Path to the 12 KiB $D000-$FFFF ROM image.")
	promFile = flag.String("prom", "", "Path to the 256-byte slot-6 boot PROM.")
	diskFile = flag.String("disk", "", "Path to a pre-nibblized .nib disk image to load into drive 0.")
	bootDisk = flag.Bool("boot_disk", false, "Jump to the slot-6 boot entry point instead of the reset vector.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	m := machine.New(nil)

	if *romFile != "" {
		rom, err := romload.ReadExact(*romFile, romload.ROMSize)
		if err != nil {
			glog.Fatalf("a2mon: loading ROM: %v", err)
		}
		if err := m.LoadROM(rom); err != nil {
			glog.Fatalf("a2mon: %v", err)
		}
	}
	if *promFile != "" {
		prom, err := romload.ReadExact(*promFile, romload.PROMSize)
		if err != nil {
			glog.Fatalf("a2mon: loading PROM: %v", err)
		}
		if err := m.LoadBootPROM(prom); err != nil {
			glog.Fatalf("a2mon: %v", err)
		}
	}
	if *diskFile != "" {
		data, err := romload.ReadDiskImage(*diskFile)
		if err != nil {
			glog.Fatalf("a2mon: loading disk image: %v", err)
		}
		m.LoadDisk(0, data, false)
	}

	m.Reset()
	if *bootDisk {
		m.BootFromDisk()
	}

	if _, err := tea.NewProgram(newModel(m)).Run(); err != nil {
		glog.Fatalf("a2mon: %v", err)
	}
}
