// Package romload loads the raw binary images the core consumes: the
// $D000-$FFFF ROM, the slot-6 boot PROM, and pre-nibblized .nib disk
// images. It does no format parsing of its own; Apple II images carry
// no header, unlike the iNES format this core's corpus otherwise
// deals with.
package romload

import (
	"fmt"
	"os"
)

const (
	// ROMSize is the size of the $D000-$FFFF ROM image.
	ROMSize = 0x3000
	// PROMSize is the size of the slot-6 boot PROM image.
	PROMSize = 0x100
	// DiskImageSize is the size of a pre-nibblized 35-track .nib image.
	DiskImageSize = 0x1A00 * 35
)

// ReadExact reads path and requires it to be exactly want bytes.
func ReadExact(path string, want int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("romload: couldn't read %q: %w", path, err)
	}
	if len(data) != want {
		return nil, fmt.Errorf("romload: %q is %d bytes, want exactly %d", path, len(data), want)
	}
	return data, nil
}

// ReadDiskImage reads a .nib disk image. Short images are accepted
// here and zero-padded later by diskii.Drive.LoadImage, matching the
// "missing image reads as all zeroes" failure model; this function
// only rejects images that are implausibly large to guard against a
// misnamed non-disk file being passed on the command line.
func ReadDiskImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("romload: couldn't read %q: %w", path, err)
	}
	if len(data) > DiskImageSize*2 {
		return nil, fmt.Errorf("romload: %q is %d bytes, implausibly large for a .nib image", path, len(data))
	}
	return data, nil
}
