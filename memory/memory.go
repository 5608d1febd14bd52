// Package memory defines the basic interfaces for working with a 6502
// family memory map along with a flat RAM-backed implementation. Since
// downstream systems have specific mappings (shadowed regions, MMIO
// windows) the read/write contract is defined as an interface so a host
// can stack its own Bank in front of the one provided here.
package memory

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"time"
)

// Bank is the minimal capability a memory implementation must provide.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply
	// a no-op without any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation
	// specific as to whether it's randomized or preset to all zeros.
	PowerOn()
	// Parent holds a reference (if non-nil) to the next level memory
	// controller. A chain of these can be created in order to find the top
	// one and be able to query items such as the databus state.
	Parent() Bank
	// DatabusVal returns the last value seen to go across on the data bus.
	DatabusVal() uint8
	// Size returns the number of addressable bytes this Bank covers.
	Size() int
}

// LatestDatabusVal hunts up a chain of Banks until it finds the outermost
// one and returns the DatabusVal from it.
func LatestDatabusVal(b Bank) uint8 {
	if b.Parent() != nil {
		return LatestDatabusVal(b.Parent())
	}
	return b.DatabusVal()
}

// Memory is a flat, addressable byte array implementing Bank. It is the
// default memory store handed to a Bus; a host may supply a smaller size
// than 64KiB, in which case addresses beyond Size() are a Bus-level error
// rather than silently aliasing.
type Memory struct {
	ram        []uint8
	parent     Bank
	databusVal uint8
}

// New creates a flat RAM-backed Bank of the given size (up to 64KiB).
func New(size int, parent Bank) (*Memory, error) {
	if size <= 0 || size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d must be in (0,65536]", size)
	}
	return &Memory{
		ram:    make([]uint8, size),
		parent: parent,
	}, nil
}

// Read implements Bank. addr must be less than Size(); callers that need
// bounds checking should go through a Bus instead.
func (m *Memory) Read(addr uint16) uint8 {
	val := m.ram[int(addr)%len(m.ram)]
	m.databusVal = val
	return val
}

// Write implements Bank.
func (m *Memory) Write(addr uint16, val uint8) {
	m.databusVal = val
	m.ram[int(addr)%len(m.ram)] = val
}

// PowerOn implements Bank and randomizes the RAM, matching real hardware
// where SRAM content on power-up is undefined.
func (m *Memory) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range m.ram {
		m.ram[i] = uint8(rand.Intn(256))
	}
}

// Parent implements Bank.
func (m *Memory) Parent() Bank {
	return m.parent
}

// DatabusVal implements Bank.
func (m *Memory) DatabusVal() uint8 {
	return m.databusVal
}

// Size implements Bank.
func (m *Memory) Size() int {
	return len(m.ram)
}

// InRange reports whether addr is directly addressable without wrapping.
func (m *Memory) InRange(addr uint16) bool {
	return int(addr) < len(m.ram)
}

// Load reads the file at path and places its bytes into memory starting at
// offset. It fails if the file's length plus offset exceeds the memory
// size, so callers don't silently alias data into the low addresses.
func (m *Memory) Load(path string, offset uint16) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("memory: can't read %q: %w", path, err)
	}
	if int(offset)+len(b) > len(m.ram) {
		return fmt.Errorf("memory: %q (%d bytes) at offset 0x%.4X overflows %d byte memory", path, len(b), offset, len(m.ram))
	}
	copy(m.ram[offset:], b)
	return nil
}

// Save writes length bytes starting at offset to path. length of 0 means
// "to the end of memory".
func (m *Memory) Save(path string, offset uint16, length int) error {
	if length == 0 {
		length = len(m.ram) - int(offset)
	}
	if int(offset)+length > len(m.ram) {
		return fmt.Errorf("memory: save range [0x%.4X,0x%.4X) exceeds %d byte memory", offset, int(offset)+length, len(m.ram))
	}
	if err := ioutil.WriteFile(path, m.ram[offset:int(offset)+length], 0644); err != nil {
		return fmt.Errorf("memory: can't write %q: %w", path, err)
	}
	return nil
}
