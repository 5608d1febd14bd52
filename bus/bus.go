// Package bus defines the capability a CPU uses to read, write, and fetch
// instruction bytes. It routes every access through a memory.Bank so a
// debugger (or any other observer) can be told about accesses without the
// CPU needing to know one is attached, and it turns out-of-range addresses
// into an error instead of silently aliasing the way memory.Memory does on
// its own.
package bus

import (
	"github.com/retro6502/core/memory"
)

// AccessOp identifies the kind of bus operation that occurred, used both
// for error reporting and for feeding the debugger's breakpoint matcher.
type AccessOp int

const (
	OpRead AccessOp = iota
	OpWrite
	OpExec
)

func (o AccessOp) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpExec:
		return "exec"
	default:
		return "unknown"
	}
}

// MemoryAccessError is returned when a Bus operation addresses outside the
// configured memory.
type MemoryAccessError struct {
	Addr uint16
	Op   AccessOp
}

func (e MemoryAccessError) Error() string {
	return "bus: " + e.Op.String() + " outside configured memory at $" + hex16(e.Addr)
}

func hex16(v uint16) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{
		digits[(v>>12)&0xF],
		digits[(v>>8)&0xF],
		digits[(v>>4)&0xF],
		digits[v&0xF],
	})
}

// Hook is notified of every access a Bus performs, after the underlying
// memory operation has completed. It must not re-enter the bus or the CPU
// driving it; implementations should only copy state they want to observe.
type Hook func(op AccessOp, addr uint16, val uint8)

// Bus is the minimal read/write/fetch capability a CPU needs. A custom Bus
// may wrap a smaller memory.Bank and intercept specific ranges for
// memory-mapped I/O before falling through to it.
type Bus interface {
	// Read returns the byte at addr, tagging the access as a data read.
	Read(addr uint16) (uint8, error)
	// Write stores val at addr.
	Write(addr uint16, val uint8) error
	// Fetch returns the byte at addr tagged as an instruction fetch, so
	// observers can distinguish code fetches from data reads at the same
	// address.
	Fetch(addr uint16) (uint8, error)
	// Memory returns the underlying memory handle for load/save/size
	// operations that bypass the access-hook machinery (the debugger's `e`
	// and `x` commands, the host's image loader).
	Memory() *memory.Memory
	// SetHook installs (or clears, with nil) the access observer.
	SetHook(h Hook)
}

// flatBus is the default Bus: a single memory.Memory with no MMIO
// intercepts, matching spec's "flat 64 KiB memory" default.
type flatBus struct {
	mem  *memory.Memory
	hook Hook
}

// New wraps mem in a Bus that performs bounds checking and access
// notification.
func New(mem *memory.Memory) Bus {
	return &flatBus{mem: mem}
}

// NewDefault allocates a fresh flat memory.Memory of the given size and
// wraps it in a Bus, mirroring the teacher's New8BitRAMBank convenience
// constructor.
func NewDefault(size int) (Bus, error) {
	m, err := memory.New(size, nil)
	if err != nil {
		return nil, err
	}
	m.PowerOn()
	return New(m), nil
}

func (b *flatBus) SetHook(h Hook) {
	b.hook = h
}

func (b *flatBus) Memory() *memory.Memory {
	return b.mem
}

func (b *flatBus) access(op AccessOp, addr uint16) (uint8, error) {
	if !b.mem.InRange(addr) {
		return 0, MemoryAccessError{Addr: addr, Op: op}
	}
	val := b.mem.Read(addr)
	if b.hook != nil {
		b.hook(op, addr, val)
	}
	return val, nil
}

func (b *flatBus) Read(addr uint16) (uint8, error) {
	return b.access(OpRead, addr)
}

func (b *flatBus) Fetch(addr uint16) (uint8, error) {
	return b.access(OpExec, addr)
}

func (b *flatBus) Write(addr uint16, val uint8) error {
	if !b.mem.InRange(addr) {
		return MemoryAccessError{Addr: addr, Op: OpWrite}
	}
	b.mem.Write(addr, val)
	if b.hook != nil {
		b.hook(OpWrite, addr, val)
	}
	return nil
}
