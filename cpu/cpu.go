package cpu

import (
	"github.com/retro6502/core/bus"
	"github.com/retro6502/core/irq"
)

// Flag bits within P, named after the teacher's P_* constants.
const (
	FlagCarry     uint8 = 0x01
	FlagZero      uint8 = 0x02
	FlagInterrupt uint8 = 0x04
	FlagDecimal   uint8 = 0x08
	FlagBreak     uint8 = 0x10
	FlagS1        uint8 = 0x20 // always set; unused bit 5
	FlagOverflow  uint8 = 0x40
	FlagNegative  uint8 = 0x80
)

const (
	stackBase   = 0x0100
	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// EventKind tags the Event a CPU reports to an attached Debugger.
type EventKind int

const (
	EventFetch EventKind = iota
	EventRead
	EventWrite
	EventReset
	EventIRQ
	EventNMI
	EventInvalidOpcode
	EventTrap
)

// Event is delivered to a Debugger (or any Callback) after each relevant
// CPU action, carrying enough state for breakpoint matching and tracing.
type Event struct {
	Kind EventKind
	PC   uint16
	Addr uint16
	Val  uint8
}

// Callback receives Events as the CPU executes. It must not call back into
// the CPU (Step/Run) -- it runs synchronously inside them.
type Callback func(Event)

// CPU is the instruction-atomic engine: one Step call decodes and fully
// executes one instruction (or services one pending interrupt), updating
// Cycles by that instruction's total cost including page-cross, branch and
// BCD penalties.
type CPU struct {
	A, X, Y, S, P uint8
	PC            uint16
	Cycles        uint64

	Variant Variant
	Bus     bus.Bus

	irqSource irq.Sender
	nmiSource irq.Sender
	irqLine   bool // manual IRQ line, ORed with irqSource.Raised()
	nmiLatch  bool // manual edge-triggered NMI request
	prevNMI   bool // last observed nmiSource.Raised(), for edge detection

	callback   Callback
	pendingErr error
}

// New wraps an existing bus.Bus in a CPU of the given variant.
func New(b bus.Bus, v Variant) *CPU {
	return &CPU{Bus: b, Variant: v}
}

// NewDefault allocates a flat 64KiB bus and wraps it in a CPU, matching the
// teacher's New8BitRAMBank-backed convenience constructors.
func NewDefault(v Variant) (*CPU, error) {
	b, err := bus.NewDefault(1 << 16)
	if err != nil {
		return nil, err
	}
	return New(b, v), nil
}

// SetCallback installs (or clears, with nil) the event observer a Debugger
// uses to implement breakpoints and tracing.
func (c *CPU) SetCallback(cb Callback) {
	c.callback = cb
}

// SetIRQSource wires a level-triggered interrupt source, checked on every
// Step alongside the manual SetIRQLine state.
func (c *CPU) SetIRQSource(s irq.Sender) {
	c.irqSource = s
}

// SetNMISource wires an edge-triggered interrupt source. The edge is
// detected by comparing Raised() across Steps, same as RaiseNMI's manual
// latch.
func (c *CPU) SetNMISource(s irq.Sender) {
	c.nmiSource = s
}

// SetIRQLine manually holds or releases the IRQ line, for a debugger's `tq`
// command or a host without a wired irq.Sender.
func (c *CPU) SetIRQLine(held bool) {
	c.irqLine = held
}

// RaiseNMI manually latches an NMI edge, for a debugger's `tn` command.
func (c *CPU) RaiseNMI() {
	c.nmiLatch = true
}

func (c *CPU) emit(ev Event) {
	if c.callback != nil {
		c.callback(ev)
	}
}

func (c *CPU) read(addr uint16) (uint8, error) {
	v, err := c.Bus.Read(addr)
	if err != nil {
		return 0, MemoryAccessError{PC: c.PC, Addr: addr, Op: "read", Err: err}
	}
	c.emit(Event{Kind: EventRead, PC: c.PC, Addr: addr, Val: v})
	return v, nil
}

// mustRead is used by addressing.go's pointer-chasing (zero-page pointer
// fetches) where a bus error is exceptional enough to defer: it records
// the error on the CPU and returns 0, and Step checks c.pendingErr once
// resolve has built the address.
func (c *CPU) mustRead(addr uint16) uint8 {
	v, err := c.read(addr)
	if err != nil && c.pendingErr == nil {
		c.pendingErr = err
	}
	return v
}

func (c *CPU) write(addr uint16, val uint8) error {
	if err := c.Bus.Write(addr, val); err != nil {
		return MemoryAccessError{PC: c.PC, Addr: addr, Op: "write", Err: err}
	}
	c.emit(Event{Kind: EventWrite, PC: c.PC, Addr: addr, Val: val})
	return nil
}

// fetch reads the byte at PC, tagged as an instruction fetch, and advances
// PC past it.
func (c *CPU) fetch() (uint8, error) {
	v, err := c.Bus.Fetch(c.PC)
	if err != nil {
		return 0, MemoryAccessError{PC: c.PC, Addr: c.PC, Op: "fetch", Err: err}
	}
	c.emit(Event{Kind: EventFetch, PC: c.PC, Addr: c.PC, Val: v})
	c.PC++
	return v, nil
}

func (c *CPU) push(v uint8) error {
	err := c.write(stackBase+uint16(c.S), v)
	c.S--
	return err
}

func (c *CPU) pop() (uint8, error) {
	c.S++
	return c.read(stackBase + uint16(c.S))
}

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) flag(mask uint8) bool {
	return c.P&mask != 0
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

// PowerOn randomizes backing memory (if the bus exposes one) and puts the
// CPU into a power-up state; Reset should still be called afterward to
// load the reset vector, matching real hardware sequencing.
func (c *CPU) PowerOn() {
	if m := c.Bus.Memory(); m != nil {
		m.PowerOn()
	}
	c.P = FlagS1 | FlagInterrupt
	c.S = 0xFD
}

// Reset unconditionally sets A=X=Y=0, S=0xFD, P=0x24 (I set, bit 5 set),
// loads the reset vector (or, if startAddr is non-nil, jumps there directly
// -- used by the debugger's `rst <addr>` and by fixture tests that skip the
// vector table), and sets Cycles=7, matching real hardware's fixed 7-cycle
// reset sequence rather than accumulating onto whatever state preceded it.
func (c *CPU) Reset(startAddr *uint16) error {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = FlagS1 | FlagInterrupt
	if startAddr != nil {
		c.PC = *startAddr
	} else {
		lo, err := c.read(resetVector)
		if err != nil {
			return err
		}
		hi, err := c.read(resetVector + 1)
		if err != nil {
			return err
		}
		c.PC = uint16(lo) | uint16(hi)<<8
	}
	c.Cycles = 7
	c.emit(Event{Kind: EventReset, PC: c.PC})
	return nil
}

// Debugger is the minimal capability Run needs from an attached debugger:
// a chance to intercept before/after each instruction and decide whether
// execution should continue. debugger.Debugger implements this.
type Debugger interface {
	// Before is called with the PC about to execute. If stop is true, Run
	// returns immediately without executing that instruction.
	Before(pc uint16) (stop bool)
	// After is called once the instruction at pc has fully executed. If
	// stop is true, Run returns after this instruction.
	After(pc uint16) (stop bool)
}

// Run steps the CPU until maxCycles have elapsed, the attached Debugger
// (which may be nil) asks to stop, or an error (including TrapError, a
// JMP/BRA self-loop) occurs. maxCycles of 0 means unbounded, matching the
// debugger's `g` command and the teacher's own unbounded-run convention.
func (c *CPU) Run(dbg Debugger, maxCycles uint64) error {
	start := c.Cycles
	for maxCycles == 0 || c.Cycles-start < maxCycles {
		pc := c.PC
		if dbg != nil && dbg.Before(pc) {
			return nil
		}
		if err := c.serviceInterrupts(); err != nil {
			return err
		}
		prevPC := c.PC
		if err := c.Step(); err != nil {
			return err
		}
		if c.PC == prevPC {
			c.emit(Event{Kind: EventTrap, PC: prevPC})
			return TrapError{PC: prevPC}
		}
		if dbg != nil && dbg.After(pc) {
			return nil
		}
	}
	return nil
}

// serviceInterrupts checks the latched NMI edge and the IRQ line/source,
// NMI taking precedence, and runs the 7-cycle interrupt sequence if one is
// pending and (for IRQ) not masked by the I flag.
func (c *CPU) serviceInterrupts() error {
	nmiEdge := c.nmiLatch
	if c.nmiSource != nil {
		raised := c.nmiSource.Raised()
		if raised && !c.prevNMI {
			nmiEdge = true
		}
		c.prevNMI = raised
	}
	if nmiEdge {
		c.nmiLatch = false
		return c.interrupt(nmiVector, false)
	}

	irqHeld := c.irqLine
	if c.irqSource != nil && c.irqSource.Raised() {
		irqHeld = true
	}
	if irqHeld && !c.flag(FlagInterrupt) {
		return c.interrupt(irqVector, false)
	}
	return nil
}

// interrupt pushes PC and P (with B clear for a hardware interrupt, set
// for BRK) and jumps through vector, costing 7 cycles.
func (c *CPU) interrupt(vector uint16, brk bool) error {
	if err := c.push(uint8(c.PC >> 8)); err != nil {
		return err
	}
	if err := c.push(uint8(c.PC)); err != nil {
		return err
	}
	p := c.P | FlagS1
	if brk {
		p |= FlagBreak
	} else {
		p &^= FlagBreak
	}
	if err := c.push(p); err != nil {
		return err
	}
	c.setFlag(FlagInterrupt, true)
	lo, err := c.read(vector)
	if err != nil {
		return err
	}
	hi, err := c.read(vector + 1)
	if err != nil {
		return err
	}
	c.PC = uint16(lo) | uint16(hi)<<8
	c.Cycles += 7
	kind := EventIRQ
	if vector == nmiVector {
		kind = EventNMI
	}
	c.emit(Event{Kind: kind, PC: c.PC})
	return nil
}

// Step decodes and fully executes the single instruction at PC.
func (c *CPU) Step() error {
	c.pendingErr = nil
	opByte, err := c.fetch()
	if err != nil {
		return err
	}
	op, _ := Lookup(c.Variant, opByte)

	if op.Mnemonic == "HLT" {
		return InvalidOpcodeError{PC: c.PC - 1, Opcode: opByte}
	}

	r, err := c.resolve(op.Mode)
	if err != nil {
		return err
	}
	if c.pendingErr != nil {
		return c.pendingErr
	}

	cycles, err := c.execute(op, r)
	if err != nil {
		return err
	}
	c.Cycles += uint64(cycles)
	return nil
}

func (c *CPU) operandValue(r resolved) (uint8, error) {
	if r.immediate || r.accumulator {
		return r.value, nil
	}
	return c.read(r.addr)
}

func (c *CPU) storeResult(r resolved, v uint8) error {
	if r.accumulator {
		c.A = v
		return nil
	}
	return c.write(r.addr, v)
}

func (c *CPU) pageCrossCycles(op Opcode, r resolved) int {
	if op.PageCross && r.pageCrossed {
		return 1
	}
	return 0
}
