// Package debugger implements conditional breakpoints and an interactive
// command grammar on top of cpu.CPU. Nothing in the teacher has an
// equivalent (its only debugging aid is a -debug flag that dumps every
// Tick), so this package is new, grounded directly on the emulator's own
// Event/Debugger hooks and written in the teacher's exported-struct,
// tagged-error idiom.
package debugger

import (
	"fmt"

	"github.com/retro6502/core/cpu"
	"github.com/retro6502/core/irq"
)

// BreakKind selects what a Breakpoint watches for.
type BreakKind int

const (
	BreakExec BreakKind = iota
	BreakRead
	BreakWrite
	BreakReadWrite
	BreakNMI
	BreakIRQ
)

func (k BreakKind) String() string {
	switch k {
	case BreakExec:
		return "x"
	case BreakRead:
		return "r"
	case BreakWrite:
		return "w"
	case BreakReadWrite:
		return "rw"
	case BreakNMI:
		return "n"
	case BreakIRQ:
		return "q"
	default:
		return "?"
	}
}

// Condition is one "reg=value" qualifier a Breakpoint must also satisfy,
// checked against live CPU state at the moment the underlying event fires.
type Condition struct {
	Reg   string // a, x, y, s, p, pc, or cycles
	Value uint64
}

// Breakpoint is one entry in the debugger's table, addressable by ID for
// be/bd/bdel.
type Breakpoint struct {
	ID         int
	Kind       BreakKind
	Addr       uint16
	HasAddr    bool
	Conditions []Condition
	Enabled    bool
}

func (b *Breakpoint) String() string {
	s := fmt.Sprintf("#%d b%s", b.ID, b.Kind)
	if b.HasAddr {
		s += fmt.Sprintf(" $%.4X", b.Addr)
	}
	for _, c := range b.Conditions {
		s += fmt.Sprintf(" %s=%d", c.Reg, c.Value)
	}
	if !b.Enabled {
		s += " (disabled)"
	}
	return s
}

// Debugger implements cpu.Debugger (Before/After) and owns breakpoint
// state plus the display toggles the CLI grammar exposes (lg, o).
type Debugger struct {
	CPU     *cpu.CPU
	Enabled bool

	// Output receives every line of command/trace text the debugger
	// produces; a nil Output discards it. The host wires this to stdout.
	Output func(string)

	breakpoints []*Breakpoint
	nextID      int

	logEnabled  bool // lg: emit one line per cpu.Event
	regsOnEntry bool // o: print registers before each instruction

	stopRequested bool
	hit           *Breakpoint

	timer      *irq.Timer // installed by SetPeriodicIRQ; nil means no timer source
	lastCycles uint64
}

// SetPeriodicIRQ installs a free-running irq.Timer as c's IRQ source, the
// way a real timer chip (VIA/CIA-style) drives the IRQ line on a fixed
// schedule independent of anything the CPU is executing. period is
// measured in CPU.Cycles; a period of 0 removes the timer and clears the
// IRQ source.
func (d *Debugger) SetPeriodicIRQ(period uint64) {
	if period == 0 {
		d.timer = nil
		d.CPU.SetIRQSource(nil)
		return
	}
	d.timer = irq.NewTimer(period)
	d.lastCycles = d.CPU.Cycles
	d.CPU.SetIRQSource(d.timer)
}

// New attaches a Debugger to c, installing it as c's event callback so
// read/write/NMI/IRQ breakpoints can be matched as events occur. enabled
// mirrors spec.md's Debugger::new(enabled): a disabled Debugger still
// tracks breakpoints and answers commands but Before/After always return
// false, letting Run execute uninterrupted.
func New(c *cpu.CPU, enabled bool) *Debugger {
	d := &Debugger{CPU: c, Enabled: enabled, nextID: 1}
	c.SetCallback(d.onEvent)
	return d
}

func (d *Debugger) emit(format string, args ...interface{}) {
	if d.Output != nil {
		d.Output(fmt.Sprintf(format, args...))
	}
}

// Before implements cpu.Debugger: it stops before executing pc if an
// enabled exec breakpoint matches pc and its conditions.
func (d *Debugger) Before(pc uint16) bool {
	if d.timer != nil {
		d.timer.Advance(d.CPU.Cycles - d.lastCycles)
		d.lastCycles = d.CPU.Cycles
	}
	if !d.Enabled {
		return false
	}
	if d.regsOnEntry {
		d.emit("%s", d.registerLine())
	}
	if bp := d.matchExec(pc); bp != nil {
		d.hit = bp
		d.emit("stopped at breakpoint %s", bp)
		return true
	}
	return false
}

// After implements cpu.Debugger: it stops once the instruction at pc has
// executed if a read/write/NMI/IRQ breakpoint fired during it.
func (d *Debugger) After(pc uint16) bool {
	if !d.Enabled {
		return false
	}
	if d.stopRequested {
		d.stopRequested = false
		d.emit("stopped at breakpoint %s", d.hit)
		return true
	}
	return false
}

// LastHit returns the breakpoint that most recently caused Run to stop, or
// nil if the last stop wasn't a breakpoint (cycle budget, trap, error).
func (d *Debugger) LastHit() *Breakpoint {
	return d.hit
}

func (d *Debugger) onEvent(ev cpu.Event) {
	if ev.Kind == cpu.EventIRQ && d.timer != nil {
		d.timer.Ack()
	}
	if d.logEnabled {
		d.emit("event %s pc=$%.4X addr=$%.4X val=$%.2X", eventKindName(ev.Kind), ev.PC, ev.Addr, ev.Val)
	}
	if !d.Enabled {
		return
	}
	switch ev.Kind {
	case cpu.EventRead:
		if bp := d.matchAccess(BreakRead, ev.Addr); bp != nil {
			d.flag(bp)
		}
		if bp := d.matchAccess(BreakReadWrite, ev.Addr); bp != nil {
			d.flag(bp)
		}
	case cpu.EventWrite:
		if bp := d.matchAccess(BreakWrite, ev.Addr); bp != nil {
			d.flag(bp)
		}
		if bp := d.matchAccess(BreakReadWrite, ev.Addr); bp != nil {
			d.flag(bp)
		}
	case cpu.EventNMI:
		if bp := d.matchSimple(BreakNMI); bp != nil {
			d.flag(bp)
		}
	case cpu.EventIRQ:
		if bp := d.matchSimple(BreakIRQ); bp != nil {
			d.flag(bp)
		}
	}
}

func (d *Debugger) flag(bp *Breakpoint) {
	d.hit = bp
	d.stopRequested = true
}

func (d *Debugger) matchExec(pc uint16) *Breakpoint {
	for _, bp := range d.breakpoints {
		if !bp.Enabled || bp.Kind != BreakExec || !bp.HasAddr || bp.Addr != pc {
			continue
		}
		if d.checkConditions(bp.Conditions) {
			return bp
		}
	}
	return nil
}

func (d *Debugger) matchAccess(kind BreakKind, addr uint16) *Breakpoint {
	for _, bp := range d.breakpoints {
		if !bp.Enabled || bp.Kind != kind || !bp.HasAddr || bp.Addr != addr {
			continue
		}
		if d.checkConditions(bp.Conditions) {
			return bp
		}
	}
	return nil
}

func (d *Debugger) matchSimple(kind BreakKind) *Breakpoint {
	for _, bp := range d.breakpoints {
		if !bp.Enabled || bp.Kind != kind {
			continue
		}
		if d.checkConditions(bp.Conditions) {
			return bp
		}
	}
	return nil
}

func (d *Debugger) checkConditions(conds []Condition) bool {
	for _, c := range conds {
		var got uint64
		switch c.Reg {
		case "a":
			got = uint64(d.CPU.A)
		case "x":
			got = uint64(d.CPU.X)
		case "y":
			got = uint64(d.CPU.Y)
		case "s":
			got = uint64(d.CPU.S)
		case "p":
			got = uint64(d.CPU.P)
		case "pc":
			got = uint64(d.CPU.PC)
		case "cycles":
			got = d.CPU.Cycles
		}
		if got != c.Value {
			return false
		}
	}
	return true
}

func (d *Debugger) addBreakpoint(bp *Breakpoint) *Breakpoint {
	bp.ID = d.nextID
	bp.Enabled = true
	d.nextID++
	d.breakpoints = append(d.breakpoints, bp)
	return bp
}

func (d *Debugger) findBreakpoint(id int) *Breakpoint {
	for _, bp := range d.breakpoints {
		if bp.ID == id {
			return bp
		}
	}
	return nil
}

func (d *Debugger) registerLine() string {
	return fmt.Sprintf("A=$%.2X X=$%.2X Y=$%.2X S=$%.2X P=$%.2X PC=$%.4X cycles=%d",
		d.CPU.A, d.CPU.X, d.CPU.Y, d.CPU.S, d.CPU.P, d.CPU.PC, d.CPU.Cycles)
}

func eventKindName(k cpu.EventKind) string {
	switch k {
	case cpu.EventFetch:
		return "fetch"
	case cpu.EventRead:
		return "read"
	case cpu.EventWrite:
		return "write"
	case cpu.EventReset:
		return "reset"
	case cpu.EventIRQ:
		return "irq"
	case cpu.EventNMI:
		return "nmi"
	case cpu.EventInvalidOpcode:
		return "invalid_opcode"
	case cpu.EventTrap:
		return "trap"
	default:
		return "unknown"
	}
}
