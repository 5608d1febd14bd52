package debugger

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/retro6502/core/asm"
	"github.com/retro6502/core/cpu"
	"github.com/retro6502/core/disasm"
)

// Dispatch parses and executes one command line against the attached CPU,
// returning the text to display. in supplies any follow-on lines the "a"
// (assembler mode) command needs; every other command consumes exactly one
// line. Parse failures are recovered locally (spec.md section 7's policy)
// and returned as a cpu.ParseError rather than aborting the session.
func (d *Debugger) Dispatch(line string, in *bufio.Scanner) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "a":
		return d.cmdAssemble(args, in)
	case "bx", "br", "bw", "brw", "bn", "bq":
		return d.cmdBreak(cmd, args)
	case "bl":
		return d.cmdBreakList()
	case "be", "bd", "bdel":
		return d.cmdBreakToggle(cmd, args)
	case "bc":
		d.breakpoints = nil
		return "all breakpoints cleared", nil
	case "c":
		return d.cmdVariant(args)
	case "d":
		return d.cmdDisassemble(args)
	case "e":
		return d.cmdPoke(args)
	case "g":
		return d.cmdGo()
	case "p":
		return d.cmdStep()
	case "rst":
		return d.cmdReset(args)
	case "q":
		return "", nil
	case "l":
		return d.cmdLoad(args)
	case "s":
		return d.cmdSave(args)
	case "lg":
		d.logEnabled = !d.logEnabled
		return fmt.Sprintf("cpu event log %s", onOff(d.logEnabled)), nil
	case "o":
		d.regsOnEntry = !d.regsOnEntry
		return fmt.Sprintf("register-before-opcode display %s", onOff(d.regsOnEntry)), nil
	case "r":
		return d.registerLine(), nil
	case "ss":
		return d.cmdStackWindow(), nil
	case "tn":
		d.CPU.RaiseNMI()
		return "NMI latched", nil
	case "tq":
		d.CPU.SetIRQLine(true)
		return "IRQ line held", nil
	case "v":
		return d.cmdSetRegister(args)
	case "x":
		return d.cmdHexdump(args)
	default:
		return "", cpu.ParseError{Input: line, Reason: "unknown command"}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseHexArg(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "$")
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, cpu.ParseError{Input: s, Reason: "invalid hex number"}
	}
	return n, nil
}

// cmdBreak adds a breakpoint of the kind named by cmd ("bx"/"br"/"bw"/
// "brw"/"bn"/"bq"). Its args are an optional address followed by any number
// of "reg=value" conditions, per spec.md's "b? [addr] [c,...]" grammar; bn
// and bq (NMI/IRQ breakpoints) take no address.
func (d *Debugger) cmdBreak(cmd string, args []string) (string, error) {
	var kind BreakKind
	switch cmd {
	case "bx":
		kind = BreakExec
	case "br":
		kind = BreakRead
	case "bw":
		kind = BreakWrite
	case "brw":
		kind = BreakReadWrite
	case "bn":
		kind = BreakNMI
	case "bq":
		kind = BreakIRQ
	}

	bp := &Breakpoint{Kind: kind}
	needsAddr := kind == BreakExec || kind == BreakRead || kind == BreakWrite || kind == BreakReadWrite

	rest := args
	if needsAddr {
		if len(rest) == 0 {
			return "", cpu.ParseError{Input: cmd, Reason: "address required"}
		}
		addr, err := parseHexArg(rest[0])
		if err != nil {
			return "", err
		}
		bp.Addr = uint16(addr)
		bp.HasAddr = true
		rest = rest[1:]
	}

	conds, err := parseConditions(rest)
	if err != nil {
		return "", err
	}
	bp.Conditions = conds

	d.addBreakpoint(bp)
	return bp.String(), nil
}

func parseConditions(args []string) ([]Condition, error) {
	var conds []Condition
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			if tok == "" {
				continue
			}
			kv := strings.SplitN(tok, "=", 2)
			if len(kv) != 2 {
				return nil, cpu.ParseError{Input: tok, Reason: "expected reg=value"}
			}
			reg := strings.ToLower(kv[0])
			switch reg {
			case "a", "x", "y", "s", "p", "pc", "cycles":
			default:
				return nil, cpu.ParseError{Input: tok, Reason: "unknown register " + reg}
			}
			val, err := parseHexArg(kv[1])
			if err != nil {
				return nil, err
			}
			conds = append(conds, Condition{Reg: reg, Value: val})
		}
	}
	return conds, nil
}

func (d *Debugger) cmdBreakList() (string, error) {
	if len(d.breakpoints) == 0 {
		return "no breakpoints", nil
	}
	ids := make([]*Breakpoint, len(d.breakpoints))
	copy(ids, d.breakpoints)
	sort.Slice(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID })
	lines := make([]string, len(ids))
	for i, bp := range ids {
		lines[i] = bp.String()
	}
	return strings.Join(lines, "\n"), nil
}

// cmdBreakToggle implements "be n" (enable), "bd n" (disable) and "bdel n"
// (delete) for the breakpoint with ID n.
func (d *Debugger) cmdBreakToggle(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected a breakpoint id"}
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "", cpu.ParseError{Input: args[0], Reason: "invalid breakpoint id"}
	}
	bp := d.findBreakpoint(id)
	if bp == nil {
		return "", cpu.ParseError{Input: args[0], Reason: "no such breakpoint"}
	}
	if cmd == "be" || cmd == "bd" {
		bp.Enabled = cmd == "be"
		return bp.String(), nil
	}
	for i, b := range d.breakpoints {
		if b.ID == id {
			d.breakpoints = append(d.breakpoints[:i], d.breakpoints[i+1:]...)
			break
		}
	}
	return fmt.Sprintf("breakpoint #%d deleted", id), nil
}

func (d *Debugger) cmdVariant(args []string) (string, error) {
	if len(args) != 1 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected 6502 or 65C02"}
	}
	switch strings.ToUpper(args[0]) {
	case "6502", "MOS6502", "NMOS":
		d.CPU.Variant = cpu.NMOS
	case "65C02", "WDC65C02":
		d.CPU.Variant = cpu.WDC65C02
	default:
		return "", cpu.ParseError{Input: args[0], Reason: "unknown variant"}
	}
	return fmt.Sprintf("variant set to %s", d.CPU.Variant), nil
}

func (d *Debugger) cmdDisassemble(args []string) (string, error) {
	if len(args) == 0 {
		return "", cpu.ParseError{Input: "", Reason: "expected a count"}
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return "", cpu.ParseError{Input: args[0], Reason: "invalid count"}
	}
	addr := d.CPU.PC
	if len(args) > 1 {
		a, err := parseHexArg(args[1])
		if err != nil {
			return "", err
		}
		addr = uint16(a)
	}
	mem := d.CPU.Bus.Memory()
	read := func(a uint16) uint8 { return mem.Read(a) }
	var lines []string
	for i := 0; i < count; i++ {
		inst, next := disasm.Disassemble(d.CPU.Variant, read, addr)
		line := inst.Text
		if err := cpu.ValidateOpcode(d.CPU.Variant, addr, mem.Read(addr)); err != nil {
			line += "  ; " + err.Error()
		}
		lines = append(lines, line)
		addr = next
	}
	return strings.Join(lines, "\n"), nil
}

// cmdPoke implements "e <v> [v...] <addr>": the address is the last token,
// every token before it is a byte value to place starting at addr.
func (d *Debugger) cmdPoke(args []string) (string, error) {
	if len(args) < 2 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected one or more values and an address"}
	}
	addrArg := args[len(args)-1]
	addr, err := parseHexArg(addrArg)
	if err != nil {
		return "", err
	}
	values := make([]uint8, 0, len(args)-1)
	for _, v := range args[:len(args)-1] {
		n, err := parseHexArg(v)
		if err != nil {
			return "", err
		}
		if n > 0xFF {
			return "", cpu.OperandRangeError{Value: int(n), Mnemonic: "e"}
		}
		values = append(values, uint8(n))
	}
	mem := d.CPU.Bus.Memory()
	for i, v := range values {
		mem.Write(uint16(addr)+uint16(i), v)
	}
	return fmt.Sprintf("wrote %d byte(s) at $%.4X", len(values), addr), nil
}

func (d *Debugger) cmdGo() (string, error) {
	if err := d.CPU.Run(d, 0); err != nil {
		return "", err
	}
	return d.registerLine(), nil
}

func (d *Debugger) cmdStep() (string, error) {
	if err := d.CPU.Step(); err != nil {
		return "", err
	}
	return d.registerLine(), nil
}

func (d *Debugger) cmdReset(args []string) (string, error) {
	if len(args) == 0 {
		if err := d.CPU.Reset(nil); err != nil {
			return "", err
		}
		return d.registerLine(), nil
	}
	addr, err := parseHexArg(args[0])
	if err != nil {
		return "", err
	}
	a := uint16(addr)
	if err := d.CPU.Reset(&a); err != nil {
		return "", err
	}
	return d.registerLine(), nil
}

func (d *Debugger) cmdLoad(args []string) (string, error) {
	if len(args) != 2 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected <addr> <path>"}
	}
	addr, err := parseHexArg(args[0])
	if err != nil {
		return "", err
	}
	path := args[1]
	if err := d.CPU.Bus.Memory().Load(path, uint16(addr)); err != nil {
		return "", cpu.IoError{Path: path, Err: err}
	}
	return fmt.Sprintf("loaded %q at $%.4X", path, addr), nil
}

func (d *Debugger) cmdSave(args []string) (string, error) {
	if len(args) != 3 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected <len> <addr> <path>"}
	}
	length, err := parseHexArg(args[0])
	if err != nil {
		return "", err
	}
	addr, err := parseHexArg(args[1])
	if err != nil {
		return "", err
	}
	path := args[2]
	if err := d.CPU.Bus.Memory().Save(path, uint16(addr), int(length)); err != nil {
		return "", cpu.IoError{Path: path, Err: err}
	}
	return fmt.Sprintf("saved %d byte(s) from $%.4X to %q", length, addr, path), nil
}

func (d *Debugger) cmdStackWindow() string {
	mem := d.CPU.Bus.Memory()
	var b strings.Builder
	fmt.Fprintf(&b, "S=$%.2X\n", d.CPU.S)
	for addr := uint16(0x01F0); addr <= 0x01FF; addr++ {
		fmt.Fprintf(&b, "$%.4X: $%.2X\n", addr, mem.Read(addr))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *Debugger) cmdSetRegister(args []string) (string, error) {
	if len(args) != 2 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected <reg> <value>"}
	}
	val, err := parseHexArg(args[1])
	if err != nil {
		return "", err
	}
	switch strings.ToLower(args[0]) {
	case "a":
		d.CPU.A = uint8(val)
	case "x":
		d.CPU.X = uint8(val)
	case "y":
		d.CPU.Y = uint8(val)
	case "s":
		d.CPU.S = uint8(val)
	case "p":
		d.CPU.P = uint8(val)
	case "pc":
		d.CPU.PC = uint16(val)
	default:
		return "", cpu.ParseError{Input: args[0], Reason: "unknown register"}
	}
	return d.registerLine(), nil
}

func (d *Debugger) cmdHexdump(args []string) (string, error) {
	if len(args) != 2 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected <len> <addr>"}
	}
	length, err := parseHexArg(args[0])
	if err != nil {
		return "", err
	}
	addr, err := parseHexArg(args[1])
	if err != nil {
		return "", err
	}
	mem := d.CPU.Bus.Memory()
	var b strings.Builder
	for i := uint64(0); i < length; i += 16 {
		fmt.Fprintf(&b, "$%.4X:", uint16(addr)+uint16(i))
		for j := uint64(0); j < 16 && i+j < length; j++ {
			fmt.Fprintf(&b, " %.2X", mem.Read(uint16(addr)+uint16(i+j)))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// cmdAssemble implements "a <addr>": lines are read from in until an empty
// line, each assembled in turn and poked into memory starting at addr,
// advancing by each instruction's encoded length exactly as asm.Assemble
// does for a batch.
func (d *Debugger) cmdAssemble(args []string, in *bufio.Scanner) (string, error) {
	if len(args) != 1 {
		return "", cpu.ParseError{Input: strings.Join(args, " "), Reason: "expected an address"}
	}
	addr, err := parseHexArg(args[0])
	if err != nil {
		return "", err
	}
	pc := uint16(addr)
	symbols := asm.SymbolTable{}
	mem := d.CPU.Bus.Memory()
	var out []string
	for in != nil && in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			break
		}
		b, err := asm.AssembleLine(d.CPU.Variant, pc, line, symbols)
		if err != nil {
			out = append(out, err.Error())
			continue
		}
		for i, by := range b {
			mem.Write(pc+uint16(i), by)
		}
		out = append(out, fmt.Sprintf("$%.4X: %s", pc, line))
		pc += uint16(len(b))
	}
	return strings.Join(out, "\n"), nil
}
