// Package cpu implements the 6502/65C02 instruction execution engine:
// Opcode decode, addressing-mode effective-address computation,
// register/flag updates, cycle accounting, interrupt servicing, BCD
// arithmetic, and NMOS-undocumented vs. 65C02 variant dispatch.
package cpu

// AddrMode identifies how an Opcode's operand bytes are turned into the
// value or address the instruction body operates on.
type AddrMode int

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
	ZeroPageIndirect  // 65C02 (zp)
	AbsoluteIndirectX // 65C02 (abs,X), used only by JMP
	ZeroPageRelative  // Rockwell BBRn/BBSn: zp operand then branch offset
)

// Kind (an Opcode's Class) groups opcodes by how their operand is consumed;
// execute dispatches on it to the load, store, read-modify-write, branch or
// special handler, and each handler implements the instruction bodies of
// its class.
type Kind int

const (
	ClassLoad Kind = iota
	ClassStore
	ClassRMW
	ClassBranch
	ClassSpecial
)

// Opcode is the per-byte, per-variant descriptor from spec.md section 3.
type Opcode struct {
	Mnemonic  string
	Mode      AddrMode
	Bytes     int // operand bytes following the Opcode byte (0, 1 or 2)
	Cycles    int // base cycle count before page-cross/branch/BCD penalties
	PageCross bool // loads: an extra cycle is charged when the index crosses a page; stores never add it at run time
	Store     bool // store-class Opcode: Cycles already includes the page-cross cycle, paid unconditionally (Rockwell/NMOS convention)
	Class     Kind
	Unstable  bool // bus-conflict NMOS opcode (XAA/LAX-immediate/LAS/AHX/TAS/SHX/SHY): behavior
	               // varies across physical chips, so Lookup reports it as not a valid decode
}

// nmosOpcodes is the 256-entry descriptor table for CPU_NMOS (and, less
// the BCD availability difference handled in bcd.go, CPU_NMOS_RICOH and
// CPU_NMOS_6510). Undocumented opcodes are named per the common community
// convention (SLO, RLA, ANC, ...); 0x02/0x12/0x22/... (KIL/JAM/HLT) halt
// the processor rather than decode to a NOP.
var nmosOpcodes = [256]Opcode{
	0x00: {Mnemonic: "BRK", Mode: Immediate, Bytes: 1, Cycles: 7, PageCross: false, Store: false, Class: ClassSpecial},
	0x01: {Mnemonic: "ORA", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x02: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x03: {Mnemonic: "SLO", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x04: {Mnemonic: "NOP", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x05: {Mnemonic: "ORA", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x07: {Mnemonic: "SLO", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x08: {Mnemonic: "PHP", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x09: {Mnemonic: "ORA", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x0A: {Mnemonic: "ASL", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x0B: {Mnemonic: "ANC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x0C: {Mnemonic: "NOP", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x0D: {Mnemonic: "ORA", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x0E: {Mnemonic: "ASL", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x0F: {Mnemonic: "SLO", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x10: {Mnemonic: "BPL", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x11: {Mnemonic: "ORA", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x12: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x13: {Mnemonic: "SLO", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x14: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x15: {Mnemonic: "ORA", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x16: {Mnemonic: "ASL", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x17: {Mnemonic: "SLO", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x18: {Mnemonic: "CLC", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x19: {Mnemonic: "ORA", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x1A: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x1B: {Mnemonic: "SLO", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x1C: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x1D: {Mnemonic: "ORA", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x1E: {Mnemonic: "ASL", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x1F: {Mnemonic: "SLO", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x20: {Mnemonic: "JSR", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x21: {Mnemonic: "AND", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x22: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x23: {Mnemonic: "RLA", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x24: {Mnemonic: "BIT", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x25: {Mnemonic: "AND", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x27: {Mnemonic: "RLA", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x28: {Mnemonic: "PLP", Mode: Implied, Bytes: 0, Cycles: 4, PageCross: false, Store: false, Class: ClassSpecial},
	0x29: {Mnemonic: "AND", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x2A: {Mnemonic: "ROL", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x2B: {Mnemonic: "ANC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x2D: {Mnemonic: "AND", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x2E: {Mnemonic: "ROL", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x2F: {Mnemonic: "RLA", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x30: {Mnemonic: "BMI", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x31: {Mnemonic: "AND", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x32: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x33: {Mnemonic: "RLA", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x34: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x35: {Mnemonic: "AND", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x36: {Mnemonic: "ROL", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x37: {Mnemonic: "RLA", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x38: {Mnemonic: "SEC", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x39: {Mnemonic: "AND", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x3A: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x3B: {Mnemonic: "RLA", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x3C: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x3D: {Mnemonic: "AND", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x3E: {Mnemonic: "ROL", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x3F: {Mnemonic: "RLA", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x40: {Mnemonic: "RTI", Mode: Implied, Bytes: 0, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x41: {Mnemonic: "EOR", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x42: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x43: {Mnemonic: "SRE", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x44: {Mnemonic: "NOP", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x45: {Mnemonic: "EOR", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x47: {Mnemonic: "SRE", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x48: {Mnemonic: "PHA", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x49: {Mnemonic: "EOR", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x4A: {Mnemonic: "LSR", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x4B: {Mnemonic: "ALR", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x4C: {Mnemonic: "JMP", Mode: Absolute, Bytes: 2, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x4D: {Mnemonic: "EOR", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x4E: {Mnemonic: "LSR", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x4F: {Mnemonic: "SRE", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x50: {Mnemonic: "BVC", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x51: {Mnemonic: "EOR", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x52: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x53: {Mnemonic: "SRE", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x54: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x55: {Mnemonic: "EOR", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x56: {Mnemonic: "LSR", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x57: {Mnemonic: "SRE", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x58: {Mnemonic: "CLI", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x59: {Mnemonic: "EOR", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x5A: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x5B: {Mnemonic: "SRE", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x5C: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x5D: {Mnemonic: "EOR", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x5E: {Mnemonic: "LSR", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x5F: {Mnemonic: "SRE", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x60: {Mnemonic: "RTS", Mode: Implied, Bytes: 0, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x61: {Mnemonic: "ADC", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x62: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x63: {Mnemonic: "RRA", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x64: {Mnemonic: "NOP", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x65: {Mnemonic: "ADC", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x67: {Mnemonic: "RRA", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x68: {Mnemonic: "PLA", Mode: Implied, Bytes: 0, Cycles: 4, PageCross: false, Store: false, Class: ClassSpecial},
	0x69: {Mnemonic: "ADC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x6A: {Mnemonic: "ROR", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x6B: {Mnemonic: "ARR", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x6C: {Mnemonic: "JMP", Mode: Indirect, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassSpecial},
	0x6D: {Mnemonic: "ADC", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x6E: {Mnemonic: "ROR", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x6F: {Mnemonic: "RRA", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x70: {Mnemonic: "BVS", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x71: {Mnemonic: "ADC", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x72: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x73: {Mnemonic: "RRA", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0x74: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x75: {Mnemonic: "ADC", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x76: {Mnemonic: "ROR", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x77: {Mnemonic: "RRA", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x78: {Mnemonic: "SEI", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x79: {Mnemonic: "ADC", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x7A: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x7B: {Mnemonic: "RRA", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x7C: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x7D: {Mnemonic: "ADC", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x7E: {Mnemonic: "ROR", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x7F: {Mnemonic: "RRA", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x80: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x81: {Mnemonic: "STA", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: true, Class: ClassStore},
	0x82: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x83: {Mnemonic: "SAX", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: true, Class: ClassStore},
	0x84: {Mnemonic: "STY", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x85: {Mnemonic: "STA", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x86: {Mnemonic: "STX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x87: {Mnemonic: "SAX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x88: {Mnemonic: "DEY", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x89: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x8A: {Mnemonic: "TXA", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x8B: {Mnemonic: "XAA", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad, Unstable: true},
	0x8C: {Mnemonic: "STY", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x8D: {Mnemonic: "STA", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x8E: {Mnemonic: "STX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x8F: {Mnemonic: "SAX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x90: {Mnemonic: "BCC", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x91: {Mnemonic: "STA", Mode: IndirectY, Bytes: 1, Cycles: 6, PageCross: true, Store: true, Class: ClassStore},
	0x92: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0x93: {Mnemonic: "AHX", Mode: IndirectY, Bytes: 1, Cycles: 6, PageCross: true, Store: true, Class: ClassStore, Unstable: true},
	0x94: {Mnemonic: "STY", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x96: {Mnemonic: "STX", Mode: ZeroPageY, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x97: {Mnemonic: "SAX", Mode: ZeroPageY, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x98: {Mnemonic: "TYA", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore},
	0x9A: {Mnemonic: "TXS", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x9B: {Mnemonic: "TAS", Mode: AbsoluteY, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore, Unstable: true},
	0x9C: {Mnemonic: "SHY", Mode: AbsoluteX, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore, Unstable: true},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore},
	0x9E: {Mnemonic: "SHX", Mode: AbsoluteY, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore, Unstable: true},
	0x9F: {Mnemonic: "AHX", Mode: AbsoluteY, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore, Unstable: true},
	0xA0: {Mnemonic: "LDY", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xA1: {Mnemonic: "LDA", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xA2: {Mnemonic: "LDX", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xA3: {Mnemonic: "LAX", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xA4: {Mnemonic: "LDY", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA6: {Mnemonic: "LDX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA7: {Mnemonic: "LAX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA8: {Mnemonic: "TAY", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xA9: {Mnemonic: "LDA", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xAA: {Mnemonic: "TAX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xAB: {Mnemonic: "OAL", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad, Unstable: true},
	0xAC: {Mnemonic: "LDY", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xAE: {Mnemonic: "LDX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xAF: {Mnemonic: "LAX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB0: {Mnemonic: "BCS", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0xB1: {Mnemonic: "LDA", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xB2: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0xB3: {Mnemonic: "LAX", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xB4: {Mnemonic: "LDY", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB6: {Mnemonic: "LDX", Mode: ZeroPageY, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB7: {Mnemonic: "LAX", Mode: ZeroPageY, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB8: {Mnemonic: "CLV", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBA: {Mnemonic: "TSX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xBB: {Mnemonic: "LAS", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad, Unstable: true},
	0xBC: {Mnemonic: "LDY", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBE: {Mnemonic: "LDX", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBF: {Mnemonic: "LAX", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xC0: {Mnemonic: "CPY", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xC1: {Mnemonic: "CMP", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xC2: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xC3: {Mnemonic: "DCP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0xC4: {Mnemonic: "CPY", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xC5: {Mnemonic: "CMP", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xC6: {Mnemonic: "DEC", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xC7: {Mnemonic: "DCP", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xC8: {Mnemonic: "INY", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xC9: {Mnemonic: "CMP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xCA: {Mnemonic: "DEX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xCB: {Mnemonic: "AXS", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xCC: {Mnemonic: "CPY", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xCD: {Mnemonic: "CMP", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xCE: {Mnemonic: "DEC", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xCF: {Mnemonic: "DCP", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xD0: {Mnemonic: "BNE", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0xD1: {Mnemonic: "CMP", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xD2: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0xD3: {Mnemonic: "DCP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0xD4: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xD5: {Mnemonic: "CMP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xD6: {Mnemonic: "DEC", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xD7: {Mnemonic: "DCP", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xD8: {Mnemonic: "CLD", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xD9: {Mnemonic: "CMP", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xDA: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xDB: {Mnemonic: "DCP", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xDC: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xDD: {Mnemonic: "CMP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xDE: {Mnemonic: "DEC", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xDF: {Mnemonic: "DCP", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xE0: {Mnemonic: "CPX", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xE1: {Mnemonic: "SBC", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xE2: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xE3: {Mnemonic: "ISC", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0xE4: {Mnemonic: "CPX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xE5: {Mnemonic: "SBC", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xE6: {Mnemonic: "INC", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xE7: {Mnemonic: "ISC", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xE8: {Mnemonic: "INX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xE9: {Mnemonic: "SBC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xEA: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xEB: {Mnemonic: "SBC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xEC: {Mnemonic: "CPX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xED: {Mnemonic: "SBC", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xEE: {Mnemonic: "INC", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xEF: {Mnemonic: "ISC", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0xF1: {Mnemonic: "SBC", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xF2: {Mnemonic: "HLT", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassSpecial},
	0xF3: {Mnemonic: "ISC", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassRMW},
	0xF4: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xF5: {Mnemonic: "SBC", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xF6: {Mnemonic: "INC", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xF7: {Mnemonic: "ISC", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xF8: {Mnemonic: "SED", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xF9: {Mnemonic: "SBC", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xFA: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xFB: {Mnemonic: "ISC", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xFC: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xFD: {Mnemonic: "SBC", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xFE: {Mnemonic: "INC", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xFF: {Mnemonic: "ISC", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
}

// cmosOpcodes is the 256-entry descriptor table for CPU_CMOS (WDC 65C02).
// It starts from the NMOS decode and applies the documented 65C02 deltas:
// new instructions in previously-undefined slots (BRA, PHX/PHY/PLX/PLY,
// STZ, TRB/TSB, the Rockwell RMBn/SMBn/BBRn/BBSn bit-test family, WAI,
// STP, the (zp) and (abs,X) addressing modes), a corrected JMP (abs)
// that no longer exhibits the page-wrap bug (addressing.go) and costs one
// extra cycle, and the unofficial NMOS opcodes turned into NOPs of the
// same operand length.
var cmosOpcodes = [256]Opcode{
	0x00: {Mnemonic: "BRK", Mode: Immediate, Bytes: 1, Cycles: 7, PageCross: false, Store: false, Class: ClassSpecial},
	0x01: {Mnemonic: "ORA", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x02: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x03: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x04: {Mnemonic: "TSB", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x05: {Mnemonic: "ORA", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x07: {Mnemonic: "RMB0", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x08: {Mnemonic: "PHP", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x09: {Mnemonic: "ORA", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x0A: {Mnemonic: "ASL", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x0B: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x0C: {Mnemonic: "TSB", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x0D: {Mnemonic: "ORA", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x0E: {Mnemonic: "ASL", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x0F: {Mnemonic: "BBR0", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x10: {Mnemonic: "BPL", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x11: {Mnemonic: "ORA", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x12: {Mnemonic: "ORA", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0x13: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x14: {Mnemonic: "TRB", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x15: {Mnemonic: "ORA", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x16: {Mnemonic: "ASL", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x17: {Mnemonic: "RMB1", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x18: {Mnemonic: "CLC", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x19: {Mnemonic: "ORA", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x1A: {Mnemonic: "INC", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x1B: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassLoad},
	0x1C: {Mnemonic: "TRB", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x1D: {Mnemonic: "ORA", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x1E: {Mnemonic: "ASL", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x1F: {Mnemonic: "BBR1", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x20: {Mnemonic: "JSR", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x21: {Mnemonic: "AND", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x22: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x23: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x24: {Mnemonic: "BIT", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x25: {Mnemonic: "AND", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x27: {Mnemonic: "RMB2", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x28: {Mnemonic: "PLP", Mode: Implied, Bytes: 0, Cycles: 4, PageCross: false, Store: false, Class: ClassSpecial},
	0x29: {Mnemonic: "AND", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x2A: {Mnemonic: "ROL", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x2B: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x2D: {Mnemonic: "AND", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x2E: {Mnemonic: "ROL", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x2F: {Mnemonic: "BBR2", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x30: {Mnemonic: "BMI", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x31: {Mnemonic: "AND", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x32: {Mnemonic: "AND", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0x33: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x34: {Mnemonic: "BIT", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x35: {Mnemonic: "AND", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x36: {Mnemonic: "ROL", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x37: {Mnemonic: "RMB3", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x38: {Mnemonic: "SEC", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x39: {Mnemonic: "AND", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x3A: {Mnemonic: "DEC", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x3B: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassLoad},
	0x3C: {Mnemonic: "BIT", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x3D: {Mnemonic: "AND", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x3E: {Mnemonic: "ROL", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x3F: {Mnemonic: "BBR3", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x40: {Mnemonic: "RTI", Mode: Implied, Bytes: 0, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x41: {Mnemonic: "EOR", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x42: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x43: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x44: {Mnemonic: "NOP", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x45: {Mnemonic: "EOR", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x47: {Mnemonic: "RMB4", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x48: {Mnemonic: "PHA", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x49: {Mnemonic: "EOR", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x4A: {Mnemonic: "LSR", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x4B: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x4C: {Mnemonic: "JMP", Mode: Absolute, Bytes: 2, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x4D: {Mnemonic: "EOR", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x4E: {Mnemonic: "LSR", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x4F: {Mnemonic: "BBR4", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x50: {Mnemonic: "BVC", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x51: {Mnemonic: "EOR", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x52: {Mnemonic: "EOR", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0x53: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x54: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x55: {Mnemonic: "EOR", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x56: {Mnemonic: "LSR", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x57: {Mnemonic: "RMB5", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x58: {Mnemonic: "CLI", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x59: {Mnemonic: "EOR", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x5A: {Mnemonic: "PHY", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0x5B: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassLoad},
	0x5C: {Mnemonic: "NOP", Mode: Absolute, Bytes: 2, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x5D: {Mnemonic: "EOR", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x5E: {Mnemonic: "LSR", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x5F: {Mnemonic: "BBR5", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x60: {Mnemonic: "RTS", Mode: Implied, Bytes: 0, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x61: {Mnemonic: "ADC", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x62: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x63: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x64: {Mnemonic: "STZ", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x65: {Mnemonic: "ADC", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x67: {Mnemonic: "RMB6", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x68: {Mnemonic: "PLA", Mode: Implied, Bytes: 0, Cycles: 4, PageCross: false, Store: false, Class: ClassSpecial},
	0x69: {Mnemonic: "ADC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x6A: {Mnemonic: "ROR", Mode: Accumulator, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassRMW},
	0x6B: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x6C: {Mnemonic: "JMP", Mode: Indirect, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x6D: {Mnemonic: "ADC", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x6E: {Mnemonic: "ROR", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x6F: {Mnemonic: "BBR6", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x70: {Mnemonic: "BVS", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x71: {Mnemonic: "ADC", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x72: {Mnemonic: "ADC", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0x73: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0x74: {Mnemonic: "STZ", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x75: {Mnemonic: "ADC", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0x76: {Mnemonic: "ROR", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0x77: {Mnemonic: "RMB7", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x78: {Mnemonic: "SEI", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x79: {Mnemonic: "ADC", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x7A: {Mnemonic: "PLY", Mode: Implied, Bytes: 0, Cycles: 4, PageCross: false, Store: false, Class: ClassSpecial},
	0x7B: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassLoad},
	0x7C: {Mnemonic: "JMP", Mode: AbsoluteIndirectX, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassSpecial},
	0x7D: {Mnemonic: "ADC", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0x7E: {Mnemonic: "ROR", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0x7F: {Mnemonic: "BBR7", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x80: {Mnemonic: "BRA", Mode: Relative, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassBranch},
	0x81: {Mnemonic: "STA", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: true, Class: ClassStore},
	0x82: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x83: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0x84: {Mnemonic: "STY", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x85: {Mnemonic: "STA", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x86: {Mnemonic: "STX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: true, Class: ClassStore},
	0x87: {Mnemonic: "SMB0", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x88: {Mnemonic: "DEY", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x89: {Mnemonic: "BIT", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x8A: {Mnemonic: "TXA", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x8B: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x8C: {Mnemonic: "STY", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x8D: {Mnemonic: "STA", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x8E: {Mnemonic: "STX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x8F: {Mnemonic: "BBS0", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0x90: {Mnemonic: "BCC", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0x91: {Mnemonic: "STA", Mode: IndirectY, Bytes: 1, Cycles: 6, PageCross: true, Store: true, Class: ClassStore},
	0x92: {Mnemonic: "STA", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: true, Class: ClassStore},
	0x93: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 6, PageCross: true, Store: false, Class: ClassLoad},
	0x94: {Mnemonic: "STY", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x96: {Mnemonic: "STX", Mode: ZeroPageY, Bytes: 1, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x97: {Mnemonic: "SMB1", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0x98: {Mnemonic: "TYA", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore},
	0x9A: {Mnemonic: "TXS", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0x9B: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0x9C: {Mnemonic: "STZ", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: true, Class: ClassStore},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, Bytes: 2, Cycles: 5, PageCross: true, Store: true, Class: ClassStore},
	0x9E: {Mnemonic: "STZ", Mode: AbsoluteX, Bytes: 2, Cycles: 5, PageCross: false, Store: true, Class: ClassStore},
	0x9F: {Mnemonic: "BBS1", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0xA0: {Mnemonic: "LDY", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xA1: {Mnemonic: "LDA", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xA2: {Mnemonic: "LDX", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xA3: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xA4: {Mnemonic: "LDY", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA6: {Mnemonic: "LDX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xA7: {Mnemonic: "SMB2", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xA8: {Mnemonic: "TAY", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xA9: {Mnemonic: "LDA", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xAA: {Mnemonic: "TAX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xAB: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xAC: {Mnemonic: "LDY", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xAE: {Mnemonic: "LDX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xAF: {Mnemonic: "BBS2", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0xB0: {Mnemonic: "BCS", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0xB1: {Mnemonic: "LDA", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xB2: {Mnemonic: "LDA", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0xB3: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xB4: {Mnemonic: "LDY", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB6: {Mnemonic: "LDX", Mode: ZeroPageY, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xB7: {Mnemonic: "SMB3", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xB8: {Mnemonic: "CLV", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBA: {Mnemonic: "TSX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xBB: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBC: {Mnemonic: "LDY", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBE: {Mnemonic: "LDX", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xBF: {Mnemonic: "BBS3", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0xC0: {Mnemonic: "CPY", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xC1: {Mnemonic: "CMP", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xC2: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xC3: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0xC4: {Mnemonic: "CPY", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xC5: {Mnemonic: "CMP", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xC6: {Mnemonic: "DEC", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xC7: {Mnemonic: "SMB4", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xC8: {Mnemonic: "INY", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xC9: {Mnemonic: "CMP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xCA: {Mnemonic: "DEX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xCB: {Mnemonic: "WAI", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0xCC: {Mnemonic: "CPY", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xCD: {Mnemonic: "CMP", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xCE: {Mnemonic: "DEC", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xCF: {Mnemonic: "BBS4", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0xD0: {Mnemonic: "BNE", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0xD1: {Mnemonic: "CMP", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xD2: {Mnemonic: "CMP", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0xD3: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0xD4: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xD5: {Mnemonic: "CMP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xD6: {Mnemonic: "DEC", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xD7: {Mnemonic: "SMB5", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xD8: {Mnemonic: "CLD", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xD9: {Mnemonic: "CMP", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xDA: {Mnemonic: "PHX", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0xDB: {Mnemonic: "STP", Mode: Implied, Bytes: 0, Cycles: 3, PageCross: false, Store: false, Class: ClassSpecial},
	0xDC: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xDD: {Mnemonic: "CMP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xDE: {Mnemonic: "DEC", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xDF: {Mnemonic: "BBS5", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0xE0: {Mnemonic: "CPX", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xE1: {Mnemonic: "SBC", Mode: IndirectX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassLoad},
	0xE2: {Mnemonic: "NOP", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xE3: {Mnemonic: "NOP", Mode: IndirectX, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0xE4: {Mnemonic: "CPX", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xE5: {Mnemonic: "SBC", Mode: ZeroPage, Bytes: 1, Cycles: 3, PageCross: false, Store: false, Class: ClassLoad},
	0xE6: {Mnemonic: "INC", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xE7: {Mnemonic: "SMB6", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xE8: {Mnemonic: "INX", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xE9: {Mnemonic: "SBC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xEA: {Mnemonic: "NOP", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xEB: {Mnemonic: "SBC", Mode: Immediate, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xEC: {Mnemonic: "CPX", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xED: {Mnemonic: "SBC", Mode: Absolute, Bytes: 2, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xEE: {Mnemonic: "INC", Mode: Absolute, Bytes: 2, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xEF: {Mnemonic: "BBS6", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, Bytes: 1, Cycles: 2, PageCross: false, Store: false, Class: ClassBranch},
	0xF1: {Mnemonic: "SBC", Mode: IndirectY, Bytes: 1, Cycles: 5, PageCross: true, Store: false, Class: ClassLoad},
	0xF2: {Mnemonic: "SBC", Mode: ZeroPageIndirect, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassLoad},
	0xF3: {Mnemonic: "NOP", Mode: IndirectY, Bytes: 1, Cycles: 8, PageCross: false, Store: false, Class: ClassLoad},
	0xF4: {Mnemonic: "NOP", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xF5: {Mnemonic: "SBC", Mode: ZeroPageX, Bytes: 1, Cycles: 4, PageCross: false, Store: false, Class: ClassLoad},
	0xF6: {Mnemonic: "INC", Mode: ZeroPageX, Bytes: 1, Cycles: 6, PageCross: false, Store: false, Class: ClassRMW},
	0xF7: {Mnemonic: "SMB7", Mode: ZeroPage, Bytes: 1, Cycles: 5, PageCross: false, Store: false, Class: ClassRMW},
	0xF8: {Mnemonic: "SED", Mode: Implied, Bytes: 0, Cycles: 2, PageCross: false, Store: false, Class: ClassLoad},
	0xF9: {Mnemonic: "SBC", Mode: AbsoluteY, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xFA: {Mnemonic: "PLX", Mode: Implied, Bytes: 0, Cycles: 4, PageCross: false, Store: false, Class: ClassSpecial},
	0xFB: {Mnemonic: "NOP", Mode: AbsoluteY, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassLoad},
	0xFC: {Mnemonic: "NOP", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xFD: {Mnemonic: "SBC", Mode: AbsoluteX, Bytes: 2, Cycles: 4, PageCross: true, Store: false, Class: ClassLoad},
	0xFE: {Mnemonic: "INC", Mode: AbsoluteX, Bytes: 2, Cycles: 7, PageCross: false, Store: false, Class: ClassRMW},
	0xFF: {Mnemonic: "BBS7", Mode: ZeroPageRelative, Bytes: 2, Cycles: 5, PageCross: false, Store: false, Class: ClassBranch},
}

// Lookup returns the Opcode descriptor for b under the given variant and
// whether b is a stable, reliably-decodable instruction on that variant.
// Every byte still decodes to *something* playable (even the NMOS
// KIL/JAM/HLT opcodes are a defined lock-up), except the handful of NMOS
// "highly unstable" bus-conflict opcodes (XAA, LAS, AHX, TAS, SHX, SHY,
// the immediate LAX/OAL) whose result depends on analog bus effects that
// differ across physical chips -- those report false so a disassembler or
// assembler-checker can decline to present a falsely precise decode.
func Lookup(v Variant, b uint8) (Opcode, bool) {
	op := nmosOpcodes[b]
	if v == WDC65C02 {
		op = cmosOpcodes[b]
	}
	return op, !op.Unstable
}

// ValidateOpcode reports, via a returned InvalidVariantOpcodeError, whether
// b is a stable instruction under v. Used by a debugger or other host code
// that wants to flag an unstable decode explicitly rather than silently
// trusting Lookup's descriptor.
func ValidateOpcode(v Variant, pc uint16, b uint8) error {
	if _, ok := Lookup(v, b); !ok {
		return InvalidVariantOpcodeError{PC: pc, Opcode: b, Variant: v}
	}
	return nil
}

type encodeKey struct {
	mnemonic string
	mode     AddrMode
}

var nmosEncode = buildEncodeTable(&nmosOpcodes)
var cmosEncode = buildEncodeTable(&cmosOpcodes)

// buildEncodeTable inverts a decode table for the assembler's mnemonic+mode
// -> byte lookup. The first occurrence of a (mnemonic, mode) pair wins,
// except that an implied NOP always encodes as the documented $EA: both
// tables carry undocumented implied NOPs ($1A... on NMOS, $02... on the
// 65C02) at lower opcode values.
func buildEncodeTable(table *[256]Opcode) map[encodeKey]uint8 {
	m := make(map[encodeKey]uint8, 256)
	for i := 0; i < 256; i++ {
		op := table[i]
		k := encodeKey{op.Mnemonic, op.Mode}
		if _, exists := m[k]; !exists {
			m[k] = uint8(i)
		}
	}
	m[encodeKey{"NOP", Implied}] = 0xEA
	return m
}

// Encode returns the Opcode byte for mnemonic in the given addressing mode
// under variant v, and whether that combination exists.
func Encode(v Variant, mnemonic string, mode AddrMode) (uint8, bool) {
	table := nmosEncode
	if v == WDC65C02 {
		table = cmosEncode
	}
	b, ok := table[encodeKey{mnemonic, mode}]
	return b, ok
}
