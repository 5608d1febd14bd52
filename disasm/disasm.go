// Package disasm turns a byte stream into the mnemonic text for a single
// 6502/65C02 instruction, adapted from the teacher's disassemble.go switch
// into a table-driven lookup over cpu.Lookup so NMOS, undocumented, and
// 65C02 opcodes all share one code path instead of a 256-case switch.
package disasm

import (
	"fmt"

	"github.com/retro6502/core/cpu"
)

// Reader is the minimal capability disasm needs: a byte at an address.
// Both bus.Bus.Memory() and memory.Bank satisfy this trivially via a
// closure, so Disassemble isn't forced to adopt either one's error
// handling.
type Reader func(addr uint16) uint8

// Instruction is one decoded instruction: its address, raw bytes, and
// formatted text, in the `ADDR: BYTES  MNEMONIC OPERAND` layout.
type Instruction struct {
	Addr  uint16
	Bytes []uint8
	Text  string
}

// Disassemble decodes the instruction at addr and returns it along with
// the address immediately following it, so callers can loop with
// addr = next to walk a whole image.
func Disassemble(v cpu.Variant, read Reader, addr uint16) (Instruction, uint16) {
	opByte := read(addr)
	op, ok := cpu.Lookup(v, opByte)

	// An unstable opcode's decode isn't trustworthy enough to present as a
	// real instruction: render it as a raw-data pseudo-instruction and
	// advance past just the one byte, per spec.md section 4.5.
	if !ok {
		raw := []uint8{opByte}
		text := fmt.Sprintf("%.4X: %-8s .byte $%.2X", addr, hexBytes(raw), opByte)
		return Instruction{Addr: addr, Bytes: raw, Text: text}, addr + 1
	}

	raw := make([]uint8, 1, 3)
	raw[0] = opByte
	for i := 0; i < op.Bytes; i++ {
		raw = append(raw, read(addr+1+uint16(i)))
	}

	operand := formatOperand(op, raw, addr)
	text := fmt.Sprintf("%.4X: %-8s %s %s", addr, hexBytes(raw), op.Mnemonic, operand)
	return Instruction{Addr: addr, Bytes: raw, Text: text}, addr + 1 + uint16(op.Bytes)
}

func hexBytes(raw []uint8) string {
	s := ""
	for i, b := range raw {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.2X", b)
	}
	return s
}

// formatOperand renders the operand text for every addressing mode,
// including the two 65C02 additions and the Rockwell zero-page+relative
// pair BBRn/BBSn use. target is the address the instruction would branch
// to, computed the same way cpu.CPU.resolve does for Relative and
// ZeroPageRelative.
func formatOperand(op cpu.Opcode, raw []uint8, addr uint16) string {
	switch op.Mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%.2X", raw[1])
	case cpu.ZeroPage:
		return fmt.Sprintf("$%.2X", raw[1])
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%.2X,X", raw[1])
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%.2X,Y", raw[1])
	case cpu.ZeroPageIndirect:
		return fmt.Sprintf("($%.2X)", raw[1])
	case cpu.IndirectX:
		return fmt.Sprintf("($%.2X,X)", raw[1])
	case cpu.IndirectY:
		return fmt.Sprintf("($%.2X),Y", raw[1])
	case cpu.Absolute:
		return fmt.Sprintf("$%.2X%.2X", raw[2], raw[1])
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%.2X%.2X,X", raw[2], raw[1])
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%.2X%.2X,Y", raw[2], raw[1])
	case cpu.Indirect:
		return fmt.Sprintf("($%.2X%.2X)", raw[2], raw[1])
	case cpu.AbsoluteIndirectX:
		return fmt.Sprintf("($%.2X%.2X,X)", raw[2], raw[1])
	case cpu.Relative:
		target := addr + 2 + uint16(int8(raw[1]))
		return fmt.Sprintf("$%.2X ($%.4X)", raw[1], target)
	case cpu.ZeroPageRelative:
		target := addr + 3 + uint16(int8(raw[2]))
		return fmt.Sprintf("$%.2X,$%.2X ($%.4X)", raw[1], raw[2], target)
	default:
		return ""
	}
}
