// Package asm turns one line of 6502/65C02 assembly text into its encoded
// bytes, the inverse of disasm: it shares cpu.Opcode's mnemonic/addressing
// mode pairing via cpu.Encode rather than duplicating the decode tables.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retro6502/core/cpu"
)

// SymbolTable resolves a bare label reference to its absolute address. A
// caller building one up from a prior disassembly pass (or a debugger's own
// label bookkeeping) can hand it to AssembleLine/Assemble unmodified.
type SymbolTable map[string]uint16

type operandKind int

const (
	opNone operandKind = iota
	opAccumulator
	opImmediate
	opValue // $nn / $nnnn, optionally ,X or ,Y
	opIndirectX
	opIndirectY
	opIndirect         // ($nnnn)
	opZeroPageIndirect // ($nn), 65C02
	opTarget           // *+n, *-n, or a bare label
	opZeroPageRelative // $nn,$nn or $nn,label — BBRn/BBSn
)

type operand struct {
	kind    operandKind
	value   uint16
	indexed string // "", "X", "Y"
	target  uint16
}

// AssembleLine encodes one line of the form "MNEMONIC [operand]" into the
// bytes it would occupy at pc. Operand syntax: #$nn immediate, $nn/$nnnn
// absolute or zero-page (shortest fit is chosen automatically), $nn,X /
// $nn,Y indexed, ($nn,X) pre-indexed indirect, ($nn),Y post-indexed
// indirect, ($nnnn) absolute indirect, ($nn) 65C02 zero-page indirect, A
// accumulator, *+n/*-n relative, and a bare label resolved through symbols.
func AssembleLine(v cpu.Variant, pc uint16, line string, symbols SymbolTable) ([]uint8, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, cpu.ParseError{Input: line, Reason: "empty line"}
	}
	fields := strings.SplitN(line, " ", 2)
	mnemonic := strings.ToUpper(strings.TrimSpace(fields[0]))
	operandText := ""
	if len(fields) == 2 {
		operandText = strings.TrimSpace(fields[1])
	}

	o, err := parseOperand(operandText, pc, symbols)
	if err != nil {
		return nil, err
	}
	mode, value, extra, err := resolveMode(v, mnemonic, pc, o)
	if err != nil {
		return nil, err
	}
	opByte, ok := cpu.Encode(v, mnemonic, mode)
	if !ok {
		return nil, cpu.ParseError{Input: line, Reason: fmt.Sprintf("%s has no %s addressing mode", mnemonic, mode)}
	}

	switch mode {
	case cpu.Implied, cpu.Accumulator:
		return []uint8{opByte}, nil
	case cpu.Absolute, cpu.AbsoluteX, cpu.AbsoluteY, cpu.Indirect, cpu.AbsoluteIndirectX:
		return []uint8{opByte, uint8(value), uint8(value >> 8)}, nil
	case cpu.ZeroPageRelative:
		return []uint8{opByte, uint8(value), extra}, nil
	default:
		if value > 0xFF {
			return nil, cpu.OperandRangeError{Value: int(value), Mode: mode, Mnemonic: mnemonic}
		}
		return []uint8{opByte, uint8(value)}, nil
	}
}

// Assemble encodes each line in order starting at start, advancing the
// program counter by the length of each encoded instruction, the batch
// counterpart to the debugger's interactive "a" mode which does the same
// one line at a time until an empty line ends it.
func Assemble(v cpu.Variant, start uint16, lines []string, symbols SymbolTable) ([]uint8, error) {
	var out []uint8
	pc := start
	for i, line := range lines {
		b, err := AssembleLine(v, pc, line, symbols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, b...)
		pc += uint16(len(b))
	}
	return out, nil
}

func parseOperand(s string, pc uint16, symbols SymbolTable) (operand, error) {
	switch {
	case s == "":
		return operand{kind: opNone}, nil
	case s == "A":
		return operand{kind: opAccumulator}, nil
	case strings.HasPrefix(s, "#$"):
		n, err := parseHex(s[2:])
		if err != nil {
			return operand{}, err
		}
		return operand{kind: opImmediate, value: n}, nil
	case strings.HasPrefix(s, "*+") || strings.HasPrefix(s, "*-"):
		return parseStarRelative(s, pc)
	case strings.HasPrefix(s, "("):
		return parseIndirect(s)
	case strings.HasPrefix(s, "$"):
		return parseDirect(s, pc, symbols)
	default:
		addr, ok := symbols[s]
		if !ok {
			return operand{}, cpu.ParseError{Input: s, Reason: "undefined label " + s}
		}
		return operand{kind: opTarget, value: addr}, nil
	}
}

func parseStarRelative(s string, pc uint16) (operand, error) {
	sign := int64(1)
	if s[1] == '-' {
		sign = -1
	}
	n, err := strconv.ParseInt(s[2:], 10, 32)
	if err != nil {
		return operand{}, cpu.ParseError{Input: s, Reason: "invalid relative offset"}
	}
	return operand{kind: opTarget, value: uint16(int64(pc) + sign*n)}, nil
}

func parseDirect(s string, pc uint16, symbols SymbolTable) (operand, error) {
	body := s[1:]
	idx := strings.Index(body, ",")
	if idx < 0 {
		n, err := parseHex(body)
		if err != nil {
			return operand{}, err
		}
		return operand{kind: opValue, value: n}, nil
	}
	hex := body[:idx]
	rest := strings.ToUpper(body[idx+1:])
	if rest == "X" || rest == "Y" {
		n, err := parseHex(hex)
		if err != nil {
			return operand{}, err
		}
		return operand{kind: opValue, value: n, indexed: rest}, nil
	}
	zp, err := parseHex(hex)
	if err != nil {
		return operand{}, err
	}
	target, err := parseTarget(body[idx+1:], symbols)
	if err != nil {
		return operand{}, err
	}
	return operand{kind: opZeroPageRelative, value: zp, target: target}, nil
}

func parseTarget(s string, symbols SymbolTable) (uint16, error) {
	if strings.HasPrefix(s, "$") {
		return parseHex(s[1:])
	}
	addr, ok := symbols[s]
	if !ok {
		return 0, cpu.ParseError{Input: s, Reason: "undefined label " + s}
	}
	return addr, nil
}

func parseIndirect(s string) (operand, error) {
	switch {
	case strings.HasPrefix(s, "($") && strings.HasSuffix(s, ",X)"):
		n, err := parseHex(s[2 : len(s)-3])
		if err != nil {
			return operand{}, err
		}
		return operand{kind: opIndirectX, value: n}, nil
	case strings.HasPrefix(s, "($") && strings.HasSuffix(s, "),Y"):
		n, err := parseHex(s[2 : len(s)-3])
		if err != nil {
			return operand{}, err
		}
		return operand{kind: opIndirectY, value: n}, nil
	case strings.HasPrefix(s, "($") && strings.HasSuffix(s, ")"):
		hex := s[2 : len(s)-1]
		n, err := parseHex(hex)
		if err != nil {
			return operand{}, err
		}
		if len(hex) <= 2 {
			return operand{kind: opZeroPageIndirect, value: n}, nil
		}
		return operand{kind: opIndirect, value: n}, nil
	}
	return operand{}, cpu.ParseError{Input: s, Reason: "malformed indirect operand"}
}

func parseHex(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, cpu.ParseError{Input: s, Reason: "invalid hex value"}
	}
	return uint16(n), nil
}

func resolveMode(v cpu.Variant, mnemonic string, pc uint16, o operand) (cpu.AddrMode, uint16, uint8, error) {
	switch o.kind {
	case opNone:
		return cpu.Implied, 0, 0, nil
	case opAccumulator:
		return cpu.Accumulator, 0, 0, nil
	case opImmediate:
		if o.value > 0xFF {
			return 0, 0, 0, cpu.OperandRangeError{Value: int(o.value), Mode: cpu.Immediate, Mnemonic: mnemonic}
		}
		return cpu.Immediate, o.value, 0, nil
	case opIndirectX:
		return cpu.IndirectX, o.value, 0, nil
	case opIndirectY:
		return cpu.IndirectY, o.value, 0, nil
	case opIndirect:
		return cpu.Indirect, o.value, 0, nil
	case opZeroPageIndirect:
		return cpu.ZeroPageIndirect, o.value, 0, nil
	case opValue:
		return resolveValueMode(v, mnemonic, o)
	case opTarget:
		return resolveTargetMode(v, mnemonic, pc, o.value)
	case opZeroPageRelative:
		offset, err := branchOffset(mnemonic, pc, o.target, 3)
		if err != nil {
			return 0, 0, 0, err
		}
		return cpu.ZeroPageRelative, o.value, offset, nil
	}
	return 0, 0, 0, cpu.ParseError{Input: mnemonic, Reason: "unrecognized operand"}
}

func resolveValueMode(v cpu.Variant, mnemonic string, o operand) (cpu.AddrMode, uint16, uint8, error) {
	var zpMode, absMode cpu.AddrMode
	switch o.indexed {
	case "X":
		zpMode, absMode = cpu.ZeroPageX, cpu.AbsoluteX
	case "Y":
		zpMode, absMode = cpu.ZeroPageY, cpu.AbsoluteY
	default:
		zpMode, absMode = cpu.ZeroPage, cpu.Absolute
	}
	if o.value <= 0xFF {
		if _, ok := cpu.Encode(v, mnemonic, zpMode); ok {
			return zpMode, o.value, 0, nil
		}
	}
	if _, ok := cpu.Encode(v, mnemonic, absMode); ok {
		return absMode, o.value, 0, nil
	}
	return 0, 0, 0, cpu.ParseError{Input: mnemonic, Reason: "no addressing mode fits operand"}
}

// resolveTargetMode handles *+n/*-n and bare labels: branch mnemonics
// resolve to a relative offset, JMP/JSR resolve to an absolute operand.
func resolveTargetMode(v cpu.Variant, mnemonic string, pc uint16, target uint16) (cpu.AddrMode, uint16, uint8, error) {
	if _, ok := cpu.Encode(v, mnemonic, cpu.Relative); ok {
		offset, err := branchOffset(mnemonic, pc, target, 2)
		if err != nil {
			return 0, 0, 0, err
		}
		return cpu.Relative, uint16(offset), 0, nil
	}
	if _, ok := cpu.Encode(v, mnemonic, cpu.Absolute); ok {
		return cpu.Absolute, target, 0, nil
	}
	return 0, 0, 0, cpu.ParseError{Input: mnemonic, Reason: "mnemonic takes neither a relative nor absolute operand"}
}

// branchOffset computes the signed 8-bit displacement from the byte after
// an instrLen-byte instruction at pc to target, raising OperandRangeError
// if it doesn't fit, exactly as the disassembler computes the inverse.
func branchOffset(mnemonic string, pc, target uint16, instrLen int32) (uint8, error) {
	off := int32(target) - int32(pc) - instrLen
	if off < -128 || off > 127 {
		return 0, cpu.OperandRangeError{Value: int(off), Mode: cpu.Relative, Mnemonic: mnemonic}
	}
	return uint8(int8(off)), nil
}
