package asm

import (
	"strings"
	"testing"

	"github.com/retro6502/core/cpu"
	"github.com/retro6502/core/disasm"
)

func assembleOrFatal(t *testing.T, v cpu.Variant, pc uint16, line string, symbols SymbolTable) []uint8 {
	t.Helper()
	b, err := AssembleLine(v, pc, line, symbols)
	if err != nil {
		t.Fatalf("AssembleLine(%q) = %v", line, err)
	}
	return b
}

func TestAssembleImmediate(t *testing.T) {
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "LDA #$42", nil)
	want := []uint8{0xA9, 0x42}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssemblePrefersZeroPage(t *testing.T) {
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "LDA $10", nil)
	want := []uint8{0xA5, 0x10}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X (should prefer zero page)", got, want)
	}
}

func TestAssembleAbsoluteWhenNoZeroPageMode(t *testing.T) {
	// JMP has no zero-page addressing mode, so even a low address must
	// encode as absolute.
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "JMP $0010", nil)
	want := []uint8{0x4C, 0x10, 0x00}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleAbsoluteIndexed(t *testing.T) {
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "STA $0400,X", nil)
	want := []uint8{0x9D, 0x00, 0x04}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleIndirectForms(t *testing.T) {
	cases := []struct {
		line string
		want []uint8
	}{
		{"LDA ($20,X)", []uint8{0xA1, 0x20}},
		{"LDA ($20),Y", []uint8{0xB1, 0x20}},
		{"JMP ($1234)", []uint8{0x6C, 0x34, 0x12}},
	}
	for _, c := range cases {
		got := assembleOrFatal(t, cpu.NMOS, 0x0200, c.line, nil)
		if !bytesEqual(got, c.want) {
			t.Errorf("%s: got %X, want %X", c.line, got, c.want)
		}
	}
}

func TestAssembleZeroPageIndirect65C02(t *testing.T) {
	got := assembleOrFatal(t, cpu.WDC65C02, 0x0200, "LDA ($20)", nil)
	want := []uint8{0xB2, 0x20}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleAccumulator(t *testing.T) {
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "ASL A", nil)
	want := []uint8{0x0A}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleImplied(t *testing.T) {
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "NOP", nil)
	want := []uint8{0xEA}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleStarRelative(t *testing.T) {
	// BEQ *+4 from $0400 branches to $0404; the offset encoded is
	// relative to the byte after the two-byte instruction ($0402).
	got := assembleOrFatal(t, cpu.NMOS, 0x0400, "BEQ *+4", nil)
	want := []uint8{0xF0, 0x02}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleBackwardBranchLabel(t *testing.T) {
	symbols := SymbolTable{"loop": 0x0400}
	got := assembleOrFatal(t, cpu.NMOS, 0x0410, "BNE loop", symbols)
	if got[0] != 0xD0 {
		t.Fatalf("opcode = $%.2X, want $D0 (BNE)", got[0])
	}
	off := int8(got[1])
	if want := int8(0x0400 - 0x0412); off != want {
		t.Errorf("offset = %d, want %d", off, want)
	}
}

func TestAssembleLabelResolvesAbsoluteForJmp(t *testing.T) {
	symbols := SymbolTable{"start": 0x0600}
	got := assembleOrFatal(t, cpu.NMOS, 0x0200, "JMP start", symbols)
	want := []uint8{0x4C, 0x00, 0x06}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleBranchOutOfRangeIsOperandRangeError(t *testing.T) {
	symbols := SymbolTable{"far": 0x0500}
	_, err := AssembleLine(cpu.NMOS, 0x0200, "BEQ far", symbols)
	if _, ok := err.(cpu.OperandRangeError); !ok {
		t.Fatalf("err = %v (%T), want OperandRangeError", err, err)
	}
}

func TestAssembleUndefinedLabelIsParseError(t *testing.T) {
	_, err := AssembleLine(cpu.NMOS, 0x0200, "JMP nowhere", nil)
	if _, ok := err.(cpu.ParseError); !ok {
		t.Fatalf("err = %v (%T), want ParseError", err, err)
	}
}

func TestAssembleZeroPageRelativeBBR(t *testing.T) {
	got := assembleOrFatal(t, cpu.WDC65C02, 0x0500, "BBR0 $20,$0505", nil)
	want := []uint8{0x0F, 0x20, 0x02}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

func TestAssembleMultiLine(t *testing.T) {
	lines := []string{"LDA #$01", "STA $10", "RTS"}
	got, err := Assemble(cpu.NMOS, 0x0200, lines, nil)
	if err != nil {
		t.Fatalf("Assemble() = %v", err)
	}
	want := []uint8{0xA9, 0x01, 0x85, 0x10, 0x60}
	if !bytesEqual(got, want) {
		t.Errorf("got %X, want %X", got, want)
	}
}

// TestAssembleDisassembleRoundTrip exercises the identity spec.md requires:
// disassembling an encoded instruction and re-assembling its rendered text
// (modulo the label/star-relative grammar sugar) reproduces the same bytes.
func TestAssembleDisassembleRoundTrip(t *testing.T) {
	lines := []string{"LDA #$42", "STA $0400,X", "LDA ($20,X)", "LDA ($20),Y", "ASL A", "NOP"}
	for _, line := range lines {
		orig := assembleOrFatal(t, cpu.NMOS, 0x0200, line, nil)
		mem := map[uint16]uint8{}
		for i, b := range orig {
			mem[0x0200+uint16(i)] = b
		}
		read := func(addr uint16) uint8 { return mem[addr] }
		inst, _ := disasm.Disassemble(cpu.NMOS, read, 0x0200)
		if !bytesEqual(inst.Bytes, orig) {
			t.Errorf("%s: disasm bytes %X != asm bytes %X", line, inst.Bytes, orig)
		}
		// Text is "ADDR: BYTES MNEMONIC OPERAND" with BYTES padded to eight
		// columns, so the instruction text starts at column 15.
		text := strings.TrimSpace(inst.Text[15:])
		if again := assembleOrFatal(t, cpu.NMOS, 0x0200, text, nil); !bytesEqual(again, orig) {
			t.Errorf("%s: reassembling %q gave %X, want %X", line, text, again, orig)
		}
	}
}

func bytesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
