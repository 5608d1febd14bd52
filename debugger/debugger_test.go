package debugger

import (
	"bufio"
	"strings"
	"testing"

	"github.com/retro6502/core/cpu"
)

func newTestDebugger(t *testing.T, start uint16, program ...uint8) (*Debugger, *cpu.CPU) {
	t.Helper()
	c, err := cpu.NewDefault(cpu.NMOS)
	if err != nil {
		t.Fatalf("cpu.NewDefault: %v", err)
	}
	a := start
	if err := c.Reset(&a); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	c.Cycles = 0
	mem := c.Bus.Memory()
	for i, b := range program {
		mem.Write(start+uint16(i), b)
	}
	d := New(c, true)
	return d, c
}

func dispatch(t *testing.T, d *Debugger, line string) string {
	t.Helper()
	out, err := d.Dispatch(line, nil)
	if err != nil {
		t.Fatalf("Dispatch(%q) = %v", line, err)
	}
	return out
}

func TestExecBreakpointStopsRun(t *testing.T) {
	// LDA #$01 ($0400) ; STA $10 ($0402) ; LDA #$02 ($0404) ; STA $10 ($0406).
	// A breakpoint on the second STA should stop execution right before it,
	// after the second LDA has already run.
	d, c := newTestDebugger(t, 0x0400,
		0xA9, 0x01, // LDA #$01
		0x85, 0x10, // STA $10
		0xA9, 0x02, // LDA #$02
		0x85, 0x10, // STA $10
	)
	dispatch(t, d, "bx $0406")
	if err := c.Run(d, 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.PC != 0x0406 {
		t.Errorf("PC = $%.4X, want $0406 (stopped before the second store)", c.PC)
	}
	if c.A != 0x02 {
		t.Errorf("A = $%.2X, want $02 (second LDA already executed)", c.A)
	}
	if mem := c.Bus.Memory(); mem.Read(0x10) != 0x01 {
		t.Errorf("mem[$10] = $%.2X, want $01 (second store not yet executed)", mem.Read(0x10))
	}
	if d.LastHit() == nil {
		t.Fatal("LastHit() = nil, want the exec breakpoint")
	}
}

func TestWriteBreakpointStopsAfterInstruction(t *testing.T) {
	d, c := newTestDebugger(t, 0x0400,
		0xA9, 0x01, // LDA #$01
		0x85, 0x10, // STA $10  <- write breakpoint on $10
		0xA9, 0x02, // LDA #$02
	)
	dispatch(t, d, "bw $10")
	if err := c.Run(d, 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.PC != 0x0404 {
		t.Errorf("PC = $%.4X, want $0404 (stopped right after the store)", c.PC)
	}
	if mem := c.Bus.Memory(); mem.Read(0x10) != 0x01 {
		t.Errorf("mem[$10] = $%.2X, want $01", mem.Read(0x10))
	}
}

func TestBreakpointConditionGatesMatch(t *testing.T) {
	d, c := newTestDebugger(t, 0x0400,
		0xA9, 0x01, // LDA #$01
		0x85, 0x10, // STA $10
		0xA9, 0x02, // LDA #$02
		0x85, 0x10, // STA $10
	)
	// Only fire when A=2, so the first STA $10 (A=1) should not stop us.
	dispatch(t, d, "bw $10 a=2")
	if err := c.Run(d, 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.PC != 0x0408 {
		t.Errorf("PC = $%.4X, want $0408 (stopped after the second store)", c.PC)
	}
	if c.A != 0x02 {
		t.Errorf("A = $%.2X, want $02", c.A)
	}
}

func TestBreakpointListEnableDisable(t *testing.T) {
	d, _ := newTestDebugger(t, 0x0400, 0xEA)
	dispatch(t, d, "bx $0400")
	dispatch(t, d, "bx $0401")
	if got := dispatch(t, d, "bl"); !strings.Contains(got, "#1") || !strings.Contains(got, "#2") {
		t.Errorf("bl output = %q, want both breakpoints listed", got)
	}
	dispatch(t, d, "bd 1")
	if bp := d.findBreakpoint(1); bp == nil || bp.Enabled {
		t.Error("breakpoint #1 not disabled after bd")
	}
	if d.findBreakpoint(2) == nil {
		t.Error("breakpoint #2 removed unexpectedly")
	}
}

func TestStepCommand(t *testing.T) {
	d, c := newTestDebugger(t, 0x0400, 0xA9, 0x2A) // LDA #$2A
	dispatch(t, d, "p")
	if c.A != 0x2A {
		t.Errorf("A = $%.2X, want $2A", c.A)
	}
	if c.PC != 0x0402 {
		t.Errorf("PC = $%.4X, want $0402", c.PC)
	}
}

func TestSetRegisterCommand(t *testing.T) {
	d, c := newTestDebugger(t, 0x0400, 0xEA)
	dispatch(t, d, "v a $7F")
	if c.A != 0x7F {
		t.Errorf("A = $%.2X, want $7F", c.A)
	}
}

func TestPokeAndHexdump(t *testing.T) {
	d, _ := newTestDebugger(t, 0x0400, 0xEA)
	dispatch(t, d, "e $AA $BB $CC $0500")
	out := dispatch(t, d, "x 3 $0500")
	if !strings.Contains(out, "AA BB CC") {
		t.Errorf("x output = %q, want bytes AA BB CC", out)
	}
}

func TestDisassembleCommand(t *testing.T) {
	d, _ := newTestDebugger(t, 0x0400, 0xA9, 0x42, 0xEA)
	out := dispatch(t, d, "d 2 $0400")
	if !strings.Contains(out, "LDA") || !strings.Contains(out, "NOP") {
		t.Errorf("d output = %q, want LDA then NOP", out)
	}
}

func TestAssembleCommandPokesMemory(t *testing.T) {
	d, c := newTestDebugger(t, 0x0400, 0xEA)
	scanner := bufio.NewScanner(strings.NewReader("LDA #$01\nSTA $10\n\n"))
	if _, err := d.Dispatch("a $0500", scanner); err != nil {
		t.Fatalf("Dispatch(a) = %v", err)
	}
	mem := c.Bus.Memory()
	want := []uint8{0xA9, 0x01, 0x85, 0x10}
	for i, b := range want {
		if got := mem.Read(0x0500 + uint16(i)); got != b {
			t.Errorf("mem[$%.4X] = $%.2X, want $%.2X", 0x0500+i, got, b)
		}
	}
}

func TestUnknownCommandIsParseError(t *testing.T) {
	d, _ := newTestDebugger(t, 0x0400, 0xEA)
	_, err := d.Dispatch("zzz", nil)
	if _, ok := err.(cpu.ParseError); !ok {
		t.Fatalf("err = %v (%T), want ParseError", err, err)
	}
}

func TestNMIBreakpoint(t *testing.T) {
	d, c := newTestDebugger(t, 0x0400,
		0xEA, // NOP
		0xEA, // NOP
		0xEA, // NOP
	)
	// Point the NMI vector back at the NOP program so the one instruction
	// Step executes right after the interrupt is serviced is well-defined.
	mem := c.Bus.Memory()
	mem.Write(0xFFFA, 0x00)
	mem.Write(0xFFFB, 0x04)
	dispatch(t, d, "bn")
	c.RaiseNMI()
	if err := c.Run(d, 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.LastHit() == nil || d.LastHit().Kind != BreakNMI {
		t.Fatalf("LastHit() = %v, want a BreakNMI hit", d.LastHit())
	}
}

// TestDisassembleFlagsUnstableOpcode confirms the "d" command calls out an
// unstable-on-this-variant byte instead of silently presenting it as a
// trustworthy decode.
func TestDisassembleFlagsUnstableOpcode(t *testing.T) {
	d, _ := newTestDebugger(t, 0x0400, 0xAB, 0x42) // unstable immediate LAX/OAL
	out := dispatch(t, d, "d 1")
	if !strings.Contains(out, ".byte $AB") {
		t.Errorf("output = %q, want a .byte $AB pseudo-instruction", out)
	}
	if !strings.Contains(out, "not valid on") {
		t.Errorf("output = %q, want an InvalidVariantOpcodeError annotation", out)
	}
}
