// disasm loads a file and disassembles it to stdout starting at the given
// address, adapted from the teacher's disassembler/disassembler.go (the
// C64 .prg/BASIC-listing special case is dropped: it belongs to a
// downstream machine this module doesn't model).
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/retro6502/core/cpu"
	"github.com/retro6502/core/disasm"
	"github.com/retro6502/core/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading the file")
	variant = flag.String("variant", "nmos", "CPU variant to decode for: nmos or 65c02")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-start_pc <pc> -offset <offset> -variant nmos|65c02] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	v := cpu.NMOS
	if *variant == "65c02" {
		v = cpu.WDC65C02
	}

	m, err := memory.New(1<<16, nil)
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	m.PowerOn()
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}
	for i, by := range b {
		m.Write(uint16(*offset+i), by)
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), *startPC)

	read := func(addr uint16) uint8 { return m.Read(addr) }
	pc := uint16(*startPC)
	cnt := 0
	for cnt < len(b) {
		inst, next := disasm.Disassemble(v, read, pc)
		fmt.Println(inst.Text)
		cnt += len(inst.Bytes)
		pc = next
	}
}
