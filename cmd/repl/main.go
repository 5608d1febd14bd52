// repl is a minimal interactive shell over the debugger command grammar,
// reading commands from stdin and printing results to stdout until "q" or
// EOF, grounded on the teacher's disassembler/hand_asm mains for its
// flag/log.Fatalf CLI idiom even though nothing in the teacher has an
// interactive loop of its own.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/retro6502/core/cpu"
	"github.com/retro6502/core/debugger"
)

var (
	variant   = flag.String("variant", "nmos", "CPU variant to run: nmos or 65c02")
	load      = flag.String("load", "", "Path to a raw memory image to load before starting")
	offset    = flag.Int("offset", 0x0000, "Offset to load the image at")
	irqPeriod = flag.Uint64("irq_period", 0, "fire a periodic IRQ every N cycles (0 disables)")
)

func main() {
	flag.Parse()

	v := cpu.NMOS
	if *variant == "65c02" {
		v = cpu.WDC65C02
	}

	c, err := cpu.NewDefault(v)
	if err != nil {
		log.Fatalf("can't initialize CPU: %v", err)
	}
	if *load != "" {
		if err := c.Bus.Memory().Load(*load, uint16(*offset)); err != nil {
			log.Fatalf("can't load %q: %v", *load, err)
		}
	}
	if err := c.Reset(nil); err != nil {
		log.Fatalf("reset failed: %v", err)
	}

	d := debugger.New(c, true)
	d.Output = func(s string) { fmt.Println(s) }
	if *irqPeriod > 0 {
		d.SetPeriodicIRQ(*irqPeriod)
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		line := in.Text()
		if line == "q" {
			break
		}
		out, err := d.Dispatch(line, in)
		if err != nil {
			fmt.Printf("error: %v\n", err)
		} else if out != "" {
			fmt.Println(out)
		}
		fmt.Print("> ")
	}
	if err := in.Err(); err != nil {
		log.Fatalf("input error: %v", err)
	}
}
