package cpu

// resolved is the result of resolving an Opcode's addressing mode: either a
// memory address (addr, with pageCrossed noting whether the index crossed a
// page boundary) or, for Immediate/Accumulator, a value with no address at
// all. Store-class instructions only ever need addr; load/RMW need value
// too, fetched by the caller via c.read(addr) so that store never performs
// a spurious read the way a naive implementation would.
type resolved struct {
	addr        uint16
	accumulator bool
	immediate   bool
	value       uint8 // populated only when immediate or accumulator is true
	pageCrossed bool
	target      uint16 // branch target for ZeroPageRelative (addr holds the zp operand instead)
}

// resolve computes the effective address (or immediate/accumulator value)
// for mode, consuming operand bytes from the instruction stream via
// c.fetch. Beyond the operand bytes it reads only the pointer bytes of the
// indirect modes; callers are responsible for the data read/write the
// instruction performs.
func (c *CPU) resolve(mode AddrMode) (resolved, error) {
	switch mode {
	case Implied:
		return resolved{}, nil

	case Accumulator:
		return resolved{accumulator: true, value: c.A}, nil

	case Immediate:
		v, err := c.fetch()
		return resolved{immediate: true, value: v}, err

	case ZeroPage:
		lo, err := c.fetch()
		return resolved{addr: uint16(lo)}, err

	case ZeroPageX:
		lo, err := c.fetch()
		return resolved{addr: uint16(lo + c.X)}, err

	case ZeroPageY:
		lo, err := c.fetch()
		return resolved{addr: uint16(lo + c.Y)}, err

	case Absolute:
		lo, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		hi, err := c.fetch()
		return resolved{addr: uint16(lo) | uint16(hi)<<8}, err

	case AbsoluteX:
		return c.resolveAbsoluteIndexed(c.X)

	case AbsoluteY:
		return c.resolveAbsoluteIndexed(c.Y)

	case Indirect:
		return c.resolveIndirectJMP()

	case AbsoluteIndirectX:
		return c.resolveIndirectXJMP()

	case IndirectX:
		zp, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		ptr := zp + c.X
		lo := c.mustRead(uint16(ptr))
		hi := c.mustRead(uint16(ptr + 1))
		return resolved{addr: uint16(lo) | uint16(hi)<<8}, nil

	case IndirectY:
		zp, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		lo := c.mustRead(uint16(zp))
		hi := c.mustRead(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		return resolved{addr: addr, pageCrossed: (base & 0xFF00) != (addr & 0xFF00)}, nil

	case ZeroPageIndirect:
		zp, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		lo := c.mustRead(uint16(zp))
		hi := c.mustRead(uint16(zp + 1))
		return resolved{addr: uint16(lo) | uint16(hi)<<8}, nil

	case Relative:
		off, err := c.fetch()
		target := c.PC + uint16(int8(off))
		return resolved{addr: target, pageCrossed: (c.PC & 0xFF00) != (target & 0xFF00)}, err

	case ZeroPageRelative:
		zp, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		off, err := c.fetch()
		target := c.PC + uint16(int8(off))
		return resolved{addr: uint16(zp), target: target}, err

	default:
		return resolved{}, nil
	}
}

func (c *CPU) resolveAbsoluteIndexed(index uint8) (resolved, error) {
	lo, err := c.fetch()
	if err != nil {
		return resolved{}, err
	}
	hi, err := c.fetch()
	if err != nil {
		return resolved{}, err
	}
	base := uint16(lo) | uint16(hi)<<8
	addr := base + uint16(index)
	return resolved{addr: addr, pageCrossed: (base & 0xFF00) != (addr & 0xFF00)}, nil
}

// resolveIndirectJMP implements JMP (abs). NMOS chips have the well known
// page-wrap bug: if the pointer's low byte is $FF, the high byte of the
// target is fetched from the start of the same page rather than the next
// one. The 65C02 fixes this (and spends one extra cycle doing so, charged
// by the caller via the Opcode's Cycles field being one higher for $6C on
// cmosOpcodes).
func (c *CPU) resolveIndirectJMP() (resolved, error) {
	lo, err := c.fetch()
	if err != nil {
		return resolved{}, err
	}
	hi, err := c.fetch()
	if err != nil {
		return resolved{}, err
	}
	ptr := uint16(lo) | uint16(hi)<<8
	var hiAddr uint16
	if c.Variant == WDC65C02 {
		hiAddr = ptr + 1
	} else {
		hiAddr = (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	}
	targetLo := c.mustRead(ptr)
	targetHi := c.mustRead(hiAddr)
	return resolved{addr: uint16(targetLo) | uint16(targetHi)<<8}, nil
}

// resolveIndirectXJMP implements the 65C02-only JMP (abs,X).
func (c *CPU) resolveIndirectXJMP() (resolved, error) {
	lo, err := c.fetch()
	if err != nil {
		return resolved{}, err
	}
	hi, err := c.fetch()
	if err != nil {
		return resolved{}, err
	}
	base := uint16(lo) | uint16(hi)<<8
	ptr := base + uint16(c.X)
	targetLo := c.mustRead(ptr)
	targetHi := c.mustRead(ptr + 1)
	return resolved{addr: uint16(targetLo) | uint16(targetHi)<<8}, nil
}
