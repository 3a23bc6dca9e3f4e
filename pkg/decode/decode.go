// Package decode maps raw SM83 opcode bytes to instructions. Only the
// encodings of the operations this core executes are present; every other
// byte is refused with ErrUnknownOpcode so a driver loop can surface it
// instead of silently running a no-op.
package decode

import (
	"errors"
	"fmt"

	"github.com/lr35902/sm83-core/pkg/inst"
)

// ErrUnknownOpcode is returned for any byte this core does not implement:
// memory-operand and immediate forms, the 0xCB prefix, loads, jumps, and so
// on.
var ErrUnknownOpcode = errors.New("unknown opcode")

// table holds the implemented part of the base opcode page.
var table = map[uint8]inst.Instruction{}

// regColumn is the register order of the ALU opcode rows. Column 6 is the
// (HL) memory operand, which needs a bus and stays unimplemented here.
var regColumn = [8]inst.Target{
	inst.B, inst.C, inst.D, inst.E, inst.H, inst.L, inst.None, inst.A,
}

// aluRow maps each ALU row base opcode to its operation: 0x80+i is ADD A,r,
// 0x88+i is ADC A,r, and so on through CP at 0xB8.
var aluRow = map[uint8]inst.Op{
	0x80: inst.ADD,
	0x88: inst.ADC,
	0x90: inst.SUB,
	0x98: inst.SBC,
	0xA0: inst.AND,
	0xA8: inst.XOR,
	0xB0: inst.OR,
	0xB8: inst.CP,
}

func init() {
	for base, op := range aluRow {
		for i, t := range regColumn {
			if t == inst.None {
				continue
			}
			table[base+uint8(i)] = inst.Instruction{Op: op, Target: t}
		}
	}

	// INC r and DEC r sit at 0x04+8i and 0x05+8i in the same register order.
	for i, t := range regColumn {
		if t == inst.None {
			continue
		}
		table[0x04+uint8(i)*8] = inst.Instruction{Op: inst.INC, Target: t}
		table[0x05+uint8(i)*8] = inst.Instruction{Op: inst.DEC, Target: t}
	}

	// ADD HL, rr. 0x39 (ADD HL, SP) needs the stack pointer, not modeled.
	table[0x09] = inst.Instruction{Op: inst.ADDHL, Target: inst.BC}
	table[0x19] = inst.Instruction{Op: inst.ADDHL, Target: inst.DE}
	table[0x29] = inst.Instruction{Op: inst.ADDHL, Target: inst.HL}

	table[0x2F] = inst.Instruction{Op: inst.CPL}
	table[0x37] = inst.Instruction{Op: inst.SCF}
	table[0x3F] = inst.Instruction{Op: inst.CCF}
}

// Decode maps a raw opcode byte to its Instruction, or reports the byte as
// unimplemented.
func Decode(opcode uint8) (inst.Instruction, error) {
	in, ok := table[opcode]
	if !ok {
		return inst.Instruction{}, fmt.Errorf("%w: 0x%02X", ErrUnknownOpcode, opcode)
	}
	return in, nil
}

// Opcode is the inverse of Decode: the encoding of an instruction, if this
// core carries one.
func Opcode(in inst.Instruction) (uint8, bool) {
	for b, decoded := range table {
		if decoded == in {
			return b, true
		}
	}
	return 0, false
}
