package decode

import (
	"errors"
	"testing"

	"github.com/lr35902/sm83-core/pkg/inst"
)

func TestDecodeKnown(t *testing.T) {
	tests := []struct {
		opcode uint8
		want   inst.Instruction
	}{
		{0x80, inst.Instruction{Op: inst.ADD, Target: inst.B}},
		{0x85, inst.Instruction{Op: inst.ADD, Target: inst.L}},
		{0x87, inst.Instruction{Op: inst.ADD, Target: inst.A}},
		{0x88, inst.Instruction{Op: inst.ADC, Target: inst.B}},
		{0x91, inst.Instruction{Op: inst.SUB, Target: inst.C}},
		{0x9A, inst.Instruction{Op: inst.SBC, Target: inst.D}},
		{0xA3, inst.Instruction{Op: inst.AND, Target: inst.E}},
		{0xAC, inst.Instruction{Op: inst.XOR, Target: inst.H}},
		{0xB5, inst.Instruction{Op: inst.OR, Target: inst.L}},
		{0xBF, inst.Instruction{Op: inst.CP, Target: inst.A}},
		{0x04, inst.Instruction{Op: inst.INC, Target: inst.B}},
		{0x3C, inst.Instruction{Op: inst.INC, Target: inst.A}},
		{0x0D, inst.Instruction{Op: inst.DEC, Target: inst.C}},
		{0x2D, inst.Instruction{Op: inst.DEC, Target: inst.L}},
		{0x09, inst.Instruction{Op: inst.ADDHL, Target: inst.BC}},
		{0x19, inst.Instruction{Op: inst.ADDHL, Target: inst.DE}},
		{0x29, inst.Instruction{Op: inst.ADDHL, Target: inst.HL}},
		{0x2F, inst.Instruction{Op: inst.CPL}},
		{0x37, inst.Instruction{Op: inst.SCF}},
		{0x3F, inst.Instruction{Op: inst.CCF}},
	}
	for _, tc := range tests {
		got, err := Decode(tc.opcode)
		if err != nil {
			t.Errorf("Decode(%02X): %v", tc.opcode, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Decode(%02X) = %v, want %v", tc.opcode, got, tc.want)
		}
	}
}

// TestDecodeUnknown covers bytes deliberately outside this core: NOP, HALT,
// the (HL) column, the CB prefix and a jump.
func TestDecodeUnknown(t *testing.T) {
	for _, opcode := range []uint8{0x00, 0x76, 0x86, 0x34, 0x39, 0xCB, 0xC3, 0xFF} {
		_, err := Decode(opcode)
		if err == nil {
			t.Errorf("Decode(%02X) succeeded, want error", opcode)
			continue
		}
		if !errors.Is(err, ErrUnknownOpcode) {
			t.Errorf("Decode(%02X): error %v does not wrap ErrUnknownOpcode", opcode, err)
		}
	}
}

// TestOpcodeRoundTrip checks that every instruction has exactly one encoding
// and that Decode inverts it.
func TestOpcodeRoundTrip(t *testing.T) {
	for _, in := range inst.All() {
		op, ok := Opcode(in)
		if !ok {
			t.Errorf("no encoding for %v", in)
			continue
		}
		back, err := Decode(op)
		if err != nil {
			t.Errorf("Decode(Opcode(%v)): %v", in, err)
			continue
		}
		if back != in {
			t.Errorf("Decode(%02X) = %v, want %v", op, back, in)
		}
	}

	if len(inst.All()) != 76 {
		t.Fatalf("instruction set has %d entries, want 76", len(inst.All()))
	}
}

func TestOpcodeUnencodable(t *testing.T) {
	if _, ok := Opcode(inst.Instruction{Op: inst.ADD, Target: inst.BC}); ok {
		t.Error("Opcode accepted an invalid instruction")
	}
}
