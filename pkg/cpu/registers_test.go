package cpu

import "testing"

// TestRegisterPairs seeds every register and reads the four pair views.
func TestRegisterPairs(t *testing.T) {
	r := NewRegisters()
	r.A, r.B, r.C, r.D = 0xFF, 0x11, 0x22, 0x33
	r.E, r.H, r.L = 0x44, 0x66, 0x77
	r.F.SetByte(0x55) // low nibble discarded: F reads back 0x50

	if got := r.AF.Uint16(); got != 0xFF50 {
		t.Errorf("AF = %04X, want FF50", got)
	}
	if got := r.BC.Uint16(); got != 0x1122 {
		t.Errorf("BC = %04X, want 1122", got)
	}
	if got := r.DE.Uint16(); got != 0x3344 {
		t.Errorf("DE = %04X, want 3344", got)
	}
	if got := r.HL.Uint16(); got != 0x6677 {
		t.Errorf("HL = %04X, want 6677", got)
	}

	r.BC.SetUint16(0xDEAD)
	if r.B != 0xDE || r.C != 0xAD {
		t.Errorf("SetUint16(DEAD): B=%02X C=%02X", r.B, r.C)
	}
	if got := r.BC.Uint16(); got != 0xDEAD {
		t.Errorf("BC after SetUint16 = %04X", got)
	}
}

// TestPairRoundTrip sweeps every 16-bit value through every pair. Set-then-
// get is the identity for BC, DE and HL; AF drops the low nibble.
func TestPairRoundTrip(t *testing.T) {
	r := NewRegisters()
	pairs := []struct {
		name string
		p    *RegisterPair
		mask uint16
	}{
		{"BC", r.BC, 0xFFFF},
		{"DE", r.DE, 0xFFFF},
		{"HL", r.HL, 0xFFFF},
		{"AF", r.AF, 0xFFF0},
	}
	for _, pr := range pairs {
		for v := 0; v <= 0xFFFF; v++ {
			pr.p.SetUint16(uint16(v))
			if got := pr.p.Uint16(); got != uint16(v)&pr.mask {
				t.Fatalf("%s: set %04X reads %04X", pr.name, v, got)
			}
			stored := pr.p.Uint16()
			pr.p.SetUint16(stored)
			if pr.p.Uint16() != stored {
				t.Fatalf("%s: set(get) not identity at %04X", pr.name, v)
			}
		}
	}
}

// TestAFLowSlotIsFlags checks that writing AF rebuilds the flag booleans
// from bits 7-4 of the low byte.
func TestAFLowSlotIsFlags(t *testing.T) {
	r := NewRegisters()
	r.AF.SetUint16(0x12B7) // low byte 0xB7 = Z-HC with junk in bits 2,1,0

	if r.A != 0x12 {
		t.Errorf("A = %02X, want 12", r.A)
	}
	want := Flags{Zero: true, HalfCarry: true, Carry: true}
	if r.F != want {
		t.Errorf("F = %+v, want %+v", r.F, want)
	}
	if got := r.AF.Uint16(); got != 0x12B0 {
		t.Errorf("AF reads %04X, want 12B0", got)
	}
}
