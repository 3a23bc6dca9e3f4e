package cpu

import "testing"

// TestFlagByteEncoding pins the packed layout: Z=bit7, N=bit6, H=bit5, C=bit4.
func TestFlagByteEncoding(t *testing.T) {
	tests := []struct {
		flags Flags
		want  uint8
	}{
		{Flags{}, 0x00},
		{Flags{Zero: true}, 0x80},
		{Flags{Subtract: true}, 0x40},
		{Flags{HalfCarry: true}, 0x20},
		{Flags{Carry: true}, 0x10},
		{Flags{Zero: true, Carry: true}, 0x90},
		{Flags{Zero: true, Subtract: true, HalfCarry: true, Carry: true}, 0xF0},
	}
	for _, tc := range tests {
		if got := tc.flags.Byte(); got != tc.want {
			t.Errorf("Byte(%s) = %02X, want %02X", tc.flags, got, tc.want)
		}
	}
}

// TestFlagByteRoundTrip checks both encoding laws: decode∘encode is the
// identity on flag values, encode∘decode masks a byte to its top nibble.
func TestFlagByteRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		var f Flags
		f.SetByte(uint8(b))
		if got := f.Byte(); got != uint8(b)&0xF0 {
			t.Errorf("SetByte(%02X).Byte() = %02X, want %02X", b, got, b&0xF0)
		}
	}

	for i := 0; i < 16; i++ {
		f := Flags{
			Zero:      i&8 != 0,
			Subtract:  i&4 != 0,
			HalfCarry: i&2 != 0,
			Carry:     i&1 != 0,
		}
		var back Flags
		back.SetByte(f.Byte())
		if back != f {
			t.Errorf("flags %+v do not survive the byte encoding", f)
		}
	}
}

func TestFlagsString(t *testing.T) {
	f := Flags{Zero: true, HalfCarry: true}
	if got := f.String(); got != "Z-H-" {
		t.Errorf("String() = %q, want %q", got, "Z-H-")
	}
	if got := (Flags{}).String(); got != "----" {
		t.Errorf("String() = %q, want %q", got, "----")
	}
}
