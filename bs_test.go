package tagasn1

import "testing"

func TestBitString_roundtrip(t *testing.T) {
	cases := []BitString{
		NewBitString([]byte{0b10110000}, 4),
		NewBitString([]byte{0xFF, 0xF0}, 12),
		NewBitString(nil, 0),
		NewBitString([]byte{0xAB, 0xCD, 0xEF}, 24),
	}

	for _, rule := range []Rule{BER, DL, DER} {
		for _, in := range cases {
			content := in.EncodeDER(nil)
			tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagBitString}, Length: len(content), Value: content, Rule: rule}

			var out BitString
			if err := out.DecodeFrom(tlv); err != nil {
				t.Fatalf("DecodeFrom(%v, %v) failed: %v", rule, in.Hex(), err)
			}
			if out.BitLength != in.BitLength || out.Hex() != in.Hex() {
				t.Errorf("roundtrip mismatch: want %s (%d bits), got %s (%d bits)",
					in.Hex(), in.BitLength, out.Hex(), out.BitLength)
			}
		}
	}
}

func TestBitString_DERRejectsDirtyPadding(t *testing.T) {
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagBitString}, Length: 2, Value: []byte{0x04, 0b11111111}, Rule: DER}
	var bs BitString
	if err := bs.DecodeFrom(tlv); err == nil {
		t.Fatal("expected DER to reject non-zero padding bits")
	}
}

func TestBitString_SetUnsetPositive(t *testing.T) {
	bs := NewBitString([]byte{0x00}, 8)
	bs.Set(0)
	if !bs.Positive(0) {
		t.Fatal("expected bit 0 to be set")
	}
	bs.Unset(0)
	if bs.Positive(0) {
		t.Fatal("expected bit 0 to be cleared")
	}
}

func TestNamedBits(t *testing.T) {
	nb := NamedBits{
		BitString: NewBitString([]byte{0x00}, 8),
		Bits:      []NamedBit{{Name: "a", Bit: 0}, {Name: "b", Bit: 1}},
	}
	nb.Set("b")
	if !nb.Positive("b") {
		t.Fatal("expected b to be set")
	}
	names := nb.Names()
	if len(names) != 1 || names[0] != "b" {
		t.Fatalf("unexpected Names(): %v", names)
	}
}

func TestBitString_Unused(t *testing.T) {
	bs := NewBitString([]byte{0b10110000}, 4)
	content := bs.EncodeDER(nil)
	if content[0] != 4 {
		t.Fatalf("expected unused-bits octet 4, got %d", content[0])
	}
}
