package tagasn1

import (
	"math/big"
	"testing"
)

func TestInteger_roundtrip(t *testing.T) {
	big192bit, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	negBig192bit, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)

	for _, x := range []any{0, 1, -1, 127, 128, -128, -129, 255, 256,
		int(1<<31 - 1), int(-(1 << 31)), big192bit, negBig192bit} {
		in := NewInteger(x)
		for _, rule := range []Rule{BER, DL, DER} {
			content := in.EncodeDER(nil)
			tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagInteger}, Length: len(content), Value: content, Rule: rule}

			var out Integer
			if err := out.DecodeFrom(tlv); err != nil {
				t.Fatalf("DecodeFrom(%v, %v) failed: %v", rule, in.String(), err)
			}
			if out.String() != in.String() {
				t.Errorf("roundtrip mismatch: want %s, got %s", in.String(), out.String())
			}
		}
	}
}

func TestInteger_MinimalEncoding(t *testing.T) {
	cases := map[int64]string{
		0:    "00",
		1:    "01",
		127:  "7F",
		128:  "0080",
		-128: "80",
		-129: "FF7F",
		256:  "0100",
	}
	for v, want := range cases {
		got := hexstr(NewInteger(v).EncodeDER(nil))
		if got != want {
			t.Errorf("encode(%d): want %s, got %s", v, want, got)
		}
	}
}

func TestInteger_DERRejectsNonMinimal(t *testing.T) {
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagInteger}, Length: 2, Value: []byte{0x00, 0x01}, Rule: DER}
	var i Integer
	if err := i.DecodeFrom(tlv); err == nil {
		t.Fatal("expected DER to reject a non-minimal INTEGER encoding")
	}
}

func TestInteger_EmptyContentRejected(t *testing.T) {
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagInteger}, Length: 0, Value: nil, Rule: BER}
	var i Integer
	if err := i.DecodeFrom(tlv); err == nil {
		t.Fatal("expected empty INTEGER content to be rejected")
	}
}

func TestInteger_Big(t *testing.T) {
	big192bit, _ := new(big.Int).SetString("99999999999999999999999999999999", 10)
	i := NewInteger(big192bit)
	if _, ok := i.Int64(); ok {
		t.Fatal("expected Int64 to report overflow")
	}
	if i.Big().Cmp(big192bit) != 0 {
		t.Fatal("Big() did not round-trip the big.Int value")
	}
}
