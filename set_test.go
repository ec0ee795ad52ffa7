package tagasn1

import "testing"

func TestSet_roundtrip(t *testing.T) {
	i := NewInteger(7)
	b := NewBoolean(false)
	set := NewSet(&i, &b)

	content := set.EncodeDER(nil)
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagSet, Constructed: true}, Length: len(content), Value: content, Rule: DER}

	var out Set
	if err := out.DecodeFrom(tlv); err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("want 2 elements, got %d", out.Len())
	}
}

func TestSet_DER_reordersByEncodedBytes(t *testing.T) {
	hi := NewInteger(500)
	lo := NewInteger(1)

	forward := NewSet(&hi, &lo)
	backward := NewSet(&lo, &hi)

	a := forward.EncodeDER(nil)
	b := backward.EncodeDER(nil)
	if string(a) != string(b) {
		t.Errorf("DER SET encoding must be independent of construction order: %x vs %x", a, b)
	}
}

func TestSet_BER_preservesConstructionOrder(t *testing.T) {
	hi := NewInteger(500)
	lo := NewInteger(1)

	set := NewSet(&hi, &lo)
	got := set.EncodeBER(nil)

	var first Integer
	tlv, consumed, err := decodeTLV(got, 0, BER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}
	if err := first.DecodeFrom(tlv); err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if n, _ := first.Int64(); n != 500 {
		t.Errorf("BER SET must preserve construction order: want first=500, got %d (consumed %d)", n, consumed)
	}
}

func TestSet_rejectsWrongTag(t *testing.T) {
	var out Set
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagSequence, Constructed: true}, Rule: DER}
	if err := out.DecodeFrom(tlv); err == nil {
		t.Fatal("expected error decoding SEQUENCE header as SET")
	}
}
