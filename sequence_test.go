package tagasn1

import "testing"

func TestSequence_roundtrip(t *testing.T) {
	i := NewInteger(5)
	b := NewBoolean(true)
	seq := NewSequence(&i, &b)

	content := seq.EncodeDER(nil)
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagSequence, Constructed: true}, Length: len(content), Value: content, Rule: DER}

	var out Sequence
	if err := out.DecodeFrom(tlv); err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("want 2 elements, got %d", out.Len())
	}
	gotInt, ok := out.At(0).(*Integer)
	if !ok {
		t.Fatalf("element 0 is %T, want *Integer", out.At(0))
	}
	if n, _ := gotInt.Int64(); n != 5 {
		t.Errorf("want 5, got %d", n)
	}
	gotBool, ok := out.At(1).(*Boolean)
	if !ok {
		t.Fatalf("element 1 is %T, want *Boolean", out.At(1))
	}
	if !bool(*gotBool) {
		t.Errorf("want true, got false")
	}
}

func TestSequence_preservesOrderUnderDER(t *testing.T) {
	a := NewInteger(3)
	c := NewInteger(1)
	seq := NewSequence(&a, &c)

	got := seq.EncodeDER(nil)
	want := seq.EncodeBER(nil)
	if string(got) != string(want) {
		t.Errorf("SEQUENCE must not reorder under DER: BER=%x DER=%x", want, got)
	}
}

func TestSequence_rejectsWrongTag(t *testing.T) {
	var out Sequence
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagSet, Constructed: true}, Rule: DER}
	if err := out.DecodeFrom(tlv); err == nil {
		t.Fatal("expected error decoding SET header as SEQUENCE")
	}
}

func TestSequence_rejectsPrimitiveEncoding(t *testing.T) {
	var out Sequence
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagSequence, Constructed: false}, Rule: DER}
	if err := out.DecodeFrom(tlv); err == nil {
		t.Fatal("expected error decoding a primitive-flagged SEQUENCE TLV")
	}
}
