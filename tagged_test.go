package tagasn1

import "testing"

// A3 03 02 01 05: CONTEXT 3, constructed, wrapping INTEGER 5.
var taggedIntegerWire = []byte{0xA3, 0x03, 0x02, 0x01, 0x05}

func TestTaggedObject_LoadExplicit(t *testing.T) {
	tlv, _, err := decodeTLV(taggedIntegerWire, 0, DER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}
	obj := newRawTaggedObject(tlv)
	inner, err := obj.LoadExplicit()
	if err != nil {
		t.Fatalf("LoadExplicit failed: %v", err)
	}
	n, ok := inner.(*Integer)
	if !ok {
		t.Fatalf("inner is %T, want *Integer", inner)
	}
	if v, _ := n.Int64(); v != 5 {
		t.Errorf("want 5, got %d", v)
	}
	if !obj.Explicit() {
		t.Error("want Explicit() true after LoadExplicit")
	}
	if got := obj.EncodeDER(nil); string(got) != string(taggedIntegerWire[2:]) {
		t.Errorf("content roundtrip mismatch: got %x want %x", got, taggedIntegerWire[2:])
	}
}

func TestTaggedObject_LoadImplicit_SameWireBytes(t *testing.T) {
	tlv, _, err := decodeTLV(taggedIntegerWire, 0, DER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}
	obj := newRawTaggedObject(tlv)
	inner, err := obj.LoadImplicit(TagInteger, true)
	if err != nil {
		t.Fatalf("LoadImplicit failed: %v", err)
	}
	n, ok := inner.(*Integer)
	if !ok {
		t.Fatalf("inner is %T, want *Integer", inner)
	}
	if v, _ := n.Int64(); v != 5 {
		t.Errorf("want 5, got %d", v)
	}
	if obj.Explicit() {
		t.Error("want Explicit() false after LoadImplicit")
	}

	full := Marshal(obj, DER)
	if string(full) != string(taggedIntegerWire) {
		t.Errorf("re-encoded bytes mismatch: got %x want %x", full, taggedIntegerWire)
	}
}

func TestTaggedObject_LoadImplicit_constructedMismatchFails(t *testing.T) {
	tlv, _, err := decodeTLV(taggedIntegerWire, 0, DER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}
	obj := newRawTaggedObject(tlv)
	if _, err := obj.LoadImplicit(TagInteger, false); err == nil {
		t.Fatal("expected error: isConstructed assertion does not match wire")
	}
}

func TestTaggedObject_ExplicitConstruction(t *testing.T) {
	i := NewInteger(42)
	obj, err := NewTaggedObject(ClassContext, 1, true, &i)
	if err != nil {
		t.Fatalf("NewTaggedObject failed: %v", err)
	}
	got := Marshal(obj, DER)
	want := []byte{0xA1, 0x03, 0x02, 0x01, 0x2A}
	if string(got) != string(want) {
		t.Errorf("got %x want %x", got, want)
	}
}

func TestTaggedObject_ImplicitConstruction(t *testing.T) {
	i := NewInteger(42)
	obj, err := NewTaggedObject(ClassContext, 1, false, &i)
	if err != nil {
		t.Fatalf("NewTaggedObject failed: %v", err)
	}
	got := Marshal(obj, DER)
	want := []byte{0x81, 0x01, 0x2A}
	if string(got) != string(want) {
		t.Errorf("got %x want %x", got, want)
	}
}

func TestTaggedObject_rejectsUniversalClass(t *testing.T) {
	i := NewInteger(1)
	if _, err := NewTaggedObject(ClassUniversal, 1, true, &i); err == nil {
		t.Fatal("expected error constructing a UNIVERSAL-class tagged object")
	}
}

// TestTaggedObject_LoadExplicit_reencodesCanonical decodes a BER-legal
// but non-canonical explicit wrapper (INTEGER content padded with a
// redundant leading zero byte) and checks that re-marshaling under DER
// re-derives the canonical form from the resolved inner value instead
// of replaying the stale non-canonical raw bytes.
func TestTaggedObject_LoadExplicit_reencodesCanonical(t *testing.T) {
	// A3 04 02 02 00 05: CONTEXT 3, constructed, wrapping a BER-legal
	// but non-minimal INTEGER encoding of 5 (leading zero pad octet).
	nonCanonical := []byte{0xA3, 0x04, 0x02, 0x02, 0x00, 0x05}
	tlv, _, err := decodeTLV(nonCanonical, 0, BER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}
	obj := newRawTaggedObject(tlv)
	obj.rule = BER
	inner, err := obj.LoadExplicit()
	if err != nil {
		t.Fatalf("LoadExplicit failed: %v", err)
	}
	n, ok := inner.(*Integer)
	if !ok {
		t.Fatalf("inner is %T, want *Integer", inner)
	}
	if v, _ := n.Int64(); v != 5 {
		t.Errorf("want 5, got %d", v)
	}

	want := []byte{0xA3, 0x03, 0x02, 0x01, 0x05}
	got := Marshal(obj, DER)
	if string(got) != string(want) {
		t.Errorf("DER re-encode not canonical: got %x want %x", got, want)
	}
}

func TestTaggedObject_Equal(t *testing.T) {
	i1 := NewInteger(9)
	i2 := NewInteger(9)
	a, _ := NewTaggedObject(ClassContext, 2, true, &i1)
	b, _ := NewTaggedObject(ClassContext, 2, true, &i2)
	if !a.Equal(b) {
		t.Error("want equal tagged objects with DER-equal inner values")
	}

	i3 := NewInteger(10)
	c, _ := NewTaggedObject(ClassContext, 2, true, &i3)
	if a.Equal(c) {
		t.Error("want unequal tagged objects with different inner values")
	}
}

// choiceArm is a test double for a CHOICE-capable value: an INTEGER
// that reports itself choice-eligible.
type choiceArm struct{ Integer }

func (choiceArm) Choosable() bool { return true }

func TestTaggedObject_choiceForcesExplicit(t *testing.T) {
	arm := &choiceArm{Integer: NewInteger(3)}
	obj, err := NewTaggedObject(ClassContext, 0, false, arm)
	if err != nil {
		t.Fatalf("NewTaggedObject failed: %v", err)
	}
	if !obj.Explicit() {
		t.Error("want a choice-capable inner to force explicit tagging")
	}
	if obj.IsPrimitive() {
		t.Error("want the forced-explicit wrapper to be constructed")
	}
}

func TestTaggedObject_String(t *testing.T) {
	i := NewInteger(5)
	obj, _ := NewTaggedObject(ClassContext, 3, true, &i)
	if got := obj.String(); got != "[CONTEXT 3]5" {
		t.Errorf("got %q want %q", got, "[CONTEXT 3]5")
	}
	app, _ := NewTaggedObject(ClassApplication, 1, true, &i)
	if got := app.String(); got != "[APPLICATION 1]5" {
		t.Errorf("got %q want %q", got, "[APPLICATION 1]5")
	}
}
