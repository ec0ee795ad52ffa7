package tagasn1

import "testing"

func TestExternal_roundtrip_minimal(t *testing.T) {
	content := NewOctetString([]byte("payload"))
	ext, err := NewExternal(nil, nil, nil, 1, &content)
	if err != nil {
		t.Fatalf("NewExternal failed: %v", err)
	}

	wire := Marshal(ext, DER)
	tlv, _, err := decodeTLV(wire, 0, DER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}

	var out External
	if err := out.DecodeFrom(tlv); err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if out.Encoding != 1 {
		t.Errorf("want encoding 1, got %d", out.Encoding)
	}
	got, ok := out.ExternalContent.(*OctetString)
	if !ok {
		t.Fatalf("externalContent is %T, want *OctetString", out.ExternalContent)
	}
	if string(*got) != "payload" {
		t.Errorf("want %q, got %q", "payload", *got)
	}
	if out.DirectReference != nil || out.IndirectReference != nil || out.DataValueDescriptor != nil {
		t.Error("want all optional fields nil")
	}
}

func TestExternal_roundtrip_withReferences(t *testing.T) {
	oid, err := NewObjectIdentifier(1, 2, 840, 10045)
	if err != nil {
		t.Fatalf("NewObjectIdentifier failed: %v", err)
	}
	indirect := NewInteger(7)
	dvd, err := NewUTF8String("a descriptor")
	if err != nil {
		t.Fatalf("NewUTF8String failed: %v", err)
	}
	b := NewBoolean(true)

	ext, err := NewExternal(&oid, &indirect, &dvd, 0, &b)
	if err != nil {
		t.Fatalf("NewExternal failed: %v", err)
	}

	wire := Marshal(ext, DER)
	tlv, _, err := decodeTLV(wire, 0, DER)
	if err != nil {
		t.Fatalf("decodeTLV failed: %v", err)
	}

	var out External
	if err := out.DecodeFrom(tlv); err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if out.DirectReference == nil || !out.DirectReference.Eq(oid) {
		t.Errorf("directReference mismatch: got %v want %v", out.DirectReference, oid)
	}
	if out.IndirectReference == nil {
		t.Fatal("want non-nil indirectReference")
	}
	if n, _ := out.IndirectReference.Int64(); n != 7 {
		t.Errorf("want indirectReference 7, got %d", n)
	}
	if out.DataValueDescriptor == nil {
		t.Fatal("want non-nil dataValueDescriptor")
	}
	gotBool, ok := out.ExternalContent.(*Boolean)
	if !ok || !bool(*gotBool) {
		t.Errorf("externalContent mismatch: %#v", out.ExternalContent)
	}
	if !out.Equal(&out) {
		t.Error("External must equal itself")
	}
}

func TestExternal_rejectsMissingFinal(t *testing.T) {
	seq := NewSequence() // no children at all
	var out External
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagExternal, Constructed: true}, Value: seq.EncodeDER(nil), Rule: DER}
	if err := out.DecodeFrom(tlv); err == nil {
		t.Fatal("expected error decoding EXTERNAL with no elements")
	}
}

func TestExternal_rejectsOutOfRangeEncoding(t *testing.T) {
	b := NewBoolean(true)
	wrapper, err := NewTaggedObject(ClassContext, 3, true, &b)
	if err != nil {
		t.Fatalf("NewTaggedObject failed: %v", err)
	}
	content := encodeChildTLV(nil, wrapper, DER)
	var out External
	tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagExternal, Constructed: true}, Value: content, Rule: DER}
	if err := out.DecodeFrom(tlv); err == nil {
		t.Fatal("expected error decoding EXTERNAL with encoding tag 3")
	}
}
