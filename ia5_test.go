package tagasn1

import "testing"

func TestIA5String_roundtrip(t *testing.T) {
	in, err := NewIA5String("hello@example.com")
	if err != nil {
		t.Fatalf("NewIA5String failed: %v", err)
	}
	for _, rule := range []Rule{BER, DL, DER} {
		content := in.EncodeDER(nil)
		tlv := TLV{Tag: Tag{Class: ClassUniversal, Number: TagIA5String}, Length: len(content), Value: content, Rule: rule}

		var out IA5String
		if err := out.DecodeFrom(tlv); err != nil {
			t.Fatalf("DecodeFrom(%v) failed: %v", rule, err)
		}
		if out != in {
			t.Errorf("roundtrip mismatch: want %s, got %s", in, out)
		}
	}
}

func TestIA5String_RejectsNonIA5(t *testing.T) {
	if _, err := NewIA5String("caf\xc3\xa9"); err == nil {
		t.Fatal("expected non-IA5 byte to be rejected")
	}
}
