package tagasn1

/*
oct.go contains all types and methods pertaining to the ASN.1
OCTET STRING type. OCTET STRING carries no structural constraint beyond
its tag: any byte sequence of any length is legal content.
*/

/*
OctetString implements the ASN.1 OCTET STRING type (tag 4).
*/
type OctetString []byte

// NewOctetString returns an [OctetString] wrapping b.
func NewOctetString(b []byte) OctetString { return OctetString(append([]byte(nil), b...)) }

// Tag returns [TagOctetString].
func (r OctetString) Tag() int { return TagOctetString }

// IsPrimitive always returns true.
func (r OctetString) IsPrimitive() bool { return true }

// String returns the receiver's bytes reinterpreted as a string.
func (r OctetString) String() string { return string(r) }

// Len returns the number of content octets.
func (r OctetString) Len() int { return len(r) }

// EncodeBER appends the raw octets to dst.
func (r OctetString) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER: OCTET STRING carries no
// canonicalisation beyond forbidding the BER segmented-constructed form,
// which this package's encoder never produces.
func (r OctetString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

/*
DecodeFrom populates the receiver from t's content octets. A
constructed OCTET STRING (BER's segmented form, where content is a
concatenation of nested OCTET STRING TLVs) is reassembled by
concatenating each child's content; this form is illegal under DL/DER.
*/
func (r *OctetString) DecodeFrom(t TLV) error {
	if t.Tag.Class != ClassUniversal || t.Tag.Number != TagOctetString {
		return errStructureError("expected OCTET STRING header, got ", t.Tag.Class.String(), " ", itoa(t.Tag.Number))
	}

	if !t.Tag.Constructed {
		*r = OctetString(append([]byte(nil), t.Value...))
		return nil
	}

	if t.Rule != BER {
		return errStructureError("segmented OCTET STRING is a BER-only construct")
	}

	var out []byte
	offset := 0
	for offset < len(t.Value) {
		child, consumed, err := decodeTLV(t.Value, offset, t.Rule)
		if err != nil {
			return err
		}
		var piece OctetString
		if err := piece.DecodeFrom(child); err != nil {
			return err
		}
		out = append(out, piece...)
		offset += consumed
		if child.Length == lengthIndefinite {
			offset += 2
		}
	}
	*r = OctetString(out)
	return nil
}
