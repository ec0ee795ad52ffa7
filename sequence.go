package tagasn1

/*
sequence.go contains all types and methods pertaining to the ASN.1
SEQUENCE composite: content octets are the concatenation of each
child's own complete TLV, wrapped in one constructed outer TLV. A
Sequence is built by appending [Primitive] children directly, and a
decoded Sequence holds whatever concrete Primitive each child's own
tag identifies (see decodeUniversalValue in streamparser.go).
*/

// Sequence implements the ASN.1 SEQUENCE (tag 16): an ordered,
// heterogeneous list of primitives.
type Sequence struct {
	elements []Primitive
}

// NewSequence returns a [Sequence] containing elements in order.
func NewSequence(elements ...Primitive) *Sequence {
	return &Sequence{elements: append([]Primitive(nil), elements...)}
}

// Tag returns [TagSequence].
func (s *Sequence) Tag() int { return TagSequence }

// IsPrimitive always returns false: SEQUENCE is constructed.
func (s *Sequence) IsPrimitive() bool { return false }

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.elements) }

// At returns the element at index i.
func (s *Sequence) At(i int) Primitive { return s.elements[i] }

// Elements returns the receiver's children in order. The returned
// slice must not be mutated by the caller.
func (s *Sequence) Elements() []Primitive { return s.elements }

// Append adds p as the new final element.
func (s *Sequence) Append(p Primitive) { s.elements = append(s.elements, p) }

// String renders the receiver as "SEQUENCE { elem, elem, ... }".
func (s *Sequence) String() string {
	out := "SEQUENCE {"
	for i, e := range s.elements {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out + "}"
}

// EncodeBER appends the concatenation of each child's BER TLV to dst.
func (s *Sequence) EncodeBER(dst []byte) []byte { return s.encode(dst, BER) }

// EncodeDER appends the concatenation of each child's DER TLV to dst.
// Element order is preserved: SEQUENCE, unlike SET, is not re-sorted
// under DER (X.690 §11 constrains SET, not SEQUENCE, ordering).
func (s *Sequence) EncodeDER(dst []byte) []byte { return s.encode(dst, DER) }

func (s *Sequence) encode(dst []byte, rule Rule) []byte {
	for _, e := range s.elements {
		dst = encodeChildTLV(dst, e, rule)
	}
	return dst
}

/*
DecodeFrom populates the receiver from t's content octets: a
definite-length SEQUENCE's content is walked TLV by TLV (an
indefinite-length BER SEQUENCE's content has already been trimmed to
exclude its end-of-contents marker by [decodeTLV]), materialising each
child via decodeUniversalValue.
*/
func (s *Sequence) DecodeFrom(t TLV) error {
	if t.Tag.Class != ClassUniversal || t.Tag.Number != TagSequence {
		return errStructureError("expected SEQUENCE header, got ", t.Tag.Class.String(), " ", itoa(t.Tag.Number))
	}
	if !t.Tag.Constructed {
		return errStructureError("SEQUENCE must be constructed")
	}

	elements, err := decodeChildren(t.Value, t.Rule)
	if err != nil {
		return err
	}
	s.elements = elements
	return nil
}
