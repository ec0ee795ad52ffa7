package tagasn1

/*
enum.go contains all types and methods pertaining to the ASN.1
ENUMERATED type. ENUMERATED shares INTEGER's minimal two's-complement content
encoding; only the tag differs.
*/

/*
Enumerated implements the ASN.1 ENUMERATED type (tag 10). It wraps
[Integer] rather than duplicating the two's-complement codec.
*/
type Enumerated struct {
	Integer
}

// NewEnumerated returns an [Enumerated] wrapping x.
func NewEnumerated(x int64) Enumerated { return Enumerated{Integer: NewInteger(x)} }

// Tag returns [TagEnumerated].
func (r Enumerated) Tag() int { return TagEnumerated }

// EncodeBER delegates to the embedded Integer's content codec.
func (r Enumerated) EncodeBER(dst []byte) []byte { return r.Integer.EncodeBER(dst) }

// EncodeDER delegates to the embedded Integer's content codec.
func (r Enumerated) EncodeDER(dst []byte) []byte { return r.Integer.EncodeDER(dst) }

// DecodeFrom validates the ENUMERATED tag, then defers to [Integer]'s
// two's-complement content decode.
func (r *Enumerated) DecodeFrom(t TLV) error {
	retagged := t
	retagged.Tag.Number = TagInteger
	if t.Tag.Class != ClassUniversal || t.Tag.Number != TagEnumerated {
		return errStructureError("expected ENUMERATED header, got ", t.Tag.Class.String(), " ", itoa(t.Tag.Number))
	}
	return r.Integer.DecodeFrom(retagged)
}
