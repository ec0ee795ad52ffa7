package tagasn1

/*
t61.go contains all types and methods pertaining to the ASN.1
T61String (Teletex string) type.

Deprecated: T61String is carried for legacy interoperability only; use
[UniversalString], [BMPString] or [UTF8String] in modern systems. This
package does not validate T.61 encoding beyond requiring well-formed
content octets: the Teletex repertoire is history-encumbered enough
that rejecting "invalid" content on write would reject real-world data.
*/

// T61String implements the ASN.1 T61String (tag 20).
type T61String string

// NewT61String returns a [T61String] wrapping s.
func NewT61String(s string) T61String { return T61String(s) }

// Tag returns [TagT61String].
func (r T61String) Tag() int { return TagT61String }

// IsPrimitive always returns true.
func (r T61String) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r T61String) String() string { return string(r) }

// Len returns the number of bytes.
func (r T61String) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r T61String) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r T61String) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets.
func (r *T61String) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagT61String, t)
	if err != nil {
		return err
	}
	*r = T61String(data)
	return nil
}
