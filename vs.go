package tagasn1

/*
vs.go contains all types and methods pertaining to the ASN.1
VisibleString type. VisibleString's alphabet is the International
Reference Version of ISO 646 minus control characters (0x20-0x7E).
*/

// VisibleString implements the ASN.1 VisibleString (tag 26).
type VisibleString string

// NewVisibleString returns a [VisibleString] wrapping s, or an error
// if s contains a byte outside the visible range.
func NewVisibleString(s string) (VisibleString, error) {
	if !isVisible(s) {
		return "", errInvalidArgument("VisibleString: byte outside the visible range")
	}
	return VisibleString(s), nil
}

// Tag returns [TagVisibleString].
func (r VisibleString) Tag() int { return TagVisibleString }

// IsPrimitive always returns true.
func (r VisibleString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r VisibleString) String() string { return string(r) }

// Len returns the number of bytes.
func (r VisibleString) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r VisibleString) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r VisibleString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets, rejecting
// any byte outside the visible range.
func (r *VisibleString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagVisibleString, t)
	if err != nil {
		return err
	}
	if !isVisible(string(data)) {
		return errStructureError("VisibleString: byte outside the visible range")
	}
	*r = VisibleString(data)
	return nil
}
