package tagasn1

/*
ia5.go contains all types and methods pertaining to the ASN.1
IA5String type. IA5 is the International Alphabet No. 5 (7-bit ASCII); every
byte of legal content must have its high bit clear.
*/

// IA5String implements the IA5 string (tag 22).
type IA5String string

// NewIA5String returns an [IA5String] wrapping s, or an error if s
// contains a byte outside the IA5 alphabet.
func NewIA5String(s string) (IA5String, error) {
	if !isIA5(s) {
		return "", errInvalidArgument("IA5String: byte outside the IA5 alphabet")
	}
	return IA5String(s), nil
}

// Tag returns [TagIA5String].
func (r IA5String) Tag() int { return TagIA5String }

// IsPrimitive always returns true.
func (r IA5String) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r IA5String) String() string { return string(r) }

// Len returns the number of bytes.
func (r IA5String) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r IA5String) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r IA5String) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets, rejecting
// any byte outside the IA5 alphabet.
func (r *IA5String) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagIA5String, t)
	if err != nil {
		return err
	}
	if !isIA5(string(data)) {
		return errStructureError("IA5String: byte outside the IA5 alphabet")
	}
	*r = IA5String(data)
	return nil
}
