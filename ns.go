package tagasn1

/*
ns.go contains all types and methods pertaining to the ASN.1
NumericString type. NumericString's alphabet is digits plus the space character
(X.680 §41.3).
*/

// NumericString implements the ASN.1 NumericString (tag 18).
type NumericString string

// NewNumericString returns a [NumericString] wrapping s, or an error
// if s contains a character outside digits and space.
func NewNumericString(s string) (NumericString, error) {
	if !isNumeric(s) {
		return "", errInvalidArgument("NumericString: character outside digits and space")
	}
	return NumericString(s), nil
}

// Tag returns [TagNumericString].
func (r NumericString) Tag() int { return TagNumericString }

// IsPrimitive always returns true.
func (r NumericString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r NumericString) String() string { return string(r) }

// Len returns the number of bytes.
func (r NumericString) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r NumericString) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r NumericString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets, rejecting
// any character outside digits and space.
func (r *NumericString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagNumericString, t)
	if err != nil {
		return err
	}
	if !isNumeric(string(data)) {
		return errStructureError("NumericString: character outside digits and space")
	}
	*r = NumericString(data)
	return nil
}
