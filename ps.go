package tagasn1

/*
ps.go contains all types and methods pertaining to the ASN.1
PrintableString type. PrintableString's alphabet is the Latin letters,
digits, space, and a fixed set of punctuation (X.680 §41.4).
*/

// PrintableString implements the ASN.1 PrintableString (tag 19).
type PrintableString string

// NewPrintableString returns a [PrintableString] wrapping s, or an
// error if s contains a character outside the PrintableString alphabet.
func NewPrintableString(s string) (PrintableString, error) {
	if !isPrintable(s) {
		return "", errInvalidArgument("PrintableString: character outside the PrintableString alphabet")
	}
	return PrintableString(s), nil
}

// Tag returns [TagPrintableString].
func (r PrintableString) Tag() int { return TagPrintableString }

// IsPrimitive always returns true.
func (r PrintableString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r PrintableString) String() string { return string(r) }

// Len returns the number of bytes.
func (r PrintableString) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r PrintableString) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r PrintableString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets, rejecting
// any character outside the PrintableString alphabet.
func (r *PrintableString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagPrintableString, t)
	if err != nil {
		return err
	}
	if !isPrintable(string(data)) {
		return errStructureError("PrintableString: character outside the PrintableString alphabet")
	}
	*r = PrintableString(data)
	return nil
}
