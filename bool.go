package tagasn1

/*
bool.go contains all types and methods pertaining to the ASN.1
BOOLEAN type. DER requires the single content octet to be exactly 0x00 or
0xFF; BER tolerates any non-zero octet as true, but this package always
emits the canonical 0xFF for true under every rule.
*/

/*
Boolean implements the ASN.1 BOOLEAN type.
*/
type Boolean bool

// NewBoolean returns a [Boolean] wrapping x.
func NewBoolean(x bool) Boolean { return Boolean(x) }

// Tag returns [TagBoolean].
func (r Boolean) Tag() int { return TagBoolean }

// Bool returns the receiver as a native Go bool.
func (r Boolean) Bool() bool { return bool(r) }

// Byte renders the receiver as its single content octet.
func (r Boolean) Byte() byte {
	if r {
		return 0xFF
	}
	return 0x00
}

// String returns "TRUE" or "FALSE".
func (r Boolean) String() string {
	if r {
		return "TRUE"
	}
	return "FALSE"
}

// IsPrimitive always returns true.
func (r Boolean) IsPrimitive() bool { return true }

// EncodeBER appends the single content octet to dst.
func (r Boolean) EncodeBER(dst []byte) []byte { return append(dst, r.Byte()) }

// EncodeDER is identical to EncodeBER: this package always emits the
// canonical 0x00/0xFF octet regardless of rule.
func (r Boolean) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

/*
DecodeFrom populates the receiver from t's content octet. This package
requires exactly one content octet under every rule rather than
silently truncating a longer one.
*/
func (r *Boolean) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagBoolean, t)
	if err != nil {
		return err
	}
	if len(data) != 1 {
		return errExpect(ErrStructureError, "BOOLEAN length", 1, len(data))
	}
	if t.Rule.Canonical() && data[0] != 0x00 && data[0] != 0xFF {
		return errStructureError("DER BOOLEAN content must be 0x00 or 0xFF")
	}
	*r = Boolean(data[0] != 0x00)
	return nil
}
