package tagasn1

/*
utf8.go contains all types and methods pertaining to the ASN.1
UTF8String type. Content is a UTF-8 encoded string; this package rejects
ill-formed UTF-8 rather than passing it through silently.
*/

import "unicode/utf8"

// UTF8String implements the ASN.1 UTF8String (tag 12).
type UTF8String string

// NewUTF8String returns a [UTF8String] wrapping s, or an error if s is
// not well-formed UTF-8.
func NewUTF8String(s string) (UTF8String, error) {
	if !utf8.ValidString(s) {
		return "", errInvalidArgument("UTF8String: input is not well-formed UTF-8")
	}
	return UTF8String(s), nil
}

// Tag returns [TagUTF8String].
func (r UTF8String) Tag() int { return TagUTF8String }

// IsPrimitive always returns true.
func (r UTF8String) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r UTF8String) String() string { return string(r) }

// Len returns the number of bytes.
func (r UTF8String) Len() int { return len(r) }

// EncodeBER appends the UTF-8 bytes to dst.
func (r UTF8String) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r UTF8String) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets, rejecting
// ill-formed UTF-8.
func (r *UTF8String) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagUTF8String, t)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return errStructureError("UTF8String: content is not well-formed UTF-8")
	}
	*r = UTF8String(data)
	return nil
}
