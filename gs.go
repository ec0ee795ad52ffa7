package tagasn1

/*
gs.go contains all types and methods pertaining to the ASN.1
GraphicString and GeneralString types. Both are, like [T61String], legacy
repertoires this package does not attempt to validate: their character
sets predate Unicode and real-world producers routinely emit content
that does not cleanly fit the nominal alphabet.
*/

/*
Deprecated: GraphicString implements the ASN.1 GraphicString (tag 25).
Prefer [UTF8String] in modern systems.
*/
type GraphicString string

// NewGraphicString returns a [GraphicString] wrapping s.
func NewGraphicString(s string) GraphicString { return GraphicString(s) }

// Tag returns [TagGraphicString].
func (r GraphicString) Tag() int { return TagGraphicString }

// IsPrimitive always returns true.
func (r GraphicString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r GraphicString) String() string { return string(r) }

// Len returns the number of bytes.
func (r GraphicString) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r GraphicString) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r GraphicString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets.
func (r *GraphicString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagGraphicString, t)
	if err != nil {
		return err
	}
	*r = GraphicString(data)
	return nil
}

/*
Deprecated: GeneralString implements the ASN.1 GeneralString (tag 27).
Prefer [UTF8String] in modern systems.
*/
type GeneralString string

// NewGeneralString returns a [GeneralString] wrapping s.
func NewGeneralString(s string) GeneralString { return GeneralString(s) }

// Tag returns [TagGeneralString].
func (r GeneralString) Tag() int { return TagGeneralString }

// IsPrimitive always returns true.
func (r GeneralString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r GeneralString) String() string { return string(r) }

// Len returns the number of bytes.
func (r GeneralString) Len() int { return len(r) }

// EncodeBER appends the raw bytes to dst.
func (r GeneralString) EncodeBER(dst []byte) []byte { return append(dst, r...) }

// EncodeDER is identical to EncodeBER.
func (r GeneralString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom populates the receiver from t's content octets.
func (r *GeneralString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagGeneralString, t)
	if err != nil {
		return err
	}
	*r = GeneralString(data)
	return nil
}
