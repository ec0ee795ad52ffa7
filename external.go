package tagasn1

/*
external.go contains all types and methods pertaining to the ASN.1
EXTERNAL type (tag 8), per X.690 §8.18 and X.680 §37: an optional
direct-reference OID, an optional indirect-reference INTEGER, an
optional data-value-descriptor, and a mandatory tagged final field
whose tag number (0, 1 or 2) names the content's encoding. The
mandatory final field reuses [TaggedObject]'s explicit-wrapping
mechanics directly.
*/

// External implements the ASN.1 EXTERNAL type: a value tagged with one
// of three encodings (single-ASN1-type, octet-aligned, arbitrary),
// optionally accompanied by a type reference and/or a human-readable
// descriptor.
type External struct {
	DirectReference     *ObjectIdentifier
	IndirectReference   *Integer
	DataValueDescriptor Primitive
	Encoding            int
	ExternalContent     Primitive
}

// NewExternal constructs an [External]. encoding must be 0 (single
// ASN.1 type), 1 (octet-aligned), or 2 (arbitrary); content must not be
// nil.
func NewExternal(directRef *ObjectIdentifier, indirectRef *Integer, dvd Primitive, encoding int, content Primitive) (*External, error) {
	if encoding < 0 || encoding > 2 {
		return nil, errInvalidArgument("EXTERNAL encoding must be 0, 1, or 2")
	}
	if content == nil {
		return nil, errInvalidArgument("EXTERNAL externalContent must not be nil")
	}
	return &External{
		DirectReference:     directRef,
		IndirectReference:   indirectRef,
		DataValueDescriptor: dvd,
		Encoding:            encoding,
		ExternalContent:     content,
	}, nil
}

// Tag returns [TagExternal].
func (e *External) Tag() int { return TagExternal }

// IsPrimitive always returns false: EXTERNAL is constructed.
func (e *External) IsPrimitive() bool { return false }

// String renders the receiver's field vector.
func (e *External) String() string {
	out := "EXTERNAL {"
	first := true
	put := func(s string) {
		if !first {
			out += ", "
		}
		out += s
		first = false
	}
	if e.DirectReference != nil {
		put(e.DirectReference.String())
	}
	if e.IndirectReference != nil {
		put(e.IndirectReference.String())
	}
	if e.DataValueDescriptor != nil {
		put(e.DataValueDescriptor.String())
	}
	if e.ExternalContent != nil {
		put(itoa(e.Encoding) + ": " + e.ExternalContent.String())
	}
	return out + "}"
}

/*
EncodeBER and EncodeDER render the optional fields in order, terminating
in the mandatory final element: externalContent explicitly tagged with
CONTEXT class and tag number Encoding.
*/
func (e *External) EncodeBER(dst []byte) []byte { return e.encode(dst, BER) }
func (e *External) EncodeDER(dst []byte) []byte { return e.encode(dst, DER) }

func (e *External) encode(dst []byte, rule Rule) []byte {
	if e.DirectReference != nil {
		dst = encodeChildTLV(dst, e.DirectReference, rule)
	}
	if e.IndirectReference != nil {
		dst = encodeChildTLV(dst, e.IndirectReference, rule)
	}
	if e.DataValueDescriptor != nil {
		dst = encodeChildTLV(dst, e.DataValueDescriptor, rule)
	}
	wrapper, err := NewTaggedObject(ClassContext, e.Encoding, true, e.ExternalContent)
	if err != nil {
		// Encoding and ExternalContent are validated at construction
		// and decode time; this path is unreachable in practice.
		return dst
	}
	return encodeChildTLV(dst, wrapper, rule)
}

/*
DecodeFrom populates the receiver from t's child vector: an optional
leading OBJECT IDENTIFIER (directReference), an optional INTEGER
(indirectReference), an optional non-TAGGED primitive
(dataValueDescriptor), and a mandatory final TAGGED primitive whose tag
number (0, 1, or 2) names the encoding and whose explicit inner value
is externalContent. Any element after the mandatory final one is
rejected.
*/
func (e *External) DecodeFrom(t TLV) error {
	if t.Tag.Class != ClassUniversal || t.Tag.Number != TagExternal {
		return errStructureError("expected EXTERNAL header, got ", t.Tag.Class.String(), " ", itoa(t.Tag.Number))
	}
	if !t.Tag.Constructed {
		return errStructureError("EXTERNAL must be constructed")
	}

	children, err := decodeChildren(t.Value, t.Rule)
	if err != nil {
		return err
	}

	idx := 0
	var directRef *ObjectIdentifier
	var indirectRef *Integer
	var dvd Primitive

	if idx < len(children) {
		if oid, ok := children[idx].(*ObjectIdentifier); ok {
			directRef = oid
			idx++
		}
	}
	if idx < len(children) {
		if n, ok := children[idx].(*Integer); ok {
			indirectRef = n
			idx++
		}
	}
	if idx < len(children) {
		if _, tagged := children[idx].(*TaggedObject); !tagged {
			dvd = children[idx]
			idx++
		}
	}
	if idx >= len(children) {
		return errStructureError("EXTERNAL is missing its mandatory tagged externalContent")
	}

	final, ok := children[idx].(*TaggedObject)
	if !ok {
		return errStructureError("EXTERNAL final element must be a tagged value")
	}
	idx++
	if idx != len(children) {
		return errStructureError("EXTERNAL has unexpected elements after externalContent")
	}
	if final.number < 0 || final.number > 2 {
		return errStructureError("EXTERNAL encoding tag out of range 0..2, got ", itoa(final.number))
	}

	inner, err := final.LoadExplicit()
	if err != nil {
		return err
	}

	e.DirectReference = directRef
	e.IndirectReference = indirectRef
	e.DataValueDescriptor = dvd
	e.Encoding = final.number
	e.ExternalContent = inner
	return nil
}

/*
Equal compares all four fields pointwise. DirectReference and
IndirectReference compare by DER bytes when both sides are present;
nil on either side requires nil on both. DataValueDescriptor and
ExternalContent compare the same way.
*/
func (e *External) Equal(other *External) bool {
	if other == nil || e.Encoding != other.Encoding {
		return false
	}
	return primitivePairEqual(e.DirectReference, other.DirectReference) &&
		primitivePairEqual(e.IndirectReference, other.IndirectReference) &&
		primitivePairEqual(e.DataValueDescriptor, other.DataValueDescriptor) &&
		primitivePairEqual(e.ExternalContent, other.ExternalContent)
}

// primitivePairEqual compares two possibly-nil Primitive values
// (concrete pointer types included, via the nil interface check) by
// their DER encoding.
func primitivePairEqual(a, b Primitive) bool {
	an, bn := isNilPrimitive(a), isNilPrimitive(b)
	if an != bn {
		return false
	}
	if an {
		return true
	}
	return bytesEqual(Marshal(a, DER), Marshal(b, DER))
}

func isNilPrimitive(p Primitive) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *ObjectIdentifier:
		return v == nil
	case *Integer:
		return v == nil
	default:
		return false
	}
}
