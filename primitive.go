package tagasn1

/*
primitive.go defines the schema-free Primitive contract shared by every
value type in the primitive library (Boolean, Integer, BitString, …).
There is no reflect-driven read/write pair wired to a struct-tag parser:
callers drive encode/decode explicitly, so the contract exposes plain
EncodeBER/EncodeDER/DecodeFrom methods.
*/

/*
Primitive is implemented by every concrete ASN.1 value type in this
package's primitive library: [Boolean], [Integer], [BitString],
[OctetString], [Null], [ObjectIdentifier], [RelativeOID], [Enumerated],
the string types, and the time types.
*/
type Primitive interface {
	// Tag returns the UNIVERSAL tag number this type natively wears.
	Tag() int

	// String returns a human-readable rendering of the value.
	String() string

	// IsPrimitive reports whether the type's native encoding is
	// primitive (true) or constructed (false, e.g. [Sequence], [Set],
	// [External] and a constructed [TaggedObject]).
	IsPrimitive() bool

	// EncodeBER appends the BER content octets (tag/length excluded)
	// of the receiver to dst.
	EncodeBER(dst []byte) []byte

	// EncodeDER appends the DER canonical content octets of the
	// receiver to dst.
	EncodeDER(dst []byte) []byte

	// DecodeFrom populates the receiver from the content octets of t.
	// The receiver must be addressable (a pointer method set).
	DecodeFrom(t TLV) error
}

/*
Choosable is implemented by Primitive types that may additionally serve
as one arm of an ASN.1 CHOICE. This package carries no CHOICE registry
(schema-driven decoding is out of scope); the capability is consulted in
exactly one place, [NewTaggedObject]'s forced-explicit rule (ASN.1
forbids implicit tagging of a CHOICE), and is otherwise for callers
composing their own CHOICE logic outside this package.
*/
type Choosable interface {
	Choosable() bool
}

/*
primitiveEncode renders a value's content octets under rule. DL content
is rendered the same way BER content is: DL is BER restricted to
definite lengths, and content octets are always rendered with definite
lengths and without segmentation (only the decode path accepts
indefinite-length or segmented content; [MarshalWithOptions] can put an
indefinite-length header around the outermost value under BER), so no
type needs a distinct EncodeDL of its own. [ToDER] and
[ToDL] build their variant-normalised instances on top of this
dispatch.
*/
func primitiveEncode(p Primitive, rule Rule, dst []byte) []byte {
	if rule == DER {
		return p.EncodeDER(dst)
	}
	return p.EncodeBER(dst)
}

/*
ToDER re-encodes p under DER and materialises the result: the canonical
form of the same abstract value. A value decoded from permissive BER
input comes back normalised (minimal INTEGER, sorted SET, collapsed
segments); a value already canonical comes back [Equal] to itself.
*/
func ToDER(p Primitive) (Primitive, error) {
	return Unmarshal(Marshal(p, DER), DER)
}

/*
ToDL re-encodes p under DL and materialises the result: definite
lengths throughout and segmented strings collapsed, with no further
canonicalisation imposed.
*/
func ToDL(p Primitive) (Primitive, error) {
	return Unmarshal(Marshal(p, DL), DL)
}

/*
Equal reports whether a and b carry the same abstract value, defined as
byte-equality of their DER encodings. Identical references and nil
arguments short-circuit without serialising.
*/
func Equal(a, b Primitive) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return bytesEqual(Marshal(a, DER), Marshal(b, DER))
}

/*
Hash returns a stable 64-bit digest of p's DER encoding. Two values
that are [Equal] hash identically, so the pair is fit for map keying
and dedupe.
*/
func Hash(p Primitive) uint64 { return primitiveHash(p) }

/*
checkExplicitContent re-parses the content octets of an explicit
wrapper TLV (tlv.Value is itself one complete inner TLV) and returns
the inner TLV's trimmed value octets.
*/
func checkExplicitContent(tlv TLV, rule Rule) ([]byte, error) {
	if !tlv.Tag.Constructed {
		return nil, errStructureError("explicit tagging requires a constructed outer TLV")
	}
	inner, _, err := decodeTLV(tlv.Value, 0, rule)
	if err != nil {
		return nil, err
	}
	return inner.Value, nil
}

/*
checkImplicitContent validates that tlv wears the native universal tag
for wantTag (no class/tag overlay in play) and returns its content
octets, trimmed to the declared length.
*/
func checkImplicitContent(wantTag int, tlv TLV) ([]byte, error) {
	if tlv.Tag.Class != ClassUniversal || tlv.Tag.Number != wantTag {
		return nil, errStructureError("expected ", tagName(wantTag), " header, got ", tlv.Tag.Class.String(), " ", itoa(tlv.Tag.Number))
	}
	return tlv.Value, nil
}

/*
wireTag computes the identifier-octet [Tag] a value wears when encoded
as a child of a composite container (SEQUENCE, SET, EXTERNAL): its own
UNIVERSAL tag and constructed bit by default, or whatever a type that
wears a non-universal identifier (TaggedObject, ApplicationSpecific)
reports via its own unexported wireTag method.
*/
func wireTag(p Primitive) Tag {
	if t, ok := p.(interface{ wireTag() Tag }); ok {
		return t.wireTag()
	}
	return Tag{Class: ClassUniversal, Number: p.Tag(), Constructed: !p.IsPrimitive()}
}

/*
encodeChildTLV appends the full TLV (identifier octets, length octets,
and content octets) of p under rule to dst. This is the shape every
composite container lays its children out in, and the shape a
top-level [Marshal] call produces for a standalone value.
*/
func encodeChildTLV(dst []byte, p Primitive, rule Rule) []byte {
	content := primitiveEncode(p, rule, nil)
	return encodeTLV(dst, TLV{Tag: wireTag(p), Length: len(content), Value: content, Rule: rule})
}

/*
Marshal serialises p as a complete TLV under the given rule. This is
entrypoint (b) of the package's external interface: construct a
primitive, serialise it to octets.
*/
func Marshal(p Primitive, rule Rule) []byte {
	return encodeChildTLV(nil, p, rule)
}

/*
Unmarshal reads one complete TLV from b under the given rule and
materialises it into a concrete [Primitive]: a leaf type for a
UNIVERSAL primitive tag, a [Sequence]/[Set]/[External] for the
corresponding UNIVERSAL constructed tag, an [ApplicationSpecific] for
class APPLICATION, or a raw (content-only, schema-free) [TaggedObject]
for class CONTEXT/PRIVATE awaiting [TaggedObject.LoadExplicit] or
[TaggedObject.LoadImplicit]. This is entrypoint (a) of the package's
external interface: parse an octet stream into a primitive root.
*/
func Unmarshal(b []byte, rule Rule) (Primitive, error) {
	t, _, err := decodeTLV(b, 0, rule)
	if err != nil {
		return nil, err
	}
	return decodeUniversalValue(t)
}
