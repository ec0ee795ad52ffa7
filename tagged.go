package tagasn1

/*
tagged.go contains all types and methods pertaining to [TaggedObject],
the explicit/implicit ASN.1 tagging wrapper of X.690 §8.14. Because
the same wire bytes mean different things under explicit and implicit
tagging, and only the surrounding schema knows which was intended, a
wire-decoded TaggedObject stays unresolved until the caller asserts
one or the other via LoadExplicit/LoadImplicit.
*/

import "hash/fnv"

/*
TaggedObject implements an ASN.1 value wrapped in a non-UNIVERSAL class
tag (CONTEXT, APPLICATION, or PRIVATE), per X.690 §8.14. A tagged object
decoded off the wire retains its raw content octets until a caller
resolves the ambiguity inherent in schema-free tagging by calling
[TaggedObject.LoadExplicit] or [TaggedObject.LoadImplicit]; one
constructed directly via [NewTaggedObject] already knows its inner
value and needs no such resolution step.
*/
type TaggedObject struct {
	class       Class
	number      int
	explicit    bool
	constructed bool
	inner       Primitive
	raw         []byte
	rule        Rule

	// wrapsFullTLV reports whether content, once re-derived from inner,
	// must be inner's complete TLV (tag+length+value) rather than just
	// inner's own content octets. This is almost always the same as
	// explicit, with one exception: LoadImplicit's schema-free fallback
	// for a baseTag it cannot structurally recurse into re-parses the
	// wrapper's content as one full nested TLV (the same shape
	// LoadExplicit expects), even though the resulting wrapper reports
	// Explicit() false.
	wrapsFullTLV bool
}

/*
NewTaggedObject constructs a tagged wrapper around inner. If inner
implements [Choosable] and reports true, explicit is forced to true:
ASN.1 forbids implicit tagging of a CHOICE alternative.
*/
func NewTaggedObject(class Class, number int, explicit bool, inner Primitive) (*TaggedObject, error) {
	if class == ClassUniversal {
		return nil, errInvalidArgument("tagged object class must not be UNIVERSAL")
	}
	if inner == nil {
		return nil, errInvalidArgument("tagged object inner value must not be nil")
	}
	if c, ok := inner.(Choosable); ok && c.Choosable() {
		explicit = true
	}
	return &TaggedObject{
		class:        class,
		number:       number,
		explicit:     explicit,
		constructed:  explicit || !inner.IsPrimitive(),
		inner:        inner,
		wrapsFullTLV: explicit,
	}, nil
}

/*
newRawTaggedObject wraps the content octets of a non-UNIVERSAL-class TLV
without interpreting them, for the schema-free decode path: the caller
resolves the wrapper later via LoadExplicit/LoadImplicit.
*/
func newRawTaggedObject(t TLV) *TaggedObject {
	r := &TaggedObject{}
	_ = r.DecodeFrom(t)
	return r
}

func newRawTaggedObjectFromWrapper(tag Tag, content []byte, rule Rule) *TaggedObject {
	return &TaggedObject{class: tag.Class, number: tag.Number, constructed: tag.Constructed, raw: content, rule: rule}
}

// Class returns the tag class of the receiver.
func (r *TaggedObject) Class() Class { return r.class }

// Number returns the tag number of the receiver.
func (r *TaggedObject) Number() int { return r.number }

// Explicit reports whether the receiver was built, or last resolved, as
// an explicit (as opposed to implicit) wrapper.
func (r *TaggedObject) Explicit() bool { return r.explicit }

// Inner returns the currently-resolved inner value, or nil if the
// receiver was decoded off the wire and has not yet been resolved via
// LoadExplicit or LoadImplicit.
func (r *TaggedObject) Inner() Primitive { return r.inner }

// Tag satisfies [Primitive]; it returns the receiver's tag number, not
// a UNIVERSAL tag (TaggedObject never wears UNIVERSAL class; see
// [TaggedObject.wireTag] for the identifier this type actually emits).
func (r *TaggedObject) Tag() int { return r.number }

// IsPrimitive reports whether the receiver's wire identifier carries
// the constructed bit clear.
func (r *TaggedObject) IsPrimitive() bool { return !r.constructed }

/*
String renders the receiver as "[" + tagPrefix + tagNo + "]" + inner,
where tagPrefix is "APPLICATION ", "CONTEXT ", or "PRIVATE ".
*/
func (r *TaggedObject) String() string {
	prefix := ""
	switch r.class {
	case ClassApplication:
		prefix = "APPLICATION "
	case ClassContext:
		prefix = "CONTEXT "
	case ClassPrivate:
		prefix = "PRIVATE "
	}
	inner := "<unresolved>"
	if r.inner != nil {
		inner = r.inner.String()
	}
	return "[" + prefix + itoa(r.number) + "]" + inner
}

// wireTag reports the identifier octets this wrapper carries on the wire.
func (r *TaggedObject) wireTag() Tag {
	return Tag{Class: r.class, Number: r.number, Constructed: r.constructed}
}

/*
EncodeBER and EncodeDER append the receiver's content octets (tag/length
excluded, per the [Primitive] contract). Once the wrapper has resolved
an inner value (via [NewTaggedObject] or a LoadExplicit/LoadImplicit
call), content is always re-derived from that inner value under rule:
the inner's full TLV when explicit (and for LoadImplicit's
single-nested-TLV fallback), or just its content octets when implicit. This re-derivation is what makes a value decoded from
non-canonical but rule-legal BER re-encode to canonical DER instead of
replaying stale wire bytes. Only a wrapper that has never been resolved
falls back to replaying its raw content octets verbatim.
*/
func (r *TaggedObject) EncodeBER(dst []byte) []byte { return r.encode(dst, BER) }
func (r *TaggedObject) EncodeDER(dst []byte) []byte { return r.encode(dst, DER) }

func (r *TaggedObject) encode(dst []byte, rule Rule) []byte {
	if r.inner == nil {
		return append(dst, r.raw...)
	}
	if r.wrapsFullTLV {
		return encodeChildTLV(dst, r.inner, rule)
	}
	return primitiveEncode(r.inner, rule, dst)
}

/*
DecodeFrom populates the receiver from t's content octets without
interpreting them: t must wear a non-UNIVERSAL class. Call
LoadExplicit or LoadImplicit afterward to resolve the inner value.
*/
func (r *TaggedObject) DecodeFrom(t TLV) error {
	if t.Tag.Class == ClassUniversal {
		return errStructureError("TaggedObject requires a non-UNIVERSAL class tag")
	}
	r.class = t.Tag.Class
	r.number = t.Tag.Number
	r.constructed = t.Tag.Constructed
	r.raw = t.Value
	r.rule = t.Rule
	r.inner = nil
	return nil
}

/*
LoadExplicit treats the receiver's content octets as a complete inner
TLV and materialises it. Fails [ErrStructureError] if the wrapper's
constructed bit is clear (explicit tagging always wraps a full TLV,
which requires a constructed outer encoding).
*/
func (r *TaggedObject) LoadExplicit() (Primitive, error) {
	if !r.constructed {
		return nil, errStructureError("explicit tagging requires a constructed wrapper")
	}
	t, _, err := decodeTLV(r.raw, 0, r.rule)
	if err != nil {
		return nil, err
	}
	inner, err := decodeUniversalValue(t)
	if err != nil {
		return nil, err
	}
	r.inner = inner
	r.explicit = true
	r.wrapsFullTLV = true
	return inner, nil
}

/*
LoadImplicit reinterprets the receiver's content octets as a value of
universal tag baseTag. isConstructed must match the wrapper's own wire
constructed bit (fails [ErrStructureError] otherwise).

For baseTag ∈ {SEQUENCE, SET, OCTET STRING} with isConstructed true, the
content is recursed into structurally (children decoded, or segments
reassembled). For any other baseTag with isConstructed true, the
content is decoded as a single nested TLV, the same mechanism
LoadExplicit uses. The parser cannot itself verify that the nested
TLV's own tag actually matches baseTag without a schema; this is a
deliberate schema-free limitation, not a bug. With isConstructed false,
the content octets are the value's raw content directly, redispatched
under a synthesised UNIVERSAL/baseTag identifier.
*/
func (r *TaggedObject) LoadImplicit(baseTag int, isConstructed bool) (Primitive, error) {
	if r.constructed != isConstructed {
		return nil, errStructureError("implicit tagging assertion does not match the wrapper's constructed bit")
	}

	var inner Primitive
	var err error
	wrapsFullTLV := false

	if isConstructed {
		switch baseTag {
		case TagSequence:
			seq := new(Sequence)
			err = seq.DecodeFrom(TLV{Tag: Tag{Class: ClassUniversal, Number: TagSequence, Constructed: true}, Length: len(r.raw), Value: r.raw, Rule: r.rule})
			inner = seq
		case TagSet:
			set := new(Set)
			err = set.DecodeFrom(TLV{Tag: Tag{Class: ClassUniversal, Number: TagSet, Constructed: true}, Length: len(r.raw), Value: r.raw, Rule: r.rule})
			inner = set
		case TagOctetString:
			os := new(OctetString)
			err = os.DecodeFrom(TLV{Tag: Tag{Class: ClassUniversal, Number: TagOctetString, Constructed: true}, Length: len(r.raw), Value: r.raw, Rule: r.rule})
			inner = os
		default:
			var t TLV
			t, _, err = decodeTLV(r.raw, 0, r.rule)
			if err == nil {
				inner, err = decodeUniversalValue(t)
			}
			wrapsFullTLV = true
		}
	} else {
		switch baseTag {
		case TagSequence, TagSet:
			err = errUnimplemented("implicit ", tagName(baseTag), " requires a constructed wrapper")
		default:
			inner, err = decodeUniversalValue(TLV{Tag: Tag{Class: ClassUniversal, Number: baseTag, Constructed: false}, Length: len(r.raw), Value: r.raw, Rule: r.rule})
		}
	}

	if err != nil {
		return nil, err
	}
	r.inner = inner
	r.explicit = false
	r.wrapsFullTLV = wrapsFullTLV
	return inner, nil
}

/*
Equal reports whether r and other carry the same class, tag number, and
explicit flag, and DER-equal inner values. Wrappers not yet resolved
(inner nil on either side) fall back to raw content-octet comparison.
*/
func (r *TaggedObject) Equal(other *TaggedObject) bool {
	if other == nil || r.class != other.class || r.number != other.number || r.explicit != other.explicit {
		return false
	}
	if r.inner == nil || other.inner == nil {
		return bytesEqual(r.raw, other.raw)
	}
	return bytesEqual(Marshal(r.inner, DER), Marshal(other.inner, DER))
}

/*
Hash mixes tagClass, tagNo, the explicit flag, and the inner's DER hash
into a single stable value.
*/
func (r *TaggedObject) Hash() uint64 {
	mark := uint64(0)
	if r.explicit {
		mark = 1
	}
	return (uint64(r.class) * 31) ^ uint64(r.number) ^ mark ^ primitiveHash(r.inner)
}

func primitiveHash(p Primitive) uint64 {
	if p == nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(Marshal(p, DER))
	return h.Sum64()
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

/*
NewConstructedTaggedObject builds a tagged node from already-decoded
constructed contents. If children has exactly one element and the
caller does not assert implicit-sequence semantics, the result is an
explicitly tagged wrapper around that single element; otherwise the
children are wrapped in a [Sequence] and the result is an implicitly
tagged wrapper around it. Class APPLICATION always routes to an
[ApplicationSpecific] node (APPLICATION-class constructed content is
always a raw container, never collapsed into the single-child
heuristic), preserving the same indefinite/definite shape.
*/
func NewConstructedTaggedObject(class Class, number int, indefinite, assertImplicitSequence bool, children []Primitive) (Primitive, error) {
	if class == ClassUniversal {
		return nil, errInvalidArgument("tagged object class must not be UNIVERSAL")
	}
	rule := DL
	if indefinite {
		rule = BER
	}

	if class == ClassApplication {
		return newApplicationSpecificFromChildren(number, children, rule), nil
	}

	if len(children) == 1 && !assertImplicitSequence {
		obj, err := NewTaggedObject(class, number, true, children[0])
		if err != nil {
			return nil, err
		}
		obj.rule = rule
		return obj, nil
	}

	seq := NewSequence(children...)
	obj, err := NewTaggedObject(class, number, false, seq)
	if err != nil {
		return nil, err
	}
	obj.rule = rule
	return obj, nil
}

/*
NewPrimitiveTaggedObject builds a tagged node from primitive contents:
content is wrapped as an implicit, definite-length tagged OCTET STRING,
or as an [ApplicationSpecific] raw primitive for class APPLICATION.
*/
func NewPrimitiveTaggedObject(class Class, number int, content []byte) (Primitive, error) {
	if class == ClassUniversal {
		return nil, errInvalidArgument("tagged object class must not be UNIVERSAL")
	}
	if class == ClassApplication {
		return newApplicationSpecific(number, false, content, DL), nil
	}
	os := OctetString(content)
	return NewTaggedObject(class, number, false, &os)
}
