package tagasn1

/*
streamparser.go implements schema-free materialisation of a decoded TLV
into a concrete [Primitive] (decodeUniversalValue, decodeChildren, and
the universalConstructors registry), plus [StreamParser], a cursor over
a constructed value's content region that lets a caller walk children
one at a time instead of eagerly decoding the whole tree.

The registry follows the same pattern as pduConstructors in pdu.go: a
tag-keyed constructor table checked for completeness at init time, so a
newly added universal tag that is never wired to a constructor fails at
package load rather than at first decode.
*/

// universalConstructors maps a UNIVERSAL primitive tag number to a
// constructor for its concrete [Primitive] type. SEQUENCE, SET, and
// EXTERNAL are UNIVERSAL but constructed, and are special-cased in
// decodeUniversalValue rather than listed here.
var universalConstructors = map[int]func() Primitive{
	TagBoolean:         func() Primitive { return new(Boolean) },
	TagInteger:         func() Primitive { return new(Integer) },
	TagBitString:       func() Primitive { return new(BitString) },
	TagOctetString:     func() Primitive { return new(OctetString) },
	TagNull:            func() Primitive { return new(Null) },
	TagOID:             func() Primitive { return new(ObjectIdentifier) },
	TagRelativeOID:     func() Primitive { return new(RelativeOID) },
	TagEnumerated:      func() Primitive { return new(Enumerated) },
	TagUTF8String:      func() Primitive { return new(UTF8String) },
	TagNumericString:   func() Primitive { return new(NumericString) },
	TagPrintableString: func() Primitive { return new(PrintableString) },
	TagT61String:       func() Primitive { return new(T61String) },
	TagIA5String:       func() Primitive { return new(IA5String) },
	TagUTCTime:         func() Primitive { return new(UTCTime) },
	TagGeneralizedTime: func() Primitive { return new(GeneralizedTime) },
	TagGraphicString:   func() Primitive { return new(GraphicString) },
	TagVisibleString:   func() Primitive { return new(VisibleString) },
	TagGeneralString:   func() Primitive { return new(GeneralString) },
	TagUniversalString: func() Primitive { return new(UniversalString) },
	TagBMPString:       func() Primitive { return new(BMPString) },
}

func init() {
	for tag := range TagNames {
		switch tag {
		case TagSequence, TagSet, TagExternal:
			continue
		}
		if _, ok := universalConstructors[tag]; !ok {
			panic("tagasn1: universal tag " + itoa(tag) + " has no registered constructor")
		}
	}
}

/*
decodeUniversalValue materialises t into a concrete [Primitive] without
any schema: a UNIVERSAL primitive tag dispatches through
universalConstructors; UNIVERSAL SEQUENCE, SET, and EXTERNAL dispatch to
their dedicated composite types; class APPLICATION yields an
[ApplicationSpecific]; class CONTEXT or PRIVATE yields a raw,
unresolved [TaggedObject] awaiting [TaggedObject.LoadExplicit] or
[TaggedObject.LoadImplicit].
*/
func decodeUniversalValue(t TLV) (Primitive, error) {
	switch t.Tag.Class {
	case ClassUniversal:
		switch t.Tag.Number {
		case TagSequence:
			seq := new(Sequence)
			if err := seq.DecodeFrom(t); err != nil {
				return nil, err
			}
			return seq, nil
		case TagSet:
			set := new(Set)
			if err := set.DecodeFrom(t); err != nil {
				return nil, err
			}
			return set, nil
		case TagExternal:
			ext := new(External)
			if err := ext.DecodeFrom(t); err != nil {
				return nil, err
			}
			return ext, nil
		}
		ctor, ok := universalConstructors[t.Tag.Number]
		if !ok {
			return nil, errUnimplemented("no decoder registered for universal tag ", itoa(t.Tag.Number))
		}
		p := ctor()
		if err := p.DecodeFrom(t); err != nil {
			return nil, err
		}
		return p, nil
	case ClassApplication:
		a := new(ApplicationSpecific)
		if err := a.DecodeFrom(t); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return newRawTaggedObject(t), nil
	}
}

/*
decodeChildren walks content TLV by TLV, materialising each via
decodeUniversalValue. Used by [Sequence], [Set], and [External] to
decode their child vector, and by the eager top-level [Unmarshal] path.
*/
func decodeChildren(content []byte, rule Rule) ([]Primitive, error) {
	var out []Primitive
	offset := 0
	for offset < len(content) {
		t, consumed, err := decodeTLV(content, offset, rule)
		if err != nil {
			return nil, err
		}
		offset += consumed
		if t.Length == lengthIndefinite {
			offset += 2
		}
		p, err := decodeUniversalValue(t)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

/*
validateBudget walks b's TLV structure recursively, without
materialising any value, enforcing opts' MaxDepth/MaxLength budgets.
depth counts the receiver's own nesting level (0 for a top-level call).
*/
func validateBudget(b []byte, rule Rule, depth int, opts Options) error {
	if depth > opts.maxDepth() {
		return errLimitExceeded("maximum nesting depth exceeded")
	}
	offset := 0
	for offset < len(b) {
		t, consumed, err := decodeTLV(b, offset, rule)
		if err != nil {
			return err
		}
		offset += consumed
		if t.Length == lengthIndefinite {
			offset += 2
		}
		if len(t.Value) > opts.maxLength() {
			return errLimitExceeded("content length exceeds configured maximum")
		}
		if t.Tag.Constructed {
			if err := validateBudget(t.Value, rule, depth+1, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

/*
UnmarshalWithOptions behaves like [Unmarshal], but first walks the
complete nested structure enforcing opts' MaxDepth/MaxLength budgets,
failing with [ErrLimitExceeded] before materialising anything on an
over-budget input. This is a small, separate pass rather than
threading Options through every DecodeFrom, since [Primitive]'s
DecodeFrom contract takes only a TLV.
*/
func UnmarshalWithOptions(b []byte, rule Rule, opts Options) (Primitive, error) {
	if err := validateBudget(b, rule, 0, opts); err != nil {
		return nil, err
	}
	return Unmarshal(b, rule)
}

type spState int

const (
	spFresh spState = iota
	spExhausted
)

/*
StreamParser is a cursor over one constructed value's content region.
The root parser is built over a whole BER/DL/DER octet stream;
[StreamParser.ReadObject] hands back either a fully materialised leaf
[Primitive], or, for a constructed child, a new StreamParser scoped
to that child's content, which the caller must drain (or at least
exhaust) by reading its children with [StreamParser.ReadObject] or via
[StreamParser.ReadTaggedObject] or [StreamParser.ReadImplicit] before the parent parser accepts another
read. This mirrors the nesting discipline of a hand-rolled streaming
parser: a parent cannot skip past a child it has not finished with.
*/
type StreamParser struct {
	data       []byte
	off        int
	rule       Rule
	state      spState
	child      *StreamParser
	wrapperTag Tag
	hasWrapper bool
}

// NewStreamParser returns a [StreamParser] positioned at the start of data.
func NewStreamParser(data []byte, rule Rule) *StreamParser {
	return &StreamParser{data: data, rule: rule}
}

func (p *StreamParser) ready() error {
	if p.child != nil && p.child.state != spExhausted {
		return errChildActive("parser is blocked on an unread child sub-parser")
	}
	if p.state == spExhausted {
		return errStreamExhausted("stream parser is exhausted")
	}
	return nil
}

// HasMore reports whether unread bytes remain in the receiver's scope.
func (p *StreamParser) HasMore() bool { return p.state != spExhausted && p.off < len(p.data) }

func (p *StreamParser) markIfDone() {
	if p.off >= len(p.data) {
		p.state = spExhausted
	}
}

/*
ReadObject reads the next TLV in the receiver's scope. A primitive TLV
is fully materialised and returned directly (for a non-UNIVERSAL class,
this is an unresolved [TaggedObject]: there is nothing further to
enter, so the caller resolves it directly via LoadExplicit/LoadImplicit
rather than through a sub-parser). A constructed TLV instead yields a
sub-parser bound to its content region; the parent blocks further reads
until that sub-parser reaches EXHAUSTED.
*/
func (p *StreamParser) ReadObject() (prim Primitive, sub *StreamParser, err error) {
	debugEnter("ReadObject", "off", p.off, "state", itoa(int(p.state)))
	defer func() { debugExit("ReadObject", "err", err) }()

	if err = p.ready(); err != nil {
		return nil, nil, err
	}
	if p.off >= len(p.data) {
		p.state = spExhausted
		return nil, nil, errStreamExhausted("no more data in stream")
	}

	t, consumed, err := decodeTLV(p.data, p.off, p.rule)
	if err != nil {
		return nil, nil, err
	}
	p.off += consumed
	if t.Length == lengthIndefinite {
		p.off += 2
	}
	p.markIfDone()

	if !t.Tag.Constructed {
		prim, err = decodeUniversalValue(t)
		return prim, nil, err
	}

	sub = &StreamParser{data: t.Value, rule: p.rule, wrapperTag: t.Tag, hasWrapper: true}
	p.child = sub
	return nil, sub, nil
}

/*
ReadTaggedObject materialises the already-entered tagged TLV (the
receiver must be a sub-parser returned by a parent's ReadObject for a
constructed TLV) as an explicitly tagged [TaggedObject]. class, number,
and constructed must match the wrapper the parent already observed;
this is the caller's assertion of the schema it expects, validated
against the wire rather than trusted blindly.
*/
func (p *StreamParser) ReadTaggedObject(class Class, number int, constructed bool) (obj *TaggedObject, err error) {
	debugEnter("ReadTaggedObject", "class", class.String(), "number", number)
	defer func() { debugExit("ReadTaggedObject", "err", err) }()

	if !p.hasWrapper {
		return nil, errStructureError("ReadTaggedObject requires a sub-parser entered from a constructed TLV")
	}
	if p.state == spExhausted {
		return nil, errStreamExhausted("sub-parser already exhausted")
	}
	if p.wrapperTag.Class != class || p.wrapperTag.Number != number || p.wrapperTag.Constructed != constructed {
		return nil, errStructureError("ReadTaggedObject assertion does not match the entered wrapper")
	}

	obj = newRawTaggedObjectFromWrapper(p.wrapperTag, p.data, p.rule)
	if _, err = obj.LoadExplicit(); err != nil {
		return nil, err
	}
	p.off = len(p.data)
	p.state = spExhausted
	return obj, nil
}

/*
ReadImplicit reinterprets the already-entered wrapper's content as a
value of universal tag baseTag. Only baseTag ∈ {SEQUENCE, SET, OCTET
STRING} are supported here, the structural cases this parser knows how
to recurse into or reassemble; any other baseTag fails
[ErrUnimplemented], since the wrapper's own tag gives no reliable
schema-free signal of what else might be meant (use
[TaggedObject.LoadImplicit] directly, outside the stream parser, for
the permissive single-nested-TLV fallback it offers for other cases).
*/
func (p *StreamParser) ReadImplicit(isConstructed bool, baseTag int) (inner Primitive, err error) {
	debugEnter("ReadImplicit", "baseTag", tagName(baseTag), "constructed", boolStr(isConstructed))
	defer func() { debugExit("ReadImplicit", "err", err) }()

	if !p.hasWrapper {
		return nil, errStructureError("ReadImplicit requires a sub-parser entered from a constructed TLV")
	}
	if p.state == spExhausted {
		return nil, errStreamExhausted("sub-parser already exhausted")
	}
	switch baseTag {
	case TagSequence, TagSet, TagOctetString:
	default:
		return nil, errUnimplemented("stream parser cannot implicitly reinterpret ", tagName(baseTag))
	}

	obj := newRawTaggedObjectFromWrapper(p.wrapperTag, p.data, p.rule)
	inner, err = obj.LoadImplicit(baseTag, isConstructed)
	if err != nil {
		return nil, err
	}
	p.off = len(p.data)
	p.state = spExhausted
	return inner, nil
}
