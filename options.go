package tagasn1

/*
options.go contains the per-call encoding/decoding configuration
surface. There is no ASN.1 module here for a struct tag to reference,
so Options is a plain value callers build and pass explicitly to
override tagging and to bound recursive parsing.
*/

/*
Options carries per-call overrides for tagging and structural limits.
The zero value is the identity: no tag/class override, no explicit
wrapping, and the package defaults for MaxDepth/MaxLength.
*/
type Options struct {
	// Tag, when non-nil, overrides the tag number an operation would
	// otherwise use.
	Tag *int

	// Class, when non-nil, overrides the tag class an operation would
	// otherwise use.
	Class *Class

	// Explicit requests an explicit (constructed, outer-tag-wraps-inner-TLV)
	// tagging rather than implicit (tag-substitution) tagging.
	Explicit bool

	// Indefinite requests an indefinite-length constructed encoding.
	// Only meaningful under [BER]; encoders reject it under DL/DER.
	Indefinite bool

	// MaxDepth bounds recursive descent into nested constructed values.
	// Zero means [DefaultMaxDepth].
	MaxDepth int

	// MaxLength bounds the content-octet length accepted for a single
	// TLV. Zero means [DefaultMaxLength].
	MaxLength int
}

// DefaultMaxDepth is the nesting limit applied when Options.MaxDepth is 0.
const DefaultMaxDepth = 64

// DefaultMaxLength is the per-TLV content-length limit applied when
// Options.MaxLength is 0.
const DefaultMaxLength = 1 << 24

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

func (o Options) maxLength() int {
	if o.MaxLength > 0 {
		return o.MaxLength
	}
	return DefaultMaxLength
}

func (o Options) class(fallback Class) Class {
	if o.Class != nil {
		return *o.Class
	}
	return fallback
}

func (o Options) tag(fallback int) int {
	if o.Tag != nil {
		return *o.Tag
	}
	return fallback
}

/*
DefaultEncoding names a default [Rule] for callers to pass where they
have no rule of their own; no function in this package reads it.
*/
var DefaultEncoding = DER

/*
activeRules lists the encoding rules this build supports, consulted by
[MarshalWithOptions] (via ruleActive) and by the PDU constructor-registry
sanity check in pdu.go.
*/
var activeRules = []Rule{BER, DL, DER}

// Option mutates an [Options] value; With composes zero or more of them.
type Option func(*Options)

// WithTag overrides the tag number used for one call.
func WithTag(n int) Option { return func(o *Options) { o.Tag = &n } }

// WithClass overrides the tag class used for one call.
func WithClass(c Class) Option { return func(o *Options) { o.Class = &c } }

// WithExplicit requests explicit tagging.
func WithExplicit() Option { return func(o *Options) { o.Explicit = true } }

// WithIndefinite requests an indefinite-length encoding (BER only).
func WithIndefinite() Option { return func(o *Options) { o.Indefinite = true } }

// WithMaxDepth overrides the recursion budget.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithMaxLength overrides the per-TLV content-length budget.
func WithMaxLength(n int) Option { return func(o *Options) { o.MaxLength = n } }

// With composes a sequence of [Option] values into an [Options] value.
func With(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

/*
MarshalWithOptions serialises p as a complete TLV under rule, applying
the tag/class/explicit/indefinite overlay carried in opts. This is the
per-call counterpart to [Marshal]: a caller threading a CLI flag or a
schema annotation through to the wire, say, can request a non-UNIVERSAL
wrapper or an indefinite-length encoding without first constructing a
[TaggedObject] by hand.

rule must be one of [activeRules]; opts.Indefinite additionally requires
rule.AllowsIndefinite() and a constructed target.
*/
func MarshalWithOptions(p Primitive, rule Rule, opts Options) ([]byte, error) {
	if !ruleActive(rule) {
		return nil, errInvalidArgument("unsupported encoding rule ", rule.String())
	}

	target := p
	if opts.Tag != nil || opts.Class != nil {
		class := opts.class(ClassContext)
		tag := opts.tag(p.Tag())
		wrapped, err := NewTaggedObject(class, tag, opts.Explicit, p)
		if err != nil {
			return nil, err
		}
		target = wrapped
	}

	if !opts.Indefinite {
		return encodeChildTLV(nil, target, rule), nil
	}

	if !rule.AllowsIndefinite() {
		return nil, errInvalidArgument(rule.String(), " forbids indefinite length")
	}
	wt := wireTag(target)
	if !wt.Constructed {
		return nil, errInvalidArgument("indefinite length requires a constructed target")
	}
	content := primitiveEncode(target, rule, nil)
	dst := encodeTag(nil, wt)
	dst = append(dst, 0x80)
	dst = append(dst, content...)
	return append(dst, 0x00, 0x00), nil
}

// ruleActive reports whether rule is one of [activeRules], the set of
// encoding rules this build recognizes.
func ruleActive(rule Rule) bool {
	for _, r := range activeRules {
		if r == rule {
			return true
		}
	}
	return false
}
