package tagasn1

/*
pdu.go contains the PDU payload abstraction. A single concrete buffer
type backs all three rules (BER, DL and DER differ only in which
encode/decode legality checks apply, not in storage shape), so the
per-rule constructor registry below builds the same type with a
different [Rule] tag rather than three distinct packet structs.
*/

import (
	"io"
	"strings"
	"sync"
)

/*
PDU implements an ASN.1 protocol data unit: a growable byte buffer with
a read cursor, used both to accumulate an encoding under construction
and to walk a decoded one TLV by TLV.
*/
type PDU interface {
	// ID returns a unique hexadecimal debugging identifier, or the
	// zero string if this package was not built with '-tags
	// tagasn1_debug'.
	ID() string

	// Type returns the encoding rule this PDU was built to honor.
	Type() Rule

	// Data returns the unabridged buffer contents.
	Data() []byte

	// Len returns the length of the underlying buffer.
	Len() int

	// Offset returns the current cursor position.
	Offset() int

	// SetOffset sets the cursor to the given position. Called with -1,
	// the cursor advances to the final byte; called with no argument,
	// it retreats to zero.
	SetOffset(...int)

	// AddOffset shifts the cursor by n, which may be negative.
	AddOffset(n int)

	// HasMoreData reports whether unread bytes remain past the cursor.
	HasMoreData() bool

	// Append adds zero or more bytes to the end of the buffer.
	Append(...byte)

	// TLV decodes the TLV at the cursor and advances past it.
	TLV() (TLV, error)

	// PeekTLV decodes the TLV at the cursor without advancing it.
	PeekTLV() (TLV, error)

	// WriteTLV appends the encoded form of t to the buffer.
	WriteTLV(TLV) error

	// Bytes returns the content octets of the TLV at the cursor.
	Bytes() ([]byte, error)

	// FullBytes returns the header-plus-content octets of the TLV at
	// the cursor.
	FullBytes() ([]byte, error)

	// Hex returns the hexadecimal rendering of the full buffer.
	Hex() string

	// Dump writes a recursive, indented hex listing of the buffer to w.
	// The variadic integer sets the hex-octets-per-line wrap width
	// (minimum 16, default 24).
	Dump(w io.Writer, wrapAt ...int) error

	// Free returns the receiver's backing storage to the shared pool.
	// The receiver must not be used afterward.
	Free()
}

/*
buffer is the concrete PDU implementation shared by all three rules.
*/
type buffer struct {
	rule Rule
	data []byte
	off  int
	id   string
}

/*
newPDU allocates a PDU of the given rule seeded with b.
*/
func newPDU(rule Rule, b ...byte) PDU {
	p := bufPool.Get().(*buffer)
	p.rule = rule
	p.data = append(p.data[:0], b...)
	p.off = 0
	p.id = makePacketID()
	debugPDU("newPDU", "rule", rule.String(), "id", p.id, "len", len(p.data))
	return p
}

var bufPool = sync.Pool{New: func() any { return &buffer{} }}

/*
pduConstructors maps each [Rule] to its PDU constructor. The init check
below guards against a rule being added to the Rule enum without a
matching constructor ever being registered.
*/
var pduConstructors = map[Rule]func(...byte) PDU{
	BER: func(b ...byte) PDU { return newPDU(BER, b...) },
	DL:  func(b ...byte) PDU { return newPDU(DL, b...) },
	DER: func(b ...byte) PDU { return newPDU(DER, b...) },
}

func init() {
	for _, r := range activeRules {
		if _, ok := pduConstructors[r]; !ok {
			panic("tagasn1: Rule " + r.String() + " has no registered PDU constructor")
		}
	}
}

// NewPDU constructs an empty or pre-seeded PDU under the given rule.
func NewPDU(rule Rule, b ...byte) PDU { return pduConstructors[rule](b...) }

func (p *buffer) ID() string   { return p.id }
func (p *buffer) Type() Rule   { return p.rule }
func (p *buffer) Data() []byte { return p.data }
func (p *buffer) Len() int     { return len(p.data) }
func (p *buffer) Offset() int  { return p.off }

func (p *buffer) SetOffset(off ...int) {
	switch {
	case len(off) == 0:
		p.off = 0
	case off[0] == -1:
		if p.Len() > 0 {
			p.off = p.Len() - 1
		} else {
			p.off = 0
		}
	case off[0] >= 0:
		p.off = off[0]
	}
}

func (p *buffer) AddOffset(n int) {
	next := p.off + n
	if next < 0 {
		next = 0
	}
	if next > p.Len() {
		next = p.Len()
	}
	p.off = next
}

func (p *buffer) HasMoreData() bool { return p.off < len(p.data) }

func (p *buffer) Append(b ...byte) { p.data = append(p.data, b...) }

func (p *buffer) TLV() (TLV, error) {
	t, consumed, err := decodeTLV(p.data, p.off, p.rule)
	if err != nil {
		return TLV{}, err
	}
	if t.Length == lengthIndefinite {
		consumed += 2
	}
	p.off += consumed
	return t, nil
}

func (p *buffer) PeekTLV() (TLV, error) {
	t, _, err := decodeTLV(p.data, p.off, p.rule)
	return t, err
}

func (p *buffer) WriteTLV(t TLV) error {
	if t.Rule == 0 {
		t.Rule = p.rule
	}
	p.data = encodeTLV(p.data, t)
	return nil
}

func (p *buffer) Bytes() ([]byte, error) {
	t, err := p.PeekTLV()
	if err != nil {
		return nil, err
	}
	return t.Value, nil
}

func (p *buffer) FullBytes() ([]byte, error) {
	_, consumed, err := decodeTLV(p.data, p.off, p.rule)
	if err != nil {
		return nil, err
	}
	return p.data[p.off : p.off+consumed], nil
}

func (p *buffer) Hex() string { return hexstr(p.data) }

func (p *buffer) Dump(w io.Writer, wrapAt ...int) error {
	width := 24
	if len(wrapAt) > 0 && wrapAt[0] > 15 {
		width = wrapAt[0]
	}
	return dumpLevel(w, p.rule, p.data, 0, width)
}

func (p *buffer) Free() {
	debugPDU("Free", "id", p.id)
	p.data = p.data[:0]
	p.off = 0
	p.id = ""
	bufPool.Put(p)
}

const hexDigits = "0123456789ABCDEF"

func hexstr(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, x := range b {
		sb.WriteByte(hexDigits[x>>4])
		sb.WriteByte(hexDigits[x&0xF])
	}
	return sb.String()
}
