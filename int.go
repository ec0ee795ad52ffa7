package tagasn1

/*
int.go contains all types and methods pertaining to the ASN.1
INTEGER type. big.Int backs the value only when it overflows int64;
encodeNativeInt is the allocation-light fast path for values that fit.
*/

import "math/big"

/*
Integer implements the unbounded ASN.1 INTEGER type (tag 2). A big.Int
backs the value only when it overflows int64; the zero value equates
to int64(0).
*/
type Integer struct {
	big    bool
	native int64
	bigInt *big.Int
}

// NewInteger returns an [Integer] wrapping x, which may be an int,
// int64, or *big.Int.
func NewInteger(x any) Integer {
	switch v := x.(type) {
	case int:
		return Integer{native: int64(v)}
	case int64:
		return Integer{native: v}
	case *big.Int:
		if v.IsInt64() {
			return Integer{native: v.Int64()}
		}
		return Integer{big: true, bigInt: new(big.Int).Set(v)}
	case big.Int:
		return NewInteger(&v)
	default:
		return Integer{}
	}
}

// Tag returns [TagInteger].
func (r Integer) Tag() int { return TagInteger }

// IsPrimitive always returns true.
func (r Integer) IsPrimitive() bool { return true }

// Big returns the receiver's value as a *big.Int.
func (r Integer) Big() *big.Int {
	if r.big {
		return new(big.Int).Set(r.bigInt)
	}
	return big.NewInt(r.native)
}

// Int64 returns the receiver's value as an int64, alongside a bool
// reporting whether the value fit without truncation.
func (r Integer) Int64() (int64, bool) {
	if !r.big {
		return r.native, true
	}
	return 0, false
}

// String returns the decimal rendering of the receiver.
func (r Integer) String() string {
	if r.big {
		return r.bigInt.String()
	}
	return itoa64(r.native)
}

// EncodeBER appends the minimal two's-complement content octets to dst.
// BER and DER share the same INTEGER encoding; there is no non-minimal
// BER form this package produces.
func (r Integer) EncodeBER(dst []byte) []byte {
	if !r.big {
		return append(dst, encodeNativeInt(r.native)...)
	}
	return append(dst, encodeIntegerContent(r.bigInt)...)
}

// EncodeDER is identical to EncodeBER.
func (r Integer) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

/*
DecodeFrom populates the receiver from t's content octets. DER requires
the minimal two's-complement form (X.690 §8.3.2); this package enforces
that requirement under [Rule.Canonical] and otherwise accepts any
non-empty two's-complement encoding.
*/
func (r *Integer) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagInteger, t)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errStructureError("empty INTEGER content")
	}
	if t.Rule.Canonical() {
		if len(data) > 1 && ((data[0] == 0x00 && data[1]&0x80 == 0) || (data[0] == 0xFF && data[1]&0x80 != 0)) {
			return errStructureError("DER INTEGER is not minimally encoded")
		}
	}

	big := decodeIntegerContent(data)
	if big.IsInt64() {
		*r = Integer{native: big.Int64()}
	} else {
		*r = Integer{big: true, bigInt: big}
	}
	return nil
}

const zeroByte = 0x00

/*
decodeIntegerContent interprets encoded as a big-endian two's-complement
integer.
*/
func decodeIntegerContent(encoded []byte) *big.Int {
	val := new(big.Int).SetBytes(encoded)
	if len(encoded) > 0 && encoded[0]&0x80 != 0 {
		bitLen := uint(len(encoded) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val
}

/*
encodeIntegerContent renders i as its minimal big-endian two's-complement
form.
*/
func encodeIntegerContent(i *big.Int) []byte {
	if i.Sign() >= 0 {
		b := i.Bytes()
		if len(b) == 0 {
			b = []byte{zeroByte}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{zeroByte}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	value := new(big.Int).Add(mod, i)
	return value.Bytes()
}

/*
encodeNativeInt returns the minimal two's-complement encoding of value
without promoting to big.Int.
*/
func encodeNativeInt(value int64) []byte {
	if value == 0 {
		return []byte{zeroByte}
	}

	v := value
	negative := value < 0
	var raw []byte

	for {
		b := byte(v & 0xff)
		raw = append([]byte{b}, raw...)
		v >>= 8

		if !negative {
			if v == 0 && b&0x80 == 0 {
				break
			}
		} else {
			if v == -1 && b&0x80 != 0 {
				break
			}
		}
	}

	return raw
}
