package tagasn1

/*
us.go contains all types and methods pertaining to the ASN.1
UniversalString type. UniversalString carries one UCS-4 (32-bit, big-endian)
code unit per rune (X.680 §41.7); the in-memory representation is a
native Go string, converted to/from UCS-4 at the wire boundary.
*/

import "encoding/binary"

// UniversalString implements the UCS-4 ASN.1 UniversalString (tag 28).
type UniversalString string

// NewUniversalString returns a [UniversalString] wrapping s.
func NewUniversalString(s string) UniversalString { return UniversalString(s) }

// Tag returns [TagUniversalString].
func (r UniversalString) Tag() int { return TagUniversalString }

// IsPrimitive always returns true.
func (r UniversalString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r UniversalString) String() string { return string(r) }

// Len returns the number of runes.
func (r UniversalString) Len() int { return len([]rune(string(r))) }

// EncodeBER appends one big-endian UCS-4 code unit per rune to dst.
func (r UniversalString) EncodeBER(dst []byte) []byte {
	for _, c := range string(r) {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(c))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// EncodeDER is identical to EncodeBER.
func (r UniversalString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

/*
DecodeFrom populates the receiver from t's content octets: a sequence
of 4-byte big-endian UCS-4 code units.
*/
func (r *UniversalString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagUniversalString, t)
	if err != nil {
		return err
	}
	if len(data)%4 != 0 {
		return errStructureError("UniversalString: byte length not a multiple of 4")
	}

	runes := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		runes = append(runes, rune(binary.BigEndian.Uint32(data[i:i+4])))
	}
	*r = UniversalString(string(runes))
	return nil
}
