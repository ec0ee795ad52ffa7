package tagasn1

/*
bmp.go contains all types and methods pertaining to the ASN.1
BMPString type. BMPString carries one UCS-2 (16-bit, big-endian) code unit per
character, restricted to the Unicode Basic Multilingual Plane: no
surrogate pairs (X.680 §41.8). The in-memory representation is a
native Go string, converted to/from UCS-2 at the wire boundary.
*/

import "encoding/binary"

// BMPString implements the Basic Multilingual Plane string (tag 30).
type BMPString string

// NewBMPString returns a [BMPString] wrapping s, or an error if s
// contains a character outside the Basic Multilingual Plane.
func NewBMPString(s string) (BMPString, error) {
	for _, c := range s {
		if c > 0xFFFF {
			return "", errInvalidArgument("BMPString: character outside the Basic Multilingual Plane")
		}
	}
	return BMPString(s), nil
}

// Tag returns [TagBMPString].
func (r BMPString) Tag() int { return TagBMPString }

// IsPrimitive always returns true.
func (r BMPString) IsPrimitive() bool { return true }

// String returns the receiver as a native Go string.
func (r BMPString) String() string { return string(r) }

// Len returns the number of runes.
func (r BMPString) Len() int { return len([]rune(string(r))) }

// EncodeBER appends one big-endian UCS-2 code unit per rune to dst.
func (r BMPString) EncodeBER(dst []byte) []byte {
	for _, c := range string(r) {
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(c))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// EncodeDER is identical to EncodeBER.
func (r BMPString) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

/*
DecodeFrom populates the receiver from t's content octets: a sequence
of 2-byte big-endian UCS-2 code units. Surrogate code points (which
would require a pair to represent a single character) are rejected
since BMPString restricts itself to the plane that needs none.
*/
func (r *BMPString) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagBMPString, t)
	if err != nil {
		return err
	}
	if len(data)%2 != 0 {
		return errStructureError("BMPString: byte length not a multiple of 2")
	}

	runes := make([]rune, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		u := binary.BigEndian.Uint16(data[i : i+2])
		if u >= 0xD800 && u <= 0xDFFF {
			return errStructureError("BMPString: surrogate code unit is not a legal BMP character")
		}
		runes = append(runes, rune(u))
	}
	*r = BMPString(string(runes))
	return nil
}
