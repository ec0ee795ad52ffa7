package tagasn1

/*
length.go contains the length-octet codec of X.690 §8.1.3.
*/

/*
lengthIndefinite is the sentinel returned by decodeLength to signal the
reserved 0x80 "indefinite length" form.
*/
const lengthIndefinite = -1

/*
decodeLength reads the length octet(s) at the start of b. It returns the
content-octet count (or [lengthIndefinite]), the number of octets the
length header itself occupied, and an error.

This routine applies no rule-specific legality checks (e.g. DER's ban on
indefinite length, or its ban on non-minimal long forms); callers apply
those against the [Rule] in force. This keeps the routine reusable for
all three rules.
*/
func decodeLength(b []byte) (length, n int, err error) {
	if len(b) == 0 {
		return 0, 0, errMalformedLength("empty length")
	}

	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}

	count := int(first & 0x7f)
	if count == 0 {
		return lengthIndefinite, 1, nil
	}
	if count > 8 {
		return 0, 0, errMalformedLength("length too large (>8 octets)")
	}
	if count > len(b)-1 {
		return 0, 0, errMalformedLength("truncated length")
	}

	length = 0
	for i := 1; i <= count; i++ {
		length = (length << 8) | int(b[i])
	}
	if length < 0 {
		return 0, 0, errMalformedLength("length overflows implementation limit")
	}
	return length, count + 1, nil
}

/*
verifyDERLength applies DER's canonical-form checks (X.690 §10.1) to an
already-decoded length header: no indefinite length, and no non-minimal
long form.
*/
func verifyDERLength(b []byte, length, n int) error {
	if length == lengthIndefinite {
		return errMalformedLength("DER forbids indefinite length")
	}
	if n > 1 {
		if length < 0x80 {
			return errMalformedLength("DER: non-minimal length encoding")
		}
		if n > 2 && b[1] == 0x00 {
			return errMalformedLength("DER: leading zero in long-form length")
		}
	}
	return nil
}

/*
encodeLength appends the definite-length encoding of n to dst: short form
for n < 128, long form otherwise.
*/
func encodeLength(dst []byte, n int) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}

	var enc []byte
	for v := n; v > 0; v >>= 8 {
		enc = append([]byte{byte(v)}, enc...)
	}
	dst = append(dst, 0x80|byte(len(enc)))
	return append(dst, enc...)
}

/*
sizeLength returns the number of octets encodeLength would produce for n.
*/
func sizeLength(n int) int {
	if n < 0x80 {
		return 1
	}
	size := 1
	for v := n; v > 0; v >>= 8 {
		size++
	}
	return size
}

/*
eocMarker is the two-octet end-of-contents sequence (tag UNIVERSAL 0,
length 0) that terminates an indefinite-length construction.
*/
var eocMarker = [2]byte{0x00, 0x00}

/*
findEOC walks a BER indefinite-length body starting at b and returns the
index at which the end-of-contents marker closing the outermost
container begins, correctly skipping over nested TLVs (definite or
indefinite) along the way.
*/
func findEOC(b []byte) (int, error) {
	depth := 0
	i := 0
	for i < len(b) {
		if b[i] == 0x00 && i+1 < len(b) && b[i+1] == 0x00 {
			if depth == 0 {
				return i, nil
			}
			depth--
			i += 2
			continue
		}

		_, idLen, err := decodeTag(b[i:])
		if err != nil {
			return 0, err
		}
		l, lenLen, err := decodeLength(b[i+idLen:])
		if err != nil {
			return 0, err
		}

		i += idLen + lenLen
		if l == lengthIndefinite {
			depth++
		} else {
			i += l
		}
	}
	return 0, errMalformedLength("truncated indefinite-length content: no matching end-of-contents")
}
