package tagasn1

/*
tlv.go contains all types, methods and functions for the
Type-Length-Value unit of ASN.1 encoding.
*/

/*
TLV stores one decoded Tag-Length-Value header alongside its content
octets. Length is [lengthIndefinite] (-1) for an indefinite-length
constructed encoding still awaiting its end-of-contents marker.
*/
type TLV struct {
	Tag    Tag
	Length int
	Value  []byte
	Rule   Rule
}

/*
Eq reports whether r and t carry the same tag and compound state. Length
is only compared when the variadic length flag is supplied and true.
*/
func (r TLV) Eq(t TLV, length ...bool) bool {
	lenOK := true
	if len(length) > 0 && length[0] {
		lenOK = r.Length == t.Length
	}
	return r.Tag == t.Tag && r.Rule == t.Rule && lenOK
}

/*
String returns a debugging representation of the receiver.
*/
func (r TLV) String() string {
	return "{Rule:" + r.Rule.String() +
		", Class:" + r.Tag.Class.String() +
		", Tag:" + itoa(r.Tag.Number) +
		", Constructed:" + boolStr(r.Tag.Constructed) +
		", Length:" + itoa(r.Length) + "}"
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

/*
encodeTLV renders t's header plus its Value into dst. If t.Length is
[lengthIndefinite], the indefinite-length form is used: 0x80 with no
trailing EOC, the caller appending the end-of-contents marker once all
children have been written. Only legal when t.Rule.AllowsIndefinite().
*/
func encodeTLV(dst []byte, t TLV) []byte {
	dst = encodeTag(dst, t.Tag)
	if t.Length == lengthIndefinite {
		dst = append(dst, 0x80)
	} else {
		dst = encodeLength(dst, t.Length)
	}
	return append(dst, t.Value...)
}

/*
sizeTLV returns the encoded octet count of a definite-length TLV bearing
tag t and content length n, without the content bytes themselves.
*/
func sizeTLV(t Tag, n int) int {
	return sizeTag(t) + sizeLength(n)
}

/*
decodeTLV reads one TLV from b starting at offset off. For a definite
length it returns the exact content slice; for an indefinite length
(only legal under [Rule.AllowsIndefinite]) it scans for the matching
end-of-contents marker and returns the content up to (not including) it.

The returned consumed count spans header plus content, but NOT the
trailing two-byte EOC of an indefinite encoding; callers that need the
full span (e.g. the stream parser) add 2 when Length == [lengthIndefinite].
*/
func decodeTLV(b []byte, off int, rule Rule) (t TLV, consumed int, err error) {
	debugEnter("decodeTLV", "off", off, "rule", rule.String())
	defer func() {
		if err != nil {
			debugInfo("decodeTLV error", err)
			return
		}
		debugTLV(t.String())
	}()

	sub := b[off:]

	tag, idLen, err := decodeTag(sub)
	if err != nil {
		return TLV{}, 0, err
	}

	lenBytes := sub[idLen:]
	length, lenLen, err := decodeLength(lenBytes)
	if err != nil {
		return TLV{}, 0, err
	}

	if rule.Canonical() {
		if verr := verifyDERLength(lenBytes, length, lenLen); verr != nil {
			return TLV{}, 0, verr
		}
	}

	if length == lengthIndefinite && !rule.AllowsIndefinite() {
		return TLV{}, 0, errMalformedLength(rule.String(), " forbids indefinite length")
	}

	headerLen := idLen + lenLen
	if length >= 0 {
		if off+headerLen+length > len(b) {
			return TLV{}, 0, errMalformedLength("content extends past end of stream")
		}
		value := sub[headerLen : headerLen+length]
		return TLV{Tag: tag, Length: length, Value: value, Rule: rule}, headerLen + length, nil
	}

	if !tag.Constructed {
		return TLV{}, 0, errMalformedLength("indefinite length on a primitive encoding")
	}

	relEnd, err := findEOC(sub[headerLen:])
	if err != nil {
		return TLV{}, 0, err
	}
	value := sub[headerLen : headerLen+relEnd]
	return TLV{Tag: tag, Length: lengthIndefinite, Value: value, Rule: rule}, headerLen + relEnd, nil
}
