package tagasn1

/*
time.go contains all types and methods pertaining to the ASN.1
UTCTime and GeneralizedTime types, the two wire time types X.690
defines.
*/

import (
	"strconv"
	"time"
)

const (
	utcTimeLayout         = "0601021504"
	utcTimeLayoutSeconds  = "060102150405"
	generalizedTimeLayout = "20060102150405"
)

/*
UTCTime implements the ASN.1 UTCTime (tag 23). Its two-digit year is
interpreted per X.690 §11.7: 00-49 maps to 20xx, 50-99 to 19xx.
*/
type UTCTime time.Time

// NewUTCTime returns a [UTCTime] wrapping t.
func NewUTCTime(t time.Time) UTCTime { return UTCTime(t) }

// Tag returns [TagUTCTime].
func (r UTCTime) Tag() int { return TagUTCTime }

// IsPrimitive always returns true.
func (r UTCTime) IsPrimitive() bool { return true }

// Cast returns the receiver as a [time.Time].
func (r UTCTime) Cast() time.Time { return time.Time(r) }

// String renders the receiver in its canonical YYMMDDhhmmssZ form;
// the seconds element is always present, per X.690 §11.8.
func (r UTCTime) String() string { return formatUTCTime(r.Cast()) }

// EncodeBER appends the canonical UTCTime string to dst.
func (r UTCTime) EncodeBER(dst []byte) []byte { return append(dst, r.String()...) }

// EncodeDER is identical to EncodeBER: this package always emits the
// canonical Zulu, whole-second form.
func (r UTCTime) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom parses t's content octets as a UTCTime string.
func (r *UTCTime) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagUTCTime, t)
	if err != nil {
		return err
	}
	parsed, err := parseUTCTime(string(data))
	if err != nil {
		return err
	}
	*r = UTCTime(parsed)
	return nil
}

func parseUTCTime(s string) (time.Time, error) {
	layout := utcTimeLayout
	if len(s) >= 12 && isDigit(s[10]) && isDigit(s[11]) {
		layout = utcTimeLayoutSeconds
	}
	body, loc, err := splitTimezone(s, len(layout))
	if err != nil {
		return time.Time{}, err
	}
	t, perr := time.ParseInLocation(layout, body, time.UTC)
	if perr != nil {
		return time.Time{}, errStructureError("malformed UTCTime: ", perr.Error())
	}
	yy := t.Year() % 100
	year := yy + 1900
	if yy < 50 {
		year = yy + 2000
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

func formatUTCTime(t time.Time) string {
	u := t.UTC()
	return fmt2(u.Year()%100) + fmt2(int(u.Month())) + fmt2(u.Day()) +
		fmt2(u.Hour()) + fmt2(u.Minute()) + fmt2(u.Second()) + "Z"
}

/*
GeneralizedTime implements the ASN.1 GeneralizedTime (tag 24). Unlike
UTCTime, its year is encoded in full (four digits) and an optional
fractional-seconds component is permitted.
*/
type GeneralizedTime time.Time

// NewGeneralizedTime returns a [GeneralizedTime] wrapping t.
func NewGeneralizedTime(t time.Time) GeneralizedTime { return GeneralizedTime(t) }

// Tag returns [TagGeneralizedTime].
func (r GeneralizedTime) Tag() int { return TagGeneralizedTime }

// IsPrimitive always returns true.
func (r GeneralizedTime) IsPrimitive() bool { return true }

// Cast returns the receiver as a [time.Time].
func (r GeneralizedTime) Cast() time.Time { return time.Time(r) }

// String renders the receiver in its canonical YYYYMMDDhhmmssZ form.
func (r GeneralizedTime) String() string { return formatGeneralizedTime(r.Cast()) }

// EncodeBER appends the canonical GeneralizedTime string to dst.
func (r GeneralizedTime) EncodeBER(dst []byte) []byte { return append(dst, r.String()...) }

// EncodeDER is identical to EncodeBER: this package always emits the
// canonical Zulu, whole-second form required by DER (X.690 §11.7).
func (r GeneralizedTime) EncodeDER(dst []byte) []byte { return r.EncodeBER(dst) }

// DecodeFrom parses t's content octets as a GeneralizedTime string.
func (r *GeneralizedTime) DecodeFrom(t TLV) error {
	data, err := checkImplicitContent(TagGeneralizedTime, t)
	if err != nil {
		return err
	}
	parsed, err := parseGeneralizedTime(string(data))
	if err != nil {
		return err
	}
	*r = GeneralizedTime(parsed)
	return nil
}

func parseGeneralizedTime(s string) (time.Time, error) {
	bodyLen := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] == 'Z' || s[i] == '+' || s[i] == '-' {
			bodyLen = i
			break
		}
	}
	body, loc, err := splitTimezone(s, bodyLen)
	if err != nil {
		return time.Time{}, err
	}

	var frac time.Duration
	if i := indexByte(body, '.'); i >= 0 {
		fracStr := body[i+1:]
		body = body[:i]
		if body, err = padToLayout(body, generalizedTimeLayout); err != nil {
			return time.Time{}, err
		}
		ns, ferr := strconv.ParseFloat("0."+fracStr, 64)
		if ferr != nil {
			return time.Time{}, errStructureError("malformed GeneralizedTime fraction")
		}
		frac = time.Duration(ns * float64(time.Second))
	}

	t, perr := time.ParseInLocation(generalizedTimeLayout, body, loc)
	if perr != nil {
		return time.Time{}, errStructureError("malformed GeneralizedTime: ", perr.Error())
	}
	return t.Add(frac), nil
}

func formatGeneralizedTime(t time.Time) string {
	u := t.UTC()
	return strconv.Itoa(u.Year()) + fmt2(int(u.Month())) + fmt2(u.Day()) +
		fmt2(u.Hour()) + fmt2(u.Minute()) + fmt2(u.Second()) + "Z"
}

// splitTimezone separates the fixed-width date/time body from a
// trailing "Z" or "+hhmm"/"-hhmm" timezone designator.
func splitTimezone(s string, bodyLen int) (body string, loc *time.Location, err error) {
	if len(s) < bodyLen {
		return "", nil, errStructureError("truncated time value")
	}
	body = s[:bodyLen]
	rest := s[bodyLen:]

	switch {
	case rest == "Z" || rest == "":
		loc = time.UTC
	case len(rest) == 5 && (rest[0] == '+' || rest[0] == '-'):
		hh, herr := strconv.Atoi(rest[1:3])
		mm, merr := strconv.Atoi(rest[3:5])
		if herr != nil || merr != nil {
			return "", nil, errStructureError("malformed time zone offset")
		}
		offset := hh*3600 + mm*60
		if rest[0] == '-' {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
	default:
		return "", nil, errStructureError("malformed time zone designator")
	}
	return body, loc, nil
}

// padToLayout zero-fills the omitted trailing components of an
// abbreviated date/time body out to the full layout width.
func padToLayout(body, layout string) (string, error) {
	if len(body) > len(layout) {
		return "", errStructureError("time value longer than its layout")
	}
	for len(body) < len(layout) {
		body += "0"
	}
	return body, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func fmt2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
