package tagasn1

/*
internal_helpers.go collects small string/number helpers shared across
the primitive library.
*/

import "strconv"

func itoa64(i int64) string { return strconv.FormatInt(i, 10) }

// isIA5 reports whether every byte of s falls within IA5 (7-bit ASCII).
func isIA5(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// isNumeric reports whether s contains only digits and spaces, the
// alphabet of ASN.1 NumericString.
func isNumeric(s string) bool {
	for _, c := range s {
		if !(c == ' ' || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// printableStringAlphabet is the ASN.1 PrintableString character set
// (X.680 §41.4).
const printableStringAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 '()+,-./:=?"

func isPrintable(s string) bool {
	for _, c := range s {
		found := false
		for _, a := range printableStringAlphabet {
			if c == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// isVisible reports whether every byte of s falls within the
// International Reference Version of ISO 646 minus the control
// characters, the alphabet of ASN.1 VisibleString (0x20-0x7E).
func isVisible(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
