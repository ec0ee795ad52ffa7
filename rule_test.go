package tagasn1

import "testing"

func TestRule_String(t *testing.T) {
	cases := map[Rule]string{BER: "BER", DL: "DL", DER: "DER", invalidRule: "INVALID"}
	for rule, want := range cases {
		if got := rule.String(); got != want {
			t.Errorf("Rule(%d).String() = %q, want %q", rule, got, want)
		}
	}
}

func TestRule_AllowsIndefinite(t *testing.T) {
	if !BER.AllowsIndefinite() {
		t.Error("want BER to allow indefinite length")
	}
	if DL.AllowsIndefinite() || DER.AllowsIndefinite() {
		t.Error("want DL and DER to forbid indefinite length")
	}
}

func TestRule_Canonical(t *testing.T) {
	if !DER.Canonical() {
		t.Error("want DER canonical")
	}
	if BER.Canonical() || DL.Canonical() {
		t.Error("want BER and DL non-canonical")
	}
}

func TestRule_valid(t *testing.T) {
	for _, r := range []Rule{BER, DL, DER} {
		if !r.valid() {
			t.Errorf("want %v valid", r)
		}
	}
	if invalidRule.valid() {
		t.Error("want the zero Rule invalid")
	}
}
