package tagasn1

import "testing"

func TestClass_String(t *testing.T) {
	cases := map[Class]string{
		ClassUniversal:   "UNIVERSAL",
		ClassApplication: "APPLICATION",
		ClassContext:     "CONTEXT",
		ClassPrivate:     "PRIVATE",
		Class(99):        "INVALID",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", c, got, want)
		}
	}
}

func TestTagName(t *testing.T) {
	if got := tagName(TagInteger); got != "INTEGER" {
		t.Errorf("got %q want INTEGER", got)
	}
	if got := tagName(999); got != "[UNIVERSAL 999]" {
		t.Errorf("got %q want fallback rendering", got)
	}
}
