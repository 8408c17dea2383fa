package token

import "testing"

func TestLookupVerb(t *testing.T) {
	cases := []struct {
		first string
		want  Verb
		ok    bool
	}{
		{"Put", Put, true},
		{"Fold", Fold, true},
		{"Stir", Stir, true},
		{"Cook", "", false},
		{"Bake", "", false},
	}
	for _, c := range cases {
		got, ok := LookupVerb(c.first)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("LookupVerb(%q) = (%q, %v), want (%q, %v)", c.first, got, ok, c.want, c.ok)
		}
	}
}

func TestUnsupportedVerbs(t *testing.T) {
	for _, name := range []string{"Take", "Mix"} {
		if _, ok := UnsupportedVerbs[name]; !ok {
			t.Errorf("expected %q to be listed as unsupported", name)
		}
	}
	if _, ok := UnsupportedVerbs["Put"]; ok {
		t.Errorf("Put must not be listed as unsupported")
	}
}

func TestSectionStateString(t *testing.T) {
	if DiscoveringTitle.String() != "DiscoveringTitle" {
		t.Errorf("unexpected String(): %s", DiscoveringTitle.String())
	}
	if Done.String() != "Done" {
		t.Errorf("unexpected String(): %s", Done.String())
	}
}
