package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"es-MX,es;q=0.9": "es",
		"en-US,en;q=0.8": "en",
		"EN":             "en",
		"fr-FR":          "es",
		"":               "es",
	}
	for header, want := range cases {
		if got := DetectLanguage(header); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := T("es", "total"); got != "Total" {
		t.Errorf("got %q", got)
	}
	if got := T("en", "observations"); got != "Notes" {
		t.Errorf("got %q", got)
	}
	if got := T("es", "status_draft"); got != "Borrador" {
		t.Errorf("got %q", got)
	}
	// unknown language falls back to Spanish
	if got := T("de", "client"); got != "Cliente" {
		t.Errorf("got %q", got)
	}
	// unknown code echoes back
	if got := T("es", "no_such_code"); got != "no_such_code" {
		t.Errorf("got %q", got)
	}
}
