package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("nombre", "Juan", v)
	Required("telefono", "   ", v)
	if v.Empty() {
		t.Fatalf("violations expected: %+v", v)
	}
	if _, ok := v["nombre"]; ok {
		t.Error("non-empty value flagged")
	}
	if v["telefono"] != "required" {
		t.Errorf("whitespace-only value not flagged: %+v", v)
	}
}

func TestPositiveNumbers(t *testing.T) {
	v := Violations{}
	PositiveFloat("precio", 0, v)
	PositiveFloat("descuento", 12.5, v)
	PositiveInt("cantidad", -1, v)
	if v["precio"] != "must_be_positive" || v["cantidad"] != "must_be_positive" {
		t.Fatalf("violations = %+v", v)
	}
	if _, ok := v["descuento"]; ok {
		t.Error("positive value flagged")
	}
}

func TestDigitString(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"", ""}, // optional field
		{"5551234567", ""},
		{"555123456", "wrong_length"},
		{"555123456a", "digits_only"},
		{" 5551234567 ", ""}, // trimmed before checking
	}
	for _, c := range cases {
		v := Violations{}
		DigitString("whatsapp", c.value, 10, v)
		if got := v["whatsapp"]; got != c.want {
			t.Errorf("DigitString(%q) = %q, want %q", c.value, got, c.want)
		}
	}
}
