package models

import "testing"

func TestStatusCodes(t *testing.T) {
	cases := map[Status]int{
		StatusDraft:    1,
		StatusSent:     2,
		StatusAccepted: 3,
		StatusRejected: 4,
	}
	for s, code := range cases {
		if s.Code() != code {
			t.Errorf("%s.Code() = %d, want %d", s, s.Code(), code)
		}
		if StatusFromCode(code) != s {
			t.Errorf("StatusFromCode(%d) = %s, want %s", code, StatusFromCode(code), s)
		}
		if !s.Valid() {
			t.Errorf("%s must be valid", s)
		}
	}
	if Status("archived").Valid() {
		t.Error("unknown label must not validate")
	}
	if StatusFromCode(99) != StatusDraft {
		t.Error("unknown code resolves to draft")
	}
}

func TestComputeTotals(t *testing.T) {
	q := Quotation{
		Items: []FurnitureItem{
			{PrecioUnitario: 15000, Cantidad: 1},
			{PrecioUnitario: 900, Cantidad: 2},
		},
	}
	q.ComputeTotals()
	if q.Subtotal != 16800 || q.Total != 16800 {
		t.Fatalf("subtotal=%v total=%v", q.Subtotal, q.Total)
	}

	q.Descuento = 800
	q.ComputeTotals()
	if q.Total != 16000 {
		t.Fatalf("discounted total = %v", q.Total)
	}

	// a discount at or above the subtotal is ignored
	q.Descuento = 16800
	q.ComputeTotals()
	if q.Total != 16800 {
		t.Fatalf("over-large discount must not apply, total = %v", q.Total)
	}
	q.Descuento = -50
	q.ComputeTotals()
	if q.Total != 16800 {
		t.Fatalf("negative discount must not apply, total = %v", q.Total)
	}
}

func TestMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "$0.00",
		15000:      "$15,000.00",
		1234567.5:  "$1,234,567.50",
		999.99:     "$999.99",
		-1200:      "-$1,200.00",
	}
	for v, want := range cases {
		if got := Money(v); got != want {
			t.Errorf("Money(%v) = %q, want %q", v, got, want)
		}
	}
}
