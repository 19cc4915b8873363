package localstore

import (
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestPutGetDelete(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}
	if err := s.Put(KeySession, []byte("3")); err != nil {
		t.Fatalf("put: %v", err)
	}
	raw, ok, err := s.Get(KeySession)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(raw) != "3" {
		t.Fatalf("got %q", raw)
	}
	// overwrite
	if err := s.Put(KeySession, []byte("4")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, _, _ = s.Get(KeySession)
	if string(raw) != "4" {
		t.Fatalf("expected overwrite, got %q", raw)
	}
	if err := s.Delete(KeySession); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(KeySession); ok {
		t.Fatal("expected miss after delete")
	}
	// deleting an absent key is not an error
	if err := s.Delete(KeySession); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type rec struct {
		Version int      `json:"version"`
		Items   []string `json:"items"`
	}
	in := rec{Version: 1, Items: []string{"a", "b"}}
	if err := s.PutJSON(KeyCatalog, in); err != nil {
		t.Fatalf("put json: %v", err)
	}
	var out rec
	ok, err := s.GetJSON(KeyCatalog, &out)
	if err != nil || !ok {
		t.Fatalf("get json: ok=%v err=%v", ok, err)
	}
	if out.Version != 1 || len(out.Items) != 2 {
		t.Fatalf("bad round trip: %+v", out)
	}
}

func TestGetJSONShapeMismatch(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put(KeyCatalog, []byte("not json")); err != nil {
		t.Fatalf("put: %v", err)
	}
	var out map[string]any
	ok, err := s.GetJSON(KeyCatalog, &out)
	if !ok || err == nil {
		t.Fatalf("expected present-but-broken record, ok=%v err=%v", ok, err)
	}
}
