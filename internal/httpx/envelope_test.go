package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	env, err := Decode(strings.NewReader(`{"success":true,"data":{"id":"7"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || string(env.Data) != `{"id":"7"}` {
		t.Fatalf("env = %+v", env)
	}

	env, err = Decode(strings.NewReader(`{"success":false,"error":"no encontrado"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error != "no encontrado" {
		t.Fatalf("env = %+v", env)
	}

	if _, err := Decode(strings.NewReader("<html>gateway timeout</html>")); err == nil {
		t.Fatal("non-JSON body must fail")
	}
}

func TestJSONWritesSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 201, map[string]string{"url": "https://x"})
	if rec.Code != 201 {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !env.Success || env.Error != "" {
		t.Fatalf("env = %+v", env)
	}
	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil || data["url"] != "https://x" {
		t.Fatalf("data = %s (%v)", env.Data, err)
	}
}

func TestJSONNilPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 200, nil)
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !env.Success || string(env.Data) != "null" {
		t.Fatalf("env = %+v", env)
	}
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, 422, "imagen requerida")
	if rec.Code != 422 {
		t.Fatalf("status = %d", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Success || env.Error != "imagen requerida" {
		t.Fatalf("env = %+v", env)
	}
}
