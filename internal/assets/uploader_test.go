package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHostUploaderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req uploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "mesa.png" {
			t.Fatalf("name = %q", req.Name)
		}
		// the data URI prefix must be stripped before sending
		if req.Image != "aGVsbG8=" {
			t.Fatalf("image = %q", req.Image)
		}
		fmt.Fprint(w, `{"success":true,"data":{"url":"https://cdn.example.com/mesa.png"}}`)
	}))
	defer srv.Close()

	u := NewHostUploader(srv.URL, srv.Client())
	url, err := u.Upload(context.Background(), "mesa.png", "data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.example.com/mesa.png" {
		t.Fatalf("url = %q", url)
	}
}

func TestHostUploaderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"success":false,"error":"imagen demasiado grande"}`)
	}))
	defer srv.Close()

	u := NewHostUploader(srv.URL, srv.Client())
	if _, err := u.Upload(context.Background(), "x.png", "aGVsbG8="); err == nil {
		t.Fatal("expected rejection error")
	}
}

func TestHostUploaderEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	}))
	defer srv.Close()

	u := NewHostUploader(srv.URL, srv.Client())
	if _, err := u.Upload(context.Background(), "x.png", "aGVsbG8="); err == nil {
		t.Fatal("empty url must be an error")
	}
}

func TestStripDataURI(t *testing.T) {
	if got := StripDataURI("data:image/jpeg;base64,Zm9v"); got != "Zm9v" {
		t.Fatalf("got %q", got)
	}
	// bare base64 passes through untouched
	if got := StripDataURI("Zm9v"); got != "Zm9v" {
		t.Fatalf("got %q", got)
	}
	if IsDataURI("Zm9v") {
		t.Fatal("bare base64 is not a data URI")
	}
	if !IsDataURI("data:image/png;base64,Zm9v") {
		t.Fatal("data URI not detected")
	}
}
