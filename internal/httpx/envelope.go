package httpx

import (
	"encoding/json"
	"io"
	"net/http"
)

// Envelope is the uniform response shape spoken on both sides of the remote
// API: {"success": bool, "data": ..., "error": "..."}.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Decode reads an Envelope from a response body.
func Decode(r io.Reader) (Envelope, error) {
	var env Envelope
	err := json.NewDecoder(r).Decode(&env)
	return env, err
}

// JSON writes a success envelope around payload.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var data []byte
	var err error
	if payload != nil {
		data, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"success":false,"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		data = []byte("null")
	}
	body, err := json.Marshal(Envelope{Success: true, Data: data})
	if err != nil {
		http.Error(w, `{"success":false,"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

// JSONError writes a failure envelope with an error message.
func JSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	body, _ := json.Marshal(Envelope{Success: false, Error: msg})
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		_ = err
	}
}
