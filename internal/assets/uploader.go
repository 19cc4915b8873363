// Package assets moves item images from local base64 encodings to a durable
// hosted URL. Upload failures are reported but never block the enclosing
// save: the image is simply dropped.
package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmoralesmx/cotizador/internal/httpx"
)

type Uploader interface {
	// Upload stores a base64-encoded image (data URI accepted) under a
	// filename hint and returns its hosted URL.
	Upload(ctx context.Context, name, data string) (string, error)
}

// HostUploader posts images to the shop's asset relay.
type HostUploader struct {
	URL string
	hc  *http.Client
}

func NewHostUploader(url string, hc *http.Client) *HostUploader {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HostUploader{URL: url, hc: hc}
}

type uploadRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (u *HostUploader) Upload(ctx context.Context, name, data string) (string, error) {
	body, err := json.Marshal(uploadRequest{Name: name, Image: StripDataURI(data)})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := u.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	env, err := httpx.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		if env.Error != "" {
			return "", fmt.Errorf("upload rejected: %s", env.Error)
		}
		return "", fmt.Errorf("upload rejected (status %d)", resp.StatusCode)
	}
	var out uploadResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return "", fmt.Errorf("decode upload data: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload returned empty url")
	}
	return out.URL, nil
}

// IsDataURI reports whether the image field still holds a local base64
// encoding rather than a hosted URL.
func IsDataURI(s string) bool { return strings.HasPrefix(s, "data:") }

// StripDataURI removes the "data:image/...;base64," prefix when present.
func StripDataURI(s string) string {
	if !IsDataURI(s) {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}
