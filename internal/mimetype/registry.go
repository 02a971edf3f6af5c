package mimetype

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DefaultRegistryURL serves the mime-db table of IANA and vendor media types.
const DefaultRegistryURL = "https://cdn.jsdelivr.net/gh/jshttp/mime-db@master/db.json"

// Entry is the registry metadata for one media type. Only the key set drives
// generation; the fields are kept for callers that inspect the table.
type Entry struct {
	Source       string   `json:"source,omitempty"`
	Charset      string   `json:"charset,omitempty"`
	Compressible *bool    `json:"compressible,omitempty"`
	Extensions   []string `json:"extensions,omitempty"`
}

// Registry maps full media type identifiers such as "audio/mpeg" to metadata.
type Registry map[string]Entry

// DecodeRegistry reads a mime-db style JSON object.
func DecodeRegistry(r io.Reader) (Registry, error) {
	if r == nil {
		return nil, fmt.Errorf("decode registry: nil reader")
	}
	var reg Registry
	if err := json.NewDecoder(r).Decode(&reg); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return reg, nil
}

// LoadRegistry reads a registry from a local file.
func LoadRegistry(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry %s: %w", path, err)
	}
	defer f.Close()

	reg, err := DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("load registry %s: %w", path, err)
	}
	return reg, nil
}

// FetchRegistry downloads a registry. A nil client uses http.DefaultClient.
func FetchRegistry(ctx context.Context, client *http.Client, url string) (Registry, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch registry: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch registry %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch registry %s: unexpected status %s", url, resp.Status)
	}
	reg, err := DecodeRegistry(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch registry %s: %w", url, err)
	}
	return reg, nil
}
