package pepsjson

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/c360studio/pepgraph/record"
)

// DefaultIndexURL is the canonical PEP index location.
const DefaultIndexURL = "https://peps.python.org/api/peps.json"

// Load reads and decodes a cached peps.json file.
func Load(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read peps index: %w", err)
	}
	return Decode(data)
}

// Fetch downloads the PEP index, caches it at cachePath, and decodes it.
// An existing cache file is used as-is without contacting the server.
func Fetch(ctx context.Context, client *http.Client, url, cachePath string) ([]record.Record, error) {
	if _, err := os.Stat(cachePath); err == nil {
		return Load(cachePath)
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build index request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch peps index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch peps index: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read index response: %w", err)
	}

	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return nil, fmt.Errorf("cache peps index: %w", err)
	}

	return Decode(data)
}
