package badge

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

const (
	// DefaultService is the badge-rendering service used when none is
	// configured.
	DefaultService = "https://img.shields.io"

	// DefaultLabel is the left-hand badge text.
	DefaultLabel = "admitted proofs"

	// DefaultOutput is the badge filename, relative to the working
	// directory.
	DefaultOutput = "admitted.svg"

	browserUA = "Mozilla/5.0"
)

// Style controls the badge visual style.
type Style string

const (
	StyleFlat       Style = "flat"
	StyleFlatSquare Style = "flat-square"
)

// ParseStyle parses a style string, defaulting to flat.
func ParseStyle(s string) Style {
	if s == "flat-square" {
		return StyleFlatSquare
	}
	return StyleFlat
}

// URL builds the badge-service request URL for an admitted count and colour.
func URL(service, label string, admitted int, colour Colour, style Style) string {
	return fmt.Sprintf("%s/badge/%s-%d-%s?style=%s",
		service, url.PathEscape(label), admitted, colour, style)
}

// Fetch issues a single GET for the rendered badge and returns the response
// body. The badge service rejects requests without a browser user agent, so
// one is spoofed. No retries and no client timeout: a failed fetch is a
// fatal fault for the caller.
func Fetch(rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build badge request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch badge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch badge: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read badge response: %w", err)
	}
	return data, nil
}

// Save writes the badge bytes to path, overwriting any existing file.
func Save(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write badge %s: %w", path, err)
	}
	return nil
}
