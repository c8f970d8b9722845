package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/avikram/semtrack/internal/domain"
)

// Source locates the schedule document. Path wins over URL when both are
// set. Loading is one-shot: success or a terminal error, no retry.
type Source struct {
	URL  string
	Path string

	// Client overrides the HTTP client used for URL sources. Nil uses a
	// client with a short dial timeout.
	Client *http.Client
}

// Load fetches, parses, and converts the schedule document.
func (s Source) Load(ctx context.Context) (*domain.Schedule, error) {
	if s.Path != "" {
		return LoadFile(s.Path)
	}
	if s.URL != "" {
		return Fetch(ctx, s.client(), s.URL)
	}
	return nil, fmt.Errorf("no schedule source configured")
}

func (s Source) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}

// Fetch retrieves the schedule document from a URL.
func Fetch(ctx context.Context, client *http.Client, url string) (*domain.Schedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building schedule request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching schedule: unexpected status %s", resp.Status)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}
	return Convert(&doc)
}

// LoadFile reads the schedule document from a local file.
func LoadFile(path string) (*domain.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schedule file: %w", err)
	}
	return Convert(&doc)
}
