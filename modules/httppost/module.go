// Package httppost provides the built-in "http_post" seeder kind: it sends
// a JSON payload (the output of a declared dependency, or an inline body)
// to a seeding endpoint with a single POST request.
package httppost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/seedweave/internal/check"
	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

const defaultTimeout = 30 * time.Second

// Input is the argument schema of the "http_post" kind.
type Input struct {
	// URL is the seeding endpoint.
	URL string `hcl:"url"`
	// From names a declared dependency whose output is marshaled to JSON
	// and sent as the request body.
	From string `hcl:"from,optional"`
	// Body is an inline request body, used when From is empty.
	Body string `hcl:"body,optional"`
	// Timeout bounds the request, e.g. "10s".
	Timeout string `hcl:"timeout,optional"`
}

// Module registers the "http_post" kind.
type Module struct {
	// Client issues the requests. Nil means a fresh client per request with
	// the configured timeout.
	Client *http.Client
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("http_post", &registry.Kind{
		Description: "POST a JSON payload to a seeding endpoint",
		NewInput:    func() any { return new(Input) },
		Run:         m.run,
	})
}

func (m *Module) run(ctx context.Context, input any, rc *seeder.RunContext) (any, error) {
	in := input.(*Input)
	if err := check.NotEmpty("url", in.URL); err != nil {
		return nil, err
	}

	payload, err := m.payload(in, rc)
	if err != nil {
		return nil, err
	}

	client := m.Client
	if client == nil {
		timeout := defaultTimeout
		if in.Timeout != "" {
			timeout, err = time.ParseDuration(in.Timeout)
			if err != nil {
				return nil, fmt.Errorf("bad timeout %q: %w", in.Timeout, err)
			}
		}
		client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, in.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	rc.Log.Info("📤 Posting seed payload.", "url", in.URL, "bytes", len(payload))
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", in.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("seeding endpoint returned %s: %s", resp.Status, truncate(body, 200))
	}

	rc.Log.Info("📥 Seed payload accepted.", "status", resp.Status)
	return map[string]any{
		"status_code": resp.StatusCode,
		"body":        string(body),
	}, nil
}

func (m *Module) payload(in *Input, rc *seeder.RunContext) ([]byte, error) {
	if in.From != "" {
		v, err := rc.Deps.Get(in.From)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling output of %q: %w", in.From, err)
		}
		return payload, nil
	}
	if in.Body != "" {
		return []byte(in.Body), nil
	}
	return nil, fmt.Errorf("http_post seeder %q needs either from or body", rc.Name())
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
