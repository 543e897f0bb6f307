// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

// HTTP is a ByteSource that serves ReadRange with "Range: bytes=a-b"
// requests against a single URL.
type HTTP struct {
	client *http.Client
	url    string
	name   string
	size   int64
}

type HTTPOption func(*HTTP)

// WithHTTPClient sets the client used for HEAD and range requests.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = c
	}
}

// OpenHTTP issues a HEAD request to learn the resource size.
func OpenHTTP(ctx context.Context, rawURL string, opts ...HTTPOption) (*HTTP, error) {
	h := &HTTP{
		client: http.DefaultClient,
		url:    rawURL,
		name:   rawURL,
	}
	for _, opt := range opts {
		opt(h)
	}

	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		h.name = path.Base(u.Path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HEAD %s: unexpected status %s", rawURL, resp.Status)
	}

	if resp.ContentLength < 0 {
		return nil, fmt.Errorf("HEAD %s: unknown content length", rawURL)
	}
	h.size = resp.ContentLength

	return h, nil
}

func (h *HTTP) Name() string { return h.name }
func (h *HTTP) Size() int64  { return h.size }

func (h *HTTP) ReadRange(ctx context.Context, start, end int64) ([]byte, error) {
	start, end, err := clamp(start, end, h.size)
	if err != nil {
		return nil, err
	}

	if start == end {
		return []byte{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", start, end-1))

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent:
	case http.StatusOK:
		return nil, fmt.Errorf("GET %s: %w", h.url, ErrRangeNotSupported)
	default:
		return nil, fmt.Errorf("GET %s: unexpected status %s", h.url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, end-start))
	if err != nil {
		return nil, fmt.Errorf("read %s [%d, %d): %w", h.url, start, end, err)
	}

	return data, nil
}
