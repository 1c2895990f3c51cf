package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ImageFetcher retrieves encoded image bytes from a remote location. The
// bytes are decoded later by the vision layer, so the fetcher never inspects
// the pixel content.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// HTTPImageFetcher implements ImageFetcher over a pooled HTTP client tuned
// for single image downloads.
type HTTPImageFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPImageFetcher creates an HTTP image fetcher. maxBytes caps the
// downloaded payload; zero or negative means 10MB.
func NewHTTPImageFetcher(maxBytes int64) *HTTPImageFetcher {
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}

	transport := &http.Transport{
		// Connection pooling sized for single image downloads
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		DisableCompression:     false,
		MaxResponseHeaderBytes: 4096,

		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	return &HTTPImageFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,

			// Prevent redirects to avoid unexpected behavior
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
		maxBytes: maxBytes,
	}
}

// FetchImage downloads the encoded image, retrying transient failures up to
// three attempts. 4xx responses are never retried.
func (h *HTTPImageFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	req.Header.Set("Accept", "image/jpeg, image/png, image/webp, */*")
	req.Header.Set("User-Agent", "Go-Face-Measure/1.0")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		resp, err = h.client.Do(req)

		if err != nil {
			lastErr = err
		}

		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			break
		}

		if err == nil && resp != nil {
			resp.Body.Close()

			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Client errors are non-retryable.
				lastErr = fmt.Errorf("client error: status code %d", resp.StatusCode)
				resp = nil
				break
			}
			if resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("server error: status code %d", resp.StatusCode)
			}
			resp = nil
		}

		if attempt < 2 {
			time.Sleep(time.Duration(attempt+1) * time.Second)
		}
	}

	if resp == nil {
		if lastErr != nil {
			return nil, fmt.Errorf("failed to fetch image after 3 attempts: %w", lastErr)
		}
		return nil, fmt.Errorf("failed to fetch image after 3 attempts: unknown error")
	}
	defer resp.Body.Close()

	// Cap the read so an oversized or unbounded body cannot exhaust memory.
	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if int64(len(data)) > h.maxBytes {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", h.maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return data, nil
}
