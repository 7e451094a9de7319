package httpx

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// HTTPError carries status/body for non-2xx responses so callers can log
// something useful without re-reading the wire.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 900))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// Do executes a single request (built by buildReq). No retries: this job runs
// sequentially and a failed call is reported, not repeated.
// It always reads the full body (even on error) so the underlying TCP
// connection can be reused by http.Transport.
func Do(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
) (*http.Response, []byte, error) {
	req, err := buildReq(ctx)
	if err != nil {
		return nil, nil, err
	}

	// Ask for compressed responses and decode them ourselves; setting the
	// header manually disables the transport's automatic gzip handling.
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "gzip, br")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, err := readAndClose(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("httpx: read body: %w", err)
	}

	body, err := decodeBody(resp.Header.Get("Content-Encoding"), raw)
	if err != nil {
		return resp, raw, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, body, nil
	}

	return resp, body, &HTTPError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func decodeBody(encoding string, raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return raw, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("httpx: gzip decode: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "br":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
	default:
		return nil, fmt.Errorf("httpx: unsupported content-encoding %q", encoding)
	}
}

// DoJSON is a convenience wrapper over Do that unmarshals the JSON body.
// A 204 / empty body with a non-nil out leaves out untouched.
func DoJSON(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	out any,
) error {
	_, body, err := Do(ctx, client, buildReq)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("json parse error: %w body=%s", err, snippet(body, 900))
	}
	return nil
}
