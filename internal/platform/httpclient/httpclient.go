package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// límite de lectura de respuestas (errores y JSON chicos del backend)
	maxBody = 1 << 20
)

// Client habla con los servicios del backend gestionado (auth, storage).
// DefaultHeaders se agregan a todos los requests (p.ej. la apikey del proyecto).
type Client struct {
	HTTP           *http.Client
	BaseURL        string
	DefaultHeaders map[string]string
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{HTTP: &http.Client{Timeout: timeout}}
}

// NewWithBaseURL valida baseURL; vacía => solo se aceptan URLs absolutas.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return c, nil
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("httpclient: invalid base url %q", baseURL)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// HTTPError es cualquier respuesta fuera de 2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// StatusCode devuelve el status de un *HTTPError envuelto en err, o 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// request es un pedido ya armado; Body nil => sin cuerpo.
type request struct {
	method      string
	target      string
	headers     map[string]string
	contentType string
	body        io.Reader
}

// DoJSON manda in como JSON (nil => sin body) y decodifica la respuesta en out (nil => se descarta).
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, headers map[string]string, in, out any) error {
	req := request{method: method, target: pathOrURL, headers: headers}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		req.body = bytes.NewReader(b)
		req.contentType = "application/json"
	}
	return c.send(ctx, req, out)
}

// DoRaw manda un cuerpo binario (uploads).
func (c *Client) DoRaw(ctx context.Context, method, pathOrURL string, headers map[string]string, contentType string, body io.Reader, out any) error {
	if body == nil {
		return errors.New("httpclient: nil body")
	}
	return c.send(ctx, request{
		method:      method,
		target:      pathOrURL,
		headers:     headers,
		contentType: contentType,
		body:        body,
	}, out)
}

func (c *Client) send(ctx context.Context, in request, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}
	target, err := c.resolveURL(in.target)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, in.body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in.contentType != "" {
		req.Header.Set("Content-Type", in.contentType)
	}
	for _, hs := range []map[string]string{c.DefaultHeaders, in.headers} {
		for k, v := range hs {
			if k = strings.TrimSpace(k); k != "" {
				req.Header.Set(k, v)
			}
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s %s: %w", in.method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: decode response: %w", err)
	}
	return nil
}

// resolveURL acepta URL absoluta o path relativo a BaseURL.
func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	switch {
	case pathOrURL == "":
		return "", errors.New("httpclient: empty url")
	case strings.HasPrefix(pathOrURL, "http://"), strings.HasPrefix(pathOrURL, "https://"):
		return pathOrURL, nil
	case c.BaseURL == "":
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	return c.BaseURL + "/" + strings.TrimLeft(pathOrURL, "/"), nil
}
