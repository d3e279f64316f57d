package keenergy

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Endpoints of the Web-HMI API, relative to the controller base URL.
const (
	endpointRead  = "/var/readWriteVars"
	endpointWrite = "/var/readWriteVars?action=set"

	endpointDeviceInfo      = "/deviceControl?action=getDeviceInfo"
	endpointSystemInstalled = "/swupdate?action=getSystemInstalled"
	endpointHmiInstalled    = "/swupdate?action=getHmiInstalled"
	endpointTimeZone        = "/dateTime?action=getTimeZone"
)

const defaultTimeout = 10 * time.Second

// Client talks to one controller. The zero value is not usable; construct it
// with NewClient.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	ownsClient bool
	timeout    time.Duration
	skipVerify bool
	https      bool
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials enables HTTP basic authentication.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithHTTPS selects the https scheme.
func WithHTTPS() Option {
	return func(c *Client) { c.https = true }
}

// WithInsecureSkipVerify accepts the controller's self-signed certificate.
// It only applies to the library-owned HTTP client.
func WithInsecureSkipVerify() Option {
	return func(c *Client) { c.skipVerify = true }
}

// WithTimeout overrides the default 10 second overall timeout of the
// library-owned HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient supplies a caller-owned HTTP client. The library never
// closes it and imposes no timeout on it; concurrent use is the caller's
// responsibility.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the controller at host. Host may be a bare
// hostname or IP, or a full base URL including scheme.
func NewClient(host string, opts ...Option) *Client {
	c := &Client{
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if strings.Contains(host, "://") {
		c.baseURL = strings.TrimRight(host, "/")
	} else {
		scheme := "http"
		if c.https {
			scheme = "https"
		}
		c.baseURL = scheme + "://" + host
	}

	if c.httpClient == nil {
		c.ownsClient = true
		transport := &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		}
		if c.skipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: transport,
		}
	}
	return c
}

// Close releases the library-owned HTTP client's idle connections. It never
// touches a caller-supplied client.
func (c *Client) Close() {
	if c.ownsClient {
		c.httpClient.CloseIdleConnections()
	}
}

// wireRecord is one response entry of the generic read/write endpoint.
type wireRecord struct {
	Name       string     `json:"name"`
	Value      flexString `json:"value"`
	Attributes flexAttrs  `json:"attributes"`
	Ret        string     `json:"ret"`
}

// flexString tolerates string, number, boolean and null wire values.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = flexString(val)
	case bool:
		if val {
			*s = "true"
		} else {
			*s = "false"
		}
	case float64:
		*s = flexString(json.Number(data).String())
	default:
		*s = flexString(data)
	}
	return nil
}

func (s flexString) String() string { return string(s) }

type flexAttrs map[string]any

func (a flexAttrs) strings() map[string]string {
	if len(a) == 0 {
		return nil
	}
	out := make(map[string]string, len(a))
	for k, v := range a {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// postVars posts a JSON body to one of the readWriteVars endpoints and
// returns the response records. A single-object response is wrapped into a
// one-element list.
func (c *Client) postVars(ctx context.Context, endpoint string, body any) ([]wireRecord, error) {
	data, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var records []wireRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var one wireRecord
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return []wireRecord{one}, nil
}

// post issues one HTTP POST and applies the status taxonomy.
func (c *Client) post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.logger.Debug("controller request", "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("controller request failed", "endpoint", endpoint, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	switch {
	case resp.StatusCode <= 300:
		c.logger.Debug("controller response", "endpoint", endpoint, "bytes", len(data))
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Warn("controller rejected credentials", "endpoint", endpoint)
		return nil, newAuthenticationError()
	default:
		c.logger.Warn("controller error", "endpoint", endpoint, "status", resp.StatusCode)
		if msg := developerMessage(data); msg != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
}

func developerMessage(data []byte) string {
	var body struct {
		DeveloperMessage string `json:"developerMessage"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.DeveloperMessage
}

// postObject posts to a flat pass-through endpoint and returns the response
// object with the protocol "ret" key stripped.
func (c *Client) postObject(ctx context.Context, endpoint string) (map[string]any, error) {
	data, err := c.post(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &obj); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	delete(obj, "ret")
	return obj, nil
}

// DeviceInfo returns the controller's device information.
func (c *Client) DeviceInfo(ctx context.Context) (map[string]any, error) {
	return c.postObject(ctx, endpointDeviceInfo)
}

// SystemInstalled returns the installed controller software description.
func (c *Client) SystemInstalled(ctx context.Context) (map[string]any, error) {
	return c.postObject(ctx, endpointSystemInstalled)
}

// HmiInstalled returns the installed HMI software description.
func (c *Client) HmiInstalled(ctx context.Context) (map[string]any, error) {
	return c.postObject(ctx, endpointHmiInstalled)
}

// TimeZone returns the controller's time zone configuration.
func (c *Client) TimeZone(ctx context.Context) (map[string]any, error) {
	return c.postObject(ctx, endpointTimeZone)
}
