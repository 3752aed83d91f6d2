package nookipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Nookipedia API root.
	DefaultBaseURL = "https://api.nookipedia.com/"

	// APIVersion is the API version this library was built against.
	// It is sent on every request as the Accept-Version header.
	APIVersion = "1.7.0"
)

// Client is a Nookipedia API client. All convenience methods funnel
// through a single request path, so every call carries the same
// authentication and version headers and the same error classification.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Nookipedia client for the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("nookipedia API key is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	client := &Client{
		baseURL: options.baseURL,
		apiKey:  apiKey,
		logger:  options.logger,
	}

	if options.httpClient != nil {
		client.httpClient = options.httpClient
	} else {
		client.httpClient = &http.Client{Timeout: options.timeout}
	}

	if _, err := url.Parse(client.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", options.baseURL, err)
	}

	return client, nil
}

// SetAPIKey replaces the client's credential. The new key is picked up
// on the next request; in-flight requests keep the key they started with.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Query holds query parameters for a request. A value may be a string,
// a number, a bool, or a slice of those; slice values are encoded as
// repeated keys (material=a&material=b) preserving element order.
type Query map[string]any

// RequestOptions carries per-call transport options. All fields are
// optional; the zero value issues a plain GET.
type RequestOptions struct {
	// Query parameters appended to the request URL.
	Query Query

	// Header entries merged into the request. The Accept-Version and
	// X-API-KEY headers are always set by the client afterwards and win
	// on conflict.
	Header http.Header

	// Method overrides the HTTP method. Defaults to GET.
	Method string

	// Body is passed through to the transport untouched. The API's own
	// endpoints never need one.
	Body io.Reader
}

// get resolves the path template, assembles the request URL, issues the
// call, and decodes the response into out. Non-2xx responses are
// returned as *APIError; transport failures propagate unmodified.
func (c *Client) get(ctx context.Context, path string, pathParams map[string]string, opts *RequestOptions, out any) error {
	if opts == nil {
		opts = &RequestOptions{}
	}

	requestURL, err := c.buildURL(resolvePath(path, pathParams), opts.Query)
	if err != nil {
		return err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, opts.Body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = composeHeader(opts.Header, c.apiKey)

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Nookipedia API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failures (DNS, connect, context cancellation)
		// are not this layer's to classify.
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody ErrorBody
		// The error payload may be missing or malformed; classify with
		// whatever decoded.
		_ = json.Unmarshal(body, &errBody)
		return classify(resp.StatusCode, errBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// resolvePath substitutes {name} placeholders in a path template with
// the provided values, verbatim. Values are inserted as-is with no URL
// escaping; callers pass already-safe path segments. A placeholder with
// no matching entry is left in place.
func resolvePath(template string, params map[string]string) string {
	for name, value := range params {
		template = strings.Replace(template, "{"+name+"}", value, 1)
	}
	return template
}

// buildURL resolves the path against the base URL and appends the
// encoded query. A base URL with or without a trailing slash yields the
// same result.
func (c *Client) buildURL(path string, query Query) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	resolved := base.ResolveReference(rel)
	if len(query) > 0 {
		resolved.RawQuery = encodeQuery(query)
	}
	return resolved.String(), nil
}

// encodeQuery converts a Query into an encoded query string. Slice
// values become repeated keys in element order; everything else is a
// single entry, overwriting any prior value for that name.
func encodeQuery(query Query) string {
	values := url.Values{}
	for name, value := range query {
		switch v := value.(type) {
		case []string:
			for _, e := range v {
				values.Add(name, e)
			}
		case []int:
			for _, e := range v {
				values.Add(name, strconv.Itoa(e))
			}
		case []any:
			for _, e := range v {
				values.Add(name, stringify(e))
			}
		default:
			values.Set(name, stringify(v))
		}
	}
	return values.Encode()
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// composeHeader merges caller headers with the mandatory identity
// headers. Caller entries are applied first so Accept-Version and
// X-API-KEY always win on conflict; everything else passes through
// untouched.
func composeHeader(caller http.Header, apiKey string) http.Header {
	header := http.Header{}
	for name, vals := range caller {
		for _, v := range vals {
			header.Add(name, v)
		}
	}
	if header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}
	header.Set("Accept-Version", APIVersion)
	header.Set("X-API-KEY", apiKey)
	return header
}

// TestConnection verifies the configured key against the API by
// requesting a single known resource.
func (c *Client) TestConnection(ctx context.Context) error {
	var events []Event
	today := time.Now().Format("2006-01-02")
	if err := c.get(ctx, "nh/events", nil, &RequestOptions{Query: Query{"date": today}}, &events); err != nil {
		return fmt.Errorf("failed to connect to Nookipedia: %w", err)
	}
	return nil
}
