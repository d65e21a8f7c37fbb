// Package places is a thin client for the Google Places web services.
//
// The API key never leaves the server: callers pass their query and the
// client appends the key before calling Google.
package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the Places web service root.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	maxPhotoBytes    = 10 << 20
	maxResponseBytes = 5 << 20
)

// reservedParams are never forwarded from the caller.
var reservedParams = []string{"endpoint", "key"}

// StatusError is a non-2xx answer from Google.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("google places returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("google places returned %d", e.StatusCode)
}

type Client struct {
	httpClient    *http.Client
	apiKey        string
	baseURL       string
	photoLimit    int64
	responseLimit int64
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		apiKey:        strings.TrimSpace(apiKey),
		baseURL:       DefaultBaseURL,
		photoLimit:    maxPhotoBytes,
		responseLimit: maxResponseBytes,
	}
}

// WithBaseURL points the client at another host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Photo downloads a place photo. Google answers with a redirect to the
// image which the http client follows.
func (c *Client) Photo(ctx context.Context, req *model.PlacePhotoRequest) (*model.PlacePhoto, error) {
	q := url.Values{}
	q.Set("photo_reference", req.PhotoReference)
	if req.MaxWidth > 0 {
		q.Set("maxwidth", strconv.Itoa(req.MaxWidth))
	}
	if req.MaxHeight > 0 {
		q.Set("maxheight", strconv.Itoa(req.MaxHeight))
	}
	q.Set("key", c.apiKey)

	resp, err := c.get(ctx, c.baseURL+"/photo?"+q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	data, err := readLimited(resp.Body, c.photoLimit)
	if err != nil {
		return nil, errors.Wrap(err, "reading photo")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &model.PlacePhoto{ContentType: contentType, Data: data}, nil
}

// Query calls endpoint with the caller's parameters and returns Google's
// JSON body verbatim.
func (c *Client) Query(ctx context.Context, endpoint model.PlacesEndpoint, params url.Values) ([]byte, error) {
	q := ForwardParams(params)
	q.Set("key", c.apiKey)

	resp, err := c.get(ctx, fmt.Sprintf("%s/%s/json?%s", c.baseURL, endpoint, q.Encode()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := readLimited(resp.Body, c.responseLimit)
	if err != nil {
		return nil, errors.Wrap(err, "reading places response")
	}
	return body, nil
}

// ForwardParams copies params without the reserved ones.
func ForwardParams(params url.Values) url.Values {
	out := make(url.Values, len(params))
	for k, v := range params {
		out[k] = append([]string(nil), v...)
	}
	for _, k := range reservedParams {
		out.Del(k)
	}
	return out
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building places request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL including the key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, errors.Wrap(urlErr.Err, "google places")
		}
		return nil, errors.Wrap(err, "google places")
	}
	return resp, nil
}

// readLimited reads r fully and fails instead of truncating past limit.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errors.Errorf("response exceeds %d bytes", limit)
	}
	return data, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
