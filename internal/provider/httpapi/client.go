// internal/provider/httpapi/client.go
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/pkg/apierrors"
	"github.com/your-org/storefront/internal/provider"
)

// NewSet bundles the network-backed providers sharing a single client
func NewSet(client *Client) provider.Set {
	return provider.Set{
		Products: NewProductProvider(client),
		Orders:   NewOrderProvider(client),
		Homepage: NewHomepageProvider(client),
	}
}

// Client is the network-backed data source. Every call is a single
// GET or POST against {baseURL}/api/..., JSON both ways. No retries;
// a failed call surfaces immediately to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates an API client for the given base URL. A nil
// httpClient falls back to http.DefaultClient, matching the
// environment-default timeout behavior.
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apierrors.NewAPIError(err.Error(), http.StatusInternalServerError, "")
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apierrors.NewAPIError(err.Error(), http.StatusInternalServerError, "")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return apierrors.NewAPIError(err.Error(), http.StatusInternalServerError, "")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// do executes the request and classifies failures:
// transport error -> NetworkError; non-2xx with a JSON message body ->
// typed error by status; non-2xx otherwise -> "HTTP Error {status}";
// anything else unexpected -> generic 500 APIError.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
		}).Error("api request transport failure")
		return apierrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.NewAPIError(err.Error(), http.StatusInternalServerError, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(req, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apierrors.NewAPIError(
			fmt.Sprintf("failed to decode response: %v", err),
			http.StatusInternalServerError, "")
	}
	return nil
}

func (c *Client) errorFromResponse(req *http.Request, status int, body []byte) error {
	c.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
		"status": status,
	}).Warn("api request failed")

	var payload apierrors.ErrorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return apierrors.FromPayload(status, payload)
	}
	return apierrors.FromStatus(status)
}
