package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"solarenroll/internal/domain"
)

// Backend endpoints, relative to the base URL.
const (
	EndpointHealth          = "/api/health/"
	EndpointValidateAddress = "/api/validate-address/"
	EndpointUtilities       = "/api/utilities/"
	EndpointSubscribers     = "/api/subscribers/"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Client talks JSON to the enrollment backend.
type Client struct {
	Base string
	HTTP *http.Client
	Log  *zap.Logger
}

// New returns a client for base. A nil httpClient means http.DefaultClient and
// a nil logger discards logs.
func New(base string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{Base: base, HTTP: httpClient, Log: log}
}

var _ domain.EnrollmentAPI = (*Client)(nil)

func (c *Client) ValidateAddress(
	ctx context.Context,
	req domain.AddressValidationRequest,
) (*domain.AddressValidationResponse, error) {
	var out domain.AddressValidationResponse
	if err := c.do(ctx, http.MethodPost, EndpointValidateAddress, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LookupUtility(ctx context.Context, zipCode string) (*domain.UtilityInfo, error) {
	var out domain.UtilityInfo
	if err := c.do(ctx, http.MethodGet, EndpointUtilities+url.PathEscape(zipCode)+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSubscriber(
	ctx context.Context,
	data domain.SubscriberData,
) (*domain.SubscriberCreateResponse, error) {
	var out domain.SubscriberCreateResponse
	if err := c.do(ctx, http.MethodPost, EndpointSubscribers, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSubscribers(ctx context.Context) (*domain.SubscriberList, error) {
	var out domain.SubscriberList
	if err := c.do(ctx, http.MethodGet, EndpointSubscribers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSubscriber(ctx context.Context, id domain.SubscriberID) (*domain.Subscriber, error) {
	var out domain.Subscriber
	if err := c.do(ctx, http.MethodGet, subscriberPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSubscriber(
	ctx context.Context,
	id domain.SubscriberID,
	patch domain.SubscriberPatch,
) (*domain.Subscriber, error) {
	var out domain.Subscriber
	if err := c.do(ctx, http.MethodPatch, subscriberPath(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSubscriber(ctx context.Context, id domain.SubscriberID) error {
	return c.do(ctx, http.MethodDelete, subscriberPath(id), nil, nil)
}

func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var out domain.HealthStatus
	if err := c.do(ctx, http.MethodGet, EndpointHealth, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func subscriberPath(id domain.SubscriberID) string {
	return EndpointSubscribers + strconv.FormatInt(int64(id), 10) + "/"
}

// URL joins the base URL and endpoint, dropping one trailing slash from the
// base and ensuring the endpoint starts with a slash.
func (c *Client) URL(endpoint string) string {
	base := strings.TrimSuffix(c.Base, "/")
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return base + endpoint
}

// do issues one request. in is JSON-encoded when non-nil; out is decoded from
// a non-empty 2xx body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return unexpected(err)
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return unexpected(err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	log := c.Log.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
	)
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return unexpected(err)
	}
	defer resp.Body.Close()
	log.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode/100 != 2 {
		e := statusError(resp)
		log.Info("request rejected", zap.Int("status", e.Status), zap.String("message", e.Message))
		return e
	}
	if out == nil {
		return nil
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return unexpected(err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Warn("undecodable response body", zap.Error(err))
		return unexpected(err)
	}
	return nil
}
