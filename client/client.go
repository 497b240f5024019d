// Package client is a typed HTTP client for the ride share API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AyushDadhich07/rider/models"
)

// APIError is a non-2xx response decoded from the server's error body
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateRideRequestParams mirrors the creation payload. Date accepts the
// same layouts as the server (RFC 3339 or 2006-01-02T15:04).
type CreateRideRequestParams struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Notes       string `json:"notes,omitempty"`
}

// CreateRideRequest submits a ride request and returns the created record
func (c *Client) CreateRideRequest(params CreateRideRequestParams) (*models.RideRequest, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/ride-requests", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created models.RideRequest
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RecentRideRequests returns the most recently dated requests
func (c *Client) RecentRideRequests() ([]models.RideRequestSummary, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/ride-requests", nil)
	if err != nil {
		return nil, err
	}
	var requests []models.RideRequestSummary
	if err := c.do(req, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SearchRideRequests filters by destination and/or calendar date
// (YYYY-MM-DD). Empty arguments are omitted from the query.
func (c *Client) SearchRideRequests(destination, date string) ([]models.RideRequestSummary, error) {
	query := url.Values{}
	if destination != "" {
		query.Set("destination", destination)
	}
	if date != "" {
		query.Set("date", date)
	}
	endpoint := c.baseURL + "/api/ride-requests/search"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var requests []models.RideRequestSummary
	if err := c.do(req, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// RideRequestDetail returns the full record, including phone and notes
func (c *Client) RideRequestDetail(id uint) (*models.RideRequest, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/ride-requests/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var request models.RideRequest
	if err := c.do(req, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: body.Message, Detail: body.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
