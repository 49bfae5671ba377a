package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"wakeline/pkg/model"
)

// SessionClient talks to the sessions service over its public API.
type SessionClient struct {
	httpClient *HttpClient
}

func NewSessionClient(baseURL string) *SessionClient {
	return &SessionClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *SessionClient) List(window, query, language string, limit int, offset int64) (*Response, error) {
	q := url.Values{}
	if window != "" {
		q.Set("window", window)
	}
	if query != "" {
		q.Set("q", query)
	}
	if language != "" {
		q.Set("language", language)
	}
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("offset", fmt.Sprintf("%d", offset))

	return c.httpClient.GET("/api/v1/sessions?" + q.Encode())
}

func (c *SessionClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/sessions/id/" + url.PathEscape(id))
}

func (c *SessionClient) BookSeat(id string, body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/sessions/id/"+url.PathEscape(id)+"/book", body)
}

func (c *SessionClient) JoinWaitlist(id string, body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/sessions/id/"+url.PathEscape(id)+"/waitlist", body)
}

func (c *SessionClient) RequestTrip(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/sessions/requests", body)
}

func (c *SessionClient) ClaimRequest(id string, body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/sessions/id/"+url.PathEscape(id)+"/claim", body)
}

func (c *SessionClient) ListBookings(riderID string, limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/riders/id/%s/bookings?limit=%d&offset=%d", url.PathEscape(riderID), limit, offset)
	return c.httpClient.GET(path)
}

func (c *SessionClient) DecodeSession(resp *Response) (*model.Session, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode session wrapper: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(wrapper.Data, &session); err != nil {
		return nil, fmt.Errorf("could not decode session: %w", err)
	}
	return &session, nil
}

func (c *SessionClient) DecodeSessions(resp *Response) ([]*model.Session, int64, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, 0, fmt.Errorf("could not decode sessions wrapper: %w", err)
	}

	var sessions []*model.Session
	if err := json.Unmarshal(wrapper.Data, &sessions); err != nil {
		return nil, 0, fmt.Errorf("could not decode sessions: %w", err)
	}
	return sessions, wrapper.TotalCount, nil
}

func (c *SessionClient) DecodeBookingResult(resp *Response) (*model.BookingResult, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode booking result wrapper: %w", err)
	}

	var result model.BookingResult
	if err := json.Unmarshal(wrapper.Data, &result); err != nil {
		return nil, fmt.Errorf("could not decode booking result: %w", err)
	}
	return &result, nil
}
