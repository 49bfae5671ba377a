package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"wakeline/pkg/model"
)

// OperatorClient talks to the operator directory service.
type OperatorClient struct {
	httpClient *HttpClient
}

func NewOperatorClient(baseURL string) *OperatorClient {
	return &OperatorClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *OperatorClient) Create(body any, actorRole string) (*Response, error) {
	headers := map[string]string{}
	if actorRole != "" {
		headers["X-Actor-Role"] = actorRole
	}
	return c.httpClient.POSTWithHeaders("/api/v1/operators", body, headers)
}

func (c *OperatorClient) GetAll(limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/operators?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *OperatorClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/operators/id/" + url.PathEscape(id))
}

func (c *OperatorClient) DecodeOperator(resp *Response) (*model.Operator, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode operator wrapper: %w", err)
	}

	var operator model.Operator
	if err := json.Unmarshal(wrapper.Data, &operator); err != nil {
		return nil, fmt.Errorf("could not decode operator: %w", err)
	}
	return &operator, nil
}

func (c *OperatorClient) DecodeOperators(resp *Response) ([]*model.Operator, int64, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, 0, fmt.Errorf("could not decode operators wrapper: %w", err)
	}

	var operators []*model.Operator
	if err := json.Unmarshal(wrapper.Data, &operators); err != nil {
		return nil, 0, fmt.Errorf("could not decode operators: %w", err)
	}
	return operators, wrapper.TotalCount, nil
}
