// Package hatraapi is the typed client for the platform REST backend. All
// state the platform owns lives server-side; this package only moves it.
package hatraapi

import (
	"encoding/json"
	"time"

	"github.com/dchest/uniuri"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	http  *resty.Client
	token func() string
}

// New builds a client against baseUrl. token is consulted on every request
// so a login performed mid-session is picked up without rebuilding the
// client.
func New(baseUrl string, timeout time.Duration, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	httpClient := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uniuri.NewLen(16))
		if t := token(); t != "" {
			req.SetHeader("Authorization", "Bearer "+t)
		}
		return nil
	})
	c := &Client{http: httpClient, token: token}
	return c
}

// check turns a transport result into the client error taxonomy. A nil
// return means the response was a success and its body can be trusted.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return &APIError{Message: NetworkMessage, RawMessage: err.Error()}
	}
	if resp.IsSuccess() {
		return nil
	}
	apiErr := &APIError{Status: resp.StatusCode()}
	var body struct {
		Message               string `json:"message"`
		Error                 string `json:"error"`
		MaintenanceMode       bool   `json:"maintenanceMode"`
		RegistrationsDisabled bool   `json:"registrationsDisabled"`
		DepositsDisabled      bool   `json:"depositsDisabled"`
		WithdrawalsDisabled   bool   `json:"withdrawalsDisabled"`
		MaxUsersReached       bool   `json:"maxUsersReached"`
	}
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil {
		apiErr.RawMessage = body.Message
		if apiErr.RawMessage == "" {
			apiErr.RawMessage = body.Error
		}
		apiErr.MaintenanceMode = body.MaintenanceMode
		apiErr.RegistrationsDisabled = body.RegistrationsDisabled
		apiErr.DepositsDisabled = body.DepositsDisabled
		apiErr.WithdrawalsDisabled = body.WithdrawalsDisabled
		apiErr.MaxUsersReached = body.MaxUsersReached
	}
	apiErr.Message = SanitizeMessage(apiErr.RawMessage)
	return apiErr
}
