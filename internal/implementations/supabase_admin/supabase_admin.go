package supabaseadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/identity"
)

const adminUsersPath = "/auth/v1/admin/users/"

// APIError is returned for non-2xx responses of the auth admin API. Its
// message is the one reported by the API.
type APIError struct {
	Status  int
	Message string
}

func (err *APIError) Error() string {
	return err.Message
}

type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (b *errorBody) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(b)
}

func (b *errorBody) message() string {
	for _, m := range []string{b.Msg, b.Message, b.ErrorDescription, b.Error} {
		if m != "" {
			return m
		}
	}
	return ""
}

type updateUserBody struct {
	Password string `json:"password"`
}

// Client calls the administrative endpoints of the Supabase auth server with
// the service role key.
type Client struct {
	baseURL        *url.URL
	serviceRoleKey string
	httpClient     http.Client
}

func New(baseURL string, serviceRoleKey string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, e.NewInvalidConfigError("SUPABASE_URL", "must be an absolute URL")
	}
	if serviceRoleKey == "" {
		return nil, e.NewInvalidConfigError("SUPABASE_SERVICE_ROLE_KEY", "must be set")
	}
	return &Client{
		baseURL:        u,
		serviceRoleKey: serviceRoleKey,
		httpClient:     http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) SetPassword(ctx context.Context, id identity.AuthUserID, password identity.RawPassword) error {
	content, err := json.Marshal(updateUserBody{Password: string(password)})
	if err != nil {
		return err
	}

	endpoint := c.baseURL.JoinPath(adminUsersPath, url.PathEscape(string(id)))
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint.String(), bytes.NewReader(content))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("apikey", c.serviceRoleKey)
	request.Header.Set("Authorization", "Bearer "+c.serviceRoleKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		io.Copy(io.Discard, response.Body)
		return nil
	}

	body := errorBody{}
	body.FromJSON(response.Body)
	msg := body.message()
	if msg == "" {
		msg = fmt.Sprintf("auth admin API responded with status %d", response.StatusCode)
	}
	return &APIError{Status: response.StatusCode, Message: msg}
}
