// Package client talks to the posts API and keeps a local feed of posts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
)

const dialTimeout = 10 * time.Second
const reqTimeout = 30 * time.Second

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sends token as the session cookie on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	netDialer := &net.Dialer{Timeout: dialTimeout}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{DialContext: netDialer.DialContext},
			Timeout:   reqTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	var docs []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &docs); err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, model.NormalizePost(doc))
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var doc map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+id, nil, &doc); err != nil {
		return nil, err
	}

	post := model.NormalizePost(doc)
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, payload map[string]any) (*model.Post, error) {
	var doc map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/posts", payload, &doc); err != nil {
		return nil, err
	}

	post := model.NormalizePost(doc)
	return &post, nil
}

// LikePost returns the like count the server holds after the increment.
func (c *Client) LikePost(ctx context.Context, id string) (int64, error) {
	var resp dto.LikeResponse
	if err := c.do(ctx, http.MethodPost, "/api/posts/"+id+"/like", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Likes, nil
}

func (c *Client) PatchPost(ctx context.Context, id string, req dto.PatchPostRequest) error {
	var resp dto.SuccessResponse
	return c.do(ctx, http.MethodPatch, "/api/posts/"+id, req, &resp)
}

func (c *Client) AddComment(ctx context.Context, id string, text string) (*model.Comment, error) {
	var doc map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/posts/"+id+"/comment", dto.CreateCommentRequest{Text: text}, &doc); err != nil {
		return nil, err
	}

	comment := model.NormalizeComment(doc)
	return &comment, nil
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: c.token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleAPIError(resp, errorBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func handleAPIError(r *http.Response, errBody []byte) *APIError {
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(errBody, &errResp); err != nil || errResp.Error == "" {
		return &APIError{Status: r.StatusCode, Message: strings.TrimSpace(string(errBody))}
	}
	return &APIError{Status: r.StatusCode, Message: errResp.Error}
}
