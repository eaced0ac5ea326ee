package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

const DefaultBaseURL = "https://api.github.com"

// Client talks to the hosted-git contents API: one GET to learn the current
// content hash, one PUT to create or replace the file. One attempt each, no
// retry; a failed publish leaves both sides exactly where they were.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time check: *Client must satisfy port.RemoteRepo
var _ port.RemoteRepo = (*Client)(nil)

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
	}
}

// RemoteError carries the remote's own message so the operator sees it
// verbatim, including stale-hash conflicts on concurrent publishes.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string { return e.Message }

func (c *Client) GetFileSHA(ctx context.Context, cfg model.GithubConfig, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentsURL(cfg, path), nil)
	if err != nil {
		return "", err
	}
	setHeaders(req, cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching remote file metadata: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// the file not existing yet is not an error; the PUT will create it
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", remoteErr(resp)
	}

	var out struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding file metadata: %w", err)
	}
	return out.SHA, nil
}

func (c *Client) UpsertFile(ctx context.Context, cfg model.GithubConfig, path string, in port.UpsertFileInput) (string, error) {
	payload := map[string]string{
		"message": in.Message,
		"content": in.Content,
	}
	if in.SHA != "" {
		payload["sha"] = in.SHA
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(cfg, path), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	setHeaders(req, cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pushing remote file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", remoteErr(resp)
	}

	var out struct {
		Commit struct {
			SHA string `json:"sha"`
		} `json:"commit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding commit response: %w", err)
	}
	return out.Commit.SHA, nil
}

func (c *Client) contentsURL(cfg model.GithubConfig, path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, cfg.Owner, cfg.Repo, path)
}

func setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Content-Type", "application/json")
}

func remoteErr(resp *http.Response) error {
	var out struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &out); err != nil || out.Message == "" {
		out.Message = fmt.Sprintf("remote returned status %d", resp.StatusCode)
	}
	return &RemoteError{StatusCode: resp.StatusCode, Message: out.Message}
}
