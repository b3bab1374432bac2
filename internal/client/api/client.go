// Package api is the HTTP client for the portal backend. It wraps the REST
// endpoints in typed methods and keeps the token pair for the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/healophile/internal/common"
)

// File mirrors the server's record shape as rendered to clients.
type File struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	CreatedAt         string   `json:"createdAt"`
	SizeLabel         string   `json:"sizeLabel"`
	OwnerDisplayName  string   `json:"ownerDisplayName"`
	SharedWithNames   []string `json:"sharedWithNames"`
	IsShared          bool     `json:"isShared"`
	IntegrityStamp    string   `json:"integrityStamp"`
	IntegrityVerified bool     `json:"integrityVerified"`
}

// Doctor is a roster entry.
type Doctor struct {
	ID             string `json:"id"`
	DisplayName    string `json:"displayName"`
	SpecialtyLabel string `json:"specialtyLabel"`
}

// User is the profile returned by login.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// UploadResponse is the result of an upload intake.
type UploadResponse struct {
	Record    File   `json:"record"`
	UploadURL string `json:"uploadUrl"`
}

type Client struct {
	baseURL      string
	httpClient   *http.Client
	accessToken  string
	refreshToken string
}

// NewClient constructs a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// LoggedIn reports whether the client holds an access token.
func (c *Client) LoggedIn() bool { return c.accessToken != "" }

// Logout drops the stored token pair.
func (c *Client) Logout() {
	c.accessToken = ""
	c.refreshToken = ""
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any, authed bool) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return resp.StatusCode, fmt.Errorf("%w: %s", common.ErrorUnauthorized, ae.Error)
		case http.StatusNotFound:
			return resp.StatusCode, fmt.Errorf("%w: %s", common.ErrorNotFound, ae.Error)
		case http.StatusConflict:
			// callers inspect the status for idempotent repeats
			return resp.StatusCode, nil
		default:
			return resp.StatusCode, errors.New(ae.Error)
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password, displayName, role string) (*User, error) {
	var u User
	_, err := c.doJSON(ctx, http.MethodPost, "/api/register", map[string]string{
		"username": username, "password": password, "displayName": displayName, "role": role,
	}, &u, false)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and stores the token pair on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var resp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         User   `json:"user"`
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": username, "password": password,
	}, &resp, false)
	if err != nil {
		return nil, err
	}
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	return &resp.User, nil
}

// Refresh rotates the refresh token and replaces the stored pair.
func (c *Client) Refresh(ctx context.Context) error {
	var resp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/token/refresh", map[string]string{
		"refreshToken": c.refreshToken,
	}, &resp, false)
	if err != nil {
		return err
	}
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	return nil
}

// Doctors fetches the practitioner roster.
func (c *Client) Doctors(ctx context.Context) ([]Doctor, error) {
	var out []Doctor
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/doctors", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Files lists the caller's visible files, optionally narrowed by a search
// query and a category facet.
func (c *Client) Files(ctx context.Context, query, category string) ([]File, error) {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if category != "" {
		v.Set("category", category)
	}
	path := "/api/files"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var out []File
	if _, err := c.doJSON(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Upload registers a file and returns the record plus a presigned PUT URL.
func (c *Client) Upload(ctx context.Context, name string, size int64) (*UploadResponse, error) {
	var out UploadResponse
	_, err := c.doJSON(ctx, http.MethodPost, "/api/files", map[string]any{
		"name": name, "size": size,
	}, &out, true)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Share shares a file with a doctor and returns the server-reported outcome
// ("shared" or "already shared").
func (c *Client) Share(ctx context.Context, fileID, recipientID string) (string, error) {
	var out struct {
		Outcome string `json:"outcome"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/api/files/"+fileID+"/share", map[string]string{
		"recipientId": recipientID,
	}, &out, true)
	if err != nil {
		return "", err
	}
	if status == http.StatusConflict {
		return "already shared", nil
	}
	return out.Outcome, nil
}

// Verify reruns the integrity check server-side and returns the records.
func (c *Client) Verify(ctx context.Context) ([]File, error) {
	var out []File
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/files/verify", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadURL fetches a presigned GET URL for a file.
func (c *Client) DownloadURL(ctx context.Context, fileID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/files/"+fileID+"/url", nil, &out, true); err != nil {
		return "", err
	}
	return out.URL, nil
}
