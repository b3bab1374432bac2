package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/healophile/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestLogin_StoresTokens(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "priya" {
			t.Fatalf("unexpected username: %q", req["username"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  "at",
			"refreshToken": "rt",
			"user":         map[string]string{"id": "u1", "displayName": "Priya Sharma", "role": "patient"},
		})
	})

	user, err := c.Login(context.Background(), "priya", "pass")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.DisplayName != "Priya Sharma" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !c.LoggedIn() {
		t.Fatal("client should be logged in")
	}

	c.Logout()
	if c.LoggedIn() {
		t.Fatal("client should be logged out")
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	_, err := c.Login(context.Background(), "priya", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestFiles_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer at" {
			t.Fatalf("missing bearer token: %q", got)
		}
		if r.URL.Query().Get("q") != "blood" || r.URL.Query().Get("category") != "document" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]File{{ID: "f1", Name: "Blood Test.pdf"}})
	})
	c.accessToken = "at"

	files, err := c.Files(context.Background(), "blood", "document")
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}
	if len(files) != 1 || files[0].ID != "f1" {
		t.Fatalf("unexpected files: %+v", files)
	}
}

func TestShare_OutcomeMapping(t *testing.T) {
	status := http.StatusOK
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"outcome": "shared"})
	})
	c.accessToken = "at"

	outcome, err := c.Share(context.Background(), "f1", "doc123")
	if err != nil || outcome != "shared" {
		t.Fatalf("share: %q err=%v", outcome, err)
	}

	status = http.StatusConflict
	outcome, err = c.Share(context.Background(), "f1", "doc123")
	if err != nil || outcome != "already shared" {
		t.Fatalf("repeat share: %q err=%v", outcome, err)
	}

	status = http.StatusNotFound
	if _, err := c.Share(context.Background(), "nope", "doc123"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpload_ReturnsPresignedURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(UploadResponse{
			Record:    File{ID: "new", Name: "scan.png"},
			UploadURL: "http://minio/put",
		})
	})
	c.accessToken = "at"

	res, err := c.Upload(context.Background(), "scan.png", 123)
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if res.UploadURL != "http://minio/put" || res.Record.ID != "new" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestRefresh_ReplacesPair(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["refreshToken"] != "old-rt" {
			t.Fatalf("unexpected refresh token: %q", req["refreshToken"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"accessToken": "new-at", "refreshToken": "new-rt",
		})
	})
	c.refreshToken = "old-rt"

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if c.accessToken != "new-at" || c.refreshToken != "new-rt" {
		t.Fatalf("pair not replaced: %q %q", c.accessToken, c.refreshToken)
	}
}
