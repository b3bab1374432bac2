package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestLogin_SetsUser(t *testing.T) {
	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  "at",
			"refreshToken": "rt",
			"user":         map[string]string{"id": "u1", "displayName": "Priya Sharma", "role": "patient"},
		})
	}, "priya\n")

	origPw := getPassword
	getPassword = func(w io.Writer) (string, error) { return "pass", nil }
	t.Cleanup(func() { getPassword = origPw })

	if err := app.Login(context.Background()); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !app.isLoggedIn() {
		t.Fatal("not logged in after Login")
	}
	if app.getStatus() != "(Priya Sharma patient)" {
		t.Fatalf("unexpected status: %q", app.getStatus())
	}
	if !strings.Contains(strings.Join(*printed, ""), "Welcome, Priya Sharma!") {
		t.Fatalf("no greeting: %v", *printed)
	}
}

func TestLogin_Failure(t *testing.T) {
	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}, "priya\n")

	origPw := getPassword
	getPassword = func(w io.Writer) (string, error) { return "wrong", nil }
	t.Cleanup(func() { getPassword = origPw })

	if err := app.Login(context.Background()); err == nil {
		t.Fatal("expected login error")
	}
	if app.isLoggedIn() {
		t.Fatal("logged in after failed login")
	}
	if !strings.Contains(strings.Join(*printed, ""), "Login failed:") {
		t.Fatalf("no failure message: %v", *printed)
	}
}

func TestRegisterAndLogout(t *testing.T) {
	app, printed := newAppForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "new-id"})
	}, "arjun\nDr. Arjun Singh\ndoctor\n")

	origPw := getPassword
	getPassword = func(w io.Writer) (string, error) { return "pw", nil }
	t.Cleanup(func() { getPassword = origPw })

	if err := app.Register(context.Background()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if !strings.Contains(strings.Join(*printed, ""), "Success!") {
		t.Fatalf("no success message: %v", *printed)
	}

	if err := app.Logout(context.Background()); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if app.isLoggedIn() {
		t.Fatal("still logged in after Logout")
	}
}
