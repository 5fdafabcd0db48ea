package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee_portal/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	auth := &mockAuth{genTokenToken: "tok123"}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postJSON(r, "/login", `{"username":"Sudhanshu","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if m["message"] != "Login successful" {
		t.Fatalf("expected login message, got %v", m["message"])
	}
	if auth.lastGenUsername != "Sudhanshu" || auth.lastGenPassword != "password123" {
		t.Fatalf("credentials not passed through: %q/%q", auth.lastGenUsername, auth.lastGenPassword)
	}
}

func TestLoginHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"unknown user", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"wrong password", service.ErrInvalidPassword, http.StatusUnauthorized, "Incorrect password"},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{genTokenErr: tc.err}
			s := &service.Service{Authorization: auth}
			r := newTestRouter(s)

			w := postJSON(r, "/login", `{"username":"u","password":"p"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}

			var out struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", out.Message, tc.wantMsg)
			}
		})
	}
}

func TestLoginHandler_BadBody(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	// missing password → binding failure
	w := postJSON(r, "/login", `{"username":"u"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}
