package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionMintsCookieWhenMissing(t *testing.T) {
	var seen string
	handler := Session("ss_session", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if seen == "" {
		t.Fatalf("expected a session id in context")
	}

	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "ss_session" {
		t.Fatalf("expected session cookie to be set, got %+v", cookies)
	}
	if cookies[0].Value != seen {
		t.Fatalf("cookie and context must agree, cookie=%s ctx=%s", cookies[0].Value, seen)
	}
}

func TestSessionReusesExistingCookie(t *testing.T) {
	var seen string
	handler := Session("ss_session", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: "ss_session", Value: "sess-known"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if seen != "sess-known" {
		t.Fatalf("expected existing session id, got %s", seen)
	}
	if cookies := resp.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("existing session must not be re-issued, got %+v", cookies)
	}
}
