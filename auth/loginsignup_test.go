package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"luxadmin/gateway"
	"luxadmin/middleware"
	"luxadmin/models"
)

func jsonBody(s string) *strings.Reader { return strings.NewReader(s) }

func TestSessionTokenRoundTrip(t *testing.T) {
	user := models.User{UserID: "u1", Email: "ops@example.com", Name: "Ops"}
	token, err := issueSessionToken(user, "upstream-tok")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := middleware.ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "u1" || claims.Email != "ops@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.UpstreamToken != "upstream-tok" {
		t.Fatalf("upstream token = %q", claims.UpstreamToken)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := middleware.ValidateJWT("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
	if _, err := middleware.ValidateJWT(""); err == nil {
		t.Fatal("empty token accepted")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	old := API
	API = &gateway.Client{BaseURL: srv.URL, HTTP: &http.Client{Timeout: 2 * time.Second}}
	defer func() { API = old }()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(`{"identifier":"ops@example.com","password":"wrong"}`))
	Login(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLoginRequiresFields(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(`{"identifier":""}`))
	Login(rec, req, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
