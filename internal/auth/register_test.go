package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	handler := NewHandler(service)

	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/user-count", handler.UserCount)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r := setupTestRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupTestRouter()

	w := postJSON(t, r, "/auth/register", map[string]string{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestRouter()

	payload := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	}

	// First request (should succeed)
	w1 := postJSON(t, r, "/auth/register", payload)
	if w1.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w1.Code)
	}

	// Second request (should fail)
	w2 := postJSON(t, r, "/auth/register", payload)
	if w2.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w2.Code)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	r := setupTestRouter()

	_ = postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["access_token"] == "" {
		t.Fatal("expected access_token in response")
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", resp["token_type"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTestRouter()

	_ = postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestUserCount(t *testing.T) {
	r := setupTestRouter()

	_ = postJSON(t, r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	req := httptest.NewRequest(http.MethodGet, "/user-count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]int
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["count"] != 1 {
		t.Fatalf("expected count 1, got %d", resp["count"])
	}
}
