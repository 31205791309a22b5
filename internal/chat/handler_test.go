package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type FakeCompleter struct {
	reply string
	err   error
}

func (f *FakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

func setupChatRouter(completer Completer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", NewHandler(completer).Chat)
	return r
}

func postChat(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChat_Success(t *testing.T) {
	router := setupChatRouter(&FakeCompleter{reply: "Stay heart healthy!"})

	w := postChat(t, router, map[string]string{"message": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["reply"] != "Stay heart healthy!" {
		t.Fatalf("unexpected reply: %q", resp["reply"])
	}
}

func TestChat_EmptyCompletionGetsFallbackReply(t *testing.T) {
	router := setupChatRouter(&FakeCompleter{reply: ""})

	w := postChat(t, router, map[string]string{"message": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["reply"] != slowReply {
		t.Fatalf("expected fallback reply, got %q", resp["reply"])
	}
}

func TestChat_MissingMessage(t *testing.T) {
	router := setupChatRouter(&FakeCompleter{})

	w := postChat(t, router, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
