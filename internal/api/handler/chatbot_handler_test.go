package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/core/domain"
)

type stubChatbot struct {
	answerFn func(ctx context.Context, role domain.Role, rawText string) string
}

func (s *stubChatbot) Answer(ctx context.Context, role domain.Role, rawText string) string {
	return s.answerFn(ctx, role, rawText)
}

func TestChatbotHandler_Query(t *testing.T) {
	stub := &stubChatbot{
		answerFn: func(ctx context.Context, role domain.Role, rawText string) string {
			if role != domain.RoleDoctor {
				t.Fatalf("unexpected role: %s", role)
			}
			if rawText != "List all patients" {
				t.Fatalf("unexpected query: %q", rawText)
			}
			return "You are not authorized to list all patients."
		},
	}
	handler := NewChatbotHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/chatbot/query", `{"query":"List all patients"}`)
	c.Set("username", "dr.grey")
	c.Set("role", "doctor")

	if err := handler.Query(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["response"] != "You are not authorized to list all patients." {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestChatbotHandler_EmptyQuery(t *testing.T) {
	stub := &stubChatbot{
		answerFn: func(ctx context.Context, role domain.Role, rawText string) string {
			t.Fatalf("should not be called")
			return ""
		},
	}
	handler := NewChatbotHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/chatbot/query", `{"query":""}`)
	c.Set("username", "dr.grey")
	c.Set("role", "doctor")

	err := handler.Query(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

// A request that somehow reaches the handler without auth claims is rejected,
// not answered.
func TestChatbotHandler_MissingClaims(t *testing.T) {
	stub := &stubChatbot{
		answerFn: func(ctx context.Context, role domain.Role, rawText string) string {
			t.Fatalf("should not be called")
			return ""
		},
	}
	handler := NewChatbotHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/chatbot/query", `{"query":"List all patients"}`)

	err := handler.Query(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
