package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawprint/animals-api/internal/core/domain"
)

func TestUserHandler_Me_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 5 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.User{ID: 5, Username: "alice", IsAdmin: true}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(5))

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["username"] != "alice" || resp["is_admin"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Me_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Username: "alice", IsAdmin: true},
				{ID: 2, Username: "bob"},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 || users[1]["username"] != "bob" {
		t.Fatalf("unexpected payload: %+v", users)
	}
}

func TestUserHandler_List_RepoFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, context.DeadlineExceeded
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.List(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
