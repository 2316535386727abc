package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/joblane/careers-api/internal/core/domain"
)

type stubApplicationService struct {
	applyFn func(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error)
}

func (s *stubApplicationService) Apply(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error) {
	return s.applyFn(ctx, caller, username, jobID)
}

func TestApplicationHandler_Apply_Success(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error) {
			if username != "u2" || jobID != "j100" {
				t.Fatalf("unexpected args: %s %s", username, jobID)
			}
			return jobID, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/u2/jobs/j100", "")
	c.SetParamNames("username", "id")
	c.SetParamValues("u2", "j100")

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["applied"] != "j100" {
		t.Fatalf("expected applied j100, got %v", resp)
	}
}

func TestApplicationHandler_Apply_Duplicate(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error) {
			return "", domain.ErrAlreadyApplied
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/u2/jobs/j100", "")
	c.SetParamNames("username", "id")
	c.SetParamValues("u2", "j100")

	_ = h.Apply(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "bad request, cannot apply twice" {
		t.Fatalf("unexpected message: %v", resp["error"])
	}
}

func TestApplicationHandler_Apply_JobMissing(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error) {
			return "", domain.ErrJobNotFound
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/u2/jobs/j999", "")
	c.SetParamNames("username", "id")
	c.SetParamValues("u2", "j999")

	_ = h.Apply(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestApplicationHandler_Apply_Denied(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error) {
			return "", domain.ErrMustBeSelfOrAdmin
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/u2/jobs/j100", "")
	c.SetParamNames("username", "id")
	c.SetParamValues("u2", "j100")

	_ = h.Apply(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Must be current user or admin to access!" {
		t.Fatalf("unexpected message: %v", resp["error"])
	}
}
