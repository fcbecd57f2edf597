package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

type stubBookingService struct {
	getFn          func(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Booking, error)
	updateStatusFn func(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateBookingStatusInput) (*domain.Booking, error)
}

func (s *stubBookingService) List(ctx context.Context, store ports.CredentialStore, in ports.ListBookingsInput) (*ports.BookingList, error) {
	panic("not used")
}

func (s *stubBookingService) Get(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Booking, error) {
	return s.getFn(ctx, store, id)
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateBookingStatusInput) (*domain.Booking, error) {
	return s.updateStatusFn(ctx, store, id, in)
}

func newBookingStatusContext(t *testing.T, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/"+id+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestBookingHandler_UpdateStatus_PendingCompletes(t *testing.T) {
	stub := &stubBookingService{
		getFn: func(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Booking, error) {
			return &domain.Booking{ID: id, Status: domain.BookingPending}, nil
		},
		updateStatusFn: func(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateBookingStatusInput) (*domain.Booking, error) {
			if in.Status != domain.BookingCompleted || in.Note != "done on site" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Booking{ID: id, Status: in.Status}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := newBookingStatusContext(t, "12", `{"status":"COMPLETED","note":"done on site"}`)
	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "COMPLETED" {
		t.Fatalf("unexpected booking payload: %+v", resp)
	}
}

func TestBookingHandler_UpdateStatus_CompletedIsFinal(t *testing.T) {
	stub := &stubBookingService{
		getFn: func(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Booking, error) {
			return &domain.Booking{ID: id, Status: domain.BookingCompleted}, nil
		},
		updateStatusFn: func(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateBookingStatusInput) (*domain.Booking, error) {
			t.Fatalf("upstream should not be called for an impossible transition")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, _ := newBookingStatusContext(t, "12", `{"status":"CANCELLED"}`)
	err := handler.UpdateStatus(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestBookingHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	stub := &stubBookingService{
		getFn: func(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Booking, error) {
			t.Fatalf("should not fetch for an invalid payload")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, _ := newBookingStatusContext(t, "12", `{"status":"SHIPPED"}`)
	err := handler.UpdateStatus(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBookingHandler_UpdateStatus_BadID(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{})

	c, _ := newBookingStatusContext(t, "abc", `{"status":"COMPLETED"}`)
	err := handler.UpdateStatus(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
