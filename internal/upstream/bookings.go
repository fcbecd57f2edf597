package upstream

import (
	"context"
	"fmt"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

// BookingsClient wraps the upstream admin booking endpoints.
type BookingsClient struct {
	c *Client
}

func NewBookingsClient(c *Client) *BookingsClient {
	return &BookingsClient{c: c}
}

func (b *BookingsClient) List(ctx context.Context, store ports.CredentialStore, in ports.ListBookingsInput) (*ports.BookingList, error) {
	q := pageQuery(in.Page, in.Limit)
	if in.Status != "" {
		q.Set("status", string(in.Status))
	}
	var out ports.BookingList
	if err := b.c.get(ctx, store, "/bookings/admin", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BookingsClient) Get(ctx context.Context, store ports.CredentialStore, id int64) (*domain.Booking, error) {
	var out domain.Booking
	if err := b.c.get(ctx, store, fmt.Sprintf("/bookings/admin/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BookingsClient) UpdateStatus(ctx context.Context, store ports.CredentialStore, id int64, in ports.UpdateBookingStatusInput) (*domain.Booking, error) {
	var out domain.Booking
	if err := b.c.patch(ctx, store, fmt.Sprintf("/bookings/admin/%d/status", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
