package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
)

// ListBookings fetches the existing bookings of one studio and date.
func (c *Client) ListBookings(ctx context.Context, creds Credentials, studio, date string) ([]availability.ExistingBooking, error) {
	q := url.Values{}
	q.Set("studio", studio)
	if date != "" {
		q.Set("date", date)
	}

	raw, err := c.do(ctx, creds, http.MethodGet, "/api/bookings", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeBookings(raw)
}

// decodeBookings accepts either a bare array or a {"data": [...]} envelope.
// The studio is read from studio_name, falling back to studio_id. Rows
// whose time_slot cannot be parsed are skipped.
func decodeBookings(raw []byte) ([]availability.ExistingBooking, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("decode bookings: malformed json")
	}

	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		root = root.Get("data")
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("decode bookings: no booking list in response")
	}

	var out []availability.ExistingBooking
	root.ForEach(func(_, row gjson.Result) bool {
		start, err := availability.ParseTimeOfDay(clipSeconds(row.Get("time_slot").String()))
		if err != nil {
			return true
		}

		studio := strings.TrimSpace(row.Get("studio_name").String())
		if studio == "" {
			studio = row.Get("studio_id").String()
		}

		out = append(out, availability.ExistingBooking{
			Date:           row.Get("date").String(),
			StudioIdentity: studio,
			StartTime:      start,
			DurationHours:  row.Get("duration").Float(),
		})
		return true
	})
	return out, nil
}

// clipSeconds turns "HH:MM:SS" into "HH:MM".
func clipSeconds(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 8 && strings.Count(s, ":") == 2 {
		return s[:5]
	}
	return s
}

type CreateBookingRequest struct {
	Studio       string  `json:"studio"`
	Date         string  `json:"date"`
	TimeSlot     string  `json:"time_slot"`
	Duration     float64 `json:"duration"`
	CustomerName string  `json:"customer_name"`
	Contact      string  `json:"contact"`
	Notes        string  `json:"notes,omitempty"`
}

type Booking struct {
	ID           uint    `json:"id"`
	Reference    string  `json:"reference"`
	StudioID     uint    `json:"studio_id"`
	StudioName   string  `json:"studio_name"`
	CustomerName string  `json:"customer_name"`
	Date         string  `json:"date"`
	TimeSlot     string  `json:"time_slot"`
	Duration     float64 `json:"duration"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}

func (c *Client) CreateBooking(ctx context.Context, creds Credentials, req CreateBookingRequest) (*Booking, error) {
	raw, err := c.do(ctx, creds, http.MethodPost, "/api/bookings", nil, req)
	if err != nil {
		return nil, err
	}

	var b Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}
	return &b, nil
}
