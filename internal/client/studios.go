package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
)

type Studio struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	HourlyRate  float64 `json:"hourly_rate"`
	IsActive    bool    `json:"is_active"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	StepMinutes int     `json:"step_minutes"`
	PhotoURL    string  `json:"photo_url"`
}

// Window is the studio's bookable window.
func (s Studio) Window() (availability.OperatingWindow, error) {
	return availability.NewWindow(s.OpenTime, s.CloseTime, s.StepMinutes)
}

func (c *Client) ListStudios(ctx context.Context, creds Credentials) ([]Studio, error) {
	raw, err := c.do(ctx, creds, http.MethodGet, "/api/studios", nil, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []Studio `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode studios: %w", err)
	}
	return out.Data, nil
}

// FindStudio matches identity against id, name or slug.
func FindStudio(studios []Studio, identity string) (Studio, bool) {
	identity = strings.TrimSpace(identity)
	for _, s := range studios {
		if fmt.Sprint(s.ID) == identity ||
			strings.EqualFold(s.Name, identity) ||
			strings.EqualFold(s.Slug, identity) {
			return s, true
		}
	}
	return Studio{}, false
}
