package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/domain/catalog"
	"open-classrooms/internal/pkg/clock"
	"open-classrooms/internal/pkg/config"
	"open-classrooms/internal/pkg/errs"
)

const maxBodyBytes = 8 << 20

type bookingsResponse struct {
	Bookings map[string][]Booking `json:"bookings"`
}

// Client fetches the day's bookings from the scheduling source and turns them into free windows
// for every catalog classroom.
type Client struct {
	httpClient *http.Client
	endpoint   string
	catalog    *catalog.Catalog
	clock      clock.Clock
	loc        *time.Location
	policy     GapPolicy
	logger     *slog.Logger
}

func NewClient(cfg config.Config, cat *catalog.Catalog, clk clock.Clock, logger *slog.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.Upstream.URL); err != nil {
		return nil, fmt.Errorf("invalid API_URL: %w", err)
	}
	loc, err := cfg.Cache.Location()
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		endpoint:   cfg.Upstream.URL,
		catalog:    cat,
		clock:      clk,
		loc:        loc,
		policy: GapPolicy{
			MinGap: time.Duration(cfg.Upstream.MinGapMinutes) * time.Minute,
			Buffer: time.Duration(cfg.Upstream.GapBufferMinutes) * time.Minute,
		},
		logger: logger,
	}, nil
}

func (c *Client) FetchAvailability(ctx context.Context) (availability.Snapshot, error) {
	day := c.clock.Now().In(c.loc)

	bookings, err := c.fetchBookings(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	snap := make(availability.Snapshot, len(c.catalog.Classrooms()))
	for _, room := range c.catalog.Classrooms() {
		b, ok := c.catalog.Building(room.BuildingCode)
		if !ok {
			continue
		}
		snap[room.ID] = FreeWindows(day, b, bookings[room.ID], c.policy)
	}

	c.logger.Info("Fetched classroom availability",
		"date", day.Format(time.DateOnly),
		"classrooms", len(snap),
		"rooms_with_bookings", len(bookings))
	return snap, nil
}

func (c *Client) fetchBookings(ctx context.Context, day time.Time) (map[string][]Booking, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse upstream url")
	}
	q := u.Query()
	q.Set("date", day.Format(time.DateOnly))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upstream request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, errs.Newf("upstream returned status %d", resp.StatusCode)
	}

	var body bookingsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode upstream response")
	}
	if body.Bookings == nil {
		body.Bookings = map[string][]Booking{}
	}
	return body.Bookings, nil
}
