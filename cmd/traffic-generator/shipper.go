package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"freightdesk/internal/dto"
	"freightdesk/internal/entities"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freightdesk_traffic",
		Name:      "requests_total",
		Help:      "Requests sent to freightdesk",
	}, []string{"route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "freightdesk_traffic",
		Name:      "request_duration_seconds",
		Help:      "Round trip time of requests sent to freightdesk",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"route"})

	scenariosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freightdesk_traffic",
		Name:      "scenarios_total",
		Help:      "Completed draft scenarios by outcome",
	}, []string{"outcome"})
)

// shipper logs in once and walks order drafts through the wizard.
type shipper struct {
	baseURL string
	email   string
	client  *http.Client
	token   string
}

func newShipper(baseURL, email string) *shipper {
	return &shipper{
		baseURL: baseURL,
		email:   email,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *shipper) scenario(ctx context.Context) error {
	if s.token == "" {
		var session dto.SessionResponse
		if err := s.call(ctx, http.MethodPost, "/session", "/session",
			dto.SessionCreate{Email: s.email, Role: string(entities.RoleShipper)}, &session); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		s.token = session.Token
	}

	var state dto.DraftState
	if err := s.call(ctx, http.MethodPost, "/drafts", "/drafts", nil, &state); err != nil {
		s.token = ""
		scenariosTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("create draft: %w", err)
	}

	pickup := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	fields := []struct {
		field entities.DraftField
		value string
	}{
		{entities.FieldPickupAddress, "12 rue de Rivoli"},
		{entities.FieldPickupCity, "Paris"},
		{entities.FieldPickupDate, pickup},
		{entities.FieldDeliveryAddress, "5 quai Saint-Antoine"},
		{entities.FieldDeliveryCity, "Lyon"},
		{entities.FieldCargoType, string(entities.CargoTextile)},
		{entities.FieldWeight, "420"},
		{entities.FieldDimensions, "120x80x100"},
		{entities.FieldTransportType, string(entities.VehicleVan)},
		{entities.FieldUrgency, string(entities.UrgencyStandard)},
		{entities.FieldContactName, "Traffic Generator"},
		{entities.FieldContactPhone, "0102030405"},
		{entities.FieldContactEmail, s.email},
	}

	draftPath := "/drafts/" + state.ID
	for _, f := range fields {
		if err := s.call(ctx, http.MethodPut, draftPath+"/fields/"+string(f.field), "/drafts/{id}/fields/{field}",
			dto.DraftFieldUpdate{Value: f.value}, &state); err != nil {
			scenariosTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("set %s: %w", f.field, err)
		}
	}

	for range len(state.Steps) - 1 {
		if err := s.call(ctx, http.MethodPost, draftPath+"/advance", "/drafts/{id}/advance", nil, &state); err != nil {
			scenariosTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("advance: %w", err)
		}
	}

	if err := s.call(ctx, http.MethodPost, draftPath+"/submit", "/drafts/{id}/submit", nil, &state); err != nil {
		scenariosTotal.WithLabelValues("rejected").Inc()
		return fmt.Errorf("submit: %w", err)
	}
	scenariosTotal.WithLabelValues("submitted").Inc()

	var orders []dto.Order
	if err := s.call(ctx, http.MethodGet, "/orders?search=Lyon", "/orders", nil, &orders); err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	return nil
}

func (s *shipper) call(ctx context.Context, method, path, route string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(route, "error").Inc()
		return err
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(route, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: status %d", method, route, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
