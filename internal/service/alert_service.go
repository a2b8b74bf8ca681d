package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/alerts"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
)

// AlertService manages price alerts: CRUD over the stored set and the
// evaluation cycle that runs the pure evaluator against live quotes and
// persists its transitions.
type AlertService struct {
	alertRepo    *repository.AlertRepository
	quoteService *QuoteService
}

// NewAlertService creates a new AlertService with the provided dependencies.
func NewAlertService(
	alertRepo *repository.AlertRepository,
	quoteService *QuoteService,
) *AlertService {
	return &AlertService{
		alertRepo:    alertRepo,
		quoteService: quoteService,
	}
}

// GetAlerts retrieves all stored alerts.
func (s *AlertService) GetAlerts() ([]model.Alert, error) {
	return s.alertRepo.GetAlerts()
}

// CreateAlert stores a new active alert and returns it with its generated ID.
func (s *AlertService) CreateAlert(symbol, condition string, targetPrice float64) (model.Alert, error) {
	alert := model.Alert{
		ID:          uuid.NewString(),
		Symbol:      symbol,
		Condition:   condition,
		TargetPrice: targetPrice,
		Status:      model.AlertStatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.alertRepo.CreateAlert(alert); err != nil {
		return model.Alert{}, err
	}
	return alert, nil
}

// DeleteAlert removes a single alert.
func (s *AlertService) DeleteAlert(id string) error {
	return s.alertRepo.DeleteAlert(id)
}

// EvaluateNow fetches quotes for every symbol with at least one active alert,
// runs the evaluator, and persists any transitions. It returns the alerts
// that fired on this pass; alerts that fired on an earlier pass are never
// returned again.
func (s *AlertService) EvaluateNow(ctx context.Context) ([]model.TriggeredAlert, error) {
	stored, err := s.alertRepo.GetAlerts()
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(stored))
	for _, alert := range stored {
		if !alert.Triggered() {
			symbols = append(symbols, alert.Symbol)
		}
	}
	if len(symbols) == 0 {
		return []model.TriggeredAlert{}, nil
	}

	quotes := s.quoteService.FetchQuotes(ctx, symbols)

	_, fired := alerts.Evaluate(stored, quotes, time.Now().UTC())
	for _, t := range fired {
		if err := s.alertRepo.MarkTriggered(t.ID, *t.TriggeredAt); err != nil {
			return nil, err
		}
	}

	return fired, nil
}

// ClearTriggered bulk-removes all triggered alerts and reports the count.
func (s *AlertService) ClearTriggered() (int64, error) {
	return s.alertRepo.DeleteTriggered()
}
