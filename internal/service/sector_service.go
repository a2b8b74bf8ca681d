package service

import (
	"context"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
	"github.com/maouM-cmd/portfolio-dashboard/internal/sector"
)

// SectorService exposes sector grouping, rebalance suggestions against the
// stored target allocation, and the rule-based portfolio diagnostics.
type SectorService struct {
	portfolioService *PortfolioService
	allocationRepo   *repository.AllocationRepository
	classifier       *sector.Classifier
	thresholds       sector.AnalysisThresholds
}

// NewSectorService creates a new SectorService with the provided dependencies.
func NewSectorService(
	portfolioService *PortfolioService,
	allocationRepo *repository.AllocationRepository,
	classifier *sector.Classifier,
) *SectorService {
	return &SectorService{
		portfolioService: portfolioService,
		allocationRepo:   allocationRepo,
		classifier:       classifier,
		thresholds:       sector.DefaultThresholds(),
	}
}

// Groups returns the current holdings partitioned by sector, largest first.
func (s *SectorService) Groups(ctx context.Context) ([]model.SectorGroup, error) {
	valued, _, err := s.portfolioService.ValuedHoldings(ctx)
	if err != nil {
		return nil, err
	}
	return s.classifier.GroupBySector(valued), nil
}

// Rebalance compares the current allocation against the stored targets.
func (s *SectorService) Rebalance(ctx context.Context) ([]model.RebalanceSuggestion, error) {
	valued, _, err := s.portfolioService.ValuedHoldings(ctx)
	if err != nil {
		return nil, err
	}

	targets, err := s.allocationRepo.GetTargets()
	if err != nil {
		return nil, err
	}

	return s.classifier.Rebalance(valued, targets), nil
}

// Analysis runs the portfolio diagnostics over the current valuation.
func (s *SectorService) Analysis(ctx context.Context) (model.PortfolioAnalysis, error) {
	valued, totalValue, err := s.portfolioService.ValuedHoldings(ctx)
	if err != nil {
		return model.PortfolioAnalysis{}, err
	}

	groups := s.classifier.GroupBySector(valued)
	return sector.Analyze(valued, groups, totalValue, s.thresholds), nil
}

// GetTargets returns the stored target allocation.
func (s *SectorService) GetTargets() (map[string]float64, error) {
	return s.allocationRepo.GetTargets()
}

// SetTargets replaces the stored target allocation.
func (s *SectorService) SetTargets(targets map[string]float64) error {
	return s.allocationRepo.SetTargets(targets)
}
