// Package campaigns implements the monthly campaign lifecycle: one
// generated campaign per staff member per month, scored at most once by the
// scoring sweep, with prior-month records purged lazily whenever a
// submission or sweep runs.
package campaigns

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"promoboard/internal/generator"
	"promoboard/internal/inventory"
	"promoboard/internal/models"
	"promoboard/internal/monitoring"
	"promoboard/internal/store"
)

var (
	// ErrInvalidRequest indicates a submission with missing required fields
	ErrInvalidRequest = errors.New("staff name, promotion type and goal are required")

	// ErrInfeasible indicates no dish can be prepared from current inventory.
	// The submission is refused and nothing is written.
	ErrInfeasible = errors.New("no dishes can be prepared from current inventory")

	// ErrAlreadySubmitted indicates a campaign already exists for this staff
	// member this month. The existing record accompanies the error.
	ErrAlreadySubmitted = errors.New("campaign already submitted this month")

	// ErrGenerationFailed indicates the text generation call failed.
	// The submission is aborted with nothing written.
	ErrGenerationFailed = errors.New("campaign generation failed")
)

// CampaignStore is the persistence surface the lifecycle needs
type CampaignStore interface {
	Get(staffName, month string) (*models.Campaign, error)
	Create(c *models.Campaign) error
	SetScore(docID string, score float64) (bool, error)
	ListByMonth(month string) ([]models.Campaign, error)
	Leaderboard(month string) ([]models.Campaign, error)
	PurgeOtherMonths(currentMonth string) (int64, error)
}

// Catalog reads menu and inventory reference data
type Catalog interface {
	Menu() ([]models.MenuItem, error)
	Inventory() ([]models.InventoryItem, error)
}

// TextGenerator produces and rates campaign copy
type TextGenerator interface {
	GenerateCampaign(ctx context.Context, req generator.CampaignRequest) (string, error)
	RateCampaign(ctx context.Context, campaignText string) (float64, error)
}

// SubmitRequest carries one staff member's submission inputs
type SubmitRequest struct {
	StaffName      string `json:"staff_name" binding:"required"`
	PromotionType  string `json:"promotion_type" binding:"required"`
	Goal           string `json:"goal" binding:"required"`
	TargetAudience string `json:"target_audience"`
	Duration       string `json:"duration"`
}

// SweepSummary reports the outcome of one scoring sweep
type SweepSummary struct {
	Month   string `json:"month"`
	Scored  int    `json:"scored"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

// Service orchestrates submissions, scoring sweeps and leaderboard reads.
// All collaborators are passed in at construction; the clock is injectable
// so month boundaries can be pinned in tests.
type Service struct {
	campaigns CampaignStore
	catalog   Catalog
	gen       TextGenerator
	monitor   *monitoring.Monitor
	metrics   *monitoring.Metrics
	now       func() time.Time
}

// NewService wires the campaign lifecycle. A nil clock defaults to time.Now.
func NewService(campaigns CampaignStore, catalog Catalog, gen TextGenerator, monitor *monitoring.Monitor, metrics *monitoring.Metrics, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		campaigns: campaigns,
		catalog:   catalog,
		gen:       gen,
		monitor:   monitor,
		metrics:   metrics,
		now:       clock,
	}
}

// CurrentMonth returns the month key the service is operating in
func (s *Service) CurrentMonth() string {
	return s.now().Format(models.MonthLayout)
}

// Submit generates and records a campaign for the current month. Refused
// with ErrAlreadySubmitted (existing record returned alongside) when the
// staff member already has one, and with ErrInfeasible when the kitchen
// cannot prepare a single dish; neither refusal writes anything.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*models.Campaign, error) {
	if req.StaffName == "" || req.PromotionType == "" || req.Goal == "" {
		return nil, ErrInvalidRequest
	}

	now := s.now()
	month := now.Format(models.MonthLayout)
	if err := s.rollover(month); err != nil {
		return nil, err
	}

	// Fast path: an existing record short-circuits before any model call.
	// The unique index below remains the actual guard.
	existing, err := s.campaigns.Get(req.StaffName, month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
		s.monitor.RecordSubmission(month, false)
		return existing, ErrAlreadySubmitted
	}

	dishes, err := s.FeasibleDishes()
	if err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		s.metrics.SubmissionsTotal.WithLabelValues("infeasible").Inc()
		s.monitor.RecordSubmission(month, false)
		return nil, ErrInfeasible
	}

	text, err := s.gen.GenerateCampaign(ctx, generator.CampaignRequest{
		StaffName:      req.StaffName,
		PromotionType:  req.PromotionType,
		Goal:           req.Goal,
		TargetAudience: req.TargetAudience,
		Duration:       req.Duration,
		MonthName:      now.Format("January 2006"),
		Dishes:         dishes,
	})
	if err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		s.metrics.GenerationFailures.Inc()
		s.monitor.RecordSubmission(month, false)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	c := &models.Campaign{
		StaffName:      req.StaffName,
		Month:          month,
		PromotionType:  req.PromotionType,
		Goal:           req.Goal,
		TargetAudience: req.TargetAudience,
		Duration:       req.Duration,
		GeneratedText:  text,
	}
	if err := s.campaigns.Create(c); err != nil {
		if errors.Is(err, store.ErrDuplicateCampaign) {
			// Lost the race to a concurrent submission for the same key
			s.metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
			s.monitor.RecordSubmission(month, false)
			winner, getErr := s.campaigns.Get(req.StaffName, month)
			if getErr != nil || winner == nil {
				return nil, ErrAlreadySubmitted
			}
			return winner, ErrAlreadySubmitted
		}
		return nil, err
	}

	s.metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	s.monitor.RecordSubmission(month, true)
	log.Printf("Campaign submitted by %s for %s", req.StaffName, month)
	return c, nil
}

// RunScoringSweep rates every unscored current-month campaign. A failure on
// one record is logged, counted, and leaves that record unscored for a later
// sweep; it never aborts the batch. Running the sweep twice scores nothing
// the second time.
func (s *Service) RunScoringSweep(ctx context.Context) (SweepSummary, error) {
	month := s.now().Format(models.MonthLayout)
	summary := SweepSummary{Month: month}

	if err := s.rollover(month); err != nil {
		return summary, err
	}

	records, err := s.campaigns.ListByMonth(month)
	if err != nil {
		return summary, err
	}

	for i := range records {
		c := &records[i]
		if c.Scored() {
			summary.Skipped++
			s.metrics.SweepSkippedTotal.Inc()
			continue
		}

		score, err := s.gen.RateCampaign(ctx, c.GeneratedText)
		if err != nil {
			log.Printf("Failed to score %s's campaign: %v", c.StaffName, err)
			summary.Failed++
			s.metrics.SweepFailedTotal.Inc()
			continue
		}

		updated, err := s.campaigns.SetScore(c.DocID, score)
		if err != nil {
			log.Printf("Failed to record score for %s: %v", c.StaffName, err)
			summary.Failed++
			s.metrics.SweepFailedTotal.Inc()
			continue
		}
		if !updated {
			// Scored by someone else between the list and the update
			summary.Skipped++
			s.metrics.SweepSkippedTotal.Inc()
			continue
		}

		log.Printf("%s's campaign rated %.2f/10", c.StaffName, score)
		summary.Scored++
		s.metrics.SweepScoredTotal.Inc()
	}

	s.monitor.RecordSweep(month, summary.Scored, summary.Skipped, summary.Failed)
	return summary, nil
}

// Leaderboard returns the scored campaigns for a month, best score first.
// An empty month means the current one.
func (s *Service) Leaderboard(month string) ([]models.Campaign, error) {
	if month == "" {
		month = s.now().Format(models.MonthLayout)
	}
	return s.campaigns.Leaderboard(month)
}

// CampaignForStaff returns a staff member's current-month campaign, or nil
func (s *Service) CampaignForStaff(staffName string) (*models.Campaign, error) {
	return s.campaigns.Get(staffName, s.now().Format(models.MonthLayout))
}

// Menu returns the menu reference data
func (s *Service) Menu() ([]models.MenuItem, error) {
	return s.catalog.Menu()
}

// Inventory returns the inventory reference data
func (s *Service) Inventory() ([]models.InventoryItem, error) {
	return s.catalog.Inventory()
}

// FeasibleDishes returns the dishes preparable from today's valid inventory
func (s *Service) FeasibleDishes() ([]string, error) {
	menu, err := s.catalog.Menu()
	if err != nil {
		return nil, err
	}
	items, err := s.catalog.Inventory()
	if err != nil {
		return nil, err
	}
	available := inventory.ValidIngredients(items, s.now())
	return inventory.PossibleDishes(menu, available), nil
}

// rollover evicts campaigns from months other than the current one. It runs
// at the start of every submission and sweep, never on a schedule.
func (s *Service) rollover(currentMonth string) error {
	purged, err := s.campaigns.PurgeOtherMonths(currentMonth)
	if err != nil {
		return err
	}
	if purged > 0 {
		log.Printf("Rollover purged %d campaign(s) from months before %s", purged, currentMonth)
	}
	return nil
}
