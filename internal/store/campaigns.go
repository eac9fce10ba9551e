// Package store provides the persistence layer for campaign records and
// the menu/inventory reference data.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"

	"promoboard/internal/models"
)

// ErrDuplicateCampaign indicates a campaign already exists for the
// (staff, month) key. Raised by the unique doc_id index, so two concurrent
// submissions can never silently overwrite each other.
var ErrDuplicateCampaign = errors.New("campaign already exists for this staff member and month")

// CampaignStore persists campaign records in the staff_campaigns table
type CampaignStore struct {
	db *gorm.DB
}

// NewCampaignStore creates a campaign store on the given database handle
func NewCampaignStore(db *gorm.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

// Get fetches the campaign for a (staff, month) key, or nil if absent
func (s *CampaignStore) Get(staffName, month string) (*models.Campaign, error) {
	var c models.Campaign
	err := s.db.Where("doc_id = ?", models.CampaignDocID(staffName, month)).First(&c).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return &c, nil
}

// Create inserts a new campaign record. The unique index on doc_id makes
// this a create-if-absent: a concurrent duplicate fails with
// ErrDuplicateCampaign instead of overwriting.
func (s *CampaignStore) Create(c *models.Campaign) error {
	if err := models.ValidateCampaign(c); err != nil {
		return err
	}
	c.DocID = models.CampaignDocID(c.StaffName, c.Month)

	if err := s.db.Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCampaign
		}
		return fmt.Errorf("failed to save campaign: %w", err)
	}
	return nil
}

// SetScore records the AI score for a campaign, but only if it has not been
// scored yet. Returns false when the guard did not match (already scored or
// record gone), which keeps the scoring sweep idempotent under any ordering.
func (s *CampaignStore) SetScore(docID string, score float64) (bool, error) {
	if score < 0 || score > 10 {
		return false, fmt.Errorf("score %v out of range [0,10]", score)
	}

	res := s.db.Model(&models.Campaign{}).
		Where("doc_id = ? AND ai_score IS NULL", docID).
		Update("ai_score", score)
	if res.Error != nil {
		return false, fmt.Errorf("failed to record score: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByMonth returns all campaigns for a month in creation order
func (s *CampaignStore) ListByMonth(month string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.db.Where("month = ?", month).Order("created_at asc").Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Leaderboard returns the month's scored campaigns, best first
func (s *CampaignStore) Leaderboard(month string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.db.Where("month = ? AND ai_score IS NOT NULL", month).
		Order("ai_score desc").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return campaigns, nil
}

// PurgeOtherMonths deletes every campaign whose month differs from the
// current one. Whole records are removed, uniformly, in both the submission
// and scoring paths. Returns the number of records evicted.
func (s *CampaignStore) PurgeOtherMonths(currentMonth string) (int64, error) {
	res := s.db.Where("month <> ?", currentMonth).Delete(&models.Campaign{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge stale campaigns: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// isUniqueViolation recognizes duplicate-key errors from both supported
// drivers (sqlite3 and postgres).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
