package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// MonthLayout is the time.Format layout for campaign month keys ("YYYY-MM").
const MonthLayout = "2006-01"

// Campaign represents one staff member's marketing campaign for one month.
// Identity is the (staff, month) pair, realized as the composite DocID so a
// unique index can enforce one submission per staff member per month.
// AIScore is nil until the scoring sweep rates the campaign; a non-nil score
// is final and never overwritten.
type Campaign struct {
	gorm.Model
	DocID          string   `gorm:"column:doc_id;unique_index" json:"doc_id"`
	StaffName      string   `gorm:"column:staff_name" json:"staff_name"`
	Month          string   `gorm:"column:month" json:"month"`
	PromotionType  string   `gorm:"column:promotion_type" json:"promotion_type"`
	Goal           string   `gorm:"column:goal" json:"goal"`
	TargetAudience string   `gorm:"column:target_audience" json:"target_audience,omitempty"`
	Duration       string   `gorm:"column:duration" json:"duration,omitempty"`
	GeneratedText  string   `gorm:"column:campaign;type:text" json:"campaign"`
	AIScore        *float64 `gorm:"column:ai_score" json:"ai_score,omitempty"`
}

// TableName sets the table name for Campaign
func (Campaign) TableName() string {
	return "staff_campaigns"
}

// CampaignDocID builds the composite document ID for a (staff, month) pair
func CampaignDocID(staffName, month string) string {
	return fmt.Sprintf("%s_%s", staffName, month)
}

// Scored reports whether the campaign has already been rated
func (c *Campaign) Scored() bool {
	return c.AIScore != nil
}

// ValidateCampaign validates a campaign record at the store boundary
func ValidateCampaign(c *Campaign) error {
	if c.StaffName == "" {
		return fmt.Errorf("campaign staff name is required")
	}
	if c.Month == "" {
		return fmt.Errorf("campaign month is required")
	}
	if c.PromotionType == "" {
		return fmt.Errorf("campaign promotion type is required")
	}
	if c.Goal == "" {
		return fmt.Errorf("campaign goal is required")
	}
	if c.GeneratedText == "" {
		return fmt.Errorf("campaign text is required")
	}
	if c.AIScore != nil && (*c.AIScore < 0 || *c.AIScore > 10) {
		return fmt.Errorf("campaign score %v out of range [0,10]", *c.AIScore)
	}
	return nil
}
