package store

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promoboard/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.AutoMigrate(&models.Campaign{}, &models.MenuItem{}, &models.InventoryItem{})
	require.NoError(t, db.Error)
	return db
}

func draft(staff, month, text string) *models.Campaign {
	return &models.Campaign{
		StaffName:     staff,
		Month:         month,
		PromotionType: "Combo Offer",
		Goal:          "Reduce Food Wastage",
		GeneratedText: text,
	}
}

func TestCreateSetsDocID(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))

	c := draft("Priya", "2025-07", "Soup special")
	require.NoError(t, s.Create(c))
	assert.Equal(t, "Priya_2025-07", c.DocID)

	loaded, err := s.Get("Priya", "2025-07")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Soup special", loaded.GeneratedText)
	assert.Nil(t, loaded.AIScore)
}

func TestCreateDuplicateRejected(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))

	require.NoError(t, s.Create(draft("Priya", "2025-07", "first")))
	err := s.Create(draft("Priya", "2025-07", "second"))
	assert.ErrorIs(t, err, ErrDuplicateCampaign)

	// The winning record is untouched
	loaded, err := s.Get("Priya", "2025-07")
	require.NoError(t, err)
	assert.Equal(t, "first", loaded.GeneratedText)
}

func TestCreateRejectsInvalidRecord(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))
	err := s.Create(&models.Campaign{StaffName: "Priya"})
	assert.Error(t, err)
}

func TestGetAbsent(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))
	loaded, err := s.Get("Nobody", "2025-07")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSetScoreGuarded(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))
	require.NoError(t, s.Create(draft("Priya", "2025-07", "Soup special")))

	updated, err := s.SetScore("Priya_2025-07", 8.5)
	require.NoError(t, err)
	assert.True(t, updated)

	// A second attempt must not re-score
	updated, err = s.SetScore("Priya_2025-07", 3.0)
	require.NoError(t, err)
	assert.False(t, updated)

	loaded, err := s.Get("Priya", "2025-07")
	require.NoError(t, err)
	assert.Equal(t, 8.5, *loaded.AIScore)
}

func TestSetScoreOutOfRange(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))
	_, err := s.SetScore("Priya_2025-07", 11)
	assert.Error(t, err)
}

func TestLeaderboardOrdering(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))
	require.NoError(t, s.Create(draft("Priya", "2025-07", "a")))
	require.NoError(t, s.Create(draft("Marco", "2025-07", "b")))
	require.NoError(t, s.Create(draft("Aisha", "2025-07", "c")))

	_, err := s.SetScore("Priya_2025-07", 6.1)
	require.NoError(t, err)
	_, err = s.SetScore("Marco_2025-07", 9.4)
	require.NoError(t, err)

	ranked, err := s.Leaderboard("2025-07")
	require.NoError(t, err)
	require.Len(t, ranked, 2, "unscored campaigns stay off the leaderboard")
	assert.Equal(t, "Marco", ranked[0].StaffName)
	assert.Equal(t, "Priya", ranked[1].StaffName)
}

func TestPurgeOtherMonths(t *testing.T) {
	s := NewCampaignStore(openTestDB(t))
	require.NoError(t, s.Create(draft("Priya", "2025-06", "june")))
	require.NoError(t, s.Create(draft("Marco", "2025-07", "july")))

	purged, err := s.PurgeOtherMonths("2025-07")
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	gone, err := s.Get("Priya", "2025-06")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := s.Get("Marco", "2025-07")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
