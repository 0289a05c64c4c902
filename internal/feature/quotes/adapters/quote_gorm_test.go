package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"krx_backend/internal/feature/quotes/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&IndexQuoteModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedQuote creates a test quote in the database for testing.
func seedQuote(t *testing.T, db *gorm.DB, market, indexName string, tradeDate time.Time, closePrice float64) *IndexQuoteModel {
	t.Helper()

	q := &IndexQuoteModel{
		Market:    market,
		IndexName: indexName,
		TradeDate: tradeDate,
		Open:      closePrice - 10,
		High:      closePrice + 5,
		Low:       closePrice - 15,
		Close:     closePrice,
		Volume:    1000,
		Value:     50000,
		FlucRate:  0.5,
	}
	err := db.Create(q).Error
	require.NoError(t, err, "failed to seed quote")

	return q
}

func TestNewQuoteRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewQuoteRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestQuoteGorm_UpsertBatch(t *testing.T) {
	t.Parallel()

	baseDate := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		quotes       []entity.IndexQuote
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, db *gorm.DB)
	}{
		{
			name:   "success: empty batch is a no-op",
			quotes: nil,
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				require.NoError(t, db.Model(&IndexQuoteModel{}).Count(&count).Error)
				assert.Equal(t, int64(0), count)
			},
		},
		{
			name: "success: insert new quotes",
			quotes: []entity.IndexQuote{
				{Market: "kospi", IndexName: "KOSPI", TradeDate: baseDate, Open: 2650, High: 2670, Low: 2640, Close: 2655.28, Volume: 320482000, Value: 8.5e12, FlucRate: -0.55},
				{Market: "kospi", IndexName: "KOSPI 200", TradeDate: baseDate, Open: 354, High: 356, Low: 353, Close: 355.12, Volume: 95120000, Value: 5.1e12, FlucRate: 0.12},
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				require.NoError(t, db.Model(&IndexQuoteModel{}).Count(&count).Error)
				assert.Equal(t, int64(2), count)
			},
		},
		{
			name: "success: conflicting row updates prices instead of duplicating",
			quotes: []entity.IndexQuote{
				{Market: "kospi", IndexName: "KOSPI", TradeDate: baseDate, Close: 2700.00, Volume: 1},
			},
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedQuote(t, db, "kospi", "KOSPI", baseDate, 2655.28)
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var rows []IndexQuoteModel
				require.NoError(t, db.Find(&rows).Error)
				require.Len(t, rows, 1)
				assert.Equal(t, 2700.00, rows[0].Close)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			repo := NewQuoteRepository(db)
			err := repo.UpsertBatch(context.Background(), tt.quotes)
			require.NoError(t, err)

			if tt.validateFunc != nil {
				tt.validateFunc(t, db)
			}
		})
	}
}

func TestQuoteGorm_Find(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewQuoteRepository(db)

	day1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	seedQuote(t, db, "kospi", "KOSPI", day1, 2655)
	seedQuote(t, db, "kospi", "KOSPI", day2, 2660)
	seedQuote(t, db, "kospi", "KOSPI", day3, 2670)
	seedQuote(t, db, "kosdaq", "KOSDAQ", day1, 870)

	t.Run("returns quotes newest first", func(t *testing.T) {
		got, err := repo.Find(context.Background(), "KOSPI", 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, day3, got[0].TradeDate.UTC())
		assert.Equal(t, day1, got[2].TradeDate.UTC())
	})

	t.Run("respects outputsize limit", func(t *testing.T) {
		got, err := repo.Find(context.Background(), "KOSPI", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2670.0, got[0].Close)
	})

	t.Run("unknown index returns empty slice", func(t *testing.T) {
		got, err := repo.Find(context.Background(), "NIKKEI", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
