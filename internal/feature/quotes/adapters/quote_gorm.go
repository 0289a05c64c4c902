package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"krx_backend/internal/feature/quotes/domain/entity"
	"krx_backend/internal/feature/quotes/usecase"
)

type quoteGorm struct {
	db *gorm.DB
}

var _ usecase.QuoteRepository = (*quoteGorm)(nil)

func NewQuoteRepository(db *gorm.DB) *quoteGorm {
	return &quoteGorm{db: db}
}

type IndexQuoteModel struct {
	ID        uint      `gorm:"primaryKey"`
	Market    string    `gorm:"size:16;not null;uniqueIndex:quote_mkt_idx_date,priority:1"`
	IndexName string    `gorm:"size:128;not null;uniqueIndex:quote_mkt_idx_date,priority:2"`
	TradeDate time.Time `gorm:"not null;uniqueIndex:quote_mkt_idx_date,priority:3"`

	Open     float64 `gorm:"not null"`
	High     float64 `gorm:"not null"`
	Low      float64 `gorm:"not null"`
	Close    float64 `gorm:"not null"`
	Volume   int64   `gorm:"not null;default:0"`
	Value    float64 `gorm:"not null;default:0"`
	FlucRate float64 `gorm:"not null;default:0"`
}

func (IndexQuoteModel) TableName() string {
	return "index_quotes"
}

func toModel(e entity.IndexQuote) IndexQuoteModel {
	return IndexQuoteModel{
		Market:    e.Market,
		IndexName: e.IndexName,
		TradeDate: e.TradeDate,
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
		Value:     e.Value,
		FlucRate:  e.FlucRate,
	}
}

func toEntity(m IndexQuoteModel) entity.IndexQuote {
	return entity.IndexQuote{
		Market:    m.Market,
		IndexName: m.IndexName,
		TradeDate: m.TradeDate,
		Open:      m.Open,
		High:      m.High,
		Low:       m.Low,
		Close:     m.Close,
		Volume:    m.Volume,
		Value:     m.Value,
		FlucRate:  m.FlucRate,
	}
}

func (r *quoteGorm) UpsertBatch(ctx context.Context, quotes []entity.IndexQuote) error {
	if len(quotes) == 0 {
		return nil
	}
	ms := make([]IndexQuoteModel, 0, len(quotes))
	for _, e := range quotes {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "market"}, {Name: "index_name"}, {Name: "trade_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "value", "fluc_rate"}),
	}).Create(&ms).Error
}

func (r *quoteGorm) Find(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
	var rows []IndexQuoteModel
	q := r.db.WithContext(ctx).
		Where("index_name = ?", indexName).
		Order("trade_date DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.IndexQuote, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
