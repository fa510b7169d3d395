package storage

import (
	"context"
	"time"
)

type Interface interface {
	SaveAnalysis(ctx context.Context, analysis Analysis) error
	RecentAnalyses(ctx context.Context, platform, chatID string, limit int) ([]Analysis, error)
	Close() error
}

type Analysis struct {
	ID          string    `json:"id" db:"id"`
	Platform    string    `json:"platform" db:"platform"`
	ChatID      string    `json:"chat_id" db:"chat_id"`
	BirthYear   int       `json:"birth_year" db:"birth_year"`
	Element     string    `json:"element" db:"element"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
