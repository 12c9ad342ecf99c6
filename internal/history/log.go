// Package history is the durable, newest-first log of completed generations.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/storage/db"
)

// DefaultRetention caps the log; the oldest entries are pruned inside the
// same transaction as the append so readers never see the log over the cap.
const DefaultRetention = 200

type Log struct {
	database  *sql.DB
	queries   *db.Queries
	retention int64
}

func NewLog(database *sql.DB, queries *db.Queries) *Log {
	return NewLogWithRetention(database, queries, DefaultRetention)
}

// NewLogWithRetention overrides the retention cap.
func NewLogWithRetention(database *sql.DB, queries *db.Queries, keep int64) *Log {
	return &Log{
		database:  database,
		queries:   queries,
		retention: keep,
	}
}

// Append inserts a completed generation at the head of the log. Insert and
// retention pruning run in one transaction so no reader observes a partial
// write.
func (l *Log) Append(ctx context.Context, item ads.HistoryItem) error {
	hashtags, err := json.Marshal(item.Content.Hashtags)
	if err != nil {
		return fmt.Errorf("marshal hashtags: %w", err)
	}

	tx, err := l.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := l.queries.WithTx(tx)

	if err := qtx.InsertHistoryItem(ctx, db.InsertHistoryItemParams{
		ID:           item.ID,
		CreatedAtMs:  item.CreatedAtMs,
		ProductImage: item.ProductImage,
		CompanyName:  item.CompanyName,
		Headline:     item.Content.Headline,
		Body:         item.Content.Body,
		Hashtags:     string(hashtags),
	}); err != nil {
		return fmt.Errorf("insert history item: %w", err)
	}

	if err := qtx.PruneHistoryItems(ctx, l.retention); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}

	return tx.Commit()
}

// LoadAll returns every stored item, newest first.
func (l *Log) LoadAll(ctx context.Context) ([]ads.HistoryItem, error) {
	rows, err := l.queries.ListHistoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history items: %w", err)
	}

	items := make([]ads.HistoryItem, 0, len(rows))
	for _, row := range rows {
		item, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Get returns a single item by id.
func (l *Log) Get(ctx context.Context, id string) (ads.HistoryItem, error) {
	row, err := l.queries.GetHistoryItem(ctx, id)
	if err != nil {
		return ads.HistoryItem{}, fmt.Errorf("get history item: %w", err)
	}
	return fromRow(row)
}

func fromRow(row db.HistoryItem) (ads.HistoryItem, error) {
	var hashtags []string
	if err := json.Unmarshal([]byte(row.Hashtags), &hashtags); err != nil {
		return ads.HistoryItem{}, fmt.Errorf("unmarshal hashtags for %s: %w", row.ID, err)
	}

	return ads.HistoryItem{
		ID:           row.ID,
		CreatedAtMs:  row.CreatedAtMs,
		ProductImage: row.ProductImage,
		CompanyName:  row.CompanyName,
		Content: ads.AdContent{
			Headline: row.Headline,
			Body:     row.Body,
			Hashtags: hashtags,
		},
	}, nil
}
