package db

import "context"

type InsertHistoryItemParams struct {
	ID           string
	CreatedAtMs  int64
	ProductImage string
	CompanyName  string
	Headline     string
	Body         string
	Hashtags     string
}

const insertHistoryItem = `
INSERT INTO history_items (id, created_at_ms, product_image, company_name, headline, body, hashtags)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

func (q *Queries) InsertHistoryItem(ctx context.Context, arg InsertHistoryItemParams) error {
	_, err := q.db.ExecContext(ctx, insertHistoryItem,
		arg.ID,
		arg.CreatedAtMs,
		arg.ProductImage,
		arg.CompanyName,
		arg.Headline,
		arg.Body,
		arg.Hashtags,
	)
	return err
}

const listHistoryItems = `
SELECT id, created_at_ms, product_image, company_name, headline, body, hashtags
FROM history_items
ORDER BY created_at_ms DESC, id DESC
`

func (q *Queries) ListHistoryItems(ctx context.Context) ([]HistoryItem, error) {
	rows, err := q.db.QueryContext(ctx, listHistoryItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []HistoryItem
	for rows.Next() {
		var item HistoryItem
		if err := rows.Scan(
			&item.ID,
			&item.CreatedAtMs,
			&item.ProductImage,
			&item.CompanyName,
			&item.Headline,
			&item.Body,
			&item.Hashtags,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const getHistoryItem = `
SELECT id, created_at_ms, product_image, company_name, headline, body, hashtags
FROM history_items
WHERE id = ?
`

func (q *Queries) GetHistoryItem(ctx context.Context, id string) (HistoryItem, error) {
	var item HistoryItem
	err := q.db.QueryRowContext(ctx, getHistoryItem, id).Scan(
		&item.ID,
		&item.CreatedAtMs,
		&item.ProductImage,
		&item.CompanyName,
		&item.Headline,
		&item.Body,
		&item.Hashtags,
	)
	return item, err
}

const countHistoryItems = `
SELECT COUNT(*) FROM history_items
`

func (q *Queries) CountHistoryItems(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countHistoryItems).Scan(&count)
	return count, err
}

const pruneHistoryItems = `
DELETE FROM history_items
WHERE id NOT IN (
    SELECT id FROM history_items
    ORDER BY created_at_ms DESC, id DESC
    LIMIT ?
)
`

// PruneHistoryItems deletes everything past the newest keep items.
func (q *Queries) PruneHistoryItems(ctx context.Context, keep int64) error {
	_, err := q.db.ExecContext(ctx, pruneHistoryItems, keep)
	return err
}
