package db

import "context"

const upsertPreference = `
INSERT INTO preferences (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertPreference(ctx context.Context, key, value string) error {
	_, err := q.db.ExecContext(ctx, upsertPreference, key, value)
	return err
}

const listPreferences = `
SELECT key, value FROM preferences
`

// ListPreferences returns every stored preference as a key/value map.
// Absent keys are the caller's problem; defaults live above this layer.
func (q *Queries) ListPreferences(ctx context.Context) (map[string]string, error) {
	rows, err := q.db.QueryContext(ctx, listPreferences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		prefs[key] = value
	}
	return prefs, rows.Err()
}

const getPreference = `
SELECT value FROM preferences WHERE key = ?
`

func (q *Queries) GetPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := q.db.QueryRowContext(ctx, getPreference, key).Scan(&value)
	return value, err
}
