package db

import "time"

type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type HistoryItem struct {
	ID           string
	CreatedAtMs  int64
	ProductImage string
	CompanyName  string
	Headline     string
	Body         string
	Hashtags     string
}
