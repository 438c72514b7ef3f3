package domain

import "time"

type Article struct {
	URL       string
	Title     string
	Content   string
	Published time.Time
}

type SummaryRecord struct {
	ID        int64
	URL       string
	Title     string
	Language  string
	Model     string
	Summary   string
	CreatedAt time.Time
}
