package domain

import (
	"context"
	"time"
)

// Job is a seeded listing entry. Listings are browse-only; there is no
// search, ranking, or matching.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	SalaryRange string    `json:"salaryRange"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	PostedAt    time.Time `json:"postedAt"`
}

type JobRepository interface {
	List(ctx context.Context) ([]Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
}
