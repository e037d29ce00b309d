package postgres

import (
	"context"
	"fmt"

	"recruiterconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	query := `
		SELECT id, title, company, location, type, salary_range, description, tags, posted_at
		FROM jobs
		ORDER BY posted_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		var tags []string
		err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Type,
			&j.SalaryRange, &j.Description, pq.Array(&tags), &j.PostedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		j.Tags = tags
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}
