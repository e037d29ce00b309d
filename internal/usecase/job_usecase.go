package usecase

import (
	"context"

	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"
)

type jobUsecase struct {
	repo domain.JobRepository
}

func NewJobUsecase(repo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{repo: repo}
}

// ListJobs returns the seeded listings, newest first. Browse only; no
// search or ranking.
func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
