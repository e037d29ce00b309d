package postgres

import (
	"context"
	"errors"
	"fmt"

	"recruiterconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicantRepository struct {
	db *pgxpool.Pool
}

func NewApplicantRepository(db *pgxpool.Pool) domain.ApplicantRepository {
	return &applicantRepository{db: db}
}

// EnsureExists creates the empty profile row for a freshly typed user.
// Existence-checked so a repeated type assignment never duplicates or
// overwrites the row.
func (r *applicantRepository) EnsureExists(ctx context.Context, userID string) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applicant_profiles WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check applicant profile existence: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO applicant_profiles (user_id, created_at, updated_at) VALUES ($1, NOW(), NOW())
		 ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("failed to create applicant profile: %w", err)
	}
	return nil
}

func (r *applicantRepository) GetByUserID(ctx context.Context, userID string) (*domain.ApplicantProfile, error) {
	query := `
		SELECT p.id, p.user_id,
			COALESCE(p.headline, ''), COALESCE(p.bio, ''),
			COALESCE(p.years_of_experience, 0),
			COALESCE(p.job_title, ''), COALESCE(p.location, ''),
			p.resume_url, u.name, u.email, u.image_url,
			p.created_at, p.updated_at
		FROM applicant_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var p domain.ApplicantProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Headline, &p.Bio, &p.YearsOfExperience,
		&p.JobTitle, &p.Location, &p.ResumeURL,
		&p.Name, &p.Email, &p.Image,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Skills = []string{}
	p.Education = []domain.EducationEntry{}

	skillRows, err := r.db.Query(ctx,
		`SELECT name FROM applicant_skills WHERE applicant_id = $1 ORDER BY name ASC`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var name string
		if err := skillRows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		p.Skills = append(p.Skills, name)
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skills: %w", err)
	}

	eduRows, err := r.db.Query(ctx, `
		SELECT id, institution, degree, field_of_study, from_year, to_year, is_current
		FROM applicant_education WHERE applicant_id = $1 ORDER BY from_year DESC`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var e domain.EducationEntry
		if err := eduRows.Scan(&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.FromYear, &e.ToYear, &e.IsCurrent); err != nil {
			return nil, fmt.Errorf("failed to scan education entry: %w", err)
		}
		p.Education = append(p.Education, e)
	}
	if err := eduRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating education: %w", err)
	}

	return &p, nil
}

// Upsert applies the save in one transaction: scalar upsert with
// COALESCE partial-update semantics, then full replacement of both
// child collections. Concurrent saves of the same profile cannot
// interleave a delete from one request with an insert from another.
func (r *applicantRepository) Upsert(ctx context.Context, userID string, in *domain.ApplicantProfileInput, resumeURL *string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE applicant_profiles SET
			headline = COALESCE($2, headline),
			bio = COALESCE($3, bio),
			years_of_experience = COALESCE($4, years_of_experience),
			job_title = COALESCE($5, job_title),
			location = COALESCE($6, location),
			resume_url = COALESCE($7, resume_url),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING id`

	var profileID int64
	err = tx.QueryRow(ctx, updateQuery, userID,
		in.Headline, in.Bio, in.YearsOfExperience, in.JobTitle, in.Location, resumeURL,
	).Scan(&profileID)
	if errors.Is(err, pgx.ErrNoRows) {
		insertQuery := `
			INSERT INTO applicant_profiles (user_id, headline, bio, years_of_experience, job_title, location, resume_url, created_at, updated_at)
			VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, 0), COALESCE($5, ''), COALESCE($6, ''), $7, NOW(), NOW())
			RETURNING id`
		err = tx.QueryRow(ctx, insertQuery, userID,
			in.Headline, in.Bio, in.YearsOfExperience, in.JobTitle, in.Location, resumeURL,
		).Scan(&profileID)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert applicant profile: %w", err)
	}

	// Skills: delete all, then insert the submitted set.
	_, err = tx.Exec(ctx, `DELETE FROM applicant_skills WHERE applicant_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}
	for _, name := range in.Skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO applicant_skills (applicant_id, name) VALUES ($1, $2)`, profileID, name)
		if err != nil {
			return fmt.Errorf("failed to insert skill %s: %w", name, err)
		}
	}

	// Education: same replace-all semantics.
	_, err = tx.Exec(ctx, `DELETE FROM applicant_education WHERE applicant_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to clear education: %w", err)
	}
	for _, e := range in.Education {
		_, err = tx.Exec(ctx, `
			INSERT INTO applicant_education (applicant_id, institution, degree, field_of_study, from_year, to_year, is_current)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			profileID, e.Institution, e.Degree, e.FieldOfStudy, e.FromYear, e.ToYear, e.IsCurrent)
		if err != nil {
			return fmt.Errorf("failed to insert education entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
