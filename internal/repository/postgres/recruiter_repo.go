package postgres

import (
	"context"
	"errors"
	"fmt"

	"recruiterconnect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepository struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepository{db: db}
}

func (r *recruiterRepository) EnsureExists(ctx context.Context, userID string) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM recruiter_profiles WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check recruiter profile existence: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO recruiter_profiles (user_id, created_at, updated_at) VALUES ($1, NOW(), NOW())
		 ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("failed to create recruiter profile: %w", err)
	}
	return nil
}

func (r *recruiterRepository) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `
		SELECT p.id, p.user_id,
			COALESCE(p.company_name, ''), COALESCE(p.position, ''),
			COALESCE(p.industry, ''), COALESCE(p.company_size, ''),
			COALESCE(p.company_description, ''), p.company_website,
			COALESCE(p.company_location, ''), p.phone_number, p.logo_url,
			u.name, u.email, u.image_url,
			p.created_at, p.updated_at
		FROM recruiter_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Position, &p.Industry, &p.CompanySize,
		&p.CompanyDescription, &p.CompanyWebsite, &p.CompanyLocation,
		&p.PhoneNumber, &p.LogoURL,
		&p.Name, &p.Email, &p.Image,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Specializations = []string{}
	rows, err := r.db.Query(ctx,
		`SELECT name FROM recruiter_specializations WHERE recruiter_id = $1 ORDER BY name ASC`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specializations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan specialization: %w", err)
		}
		p.Specializations = append(p.Specializations, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specializations: %w", err)
	}

	return &p, nil
}

func (r *recruiterRepository) Upsert(ctx context.Context, userID string, in *domain.RecruiterProfileInput, logoURL *string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE recruiter_profiles SET
			company_name = COALESCE($2, company_name),
			position = COALESCE($3, position),
			industry = COALESCE($4, industry),
			company_size = COALESCE($5, company_size),
			company_description = COALESCE($6, company_description),
			company_website = COALESCE($7, company_website),
			company_location = COALESCE($8, company_location),
			phone_number = COALESCE($9, phone_number),
			logo_url = COALESCE($10, logo_url),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING id`

	var profileID int64
	err = tx.QueryRow(ctx, updateQuery, userID,
		in.CompanyName, in.Position, in.Industry, in.CompanySize,
		in.CompanyDescription, in.CompanyWebsite, in.CompanyLocation,
		in.PhoneNumber, logoURL,
	).Scan(&profileID)
	if errors.Is(err, pgx.ErrNoRows) {
		insertQuery := `
			INSERT INTO recruiter_profiles (
				user_id, company_name, position, industry, company_size,
				company_description, company_website, company_location,
				phone_number, logo_url, created_at, updated_at
			) VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
					COALESCE($6, ''), $7, COALESCE($8, ''), $9, $10, NOW(), NOW())
			RETURNING id`
		err = tx.QueryRow(ctx, insertQuery, userID,
			in.CompanyName, in.Position, in.Industry, in.CompanySize,
			in.CompanyDescription, in.CompanyWebsite, in.CompanyLocation,
			in.PhoneNumber, logoURL,
		).Scan(&profileID)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert recruiter profile: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM recruiter_specializations WHERE recruiter_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to clear specializations: %w", err)
	}
	for _, name := range in.Specializations {
		_, err = tx.Exec(ctx,
			`INSERT INTO recruiter_specializations (recruiter_id, name) VALUES ($1, $2)`, profileID, name)
		if err != nil {
			return fmt.Errorf("failed to insert specialization %s: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *recruiterRepository) ListCards(ctx context.Context) ([]domain.RecruiterCard, error) {
	query := `
		SELECT p.user_id, p.company_name, COALESCE(p.industry, ''),
			COALESCE(p.company_location, ''), p.logo_url,
			COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}')
		FROM recruiter_profiles p
		LEFT JOIN recruiter_specializations s ON s.recruiter_id = p.id
		WHERE p.company_name IS NOT NULL AND p.company_name <> ''
		GROUP BY p.id, p.user_id, p.company_name, p.industry, p.company_location, p.logo_url
		ORDER BY p.company_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiters: %w", err)
	}
	defer rows.Close()

	cards := []domain.RecruiterCard{}
	for rows.Next() {
		var c domain.RecruiterCard
		if err := rows.Scan(&c.UserID, &c.CompanyName, &c.Industry, &c.CompanyLocation, &c.LogoURL, &c.Specializations); err != nil {
			return nil, fmt.Errorf("failed to scan recruiter card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recruiters: %w", err)
	}
	return cards, nil
}
