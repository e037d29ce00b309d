package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"
	"recruiterconnect-backend/pkg/storage"
	"recruiterconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type applicantUsecase struct {
	repo     domain.ApplicantRepository
	userRepo domain.UserRepository
	uploader storage.Uploader
	validate *validator.Validate
}

func NewApplicantUsecase(
	repo domain.ApplicantRepository,
	userRepo domain.UserRepository,
	uploader storage.Uploader,
	validate *validator.Validate,
) domain.ApplicantUsecase {
	return &applicantUsecase{
		repo:     repo,
		userRepo: userRepo,
		uploader: uploader,
		validate: validate,
	}
}

// GetProfile enforces the visibility rule: the owner sees their own
// profile, and any recruiter can view any applicant. Other applicants
// are rejected before any read.
func (u *applicantUsecase) GetProfile(ctx context.Context, targetUserID string) (*domain.ApplicantProfile, error) {
	ctxUserID, ok := callerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != targetUserID && callerUserType(ctx) != domain.UserTypeRecruiter {
		return nil, apperror.Forbidden("You are not authorized to access this profile")
	}

	user, err := u.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	profile, err := u.repo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	// An empty row still reads as a profile; only a missing row is 404.
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

// SaveProfile is owner-only, recruiters included: there is no delegated
// editing. Validation happens before any write; the replacement of the
// skill and education collections is atomic inside the repository.
func (u *applicantUsecase) SaveProfile(ctx context.Context, targetUserID string, in *domain.ApplicantProfileInput, resume *domain.FileUpload) (*domain.ApplicantProfile, error) {
	ctxUserID, ok := callerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != targetUserID {
		return nil, apperror.Forbidden("You are not authorized to update this profile")
	}

	user, err := u.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := validateEducation(in.Education); err != nil {
		return nil, err
	}

	in.Skills = dedupeNames(in.Skills)

	var resumeURL *string
	if resume != nil {
		url, err := u.storeResume(ctx, targetUserID, resume)
		if err != nil {
			return nil, err
		}
		resumeURL = &url
	}

	if err := u.repo.Upsert(ctx, targetUserID, in, resumeURL); err != nil {
		return nil, apperror.Internal(err)
	}

	saved, err := u.repo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return saved, nil
}

func (u *applicantUsecase) storeResume(ctx context.Context, userID string, resume *domain.FileUpload) (string, error) {
	if u.uploader == nil {
		return "", apperror.Internal(errors.New("resume storage not configured"))
	}

	result := storage.ValidateResume(resume.Filename, resume.Data, resume.ContentType)
	if !result.Valid {
		return "", apperror.BadRequest("Resume rejected: " + result.Error)
	}

	key := fmt.Sprintf("resumes/%s/%d%s", userID, time.Now().Unix(), result.Extension)
	url, err := u.uploader.Store(ctx, key, resume.ContentType, resume.Data)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}

// validateEducation applies the rules the struct tags cannot express:
// the year window is dynamic and a current entry must not carry an end
// year.
func validateEducation(entries []domain.EducationEntry) error {
	maxYear := time.Now().Year() + 1
	for _, e := range entries {
		if e.FromYear > maxYear {
			return apperror.BadRequest(fmt.Sprintf("Start Year: must be %d or earlier", maxYear))
		}
		if e.IsCurrent && e.ToYear != nil {
			return apperror.BadRequest("End Year: must be empty for a current education entry")
		}
		if e.ToYear != nil {
			if *e.ToYear > maxYear {
				return apperror.BadRequest(fmt.Sprintf("End Year: must be %d or earlier", maxYear))
			}
			if *e.ToYear < e.FromYear {
				return apperror.BadRequest("End Year: must not be before Start Year")
			}
		}
	}
	return nil
}

// dedupeNames removes duplicates by exact name match, keeping first
// occurrence order. Blank entries are dropped.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
