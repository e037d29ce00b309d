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

type recruiterUsecase struct {
	repo     domain.RecruiterRepository
	userRepo domain.UserRepository
	uploader storage.Uploader
	validate *validator.Validate
}

func NewRecruiterUsecase(
	repo domain.RecruiterRepository,
	userRepo domain.UserRepository,
	uploader storage.Uploader,
	validate *validator.Validate,
) domain.RecruiterUsecase {
	return &recruiterUsecase{
		repo:     repo,
		userRepo: userRepo,
		uploader: uploader,
		validate: validate,
	}
}

// GetProfile is strictly owner-only; recruiter profiles are not visible
// to other identities.
func (u *recruiterUsecase) GetProfile(ctx context.Context, targetUserID string) (*domain.RecruiterProfile, error) {
	ctxUserID, ok := callerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != targetUserID {
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
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *recruiterUsecase) SaveProfile(ctx context.Context, targetUserID string, in *domain.RecruiterProfileInput, logo *domain.FileUpload) (*domain.RecruiterProfile, error) {
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

	in.Specializations = dedupeNames(in.Specializations)

	var logoURL *string
	if logo != nil {
		url, err := u.storeLogo(ctx, targetUserID, logo)
		if err != nil {
			return nil, err
		}
		logoURL = &url
	}

	if err := u.repo.Upsert(ctx, targetUserID, in, logoURL); err != nil {
		return nil, apperror.Internal(err)
	}

	saved, err := u.repo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return saved, nil
}

func (u *recruiterUsecase) ListRecruiters(ctx context.Context) ([]domain.RecruiterCard, error) {
	cards, err := u.repo.ListCards(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cards, nil
}

// storeLogo validates, downscales and uploads a company logo, returning
// its public URL.
func (u *recruiterUsecase) storeLogo(ctx context.Context, userID string, logo *domain.FileUpload) (string, error) {
	if u.uploader == nil {
		return "", apperror.Internal(errors.New("logo storage not configured"))
	}

	result := storage.ValidateLogo(logo.Filename, logo.Data, logo.ContentType)
	if !result.Valid {
		return "", apperror.BadRequest("Logo rejected: " + result.Error)
	}

	processed, contentType, err := storage.NormalizeLogo(logo.Data, result.Extension)
	if err != nil {
		return "", apperror.BadRequest("Logo rejected: " + err.Error())
	}

	key := fmt.Sprintf("logos/%s/%d.jpg", userID, time.Now().Unix())
	url, err := u.uploader.Store(ctx, key, contentType, processed)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}
