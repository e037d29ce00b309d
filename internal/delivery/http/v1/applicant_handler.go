package v1

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps resume and logo uploads.
const maxUploadBytes = 5 << 20

type ApplicantHandler struct {
	applicantUC domain.ApplicantUsecase
}

func NewApplicantHandler(protected *gin.RouterGroup, applicantUC domain.ApplicantUsecase) {
	handler := &ApplicantHandler{applicantUC: applicantUC}

	profiles := protected.Group("/profiles/applicant")
	{
		profiles.GET("/:userID", handler.GetProfile)
		profiles.PUT("/:userID", handler.SaveProfile)
	}
}

// GetProfile godoc
// @Summary      Get Applicant Profile
// @Description  Fetch an applicant profile with skills and education. Visible to the owner and to recruiters.
// @Tags         profiles
// @Produce      json
// @Param        userID  path      string  true  "Owner user ID"
// @Success      200     {object}  response.Response{data=domain.ApplicantProfile}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /profiles/applicant/{userID} [get]
// @Security     BearerAuth
func (h *ApplicantHandler) GetProfile(c *gin.Context) {
	targetUserID := c.Param("userID")

	profile, err := h.applicantUC.GetProfile(c.Request.Context(), targetUserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// SaveProfile godoc
// @Summary      Save Applicant Profile
// @Description  Create or update the applicant profile. Skills and education are replaced wholesale. Accepts JSON, or multipart form with a profileData part and an optional resume file.
// @Tags         profiles
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        userID       path      string                        true   "Owner user ID"
// @Param        profileData  formData  string                        false  "Profile payload as JSON"
// @Param        resume       formData  file                          false  "Resume (PDF, DOC, DOCX)"
// @Success      200  {object}  response.Response{data=domain.ApplicantProfile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profiles/applicant/{userID} [put]
// @Security     BearerAuth
func (h *ApplicantHandler) SaveProfile(c *gin.Context) {
	targetUserID := c.Param("userID")

	var in domain.ApplicantProfileInput
	resume, err := bindProfilePayload(c, &in, "resume")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.applicantUC.SaveProfile(c.Request.Context(), targetUserID, &in, resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// bindProfilePayload decodes the profile input from either a JSON body
// or a multipart form carrying a profileData part plus an optional file
// part named fileField.
func bindProfilePayload(c *gin.Context, out interface{}, fileField string) (*domain.FileUpload, error) {
	contentType := c.ContentType()

	if !strings.HasPrefix(contentType, "multipart/") {
		if err := c.ShouldBindJSON(out); err != nil {
			return nil, apperror.BadRequest("Invalid request body: " + err.Error())
		}
		return nil, nil
	}

	raw := c.PostForm("profileData")
	if raw == "" {
		return nil, apperror.BadRequest("Missing profileData form field")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil, apperror.BadRequest("Invalid profileData JSON: " + err.Error())
	}

	fileHeader, err := c.FormFile(fileField)
	if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
		if err == multipart.ErrMessageTooLarge {
			return nil, apperror.BadRequest("Uploaded file is too large")
		}
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}

	if fileHeader.Size > maxUploadBytes {
		return nil, apperror.BadRequest("Uploaded file exceeds the 5MB limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(data) > maxUploadBytes {
		return nil, apperror.BadRequest("Uploaded file exceeds the 5MB limit")
	}

	return &domain.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
