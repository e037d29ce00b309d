package v1

import (
	"net/http"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(public *gin.RouterGroup, protected *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	public.GET("/recruiters", handler.ListRecruiters)

	profiles := protected.Group("/profiles/recruiter")
	{
		profiles.GET("/:userID", handler.GetProfile)
		profiles.PUT("/:userID", handler.SaveProfile)
	}
}

// GetProfile godoc
// @Summary      Get Recruiter Profile
// @Description  Fetch the recruiter profile with specializations. Owner only.
// @Tags         profiles
// @Produce      json
// @Param        userID  path      string  true  "Owner user ID"
// @Success      200     {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /profiles/recruiter/{userID} [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	targetUserID := c.Param("userID")

	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), targetUserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// SaveProfile godoc
// @Summary      Save Recruiter Profile
// @Description  Create or update the recruiter profile. Specializations are replaced wholesale. Accepts JSON, or multipart form with a profileData part and an optional logo image.
// @Tags         profiles
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        userID       path      string  true   "Owner user ID"
// @Param        profileData  formData  string  false  "Profile payload as JSON"
// @Param        logo         formData  file    false  "Company logo image"
// @Success      200  {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profiles/recruiter/{userID} [put]
// @Security     BearerAuth
func (h *RecruiterHandler) SaveProfile(c *gin.Context) {
	targetUserID := c.Param("userID")

	var in domain.RecruiterProfileInput
	logo, err := bindProfilePayload(c, &in, "logo")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.recruiterUC.SaveProfile(c.Request.Context(), targetUserID, &in, logo)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// ListRecruiters godoc
// @Summary      Recruiter Directory
// @Description  Public list of recruiters with a completed company profile.
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.RecruiterCard}
// @Router       /recruiters [get]
func (h *RecruiterHandler) ListRecruiters(c *gin.Context) {
	cards, err := h.recruiterUC.ListRecruiters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiters retrieved", cards)
}
