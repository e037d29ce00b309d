package v1

import (
	"net/http"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	onboardingUC domain.OnboardingUsecase
	authUC       domain.AuthUsecase
}

func NewUserHandler(protected *gin.RouterGroup, onboardingUC domain.OnboardingUsecase, authUC domain.AuthUsecase) {
	handler := &UserHandler{onboardingUC: onboardingUC, authUC: authUC}

	users := protected.Group("/users")
	{
		users.PATCH("/me/type", handler.AssignType)
		users.GET("/me/onboarding", handler.OnboardingState)
	}
}

type AssignTypeRequest struct {
	UserType string `json:"userType" binding:"required,oneof=APPLICANT RECRUITER"`
}

// AssignType godoc
// @Summary      Assign Account Type
// @Description  Set the account type for a typeless account and create the matching empty profile. Re-assigning the same type is a no-op; switching types is rejected.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      AssignTypeRequest  true  "Account Type"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /users/me/type [patch]
// @Security     BearerAuth
func (h *UserHandler) AssignType(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req AssignTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	if err := h.onboardingUC.AssignUserType(c.Request.Context(), userID, req.UserType); err != nil {
		c.Error(err)
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account type assigned", user)
}

// OnboardingState godoc
// @Summary      Onboarding State
// @Description  Resolve how far the current account has progressed through onboarding.
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=string}
// @Failure      401  {object}  response.Response
// @Router       /users/me/onboarding [get]
// @Security     BearerAuth
func (h *UserHandler) OnboardingState(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	state, err := h.onboardingUC.CurrentState(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding state resolved", state)
}
