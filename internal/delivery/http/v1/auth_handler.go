package v1

import (
	"context"
	"net/http"

	"recruiterconnect-backend/config"
	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"
	"recruiterconnect-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	onboardingUC domain.OnboardingUsecase
	tokens       *auth.TokenManager
	config       *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, onboardingUC domain.OnboardingUsecase, tokens *auth.TokenManager, cfg *config.Config) {
	handler := &AuthHandler{
		authUC:       authUC,
		onboardingUC: onboardingUC,
		tokens:       tokens,
		config:       cfg,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/federated", handler.Federated)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Optional pending selection carried through the sign-in form. It is
	// applied after the credentials check succeeds.
	UserType string `json:"userType" binding:"omitempty,oneof=APPLICANT RECRUITER"`
}

type FederatedRequest struct {
	domain.FederatedIdentity
	// Type selection made before the provider redirect, applied once the
	// identity is established.
	PendingUserType string `json:"pendingUserType" binding:"omitempty,oneof=APPLICANT RECRUITER"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type MeResponse struct {
	User            *domain.User           `json:"user"`
	OnboardingState domain.OnboardingState `json:"onboardingState"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with email, password, and account type. The matching empty profile is created in the same flow.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterInput  true  "Registration Details"
// @Success      201    {object}  response.Response{data=SessionResponse}
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.issueSession(c, http.StatusCreated, "Registration successful", user)
}

// Login godoc
// @Summary      Credential Sign-In
// @Description  Verify email and password and issue a session token. A pending account type selection, if present, is applied afterwards.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=SessionResponse}
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	user, err := h.authUC.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	if req.UserType != "" && !user.HasType() {
		// The credentials check above establishes the caller identity.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		if err := h.onboardingUC.AssignUserType(ctx, user.ID, req.UserType); err != nil {
			c.Error(err)
			return
		}
		user, err = h.authUC.GetCurrentUser(c.Request.Context(), user.ID)
		if err != nil {
			c.Error(err)
			return
		}
	}

	h.issueSession(c, http.StatusOK, "Login successful", user)
}

// Federated godoc
// @Summary      Federated Sign-In
// @Description  Exchange a verified external identity for a session. Creates a typeless account on first sign-in.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        identity  body      FederatedRequest  true  "Verified Identity"
// @Success      200    {object}  response.Response{data=SessionResponse}
// @Failure      400    {object}  response.Response
// @Router       /auth/federated [post]
func (h *AuthHandler) Federated(c *gin.Context) {
	var req FederatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	user, err := h.authUC.EnsureFederatedUser(c.Request.Context(), &req.FederatedIdentity)
	if err != nil {
		c.Error(err)
		return
	}

	if req.PendingUserType != "" && !user.HasType() {
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		if err := h.onboardingUC.AssignUserType(ctx, user.ID, req.PendingUserType); err != nil {
			c.Error(err)
			return
		}
		user, err = h.authUC.GetCurrentUser(c.Request.Context(), user.ID)
		if err != nil {
			c.Error(err)
			return
		}
	}

	h.issueSession(c, http.StatusOK, "Login successful", user)
}

// Me godoc
// @Summary      Current Session
// @Description  Return the authenticated user together with their onboarding state.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=MeResponse}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	state, err := h.onboardingUC.CurrentState(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session retrieved", MeResponse{
		User:            user,
		OnboardingState: state,
	})
}

func (h *AuthHandler) issueSession(c *gin.Context, code int, message string, user *domain.User) {
	userType := ""
	if user.UserType != nil {
		userType = string(*user.UserType)
	}

	token, err := h.tokens.Issue(auth.SessionClaims{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: userType,
	})
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	maxAge := h.config.SessionTTLHours * 3600
	secure := gin.Mode() == gin.ReleaseMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, maxAge, "/", "", secure, true)

	response.Success(c, code, message, SessionResponse{Token: token, User: user})
}
