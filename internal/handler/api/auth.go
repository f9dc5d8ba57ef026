package api

import (
	"net/http"

	"hass-backend/internal/domain/principal"
	reqdto "hass-backend/internal/handler/dto/request"
	resdto "hass-backend/internal/handler/dto/response"
	"hass-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase commands.AuthCommands
}

func NewAuthHandler(authUseCase commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// @Summary Login
// @Description Authenticate against the credential table of the given role
// @Tags auth
// @Accept json
// @Produce json
// @Param role path string true "Principal role" Enums(company, customer, worker)
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/{role}/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	role, err := principal.ParseRole(c.Param("role"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown login role",
		})
		return
	}

	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), role, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		PrincipalID: result.PrincipalID,
		Role:        result.Role.String(),
	})
}

// @Summary Customer signup
// @Description Register a customer account with credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupCustomerRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/customer/signup [post]
func (h *AuthHandler) SignupCustomer(c *gin.Context) {
	var req reqdto.SignupCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	customerID, err := h.authUseCase.SignupCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.SignupResponse{CustomerID: customerID})
}

// @Summary Check login ID availability
// @Tags auth
// @Produce json
// @Param login_id query string true "Login ID to check"
// @Success 200 {object} resdto.LoginIDCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/customer/signup/check [get]
func (h *AuthHandler) CheckLoginID(c *gin.Context) {
	loginID := c.Query("login_id")
	if loginID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "login_id query parameter required",
		})
		return
	}

	available, err := h.authUseCase.IsLoginIDAvailable(c.Request.Context(), loginID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginIDCheckResponse{LoginID: loginID, Available: available})
}
