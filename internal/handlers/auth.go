package handlers

import (
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Signup payload. Validation happens in the service's rule table, not in
// gin binding, so the first violated rule decides the message.
type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signupRequest  true  "Signup payload"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signupRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.SignUp(c.Request.Context(), service.SignupInput{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_up_failed", "email", input.Email, "err", err)
		}
		h.writeServiceError(c, err, "auth_sign_up_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

// @Summary      Sign in and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signinRequest  true  "Signin payload"
// @Success      200   {object}  map[string]interface{}  "token, user"
// @Failure      400   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signinRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.SignIn(c.Request.Context(), service.SigninInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "email", input.Email, "err", err)
		}
		h.writeServiceError(c, err, "auth_sign_in_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": res.Token,
		"user": gin.H{
			"id":    res.User.ID,
			"name":  res.User.Name,
			"email": res.User.Email,
		},
	})
}
