package controllers

import (
	"log/slog"
	"net/http"

	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/domain"
)

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	Passphrase    string `json:"passphrase"`
}

// LoginResponse is the response body for POST /auth/login
type LoginResponse struct {
	Token         string      `json:"token"`
	TokenType     string      `json:"token_type"`
	ParticipantID string      `json:"participant_id"`
	Role          domain.Role `json:"role"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in as a participant
// @Description Authenticate as one of the seeded participants. Returns a JWT carrying the participant id and role.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, participant_id and role"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, wallet, err := c.Service.Login(r.Context(), req.ParticipantID, req.Passphrase)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Token:         token,
		TokenType:     "Bearer",
		ParticipantID: wallet.OwnerID,
		Role:          wallet.Role,
	})
}
