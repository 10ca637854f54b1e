package session

//go:generate mockgen -source=session.go -destination=mock_service.go -package=session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/dto"
	"github.com/olobando-hub/BicPop-Web/internal/service/sessionservice"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
	"github.com/olobando-hub/BicPop-Web/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
	Register(ctx context.Context, form sessionservice.Registration) (*domain.Session, string, error)
	Logout(ctx context.Context, sessionID string) error
}

type SessionHandler struct {
	sessionService Service
	validate       *validator.Validate
}

func New(sessionService Service, validate *validator.Validate) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validate:       validate,
	}
}

// Register godoc
//
//	@Summary		Register a new rider
//	@Description	Validate the sign-up form and open a session with the starting balance
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid form"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/session/register [post]
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	session, token, err := h.sessionService.Register(r.Context(), sessionservice.Registration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AcceptTerms:     req.AcceptTerms,
	})
	if err != nil {
		if errors.Is(err, sessionservice.ErrInvalidRegistration) {
			utils.RespondWithReason(w, http.StatusBadRequest, "invalid_registration", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		Message:   "Rider successfully registered",
		SessionID: session.ID,
		Email:     session.Email,
	})
}

// Login godoc
//
//	@Summary		Open a session
//	@Description	Any non-empty email and password open a new demo session
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/session/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithReason(w, http.StatusBadRequest, "invalid_credentials", sessionservice.ErrEmptyCredentials.Error())
		return
	}
	session, token, err := h.sessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, sessionservice.ErrEmptyCredentials) {
			utils.RespondWithReason(w, http.StatusBadRequest, "invalid_credentials", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		Message:   "Session opened",
		SessionID: session.ID,
		Email:     session.Email,
	})
}

// Logout godoc
//
//	@Summary		Close the session
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{string}	string			"Session closed"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session [delete]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := auth.SessionID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.sessionService.Logout(r.Context(), sessionID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "session closed")
}
