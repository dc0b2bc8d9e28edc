package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Super Admin
//	@Description	Create the first account: a protected super-admin that can never be demoted.
//	@Description	Guarded by the deployment's pre-shared bootstrap token and refused once any
//	@Description	account exists.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accesssdk.BootstrapRequest	true	"Bootstrap request"
//	@Success		201		{object}	accesssdk.AccountResponse	"The super-admin account"
//	@Failure		400		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accesssdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	acct, err := h.BootstrapService.Bootstrap(ctx, service.BootstrapParams{
		Token:       req.Token,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadBootstrapToken):
			httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
				Error:            "unauthorized",
				ErrorDescription: "Invalid bootstrap token",
			})
		case errors.Is(err, service.ErrAlreadyBootstrapped):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "already_bootstrapped",
				ErrorDescription: "An account already exists",
			})
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "email is not a valid address",
			})
		case errors.Is(err, service.ErrInvalidPassword):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "password is required",
			})
		default:
			log.Error("bootstrap failed", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Bootstrap failed",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountToResponse(acct))
}
