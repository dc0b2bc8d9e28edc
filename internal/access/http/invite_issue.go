package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

type InviteIssueHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invite Code
//	@Description	Mint a new invite code bound to a single email address. This is an admin-only operation.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accesssdk.IssueInviteRequest	true	"Invite parameters"
//	@Success		201		{object}	accesssdk.InviteResponse		"The issued invite, including its code"
//	@Failure		400		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accesssdk.IssueInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	callerID := httpx.UserIDFromContext(ctx)
	if callerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	inv, err := h.InviteService.Issue(ctx, callerID, service.IssueParams{
		IntendedEmail: req.IntendedEmail,
		MaxUses:       req.MaxUses,
		TTL:           time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			httpx.WriteJSON(w, http.StatusForbidden, accesssdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Admin privilege required",
			})
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "intended_email is not a valid address",
			})
		case errors.Is(err, service.ErrInvalidInviteParams):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Invalid invite parameters",
			})
		default:
			log.Error("failed to issue invite", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to issue invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, inviteToResponse(inv, time.Now().UTC()))
}
