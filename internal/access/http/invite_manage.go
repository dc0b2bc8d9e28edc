package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hearthstack/hearth/internal/access/domain"
	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

type InviteRevokeHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invite Code
//	@Description	Deactivate an invite code by id so it can no longer be redeemed. Revoking an
//	@Description	already revoked code succeeds. This is an admin-only operation.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path	string	true	"Invite id"
//	@Success		204	"Invite revoked"
//	@Failure		401	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id} [delete].
func (h *InviteRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.UserIDFromContext(ctx)
	if callerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	err := h.InviteService.Revoke(ctx, callerID, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			httpx.WriteJSON(w, http.StatusForbidden, accesssdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Admin privilege required",
			})
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accesssdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No invite with that id",
			})
		default:
			log.Error("failed to revoke invite", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to revoke invite",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type InviteListHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		List Invite Codes
//	@Description	List invites with their derived status, newest first. Optionally filter by
//	@Description	status (active, expired, used_up, revoked) or intended email. Admin only.
//	@Tags			Invites
//	@Produce		json
//	@Param			status			query		string	false	"Filter by derived status"
//	@Param			intended_email	query		string	false	"Filter by intended email"
//	@Param			limit			query		int		false	"Maximum number of invites to return"
//	@Success		200				{object}	accesssdk.ListInvitesResponse	"invites"
//	@Failure		401				{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		500				{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.UserIDFromContext(ctx)
	if callerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	q := r.URL.Query()
	filter := domain.InviteFilter{
		Status:        domain.InviteStatus(q.Get("status")),
		IntendedEmail: q.Get("intended_email"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	invites, err := h.InviteService.List(ctx, callerID, filter)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteJSON(w, http.StatusForbidden, accesssdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Admin privilege required",
			})
			return
		}
		log.Error("failed to list invites", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list invites",
		})
		return
	}

	now := time.Now().UTC()
	response := accesssdk.ListInvitesResponse{
		Invites: make([]accesssdk.InviteResponse, len(invites)),
	}
	for i, inv := range invites {
		response.Invites[i] = inviteToResponse(inv, now)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

func inviteToResponse(inv domain.Invite, now time.Time) accesssdk.InviteResponse {
	return accesssdk.InviteResponse{
		ID:            inv.ID,
		Code:          inv.Code,
		IntendedEmail: inv.IntendedEmail,
		CreatedBy:     inv.CreatedBy,
		Status:        string(inv.Status(now)),
		MaxUses:       inv.MaxUses,
		CurrentUses:   inv.CurrentUses,
		ExpiresAt:     inv.ExpiresAt.Unix(),
		CreatedAt:     inv.CreatedAt.Unix(),
	}
}

func accountToResponse(acct domain.Account) accesssdk.AccountResponse {
	return accesssdk.AccountResponse{
		ID:          acct.ID,
		Email:       acct.Email,
		DisplayName: acct.DisplayName,
		IsAdmin:     acct.IsAdmin,
		IsProtected: acct.IsProtected,
		CreatedAt:   acct.CreatedAt.Unix(),
	}
}
