package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandlePromote godoc
//
//	@Summary		Promote Account
//	@Description	Grant admin privilege to the target account. Promoting an account that is
//	@Description	already an admin succeeds without effect. Admin only.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path	string	true	"Target account id"
//	@Success		204	"Account promoted"
//	@Failure		401	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id}/promote [post].
func (h *RolesHandler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	h.handleRoleChange(w, r, h.RolesService.Promote)
}

// HandleDemote godoc
//
//	@Summary		Demote Account
//	@Description	Revoke admin privilege from the target account. Protected accounts refuse
//	@Description	demotion, and the last remaining admin cannot be demoted. Admin only.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path	string	true	"Target account id"
//	@Success		204	"Account demoted"
//	@Failure		401	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id}/demote [post].
func (h *RolesHandler) HandleDemote(w http.ResponseWriter, r *http.Request) {
	h.handleRoleChange(w, r, h.RolesService.Demote)
}

func (h *RolesHandler) handleRoleChange(
	w http.ResponseWriter,
	r *http.Request,
	change func(ctx context.Context, actorID, targetID string) error,
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	err := change(ctx, actorID, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			httpx.WriteJSON(w, http.StatusForbidden, accesssdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Admin privilege required",
			})
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accesssdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No account with that id",
			})
		case errors.Is(err, service.ErrProtectedAccount):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "protected_account",
				ErrorDescription: "This account cannot be demoted",
			})
		case errors.Is(err, service.ErrLastAdmin):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "last_admin",
				ErrorDescription: "Cannot demote the last remaining admin",
			})
		default:
			log.Error("failed to change role", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to change role",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleHistory godoc
//
//	@Summary		Role Change History
//	@Description	List the audit trail of admin grants and revocations for one account,
//	@Description	newest first. Admin only.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		string	true	"Target account id"
//	@Success		200	{object}	accesssdk.RoleHistoryResponse	"changes"
//	@Failure		401	{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id}/role-changes [get].
func (h *RolesHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
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

	changes, err := h.RolesService.History(ctx, callerID, r.PathValue("id"), 0)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteJSON(w, http.StatusForbidden, accesssdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Admin privilege required",
			})
			return
		}
		log.Error("failed to list role changes", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list role changes",
		})
		return
	}

	response := accesssdk.RoleHistoryResponse{
		Changes: make([]accesssdk.RoleChangeResponse, len(changes)),
	}
	for i, rc := range changes {
		response.Changes[i] = accesssdk.RoleChangeResponse{
			ID:        rc.ID,
			ActorID:   rc.ActorID,
			TargetID:  rc.TargetID,
			OldValue:  rc.OldValue,
			NewValue:  rc.NewValue,
			CreatedAt: rc.CreatedAt.Unix(),
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
