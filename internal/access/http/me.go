package http

import (
	"errors"
	"net/http"

	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

type MeHandler struct {
	Gate *service.Gate
}

// ServeHTTP godoc
//
//	@Summary		Current Role
//	@Description	Return the caller's current privilege flags, resolved fresh from storage.
//	@Description	A promotion or demotion is visible here on the very next request.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	accesssdk.RoleResponse	"account_id, is_admin, is_protected"
//	@Failure		401	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me/role [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.UserIDFromContext(ctx)
	if accountID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	priv, err := h.Gate.Resolve(ctx, accountID)
	if err != nil {
		// A valid token for an account that no longer exists.
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteJSON(w, http.StatusUnauthorized, accesssdk.ErrorResponse{
				Error:            "unauthorized",
				ErrorDescription: "Unknown account",
			})
			return
		}
		log.Error("failed to resolve role", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to resolve role",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accesssdk.RoleResponse{
		AccountID:   accountID,
		IsAdmin:     priv.IsAdmin,
		IsProtected: priv.IsProtected,
	})
}
