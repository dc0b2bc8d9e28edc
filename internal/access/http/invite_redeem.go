package http

import (
	"errors"
	"net/http"

	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/pkg/accesssdk"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/slogx"
)

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invite Code
//	@Description	Consume one use of an invite code and provision the new account in the same
//	@Description	transaction. The submitted email must match the address the code was issued
//	@Description	for. Every failure returns the same invalid_invite error so the endpoint
//	@Description	cannot be used to probe which codes exist.
//	@Tags			Invites
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			code			formData	string					true	"Invite code; dashes, spaces and case are ignored"
//	@Param			email			formData	string					true	"Email address the code was issued for"
//	@Param			password		formData	string					true	"Password for the new account"
//	@Param			display_name	formData	string					false	"Display name, defaults to the email"
//	@Success		201				{object}	accesssdk.AccountResponse	"The provisioned account"
//	@Failure		400				{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		500				{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Malformed form body",
		})
		return
	}

	acct, err := h.InviteService.Redeem(ctx, service.RedeemParams{
		Code:        r.PostFormValue("code"),
		Email:       r.PostFormValue("email"),
		Password:    r.PostFormValue("password"),
		DisplayName: r.PostFormValue("display_name"),
	})
	if err != nil {
		// Redeem already collapses every cause into ErrInviteInvalid and
		// logs the real one; anything else is a genuine server fault.
		if !errors.Is(err, service.ErrInviteInvalid) {
			log.Error("redeem failed unexpectedly", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to redeem invite",
			})
			return
		}
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_invite",
			ErrorDescription: "The invite code is invalid",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountToResponse(acct))
}
