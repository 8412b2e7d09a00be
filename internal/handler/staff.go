package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (h *Handler) GetSalonStaff(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	members, err := h.repository.GetSalonStaff(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff retrieved", members)
}

func (h *Handler) InviteStaff(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	var req struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone"`
		Position string `json:"position"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(h.config.StaffInvite.Expiration) * time.Hour)

	staff := &domain.Staff{
		SalonID:         salon.ID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Position:        req.Position,
		InviteToken:     &token,
		InviteExpiresAt: &expiresAt,
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_salon_id_email_key" {
			h.errorResponse(w, r, "this email is already on the staff list")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "staff_invite",
		To:   staff.Email,
		Data: domain.StaffInviteMailData{
			Name:       staff.Name,
			SalonName:  salon.Name,
			Token:      token,
			Expiration: h.config.StaffInvite.Expiration,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff member invited", staff)
}

// AcceptStaffInvite links the logged-in account to the staff record the
// invite token was issued for and consumes the token.
func (h *Handler) AcceptStaffInvite(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Token string `json:"token" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetStaffByInviteToken(req.Token)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "invalid or expired invite")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if staff.InviteExpiresAt == nil || time.Now().After(*staff.InviteExpiresAt) {
		h.errorResponse(w, r, "invalid or expired invite")
		return
	}

	staff.UserID = &myInfo.ID
	staff.InviteToken = nil
	staff.InviteExpiresAt = nil

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "invite accepted", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffMemberCtx).(*domain.Staff)

	var req struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Position *string `json:"position"`
		Active   *bool   `json:"active"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update staff member, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff member updated", staff)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)
	staff := r.Context().Value(StaffMemberCtx).(*domain.Staff)

	if err := h.repository.DeleteStaff(salon.ID, staff.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "staff member removed", nil)
}
