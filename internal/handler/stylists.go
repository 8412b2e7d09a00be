package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (h *Handler) GetStylists(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	stylists, err := h.repository.GetStylists(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "stylists retrieved", stylists)
}

func (h *Handler) CreateStylist(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	var req struct {
		Name       string `json:"name" validate:"required"`
		Specialty  string `json:"specialty"`
		Experience string `json:"experience"`
		Bio        string `json:"bio"`
		ImageURL   string `json:"imageURL" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	stylist := &domain.Stylist{
		SalonID:    salon.ID,
		Name:       req.Name,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		Bio:        req.Bio,
		ImageURL:   req.ImageURL,
	}

	if err := h.repository.CreateStylist(stylist); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "stylist created", stylist)
}

func (h *Handler) UpdateStylist(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	stylistID, err := strconv.ParseInt(chi.URLParam(r, "stylistID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid stylist ID")
		return
	}

	stylist, err := h.repository.GetStylistByID(stylistID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "stylist not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if stylist.SalonID != salon.ID {
		h.errorResponse(w, r, "stylist not found")
		return
	}

	var req struct {
		Name       *string `json:"name"`
		Specialty  *string `json:"specialty"`
		Experience *string `json:"experience"`
		Bio        *string `json:"bio"`
		ImageURL   *string `json:"imageURL" validate:"omitempty,url"`
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
		stylist.Name = *req.Name
	}
	if req.Specialty != nil {
		stylist.Specialty = *req.Specialty
	}
	if req.Experience != nil {
		stylist.Experience = *req.Experience
	}
	if req.Bio != nil {
		stylist.Bio = *req.Bio
	}
	if req.ImageURL != nil {
		stylist.ImageURL = *req.ImageURL
	}

	if err := h.repository.UpdateStylist(stylist); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update stylist, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "stylist updated", stylist)
}

func (h *Handler) DeleteStylist(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	stylistID, err := strconv.ParseInt(chi.URLParam(r, "stylistID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid stylist ID")
		return
	}

	if err := h.repository.DeleteStylist(salon.ID, stylistID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "stylist deleted", nil)
}
