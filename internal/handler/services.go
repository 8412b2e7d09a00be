package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (h *Handler) GetServiceGroups(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	groups, err := h.repository.GetServiceGroups(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service groups retrieved", groups)
}

func (h *Handler) CreateServiceGroup(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	group := &domain.ServiceGroup{
		SalonID:     salon.ID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.repository.CreateServiceGroup(group); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "service_groups_salon_id_name_key" {
			h.errorResponse(w, r, "a group with this name already exists")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service group created", group)
}

func (h *Handler) DeleteServiceGroup(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid group ID")
		return
	}

	if err := h.repository.DeleteServiceGroup(salon.ID, groupID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service group deleted", nil)
}

func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	services, err := h.repository.GetServices(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "services retrieved", services)
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	var req struct {
		GroupID         *int64 `json:"groupID"`
		Name            string `json:"name" validate:"required"`
		Description     string `json:"description"`
		PriceCents      int64  `json:"priceCents" validate:"required,gt=0"`
		DurationMinutes int32  `json:"durationMinutes" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	service := &domain.Service{
		SalonID:         salon.ID,
		GroupID:         req.GroupID,
		Name:            req.Name,
		Description:     req.Description,
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
	}

	if err := h.repository.CreateService(service); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "services_group_id_fkey" {
			h.errorResponse(w, r, "service group not found")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service created", service)
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	serviceID, err := strconv.ParseInt(chi.URLParam(r, "serviceID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid service ID")
		return
	}

	service, err := h.repository.GetServiceByID(serviceID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "service not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if service.SalonID != salon.ID {
		h.errorResponse(w, r, "service not found")
		return
	}

	var req struct {
		GroupID         *int64  `json:"groupID"`
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		PriceCents      *int64  `json:"priceCents" validate:"omitempty,gt=0"`
		DurationMinutes *int32  `json:"durationMinutes" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.GroupID != nil {
		service.GroupID = req.GroupID
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.PriceCents != nil {
		service.PriceCents = *req.PriceCents
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}

	if err := h.repository.UpdateService(service); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update service, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "service updated", service)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	serviceID, err := strconv.ParseInt(chi.URLParam(r, "serviceID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid service ID")
		return
	}

	if err := h.repository.DeleteService(salon.ID, serviceID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service deleted", nil)
}
