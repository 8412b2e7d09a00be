package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
	"github.com/glowbook-dev/glowbook/backend/internal/repository"
	"github.com/glowbook-dev/glowbook/backend/internal/utils"
)

func (h *Handler) GetSalons(w http.ResponseWriter, r *http.Request) {
	filter := repository.SalonFilter{
		City:    r.URL.Query().Get("city"),
		Service: r.URL.Query().Get("service"),
	}

	salons, err := h.repository.GetSalons(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon list retrieved", salons)
}

func (h *Handler) CreateSalon(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.SalonID != nil {
		h.errorResponse(w, r, "you already manage a salon")
		return
	}

	var req struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		Address     string   `json:"address" validate:"required"`
		City        string   `json:"city" validate:"required"`
		State       string   `json:"state"`
		Zip         string   `json:"zip"`
		Phone       string   `json:"phone" validate:"required"`
		Website     string   `json:"website" validate:"omitempty,url"`
		Hours       string   `json:"hours"`
		Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
		Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
		ImageURL    string   `json:"imageURL" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	salon := &domain.Salon{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Phone:       req.Phone,
		Website:     req.Website,
		Hours:       req.Hours,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	}

	// A second salon with the same name gets a random suffix instead of an
	// error. One retry is enough in practice, the suffix space is large.
	baseSlug := salon.Slug
	for attempt := 0; ; attempt++ {
		err := h.repository.CreateSalon(salon)
		if err == nil {
			break
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "salons_slug_key" && attempt < 3 {
			salon.Slug = baseSlug + "-" + utils.GenerateSlugSuffix(6)
			continue
		}

		h.internalServerError(w, r, err)
		return
	}

	myInfo.SalonID = &salon.ID
	if err := h.repository.UpdateUser(myInfo); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon created", salon)
}

func (h *Handler) GetSalon(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	images, err := h.repository.GetSalonImages(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	groups, err := h.repository.GetServiceGroups(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	services, err := h.repository.GetServices(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stylists, err := h.repository.GetStylists(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon retrieved", map[string]any{
		"salon":         salon,
		"images":        images,
		"serviceGroups": groups,
		"services":      services,
		"stylists":      stylists,
	})
}

func (h *Handler) UpdateSalon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Address     *string  `json:"address"`
		City        *string  `json:"city"`
		State       *string  `json:"state"`
		Zip         *string  `json:"zip"`
		Phone       *string  `json:"phone"`
		Website     *string  `json:"website" validate:"omitempty,url"`
		Hours       *string  `json:"hours"`
		Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
		Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
		ImageURL    *string  `json:"imageURL" validate:"omitempty,url"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.City != nil {
		salon.City = *req.City
	}
	if req.State != nil {
		salon.State = *req.State
	}
	if req.Zip != nil {
		salon.Zip = *req.Zip
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Website != nil {
		salon.Website = *req.Website
	}
	if req.Hours != nil {
		salon.Hours = *req.Hours
	}
	if req.Latitude != nil {
		salon.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		salon.Longitude = req.Longitude
	}
	if req.ImageURL != nil {
		salon.ImageURL = *req.ImageURL
	}

	if err := h.repository.UpdateSalon(salon); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update salon, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "salon updated", salon)
}

func (h *Handler) DeleteSalon(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	if err := h.repository.DeleteSalon(salon.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon deleted", nil)
}

func (h *Handler) GetSalonImages(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	images, err := h.repository.GetSalonImages(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon images retrieved", images)
}

func (h *Handler) CreateSalonImage(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	var req struct {
		ImageURL  string `json:"imageURL" validate:"required,url"`
		IsPrimary bool   `json:"isPrimary"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	image := &domain.SalonImage{
		SalonID:   salon.ID,
		ImageURL:  req.ImageURL,
		IsPrimary: req.IsPrimary,
	}

	if err := h.repository.CreateSalonImage(image); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon image added", image)
}

func (h *Handler) DeleteSalonImage(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid image ID")
		return
	}

	if err := h.repository.DeleteSalonImage(salon.ID, imageID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "salon image deleted", nil)
}
