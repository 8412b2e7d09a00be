package handler

import (
	"net/http"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
	"github.com/glowbook-dev/glowbook/backend/internal/utils"
)

func (h *Handler) GetStylistAvailability(w http.ResponseWriter, r *http.Request) {
	stylist := r.Context().Value(StylistCtx).(*domain.Stylist)

	rules, err := h.repository.GetStylistAvailability(stylist.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability retrieved", rules)
}

func (h *Handler) ReplaceStylistAvailability(w http.ResponseWriter, r *http.Request) {
	stylist := r.Context().Value(StylistCtx).(*domain.Stylist)

	var req struct {
		Rules []struct {
			DayOfWeek   int32  `json:"dayOfWeek"`
			StartTime   string `json:"startTime" validate:"required"`
			EndTime     string `json:"endTime" validate:"required"`
			IsAvailable bool   `json:"isAvailable"`
		} `json:"rules" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rules := make([]*domain.AvailabilityRule, 0, len(req.Rules))
	for _, rr := range req.Rules {
		rules = append(rules, &domain.AvailabilityRule{
			DayOfWeek:   rr.DayOfWeek,
			StartTime:   rr.StartTime,
			EndTime:     rr.EndTime,
			IsAvailable: rr.IsAvailable,
		})
	}

	if err := utils.ValidateAvailabilityRules(rules); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.ReplaceStylistAvailability(stylist.ID, rules); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability updated", rules)
}

func (h *Handler) GetAvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	stylist := r.Context().Value(StylistCtx).(*domain.Stylist)

	dateParam := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
		return
	}

	slots, err := h.calculator.AvailableTimeSlots(r.Context(), stylist.ID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "time slots retrieved", slots)
}
