package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowbook-dev/glowbook/backend/internal/availability"
	"github.com/glowbook-dev/glowbook/backend/internal/domain"
	"github.com/glowbook-dev/glowbook/backend/internal/repository"
)

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		SalonID   int64  `json:"salonID" validate:"required"`
		ServiceID int64  `json:"serviceID" validate:"required"`
		StylistID int64  `json:"stylistID" validate:"required"`
		Date      string `json:"date" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		Notes     string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
		return
	}

	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		h.errorResponse(w, r, "start time must be in HH:MM format")
		return
	}

	service, err := h.repository.GetServiceByID(req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "service not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if service.SalonID != req.SalonID {
		h.errorResponse(w, r, "service not found")
		return
	}

	stylist, err := h.repository.GetStylistByID(req.StylistID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "stylist not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if stylist.SalonID != req.SalonID {
		h.errorResponse(w, r, "stylist not found")
		return
	}

	salon, err := h.repository.GetSalonByID(req.SalonID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "salon not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// The service occupies every half-hour slot it touches; all of them must
	// currently be free.
	slots, err := h.calculator.AvailableTimeSlots(r.Context(), stylist.ID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	free := make(map[string]bool, len(slots))
	for _, s := range slots {
		free[s.Time] = true
	}

	end := start + time.Duration(service.DurationMinutes)*time.Minute
	for cur := start; cur < end; cur += availability.SlotDuration {
		if !free[availability.FormatClock(cur)] {
			h.errorResponse(w, r, "the selected time slot is not available")
			return
		}
	}

	appt := &domain.Appointment{
		SalonID:   salon.ID,
		ServiceID: service.ID,
		StylistID: stylist.ID,
		UserID:    myInfo.ID,
		Date:      date,
		StartTime: availability.FormatClock(start),
		EndTime:   availability.FormatClock(end),
		Status:    domain.AppointmentPending,
		Notes:     req.Notes,
	}

	if err := h.repository.CreateAppointment(appt); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, repository.ErrAppointmentConflict):
			h.errorResponse(w, r, "the selected time slot is no longer available")
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "appointments_stylist_slot_key":
			h.errorResponse(w, r, "the selected time slot is no longer available")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "appointment",
		To:   myInfo.Email,
		Data: domain.AppointmentMailData{
			FullName:    myInfo.FullName,
			SalonName:   salon.Name,
			ServiceName: service.Name,
			StylistName: stylist.Name,
			Date:        appt.Date.Format("2006-01-02"),
			StartTime:   appt.StartTime,
			Status:      string(appt.Status),
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointment booked", appt)
}

func (h *Handler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	appts, err := h.repository.GetAppointmentsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments retrieved", appts)
}

// canAccessAppointment reports whether the user may see or modify the
// appointment: its owner, an admin, or the partner managing its salon.
func canAccessAppointment(user *domain.User, appt *domain.Appointment) bool {
	if user.Role == domain.RoleAdmin || appt.UserID == user.ID {
		return true
	}
	return user.Role == domain.RolePartner && user.SalonID != nil && *user.SalonID == appt.SalonID
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if !canAccessAppointment(myInfo, appt) {
		h.errorResponse(w, r, "appointment not found")
		return
	}

	h.successResponse(w, r, "appointment retrieved", appt)
}

// validStatusTransitions maps a current status to the statuses it may move to.
var validStatusTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.AppointmentPending:   {domain.AppointmentConfirmed, domain.AppointmentCancelled},
	domain.AppointmentConfirmed: {domain.AppointmentCompleted, domain.AppointmentCancelled},
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if !canAccessAppointment(myInfo, appt) {
		h.errorResponse(w, r, "appointment not found")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newStatus := domain.AppointmentStatus(req.Status)

	// Clients may only cancel their own bookings; confirming and completing
	// is salon-side work.
	if myInfo.Role == domain.RoleClient && newStatus != domain.AppointmentCancelled {
		h.errorResponse(w, r, "permission denied")
		return
	}

	allowed := false
	for _, s := range validStatusTransitions[appt.Status] {
		if s == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		h.errorResponse(w, r, "invalid status transition")
		return
	}

	appt.Status = newStatus
	if err := h.repository.UpdateAppointmentStatus(appt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update appointment, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	owner, err := h.repository.GetUserByID(appt.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	salon, err := h.repository.GetSalonByID(appt.SalonID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	service, err := h.repository.GetServiceByID(appt.ServiceID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stylist, err := h.repository.GetStylistByID(appt.StylistID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.queueMail(domain.MailMessage{
		Type: "appointment",
		To:   owner.Email,
		Data: domain.AppointmentMailData{
			FullName:    owner.FullName,
			SalonName:   salon.Name,
			ServiceName: service.Name,
			StylistName: stylist.Name,
			Date:        appt.Date.Format("2006-01-02"),
			StartTime:   appt.StartTime,
			Status:      string(appt.Status),
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointment status updated", appt)
}

func (h *Handler) GetSalonAppointments(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		dateParam = time.Now().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
		return
	}

	appts, err := h.repository.GetSalonAppointments(salon.ID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments retrieved", appts)
}
