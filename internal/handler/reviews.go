package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (h *Handler) GetSalonReviews(w http.ResponseWriter, r *http.Request) {
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	reviews, err := h.repository.GetSalonReviews(salon.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "reviews retrieved", reviews)
}

func (h *Handler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	salon := r.Context().Value(SalonCtx).(*domain.Salon)

	var req struct {
		Rating  int32  `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	review := &domain.Review{
		SalonID: salon.ID,
		UserID:  myInfo.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.repository.UpsertReview(review); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "reviews_user_id_fkey" {
			h.errorResponse(w, r, "account not found")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	review.UserFullName = myInfo.FullName

	h.successResponse(w, r, "review saved", review)
}
