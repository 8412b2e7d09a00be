package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/glowbook-dev/glowbook/backend/internal/availability"
	"github.com/glowbook-dev/glowbook/backend/internal/config"
	"github.com/glowbook-dev/glowbook/backend/internal/domain"
	"github.com/glowbook-dev/glowbook/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	calculator  *availability.Calculator
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		calculator:  availability.NewCalculator(repo),
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Public marketplace browsing
	h.Mux.Route("/salons", func(r chi.Router) {
		r.Get("/", h.GetSalons)
		r.With(h.auth, h.myInfo, h.RequiredRole([]domain.Role{domain.RolePartner})).Post("/", h.CreateSalon)

		r.Route("/{salonID}", func(r chi.Router) {
			r.Use(h.salon)
			r.Get("/", h.GetSalon)

			r.Group(func(r chi.Router) {
				r.Use(h.auth, h.myInfo, h.requireSalonOwner)
				r.Patch("/", h.UpdateSalon)
				r.Delete("/", h.DeleteSalon)
			})

			r.Route("/images", func(r chi.Router) {
				r.Get("/", h.GetSalonImages)
				r.Group(func(r chi.Router) {
					r.Use(h.auth, h.myInfo, h.requireSalonOwner)
					r.Post("/", h.CreateSalonImage)
					r.Delete("/{imageID}", h.DeleteSalonImage)
				})
			})

			r.Route("/service-groups", func(r chi.Router) {
				r.Get("/", h.GetServiceGroups)
				r.Group(func(r chi.Router) {
					r.Use(h.auth, h.myInfo, h.requireSalonOwner)
					r.Post("/", h.CreateServiceGroup)
					r.Delete("/{groupID}", h.DeleteServiceGroup)
				})
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", h.GetServices)
				r.Group(func(r chi.Router) {
					r.Use(h.auth, h.myInfo, h.requireSalonOwner)
					r.Post("/", h.CreateService)
					r.Patch("/{serviceID}", h.UpdateService)
					r.Delete("/{serviceID}", h.DeleteService)
				})
			})

			r.Route("/stylists", func(r chi.Router) {
				r.Get("/", h.GetStylists)
				r.Group(func(r chi.Router) {
					r.Use(h.auth, h.myInfo, h.requireSalonOwner)
					r.Post("/", h.CreateStylist)
					r.Patch("/{stylistID}", h.UpdateStylist)
					r.Delete("/{stylistID}", h.DeleteStylist)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.GetSalonReviews)
				r.With(h.auth, h.myInfo).Post("/", h.UpsertReview)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Use(h.auth, h.myInfo, h.requireSalonOwner)
				r.Get("/", h.GetSalonStaff)
				r.Post("/", h.InviteStaff)
				r.Route("/{staffID}", func(r chi.Router) {
					r.Use(h.staffMember)
					r.Patch("/", h.UpdateStaff)
					r.Delete("/", h.DeleteStaff)
				})
			})

			r.With(h.auth, h.myInfo, h.requireSalonOwner).Get("/appointments", h.GetSalonAppointments)
		})
	})

	// Stylist schedules and the slot calculator
	h.Mux.Route("/stylists/{stylistID}", func(r chi.Router) {
		r.Use(h.stylist)
		r.Route("/availability", func(r chi.Router) {
			r.Get("/", h.GetStylistAvailability)
			r.With(h.auth, h.myInfo, h.requireStylistSalonOwner).Put("/", h.ReplaceStylistAvailability)
		})
		r.Get("/slots", h.GetAvailableTimeSlots)
	})

	// Everything below requires a session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.preventInactiveUser)
			r.Post("/", h.CreateAppointment)
			r.Get("/", h.GetMyAppointments)
			r.Route("/{appointmentID}", func(r chi.Router) {
				r.Use(h.appointment)
				r.Get("/", h.GetAppointment)
				r.Patch("/status", h.UpdateAppointmentStatus)
			})
		})

		r.With(h.myInfo).Post("/staff/accept-invite", h.AcceptStaffInvite)

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
			})
		})
	})
}
