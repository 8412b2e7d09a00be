// Package seed fills a development database with a small believable
// marketplace: a few salons, their menus and stylists, and a week of
// availability for every stylist.
package seed

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/availability"
	"github.com/glowbook-dev/glowbook/backend/internal/domain"
	"github.com/glowbook-dev/glowbook/backend/internal/repository"
	"github.com/glowbook-dev/glowbook/backend/internal/utils"
)

type salonSeed struct {
	name        string
	description string
	address     string
	city        string
	phone       string
	services    []serviceSeed
	stylists    []string
}

type serviceSeed struct {
	name            string
	priceCents      int64
	durationMinutes int32
}

var demoSalons = []salonSeed{
	{
		name:        "Luxe Hair Studio",
		description: "Full service hair studio in the heart of downtown.",
		address:     "112 Main St",
		city:        "Portland",
		phone:       "555-0101",
		services: []serviceSeed{
			{"Women's Haircut", 6500, 60},
			{"Men's Haircut", 4000, 30},
			{"Color & Highlights", 14000, 120},
			{"Blowout", 4500, 30},
		},
		stylists: []string{"Maya Torres", "Jordan Lee", "Priya Shah"},
	},
	{
		name:        "The Polished Nail Bar",
		description: "Manicures, pedicures and nail art.",
		address:     "48 Elm Ave",
		city:        "Portland",
		phone:       "555-0102",
		services: []serviceSeed{
			{"Classic Manicure", 3000, 30},
			{"Gel Manicure", 4500, 60},
			{"Deluxe Pedicure", 5500, 60},
		},
		stylists: []string{"Lena Park", "Rosa Alvarez"},
	},
	{
		name:        "美发沙龙",
		description: "Cuts, perms and traditional head massage.",
		address:     "9 Harbor Rd",
		city:        "Seattle",
		phone:       "555-0103",
		services: []serviceSeed{
			{"Haircut", 3500, 30},
			{"Perm", 12000, 120},
			{"Head Massage", 3000, 30},
		},
		stylists: []string{"Wei Zhang"},
	},
}

// weeklyRules is the default schedule every seeded stylist gets: closed on
// Sunday and Monday, 09:00-17:00 otherwise.
func weeklyRules() []*domain.AvailabilityRule {
	rules := []*domain.AvailabilityRule{}
	for day := int32(0); day < 7; day++ {
		rule := &domain.AvailabilityRule{
			DayOfWeek:   day,
			StartTime:   "09:00",
			EndTime:     "17:00",
			IsAvailable: day != 0 && day != 1,
		}
		rules = append(rules, rule)
	}
	return rules
}

func SeedDemoData(repo *repository.Repository) {
	for _, s := range demoSalons {
		salon := &domain.Salon{
			Name:        s.name,
			Slug:        utils.Slugify(s.name),
			Description: s.description,
			Address:     s.address,
			City:        s.city,
			Phone:       s.phone,
		}
		if err := repo.CreateSalon(salon); err != nil {
			slog.Error("failed to seed salon", "name", s.name, "error", err)
			continue
		}

		for _, svc := range s.services {
			service := &domain.Service{
				SalonID:         salon.ID,
				Name:            svc.name,
				PriceCents:      svc.priceCents,
				DurationMinutes: svc.durationMinutes,
			}
			if err := repo.CreateService(service); err != nil {
				slog.Error("failed to seed service", "salon", s.name, "service", svc.name, "error", err)
			}
		}

		for _, name := range s.stylists {
			stylist := &domain.Stylist{
				SalonID: salon.ID,
				Name:    name,
			}
			if err := repo.CreateStylist(stylist); err != nil {
				slog.Error("failed to seed stylist", "salon", s.name, "stylist", name, "error", err)
				continue
			}

			if err := repo.ReplaceStylistAvailability(stylist.ID, weeklyRules()); err != nil {
				slog.Error("failed to seed availability", "stylist", name, "error", err)
			}
		}

		slog.Info("seeded salon", "name", s.name, "slug", salon.Slug)
	}
}

// SeedRandomAppointments books n random future appointments across the seeded
// salons, picking clients, services and stylists at random. Slot conflicts are
// simply skipped, the count reported is the number actually inserted.
func SeedRandomAppointments(repo *repository.Repository, n int) {
	salons, err := repo.GetSalons(repository.SalonFilter{})
	if err != nil {
		slog.Error("failed to list salons", "error", err)
		return
	}
	users, err := repo.GetAllUsers()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return
	}

	clients := []*domain.User{}
	for _, u := range users {
		if u.Role == domain.RoleClient {
			clients = append(clients, u)
		}
	}

	if len(salons) == 0 || len(clients) == 0 {
		slog.Error("seed salons and client users first")
		return
	}

	cnt := 0
	for i := 0; i < n; i++ {
		salon := salons[rand.Intn(len(salons))]

		services, err := repo.GetServices(salon.ID)
		if err != nil || len(services) == 0 {
			continue
		}
		stylists, err := repo.GetStylists(salon.ID)
		if err != nil || len(stylists) == 0 {
			continue
		}

		service := services[rand.Intn(len(services))]
		stylist := stylists[rand.Intn(len(stylists))]
		client := clients[rand.Intn(len(clients))]

		date := time.Now().AddDate(0, 0, 1+rand.Intn(14))
		start := 9*time.Hour + time.Duration(rand.Intn(14))*availability.SlotDuration
		end := start + time.Duration(service.DurationMinutes)*time.Minute

		appt := &domain.Appointment{
			SalonID:   salon.ID,
			ServiceID: service.ID,
			StylistID: stylist.ID,
			UserID:    client.ID,
			Date:      date,
			StartTime: availability.FormatClock(start),
			EndTime:   availability.FormatClock(end),
			Status:    domain.AppointmentConfirmed,
		}

		if err := repo.CreateAppointment(appt); err != nil {
			if errors.Is(err, repository.ErrAppointmentConflict) {
				continue
			}
			slog.Error("failed to seed appointment", "error", err)
			continue
		}

		cnt++
	}

	slog.Info("appointments inserted", "count", cnt)
}
