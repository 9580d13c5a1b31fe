package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// Deps bundles everything the router needs.
type Deps struct {
	Auth          *service.AuthService
	Users         *service.UserService
	Rooms         *service.RoomService
	Events        *service.EventService
	Categories    *service.CategoryService
	Registrations *service.RegistrationService
	Applications  *service.ApplicationService
	Moderation    *service.ModerationService
	Notifications *service.NotificationService
	Logger        *zap.Logger
}

// NewRouter builds the full route table. Static segments are registered
// before the {id} wildcard in each subtree, so /users/profiles resolves
// to the profile routes rather than a user id.
func NewRouter(d Deps) http.Handler {
	authH := NewAuthHandler(d.Auth, d.Logger)
	userH := NewUserHandler(d.Users, d.Logger)
	roomH := NewRoomHandler(d.Rooms, d.Logger)
	eventH := NewEventHandler(d.Events, d.Categories, d.Registrations, d.Applications, d.Logger)
	moderationH := NewModerationHandler(d.Moderation, d.Logger)
	notificationH := NewNotificationHandler(d.Notifications, d.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(d.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authH.Login)
		r.Post("/register", authH.Register)
		r.Group(func(r chi.Router) {
			r.Use(bearerAuth(d.Auth))
			r.Get("/me", authH.Me)
			r.Post("/refresh", authH.Refresh)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(d.Auth))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userH.Create)
			r.Get("/", userH.List)
			r.Route("/profiles", func(r chi.Router) {
				r.Post("/", userH.CreateProfile)
				r.Get("/", userH.ListProfiles)
				r.Get("/{id}", userH.GetProfile)
				r.Put("/{id}", userH.UpdateProfile)
				r.Delete("/{id}", userH.DeleteProfile)
			})
			r.Get("/{id}", userH.Get)
			r.Put("/{id}", userH.Update)
			r.Delete("/{id}", userH.Delete)
			r.Get("/{id}/profile", userH.GetProfileByUser)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", roomH.Create)
			r.Get("/", roomH.List)
			r.Get("/{id}", roomH.Get)
			r.Put("/{id}", roomH.Update)
			r.Delete("/{id}", roomH.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", eventH.Create)
			r.Get("/", eventH.List)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", eventH.CreateCategory)
				r.Get("/", eventH.ListCategories)
				r.Get("/{id}", eventH.GetCategory)
				r.Put("/{id}", eventH.UpdateCategory)
				r.Delete("/{id}", eventH.DeleteCategory)
			})
			r.Route("/category-mappings", func(r chi.Router) {
				r.Post("/", eventH.CreateMapping)
				r.Get("/", eventH.ListMappings)
				r.Get("/{id}", eventH.GetMapping)
				r.Put("/{id}", eventH.UpdateMapping)
				r.Delete("/{id}", eventH.DeleteMapping)
			})
			r.Route("/registrations", func(r chi.Router) {
				r.Post("/", eventH.CreateRegistration)
				r.Get("/", eventH.ListRegistrations)
				r.Get("/{id}", eventH.GetRegistration)
				r.Put("/{id}", eventH.UpdateRegistration)
				r.Delete("/{id}", eventH.DeleteRegistration)
			})
			r.Route("/applications", func(r chi.Router) {
				r.Post("/", eventH.CreateApplication)
				r.Get("/", eventH.ListApplications)
				r.Get("/{id}", eventH.GetApplication)
				r.Put("/{id}", eventH.UpdateApplication)
				r.Delete("/{id}", eventH.DeleteApplication)
			})

			r.Get("/{id}", eventH.Get)
			r.Put("/{id}", eventH.Update)
			r.Delete("/{id}", eventH.Delete)
		})

		r.Route("/moderation", func(r chi.Router) {
			r.Use(requireRoles(model.RoleAdmin, model.RoleCurator))
			r.Route("/event-history", func(r chi.Router) {
				r.Post("/", moderationH.CreateEventHistory)
				r.Get("/", moderationH.ListEventHistory)
				r.Get("/{id}", moderationH.GetEventHistory)
				r.Put("/{id}", moderationH.UpdateEventHistory)
				r.Delete("/{id}", moderationH.DeleteEventHistory)
			})
			r.Route("/application-history", func(r chi.Router) {
				r.Post("/", moderationH.CreateApplicationHistory)
				r.Get("/", moderationH.ListApplicationHistory)
				r.Get("/{id}", moderationH.GetApplicationHistory)
				r.Put("/{id}", moderationH.UpdateApplicationHistory)
				r.Delete("/{id}", moderationH.DeleteApplicationHistory)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/", notificationH.Create)
			r.Get("/", notificationH.List)
			r.Get("/{id}", notificationH.Get)
			r.Put("/{id}", notificationH.Update)
			r.Delete("/{id}", notificationH.Delete)
		})
	})

	return r
}
