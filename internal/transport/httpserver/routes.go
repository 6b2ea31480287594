package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"vet-registry-go/internal/transport/httpserver/handler"
)

func NewRouter(handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/owners", func(r chi.Router) {
			r.Get("/", handlers.ListOwners)
			r.Post("/", handlers.CreateOwner)
			r.Get("/{id}", handlers.GetOwner)
			r.Put("/{id}", handlers.UpdateOwner)
			r.Delete("/{id}", handlers.DeleteOwner)
			r.Get("/{id}/pets", handlers.ListPetsByOwner)
		})

		r.Route("/pets", func(r chi.Router) {
			r.Get("/", handlers.ListPets)
			r.Post("/", handlers.CreatePet)
			r.Get("/{id}", handlers.GetPet)
			r.Put("/{id}", handlers.UpdatePet)
			r.Delete("/{id}", handlers.DeletePet)
		})

		r.Route("/chips", func(r chi.Router) {
			r.Get("/", handlers.ListChips)
			r.Post("/", handlers.CreateChip)
			r.Get("/{id}", handlers.GetChip)
			r.Put("/{id}", handlers.UpdateChip)
			r.Delete("/{id}", handlers.DeleteChip)
		})
	})

	return r
}
