package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pepshop/pepshop-api/internal/api"
	"github.com/pepshop/pepshop-api/internal/api/middleware"
	"github.com/pepshop/pepshop-api/internal/api/shared"
)

// newRouter builds the chi mux with the middleware chain and every route
// group mounted under /api. Destructive routes sit behind the admin gate.
func (app *application) newRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace)
	r.Use(middleware.RequestLogger(app.logger))
	r.Use(chimiddleware.Recoverer)

	productHandler := api.NewProductHandler(app.productService)
	clientHandler := api.NewClientHandler(app.clientService)
	petHandler := api.NewPetHandler(app.petService)
	appointmentHandler := api.NewAppointmentHandler(app.appointmentService)
	orderHandler := api.NewOrderHandler(app.orderService)
	authHandler := api.NewAuthHandler(app.authService)
	adminGate := middleware.NewAdminGate(app.config.Auth.AdminToken)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithData(w, req, http.StatusOK, map[string]string{
			"message": "PepShop API",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		mountCRUD(r, "/products", crudHandler{
			list: productHandler.List, get: productHandler.GetByID,
			create: productHandler.Create, update: productHandler.Update,
			delete: productHandler.Delete,
		}, adminGate)
		mountCRUD(r, "/clients", crudHandler{
			list: clientHandler.List, get: clientHandler.GetByID,
			create: clientHandler.Create, update: clientHandler.Update,
			delete: clientHandler.Delete,
		}, adminGate)
		mountCRUD(r, "/pets", crudHandler{
			list: petHandler.List, get: petHandler.GetByID,
			create: petHandler.Create, update: petHandler.Update,
			delete: petHandler.Delete,
		}, adminGate)
		mountCRUD(r, "/appointments", crudHandler{
			list: appointmentHandler.List, get: appointmentHandler.GetByID,
			create: appointmentHandler.Create, update: appointmentHandler.Update,
			delete: appointmentHandler.Delete,
		}, adminGate)
		mountCRUD(r, "/orders", crudHandler{
			list: orderHandler.List, get: orderHandler.GetByID,
			create: orderHandler.Create, update: orderHandler.Update,
			delete: orderHandler.Delete,
		}, adminGate)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithError(w, req, http.StatusNotFound,
			fmt.Sprintf("route not found: %s %s", req.Method, req.URL.Path))
	})

	return r
}

// crudHandler groups the five endpoint funcs of one resource so the route
// shape is declared once.
type crudHandler struct {
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

func mountCRUD(r chi.Router, pattern string, h crudHandler, gate *middleware.AdminGate) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.With(gate.Require).Delete("/{id}", h.delete)
	})
}
