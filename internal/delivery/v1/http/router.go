package http

import (
	_ "github.com/DRSN-tech/storefront/docs" // регистрация swagger-документа
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router     *chi.Mux
	logger     logger.Logger
	swaggerURL string
}

func NewRouter(router *chi.Mux, logger logger.Logger, swaggerURL string) *Router {
	return &Router{router: router, logger: logger, swaggerURL: swaggerURL}
}

func (r *Router) Init(shoeUC usecase.ShoeUC) {
	r.router.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.swaggerURL),
	))

	registerStorefrontRoutes(r.router, NewStorefrontHandler(shoeUC, r.logger))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		shoeHandler := NewShoeHandler(shoeUC, r.logger)
		v1.Get("/header", shoeHandler.getHeader)
		registerShoeRoutes(v1, shoeHandler)
	})
}

func registerStorefrontRoutes(router chi.Router, h *StorefrontHandler) {
	router.Get("/", h.index)
	router.Get("/sale", h.sale)
	router.Get("/new", h.newReleases)
	router.Get("/shoe/{slug}", h.shoe)
}

func registerShoeRoutes(router chi.Router, h *ShoeHandler) {
	router.Route("/shoes", func(sr chi.Router) {
		sr.Get("/", h.listShoes)
		sr.Post("/", h.registerShoe)
		sr.Get("/{slug}", h.getShoe)
	})
}
