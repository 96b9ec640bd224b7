package handlers

import (
	"net/http"

	_ "github.com/brokermart/brokermart/docs"
	authhandlers "github.com/brokermart/brokermart/internal/handlers/auth"
	promotionhandlers "github.com/brokermart/brokermart/internal/handlers/promotion"
	wallethandlers "github.com/brokermart/brokermart/internal/handlers/wallet"
	"github.com/brokermart/brokermart/internal/metrics"
	"github.com/brokermart/brokermart/internal/service"
	"github.com/brokermart/brokermart/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	AddFunds(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type PromotionHandler interface {
	RegisterBusiness(w http.ResponseWriter, r *http.Request)
	CreatePromotion(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	GetPromotion(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetUserClaims(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	WalletHandler    WalletHandler
	PromotionHandler PromotionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		WalletHandler:    wallethandlers.New(s.WalletService),
		PromotionHandler: promotionhandlers.New(s.PromotionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	metrics.Register()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Route("/wallet", func(r chi.Router) {
					r.Get("/", h.WalletHandler.GetWallet)
					r.Post("/add-funds", h.WalletHandler.AddFunds)
				})
				r.Route("/transactions", func(r chi.Router) {
					r.Get("/", h.WalletHandler.GetTransactions)
					r.Post("/transfer", h.WalletHandler.Transfer)
				})
				r.Get("/claims", h.PromotionHandler.GetUserClaims)
			})
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", h.PromotionHandler.ListActive)
			r.Get("/{id}", h.PromotionHandler.GetPromotion)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/", h.PromotionHandler.CreatePromotion)
				r.Post("/{id}/claim", h.PromotionHandler.Claim)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/business", h.PromotionHandler.RegisterBusiness)
			r.Route("/promotion-claims", func(r chi.Router) {
				r.Post("/{id}/approve", h.PromotionHandler.Approve)
				r.Post("/{id}/reject", h.PromotionHandler.Reject)
			})
		})
	})

	return r
}
