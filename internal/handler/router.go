// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/peculiardigitals/peculiar-go/internal/middleware"
)

// RouterConfig carries the cross-cutting knobs the route tree needs.
type RouterConfig struct {
	// CSRFKey is the 32-byte key for the CSRF token authenticator.
	CSRFKey []byte
	IsDev   bool
	// InquiryLimiter throttles the public inquiry endpoint. Nil disables
	// rate limiting, which only tests should do.
	InquiryLimiter *middleware.RateLimiter
}

// NewRouter assembles the full route tree: the public site API and the
// session-backed admin API.
func NewRouter(pub *PublicHandler, admin *AdminHandler, sm *scs.SessionManager, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(cfg.IsDev))

	r.Get("/healthz", pub.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", pub.ListProjects)
		r.Get("/projects/{id}", pub.GetProject)
		r.Get("/products", pub.ListProducts)
		r.Get("/products/{id}", pub.GetProduct)
		r.Get("/brands", pub.ListBrands)
		r.Get("/blog", pub.ListBlogPosts)
		r.Get("/blog/{ref}", pub.GetBlogPost)
		r.Get("/pricing", pub.ListPricing)
		r.Get("/calculator", pub.ListCalculatorItems)
		r.Get("/settings", pub.GetSettings)

		// Unauthenticated writes get throttled per client IP.
		r.Group(func(r chi.Router) {
			if cfg.InquiryLimiter != nil {
				r.Use(cfg.InquiryLimiter.Middleware())
			}
			r.Post("/inquiries", pub.CreateInquiry)
			r.Post("/checkout", pub.InitCheckout)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(sm.LoadAndSave)
		r.Use(middleware.CSRF(cfg.CSRFKey, cfg.IsDev))

		r.Post("/login", admin.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(sm))

			r.Post("/logout", admin.Logout)
			r.Get("/state", admin.GetState)
			r.Get("/data", admin.GetData)
			r.Post("/refresh", admin.Refresh)
			r.Post("/tab", admin.SelectTab)
			r.Post("/modal/open", admin.OpenModal)
			r.Post("/modal/close", admin.CloseModal)
			r.Post("/modal/submit", admin.SubmitModal)
			r.Post("/modal/screenshot/remove", admin.RemoveScreenshot)
			r.Post("/delete", admin.Delete)
			r.Post("/inquiries/{id}/status", admin.SetInquiryStatus)
			r.Post("/settings", admin.SaveSettings)
			r.Get("/events", admin.ListEvents)
		})
	})

	return r
}
