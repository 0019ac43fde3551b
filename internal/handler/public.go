// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler exposes the site over HTTP: a public read API for the
// marketing pages plus a JSON admin API that drives the dashboard
// controller.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peculiardigitals/peculiar-go/internal/data"
	"github.com/peculiardigitals/peculiar-go/internal/model"
	"github.com/peculiardigitals/peculiar-go/internal/payment"
)

// PublicHandler serves the unauthenticated site API.
type PublicHandler struct {
	svc *data.Service
	log *slog.Logger

	// payBaseURL overrides the Paystack endpoint in tests. Empty means the
	// real gateway.
	payBaseURL string
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(svc *data.Service, log *slog.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, log: log}
}

// Health handles GET /healthz.
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListProjects handles GET /api/projects.
func (h *PublicHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.Projects(r.Context())
	if err != nil {
		h.log.Error("list projects failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"projects": projects})
}

// GetProject handles GET /api/projects/{id}.
func (h *PublicHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ProjectByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.log.Error("get project failed", "error", err)
		writeBackendError(w, err)
		return
	}
	if p == nil {
		writeJSONError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"project": p})
}

// ListProducts handles GET /api/products.
func (h *PublicHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Products(r.Context())
	if err != nil {
		h.log.Error("list products failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"products": products})
}

// GetProduct handles GET /api/products/{id}.
func (h *PublicHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.log.Error("get product failed", "error", err)
		writeBackendError(w, err)
		return
	}
	if p == nil {
		writeJSONError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"product": p})
}

// ListBrands handles GET /api/brands.
func (h *PublicHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.Brands(r.Context())
	if err != nil {
		h.log.Error("list brands failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"brands": brands})
}

// ListBlogPosts handles GET /api/blog.
func (h *PublicHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.BlogPosts(r.Context())
	if err != nil {
		h.log.Error("list blog posts failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"posts": posts})
}

// GetBlogPost handles GET /api/blog/{ref}. The ref may be an id or a slug;
// the response includes the article body rendered to sanitized HTML.
func (h *PublicHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.BlogPostByID(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		h.log.Error("get blog post failed", "error", err)
		writeBackendError(w, err)
		return
	}
	if post == nil {
		writeJSONError(w, http.StatusNotFound, "blog post not found")
		return
	}
	contentHTML, err := renderMarkdown(post.Content)
	if err != nil {
		h.log.Error("render blog post failed", "id", post.ID, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to render post")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"post":        post,
		"contentHtml": contentHTML,
	})
}

// ListPricing handles GET /api/pricing, returning categories and packages
// together since the pricing page always renders both.
func (h *PublicHandler) ListPricing(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.PricingCategories(r.Context())
	if err != nil {
		h.log.Error("list pricing categories failed", "error", err)
		writeBackendError(w, err)
		return
	}
	packages, err := h.svc.PricingPackages(r.Context())
	if err != nil {
		h.log.Error("list pricing packages failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{
		"categories": categories,
		"packages":   packages,
	})
}

// ListCalculatorItems handles GET /api/calculator. Only active items are
// returned; the admin view uses a separate endpoint.
func (h *PublicHandler) ListCalculatorItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.CalculatorItems(r.Context())
	if err != nil {
		h.log.Error("list calculator items failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"items": items})
}

// GetSettings handles GET /api/settings. Payment secrets are stripped.
func (h *PublicHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.svc.Settings(r.Context())
	writeJSONSuccess(w, map[string]any{"settings": settings.PublicView()})
}

// CreateInquiry handles POST /api/inquiries.
func (h *PublicHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var q model.ServiceInquiry
	if err := decodeJSON(r, &q); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if q.ClientName == "" || q.Email == "" {
		writeJSONError(w, http.StatusBadRequest, "clientName and email are required")
		return
	}

	persisted, err := h.svc.SubmitInquiry(r.Context(), q)
	if err != nil {
		h.log.Error("submit inquiry failed", "error", err)
		writeBackendError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"persisted": persisted})
}

// checkoutRequest asks for a payment intent for one product.
type checkoutRequest struct {
	ProductID string `json:"productId"`
	Email     string `json:"email"`
}

// InitCheckout handles POST /api/checkout. The server looks the product up
// itself so a tampered client cannot change the amount.
func (h *PublicHandler) InitCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" || req.Email == "" {
		writeJSONError(w, http.StatusBadRequest, "productId and email are required")
		return
	}

	product, err := h.svc.ProductByID(r.Context(), req.ProductID)
	if err != nil {
		h.log.Error("checkout product lookup failed", "error", err)
		writeBackendError(w, err)
		return
	}
	if product == nil {
		writeJSONError(w, http.StatusNotFound, "product not found")
		return
	}

	amount, err := parsePriceMinor(product.Price)
	if err != nil {
		h.log.Error("checkout price unparseable", "product", product.ID, "price", product.Price)
		writeJSONError(w, http.StatusUnprocessableEntity, "product has no purchasable price")
		return
	}

	settings := h.svc.Settings(r.Context())
	secret := settings.ActiveSecretKey()
	if secret == "" {
		writeJSONError(w, http.StatusServiceUnavailable, "payments are not configured")
		return
	}

	client := payment.NewClient(secret)
	if h.payBaseURL != "" {
		client = payment.NewClientWithBaseURL(secret, h.payBaseURL)
	}
	checkout, err := client.Initialize(r.Context(), req.Email, amount, payment.NewReference())
	if err != nil {
		h.log.Error("checkout init failed", "product", product.ID, "error", err)
		writeJSONError(w, http.StatusBadGateway, "payment gateway rejected the request")
		return
	}

	writeJSONSuccess(w, map[string]any{
		"authorizationUrl": checkout.AuthorizationURL,
		"accessCode":       checkout.AccessCode,
		"reference":        checkout.Reference,
		"publicKey":        settings.ActivePublicKey(),
	})
}

var errNoPrice = errors.New("price has no digits")

// parsePriceMinor converts a display price like "₦150,000" into gateway
// minor units (kobo). Prices are whole naira; any fractional part after a
// dot is ignored.
func parsePriceMinor(price string) (int64, error) {
	if i := strings.IndexByte(price, '.'); i >= 0 {
		price = price[:i]
	}
	var digits strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, errNoPrice
	}
	major, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, err
	}
	if major <= 0 {
		return 0, errNoPrice
	}
	return major * 100, nil
}
