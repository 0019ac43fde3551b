// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/peculiardigitals/peculiar-go/internal/dashboard"
	"github.com/peculiardigitals/peculiar-go/internal/eventlog"
	"github.com/peculiardigitals/peculiar-go/internal/model"
	"github.com/peculiardigitals/peculiar-go/internal/session"
)

// AdminHandler drives the dashboard controller over a JSON API.
type AdminHandler struct {
	ctrl          *dashboard.Controller
	events        *eventlog.Store
	sm            *scs.SessionManager
	maxUploadSize int64
	log           *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ctrl *dashboard.Controller, events *eventlog.Store, sm *scs.SessionManager, maxUploadSize int64, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		ctrl:          ctrl,
		events:        events,
		sm:            sm,
		maxUploadSize: maxUploadSize,
		log:           log,
	}
}

// writeControllerError maps controller failures onto HTTP statuses.
func (h *AdminHandler) writeControllerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrBusy):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, dashboard.ErrNotLoggedIn):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, dashboard.ErrNoModal),
		errors.Is(err, dashboard.ErrConfirmRequired):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, dashboard.ErrBadCredentials):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	default:
		writeBackendError(w, err)
	}
}

// statePayload is the dashboard view state sent to the client.
func (h *AdminHandler) statePayload() map[string]any {
	payload := map[string]any{
		"state":     h.ctrl.State().String(),
		"tab":       string(h.ctrl.Tab()),
		"busy":      h.ctrl.Busy(),
		"lastError": h.ctrl.LastError(),
		"modal":     nil,
	}
	if modal := h.ctrl.Modal(); modal != nil {
		payload["modal"] = map[string]any{
			"kind":   string(modal.Kind()),
			"editId": modal.EditTarget(),
		}
	}
	return payload
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ctrl.Login(r.Context(), req.Email, req.Password); err != nil {
		h.writeControllerError(w, err)
		return
	}

	// New session token on privilege change.
	if err := h.sm.RenewToken(r.Context()); err != nil {
		h.log.Error("session renew failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "session error")
		return
	}
	h.sm.Put(r.Context(), session.KeyAdminEmail, req.Email)
	if s := h.ctrl.Session(); s != nil && s.AccessToken != "" {
		h.sm.Put(r.Context(), session.KeyAccessToken, s.AccessToken)
		h.sm.Put(r.Context(), session.KeyTokenExpires, s.ExpiresAt.Unix())
	}

	writeJSONSuccess(w, h.statePayload())
}

// Logout handles POST /admin/logout.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.ctrl.SignOut(r.Context())
	if err := h.sm.Destroy(r.Context()); err != nil {
		h.log.Error("session destroy failed", "error", err)
	}
	writeJSONSuccess(w, nil)
}

// GetState handles GET /admin/state.
func (h *AdminHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, h.statePayload())
}

// GetData handles GET /admin/data. The admin sees the full settings record,
// payment secrets included, since this is where they are edited.
func (h *AdminHandler) GetData(w http.ResponseWriter, r *http.Request) {
	c := h.ctrl.Collections()
	writeJSONSuccess(w, map[string]any{
		"projects":          c.Projects,
		"products":          c.Products,
		"brands":            c.Brands,
		"blogPosts":         c.BlogPosts,
		"pricingCategories": c.PricingCategories,
		"pricingPackages":   c.PricingPackages,
		"inquiries":         c.Inquiries,
		"calculatorItems":   c.CalculatorItems,
		"settings":          c.Settings,
	})
}

// Refresh handles POST /admin/refresh.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Refresh(r.Context()); err != nil {
		h.writeControllerError(w, err)
		return
	}
	writeJSONSuccess(w, h.statePayload())
}

type tabRequest struct {
	Tab string `json:"tab"`
}

// SelectTab handles POST /admin/tab.
func (h *AdminHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.ctrl.SelectTab(dashboard.Tab(req.Tab)); err != nil {
		if errors.Is(err, dashboard.ErrNotLoggedIn) {
			h.writeControllerError(w, err)
			return
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSONSuccess(w, h.statePayload())
}

type openModalRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

// OpenModal handles POST /admin/modal/open. With an id the form is seeded
// from the loaded collections for editing; without one it starts blank.
func (h *AdminHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	var req openModalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind := dashboard.Kind(req.Kind)
	var err error
	if req.ID != "" {
		err = h.ctrl.OpenEdit(kind, req.ID)
	} else {
		err = h.ctrl.OpenCreate(kind)
	}
	if err != nil {
		if errors.Is(err, dashboard.ErrNotLoggedIn) {
			h.writeControllerError(w, err)
			return
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONSuccess(w, map[string]any{
		"kind": string(kind),
		"form": h.ctrl.Modal(),
	})
}

// CloseModal handles POST /admin/modal/close.
func (h *AdminHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.ctrl.CloseModal()
	writeJSONSuccess(w, h.statePayload())
}

// SubmitModal handles POST /admin/modal/submit. The request is multipart:
// the "payload" part carries the form fields as JSON and is decoded into the
// open modal, "image" and "screenshots" parts carry newly selected files.
func (h *AdminHandler) SubmitModal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	modal := h.ctrl.Modal()
	if modal == nil {
		writeJSONError(w, http.StatusBadRequest, dashboard.ErrNoModal.Error())
		return
	}

	if payload := r.FormValue("payload"); payload != "" {
		if err := json.Unmarshal([]byte(payload), modal); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid form payload")
			return
		}
	}

	image, err := h.filePart(r, "image")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unreadable image upload")
		return
	}
	screenshots, err := h.fileParts(r, "screenshots")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unreadable screenshot upload")
		return
	}

	switch f := modal.(type) {
	case *dashboard.ProjectForm:
		if image != nil {
			f.PendingImage = image
		}
		f.AddScreenshots(screenshots...)
	case *dashboard.ProductForm:
		if image != nil {
			f.PendingImage = image
		}
		f.AddScreenshots(screenshots...)
	case *dashboard.BrandForm:
		if image != nil {
			f.PendingLogo = image
		}
	case *dashboard.BlogForm:
		if image != nil {
			f.PendingCover = image
		}
	}

	if err := h.ctrl.Submit(r.Context()); err != nil {
		h.writeControllerError(w, err)
		return
	}
	writeJSONSuccess(w, h.statePayload())
}

type removeScreenshotRequest struct {
	Index int `json:"index"`
}

// RemoveScreenshot handles POST /admin/modal/screenshot/remove. The index is
// the position in the rendered gallery, persisted URLs first.
func (h *AdminHandler) RemoveScreenshot(w http.ResponseWriter, r *http.Request) {
	var req removeScreenshotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch f := h.ctrl.Modal().(type) {
	case *dashboard.ProjectForm:
		f.RemoveScreenshotAt(req.Index)
	case *dashboard.ProductForm:
		f.RemoveScreenshotAt(req.Index)
	default:
		writeJSONError(w, http.StatusBadRequest, "open modal has no screenshots")
		return
	}
	writeJSONSuccess(w, nil)
}

type deleteRequest struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// Delete handles POST /admin/delete.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.ctrl.Delete(r.Context(), dashboard.Kind(req.Kind), req.ID, req.Confirmed); err != nil {
		h.writeControllerError(w, err)
		return
	}
	writeJSONSuccess(w, h.statePayload())
}

type inquiryStatusRequest struct {
	Status string `json:"status"`
}

// SetInquiryStatus handles POST /admin/inquiries/{id}/status.
func (h *AdminHandler) SetInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req inquiryStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !model.ValidInquiryStatus(req.Status) {
		writeJSONError(w, http.StatusBadRequest, "unknown inquiry status")
		return
	}
	if err := h.ctrl.SetInquiryStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		h.writeControllerError(w, err)
		return
	}
	writeJSONSuccess(w, h.statePayload())
}

// SaveSettings handles POST /admin/settings. Multipart: a "settings" part
// with the full settings record as JSON plus optional "logo" and "favicon"
// file parts.
func (h *AdminHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	var settings model.SiteSettings
	if err := json.Unmarshal([]byte(r.FormValue("settings")), &settings); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	logo, err := h.filePart(r, "logo")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unreadable logo upload")
		return
	}
	favicon, err := h.filePart(r, "favicon")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unreadable favicon upload")
		return
	}

	if err := h.ctrl.SaveSettings(r.Context(), settings.Patch(), logo, favicon); err != nil {
		h.writeControllerError(w, err)
		return
	}
	writeJSONSuccess(w, h.statePayload())
}

// ListEvents handles GET /admin/events.
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeJSONError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	events, err := h.events.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Error("list events failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	writeJSONSuccess(w, map[string]any{"events": events})
}

// filePart reads one optional uploaded file, returning nil when absent.
func (h *AdminHandler) filePart(r *http.Request, name string) ([]byte, error) {
	file, _, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, h.maxUploadSize))
}

// fileParts reads every uploaded file under the given field name.
func (h *AdminHandler) fileParts(r *http.Request, name string) ([][]byte, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[name]
	out := make([][]byte, 0, len(headers))
	for _, fh := range headers {
		data, err := readHeader(fh, h.maxUploadSize)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func readHeader(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, limit))
}
