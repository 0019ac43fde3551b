// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dashboard is the admin controller: a small state machine that owns
// the in-memory entity collections and the open modal. Handlers translate
// HTTP requests into its methods; it never touches the network except
// through the data facade and the auth client.
package dashboard

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/data"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// State is the controller's lifecycle position.
type State int

// Controller states.
const (
	StateLoggedOut State = iota
	StateAuthenticating
	StateLoggedIn
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}

// Tab selects which collection the dashboard displays.
type Tab string

// Dashboard tabs.
const (
	TabProjects   Tab = "projects"
	TabShop       Tab = "shop"
	TabBrands     Tab = "brands"
	TabBlog       Tab = "blog"
	TabPricing    Tab = "pricing"
	TabOrders     Tab = "orders"
	TabCalculator Tab = "calculator"
	TabSettings   Tab = "settings"
)

// ValidTab reports whether t names a dashboard tab.
func ValidTab(t Tab) bool {
	switch t {
	case TabProjects, TabShop, TabBrands, TabBlog, TabPricing, TabOrders, TabCalculator, TabSettings:
		return true
	}
	return false
}

// Controller errors.
var (
	ErrBusy            = errors.New("another request is in flight")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrNoModal         = errors.New("no modal open")
	ErrConfirmRequired = errors.New("delete requires confirmation")
	ErrBadCredentials  = errors.New("invalid email or password")
)

// Collections is every entity collection the dashboard renders. It is
// replaced wholesale by a fetch-all; there is no per-item patching.
type Collections struct {
	Projects          []model.Project
	Products          []model.Product
	Brands            []model.Brand
	BlogPosts         []model.BlogPost
	PricingCategories []model.PricingCategory
	PricingPackages   []model.PricingPackage
	Inquiries         []model.ServiceInquiry
	CalculatorItems   []model.CalculatorItem
	Settings          model.SiteSettings
}

// Controller drives the admin dashboard. All methods are safe for concurrent
// use; the busy flag additionally serializes user-visible mutations so a
// double-click cannot fire a write twice.
type Controller struct {
	svc  *data.Service
	auth *backend.Auth
	log  *slog.Logger

	// Demo login fallback for deployments without a configured auth backend.
	demoEmail        string
	demoPasswordHash string

	mu        sync.Mutex
	state     State
	tab       Tab
	session   *backend.Session
	busy      bool
	lastError string
	modal     ModalForm
	data      Collections
}

// New creates a controller in the logged-out state. demoEmail and
// demoPasswordHash (bcrypt) enable login when the auth backend is not
// configured; leave them empty to disable the demo login entirely.
func New(svc *data.Service, auth *backend.Auth, demoEmail, demoPasswordHash string, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		svc:              svc,
		auth:             auth,
		log:              log,
		demoEmail:        demoEmail,
		demoPasswordHash: demoPasswordHash,
		state:            StateLoggedOut,
		tab:              TabProjects,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Tab returns the selected tab.
func (c *Controller) Tab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// Busy reports whether a request is outstanding.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// LastError returns the most recent user-facing error message, or "".
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// Modal returns the open modal form, or nil.
func (c *Controller) Modal() ModalForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

// Collections returns the current view data. The slices are shared; callers
// must treat them as read-only.
func (c *Controller) Collections() Collections {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Session returns the backend session, or nil when logged out or in demo
// mode with local credentials.
func (c *Controller) Session() *backend.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// begin marks a request outstanding. It fails fast instead of queueing so a
// second submission while one is in flight is rejected, not deferred.
func (c *Controller) begin(requireLogin bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if requireLogin && c.state != StateLoggedIn {
		return ErrNotLoggedIn
	}
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	return nil
}

func (c *Controller) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		c.lastError = err.Error()
	} else {
		c.lastError = ""
	}
}

// Login authenticates and, on success, loads every collection before the
// dashboard renders. On failure the controller returns to the logged-out
// state with the error surfaced; submitted credentials are the caller's to
// keep so the admin can retry without retyping.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := c.begin(false); err != nil {
		return err
	}
	c.mu.Lock()
	c.state = StateAuthenticating
	c.mu.Unlock()

	session, err := c.signIn(ctx, email, password)
	if err != nil {
		c.mu.Lock()
		c.state = StateLoggedOut
		c.mu.Unlock()
		c.finish(err)
		return err
	}

	collections, fetchErr := c.fetchAll(ctx)

	c.mu.Lock()
	c.session = session
	c.state = StateLoggedIn
	c.tab = TabProjects
	c.modal = nil
	if fetchErr == nil {
		c.data = collections
	}
	c.mu.Unlock()
	c.finish(fetchErr)
	return fetchErr
}

// signIn uses the auth backend when configured and falls back to the local
// demo credential check otherwise.
func (c *Controller) signIn(ctx context.Context, email, password string) (*backend.Session, error) {
	if c.auth.Configured() {
		session, err := c.auth.SignInWithPassword(ctx, email, password)
		if err != nil {
			c.log.Warn("admin login failed", "email", email, "error", err)
			return nil, err
		}
		return session, nil
	}

	if c.demoPasswordHash == "" {
		return nil, errors.New("admin login is not configured")
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.demoEmail)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(c.demoPasswordHash), []byte(password))
	if !emailOK || passErr != nil {
		c.log.Warn("demo admin login failed", "email", email)
		return nil, ErrBadCredentials
	}
	return &backend.Session{Email: email, ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
}

// SignOut tears the controller down to the logged-out state. The backend
// session is revoked best effort.
func (c *Controller) SignOut(ctx context.Context) {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.state = StateLoggedOut
	c.tab = TabProjects
	c.modal = nil
	c.data = Collections{}
	c.lastError = ""
	c.busy = false
	c.mu.Unlock()

	if session != nil && session.AccessToken != "" {
		if err := c.auth.SignOut(ctx, session.AccessToken); err != nil {
			c.log.Warn("backend sign-out failed", "error", err)
		}
	}
}

// SelectTab switches the visible collection. Purely local; no re-fetch.
func (c *Controller) SelectTab(tab Tab) error {
	if !ValidTab(tab) {
		return fmt.Errorf("unknown tab %q", tab)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoggedIn {
		return ErrNotLoggedIn
	}
	c.tab = tab
	return nil
}

// Refresh re-fetches every collection.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.begin(true); err != nil {
		return err
	}
	collections, err := c.fetchAll(ctx)
	if err == nil {
		c.mu.Lock()
		c.data = collections
		c.mu.Unlock()
	}
	c.finish(err)
	return err
}

// fetchAll reads every collection in parallel and waits for all of them to
// settle. On any failure the old collections are kept untouched, matching
// the no-partial-mutation rule.
func (c *Controller) fetchAll(ctx context.Context) (Collections, error) {
	var (
		out  Collections
		errs [8]error
		wg   sync.WaitGroup
	)

	wg.Add(9)
	go func() { defer wg.Done(); out.Projects, errs[0] = c.svc.Projects(ctx) }()
	go func() { defer wg.Done(); out.Products, errs[1] = c.svc.Products(ctx) }()
	go func() { defer wg.Done(); out.Brands, errs[2] = c.svc.Brands(ctx) }()
	go func() { defer wg.Done(); out.BlogPosts, errs[3] = c.svc.BlogPosts(ctx) }()
	go func() { defer wg.Done(); out.PricingCategories, errs[4] = c.svc.PricingCategories(ctx) }()
	go func() { defer wg.Done(); out.PricingPackages, errs[5] = c.svc.PricingPackages(ctx) }()
	go func() { defer wg.Done(); out.Inquiries, errs[6] = c.svc.Inquiries(ctx) }()
	go func() { defer wg.Done(); out.CalculatorItems, errs[7] = c.svc.AllCalculatorItems(ctx) }()
	go func() { defer wg.Done(); out.Settings = c.svc.Settings(ctx) }()
	wg.Wait()

	return out, errors.Join(errs[:]...)
}

// OpenCreate opens an empty create modal for the given kind, discarding any
// previous form state and pending file selections.
func (c *Controller) OpenCreate(kind Kind) error {
	modal, err := newForm(kind)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoggedIn {
		return ErrNotLoggedIn
	}
	c.modal = modal
	return nil
}

// OpenEdit opens an edit modal seeded from the item currently in the
// collections, list fields re-serialized into their editable text form.
func (c *Controller) OpenEdit(kind Kind, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoggedIn {
		return ErrNotLoggedIn
	}

	modal, err := c.editFormLocked(kind, id)
	if err != nil {
		return err
	}
	c.modal = modal
	return nil
}

func (c *Controller) editFormLocked(kind Kind, id string) (ModalForm, error) {
	switch kind {
	case KindProject:
		for _, p := range c.data.Projects {
			if p.ID == id {
				return editProjectForm(p), nil
			}
		}
	case KindProduct:
		for _, p := range c.data.Products {
			if p.ID == id {
				return editProductForm(p), nil
			}
		}
	case KindBrand:
		for _, b := range c.data.Brands {
			if b.ID == id {
				return editBrandForm(b), nil
			}
		}
	case KindBlog:
		for _, p := range c.data.BlogPosts {
			if p.ID == id {
				return editBlogForm(p), nil
			}
		}
	case KindPackage:
		for _, p := range c.data.PricingPackages {
			if p.ID == id {
				return editPackageForm(p), nil
			}
		}
	case KindCategory:
		for _, cat := range c.data.PricingCategories {
			if cat.ID == id {
				return editCategoryForm(cat), nil
			}
		}
	case KindCalculator:
		for _, item := range c.data.CalculatorItems {
			if item.ID == id {
				return editCalculatorForm(item), nil
			}
		}
	default:
		return nil, fmt.Errorf("unknown modal kind %q", kind)
	}
	return nil, fmt.Errorf("%s %q not found", kind, id)
}

// CloseModal discards the open modal and its pending input.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = nil
}

// Submit resolves the open modal's pending uploads, writes the entity, then
// re-fetches everything and closes the modal. On failure the modal stays
// open with its input intact so the admin can retry.
func (c *Controller) Submit(ctx context.Context) error {
	if err := c.begin(true); err != nil {
		return err
	}
	c.mu.Lock()
	modal := c.modal
	c.mu.Unlock()
	if modal == nil {
		c.finish(nil)
		return ErrNoModal
	}

	if err := modal.submit(ctx, c); err != nil {
		c.finish(err)
		return err
	}

	collections, fetchErr := c.fetchAll(ctx)
	c.mu.Lock()
	if fetchErr == nil {
		c.data = collections
	}
	c.modal = nil
	c.mu.Unlock()
	c.finish(fetchErr)
	return fetchErr
}

// Delete removes one item after explicit confirmation, then re-fetches.
func (c *Controller) Delete(ctx context.Context, kind Kind, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if err := c.begin(true); err != nil {
		return err
	}

	var err error
	switch kind {
	case KindProject:
		_, err = c.svc.DeleteProject(ctx, id)
	case KindProduct:
		_, err = c.svc.DeleteProduct(ctx, id)
	case KindBrand:
		_, err = c.svc.DeleteBrand(ctx, id)
	case KindBlog:
		_, err = c.svc.DeleteBlogPost(ctx, id)
	case KindPackage:
		_, err = c.svc.DeletePackage(ctx, id)
	case KindCategory:
		_, err = c.svc.DeletePricingCategory(ctx, id)
	case KindCalculator:
		_, err = c.svc.DeleteCalculatorItem(ctx, id)
	default:
		err = fmt.Errorf("unknown modal kind %q", kind)
	}
	if err != nil {
		c.finish(err)
		return err
	}

	collections, fetchErr := c.fetchAll(ctx)
	if fetchErr == nil {
		c.mu.Lock()
		c.data = collections
		c.mu.Unlock()
	}
	c.finish(fetchErr)
	return fetchErr
}

// SetInquiryStatus advances a lead through the pipeline and re-fetches.
func (c *Controller) SetInquiryStatus(ctx context.Context, id, status string) error {
	if err := c.begin(true); err != nil {
		return err
	}
	if _, err := c.svc.UpdateInquiryStatus(ctx, id, status); err != nil {
		c.finish(err)
		return err
	}
	collections, fetchErr := c.fetchAll(ctx)
	if fetchErr == nil {
		c.mu.Lock()
		c.data = collections
		c.mu.Unlock()
	}
	c.finish(fetchErr)
	return fetchErr
}

// SaveSettings uploads any newly selected logo or favicon, writes the
// settings patch, and re-fetches. Brand assets share the brands bucket.
func (c *Controller) SaveSettings(ctx context.Context, patch model.SiteSettingsPatch, logo, favicon []byte) error {
	if err := c.begin(true); err != nil {
		return err
	}

	if len(logo) > 0 {
		url, err := c.svc.UploadImage(ctx, data.BucketBrands, logo)
		if err != nil {
			c.finish(err)
			return err
		}
		patch.LogoURL = &url
	}
	if len(favicon) > 0 {
		url, err := c.svc.UploadImage(ctx, data.BucketBrands, favicon)
		if err != nil {
			c.finish(err)
			return err
		}
		patch.FaviconURL = &url
	}

	if _, err := c.svc.UpdateSettings(ctx, patch); err != nil {
		c.finish(err)
		return err
	}

	collections, fetchErr := c.fetchAll(ctx)
	if fetchErr == nil {
		c.mu.Lock()
		c.data = collections
		c.mu.Unlock()
	}
	c.finish(fetchErr)
	return fetchErr
}
