// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/data"
)

const demoEmail = "admin@example.com"

func demoHash(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing demo password: %v", err)
	}
	return string(hash)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newDemoController runs entirely on seeds: no data backend, no auth backend.
func newDemoController(t *testing.T) *Controller {
	t.Helper()
	svc := data.New(backend.NewClient("", ""), backend.NewStorage("", ""), discardLogger())
	return New(svc, backend.NewAuth("", ""), demoEmail, demoHash(t), discardLogger())
}

// newBackedController wires the controller to a fake data backend. Auth
// stays in demo mode so login does not need the fake server.
func newBackedController(t *testing.T, handler http.Handler) *Controller {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := data.New(backend.NewClient(srv.URL, "key"), backend.NewStorage(srv.URL, "key"), discardLogger())
	return New(svc, backend.NewAuth("", ""), demoEmail, demoHash(t), discardLogger())
}

func login(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.Login(context.Background(), demoEmail, "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestLoginSuccessLoadsEverything(t *testing.T) {
	c := newDemoController(t)
	if c.State() != StateLoggedOut {
		t.Fatalf("initial state = %v", c.State())
	}

	login(t, c)

	if c.State() != StateLoggedIn {
		t.Errorf("state = %v, want logged in", c.State())
	}
	if c.Tab() != TabProjects {
		t.Errorf("tab = %v, want projects", c.Tab())
	}
	col := c.Collections()
	if len(col.Projects) != 3 || len(col.Brands) != 5 || len(col.BlogPosts) != 2 {
		t.Errorf("collections not loaded: %d projects, %d brands, %d posts",
			len(col.Projects), len(col.Brands), len(col.BlogPosts))
	}
	if col.Settings.BrandName == "" {
		t.Error("settings not loaded")
	}
}

func TestLoginFailureStaysLoggedOut(t *testing.T) {
	c := newDemoController(t)
	err := c.Login(context.Background(), demoEmail, "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("error = %v, want ErrBadCredentials", err)
	}
	if c.State() != StateLoggedOut {
		t.Errorf("state = %v, want logged out", c.State())
	}
	if c.LastError() == "" {
		t.Error("no error surfaced")
	}
	if len(c.Collections().Projects) != 0 {
		t.Error("collections loaded despite failed login")
	}
}

func TestLoginDisabledWithoutCredentials(t *testing.T) {
	svc := data.New(backend.NewClient("", ""), backend.NewStorage("", ""), discardLogger())
	c := New(svc, backend.NewAuth("", ""), "", "", discardLogger())
	if err := c.Login(context.Background(), "x@y.z", "pw"); err == nil {
		t.Error("login succeeded with no auth backend and no demo credentials")
	}
}

func TestTabSelection(t *testing.T) {
	c := newDemoController(t)

	if err := c.SelectTab(TabBlog); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("logged-out tab switch = %v, want ErrNotLoggedIn", err)
	}

	login(t, c)
	if err := c.SelectTab(TabOrders); err != nil {
		t.Fatalf("SelectTab: %v", err)
	}
	if c.Tab() != TabOrders {
		t.Errorf("tab = %v", c.Tab())
	}
	if err := c.SelectTab(Tab("bogus")); err == nil {
		t.Error("invalid tab accepted")
	}
}

func TestOpenCreateResetsForm(t *testing.T) {
	c := newDemoController(t)
	login(t, c)

	if err := c.OpenCreate(KindProject); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}
	f, ok := c.Modal().(*ProjectForm)
	if !ok {
		t.Fatalf("modal is %T", c.Modal())
	}
	if f.EditTarget() != "" || f.Title != "" {
		t.Error("create form not empty")
	}
	if f.Status != "In Progress" {
		t.Errorf("default status = %q", f.Status)
	}

	if err := c.OpenCreate(KindCalculator); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}
	calc := c.Modal().(*CalculatorForm)
	if !calc.IsActive {
		t.Error("new calculator item should default to active")
	}
}

func TestOpenEditSeedsFormBuffers(t *testing.T) {
	c := newDemoController(t)
	login(t, c)

	if err := c.OpenEdit(KindProject, "1"); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	f := c.Modal().(*ProjectForm)
	if f.EditTarget() != "1" {
		t.Errorf("edit target = %q", f.EditTarget())
	}
	if f.StackInput != "React, Node.js, PostgreSQL" {
		t.Errorf("StackInput = %q, want comma-joined stack", f.StackInput)
	}
	if f.Title != "Grace High School Portal" {
		t.Errorf("Title = %q", f.Title)
	}

	if err := c.OpenEdit(KindProject, "nope"); err == nil {
		t.Error("editing a missing item succeeded")
	}
}

func TestEditBlogFormSeedsReadTime(t *testing.T) {
	c := newDemoController(t)
	login(t, c)

	if err := c.OpenEdit(KindBlog, "1"); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	f := c.Modal().(*BlogForm)
	if f.ReadTime != "5 min read" {
		t.Errorf("ReadTime = %q, want the stored value carried into the form", f.ReadTime)
	}
}

func TestScreenshotRemovalByVisualIndex(t *testing.T) {
	f := &ProjectForm{
		PersistedScreenshots: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
	}
	f.AddScreenshots([]byte("file1"), []byte("file2"))

	// Visual order: a.jpg, b.jpg, file1, file2. Index 1 is a stored URL.
	f.RemoveScreenshotAt(1)
	if !reflect.DeepEqual(f.PersistedScreenshots, []string{"https://cdn/a.jpg"}) {
		t.Errorf("persisted = %v", f.PersistedScreenshots)
	}
	if len(f.PendingScreenshots) != 2 {
		t.Errorf("pending count = %d, want 2", len(f.PendingScreenshots))
	}

	// Now index 2 is the second pending file.
	f.RemoveScreenshotAt(2)
	if len(f.PendingScreenshots) != 1 || string(f.PendingScreenshots[0]) != "file1" {
		t.Errorf("pending = %v, want only file1", f.PendingScreenshots)
	}

	// Out-of-range indexes are ignored.
	f.RemoveScreenshotAt(99)
	f.RemoveScreenshotAt(-1)
	if len(f.PersistedScreenshots) != 1 || len(f.PendingScreenshots) != 1 {
		t.Error("out-of-range removal changed the lists")
	}
}

func TestSubmitWithoutModal(t *testing.T) {
	c := newDemoController(t)
	login(t, c)
	if err := c.Submit(context.Background()); !errors.Is(err, ErrNoModal) {
		t.Errorf("Submit = %v, want ErrNoModal", err)
	}
}

func TestSubmitFailureKeepsModalOpen(t *testing.T) {
	c := newDemoController(t)
	login(t, c)

	if err := c.OpenCreate(KindBrand); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}
	f := c.Modal().(*BrandForm)
	f.Name = "Acme"
	f.PendingLogo = []byte("pretend image")

	// Upload fails in demo mode, so the submit fails and input survives.
	if err := c.Submit(context.Background()); err == nil {
		t.Fatal("submit succeeded despite failing upload")
	}
	kept, ok := c.Modal().(*BrandForm)
	if !ok || kept.Name != "Acme" {
		t.Error("modal state lost after failed submit")
	}
	if c.LastError() == "" {
		t.Error("failure not surfaced")
	}
}

func TestSubmitSuccessClosesModal(t *testing.T) {
	c := newDemoController(t)
	login(t, c)

	if err := c.OpenCreate(KindBrand); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}
	c.Modal().(*BrandForm).Name = "Acme"

	// Demo-mode row writes no-op successfully.
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Modal() != nil {
		t.Error("modal still open after successful submit")
	}
	if c.LastError() != "" {
		t.Errorf("stale error %q", c.LastError())
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	c := newDemoController(t)
	login(t, c)

	if err := c.Delete(context.Background(), KindProject, "1", false); !errors.Is(err, ErrConfirmRequired) {
		t.Errorf("unconfirmed delete = %v, want ErrConfirmRequired", err)
	}
	if err := c.Delete(context.Background(), KindProject, "1", true); err != nil {
		t.Errorf("confirmed delete: %v", err)
	}
}

func TestSignOutTearsDown(t *testing.T) {
	c := newDemoController(t)
	login(t, c)
	if err := c.OpenCreate(KindBlog); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}

	c.SignOut(context.Background())

	if c.State() != StateLoggedOut {
		t.Errorf("state = %v", c.State())
	}
	if c.Modal() != nil {
		t.Error("modal survived sign-out")
	}
	if len(c.Collections().Projects) != 0 {
		t.Error("collections survived sign-out")
	}
}

func TestBusyBlocksConcurrentRequests(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})
	c := newBackedController(t, handler)

	done := make(chan error, 1)
	go func() { done <- c.Login(context.Background(), demoEmail, "s3cret") }()

	// Wait for the login's fetch-all to be in flight.
	deadline := time.After(2 * time.Second)
	for !c.Busy() {
		select {
		case <-deadline:
			t.Fatal("controller never became busy")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if err := c.Login(context.Background(), demoEmail, "s3cret"); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent login = %v, want ErrBusy", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first login: %v", err)
	}
}

// fakeContentBackend is a minimal in-memory projects table. Every other
// table reads empty.
type fakeContentBackend struct {
	projects []map[string]any
}

func (f *fakeContentBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/rest/v1/projects" {
		switch r.Method {
		case http.MethodPost:
			var rows []map[string]any
			_ = json.NewDecoder(r.Body).Decode(&rows)
			row := rows[0]
			row["id"] = "p1"
			f.projects = append(f.projects, row)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode([]map[string]any{row})
		default:
			_ = json.NewEncoder(w).Encode(f.projects)
		}
		return
	}
	_, _ = w.Write([]byte("[]"))
}

func TestCreateThenEditRoundTripsStack(t *testing.T) {
	c := newBackedController(t, &fakeContentBackend{})
	login(t, c)

	if err := c.OpenCreate(KindProject); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}
	f := c.Modal().(*ProjectForm)
	f.Title = "Portal"
	f.StackInput = "React, Node.js, Supabase"

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	col := c.Collections()
	if len(col.Projects) != 1 {
		t.Fatalf("got %d projects after submit", len(col.Projects))
	}
	wantStack := []string{"React", "Node.js", "Supabase"}
	if !reflect.DeepEqual(col.Projects[0].Stack, wantStack) {
		t.Errorf("stored stack = %v, want %v", col.Projects[0].Stack, wantStack)
	}

	if err := c.OpenEdit(KindProject, "p1"); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	edit := c.Modal().(*ProjectForm)
	if edit.StackInput != "React, Node.js, Supabase" {
		t.Errorf("reopened StackInput = %q", edit.StackInput)
	}
}
