// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Project categories
const (
	ProjectCategoryWebsite    = "Website"
	ProjectCategoryWebApp     = "WebApp"
	ProjectCategoryMobileApp  = "MobileApp"
	ProjectCategoryAutomation = "Automation"
)

// Project statuses
const (
	ProjectStatusDelivered   = "Delivered"
	ProjectStatusInProgress  = "In Progress"
	ProjectStatusMaintenance = "Maintenance"
)

// Project represents a portfolio project. The storage row uses snake_case
// column names and stores Budget under the legacy "worth" column.
type Project struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Client         string   `json:"client"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Stack          []string `json:"stack"`
	ImageURL       string   `json:"imageUrl"`
	Screenshots    []string `json:"screenshots"`
	Link           string   `json:"link,omitempty"`
	Status         string   `json:"status"`
	Budget         string   `json:"budget,omitempty"`
	Progress       int      `json:"progress"`
	DeliveryPeriod string   `json:"deliveryPeriod,omitempty"`
	Testimonial    string   `json:"testimonial,omitempty"`
}

// IsInProgress returns true if the project is currently being built.
// Progress is only meaningful in this state.
func (p *Project) IsInProgress() bool {
	return p.Status == ProjectStatusInProgress
}

// ProjectPatch describes a partial write. Nil fields are omitted from the
// storage payload so they never clobber untouched columns.
type ProjectPatch struct {
	Title          *string
	Client         *string
	Category       *string
	Description    *string
	Stack          *[]string
	ImageURL       *string
	Screenshots    *[]string
	Link           *string
	Status         *string
	Budget         *string
	Progress       *int
	DeliveryPeriod *string
	Testimonial    *string
}

// Patch returns a full patch touching every writable column. ID is
// server-assigned and never part of a patch.
func (p Project) Patch() ProjectPatch {
	return ProjectPatch{
		Title:          &p.Title,
		Client:         &p.Client,
		Category:       &p.Category,
		Description:    &p.Description,
		Stack:          &p.Stack,
		ImageURL:       &p.ImageURL,
		Screenshots:    &p.Screenshots,
		Link:           &p.Link,
		Status:         &p.Status,
		Budget:         &p.Budget,
		Progress:       &p.Progress,
		DeliveryPeriod: &p.DeliveryPeriod,
		Testimonial:    &p.Testimonial,
	}
}
