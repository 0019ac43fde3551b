// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// ProjectFromRow maps a storage row to a Project. The budget lives under the
// legacy "worth" column.
func ProjectFromRow(r Row) model.Project {
	return model.Project{
		ID:             r.str("id"),
		Title:          r.str("title"),
		Client:         r.str("client"),
		Category:       r.str("category"),
		Description:    r.str("description"),
		Stack:          r.list("stack"),
		ImageURL:       r.str("image_url"),
		Screenshots:    r.list("screenshots"),
		Link:           r.str("link"),
		Status:         r.str("status"),
		Budget:         r.str("worth"),
		Progress:       r.intVal("progress"),
		DeliveryPeriod: r.str("delivery_period"),
		Testimonial:    r.str("testimonial"),
	}
}

// ProjectToRow maps a patch to the columns the write should touch.
func ProjectToRow(p model.ProjectPatch) Row {
	r := Row{}
	r.setStr("title", p.Title)
	r.setStr("client", p.Client)
	r.setStr("category", p.Category)
	r.setStr("description", p.Description)
	r.setList("stack", p.Stack)
	r.setStr("image_url", p.ImageURL)
	r.setList("screenshots", p.Screenshots)
	r.setStr("link", p.Link)
	r.setStr("status", p.Status)
	r.setStr("worth", p.Budget)
	r.setInt("progress", p.Progress)
	r.setStr("delivery_period", p.DeliveryPeriod)
	r.setStr("testimonial", p.Testimonial)
	return r
}
