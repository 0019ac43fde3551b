// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"

	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// Projects lists the portfolio, newest first. Demo mode returns seeds.
func (s *Service) Projects(ctx context.Context) ([]model.Project, error) {
	if !s.client.Configured() {
		return SeedProjects(), nil
	}
	rows, err := s.selectAll(ctx, tableProjects, orderCreatedAt, true)
	if err != nil {
		return nil, err
	}
	out := make([]model.Project, len(rows))
	for i, r := range rows {
		out[i] = mapper.ProjectFromRow(r)
	}
	return out, nil
}

// ProjectByID fetches one project. A missing row is (nil, nil).
func (s *Service) ProjectByID(ctx context.Context, id string) (*model.Project, error) {
	if !s.client.Configured() {
		for _, p := range SeedProjects() {
			if p.ID == id {
				return &p, nil
			}
		}
		return nil, nil
	}
	row, err := s.selectByID(ctx, tableProjects, id)
	if err != nil || row == nil {
		return nil, err
	}
	p := mapper.ProjectFromRow(row)
	return &p, nil
}

// AddProject inserts a new project.
func (s *Service) AddProject(ctx context.Context, p model.Project) (bool, error) {
	if s.demoWrite("add project") {
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tableProjects, mapper.ProjectToRow(p.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateProject patches an existing project. Nil patch fields leave their
// columns untouched.
func (s *Service) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (bool, error) {
	if s.demoWrite("update project") {
		return false, nil
	}
	if err := s.client.Update(ctx, tableProjects, id, mapper.ProjectToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteProject removes a project.
func (s *Service) DeleteProject(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete project") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tableProjects, id); err != nil {
		return false, err
	}
	return true, nil
}
