// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"
	"fmt"

	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// SubmitInquiry records a service lead. New inquiries always start in the
// New status regardless of what the caller set. In demo mode the inquiry is
// logged but not stored.
func (s *Service) SubmitInquiry(ctx context.Context, q model.ServiceInquiry) (bool, error) {
	if !s.client.Configured() {
		s.log.Warn("inquiry received in demo mode, not stored",
			"client", q.ClientName, "package", q.PackageName)
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tableInquiries, mapper.InquiryToRow(q)); err != nil {
		return false, err
	}
	return true, nil
}

// Inquiries lists leads for the admin, newest first.
func (s *Service) Inquiries(ctx context.Context) ([]model.ServiceInquiry, error) {
	if !s.client.Configured() {
		return []model.ServiceInquiry{}, nil
	}
	rows, err := s.selectAll(ctx, tableInquiries, orderCreatedAt, true)
	if err != nil {
		return nil, err
	}
	out := make([]model.ServiceInquiry, len(rows))
	for i, r := range rows {
		out[i] = mapper.InquiryFromRow(r)
	}
	return out, nil
}

// UpdateInquiryStatus moves a lead through the pipeline. The status is the
// only mutable field of an inquiry.
func (s *Service) UpdateInquiryStatus(ctx context.Context, id, status string) (bool, error) {
	if !model.ValidInquiryStatus(status) {
		return false, fmt.Errorf("invalid inquiry status %q", status)
	}
	if s.demoWrite("update inquiry status") {
		return false, nil
	}
	patch := model.InquiryPatch{Status: &status}
	if err := s.client.Update(ctx, tableInquiries, id, mapper.InquiryPatchToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}
