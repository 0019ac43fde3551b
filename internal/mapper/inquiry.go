// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// InquiryFromRow maps a storage row to a ServiceInquiry. CreatedAt keeps the
// full server timestamp; only blog posts reduce it to a date.
func InquiryFromRow(r Row) model.ServiceInquiry {
	return model.ServiceInquiry{
		ID:                 r.str("id"),
		PackageName:        r.str("package_name"),
		ClientName:         r.str("client_name"),
		CompanyName:        r.str("company_name"),
		Email:              r.str("email"),
		Phone:              r.str("phone"),
		WhatsApp:           r.str("whatsapp"),
		ProjectDescription: r.str("project_description"),
		AdditionalDetails:  r.str("additional_details"),
		HasDomain:          r.str("has_domain"),
		HasHosting:         r.str("has_hosting"),
		BudgetRange:        r.str("budget_range"),
		Status:             r.strOr("status", model.InquiryStatusNew),
		CreatedAt:          r.str("created_at"),
	}
}

// InquiryToRow maps a new inquiry to its insert columns. Updates go through
// InquiryPatchToRow instead, which can only touch the status.
func InquiryToRow(q model.ServiceInquiry) Row {
	status := q.Status
	if status == "" {
		status = model.InquiryStatusNew
	}
	return Row{
		"package_name":        q.PackageName,
		"client_name":         q.ClientName,
		"company_name":        q.CompanyName,
		"email":               q.Email,
		"phone":               q.Phone,
		"whatsapp":            q.WhatsApp,
		"project_description": q.ProjectDescription,
		"additional_details":  q.AdditionalDetails,
		"has_domain":          q.HasDomain,
		"has_hosting":         q.HasHosting,
		"budget_range":        q.BudgetRange,
		"status":              status,
	}
}

// InquiryPatchToRow maps a status patch to the single column it may touch.
func InquiryPatchToRow(p model.InquiryPatch) Row {
	r := Row{}
	r.setStr("status", p.Status)
	return r
}
