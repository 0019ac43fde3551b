// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Inquiry statuses
const (
	InquiryStatusNew       = "New"
	InquiryStatusContacted = "Contacted"
	InquiryStatusInvoiced  = "Invoiced"
	InquiryStatusClosed    = "Closed"
)

// ValidInquiryStatus reports whether s is one of the known statuses.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusInvoiced, InquiryStatusClosed:
		return true
	}
	return false
}

// ServiceInquiry is an append-mostly lead record. After creation only the
// status changes; ID and CreatedAt are server-assigned.
type ServiceInquiry struct {
	ID                 string `json:"id,omitempty"`
	PackageName        string `json:"packageName"`
	ClientName         string `json:"clientName"`
	CompanyName        string `json:"companyName,omitempty"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	WhatsApp           string `json:"whatsapp"`
	ProjectDescription string `json:"projectDescription"`
	AdditionalDetails  string `json:"additionalDetails,omitempty"`
	HasDomain          string `json:"hasDomain,omitempty"`
	HasHosting         string `json:"hasHosting,omitempty"`
	BudgetRange        string `json:"budgetRange,omitempty"`
	Status             string `json:"status"`
	CreatedAt          string `json:"createdAt,omitempty"`
}

// InquiryPatch carries only the status. Keeping the patch this narrow is what
// makes every other field immutable after creation: no code path can build a
// wider write.
type InquiryPatch struct {
	Status *string
}
