// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// wire simulates a write/read cycle through the backend: the payload is
// encoded to JSON and decoded again, so []string becomes []any the way a
// real response row looks.
func wire(t *testing.T, r Row) Row {
	t.Helper()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal row: %v", err)
	}
	var out Row
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal row: %v", err)
	}
	return out
}

func TestProjectRoundTrip(t *testing.T) {
	in := model.Project{
		Title:          "Grace High School Portal",
		Client:         "Grace High School",
		Category:       model.ProjectCategoryWebApp,
		Description:    "A comprehensive school management system.",
		Stack:          []string{"React", "Node.js", "PostgreSQL"},
		ImageURL:       "https://cdn.example.com/p1.png",
		Screenshots:    []string{"https://cdn.example.com/s1.png", "https://cdn.example.com/s2.png"},
		Link:           "https://portal.example.com",
		Status:         model.ProjectStatusInProgress,
		Budget:         "₦1,500,000",
		Progress:       60,
		DeliveryPeriod: "3 Months",
		Testimonial:    "Highly recommended!",
	}

	got := ProjectFromRow(wire(t, ProjectToRow(in.Patch())))

	// ID is server-assigned and not expected to round-trip
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, in)
	}
}

func TestProjectToRow_BudgetStoredAsWorth(t *testing.T) {
	budget := "₦500,000"
	row := ProjectToRow(model.ProjectPatch{Budget: &budget})

	if row["worth"] != budget {
		t.Errorf("worth column = %v, want %q", row["worth"], budget)
	}
	if _, exists := row["budget"]; exists {
		t.Error("row must not contain a budget column")
	}
}

func TestProjectToRow_PartialOmitsUntouchedColumns(t *testing.T) {
	title := "New Title"
	row := ProjectToRow(model.ProjectPatch{Title: &title})

	if len(row) != 1 {
		t.Errorf("partial patch produced %d columns, want 1: %v", len(row), row)
	}
	if row["title"] != title {
		t.Errorf("title column = %v, want %q", row["title"], title)
	}
}

func TestProjectFromRow_NullCollectionsBecomeEmpty(t *testing.T) {
	p := ProjectFromRow(Row{"id": "abc", "title": "X"})

	if p.Stack == nil || len(p.Stack) != 0 {
		t.Errorf("Stack = %v, want empty non-nil slice", p.Stack)
	}
	if p.Screenshots == nil || len(p.Screenshots) != 0 {
		t.Errorf("Screenshots = %v, want empty non-nil slice", p.Screenshots)
	}
}

func TestProjectFromRow_PreservesListOrder(t *testing.T) {
	row := wire(t, Row{"stack": []string{"React", "Node.js", "Supabase"}})
	p := ProjectFromRow(row)

	want := []string{"React", "Node.js", "Supabase"}
	if !reflect.DeepEqual(p.Stack, want) {
		t.Errorf("Stack = %v, want %v (order preserved)", p.Stack, want)
	}
}

func TestProductRoundTrip(t *testing.T) {
	in := model.Product{
		Title:        "School Portal Template",
		Price:        "₦150,000",
		Type:         model.ProductTypeTemplate,
		Description:  "Ready-made school portal.",
		ImageURL:     "https://cdn.example.com/t1.png",
		PurchaseLink: "https://pay.example.com/t1",
		Features:     []string{"Results", "Admissions"},
		DemoURL:      "https://demo.example.com",
		Screenshots:  []string{"https://cdn.example.com/sc1.png"},
	}

	got := ProductFromRow(wire(t, ProductToRow(in.Patch())))
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, in)
	}
}

func TestBlogPostRoundTrip(t *testing.T) {
	in := model.BlogPost{
		Title:      "Top 5 Automation Tools",
		Slug:       "top-5-automation-tools",
		Excerpt:    "A quick tour.",
		Content:    "Automation saves time.",
		CoverImage: "https://cdn.example.com/c1.png",
		Author:     "Admin",
		ReadTime:   "3 min read",
		Tags:       []string{"automation", "tools"},
	}

	got := BlogPostFromRow(wire(t, BlogPostToRow(in.Patch())))

	// id and the created_at-derived publishedAt are server-assigned
	in.ID = ""
	in.PublishedAt = ""
	got.PublishedAt = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, in)
	}
}

func TestBlogPostFromRow_DerivedFields(t *testing.T) {
	row := Row{
		"id":         "a1",
		"title":      "Hello",
		"created_at": "2026-03-15T09:30:00Z",
	}
	post := BlogPostFromRow(row)

	if post.PublishedAt != "2026-03-15" {
		t.Errorf("PublishedAt = %q, want date-only %q", post.PublishedAt, "2026-03-15")
	}
	if post.ReadTime != model.DefaultReadTime {
		t.Errorf("ReadTime = %q, want default %q", post.ReadTime, model.DefaultReadTime)
	}
	if post.Tags == nil {
		t.Error("Tags must be an empty slice, not nil")
	}
}

func TestBlogPostToRow_NeverWritesTimestamps(t *testing.T) {
	row := BlogPostToRow(model.BlogPost{Title: "T", Content: "C"}.Patch())

	for _, col := range []string{"created_at", "published_at", "id"} {
		if _, exists := row[col]; exists {
			t.Errorf("row must not contain server-assigned column %q", col)
		}
	}
}

func TestBrandRoundTrip(t *testing.T) {
	in := model.Brand{Name: "Grace High School", LogoURL: "https://cdn.example.com/l.png"}
	got := BrandFromRow(wire(t, BrandToRow(in.Patch())))
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch: got %+v want %+v", got, in)
	}
}

func TestSettingsFromRow_EmptyRowYieldsDefaults(t *testing.T) {
	s := SettingsFromRow(Row{})

	if s.BrandName != model.DefaultBrandName {
		t.Errorf("BrandName = %q, want default", s.BrandName)
	}
	if s.ContactEmail != model.DefaultContactEmail {
		t.Errorf("ContactEmail = %q, want default", s.ContactEmail)
	}
	if s.PaystackMode != model.PaystackModeLive {
		t.Errorf("PaystackMode = %q, want live", s.PaystackMode)
	}
	if s.ChatWidgetType != model.ChatWidgetWhatsApp {
		t.Errorf("ChatWidgetType = %q, want whatsapp", s.ChatWidgetType)
	}
	if s.ChatPosition != model.ChatPositionRight {
		t.Errorf("ChatPosition = %q, want right", s.ChatPosition)
	}
	if !s.CookieConsentEnabled {
		t.Error("CookieConsentEnabled should default to true")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	in := model.SiteSettings{
		BrandName:             "Peculiar Digital Solutions",
		LogoURL:               "https://cdn.example.com/logo.png",
		FaviconURL:            "https://cdn.example.com/fav.ico",
		ContactEmail:          "hello@example.com",
		ContactPhone:          "+2348000000000",
		WhatsAppNumber:        "+2349000000000",
		Address:               "Lagos",
		SocialFacebook:        "fb",
		SocialTwitter:         "tw",
		SocialInstagram:       "ig",
		SocialLinkedin:        "in",
		PaystackMode:          model.PaystackModeTest,
		PaystackPublicKey:     "pk_live_x",
		PaystackSecretKey:     "sk_live_x",
		PaystackTestPublicKey: "pk_test_x",
		PaystackTestSecretKey: "sk_test_x",
		TawkToPropertyID:      "prop",
		TawkToWidgetID:        "widget",
		ChatWidgetType:        model.ChatWidgetBoth,
		ChatPosition:          model.ChatPositionLeft,
		ChatVisibility:        model.ChatVisibilityDesktop,
		CookieConsentEnabled:  false,
	}

	got := SettingsFromRow(wire(t, SettingsToRow(in.Patch())))
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, in)
	}
}

func TestPricingPackageRoundTrip(t *testing.T) {
	in := model.PricingPackage{
		CategoryID:    "cat-1",
		Name:          "Starter",
		Price:         "₦250,000",
		DiscountPrice: "₦200,000",
		Description:   "Entry package",
		Features:      []string{"5 pages", "Contact form"},
		IsPopular:     true,
	}

	got := PricingPackageFromRow(wire(t, PricingPackageToRow(in.Patch())))
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, in)
	}
}

func TestPricingCategoryRoundTrip(t *testing.T) {
	in := model.PricingCategory{Name: "Websites", SortOrder: 2}
	got := PricingCategoryFromRow(wire(t, PricingCategoryToRow(in.Patch())))
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch: got %+v want %+v", got, in)
	}
}

func TestInquiryToRow_DefaultsStatusToNew(t *testing.T) {
	row := InquiryToRow(model.ServiceInquiry{ClientName: "Ada", Email: "ada@example.com"})

	if row["status"] != model.InquiryStatusNew {
		t.Errorf("status column = %v, want %q", row["status"], model.InquiryStatusNew)
	}
	for _, col := range []string{"id", "created_at"} {
		if _, exists := row[col]; exists {
			t.Errorf("row must not contain server-assigned column %q", col)
		}
	}
}

func TestInquiryRoundTrip(t *testing.T) {
	in := model.ServiceInquiry{
		PackageName:        "Starter",
		ClientName:         "Ada Obi",
		CompanyName:        "Obi Ltd",
		Email:              "ada@example.com",
		Phone:              "+2348011111111",
		WhatsApp:           "+2348022222222",
		ProjectDescription: "A school portal",
		AdditionalDetails:  "ASAP",
		HasDomain:          "yes",
		HasHosting:         "no",
		BudgetRange:        "₦200k-₦500k",
		Status:             model.InquiryStatusNew,
	}

	got := InquiryFromRow(wire(t, InquiryToRow(in)))
	in.ID = ""
	in.CreatedAt = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, in)
	}
}

func TestInquiryPatchToRow_OnlyStatus(t *testing.T) {
	status := model.InquiryStatusContacted
	row := InquiryPatchToRow(model.InquiryPatch{Status: &status})

	if len(row) != 1 || row["status"] != status {
		t.Errorf("patch row = %v, want only status=%q", row, status)
	}
}

func TestCalculatorItemRoundTrip(t *testing.T) {
	in := model.CalculatorItem{
		Name:     "Extra Page",
		Price:    15000,
		Category: "Websites",
		IsActive: true,
	}

	got := CalculatorItemFromRow(wire(t, CalculatorItemToRow(in.Patch())))
	in.ID = ""
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch: got %+v want %+v", got, in)
	}
}

func TestCalculatorItemFromRow_StringPrice(t *testing.T) {
	item := CalculatorItemFromRow(Row{"price": "2500.50"})
	if item.Price != 2500.50 {
		t.Errorf("Price = %v, want 2500.50", item.Price)
	}
}
