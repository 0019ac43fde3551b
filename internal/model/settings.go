// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Built-in defaults used when no settings row exists yet.
const (
	DefaultBrandName      = "Peculiar Digital Solutions"
	DefaultContactEmail   = "peculiardigitals@gmail.com"
	DefaultContactPhone   = "+2348162000572"
	DefaultWhatsAppNumber = "+2349122533236"
)

// Payment gateway modes
const (
	PaystackModeLive = "live"
	PaystackModeTest = "test"
)

// Chat widget types
const (
	ChatWidgetWhatsApp = "whatsapp"
	ChatWidgetTawk     = "tawk"
	ChatWidgetBoth     = "both"
	ChatWidgetNone     = "none"
)

// Chat widget positions and visibility
const (
	ChatPositionLeft  = "left"
	ChatPositionRight = "right"

	ChatVisibilityMobile  = "mobile"
	ChatVisibilityDesktop = "desktop"
	ChatVisibilityBoth    = "both"
)

// SiteSettings is the singleton configuration record. Exactly one row exists
// in storage; when it is absent the mapper fills in built-in defaults.
type SiteSettings struct {
	ID             string `json:"id,omitempty"`
	BrandName      string `json:"brandName"`
	LogoURL        string `json:"logoUrl"`
	FaviconURL     string `json:"faviconUrl"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	WhatsAppNumber string `json:"whatsappNumber"`
	Address        string `json:"address"`

	SocialFacebook  string `json:"socialFacebook"`
	SocialTwitter   string `json:"socialTwitter"`
	SocialInstagram string `json:"socialInstagram"`
	SocialLinkedin  string `json:"socialLinkedin"`

	// Payment gateway
	PaystackMode          string `json:"paystackMode"`
	PaystackPublicKey     string `json:"paystackPublicKey,omitempty"`
	PaystackSecretKey     string `json:"paystackSecretKey,omitempty"`
	PaystackTestPublicKey string `json:"paystackTestPublicKey,omitempty"`
	PaystackTestSecretKey string `json:"paystackTestSecretKey,omitempty"`

	// Integrations
	TawkToPropertyID string `json:"tawkToPropertyId"`
	TawkToWidgetID   string `json:"tawkToWidgetId"`
	ChatWidgetType   string `json:"chatWidgetType"`
	ChatPosition     string `json:"chatPosition"`
	ChatVisibility   string `json:"chatVisibility"`

	// Cookies
	CookieConsentEnabled bool `json:"cookieConsentEnabled"`
}

// ActivePublicKey returns the Paystack public key matching the current mode.
func (s *SiteSettings) ActivePublicKey() string {
	if s.PaystackMode == PaystackModeTest {
		return s.PaystackTestPublicKey
	}
	return s.PaystackPublicKey
}

// ActiveSecretKey returns the Paystack secret key matching the current mode.
func (s *SiteSettings) ActiveSecretKey() string {
	if s.PaystackMode == PaystackModeTest {
		return s.PaystackTestSecretKey
	}
	return s.PaystackSecretKey
}

// PublicView returns a copy with all payment secrets stripped. The active
// public key is only handed out through the checkout-init endpoint.
func (s SiteSettings) PublicView() SiteSettings {
	s.PaystackPublicKey = ""
	s.PaystackSecretKey = ""
	s.PaystackTestPublicKey = ""
	s.PaystackTestSecretKey = ""
	return s
}

// SiteSettingsPatch describes a partial write.
type SiteSettingsPatch struct {
	BrandName      *string
	LogoURL        *string
	FaviconURL     *string
	ContactEmail   *string
	ContactPhone   *string
	WhatsAppNumber *string
	Address        *string

	SocialFacebook  *string
	SocialTwitter   *string
	SocialInstagram *string
	SocialLinkedin  *string

	PaystackMode          *string
	PaystackPublicKey     *string
	PaystackSecretKey     *string
	PaystackTestPublicKey *string
	PaystackTestSecretKey *string

	TawkToPropertyID *string
	TawkToWidgetID   *string
	ChatWidgetType   *string
	ChatPosition     *string
	ChatVisibility   *string

	CookieConsentEnabled *bool
}

// Patch returns a full patch touching every writable column.
func (s SiteSettings) Patch() SiteSettingsPatch {
	return SiteSettingsPatch{
		BrandName:             &s.BrandName,
		LogoURL:               &s.LogoURL,
		FaviconURL:            &s.FaviconURL,
		ContactEmail:          &s.ContactEmail,
		ContactPhone:          &s.ContactPhone,
		WhatsAppNumber:        &s.WhatsAppNumber,
		Address:               &s.Address,
		SocialFacebook:        &s.SocialFacebook,
		SocialTwitter:         &s.SocialTwitter,
		SocialInstagram:       &s.SocialInstagram,
		SocialLinkedin:        &s.SocialLinkedin,
		PaystackMode:          &s.PaystackMode,
		PaystackPublicKey:     &s.PaystackPublicKey,
		PaystackSecretKey:     &s.PaystackSecretKey,
		PaystackTestPublicKey: &s.PaystackTestPublicKey,
		PaystackTestSecretKey: &s.PaystackTestSecretKey,
		TawkToPropertyID:      &s.TawkToPropertyID,
		TawkToWidgetID:        &s.TawkToWidgetID,
		ChatWidgetType:        &s.ChatWidgetType,
		ChatPosition:          &s.ChatPosition,
		ChatVisibility:        &s.ChatVisibility,
		CookieConsentEnabled:  &s.CookieConsentEnabled,
	}
}
