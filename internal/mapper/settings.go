// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// SettingsFromRow maps the singleton settings row to SiteSettings. Passing an
// empty Row yields the built-in defaults, which is exactly how the absent-row
// case is handled.
func SettingsFromRow(r Row) model.SiteSettings {
	return model.SiteSettings{
		ID:             r.str("id"),
		BrandName:      r.strOr("brand_name", model.DefaultBrandName),
		LogoURL:        r.str("logo_url"),
		FaviconURL:     r.str("favicon_url"),
		ContactEmail:   r.strOr("contact_email", model.DefaultContactEmail),
		ContactPhone:   r.strOr("contact_phone", model.DefaultContactPhone),
		WhatsAppNumber: r.strOr("whatsapp_number", model.DefaultWhatsAppNumber),
		Address:        r.str("address"),

		SocialFacebook:  r.str("social_facebook"),
		SocialTwitter:   r.str("social_twitter"),
		SocialInstagram: r.str("social_instagram"),
		SocialLinkedin:  r.str("social_linkedin"),

		PaystackMode:          r.strOr("paystack_mode", model.PaystackModeLive),
		PaystackPublicKey:     r.str("paystack_public_key"),
		PaystackSecretKey:     r.str("paystack_secret_key"),
		PaystackTestPublicKey: r.str("paystack_test_public_key"),
		PaystackTestSecretKey: r.str("paystack_test_secret_key"),

		TawkToPropertyID: r.str("tawk_to_property_id"),
		TawkToWidgetID:   r.str("tawk_to_widget_id"),
		ChatWidgetType:   r.strOr("chat_widget_type", model.ChatWidgetWhatsApp),
		ChatPosition:     r.strOr("chat_position", model.ChatPositionRight),
		ChatVisibility:   r.strOr("chat_visibility", model.ChatVisibilityBoth),

		CookieConsentEnabled: r.boolOr("cookie_consent_enabled", true),
	}
}

// SettingsToRow maps a patch to the columns the write should touch.
func SettingsToRow(p model.SiteSettingsPatch) Row {
	r := Row{}
	r.setStr("brand_name", p.BrandName)
	r.setStr("logo_url", p.LogoURL)
	r.setStr("favicon_url", p.FaviconURL)
	r.setStr("contact_email", p.ContactEmail)
	r.setStr("contact_phone", p.ContactPhone)
	r.setStr("whatsapp_number", p.WhatsAppNumber)
	r.setStr("address", p.Address)

	r.setStr("social_facebook", p.SocialFacebook)
	r.setStr("social_twitter", p.SocialTwitter)
	r.setStr("social_instagram", p.SocialInstagram)
	r.setStr("social_linkedin", p.SocialLinkedin)

	r.setStr("paystack_mode", p.PaystackMode)
	r.setStr("paystack_public_key", p.PaystackPublicKey)
	r.setStr("paystack_secret_key", p.PaystackSecretKey)
	r.setStr("paystack_test_public_key", p.PaystackTestPublicKey)
	r.setStr("paystack_test_secret_key", p.PaystackTestSecretKey)

	r.setStr("tawk_to_property_id", p.TawkToPropertyID)
	r.setStr("tawk_to_widget_id", p.TawkToWidgetID)
	r.setStr("chat_widget_type", p.ChatWidgetType)
	r.setStr("chat_position", p.ChatPosition)
	r.setStr("chat_visibility", p.ChatVisibility)

	r.setBool("cookie_consent_enabled", p.CookieConsentEnabled)
	return r
}
