// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import "github.com/peculiardigitals/peculiar-go/internal/model"

// Seed collections returned by reads in demo mode. Each function returns a
// fresh copy so callers can mutate results without cross-talk.

// SeedProjects returns the demo portfolio.
func SeedProjects() []model.Project {
	return []model.Project{
		{
			ID:             "1",
			Title:          "Grace High School Portal",
			Client:         "Grace High School",
			Category:       model.ProjectCategoryWebApp,
			Description:    "A comprehensive school management system handling admissions, results, and finance.",
			Stack:          []string{"React", "Node.js", "PostgreSQL"},
			ImageURL:       "https://picsum.photos/seed/p1/800/600",
			Screenshots:    []string{},
			Link:           "#",
			Status:         model.ProjectStatusDelivered,
			Budget:         "₦1,500,000",
			DeliveryPeriod: "3 Months",
			Testimonial:    "Peculiar Digitals transformed how we manage our students. Highly recommended!",
		},
		{
			ID:             "2",
			Title:          "Union Voice Website",
			Client:         "National Workers Union",
			Category:       model.ProjectCategoryWebsite,
			Description:    "A news and membership portal for the union members to stay updated.",
			Stack:          []string{"WordPress", "PHP", "Custom Theme"},
			ImageURL:       "https://picsum.photos/seed/p2/800/600",
			Screenshots:    []string{},
			Status:         model.ProjectStatusDelivered,
			DeliveryPeriod: "4 Weeks",
		},
		{
			ID:          "3",
			Title:       "ExamMaster CBT App",
			Client:      "EduTech Solutions",
			Category:    model.ProjectCategoryMobileApp,
			Description: "Mobile application for students to practice for national exams.",
			Stack:       []string{"React Native", "Firebase"},
			ImageURL:    "https://picsum.photos/seed/p3/800/600",
			Screenshots: []string{},
			Status:      model.ProjectStatusInProgress,
		},
	}
}

// SeedProducts returns the demo shop inventory.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:           "101",
			Title:        "School Management Kit (Source Code)",
			Price:        "250000",
			Type:         model.ProductTypeSourceCode,
			Description:  "Complete source code for a scalable school portal. PHP/Laravel backend.",
			ImageURL:     "https://picsum.photos/seed/pr1/800/600",
			PurchaseLink: "#",
			Features:     []string{},
			Screenshots:  []string{},
		},
		{
			ID:           "102",
			Title:        "Church Website Template",
			Price:        "50000",
			Type:         model.ProductTypeTemplate,
			Description:  "Modern, responsive WordPress theme designed specifically for ministries.",
			ImageURL:     "https://picsum.photos/seed/pr2/800/600",
			PurchaseLink: "#",
			Features:     []string{},
			Screenshots:  []string{},
		},
	}
}

// SeedBlogPosts returns the demo articles.
func SeedBlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:      "1",
			Title:   "Why Your School Needs a Digital Portal in 2025",
			Slug:    "school-portal-importance-2025",
			Excerpt: "Manual record keeping is obsolete. Discover how a management system saves time and money.",
			Content: "In the rapidly evolving educational landscape, efficiency is key. Schools relying on paper-based records face significant challenges in data retrieval, result processing, and financial tracking.\n\n" +
				"A custom School Management System (SMS) solves these problems by centralizing data. Features like automated result computation, online admission processing, and fee tracking not only save administrative hours but also improve transparency with parents.\n\n" +
				"At Peculiar Digitals, we build systems that are secure, scalable, and easy to use.",
			CoverImage:  "https://picsum.photos/seed/blog1/800/600",
			Author:      "AyoJesu Ayonitemi",
			PublishedAt: "2024-03-15",
			ReadTime:    "5 min read",
			Tags:        []string{"EdTech", "Management", "Automation"},
		},
		{
			ID:      "2",
			Title:   "Top 5 Automation Tools for Small Businesses",
			Slug:    "top-automation-tools",
			Excerpt: "Stop doing repetitive tasks. Here are the best tools to streamline your workflow.",
			Content: "Small business owners often wear multiple hats. From marketing to accounting, the workload can be overwhelming. This is where automation comes in.\n\n" +
				"1. Zapier: Connects your apps and automates workflows.\n2. Slack: Streamlines team communication.\n3. Buffer: Automates social media posting.\n\n" +
				"Integrating these tools can free up your time to focus on growth rather than operations.",
			CoverImage:  "https://picsum.photos/seed/blog2/800/600",
			Author:      "Peculiar Team",
			PublishedAt: "2024-03-10",
			ReadTime:    "3 min read",
			Tags:        []string{"Productivity", "Business", "Tools"},
		},
	}
}

// SeedBrands returns the demo trust strip.
func SeedBrands() []model.Brand {
	return []model.Brand{
		{ID: "1", Name: "Google", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2f/Google_2015_logo.svg/2560px-Google_2015_logo.svg.png"},
		{ID: "2", Name: "Microsoft", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/96/Microsoft_logo_%282012%29.svg/2560px-Microsoft_logo_%282012%29.svg.png"},
		{ID: "3", Name: "Spotify", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/2/26/Spotify_logo_with_text.svg/2560px-Spotify_logo_with_text.svg.png"},
		{ID: "4", Name: "Slack", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b9/Slack_Technologies_Logo.svg/2560px-Slack_Technologies_Logo.svg.png"},
		{ID: "5", Name: "Airbnb", LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/6/69/Airbnb_Logo_B%C3%A9lo.svg/2560px-Airbnb_Logo_B%C3%A9lo.svg.png"},
	}
}
