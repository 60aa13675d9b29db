package localstore

import (
	"time"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

// defaultDocument seeds a fresh store with the portfolio content the site
// shipped with, so a new local deployment renders something real.
func defaultDocument(now time.Time) *document {
	projects := []domain.Project{
		{
			ID:            "p5",
			TitleAR:       "تطبيق كوين",
			TitleEN:       "Koin App",
			DescriptionAR: "تطبيق تواصل اجتماعي يحتوي على منشورات وتعليقات ويجمع ما بين تفاعل المستخدمين من نشر قصصهم والمحادثات الجماعية أو الفردية",
			DescriptionEN: "A social networking app featuring posts and comments that brings together user interactions",
			Year:          "2025",
			Tags:          []string{"Flutter", "Node.js", "MongoDB", "REST APIs"},
			ImageCount:    27,
			DisplayOrder:  0,
		},
		{
			ID:            "p6",
			TitleAR:       "نظام إدارة تشغيل الفنادق",
			TitleEN:       "Hotel Management System",
			DescriptionAR: "برنامج فندقي خاص لشركة الإيوان لتشغيل الفنادق السعودية يعمل على إدارة حجز الغرف وصيانتها",
			DescriptionEN: "A specialized hotel program for Al-Iwan Company to operate Saudi hotels",
			Year:          "2025",
			Tags:          []string{"Flutter", "Node.js", "MongoDB", "REST APIs"},
			ImageCount:    11,
			DisplayOrder:  1,
		},
		{
			ID:            "p1",
			TitleAR:       "نظام إدارة شركات المدينة المنورة للحج والعمرة",
			TitleEN:       "Madinah Hajj & Umrah Management System",
			DescriptionAR: "حل مكتبي متكامل لإدارة الرحلات، الحجوزات، الفواتير والتقارير",
			DescriptionEN: "A comprehensive desktop solution for managing trips, reservations, invoices, and reports",
			Year:          "2024",
			Tags:          []string{"Flutter", "Node.js", "MongoDB", "REST APIs"},
			ImageCount:    17,
			DisplayOrder:  2,
		},
		{
			ID:            "p4",
			TitleAR:       "تطبيق البارون",
			TitleEN:       "Baron App",
			DescriptionAR: "منصة تواصل ومكافآت مع تجربة مستخدم بسيطة ونظام نقاط متطور",
			DescriptionEN: "A communication and rewards platform with a simple user experience",
			Year:          "2023",
			Tags:          []string{"Flutter", "Express.js", "Nodejs", "MongoDB", "REST APIs"},
			ImageCount:    26,
			DisplayOrder:  3,
		},
		{
			ID:            "p2",
			TitleAR:       "ROZ NET — نظام إدارة مزودي الإنترنت",
			TitleEN:       "ROZ NET — ISP Management System",
			DescriptionAR: "نظام SaaS لإدارة الاشتراكات والفوترة ومراقبة الأبراج الشبكية",
			DescriptionEN: "A SaaS system for managing subscriptions, billing, and network tower monitoring",
			Year:          "2022",
			Tags:          []string{"Flutter", "MongoDB", "APIs", "REST APIs", "Express.js", "Node.js"},
			ImageCount:    33,
			DisplayOrder:  4,
		},
		{
			ID:            "p3",
			TitleAR:       "روز نت المشتركين",
			TitleEN:       "Roz Net Subscribers",
			DescriptionAR: "هذا التطبيق المخصص للمشتركين وهو استكمال للتطبيق الأول",
			DescriptionEN: "This app is dedicated to subscribers and is a continuation of the first application",
			Year:          "2023",
			Tags:          []string{"Flutter", "API"},
			ImageCount:    8,
			DisplayOrder:  5,
		},
	}
	for i := range projects {
		projects[i].CreatedAt = now
		projects[i].UpdatedAt = now
	}

	return &document{
		Projects: projects,
		About: map[string]map[string]string{
			"ar": {
				"name":        "عمر الدباغ",
				"description": "مطور برمجيات متخصص في بناء تطبيقات الموبايل وأنظمة الأعمال المتكاملة",
			},
			"en": {
				"name":        "Omer Al-Dabbagh",
				"description": "Software developer specializing in mobile applications and integrated business systems",
			},
		},
		Skills: []domain.Skill{
			{ID: "s1", Name: "Flutter", Progress: 95, Category: "mobile"},
			{ID: "s2", Name: "Dart", Progress: 90, Category: "mobile"},
			{ID: "s3", Name: "Node.js", Progress: 90, Category: "backend"},
			{ID: "s4", Name: "Express.js", Progress: 88, Category: "backend"},
			{ID: "s5", Name: "MongoDB", Progress: 85, Category: "backend"},
			{ID: "s6", Name: "REST APIs", Progress: 92, Category: "backend"},
			{ID: "s7", Name: "Git & GitHub", Progress: 87, Category: "tools"},
			{ID: "s8", Name: "UI/UX Design", Progress: 80, Category: "tools"},
		},
		Contact: map[string]string{
			"email":    "omer11.oo13@gmail.com",
			"linkedin": "https://www.linkedin.com/in/omer-al-dabbagh-5638a328b",
			"github":   "https://github.com/omer2190",
		},
		Metadata: metadata{
			LastUpdate: now,
			Version:    documentVersion,
		},
	}
}
