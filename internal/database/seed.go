package database

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustJSON(v any) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshal seed json: %v", err))
	}
	return datatypes.JSON(data)
}

func strPtr(s string) *string { return &s }

// HeroSeed is the row created when /api/hero is read on an empty store.
// The fixed primary key makes concurrent first reads converge on one row.
func HeroSeed() Hero {
	return Hero{
		Model:       Model{ID: 1},
		Name:        "Alex Rivera",
		Title:       "Backend Engineer",
		Subtitle:    "I Architect Robust Backend Systems.",
		Description: "Hi, I'm Alex Rivera. A Backend Engineer specialized in building high-performance, secure, and scalable APIs.",
		HeroImage:   strPtr("https://picsum.photos/seed/alex/800/800"),
		BackgroundImages: mustJSON(map[string]string{
			"main":      "https://picsum.photos/seed/bg1/500/500",
			"secondary": "https://picsum.photos/seed/bg2/400/400",
		}),
		Stats: mustJSON(map[string]any{
			"yearsExp": 5,
			"projects": 40,
			"uptime":   "100%",
		}),
		CTAButtons: mustJSON(map[string]string{
			"viewProjects": "View Projects",
			"contactMe":    "Contact Me",
		}),
	}
}

// AboutSeed is the row created when /api/about is read on an empty store.
func AboutSeed() About {
	return About{
		Model:       Model{ID: 1},
		Title:       strPtr("About Me"),
		Description: "I'm a Backend Engineer with a passion for creating robust, scalable systems.",
		Image:       strPtr("https://picsum.photos/seed/profile/400/400"),
		Stats: mustJSON([]map[string]string{
			{"label": "Location", "value": "San Francisco, CA"},
			{"label": "Email", "value": "alex.rivera@example.com"},
			{"label": "Phone", "value": "+1 (555) 123-4567"},
			{"label": "Experience", "value": "5+ Years"},
		}),
	}
}

// SeedDemoContent loads the demo portfolio into an empty database. Each
// table is skipped when it already has rows, so reruns are harmless.
func SeedDemoContent(db *gorm.DB) error {
	if err := seedTable(db, &Skill{}, demoSkills()); err != nil {
		return err
	}
	if err := seedTable(db, &Project{}, demoProjects()); err != nil {
		return err
	}
	if err := seedTable(db, &Experience{}, demoExperiences()); err != nil {
		return err
	}
	if err := seedTable(db, &Hero{}, []Hero{demoHero()}); err != nil {
		return err
	}
	if err := seedTable(db, &About{}, []About{demoAbout()}); err != nil {
		return err
	}
	if err := seedTable(db, &Contact{}, []Contact{demoContact()}); err != nil {
		return err
	}
	return seedTable(db, &SiteConfig{}, []SiteConfig{demoSiteConfig()})
}

func seedTable[T any](db *gorm.DB, model *T, rows []T) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("count %T: %w", model, err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %T: %w", model, err)
	}
	return nil
}

func demoSkills() []Skill {
	entries := []struct{ name, category string }{
		{"Go 1.25", SkillCategoryLanguage},
		{"Gin", SkillCategoryFramework},
		{"GORM", SkillCategoryFramework},
		{"MySQL / PostgreSQL", SkillCategoryDatabase},
		{"Redis", SkillCategoryDatabase},
		{"RESTful APIs", SkillCategoryConcept},
		{"Docker", SkillCategoryTools},
		{"Git & GitHub Actions", SkillCategoryTools},
		{"Clean Architecture", SkillCategoryConcept},
		{"Linux / Nginx", SkillCategoryTools},
		{"TDD", SkillCategoryConcept},
		{"Queue Workers", SkillCategoryFramework},
	}
	skills := make([]Skill, 0, len(entries))
	for _, e := range entries {
		skills = append(skills, Skill{Name: e.name, Category: e.category})
	}
	return skills
}

func demoProjects() []Project {
	return []Project{
		{
			Title:           "Enterprise ERP Microservice",
			Description:     "A scalable inventory management backend built with PostgreSQL.",
			LongDescription: strPtr("Developed a robust microservice-based ERP system that handles high-concurrency inventory transactions for a multi-warehouse retail chain."),
			TechStack:       mustJSON([]string{"Go", "PostgreSQL", "Redis", "RabbitMQ", "Docker"}),
			Features:        mustJSON([]string{"Real-time inventory sync", "JWT-based Auth", "Automated PDF invoicing"}),
			Architecture:    strPtr("Microservices architecture with API Gateway and central authentication service."),
			Image:           "https://picsum.photos/seed/erp/800/450",
		},
		{
			Title:           "Financial SaaS API",
			Description:     "RESTful API focusing on secure transaction processing and reconciliation.",
			LongDescription: strPtr("High-security financial API capable of processing 10,000+ transactions daily with strict audit logging and multi-layer verification."),
			TechStack:       mustJSON([]string{"Go", "MySQL", "Stripe API", "Sentry"}),
			Features:        mustJSON([]string{"Webhooks integration", "Encryption at rest", "Role-based Access Control (RBAC)"}),
			Architecture:    strPtr("Modular monolith with repository pattern for decoupled data access."),
			Image:           "https://picsum.photos/seed/fin/800/450",
		},
		{
			Title:           "Real-time Analytics Engine",
			Description:     "Backend engine for tracking and visualizing user behavior in real-time.",
			LongDescription: strPtr("A data-intensive application that ingests millions of events daily, processing them through worker queues and storing them for quick retrieval."),
			TechStack:       mustJSON([]string{"Go", "ClickHouse", "Redis"}),
			Features:        mustJSON([]string{"High-performance ingestion", "Complex aggregation queries", "Websocket broadcasting"}),
			Architecture:    strPtr("Event-driven architecture leveraging worker queues and Redis Pub/Sub."),
			Image:           "https://picsum.photos/seed/analytics/800/450",
		},
	}
}

func demoExperiences() []Experience {
	return []Experience{
		{
			Role:    "Senior Backend Developer",
			Company: "TechFlow Solutions",
			Period:  "2021 - Present",
			Description: mustJSON([]string{
				"Leading the transition from monolithic architecture to microservices using Go and Docker.",
				"Optimizing database queries reducing API latency by 45%.",
				"Implementing CI/CD pipelines with GitHub Actions for automated testing and deployment.",
			}),
		},
		{
			Role:    "Backend Engineer",
			Company: "Nexus Creative Lab",
			Period:  "2019 - 2021",
			Description: mustJSON([]string{
				"Developed custom CMS solutions for high-traffic media websites.",
				"Integrated third-party payment gateways and CRM systems.",
				"Authored technical documentation for API consumers.",
			}),
		},
	}
}

func demoHero() Hero { return HeroSeed() }

func demoAbout() About {
	about := AboutSeed()
	about.Description = "I'm a Backend Engineer with a passion for creating robust, scalable systems that power modern web applications. " +
		"My expertise lies in clean architecture patterns, database optimization, and implementing security best practices."
	return about
}

func demoContact() Contact {
	return Contact{
		Model:        Model{ID: 1},
		Email:        "alex.rivera@example.com",
		Phone:        strPtr("+1 (555) 123-4567"),
		Location:     "San Francisco, CA",
		Availability: strPtr("Open to new opportunities"),
		SocialLinks: mustJSON(map[string]string{
			"github":   "https://github.com/alexriv",
			"linkedin": "https://linkedin.com/in/alexriv",
			"twitter":  "https://twitter.com/alexriv_dev",
			"email":    "mailto:alex.rivera@example.com",
		}),
		ContactFormConfig: mustJSON(map[string]any{
			"enabled": true,
			"fields":  []string{"name", "email", "message", "subject"},
		}),
	}
}

func demoSiteConfig() SiteConfig {
	return SiteConfig{
		Model:           Model{ID: 1},
		SiteTitle:       "Alex Rivera - Backend Engineer Portfolio",
		MetaDescription: strPtr("Portfolio of Alex Rivera, Backend Engineer specializing in Go and scalable API development."),
		ThemeColors: mustJSON(map[string]string{
			"primary":    "#6366f1",
			"secondary":  "#8b5cf6",
			"background": "#0a0a0a",
			"text":       "#f5f5f5",
		}),
		FooterContent: "© 2024 Alex Rivera. All rights reserved.",
		NavbarItems: mustJSON([]map[string]any{
			{"label": "Home", "href": "#home", "order": 1},
			{"label": "About", "href": "#about", "order": 2},
			{"label": "Skills", "href": "#skills", "order": 3},
			{"label": "Projects", "href": "#projects", "order": 4},
			{"label": "Experience", "href": "#experience", "order": 5},
			{"label": "Contact", "href": "#contact", "order": 6},
		}),
	}
}
