package database

import (
	"time"

	"gorm.io/datatypes"
)

// Model is the shared base for every record: generated id plus create/update
// timestamps. Hard deletes only, so no DeletedAt column.
type Model struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminUser is the content owner's account. Created via cmd/admin, never
// through the API.
type AdminUser struct {
	Model
	Username     string `gorm:"uniqueIndex;size:64"`
	PasswordHash string `gorm:"size:255"`
}

// Hero is the landing-section singleton.
type Hero struct {
	Model
	Name             string         `gorm:"size:255"`
	Title            string         `gorm:"size:255"`
	Subtitle         string         `gorm:"size:255"`
	Description      string         `gorm:"type:text"`
	HeroImage        *string        `gorm:"size:512"`
	BackgroundImages datatypes.JSON `gorm:"type:jsonb"`
	Stats            datatypes.JSON `gorm:"type:jsonb"` // yearsExp, projects, uptime
	CTAButtons       datatypes.JSON `gorm:"column:cta_buttons;type:jsonb"`
}

// About is the about-section singleton. Current schema only; the legacy
// content/personal_details/fun_facts shape is not carried.
type About struct {
	Model
	Title       *string        `gorm:"size:255"`
	Description string         `gorm:"type:text"`
	Image       *string        `gorm:"size:512"`
	Stats       datatypes.JSON `gorm:"type:jsonb"` // array of {label, value}
}

// Contact is the contact-section singleton.
type Contact struct {
	Model
	Email             string         `gorm:"size:255"`
	Phone             *string        `gorm:"size:64"`
	Location          string         `gorm:"size:255"`
	Availability      *string        `gorm:"size:255"`
	SocialLinks       datatypes.JSON `gorm:"type:jsonb"`
	ContactFormConfig datatypes.JSON `gorm:"type:jsonb"`
}

// SiteConfig is the site-wide settings singleton.
type SiteConfig struct {
	Model
	SiteTitle       string         `gorm:"size:255"`
	MetaDescription *string        `gorm:"type:text"`
	ThemeColors     datatypes.JSON `gorm:"type:jsonb"`
	FooterContent   string         `gorm:"type:text"`
	NavbarItems     datatypes.JSON `gorm:"type:jsonb"`
}

// Skill categories accepted by the API.
const (
	SkillCategoryLanguage  = "Language"
	SkillCategoryFramework = "Framework"
	SkillCategoryDatabase  = "Database"
	SkillCategoryTools     = "Tools"
	SkillCategoryConcept   = "Concept"
)

// SkillCategories lists the accepted values in display order.
var SkillCategories = []string{
	SkillCategoryLanguage,
	SkillCategoryFramework,
	SkillCategoryDatabase,
	SkillCategoryTools,
	SkillCategoryConcept,
}

// Skill is a single technology entry. Names are not unique.
type Skill struct {
	Model
	Name     string  `gorm:"size:255"`
	Category string  `gorm:"size:64;index"`
	Level    *int
	Icon     *string `gorm:"size:255"`
}

// Project is a showcased piece of work.
type Project struct {
	Model
	Title           string         `gorm:"size:255"`
	Description     string         `gorm:"type:text"`
	LongDescription *string        `gorm:"type:text"`
	TechStack       datatypes.JSON `gorm:"type:jsonb"`
	Features        datatypes.JSON `gorm:"type:jsonb"`
	Architecture    *string        `gorm:"type:text"`
	GithubURL       *string        `gorm:"size:512"`
	LiveURL         *string        `gorm:"size:512"`
	Image           string         `gorm:"size:512"`
	IsFeatured      *bool
}

// Experience is one timeline entry. Period is free text, not a date range.
type Experience struct {
	Model
	Role        string         `gorm:"size:255"`
	Company     string         `gorm:"size:255"`
	Period      string         `gorm:"size:64"`
	Description datatypes.JSON `gorm:"type:jsonb"` // array of strings
}

// ContactMessage is a visitor submission. Immutable except the IsRead flag.
type ContactMessage struct {
	Model
	Name    string `gorm:"size:255"`
	Email   string `gorm:"size:255"`
	Message string `gorm:"type:text"`
	IsRead  bool   `gorm:"default:false"`
}
