package portfolio

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"phPortfolio/internal/database"
)

// Read-path transforms. Each maps a stored record to the client JSON
// contract, substituting the documented default wherever a blob column is
// null, absent, or unreadable. Stored rows are never mutated here.

// HeroView is the client-facing hero shape.
type HeroView struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Title            string     `json:"title"`
	Subtitle         string     `json:"subtitle"`
	Description      string     `json:"description"`
	HeroImage        *string    `json:"hero_image"`
	BackgroundImages any        `json:"background_images"`
	Stats            HeroStats  `json:"stats"`
	CTAButtons       CTAButtons `json:"cta_buttons"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// AboutView is the client-facing about shape.
type AboutView struct {
	ID          uint        `json:"id"`
	Title       *string     `json:"title"`
	Description string      `json:"description"`
	Image       *string     `json:"image"`
	Stats       []AboutStat `json:"stats"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ContactView is the client-facing contact shape.
type ContactView struct {
	ID                uint              `json:"id"`
	Email             string            `json:"email"`
	Phone             *string           `json:"phone"`
	Location          string            `json:"location"`
	Availability      *string           `json:"availability"`
	SocialLinks       SocialLinks       `json:"social_links"`
	ContactFormConfig ContactFormConfig `json:"contact_form_config"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// SiteConfigView is the client-facing site-config shape.
type SiteConfigView struct {
	ID              uint         `json:"id"`
	SiteTitle       string       `json:"site_title"`
	MetaDescription *string      `json:"meta_description"`
	ThemeColors     ThemeColors  `json:"theme_colors"`
	FooterContent   string       `json:"footer_content"`
	NavbarItems     []NavbarItem `json:"navbar_items"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// SkillView is the client-facing skill shape.
type SkillView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     *int      `json:"level"`
	Icon      *string   `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectView is the client-facing project shape.
type ProjectView struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription *string   `json:"long_description"`
	TechStack       []string  `json:"tech_stack"`
	Features        []string  `json:"features"`
	Architecture    *string   `json:"architecture"`
	GithubURL       *string   `json:"github_url"`
	LiveURL         *string   `json:"live_url"`
	Image           string    `json:"image"`
	IsFeatured      bool      `json:"is_featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExperienceView is the client-facing experience shape.
type ExperienceView struct {
	ID          uint      `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Period      string    `json:"period"`
	Description []string  `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactMessageView is the admin-inbox message shape.
type ContactMessageView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewHeroView fills hero defaults for null stats/cta blobs.
func NewHeroView(h database.Hero) HeroView {
	view := HeroView{
		ID:          h.ID,
		Name:        h.Name,
		Title:       h.Title,
		Subtitle:    h.Subtitle,
		Description: h.Description,
		HeroImage:   h.HeroImage,
		Stats:       DefaultHeroStats(),
		CTAButtons:  DefaultCTAButtons(),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
	decodeBlob(h.Stats, &view.Stats)
	decodeBlob(h.CTAButtons, &view.CTAButtons)
	if !blobIsNull(h.BackgroundImages) {
		var images map[string]any
		if err := json.Unmarshal(h.BackgroundImages, &images); err == nil {
			view.BackgroundImages = images
		}
	}
	return view
}

// NewAboutView fills the empty stats array for null blobs.
func NewAboutView(a database.About) AboutView {
	view := AboutView{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Stats:       []AboutStat{},
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	decodeBlob(a.Stats, &view.Stats)
	if view.Stats == nil {
		view.Stats = []AboutStat{}
	}
	return view
}

// NewContactView fills social-link and form-config defaults.
func NewContactView(c database.Contact) ContactView {
	view := ContactView{
		ID:                c.ID,
		Email:             c.Email,
		Phone:             c.Phone,
		Location:          c.Location,
		Availability:      c.Availability,
		SocialLinks:       DefaultSocialLinks(),
		ContactFormConfig: DefaultContactFormConfig(),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	decodeBlob(c.SocialLinks, &view.SocialLinks)
	decodeBlob(c.ContactFormConfig, &view.ContactFormConfig)
	if view.ContactFormConfig.Fields == nil {
		view.ContactFormConfig.Fields = []string{}
	}
	return view
}

// NewSiteConfigView fills theme and navbar defaults.
func NewSiteConfigView(s database.SiteConfig) SiteConfigView {
	view := SiteConfigView{
		ID:              s.ID,
		SiteTitle:       s.SiteTitle,
		MetaDescription: s.MetaDescription,
		ThemeColors:     DefaultThemeColors(),
		FooterContent:   s.FooterContent,
		NavbarItems:     []NavbarItem{},
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	decodeBlob(s.ThemeColors, &view.ThemeColors)
	decodeBlob(s.NavbarItems, &view.NavbarItems)
	if view.NavbarItems == nil {
		view.NavbarItems = []NavbarItem{}
	}
	return view
}

// NewSkillView maps a stored skill.
func NewSkillView(s database.Skill) SkillView {
	return SkillView{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Level:     s.Level,
		Icon:      s.Icon,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewProjectView decodes tech-stack and feature arrays.
func NewProjectView(p database.Project) ProjectView {
	view := ProjectView{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		TechStack:       []string{},
		Features:        []string{},
		Architecture:    p.Architecture,
		GithubURL:       p.GithubURL,
		LiveURL:         p.LiveURL,
		Image:           p.Image,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	decodeBlob(p.TechStack, &view.TechStack)
	decodeBlob(p.Features, &view.Features)
	if view.TechStack == nil {
		view.TechStack = []string{}
	}
	if view.Features == nil {
		view.Features = []string{}
	}
	if p.IsFeatured != nil {
		view.IsFeatured = *p.IsFeatured
	}
	return view
}

// NewExperienceView decodes the bullet-point array.
func NewExperienceView(e database.Experience) ExperienceView {
	view := ExperienceView{
		ID:          e.ID,
		Role:        e.Role,
		Company:     e.Company,
		Period:      e.Period,
		Description: []string{},
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	decodeBlob(e.Description, &view.Description)
	if view.Description == nil {
		view.Description = []string{}
	}
	return view
}

// NewContactMessageView maps a stored message.
func NewContactMessageView(m database.ContactMessage) ContactMessageView {
	return ContactMessageView{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// decodeBlob overwrites dst only when the blob holds a usable value, leaving
// the caller's default in place otherwise.
func decodeBlob(blob datatypes.JSON, dst any) {
	if blobIsNull(blob) {
		return
	}
	_ = json.Unmarshal(blob, dst)
}

func blobIsNull(blob datatypes.JSON) bool {
	return len(blob) == 0 || string(blob) == "null"
}
