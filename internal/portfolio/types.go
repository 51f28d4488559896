package portfolio

// Typed shapes for the JSON blob columns. Writes decode into these so a
// wrong-shape payload is rejected instead of stored; reads re-encode them
// with defaults filled in.

// HeroStats is the headline counters block on the hero section.
type HeroStats struct {
	YearsExp int    `json:"yearsExp"`
	Projects int    `json:"projects"`
	Uptime   string `json:"uptime"`
}

// CTAButtons holds the two call-to-action labels on the hero section.
type CTAButtons struct {
	ViewProjects string `json:"viewProjects"`
	ContactMe    string `json:"contactMe"`
}

// AboutStat is one label/value row in the about section.
type AboutStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SocialLinks holds the profile URLs shown in the contact section.
type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
}

// ContactFormConfig toggles the public contact form and its visible fields.
type ContactFormConfig struct {
	Enabled bool     `json:"enabled"`
	Fields  []string `json:"fields"`
}

// ThemeColors is the site palette.
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// NavbarItem is one navigation entry.
type NavbarItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Order int    `json:"order"`
}

// DefaultHeroStats are returned when the stored stats blob is null or unreadable.
func DefaultHeroStats() HeroStats {
	return HeroStats{YearsExp: 0, Projects: 0, Uptime: "0%"}
}

// DefaultCTAButtons are the stock call-to-action labels.
func DefaultCTAButtons() CTAButtons {
	return CTAButtons{ViewProjects: "View Projects", ContactMe: "Contact Me"}
}

// DefaultSocialLinks is the all-empty link set.
func DefaultSocialLinks() SocialLinks {
	return SocialLinks{}
}

// DefaultContactFormConfig disables the form.
func DefaultContactFormConfig() ContactFormConfig {
	return ContactFormConfig{Enabled: false, Fields: []string{}}
}

// DefaultThemeColors is the stock dark palette.
func DefaultThemeColors() ThemeColors {
	return ThemeColors{
		Primary:    "#6366f1",
		Secondary:  "#8b5cf6",
		Background: "#0a0a0a",
		Text:       "#f5f5f5",
	}
}
