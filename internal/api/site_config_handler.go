package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"phPortfolio/internal/database"
	"phPortfolio/internal/portfolio"
	"phPortfolio/internal/validation"
)

// SiteConfigHandler serves the site-wide settings singleton. Absent rows are
// a 404, same as contact.
type SiteConfigHandler struct {
	db *gorm.DB
}

// NewSiteConfigHandler constructs a SiteConfigHandler.
func NewSiteConfigHandler(db *gorm.DB) *SiteConfigHandler {
	return &SiteConfigHandler{db: db}
}

// Show returns the site-config singleton or 404.
func (h *SiteConfigHandler) Show(c *gin.Context) {
	var siteConfig database.SiteConfig
	if err := h.db.WithContext(c.Request.Context()).First(&siteConfig).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Site config not found")
			return
		}
		Internal(c, "failed to load site config")
		return
	}

	Data(c, http.StatusOK, portfolio.NewSiteConfigView(siteConfig))
}

type siteConfigUpdateRequest struct {
	SiteTitle       json.RawMessage `json:"site_title"`
	MetaDescription json.RawMessage `json:"meta_description"`
	ThemeColors     json.RawMessage `json:"theme_colors"`
	FooterContent   json.RawMessage `json:"footer_content"`
	NavbarItems     json.RawMessage `json:"navbar_items"`
}

// Update applies a partial update to the site-config singleton.
func (h *SiteConfigHandler) Update(c *gin.Context) {
	var req siteConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var siteConfig database.SiteConfig
	if err := h.db.WithContext(ctx).First(&siteConfig).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Site config not found")
			return
		}
		Internal(c, "failed to load site config")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	applyString(errs, updates, "site_title", req.SiteTitle)
	applyNullableString(errs, updates, "meta_description", req.MetaDescription)
	applyString(errs, updates, "footer_content", req.FooterContent)
	if req.ThemeColors != nil {
		var colors portfolio.ThemeColors
		if errs.DecodeJSON("theme_colors", req.ThemeColors, &colors) {
			updates["theme_colors"] = mustMarshal(colors)
		}
	}
	if req.NavbarItems != nil {
		var items []portfolio.NavbarItem
		if errs.DecodeJSON("navbar_items", req.NavbarItems, &items) {
			if items == nil {
				items = []portfolio.NavbarItem{}
			}
			updates["navbar_items"] = mustMarshal(items)
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&siteConfig).Updates(updates).Error; err != nil {
			Internal(c, "failed to update site config")
			return
		}
		if err := h.db.WithContext(ctx).First(&siteConfig, siteConfig.ID).Error; err != nil {
			Internal(c, "failed to reload site config")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewSiteConfigView(siteConfig))
}
