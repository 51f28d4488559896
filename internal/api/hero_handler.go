package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"phPortfolio/internal/database"
	"phPortfolio/internal/portfolio"
	"phPortfolio/internal/validation"
)

// HeroHandler serves the hero-section singleton.
type HeroHandler struct {
	db *gorm.DB
}

// NewHeroHandler constructs a HeroHandler.
func NewHeroHandler(db *gorm.DB) *HeroHandler {
	return &HeroHandler{db: db}
}

// Show returns the hero singleton, creating the seeded row on first read.
// The seed insert uses a fixed primary key with conflict-do-nothing, so
// concurrent first reads converge on exactly one row.
func (h *HeroHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	var hero database.Hero
	err := h.db.WithContext(ctx).First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := database.HeroSeed()
		if err := h.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&seed).Error; err != nil {
			Internal(c, "failed to seed hero section")
			return
		}
		if err := h.db.WithContext(ctx).First(&hero).Error; err != nil {
			Internal(c, "failed to load hero section")
			return
		}
	} else if err != nil {
		Internal(c, "failed to load hero section")
		return
	}

	Data(c, http.StatusOK, portfolio.NewHeroView(hero))
}

type heroUpdateRequest struct {
	Name             json.RawMessage `json:"name"`
	Title            json.RawMessage `json:"title"`
	Subtitle         json.RawMessage `json:"subtitle"`
	Description      json.RawMessage `json:"description"`
	HeroImage        json.RawMessage `json:"hero_image"`
	BackgroundImages json.RawMessage `json:"background_images"`
	Stats            json.RawMessage `json:"stats"`
	CTAButtons       json.RawMessage `json:"cta_buttons"`
}

// Update applies a partial update to the hero singleton; only supplied
// fields are validated and written.
func (h *HeroHandler) Update(c *gin.Context) {
	var req heroUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var hero database.Hero
	if err := h.db.WithContext(ctx).First(&hero).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Hero section not found")
			return
		}
		Internal(c, "failed to load hero section")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	applyString(errs, updates, "name", req.Name)
	applyString(errs, updates, "title", req.Title)
	applyString(errs, updates, "subtitle", req.Subtitle)
	applyString(errs, updates, "description", req.Description)
	applyNullableString(errs, updates, "hero_image", req.HeroImage)
	if req.BackgroundImages != nil {
		if string(req.BackgroundImages) == "null" {
			updates["background_images"] = nil
		} else {
			var images map[string]any
			if errs.DecodeJSON("background_images", req.BackgroundImages, &images) {
				updates["background_images"] = datatypesJSON(req.BackgroundImages)
			}
		}
	}
	if req.Stats != nil {
		var stats portfolio.HeroStats
		if errs.DecodeJSON("stats", req.Stats, &stats) {
			updates["stats"] = mustMarshal(stats)
		}
	}
	if req.CTAButtons != nil {
		var buttons portfolio.CTAButtons
		if errs.DecodeJSON("cta_buttons", req.CTAButtons, &buttons) {
			updates["cta_buttons"] = mustMarshal(buttons)
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&hero).Updates(updates).Error; err != nil {
			Internal(c, "failed to update hero section")
			return
		}
		if err := h.db.WithContext(ctx).First(&hero, hero.ID).Error; err != nil {
			Internal(c, "failed to reload hero section")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewHeroView(hero))
}
