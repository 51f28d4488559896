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

// AboutHandler serves the about-section singleton.
type AboutHandler struct {
	db *gorm.DB
}

// NewAboutHandler constructs an AboutHandler.
func NewAboutHandler(db *gorm.DB) *AboutHandler {
	return &AboutHandler{db: db}
}

// Show returns the about singleton, creating the seeded row on first read.
func (h *AboutHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	var about database.About
	err := h.db.WithContext(ctx).First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := database.AboutSeed()
		if err := h.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&seed).Error; err != nil {
			Internal(c, "failed to seed about section")
			return
		}
		if err := h.db.WithContext(ctx).First(&about).Error; err != nil {
			Internal(c, "failed to load about section")
			return
		}
	} else if err != nil {
		Internal(c, "failed to load about section")
		return
	}

	Data(c, http.StatusOK, portfolio.NewAboutView(about))
}

type aboutUpdateRequest struct {
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Image       json.RawMessage `json:"image"`
	Stats       json.RawMessage `json:"stats"`
}

// Update applies a partial update to the about singleton.
func (h *AboutHandler) Update(c *gin.Context) {
	var req aboutUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var about database.About
	if err := h.db.WithContext(ctx).First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "About section not found")
			return
		}
		Internal(c, "failed to load about section")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	applyNullableString(errs, updates, "title", req.Title)
	applyString(errs, updates, "description", req.Description)
	applyNullableString(errs, updates, "image", req.Image)
	if req.Stats != nil {
		var stats []portfolio.AboutStat
		if errs.DecodeJSON("stats", req.Stats, &stats) {
			updates["stats"] = mustMarshal(stats)
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&about).Updates(updates).Error; err != nil {
			Internal(c, "failed to update about section")
			return
		}
		if err := h.db.WithContext(ctx).First(&about, about.ID).Error; err != nil {
			Internal(c, "failed to reload about section")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewAboutView(about))
}
