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

// ExperienceHandler serves the experience collection.
type ExperienceHandler struct {
	db *gorm.DB
}

// NewExperienceHandler constructs an ExperienceHandler.
func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{db: db}
}

// List returns every experience entry, newest first.
func (h *ExperienceHandler) List(c *gin.Context) {
	var experiences []database.Experience
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&experiences).Error; err != nil {
		Internal(c, "failed to list experiences")
		return
	}

	views := make([]portfolio.ExperienceView, 0, len(experiences))
	for _, e := range experiences {
		views = append(views, portfolio.NewExperienceView(e))
	}
	Data(c, http.StatusOK, views)
}

// Fields are raw so a wrong-typed value becomes a field-keyed 422 instead of
// a bind error.
type experienceRequest struct {
	Role        json.RawMessage `json:"role"`
	Company     json.RawMessage `json:"company"`
	Period      json.RawMessage `json:"period"`
	Description json.RawMessage `json:"description"`
}

// Store validates and creates an experience entry.
func (h *ExperienceHandler) Store(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	errs := validation.Errors{}
	role, roleOK := errs.DecodeString("role", req.Role)
	company, companyOK := errs.DecodeString("company", req.Company)
	period, periodOK := errs.DecodeString("period", req.Period)
	if roleOK {
		errs.Required("role", strValue(role))
	}
	if companyOK {
		errs.Required("company", strValue(company))
	}
	if periodOK {
		errs.Required("period", strValue(period))
	}

	var description []string
	if req.Description == nil || string(req.Description) == "null" {
		errs.Add("description", "The description field is required.")
	} else {
		errs.DecodeJSON("description", req.Description, &description)
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	experience := database.Experience{
		Role:        *role,
		Company:     *company,
		Period:      *period,
		Description: mustMarshal(description),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&experience).Error; err != nil {
		Internal(c, "failed to create experience")
		return
	}

	Data(c, http.StatusCreated, portfolio.NewExperienceView(experience))
}

// Update applies a partial update to one experience entry.
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid experience id")
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var experience database.Experience
	if err := h.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Experience not found")
			return
		}
		Internal(c, "failed to load experience")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	if req.Role != nil {
		if role, ok := errs.DecodeString("role", req.Role); ok {
			errs.Required("role", strValue(role))
			if role != nil {
				updates["role"] = *role
			}
		}
	}
	if req.Company != nil {
		if company, ok := errs.DecodeString("company", req.Company); ok {
			errs.Required("company", strValue(company))
			if company != nil {
				updates["company"] = *company
			}
		}
	}
	if req.Period != nil {
		if period, ok := errs.DecodeString("period", req.Period); ok {
			errs.Required("period", strValue(period))
			if period != nil {
				updates["period"] = *period
			}
		}
	}
	if req.Description != nil {
		var description []string
		if errs.DecodeJSON("description", req.Description, &description) {
			updates["description"] = mustMarshal(description)
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&experience).Updates(updates).Error; err != nil {
			Internal(c, "failed to update experience")
			return
		}
		if err := h.db.WithContext(ctx).First(&experience, experience.ID).Error; err != nil {
			Internal(c, "failed to reload experience")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewExperienceView(experience))
}

// Destroy removes one experience entry.
func (h *ExperienceHandler) Destroy(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid experience id")
		return
	}

	ctx := c.Request.Context()
	var experience database.Experience
	if err := h.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Experience not found")
			return
		}
		Internal(c, "failed to load experience")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.Experience{}, experience.ID).Error; err != nil {
		Internal(c, "failed to delete experience")
		return
	}

	c.Status(http.StatusNoContent)
}
