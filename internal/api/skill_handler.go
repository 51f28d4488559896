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

// SkillHandler serves the skill collection.
type SkillHandler struct {
	db *gorm.DB
}

// NewSkillHandler constructs a SkillHandler.
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{db: db}
}

// List returns every skill ordered by category then name.
func (h *SkillHandler) List(c *gin.Context) {
	var skills []database.Skill
	if err := h.db.WithContext(c.Request.Context()).
		Order("category").
		Order("name").
		Find(&skills).Error; err != nil {
		Internal(c, "failed to list skills")
		return
	}

	views := make([]portfolio.SkillView, 0, len(skills))
	for _, s := range skills {
		views = append(views, portfolio.NewSkillView(s))
	}
	Data(c, http.StatusOK, views)
}

// Fields are raw so a wrong-typed value becomes a field-keyed 422 instead of
// a bind error.
type skillRequest struct {
	Name     json.RawMessage `json:"name"`
	Category json.RawMessage `json:"category"`
	Level    json.RawMessage `json:"level"`
	Icon     json.RawMessage `json:"icon"`
}

// Store validates and creates a skill.
func (h *SkillHandler) Store(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	errs := validation.Errors{}
	name, nameOK := errs.DecodeString("name", req.Name)
	category, categoryOK := errs.DecodeString("category", req.Category)
	level, _ := errs.DecodeInt("level", req.Level)
	icon, _ := errs.DecodeString("icon", req.Icon)

	if nameOK {
		errs.Required("name", strValue(name))
	}
	if categoryOK {
		errs.Required("category", strValue(category))
		if strValue(category) != "" {
			errs.OneOf("category", *category, database.SkillCategories)
		}
	}
	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	skill := database.Skill{
		Name:     *name,
		Category: *category,
		Level:    level,
		Icon:     icon,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&skill).Error; err != nil {
		Internal(c, "failed to create skill")
		return
	}

	Data(c, http.StatusCreated, portfolio.NewSkillView(skill))
}

// Update applies a partial update to one skill.
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid skill id")
		return
	}

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var skill database.Skill
	if err := h.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Skill not found")
			return
		}
		Internal(c, "failed to load skill")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	if req.Name != nil {
		if name, ok := errs.DecodeString("name", req.Name); ok {
			errs.Required("name", strValue(name))
			if name != nil {
				updates["name"] = *name
			}
		}
	}
	if req.Category != nil {
		if category, ok := errs.DecodeString("category", req.Category); ok {
			errs.Required("category", strValue(category))
			if category != nil {
				errs.OneOf("category", *category, database.SkillCategories)
				updates["category"] = *category
			}
		}
	}
	if req.Level != nil {
		if level, ok := errs.DecodeInt("level", req.Level); ok {
			updates["level"] = level
		}
	}
	if req.Icon != nil {
		if icon, ok := errs.DecodeString("icon", req.Icon); ok {
			updates["icon"] = icon
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&skill).Updates(updates).Error; err != nil {
			Internal(c, "failed to update skill")
			return
		}
		if err := h.db.WithContext(ctx).First(&skill, skill.ID).Error; err != nil {
			Internal(c, "failed to reload skill")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewSkillView(skill))
}

// Destroy removes one skill.
func (h *SkillHandler) Destroy(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid skill id")
		return
	}

	ctx := c.Request.Context()
	var skill database.Skill
	if err := h.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Skill not found")
			return
		}
		Internal(c, "failed to load skill")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.Skill{}, skill.ID).Error; err != nil {
		Internal(c, "failed to delete skill")
		return
	}

	c.Status(http.StatusNoContent)
}
