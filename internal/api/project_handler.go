package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"phPortfolio/internal/database"
	"phPortfolio/internal/portfolio"
	"phPortfolio/internal/validation"
)

// ProjectHandler serves the project collection.
type ProjectHandler struct {
	db *gorm.DB
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

// List returns every project, newest first.
func (h *ProjectHandler) List(c *gin.Context) {
	var projects []database.Project
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		Internal(c, "failed to list projects")
		return
	}

	views := make([]portfolio.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, portfolio.NewProjectView(p))
	}
	Data(c, http.StatusOK, views)
}

// Show returns one project or 404.
func (h *ProjectHandler) Show(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid project id")
		return
	}

	var project database.Project
	if err := h.db.WithContext(c.Request.Context()).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Project not found")
			return
		}
		Internal(c, "failed to load project")
		return
	}

	Data(c, http.StatusOK, portfolio.NewProjectView(project))
}

// Fields are raw so a wrong-typed value becomes a field-keyed 422 instead of
// a bind error.
type projectRequest struct {
	Title           json.RawMessage `json:"title"`
	Description     json.RawMessage `json:"description"`
	LongDescription json.RawMessage `json:"long_description"`
	TechStack       json.RawMessage `json:"tech_stack"`
	Features        json.RawMessage `json:"features"`
	Architecture    json.RawMessage `json:"architecture"`
	GithubURL       json.RawMessage `json:"github_url"`
	LiveURL         json.RawMessage `json:"live_url"`
	Image           json.RawMessage `json:"image"`
	IsFeatured      json.RawMessage `json:"is_featured"`
}

// Store validates and creates a project. Empty-string URL fields are
// normalized to null before storage.
func (h *ProjectHandler) Store(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	errs := validation.Errors{}
	title, titleOK := errs.DecodeString("title", req.Title)
	description, descriptionOK := errs.DecodeString("description", req.Description)
	image, imageOK := errs.DecodeString("image", req.Image)
	longDescription, _ := errs.DecodeString("long_description", req.LongDescription)
	architecture, _ := errs.DecodeString("architecture", req.Architecture)
	githubValue, _ := errs.DecodeString("github_url", req.GithubURL)
	liveValue, _ := errs.DecodeString("live_url", req.LiveURL)
	isFeatured, _ := errs.DecodeBool("is_featured", req.IsFeatured)

	if titleOK {
		errs.Required("title", strValue(title))
	}
	if descriptionOK {
		errs.Required("description", strValue(description))
	}
	if imageOK {
		errs.Required("image", strValue(image))
	}

	var techStack []string
	if req.TechStack == nil || string(req.TechStack) == "null" {
		errs.Add("tech_stack", "The tech_stack field is required.")
	} else {
		errs.DecodeJSON("tech_stack", req.TechStack, &techStack)
	}

	var features []string
	if req.Features != nil {
		errs.DecodeJSON("features", req.Features, &features)
	}

	githubURL := normalizeURLField(errs, "github_url", githubValue)
	liveURL := normalizeURLField(errs, "live_url", liveValue)

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	project := database.Project{
		Title:           *title,
		Description:     *description,
		LongDescription: longDescription,
		TechStack:       mustMarshal(techStack),
		Architecture:    architecture,
		GithubURL:       githubURL,
		LiveURL:         liveURL,
		Image:           *image,
		IsFeatured:      isFeatured,
	}
	if features != nil {
		project.Features = mustMarshal(features)
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		Internal(c, "failed to create project")
		return
	}

	Data(c, http.StatusCreated, portfolio.NewProjectView(project))
}

// Update applies a partial update to one project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid project id")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var project database.Project
	if err := h.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Project not found")
			return
		}
		Internal(c, "failed to load project")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	if req.Title != nil {
		if title, ok := errs.DecodeString("title", req.Title); ok {
			errs.Required("title", strValue(title))
			if title != nil {
				updates["title"] = *title
			}
		}
	}
	if req.Description != nil {
		if description, ok := errs.DecodeString("description", req.Description); ok {
			errs.Required("description", strValue(description))
			if description != nil {
				updates["description"] = *description
			}
		}
	}
	applyNullableString(errs, updates, "long_description", req.LongDescription)
	applyNullableString(errs, updates, "architecture", req.Architecture)
	if req.Image != nil {
		if image, ok := errs.DecodeString("image", req.Image); ok {
			errs.Required("image", strValue(image))
			if image != nil {
				updates["image"] = *image
			}
		}
	}
	if req.IsFeatured != nil {
		if isFeatured, ok := errs.DecodeBool("is_featured", req.IsFeatured); ok {
			updates["is_featured"] = isFeatured
		}
	}
	if req.TechStack != nil {
		var techStack []string
		if errs.DecodeJSON("tech_stack", req.TechStack, &techStack) {
			updates["tech_stack"] = mustMarshal(techStack)
		}
	}
	if req.Features != nil {
		var features []string
		if errs.DecodeJSON("features", req.Features, &features) {
			updates["features"] = mustMarshal(features)
		}
	}
	if req.GithubURL != nil {
		if githubValue, ok := errs.DecodeString("github_url", req.GithubURL); ok {
			updates["github_url"] = normalizeURLField(errs, "github_url", githubValue)
		}
	}
	if req.LiveURL != nil {
		if liveValue, ok := errs.DecodeString("live_url", req.LiveURL); ok {
			updates["live_url"] = normalizeURLField(errs, "live_url", liveValue)
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&project).Updates(updates).Error; err != nil {
			Internal(c, "failed to update project")
			return
		}
		if err := h.db.WithContext(ctx).First(&project, project.ID).Error; err != nil {
			Internal(c, "failed to reload project")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewProjectView(project))
}

// Destroy removes one project.
func (h *ProjectHandler) Destroy(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid project id")
		return
	}

	ctx := c.Request.Context()
	var project database.Project
	if err := h.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Project not found")
			return
		}
		Internal(c, "failed to load project")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.Project{}, project.ID).Error; err != nil {
		Internal(c, "failed to delete project")
		return
	}

	c.Status(http.StatusNoContent)
}

// normalizeURLField validates a nullable URL field and maps empty strings to
// null so stale "" values never reach storage.
func normalizeURLField(errs validation.Errors, field string, value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	errs.URL(field, trimmed)
	return &trimmed
}
