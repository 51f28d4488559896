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

// ContactHandler serves the contact-section singleton. Unlike hero/about,
// an absent row is a 404 and is never auto-seeded.
type ContactHandler struct {
	db *gorm.DB
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

// Show returns the contact singleton or 404.
func (h *ContactHandler) Show(c *gin.Context) {
	var contact database.Contact
	if err := h.db.WithContext(c.Request.Context()).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Contact info not found")
			return
		}
		Internal(c, "failed to load contact info")
		return
	}

	Data(c, http.StatusOK, portfolio.NewContactView(contact))
}

type contactUpdateRequest struct {
	Email             json.RawMessage `json:"email"`
	Phone             json.RawMessage `json:"phone"`
	Location          json.RawMessage `json:"location"`
	Availability      json.RawMessage `json:"availability"`
	SocialLinks       json.RawMessage `json:"social_links"`
	ContactFormConfig json.RawMessage `json:"contact_form_config"`
}

// Update applies a partial update to the contact singleton.
func (h *ContactHandler) Update(c *gin.Context) {
	var req contactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var contact database.Contact
	if err := h.db.WithContext(ctx).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Contact info not found")
			return
		}
		Internal(c, "failed to load contact info")
		return
	}

	errs := validation.Errors{}
	updates := map[string]any{}

	if req.Email != nil {
		if email, ok := errs.DecodeString("email", req.Email); ok {
			errs.Required("email", strValue(email))
			errs.Email("email", strValue(email))
			if email != nil {
				updates["email"] = *email
			}
		}
	}
	applyNullableString(errs, updates, "phone", req.Phone)
	applyString(errs, updates, "location", req.Location)
	applyNullableString(errs, updates, "availability", req.Availability)
	if req.SocialLinks != nil {
		var links portfolio.SocialLinks
		if errs.DecodeJSON("social_links", req.SocialLinks, &links) {
			updates["social_links"] = mustMarshal(links)
		}
	}
	if req.ContactFormConfig != nil {
		var formConfig portfolio.ContactFormConfig
		if errs.DecodeJSON("contact_form_config", req.ContactFormConfig, &formConfig) {
			if formConfig.Fields == nil {
				formConfig.Fields = []string{}
			}
			updates["contact_form_config"] = mustMarshal(formConfig)
		}
	}

	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&contact).Updates(updates).Error; err != nil {
			Internal(c, "failed to update contact info")
			return
		}
		if err := h.db.WithContext(ctx).First(&contact, contact.ID).Error; err != nil {
			Internal(c, "failed to reload contact info")
			return
		}
	}

	Data(c, http.StatusOK, portfolio.NewContactView(contact))
}
