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

const maxContactMessageLen = 5000

// ContactMessageHandler handles the public contact-form intake and the
// admin inbox. Intake is the only unauthenticated write in the API.
type ContactMessageHandler struct {
	db *gorm.DB
}

// NewContactMessageHandler constructs a ContactMessageHandler.
func NewContactMessageHandler(db *gorm.DB) *ContactMessageHandler {
	return &ContactMessageHandler{db: db}
}

// Fields are raw so a wrong-typed value becomes a field-keyed 422 instead of
// a bind error.
type contactMessageRequest struct {
	Name    json.RawMessage `json:"name"`
	Email   json.RawMessage `json:"email"`
	Message json.RawMessage `json:"message"`
}

// Store accepts a visitor submission.
func (h *ContactMessageHandler) Store(c *gin.Context) {
	var req contactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	errs := validation.Errors{}
	name, nameOK := errs.DecodeString("name", req.Name)
	email, emailOK := errs.DecodeString("email", req.Email)
	body, bodyOK := errs.DecodeString("message", req.Message)
	if nameOK {
		errs.Required("name", strValue(name))
		errs.MaxLen("name", strValue(name), 255)
	}
	if emailOK {
		errs.Required("email", strValue(email))
		errs.Email("email", strValue(email))
		errs.MaxLen("email", strValue(email), 255)
	}
	if bodyOK {
		errs.Required("message", strValue(body))
		errs.MaxLen("message", strValue(body), maxContactMessageLen)
	}
	if !errs.Empty() {
		ValidationFailed(c, errs)
		return
	}

	message := database.ContactMessage{
		Name:    *name,
		Email:   *email,
		Message: *body,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&message).Error; err != nil {
		Internal(c, "failed to save message")
		return
	}

	DataWithMessage(c, http.StatusCreated, "Message sent successfully", portfolio.NewContactMessageView(message))
}

// List returns every message, newest first.
func (h *ContactMessageHandler) List(c *gin.Context) {
	var messages []database.ContactMessage
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		Internal(c, "failed to list messages")
		return
	}

	views := make([]portfolio.ContactMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, portfolio.NewContactMessageView(m))
	}
	Data(c, http.StatusOK, views)
}

// MarkAsRead sets is_read=true. Repeat calls succeed without change.
func (h *ContactMessageHandler) MarkAsRead(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid message id")
		return
	}

	ctx := c.Request.Context()
	var message database.ContactMessage
	if err := h.db.WithContext(ctx).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Message not found")
			return
		}
		Internal(c, "failed to load message")
		return
	}

	if !message.IsRead {
		if err := h.db.WithContext(ctx).Model(&message).Update("is_read", true).Error; err != nil {
			Internal(c, "failed to mark message as read")
			return
		}
		message.IsRead = true
	}

	DataWithMessage(c, http.StatusOK, "Message marked as read", portfolio.NewContactMessageView(message))
}

// Destroy hard-deletes one message.
func (h *ContactMessageHandler) Destroy(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid message id")
		return
	}

	ctx := c.Request.Context()
	var message database.ContactMessage
	if err := h.db.WithContext(ctx).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Message not found")
			return
		}
		Internal(c, "failed to load message")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.ContactMessage{}, message.ID).Error; err != nil {
		Internal(c, "failed to delete message")
		return
	}

	c.Status(http.StatusNoContent)
}
