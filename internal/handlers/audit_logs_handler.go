package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	"github.com/BruksfildServices01/hotel-services/internal/models"
	"github.com/BruksfildServices01/hotel-services/internal/timezone"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's own audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		httperr.Respond(c, httperr.ErrAuth("not_authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	// --------------------------------------------------
	// Base query, always scoped to the caller
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("actor_account_id = ?", sess.AccountID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if from, err := time.Parse(timezone.DateLayout, c.Query("from")); err == nil {
		q = q.Where("created_at >= ?", from)
	}
	if to, err := time.Parse(timezone.DateLayout, c.Query("to")); err == nil {
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
