package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
	"github.com/BruksfildServices01/academy-scheduler/internal/timezone"
)

type AuditLogsHandler struct {
	db *gorm.DB
	tz string
}

func NewAuditLogsHandler(db *gorm.DB, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, tz: tz}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if uid, err := strconv.ParseUint(c.Query("user_id"), 10, 64); err == nil {
		q = q.Where("user_id = ?", uid)
	}
	if from, err := timezone.ParseDate(h.tz, c.Query("from")); err == nil {
		q = q.Where("created_at >= ?", from)
	}
	if to, err := timezone.ParseDate(h.tz, c.Query("to")); err == nil {
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.Page(c, logs, total, page, limit)
}
