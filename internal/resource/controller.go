package resource

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/academy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/academy-scheduler/internal/validators"
)

var validate = validators.New()

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Controller serves list, get, create, update and delete for one Schema.
type Controller[T any] struct {
	schema Schema[T]
	store  Store[T]
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewController[T any](schema Schema[T], store Store[T], auditor *audit.Dispatcher, log *zap.Logger) *Controller[T] {
	return &Controller[T]{schema: schema, store: store, audit: auditor, log: log}
}

func (h *Controller[T]) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	filters := map[string]any{}
	for param, column := range h.schema.Filters {
		if v := c.Query(param); v != "" {
			filters[column] = v
		}
	}

	items, total, err := h.store.List(c.Request.Context(), repository.ListQuery{
		Search:  c.Query("q"),
		Filters: filters,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		h.log.Error("resource list failed", zap.String("resource", h.schema.Name), zap.Error(err))
		httperr.Internal(c, h.schema.Name+"_list_failed", "Could not load the list.")
		return
	}

	httpresp.Page(c, items, total, page, limit)
}

func (h *Controller[T]) Get(c *gin.Context) {
	v, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, v)
}

func (h *Controller[T]) Create(c *gin.Context) {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}
	setID(&v, 0)

	if h.schema.Prepare != nil {
		h.schema.Prepare(c, &v)
	}
	if !h.check(c, &v) {
		return
	}

	if err := h.store.Create(c.Request.Context(), &v); err != nil {
		h.log.Error("resource create failed", zap.String("resource", h.schema.Name), zap.Error(err))
		httperr.Internal(c, h.schema.Name+"_create_failed", "Could not save.")
		return
	}

	h.record(c, "created", getID(&v))
	httpresp.Created(c, v)
}

// Update applies a partial JSON document over the stored row.
func (h *Controller[T]) Update(c *gin.Context) {
	v, ok := h.load(c)
	if !ok {
		return
	}
	id := getID(v)

	if err := c.ShouldBindJSON(v); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}
	setID(v, id)

	if !h.check(c, v) {
		return
	}

	if err := h.store.Save(c.Request.Context(), v); err != nil {
		h.log.Error("resource update failed", zap.String("resource", h.schema.Name), zap.Error(err))
		httperr.Internal(c, h.schema.Name+"_update_failed", "Could not save.")
		return
	}

	h.record(c, "updated", id)
	httpresp.OK(c, v)
}

func (h *Controller[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, h.schema.Name+"_not_found", "Not found.")
			return
		}
		h.log.Error("resource delete failed", zap.String("resource", h.schema.Name), zap.Error(err))
		httperr.Internal(c, h.schema.Name+"_delete_failed", "Could not delete.")
		return
	}

	h.record(c, "deleted", id)
	c.Status(http.StatusNoContent)
}

func (h *Controller[T]) load(c *gin.Context) (*T, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}

	v, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, h.schema.Name+"_not_found", "Not found.")
			return nil, false
		}
		httperr.Internal(c, h.schema.Name+"_get_failed", "Could not load.")
		return nil, false
	}
	return v, true
}

func (h *Controller[T]) check(c *gin.Context, v *T) bool {
	fields := map[string]string{}
	if err := validate.Struct(v); err != nil {
		fe, ok := validators.Fields(err)
		if !ok {
			httperr.Internal(c, "validation_error", "Could not validate.")
			return false
		}
		fields = fe
	}

	if h.schema.Validate != nil {
		for k, msg := range h.schema.Validate(v) {
			if _, seen := fields[k]; !seen {
				fields[k] = msg
			}
		}
	}

	if len(fields) > 0 {
		httperr.Invalid(c, fields)
		return false
	}
	return true
}

func (h *Controller[T]) record(c *gin.Context, verb string, id uint) {
	if h.audit == nil {
		return
	}
	var userID *uint
	if uid := middleware.UserID(c); uid != 0 {
		userID = &uid
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   h.schema.Name + "_" + verb,
		Entity:   h.schema.Name,
		EntityID: &id,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// Every academy model carries a uint primary key named ID.
func getID(v any) uint {
	f := reflect.ValueOf(v).Elem().FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.Uint {
		return 0
	}
	return uint(f.Uint())
}

func setID(v any, id uint) {
	f := reflect.ValueOf(v).Elem().FieldByName("ID")
	if f.IsValid() && f.CanSet() && f.Kind() == reflect.Uint {
		f.SetUint(uint64(id))
	}
}
