package resource

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/academy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

var Teachers = Schema[models.Teacher]{
	Name:          "teacher",
	SearchColumns: []string{"name", "specialization"},
	Order:         "name ASC",
	Filters:       map[string]string{"active": "active"},
}

var Classes = Schema[models.MusicClass]{
	Name:          "class",
	SearchColumns: []string{"name", "instrument"},
	Order:         "name ASC",
	Filters: map[string]string{
		"instrument": "instrument",
		"level":      "level",
		"teacher_id": "teacher_id",
	},
}

var Batches = Schema[models.Batch]{
	Name:          "batch",
	SearchColumns: []string{"name"},
	Order:         "weekday ASC, start_time ASC",
	Filters: map[string]string{
		"class_id":   "class_id",
		"teacher_id": "teacher_id",
		"weekday":    "weekday",
	},
	Validate: func(b *models.Batch) map[string]string {
		return orderedTimes(b.StartTime, b.EndTime, "end_time")
	},
}

var Singers = Schema[models.Singer]{
	Name:          "singer",
	SearchColumns: []string{"name", "genre"},
	Order:         "name ASC",
	Filters:       map[string]string{"genre": "genre"},
}

// Admissions are requested by users and moderated by admins; a new request
// always starts pending and belongs to its author.
var Admissions = Schema[models.Admission]{
	Name:          "admission",
	SearchColumns: []string{"student_name", "contact"},
	Order:         "created_at DESC",
	Filters: map[string]string{
		"status":   "status",
		"batch_id": "batch_id",
	},
	Prepare: func(c *gin.Context, a *models.Admission) {
		a.Status = models.AdmissionPending
		if uid := middleware.UserID(c); uid != 0 {
			a.UserID = &uid
		}
	},
}

var Studios = Schema[models.Studio]{
	Name:          "studio",
	SearchColumns: []string{"name", "description"},
	Order:         "name ASC",
	Filters:       map[string]string{"active": "is_active"},
	Prepare: func(_ *gin.Context, s *models.Studio) {
		if strings.TrimSpace(s.Slug) == "" {
			s.Slug = Slugify(s.Name)
		}
		if s.StepMinutes == 0 {
			s.StepMinutes = availability.DefaultStepMinutes
		}
	},
	Validate: func(s *models.Studio) map[string]string {
		return orderedTimes(s.OpenTime, s.CloseTime, "close_time")
	},
}

// orderedTimes reports endField when both times parse and end is not after start.
func orderedTimes(start, end, endField string) map[string]string {
	s, err1 := availability.ParseTimeOfDay(start)
	e, err2 := availability.ParseTimeOfDay(end)
	if err1 != nil || err2 != nil {
		return nil
	}
	if e <= s {
		return map[string]string{endField: "must be after the start"}
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
