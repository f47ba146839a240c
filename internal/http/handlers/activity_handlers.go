package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/http/middleware"
)

// ActivityHandlers exposes the activity log of the authenticated user
type ActivityHandlers struct {
	activitySvc domain.ActivityService
	log         *slog.Logger
}

func NewActivityHandlers(activitySvc domain.ActivityService, log *slog.Logger) *ActivityHandlers {
	return &ActivityHandlers{activitySvc: activitySvc, log: log}
}

// CreateActivityRequest represents the POST /activity body
type CreateActivityRequest struct {
	ActivityType      string     `json:"activityType" binding:"required"`
	DoneAt            *time.Time `json:"doneAt" binding:"required"`
	DurationInMinutes *int       `json:"durationInMinutes" binding:"required,min=1,max=1440"`
}

// UpdateActivityRequest represents the PATCH /activity/:id body; absent fields are kept
type UpdateActivityRequest struct {
	ActivityType      *string    `json:"activityType" binding:"omitempty,min=1"`
	DoneAt            *time.Time `json:"doneAt"`
	DurationInMinutes *int       `json:"durationInMinutes" binding:"omitempty,min=1,max=1440"`
}

// ActivityResponse is the public shape of an activity
type ActivityResponse struct {
	ActivityID        uint      `json:"activityId"`
	ActivityType      string    `json:"activityType"`
	DoneAt            time.Time `json:"doneAt"`
	DurationInMinutes int       `json:"durationInMinutes"`
	CaloriesBurned    int       `json:"caloriesBurned"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID:        a.ID,
		ActivityType:      a.ActivityType,
		DoneAt:            a.DoneAt,
		DurationInMinutes: a.DurationInMinutes,
		CaloriesBurned:    a.CaloriesBurned,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// Create handles POST /activity
func (h *ActivityHandlers) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), c.GetString(middleware.UserIDKey), domain.NewActivity{
		ActivityType:      req.ActivityType,
		DoneAt:            *req.DoneAt,
		DurationInMinutes: *req.DurationInMinutes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toActivityResponse(activity))
}

// Update handles PATCH /activity/:id
func (h *ActivityHandlers) Update(c *gin.Context) {
	id, ok := activityID(c)
	if !ok {
		respondError(c, h.log, domain.ErrActivityNotFound)
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), c.GetString(middleware.UserIDKey), id, domain.ActivityPatch{
		ActivityType:      req.ActivityType,
		DoneAt:            req.DoneAt,
		DurationInMinutes: req.DurationInMinutes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toActivityResponse(activity))
}

// Delete handles DELETE /activity/:id
func (h *ActivityHandlers) Delete(c *gin.Context) {
	id, ok := activityID(c)
	if !ok {
		respondError(c, h.log, domain.ErrActivityNotFound)
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), c.GetString(middleware.UserIDKey), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

// List handles GET /activity
func (h *ActivityHandlers) List(c *gin.Context) {
	filter, err := parseActivityFilter(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	activities, err := h.activitySvc.List(c.Request.Context(), c.GetString(middleware.UserIDKey), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	c.JSON(http.StatusOK, out)
}

// activityID accepts positive integers only
func activityID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseActivityFilter(c *gin.Context) (domain.ActivityFilter, error) {
	filter := domain.ActivityFilter{Limit: domain.DefaultListLimit}

	if v, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return filter, domain.NewValidationError("limit", "must be a positive integer")
		}
		filter.Limit = n
	}
	if v, ok := c.GetQuery("offset"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, domain.NewValidationError("offset", "must be a non-negative integer")
		}
		filter.Offset = n
	}
	if v, ok := c.GetQuery("activityType"); ok && v != "" {
		filter.ActivityType = &v
	}

	var err error
	if filter.DoneAtFrom, err = queryTime(c, "doneAtFrom"); err != nil {
		return filter, err
	}
	if filter.DoneAtTo, err = queryTime(c, "doneAtTo"); err != nil {
		return filter, err
	}
	if filter.CaloriesBurnedMin, err = queryInt(c, "caloriesBurnedMin"); err != nil {
		return filter, err
	}
	if filter.CaloriesBurnedMax, err = queryInt(c, "caloriesBurnedMax"); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryTime(c *gin.Context, name string) (*time.Time, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an RFC 3339 timestamp")
	}
	return &t, nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return &n, nil
}
