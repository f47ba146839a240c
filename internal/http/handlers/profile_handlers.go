package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/http/middleware"
)

// ProfileHandlers serves GET and PATCH /user
type ProfileHandlers struct {
	profileSvc domain.ProfileService
	log        *slog.Logger
}

func NewProfileHandlers(profileSvc domain.ProfileService, log *slog.Logger) *ProfileHandlers {
	return &ProfileHandlers{profileSvc: profileSvc, log: log}
}

// ProfileRequest replaces the whole profile; name and imageUri may be omitted
type ProfileRequest struct {
	Preference string   `json:"preference" binding:"required,oneof=CARDIO WEIGHT"`
	WeightUnit string   `json:"weightUnit" binding:"required,oneof=KG LBS"`
	HeightUnit string   `json:"heightUnit" binding:"required,oneof=CM INCH"`
	Weight     *float64 `json:"weight" binding:"required,min=10,max=1000"`
	Height     *float64 `json:"height" binding:"required,min=3,max=250"`
	Name       *string  `json:"name" binding:"omitempty,min=2,max=60"`
	ImageURI   *string  `json:"imageUri" binding:"omitempty,url"`
}

// ProfileResponse is the public profile shape; unset fields are null
type ProfileResponse struct {
	Preference *domain.Preference `json:"preference"`
	WeightUnit *domain.WeightUnit `json:"weightUnit"`
	HeightUnit *domain.HeightUnit `json:"heightUnit"`
	Weight     *float64           `json:"weight"`
	Height     *float64           `json:"height"`
	Email      string             `json:"email"`
	Name       *string            `json:"name"`
	ImageURI   *string            `json:"imageUri"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		Preference: p.Preference,
		WeightUnit: p.WeightUnit,
		HeightUnit: p.HeightUnit,
		Weight:     p.Weight,
		Height:     p.Height,
		Email:      p.Email,
		Name:       p.Name,
		ImageURI:   p.ImageURI,
	}
}

// Get handles GET /user
func (h *ProfileHandlers) Get(c *gin.Context) {
	profile, err := h.profileSvc.Get(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update handles PATCH /user
func (h *ProfileHandlers) Update(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.profileSvc.Replace(c.Request.Context(), c.GetString(middleware.UserIDKey), domain.ProfileUpdate{
		Preference: domain.Preference(req.Preference),
		WeightUnit: domain.WeightUnit(req.WeightUnit),
		HeightUnit: domain.HeightUnit(req.HeightUnit),
		Weight:     *req.Weight,
		Height:     *req.Height,
		Name:       req.Name,
		ImageURI:   req.ImageURI,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}
