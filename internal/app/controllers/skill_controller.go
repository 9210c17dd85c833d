package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/app/services"
	"github.com/skilltrack/skilltrack/internal/middleware"
)

// SkillController handles skill read views
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService *services.SkillService) *SkillController {
	return &SkillController{
		skillService: skillService,
	}
}

// SkillsByCourse serves all skills grouped by course, in first-seen course order
func (c *SkillController) SkillsByCourse(ctx *gin.Context) {
	groups, err := c.skillService.GroupedByCourse(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"courses": groups},
		Timestamp: time.Now(),
	})
}
