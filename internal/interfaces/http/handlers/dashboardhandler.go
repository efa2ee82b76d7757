package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	activitydto "gearguard/internal/application/activity/dto"
	activityusecases "gearguard/internal/application/activity/usecases"
	"gearguard/internal/application/dashboard/dto"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/utils"
)

type getStatsUseCase interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type requestsByTeamUseCase interface {
	Execute(ctx context.Context) ([]*dto.TeamCountDTO, error)
}

type equipmentByCategoryUseCase interface {
	Execute(ctx context.Context) ([]*dto.CategoryCountDTO, error)
}

type listActivityUseCase interface {
	Execute(ctx context.Context, query activityusecases.ListActivityQuery) ([]*activitydto.ActivityDTO, error)
}

// DashboardHandler serves the aggregate reads and the activity feed.
type DashboardHandler struct {
	statsUC      getStatsUseCase
	byTeamUC     requestsByTeamUseCase
	byCategoryUC equipmentByCategoryUseCase
	activityUC   listActivityUseCase
	logger       logger.Interface
}

func NewDashboardHandler(
	statsUC getStatsUseCase,
	byTeamUC requestsByTeamUseCase,
	byCategoryUC equipmentByCategoryUseCase,
	activityUC listActivityUseCase,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		statsUC:      statsUC,
		byTeamUC:     byTeamUC,
		byCategoryUC: byCategoryUC,
		activityUC:   activityUC,
		logger:       logger,
	}
}

// GetStats godoc
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.StatsDTO}
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RequestsByTeam godoc
// @Summary Request count per team
// @Description Every team is listed, largest count first
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.TeamCountDTO}
// @Router /api/dashboard/requests-by-team [get]
func (h *DashboardHandler) RequestsByTeam(c *gin.Context) {
	result, err := h.byTeamUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// EquipmentByCategory godoc
// @Summary Equipment count per category
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.CategoryCountDTO}
// @Router /api/dashboard/equipment-by-category [get]
func (h *DashboardHandler) EquipmentByCategory(c *gin.Context) {
	result, err := h.byCategoryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RecentActivity godoc
// @Summary Latest activity log entries
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {object} utils.APIResponse{data=[]activitydto.ActivityDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/dashboard/recent-activity [get]
// @Router /api/activity [get]
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	limit, err := utils.ParseOptionalID(c.Query("limit"), "limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query := activityusecases.ListActivityQuery{}
	if limit != nil {
		query.Limit = int(*limit)
	}

	result, err := h.activityUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
