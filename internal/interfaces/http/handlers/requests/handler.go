package requests

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearguard/internal/application/maintenance/usecases"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/utils"
)

type Handler struct {
	createUC      createRequestUseCase
	getUC         getRequestUseCase
	listUC        listRequestsUseCase
	updateUC      updateRequestUseCase
	changeStageUC changeStageUseCase
	deleteUC      deleteRequestUseCase
	kanbanUC      kanbanUseCase
	calendarUC    calendarUseCase
	logger        logger.Interface
}

func NewHandler(
	createUC createRequestUseCase,
	getUC getRequestUseCase,
	listUC listRequestsUseCase,
	updateUC updateRequestUseCase,
	changeStageUC changeStageUseCase,
	deleteUC deleteRequestUseCase,
	kanbanUC kanbanUseCase,
	calendarUC calendarUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:      createUC,
		getUC:         getUC,
		listUC:        listUC,
		updateUC:      updateUC,
		changeStageUC: changeStageUC,
		deleteUC:      deleteUC,
		kanbanUC:      kanbanUC,
		calendarUC:    calendarUC,
		logger:        logger,
	}
}

// ListRequests godoc
// @Summary List maintenance requests
// @Description Newest first. Filters are combined with AND.
// @Tags requests
// @Produce json
// @Param stage query string false "New, In Progress, Repaired or Scrap"
// @Param request_type query string false "Corrective or Preventive"
// @Param team_id query int false "Team ID"
// @Param equipment_id query int false "Equipment ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/requests [get]
func (h *Handler) ListRequests(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateRequest godoc
// @Summary Open a maintenance request
// @Description Team and department are copied from the equipment.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body CreateRequestRequest true "Request"
// @Success 201 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests [post]
func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create maintenance request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Maintenance request created successfully")
}

// GetRequest godoc
// @Summary Get a maintenance request
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id} [get]
func (h *Handler) GetRequest(c *gin.Context) {
	requestID, err := utils.ParseID(c.Param("id"), "request ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), requestID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRequest godoc
// @Summary Update a maintenance request
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body UpdateRequestRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id} [put]
func (h *Handler) UpdateRequest(c *gin.Context) {
	requestID, err := utils.ParseID(c.Param("id"), "request ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRequestRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update maintenance request", "request_id", requestID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd, err := req.ToCommand(requestID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Maintenance request updated successfully", result)
}

// UpdateStage godoc
// @Summary Move a request to another stage
// @Description Any stage may follow any other. Scrap retires the equipment.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param stage body ChangeStageRequest true "Stage"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id}/stage [patch]
func (h *Handler) UpdateStage(c *gin.Context) {
	requestID, err := utils.ParseID(c.Param("id"), "request ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	stage, err := parseStage(req.Stage)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStageUC.Execute(c.Request.Context(), usecases.ChangeStageCommand{
		RequestID: requestID,
		Stage:     stage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stage updated successfully", result)
}

// DeleteRequest godoc
// @Summary Delete a maintenance request
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id} [delete]
func (h *Handler) DeleteRequest(c *gin.Context) {
	requestID, err := utils.ParseID(c.Param("id"), "request ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), requestID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Maintenance request deleted successfully", nil)
}

// Kanban godoc
// @Summary Requests grouped by stage
// @Tags requests
// @Produce json
// @Param team_id query int false "Team ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.KanbanColumnDTO}
// @Router /api/requests/kanban [get]
func (h *Handler) Kanban(c *gin.Context) {
	teamID, err := utils.ParseOptionalID(c.Query("team_id"), "team_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.kanbanUC.Execute(c.Request.Context(), usecases.KanbanQuery{TeamID: teamID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Calendar godoc
// @Summary Requests by scheduled date
// @Description Defaults to Preventive requests in the current month. request_type=all includes every type.
// @Tags requests
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param request_type query string false "Corrective, Preventive or all"
// @Param team_id query int false "Team ID"
// @Success 200 {object} utils.APIResponse{data=dto.CalendarDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/requests/calendar [get]
func (h *Handler) Calendar(c *gin.Context) {
	query, err := parseCalendarQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.calendarUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
