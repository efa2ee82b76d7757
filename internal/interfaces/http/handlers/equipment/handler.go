package equipment

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gearguard/internal/application/equipment/usecases"
	maintenanceusecases "gearguard/internal/application/maintenance/usecases"
	"gearguard/internal/domain/maintenance"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/constants"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/utils"
)

type Handler struct {
	createUC       createEquipmentUseCase
	getUC          getEquipmentUseCase
	listUC         listEquipmentUseCase
	updateUC       updateEquipmentUseCase
	deleteUC       deleteEquipmentUseCase
	exportUC       exportEquipmentUseCase
	listRequestsUC listRequestsUseCase
	logger         logger.Interface
}

func NewHandler(
	createUC createEquipmentUseCase,
	getUC getEquipmentUseCase,
	listUC listEquipmentUseCase,
	updateUC updateEquipmentUseCase,
	deleteUC deleteEquipmentUseCase,
	exportUC exportEquipmentUseCase,
	listRequestsUC listRequestsUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		exportUC:       exportUC,
		listRequestsUC: listRequestsUC,
		logger:         logger,
	}
}

// ListEquipment godoc
// @Summary List equipment
// @Description Newest first, with team name and open request count
// @Tags equipment
// @Produce json
// @Param status query string false "Usable, Under Maintenance, Reserved or Scrapped"
// @Param team_id query int false "Team ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.EquipmentDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEquipmentQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateEquipment godoc
// @Summary Register equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body CreateEquipmentRequest true "Equipment"
// @Success 201 {object} utils.APIResponse{data=dto.EquipmentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/equipment [post]
func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create equipment", "error", err)
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
	utils.CreatedResponse(c, result, "Equipment created successfully")
}

// GetEquipment godoc
// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} utils.APIResponse{data=dto.EquipmentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/equipment/{id} [get]
func (h *Handler) GetEquipment(c *gin.Context) {
	equipmentID, err := utils.ParseID(c.Param("id"), "equipment ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), equipmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateEquipment godoc
// @Summary Update equipment
// @Description Partial update. team_id 0 or an empty date clears the field.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Param equipment body UpdateEquipmentRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.EquipmentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/equipment/{id} [put]
func (h *Handler) UpdateEquipment(c *gin.Context) {
	equipmentID, err := utils.ParseID(c.Param("id"), "equipment ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEquipmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update equipment", "equipment_id", equipmentID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd, err := req.ToCommand(equipmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Equipment updated successfully", result)
}

// DeleteEquipment godoc
// @Summary Delete equipment
// @Description Deletes the equipment and its maintenance requests
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/equipment/{id} [delete]
func (h *Handler) DeleteEquipment(c *gin.Context) {
	equipmentID, err := utils.ParseID(c.Param("id"), "equipment ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), equipmentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Equipment deleted successfully", nil)
}

// ListEquipmentRequests godoc
// @Summary List requests for one equipment
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} utils.APIResponse{data=[]maintenancedto.RequestDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/equipment/{id}/requests [get]
func (h *Handler) ListEquipmentRequests(c *gin.Context) {
	equipmentID, err := utils.ParseID(c.Param("id"), "equipment ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), maintenanceusecases.ListRequestsQuery{
		Filter: maintenance.Filter{EquipmentID: &equipmentID},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportEquipment godoc
// @Summary Export equipment to XLSX
// @Tags equipment
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Status filter"
// @Param team_id query int false "Team ID"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Router /api/equipment/export [get]
func (h *Handler) ExportEquipment(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	rows, err := h.exportUC.Execute(c.Request.Context(), filter, &buf)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("equipment-%s.xlsx", biztime.Today().Format("20060102"))
	h.logger.Infow("equipment exported", "rows", rows, "filename", filename)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, buf.Bytes())
}
