package teams

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearguard/internal/application/team/usecases"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/utils"
)

type Handler struct {
	createTeamUC   createTeamUseCase
	getTeamUC      getTeamUseCase
	listTeamsUC    listTeamsUseCase
	updateTeamUC   updateTeamUseCase
	deleteTeamUC   deleteTeamUseCase
	createMemberUC createMemberUseCase
	listMembersUC  listMembersUseCase
	updateMemberUC updateMemberUseCase
	deleteMemberUC deleteMemberUseCase
	logger         logger.Interface
}

func NewHandler(
	createTeamUC createTeamUseCase,
	getTeamUC getTeamUseCase,
	listTeamsUC listTeamsUseCase,
	updateTeamUC updateTeamUseCase,
	deleteTeamUC deleteTeamUseCase,
	createMemberUC createMemberUseCase,
	listMembersUC listMembersUseCase,
	updateMemberUC updateMemberUseCase,
	deleteMemberUC deleteMemberUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createTeamUC:   createTeamUC,
		getTeamUC:      getTeamUC,
		listTeamsUC:    listTeamsUC,
		updateTeamUC:   updateTeamUC,
		deleteTeamUC:   deleteTeamUC,
		createMemberUC: createMemberUC,
		listMembersUC:  listMembersUC,
		updateMemberUC: updateMemberUC,
		deleteMemberUC: deleteMemberUC,
		logger:         logger,
	}
}

// ListTeams godoc
// @Summary List teams
// @Description Teams ordered by name, with member and equipment counts
// @Tags teams
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.TeamDTO}
// @Router /api/teams [get]
func (h *Handler) ListTeams(c *gin.Context) {
	result, err := h.listTeamsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTeam godoc
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team"
// @Success 201 {object} utils.APIResponse{data=dto.TeamDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/teams [post]
func (h *Handler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create team", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTeamUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Team created successfully")
}

// GetTeam godoc
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} utils.APIResponse{data=dto.TeamDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/{id} [get]
func (h *Handler) GetTeam(c *gin.Context) {
	teamID, err := utils.ParseID(c.Param("id"), "team ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTeamUC.Execute(c.Request.Context(), teamID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.TeamDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/{id} [put]
func (h *Handler) UpdateTeam(c *gin.Context) {
	teamID, err := utils.ParseID(c.Param("id"), "team ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTeamRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update team", "team_id", teamID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTeamUC.Execute(c.Request.Context(), req.ToCommand(teamID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Team updated successfully", result)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes the team and its members; equipment and requests lose their team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/{id} [delete]
func (h *Handler) DeleteTeam(c *gin.Context) {
	teamID, err := utils.ParseID(c.Param("id"), "team ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTeamUC.Execute(c.Request.Context(), teamID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Team deleted successfully", nil)
}

// ListTeamMembers godoc
// @Summary List members of a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.MemberDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/{id}/members [get]
func (h *Handler) ListTeamMembers(c *gin.Context) {
	teamID, err := utils.ParseID(c.Param("id"), "team ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{TeamID: &teamID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAllMembers godoc
// @Summary List all members
// @Description Members of every team, ordered by team name then member name
// @Tags teams
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.MemberDTO}
// @Router /api/teams/members [get]
func (h *Handler) ListAllMembers(c *gin.Context) {
	result, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateMember godoc
// @Summary Add a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param member body CreateMemberRequest true "Member"
// @Success 201 {object} utils.APIResponse{data=dto.MemberDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create member", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createMemberUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Team member created successfully")
}

// UpdateMember godoc
// @Summary Update a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body UpdateMemberRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.MemberDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/members/{id} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	memberID, err := utils.ParseID(c.Param("id"), "member ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMemberRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update member", "member_id", memberID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateMemberUC.Execute(c.Request.Context(), req.ToCommand(memberID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Team member updated successfully", result)
}

// DeleteMember godoc
// @Summary Remove a team member
// @Tags teams
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/teams/members/{id} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
	memberID, err := utils.ParseID(c.Param("id"), "member ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteMemberUC.Execute(c.Request.Context(), memberID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Team member deleted successfully", nil)
}
