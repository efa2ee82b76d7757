package http

import (
	activityUsecases "gearguard/internal/application/activity/usecases"
	dashboardUsecases "gearguard/internal/application/dashboard/usecases"
	equipmentUsecases "gearguard/internal/application/equipment/usecases"
	maintenanceUsecases "gearguard/internal/application/maintenance/usecases"
	teamUsecases "gearguard/internal/application/team/usecases"
	"gearguard/internal/infrastructure/export"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Team
	createTeamUC   *teamUsecases.CreateTeamUseCase
	getTeamUC      *teamUsecases.GetTeamUseCase
	listTeamsUC    *teamUsecases.ListTeamsUseCase
	updateTeamUC   *teamUsecases.UpdateTeamUseCase
	deleteTeamUC   *teamUsecases.DeleteTeamUseCase
	createMemberUC *teamUsecases.CreateMemberUseCase
	listMembersUC  *teamUsecases.ListMembersUseCase
	updateMemberUC *teamUsecases.UpdateMemberUseCase
	deleteMemberUC *teamUsecases.DeleteMemberUseCase

	// Equipment
	createEquipmentUC *equipmentUsecases.CreateEquipmentUseCase
	getEquipmentUC    *equipmentUsecases.GetEquipmentUseCase
	listEquipmentUC   *equipmentUsecases.ListEquipmentUseCase
	updateEquipmentUC *equipmentUsecases.UpdateEquipmentUseCase
	deleteEquipmentUC *equipmentUsecases.DeleteEquipmentUseCase
	exportEquipmentUC *equipmentUsecases.ExportEquipmentUseCase

	// Maintenance requests
	createRequestUC *maintenanceUsecases.CreateRequestUseCase
	getRequestUC    *maintenanceUsecases.GetRequestUseCase
	listRequestsUC  *maintenanceUsecases.ListRequestsUseCase
	updateRequestUC *maintenanceUsecases.UpdateRequestUseCase
	changeStageUC   *maintenanceUsecases.ChangeStageUseCase
	deleteRequestUC *maintenanceUsecases.DeleteRequestUseCase
	kanbanUC        *maintenanceUsecases.GetKanbanUseCase
	calendarUC      *maintenanceUsecases.GetCalendarUseCase

	// Dashboard & activity
	statsUC               *dashboardUsecases.GetStatsUseCase
	requestsByTeamUC      *dashboardUsecases.RequestsByTeamUseCase
	equipmentByCategoryUC *dashboardUsecases.EquipmentByCategoryUseCase
	listActivityUC        *activityUsecases.ListActivityUseCase
}

func newUseCases(repos *repositories, txMgr db.Runner, renderer markdown.Renderer, log logger.Interface) *allUseCases {
	return &allUseCases{
		createTeamUC: teamUsecases.NewCreateTeamUseCase(repos.teamRepo, log),
		getTeamUC:    teamUsecases.NewGetTeamUseCase(repos.teamRepo, log),
		listTeamsUC:  teamUsecases.NewListTeamsUseCase(repos.teamRepo, log),
		updateTeamUC: teamUsecases.NewUpdateTeamUseCase(repos.teamRepo, txMgr, log),
		// Equipment and requests outlive their team; members do not.
		deleteTeamUC: teamUsecases.NewDeleteTeamUseCase(
			repos.teamRepo, repos.memberRepo, txMgr, log,
			repos.equipmentRepo, repos.requestRepo,
		),
		createMemberUC: teamUsecases.NewCreateMemberUseCase(repos.teamRepo, repos.memberRepo, txMgr, log),
		listMembersUC:  teamUsecases.NewListMembersUseCase(repos.teamRepo, repos.memberRepo, log),
		updateMemberUC: teamUsecases.NewUpdateMemberUseCase(repos.teamRepo, repos.memberRepo, txMgr, log),
		deleteMemberUC: teamUsecases.NewDeleteMemberUseCase(repos.memberRepo, log),

		createEquipmentUC: equipmentUsecases.NewCreateEquipmentUseCase(repos.equipmentRepo, repos.teamRepo, repos.activityRepo, txMgr, log),
		getEquipmentUC:    equipmentUsecases.NewGetEquipmentUseCase(repos.equipmentRepo, log),
		listEquipmentUC:   equipmentUsecases.NewListEquipmentUseCase(repos.equipmentRepo, log),
		updateEquipmentUC: equipmentUsecases.NewUpdateEquipmentUseCase(repos.equipmentRepo, repos.teamRepo, repos.activityRepo, txMgr, log),
		deleteEquipmentUC: equipmentUsecases.NewDeleteEquipmentUseCase(repos.equipmentRepo, repos.requestRepo, txMgr, log),
		exportEquipmentUC: equipmentUsecases.NewExportEquipmentUseCase(repos.equipmentRepo, export.WriteEquipment, log),

		createRequestUC: maintenanceUsecases.NewCreateRequestUseCase(repos.requestRepo, repos.equipmentRepo, repos.activityRepo, txMgr, renderer, log),
		getRequestUC:    maintenanceUsecases.NewGetRequestUseCase(repos.requestRepo, renderer, log),
		listRequestsUC:  maintenanceUsecases.NewListRequestsUseCase(repos.requestRepo, repos.equipmentRepo, renderer, log),
		updateRequestUC: maintenanceUsecases.NewUpdateRequestUseCase(repos.requestRepo, repos.equipmentRepo, repos.activityRepo, txMgr, renderer, log),
		changeStageUC:   maintenanceUsecases.NewChangeStageUseCase(repos.requestRepo, repos.equipmentRepo, repos.activityRepo, txMgr, renderer, log),
		deleteRequestUC: maintenanceUsecases.NewDeleteRequestUseCase(repos.requestRepo, log),
		kanbanUC:        maintenanceUsecases.NewGetKanbanUseCase(repos.requestRepo, renderer, log),
		calendarUC:      maintenanceUsecases.NewGetCalendarUseCase(repos.requestRepo, renderer, log),

		statsUC:               dashboardUsecases.NewGetStatsUseCase(repos.equipmentRepo, repos.requestRepo, repos.teamRepo, log),
		requestsByTeamUC:      dashboardUsecases.NewRequestsByTeamUseCase(repos.requestRepo, log),
		equipmentByCategoryUC: dashboardUsecases.NewEquipmentByCategoryUseCase(repos.equipmentRepo, log),
		listActivityUC:        activityUsecases.NewListActivityUseCase(repos.activityRepo, log),
	}
}
