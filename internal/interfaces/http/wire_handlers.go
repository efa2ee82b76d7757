package http

import (
	"gearguard/internal/interfaces/http/handlers"
	equipmentHandlers "gearguard/internal/interfaces/http/handlers/equipment"
	requestHandlers "gearguard/internal/interfaces/http/handlers/requests"
	teamHandlers "gearguard/internal/interfaces/http/handlers/teams"
	"gearguard/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	dashboardHandler *handlers.DashboardHandler
	teamHandler      *teamHandlers.Handler
	equipmentHandler *equipmentHandlers.Handler
	requestHandler   *requestHandlers.Handler
}

func newHandlers(ucs *allUseCases, health *handlers.HealthHandler, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: health,
		dashboardHandler: handlers.NewDashboardHandler(
			ucs.statsUC, ucs.requestsByTeamUC, ucs.equipmentByCategoryUC, ucs.listActivityUC, log,
		),
		teamHandler: teamHandlers.NewHandler(
			ucs.createTeamUC, ucs.getTeamUC, ucs.listTeamsUC, ucs.updateTeamUC, ucs.deleteTeamUC,
			ucs.createMemberUC, ucs.listMembersUC, ucs.updateMemberUC, ucs.deleteMemberUC,
			log,
		),
		equipmentHandler: equipmentHandlers.NewHandler(
			ucs.createEquipmentUC, ucs.getEquipmentUC, ucs.listEquipmentUC, ucs.updateEquipmentUC,
			ucs.deleteEquipmentUC, ucs.exportEquipmentUC, ucs.listRequestsUC,
			log,
		),
		requestHandler: requestHandlers.NewHandler(
			ucs.createRequestUC, ucs.getRequestUC, ucs.listRequestsUC, ucs.updateRequestUC,
			ucs.changeStageUC, ucs.deleteRequestUC, ucs.kanbanUC, ucs.calendarUC,
			log,
		),
	}
}
