package dto

import (
	"gearguard/internal/domain/equipment"
	"gearguard/internal/domain/maintenance"
	"gearguard/internal/shared/mapper"
)

// StatsDTO is the dashboard header. Every figure is computed at read time.
type StatsDTO struct {
	TotalEquipment   int64 `json:"total_equipment"`
	ActiveRequests   int64 `json:"active_requests"`
	OverdueRequests  int64 `json:"overdue_requests"`
	TotalTeams       int64 `json:"total_teams"`
	CriticalRequests int64 `json:"critical_requests"`
}

type TeamCountDTO struct {
	TeamID uint   `json:"team_id"`
	Team   string `json:"team"`
	Count  int64  `json:"count"`
}

type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func ToTeamCountDTOs(rows []maintenance.TeamCount) []*TeamCountDTO {
	return mapper.MapSlice(rows, func(r maintenance.TeamCount) *TeamCountDTO {
		return &TeamCountDTO{TeamID: r.TeamID, Team: r.TeamName, Count: r.Count}
	})
}

func ToCategoryCountDTOs(rows []equipment.CategoryCount) []*CategoryCountDTO {
	return mapper.MapSlice(rows, func(r equipment.CategoryCount) *CategoryCountDTO {
		return &CategoryCountDTO{Category: r.Category, Count: r.Count}
	})
}
