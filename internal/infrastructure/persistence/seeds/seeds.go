// Package seeds loads the demonstration data set into an empty store.
package seeds

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"gearguard/internal/domain/equipment"
	"gearguard/internal/domain/maintenance"
	mvo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/domain/team"
	"gearguard/internal/infrastructure/persistence/mappers"
	"gearguard/internal/infrastructure/persistence/models"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/logger"
)

//go:embed seed_data.yaml
var seedYAML []byte

type Data struct {
	Teams     []TeamSeed      `yaml:"teams"`
	Members   []MemberSeed    `yaml:"members"`
	Equipment []EquipmentSeed `yaml:"equipment"`
	Requests  []RequestSeed   `yaml:"requests"`
}

type TeamSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type MemberSeed struct {
	Team  string `yaml:"team"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type EquipmentSeed struct {
	Name             string `yaml:"name"`
	SerialNumber     string `yaml:"serial_number"`
	Category         string `yaml:"category"`
	Department       string `yaml:"department"`
	AssignedEmployee string `yaml:"assigned_employee"`
	PurchaseDate     string `yaml:"purchase_date"`
	WarrantyExpiry   string `yaml:"warranty_expiry"`
	Location         string `yaml:"location"`
	Team             string `yaml:"team"`
	Notes            string `yaml:"notes"`
}

// RequestSeed names its equipment by serial number; team and department
// are taken from that equipment.
type RequestSeed struct {
	Subject            string  `yaml:"subject"`
	EquipmentSerial    string  `yaml:"equipment_serial"`
	RequestType        string  `yaml:"request_type"`
	ScheduledDate      string  `yaml:"scheduled_date"`
	DurationHours      float64 `yaml:"duration_hours"`
	Stage              string  `yaml:"stage"`
	AssignedTechnician string  `yaml:"assigned_technician"`
	Priority           string  `yaml:"priority"`
	Description        string  `yaml:"description"`
}

// Result counts the rows inserted per table.
type Result struct {
	Teams     int
	Members   int
	Equipment int
	Requests  int
}

// Load parses the embedded data set.
func Load() (*Data, error) {
	return Parse(seedYAML)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Seed inserts data into every table that is still empty. Tables that
// already hold rows are left untouched, so running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, data *Data) (Result, error) {
	var result Result
	log := logger.NewLogger().Named("seeds")

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := &seeder{tx: tx, data: data, log: log}
		steps := []struct {
			table string
			model interface{}
			run   func() (int, error)
			count *int
		}{
			{"teams", &models.TeamModel{}, s.teams, &result.Teams},
			{"team_members", &models.TeamMemberModel{}, s.members, &result.Members},
			{"equipment", &models.EquipmentModel{}, s.equipment, &result.Equipment},
			{"maintenance_requests", &models.MaintenanceRequestModel{}, s.requests, &result.Requests},
		}
		for _, step := range steps {
			var existing int64
			if err := tx.Model(step.model).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to count %s: %w", step.table, err)
			}
			if existing > 0 {
				log.Debugw("table already populated, skipping", "table", step.table, "rows", existing)
				continue
			}
			n, err := step.run()
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			*step.count = n
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Infow("seed data applied",
		"teams", result.Teams,
		"members", result.Members,
		"equipment", result.Equipment,
		"requests", result.Requests)
	return result, nil
}

type seeder struct {
	tx   *gorm.DB
	data *Data
	log  logger.Interface
}

// teamID resolves a team by name. ok is false when the team is absent,
// which happens when teams were populated by hand before seeding.
func (s *seeder) teamID(name string) (id uint, ok bool, err error) {
	var model models.TeamModel
	if err := s.tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnw("seed references unknown team, skipping", "team", name)
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("team %q: %w", name, err)
	}
	return model.ID, true, nil
}

func (s *seeder) teams() (int, error) {
	m := mappers.NewTeamMapper()
	for _, seed := range s.data.Teams {
		t, err := team.NewTeam(seed.Name, seed.Description)
		if err != nil {
			return 0, err
		}
		if err := s.tx.Create(m.ToModel(t)).Error; err != nil {
			return 0, err
		}
	}
	return len(s.data.Teams), nil
}

func (s *seeder) members() (int, error) {
	m := mappers.NewTeamMapper()
	inserted := 0
	for _, seed := range s.data.Members {
		teamID, ok, err := s.teamID(seed.Team)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		member, err := team.NewMember(teamID, seed.Name, seed.Role, seed.Email, seed.Phone)
		if err != nil {
			return 0, err
		}
		if err := s.tx.Create(m.MemberToModel(member)).Error; err != nil {
			return 0, err
		}
		inserted++
	}
	return inserted, nil
}

func (s *seeder) equipment() (int, error) {
	m := mappers.NewEquipmentMapper()
	for _, seed := range s.data.Equipment {
		params := equipment.Params{
			Name:             seed.Name,
			SerialNumber:     seed.SerialNumber,
			Category:         seed.Category,
			Department:       seed.Department,
			AssignedEmployee: seed.AssignedEmployee,
			Location:         seed.Location,
			Notes:            seed.Notes,
		}
		var err error
		if params.PurchaseDate, err = optionalDate(seed.PurchaseDate); err != nil {
			return 0, err
		}
		if params.WarrantyExpiry, err = optionalDate(seed.WarrantyExpiry); err != nil {
			return 0, err
		}
		if seed.Team != "" {
			teamID, ok, err := s.teamID(seed.Team)
			if err != nil {
				return 0, err
			}
			if ok {
				params.TeamID = &teamID
			}
		}
		e, err := equipment.NewEquipment(params)
		if err != nil {
			return 0, fmt.Errorf("equipment %q: %w", seed.SerialNumber, err)
		}
		if err := s.tx.Create(m.ToModel(e)).Error; err != nil {
			return 0, err
		}
	}
	return len(s.data.Equipment), nil
}

func (s *seeder) requests() (int, error) {
	m := mappers.NewMaintenanceRequestMapper()
	inserted := 0
	for _, seed := range s.data.Requests {
		var eq models.EquipmentModel
		if err := s.tx.Where("serial_number = ?", seed.EquipmentSerial).First(&eq).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Warnw("seed references unknown equipment, skipping", "serial_number", seed.EquipmentSerial)
				continue
			}
			return 0, fmt.Errorf("equipment %q: %w", seed.EquipmentSerial, err)
		}
		scheduled, err := biztime.ParseDate(seed.ScheduledDate)
		if err != nil {
			return 0, fmt.Errorf("request %q: %w", seed.Subject, err)
		}
		requestType, err := mvo.NewRequestType(seed.RequestType)
		if err != nil {
			return 0, err
		}
		stage, err := mvo.NewStage(seed.Stage)
		if err != nil {
			return 0, err
		}
		priority, err := mvo.NewPriority(seed.Priority)
		if err != nil {
			return 0, err
		}

		r, err := maintenance.NewRequest(maintenance.Params{
			Subject:            seed.Subject,
			EquipmentID:        eq.ID,
			RequestType:        requestType,
			ScheduledDate:      scheduled,
			DurationHours:      seed.DurationHours,
			Stage:              stage,
			AssignedTechnician: seed.AssignedTechnician,
			Priority:           priority,
			Description:        seed.Description,
		})
		if err != nil {
			return 0, fmt.Errorf("request %q: %w", seed.Subject, err)
		}
		r.AssignFromEquipment(eq.TeamID, eq.Department)
		if err := s.tx.Create(m.ToModel(r)).Error; err != nil {
			return 0, err
		}
		inserted++
	}
	return inserted, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
