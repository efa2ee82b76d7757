package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Storage drivers
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTeams               = "teams"
	TableTeamMembers         = "team_members"
	TableEquipment           = "equipment"
	TableMaintenanceRequests = "maintenance_requests"
	TableActivityLog         = "activity_log"

	// Date layout used on the wire and in date-only columns
	DateLayout = "2006-01-02"

	// Activity log
	DefaultActivityLimit = 10
	MaxActivityLimit     = 200

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
