package authsdk

// ============================================================================
// Login Types
// ============================================================================

// LoginRequest is the body of POST /login. The credentials are forwarded to
// APCIS and never stored.
type LoginRequest struct {
	APCID    string `json:"apc_id" example:"2021-140123"`
	Password string `json:"password" example:"hunter22"`
}

// UserProfile is the local user as returned to clients. Role and department
// are resolved to display codes; the raw foreign keys are never exposed.
type UserProfile struct {
	ID             string  `json:"id" example:"01J8Z8K3R4X9S2M7B5N6C1D0EF"`
	APCID          string  `json:"apc_id" example:"2021-140123"`
	FirstName      string  `json:"first_name" example:"Juan"`
	LastName       string  `json:"last_name" example:"Dela Cruz"`
	Email          string  `json:"email" example:"jdcruz@student.apc.edu.ph"`
	DepartmentCode *string `json:"department_code"`
	Role           string  `json:"role" example:"BORROWER"`
	CreatedAt      string  `json:"created_at" example:"2024-06-01T08:30:00Z"`
	UpdatedAt      string  `json:"updated_at" example:"2024-06-01T08:30:00Z"`
}

// LoginData carries the issued tokens. PahiramToken has the form
// "{id}|{secret}" and is shown exactly once.
type LoginData struct {
	User         UserProfile `json:"user"`
	PahiramToken string      `json:"pahiram_token" example:"01J8Z8K3R4X9S2M7B5N6C1D0EG|9f86d081884c7d65..."`
	APCISToken   string      `json:"apcis_token"`
	ExpiresAt    string      `json:"expires_at" example:"2024-06-02T08:30:00Z"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	Status bool      `json:"status" example:"true"`
	Data   LoginData `json:"data"`
	Method string    `json:"method" example:"POST"`
}

// ============================================================================
// Logout Types
// ============================================================================

// MessageResponse is the success body of the logout endpoints.
type MessageResponse struct {
	Status  bool   `json:"status" example:"true"`
	Message string `json:"message" example:"Logged out"`
	Method  string `json:"method" example:"DELETE"`
}

const (
	MessageLoggedOut          = "Logged out"
	MessageLoggedOutAllDevice = "Logged out from all devices"
)

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz (readyz includes the Checks field).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the status of each dependency probed by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
