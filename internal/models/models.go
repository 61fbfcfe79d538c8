package models

// Course is one enrollment record from the remote Canvas instance.
// Term is always a non-empty display label, derived heuristically when
// the API does not provide one.
type Course struct {
	ID            int     `json:"id" mapstructure:"id"`
	Name          string  `json:"name" mapstructure:"name"`
	CourseCode    string  `json:"course_code" mapstructure:"course_code"`
	WorkflowState string  `json:"workflow_state" mapstructure:"workflow_state"`
	Term          string  `json:"term" mapstructure:"term"`
	StartAt       *string `json:"start_at" mapstructure:"start_at"`
	EndAt         *string `json:"end_at" mapstructure:"end_at"`
}

// CourseRecord is the raw shape of a course as it arrives from the
// API, before construction defaults are applied. Pointer fields
// distinguish an absent key from a present-but-empty value.
type CourseRecord struct {
	ID            int         `mapstructure:"id"`
	Name          *string     `mapstructure:"name"`
	CourseCode    *string     `mapstructure:"course_code"`
	WorkflowState *string     `mapstructure:"workflow_state"`
	Term          *TermRecord `mapstructure:"term"`
	StartAt       *string     `mapstructure:"start_at"`
	EndAt         *string     `mapstructure:"end_at"`
}

// TermRecord is the embedded term object some Canvas endpoints include.
type TermRecord struct {
	Name string `mapstructure:"name"`
}

// Course builds the Course entity from the record, filling the
// defaults for fields the API omitted entirely.
func (r CourseRecord) Course(termLabel string) Course {
	c := Course{
		ID:            r.ID,
		Name:          "Unknown Course",
		WorkflowState: "available",
		Term:          termLabel,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.CourseCode != nil {
		c.CourseCode = *r.CourseCode
	}
	if r.WorkflowState != nil {
		c.WorkflowState = *r.WorkflowState
	}
	return c
}

// CourseCache is the snapshot persisted after every successful refresh
// so the dashboard has data available without network access.
type CourseCache struct {
	Courses      []Course `json:"courses"`
	LastUpdated  string   `json:"last_updated"`
	TotalCourses int      `json:"total_courses"`
}

// ConnectionConfig is the persisted connection state. It shares one
// JSON file with the hidden-course set and the install identifier.
type ConnectionConfig struct {
	CanvasURL     string `json:"canvas_url" mapstructure:"canvas_url"`
	CanvasToken   string `json:"canvas_token" mapstructure:"canvas_token"`
	HiddenCourses []int  `json:"hidden_courses" mapstructure:"hidden_courses"`
	InstallID     string `json:"install_id" mapstructure:"install_id"`
	LastUpdated   string `json:"last_updated" mapstructure:"last_updated"`
}

// SaveConfigRequest is the parameter struct for the save-config and
// test-connection endpoints.
type SaveConfigRequest struct {
	CanvasURL   string `json:"canvas_url"`
	CanvasToken string `json:"canvas_token"`
}

// SaveNoteRequest is the parameter struct for the save-note endpoint.
type SaveNoteRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ConfigResponse reports the saved connection without ever echoing the
// token itself.
type ConfigResponse struct {
	CanvasURL string `json:"canvas_url"`
	HasToken  bool   `json:"has_token"`
}

type TestConnectionResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	CourseCount int    `json:"course_count"`
}

// UpdateInfo is the update-check payload. A failed feed lookup fills
// Error and reports no update rather than failing the request.
type UpdateInfo struct {
	HasUpdate      bool   `json:"has_update"`
	CurrentVersion string `json:"current_version"`
	LatestVersion  string `json:"latest_version"`
	InstallID      string `json:"install_id,omitempty"`
	Error          string `json:"error,omitempty"`
}
