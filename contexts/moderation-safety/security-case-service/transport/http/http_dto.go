package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UpdateCaseRequest struct {
	Action string `json:"action,omitempty"`
	Note   string `json:"note,omitempty"`
}

type CaseNoteData struct {
	NoteID  string `json:"note_id"`
	Body    string `json:"body"`
	AddedAt string `json:"added_at"`
}

type CaseData struct {
	CaseID          string         `json:"case_id"`
	Type            string         `json:"type"`
	Severity        string         `json:"severity"`
	Status          string         `json:"status"`
	Summary         string         `json:"summary"`
	RemediationPlan string         `json:"remediation_plan"`
	Notes           []CaseNoteData `json:"notes"`
	DetectedAt      string         `json:"detected_at"`
	UpdatedAt       string         `json:"updated_at"`
}

type CaseResponse struct {
	Status    string   `json:"status"`
	Data      CaseData `json:"data"`
	Timestamp string   `json:"timestamp"`
}

type CaseListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []CaseData `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
