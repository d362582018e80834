package entities

import "time"

type CaseStatus string
type CaseAction string
type CaseSeverity string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusMonitoring CaseStatus = "monitoring"
	CaseStatusResolved   CaseStatus = "resolved"

	CaseActionMonitor CaseAction = "monitor"
	CaseActionResolve CaseAction = "resolve"
	CaseActionReopen  CaseAction = "reopen"

	CaseSeverityHigh   CaseSeverity = "high"
	CaseSeverityMedium CaseSeverity = "medium"
	CaseSeverityLow    CaseSeverity = "low"
)

func IsSupportedCaseAction(value CaseAction) bool {
	switch value {
	case CaseActionMonitor, CaseActionResolve, CaseActionReopen:
		return true
	default:
		return false
	}
}

type CaseNote struct {
	NoteID  string
	Body    string
	AddedAt time.Time
}

// SecurityCase is one triage item against the contestant workspace. The
// status is an unordered label: any action is valid from any state, unlike
// the publishing machine which enforces a path.
type SecurityCase struct {
	CaseID          string
	Type            string
	Severity        CaseSeverity
	Status          CaseStatus
	Summary         string
	RemediationPlan string
	Notes           []CaseNote
	DetectedAt      time.Time
	UpdatedAt       time.Time
}

func (c *SecurityCase) ApplyAction(action CaseAction, now time.Time) bool {
	switch action {
	case CaseActionMonitor:
		c.Status = CaseStatusMonitoring
	case CaseActionResolve:
		c.Status = CaseStatusResolved
	case CaseActionReopen:
		c.Status = CaseStatusOpen
	default:
		return false
	}
	c.UpdatedAt = now.UTC()
	return true
}

func (c *SecurityCase) AppendNote(noteID string, body string, now time.Time) CaseNote {
	note := CaseNote{
		NoteID:  noteID,
		Body:    body,
		AddedAt: now.UTC(),
	}
	c.Notes = append(c.Notes, note)
	c.UpdatedAt = now.UTC()
	return note
}
