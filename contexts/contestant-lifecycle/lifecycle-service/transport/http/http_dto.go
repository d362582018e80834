package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OnboardingPatchRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	StageName *string `json:"stage_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Category  *string `json:"category,omitempty"`
}

type CompliancePatchRequest struct {
	LegalName     *string `json:"legal_name,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Country       *string `json:"country,omitempty"`
	DocumentRef   *string `json:"document_ref,omitempty"`
	TermsAccepted *bool   `json:"terms_accepted,omitempty"`
	DataConsent   *bool   `json:"data_consent,omitempty"`
}

type ProfilePatchRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Biography   *string `json:"biography,omitempty"`
	Category    *string `json:"category,omitempty"`
	Location    *string `json:"location,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	TikTok      *string `json:"tiktok,omitempty"`
	YouTube     *string `json:"youtube,omitempty"`
	Website     *string `json:"website,omitempty"`
}

type AddMediaRequest struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SubmissionStatusRequest struct {
	Status string `json:"status"`
}

type AdminReviewRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

type CreateChangeRequestRequest struct {
	Type    string         `json:"type"`
	Reason  string         `json:"reason"`
	Payload map[string]any `json:"payload"`
}

type ReviewChangeRequestRequest struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}

type OnboardingData struct {
	FullName  string `json:"full_name"`
	StageName string `json:"stage_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Category  string `json:"category"`
}

type ComplianceData struct {
	LegalName     string `json:"legal_name"`
	BirthDate     string `json:"birth_date"`
	Country       string `json:"country"`
	DocumentRef   string `json:"document_ref"`
	TermsAccepted bool   `json:"terms_accepted"`
	DataConsent   bool   `json:"data_consent"`
}

type MediaAssetData struct {
	AssetID   string `json:"asset_id"`
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ProfileData struct {
	DisplayName string `json:"display_name"`
	Biography   string `json:"biography"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Instagram   string `json:"instagram,omitempty"`
	TikTok      string `json:"tiktok,omitempty"`
	YouTube     string `json:"youtube,omitempty"`
	Website     string `json:"website,omitempty"`
}

type RecordsData struct {
	ContestantID string           `json:"contestant_id"`
	Onboarding   OnboardingData   `json:"onboarding"`
	Compliance   ComplianceData   `json:"compliance"`
	Media        []MediaAssetData `json:"media"`
	Profile      ProfileData      `json:"profile"`
}

type ReadinessCheckData struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Passed bool   `json:"passed"`
}

type ReadinessData struct {
	Score  int                  `json:"score"`
	Checks []ReadinessCheckData `json:"checks"`
}

type PublishingData struct {
	SubmissionStatus  string `json:"submission_status"`
	AdminReviewStatus string `json:"admin_review_status"`
	Published         bool   `json:"published"`
	ProfileLocked     bool   `json:"profile_locked"`
	Phase             string `json:"phase"`
	RejectionReason   string `json:"rejection_reason,omitempty"`
}

type ChangeRequestData struct {
	RequestID   string         `json:"request_id"`
	Type        string         `json:"type"`
	Reason      string         `json:"reason"`
	Payload     map[string]any `json:"payload,omitempty"`
	Status      string         `json:"status"`
	RequestedAt string         `json:"requested_at"`
	ReviewedAt  string         `json:"reviewed_at,omitempty"`
	ReviewNote  string         `json:"review_note,omitempty"`
}

type AuditEntryData struct {
	EntryID   string `json:"entry_id"`
	Action    string `json:"action"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ProfileVersionData struct {
	VersionID     string   `json:"version_id"`
	Label         string   `json:"label"`
	Note          string   `json:"note,omitempty"`
	ChangedFields []string `json:"changed_fields"`
	CreatedAt     string   `json:"created_at"`
}

type VisibilityData struct {
	Slug    string `json:"slug"`
	Visible bool   `json:"visible"`
}

type OnboardingResponse struct {
	Status    string         `json:"status"`
	Data      OnboardingData `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type ComplianceResponse struct {
	Status    string         `json:"status"`
	Data      ComplianceData `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type ProfileResponse struct {
	Status    string      `json:"status"`
	Data      ProfileData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type MediaListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []MediaAssetData `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type MediaAssetResponse struct {
	Status    string         `json:"status"`
	Data      MediaAssetData `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type RecordsResponse struct {
	Status    string      `json:"status"`
	Data      RecordsData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ReadinessResponse struct {
	Status    string        `json:"status"`
	Data      ReadinessData `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type PublishingResponse struct {
	Status    string         `json:"status"`
	Data      PublishingData `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type ChangeRequestResponse struct {
	Status    string            `json:"status"`
	Data      ChangeRequestData `json:"data"`
	Timestamp string            `json:"timestamp"`
}

type ChangeRequestListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []ChangeRequestData `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type AuditTrailResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []AuditEntryData `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type ProfileVersionsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []ProfileVersionData `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type VisibilityResponse struct {
	Status    string         `json:"status"`
	Data      VisibilityData `json:"data"`
	Timestamp string         `json:"timestamp"`
}
