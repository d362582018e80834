package entities

import (
	"strings"
	"time"
)

type MediaKind string
type MediaStatus string

const (
	MediaKindProfilePhoto MediaKind = "profile_photo"
	MediaKindGalleryImage MediaKind = "gallery_image"
	MediaKindIntroVideo   MediaKind = "intro_video"

	MediaStatusPending  MediaStatus = "pending"
	MediaStatusApproved MediaStatus = "approved"
	MediaStatusRejected MediaStatus = "rejected"
)

func IsSupportedMediaKind(value MediaKind) bool {
	switch value {
	case MediaKindProfilePhoto, MediaKindGalleryImage, MediaKindIntroVideo:
		return true
	default:
		return false
	}
}

// OnboardingRecord holds the contestant's legal/contact identity.
type OnboardingRecord struct {
	FullName  string
	StageName string
	Email     string
	Phone     string
	Category  string
}

// ComplianceRecord holds legal and consent data. Both consent flags must be
// true before readiness counts compliance as complete.
type ComplianceRecord struct {
	LegalName     string
	BirthDate     string
	Country       string
	DocumentRef   string
	TermsAccepted bool
	DataConsent   bool
}

func (c ComplianceRecord) ConsentsComplete() bool {
	return c.TermsAccepted && c.DataConsent
}

// MediaAsset rows are append-only; corrections create a new asset or go
// through the change request path.
type MediaAsset struct {
	AssetID   string
	Kind      MediaKind
	Label     string
	URL       string
	Status    MediaStatus
	CreatedAt time.Time
}

type SocialHandles struct {
	Instagram string
	TikTok    string
	YouTube   string
	Website   string
}

// PublicProfile is what the voting audience sees once publishing approves.
type PublicProfile struct {
	DisplayName string
	Biography   string
	Category    string
	Location    string
	Handles     SocialHandles
}

// ContestantRecords is the read-all snapshot of one contestant workspace.
type ContestantRecords struct {
	ContestantID string
	Onboarding   OnboardingRecord
	Compliance   ComplianceRecord
	Media        []MediaAsset
	Profile      PublicProfile
}

// OnboardingPatch is a shallow merge: nil fields are preserved.
type OnboardingPatch struct {
	FullName  *string
	StageName *string
	Email     *string
	Phone     *string
	Category  *string
}

func (p OnboardingPatch) IsEmpty() bool {
	return p.FullName == nil && p.StageName == nil && p.Email == nil &&
		p.Phone == nil && p.Category == nil
}

func (p OnboardingPatch) Fields() []string {
	var fields []string
	if p.FullName != nil {
		fields = append(fields, "full_name")
	}
	if p.StageName != nil {
		fields = append(fields, "stage_name")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.Category != nil {
		fields = append(fields, "category")
	}
	return fields
}

func (p OnboardingPatch) ApplyTo(record *OnboardingRecord) {
	if p.FullName != nil {
		record.FullName = strings.TrimSpace(*p.FullName)
	}
	if p.StageName != nil {
		record.StageName = strings.TrimSpace(*p.StageName)
	}
	if p.Email != nil {
		record.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		record.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Category != nil {
		record.Category = strings.TrimSpace(*p.Category)
	}
}

type CompliancePatch struct {
	LegalName     *string
	BirthDate     *string
	Country       *string
	DocumentRef   *string
	TermsAccepted *bool
	DataConsent   *bool
}

func (p CompliancePatch) IsEmpty() bool {
	return p.LegalName == nil && p.BirthDate == nil && p.Country == nil &&
		p.DocumentRef == nil && p.TermsAccepted == nil && p.DataConsent == nil
}

func (p CompliancePatch) Fields() []string {
	var fields []string
	if p.LegalName != nil {
		fields = append(fields, "legal_name")
	}
	if p.BirthDate != nil {
		fields = append(fields, "birth_date")
	}
	if p.Country != nil {
		fields = append(fields, "country")
	}
	if p.DocumentRef != nil {
		fields = append(fields, "document_ref")
	}
	if p.TermsAccepted != nil {
		fields = append(fields, "terms_accepted")
	}
	if p.DataConsent != nil {
		fields = append(fields, "data_consent")
	}
	return fields
}

func (p CompliancePatch) ApplyTo(record *ComplianceRecord) {
	if p.LegalName != nil {
		record.LegalName = strings.TrimSpace(*p.LegalName)
	}
	if p.BirthDate != nil {
		record.BirthDate = strings.TrimSpace(*p.BirthDate)
	}
	if p.Country != nil {
		record.Country = strings.TrimSpace(*p.Country)
	}
	if p.DocumentRef != nil {
		record.DocumentRef = strings.TrimSpace(*p.DocumentRef)
	}
	if p.TermsAccepted != nil {
		record.TermsAccepted = *p.TermsAccepted
	}
	if p.DataConsent != nil {
		record.DataConsent = *p.DataConsent
	}
}

type ProfilePatch struct {
	DisplayName *string
	Biography   *string
	Category    *string
	Location    *string
	Instagram   *string
	TikTok      *string
	YouTube     *string
	Website     *string
}

func (p ProfilePatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

func (p ProfilePatch) Fields() []string {
	var fields []string
	if p.DisplayName != nil {
		fields = append(fields, "display_name")
	}
	if p.Biography != nil {
		fields = append(fields, "biography")
	}
	if p.Category != nil {
		fields = append(fields, "category")
	}
	if p.Location != nil {
		fields = append(fields, "location")
	}
	if p.Instagram != nil {
		fields = append(fields, "instagram")
	}
	if p.TikTok != nil {
		fields = append(fields, "tiktok")
	}
	if p.YouTube != nil {
		fields = append(fields, "youtube")
	}
	if p.Website != nil {
		fields = append(fields, "website")
	}
	return fields
}

func (p ProfilePatch) ApplyTo(profile *PublicProfile) {
	if p.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*p.DisplayName)
	}
	if p.Biography != nil {
		profile.Biography = strings.TrimSpace(*p.Biography)
	}
	if p.Category != nil {
		profile.Category = strings.TrimSpace(*p.Category)
	}
	if p.Location != nil {
		profile.Location = strings.TrimSpace(*p.Location)
	}
	if p.Instagram != nil {
		profile.Handles.Instagram = strings.TrimSpace(*p.Instagram)
	}
	if p.TikTok != nil {
		profile.Handles.TikTok = strings.TrimSpace(*p.TikTok)
	}
	if p.YouTube != nil {
		profile.Handles.YouTube = strings.TrimSpace(*p.YouTube)
	}
	if p.Website != nil {
		profile.Handles.Website = strings.TrimSpace(*p.Website)
	}
}

// ProfileVersionCapacity bounds the versioning ledger.
const ProfileVersionCapacity = 20

// ProfileVersion is one snapshot label in the versioning ledger, independent
// of the audit trail.
type ProfileVersion struct {
	VersionID     string
	Label         string
	Note          string
	ChangedFields []string
	CreatedAt     time.Time
}
