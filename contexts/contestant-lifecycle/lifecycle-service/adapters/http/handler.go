package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"starcast/contexts/contestant-lifecycle/lifecycle-service/application"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/domain/entities"
	httptransport "starcast/contexts/contestant-lifecycle/lifecycle-service/transport/http"
	"starcast/internal/shared/audit"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetRecordsHandler(ctx context.Context) (httptransport.RecordsResponse, error) {
	records, err := h.Service.Records(ctx)
	if err != nil {
		return httptransport.RecordsResponse{}, err
	}
	return httptransport.RecordsResponse{
		Status:    "success",
		Data:      mapRecordsData(records),
		Timestamp: stamp(),
	}, nil
}

func (h Handler) GetOnboardingHandler(ctx context.Context) (httptransport.OnboardingResponse, error) {
	record, err := h.Service.Onboarding(ctx)
	if err != nil {
		return httptransport.OnboardingResponse{}, err
	}
	return httptransport.OnboardingResponse{Status: "success", Data: mapOnboardingData(record), Timestamp: stamp()}, nil
}

func (h Handler) UpdateOnboardingHandler(ctx context.Context, req httptransport.OnboardingPatchRequest) (httptransport.OnboardingResponse, error) {
	record, err := h.Service.UpdateOnboarding(ctx, entities.OnboardingPatch{
		FullName:  req.FullName,
		StageName: req.StageName,
		Email:     req.Email,
		Phone:     req.Phone,
		Category:  req.Category,
	})
	if err != nil {
		return httptransport.OnboardingResponse{}, err
	}
	return httptransport.OnboardingResponse{Status: "success", Data: mapOnboardingData(record), Timestamp: stamp()}, nil
}

func (h Handler) GetComplianceHandler(ctx context.Context) (httptransport.ComplianceResponse, error) {
	record, err := h.Service.Compliance(ctx)
	if err != nil {
		return httptransport.ComplianceResponse{}, err
	}
	return httptransport.ComplianceResponse{Status: "success", Data: mapComplianceData(record), Timestamp: stamp()}, nil
}

func (h Handler) UpdateComplianceHandler(ctx context.Context, req httptransport.CompliancePatchRequest) (httptransport.ComplianceResponse, error) {
	record, err := h.Service.UpdateCompliance(ctx, entities.CompliancePatch{
		LegalName:     req.LegalName,
		BirthDate:     req.BirthDate,
		Country:       req.Country,
		DocumentRef:   req.DocumentRef,
		TermsAccepted: req.TermsAccepted,
		DataConsent:   req.DataConsent,
	})
	if err != nil {
		return httptransport.ComplianceResponse{}, err
	}
	return httptransport.ComplianceResponse{Status: "success", Data: mapComplianceData(record), Timestamp: stamp()}, nil
}

func (h Handler) GetProfileHandler(ctx context.Context) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.Profile(ctx)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Status: "success", Data: mapProfileData(profile), Timestamp: stamp()}, nil
}

func (h Handler) UpdateProfileHandler(ctx context.Context, req httptransport.ProfilePatchRequest) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.UpdateProfile(ctx, entities.ProfilePatch{
		DisplayName: req.DisplayName,
		Biography:   req.Biography,
		Category:    req.Category,
		Location:    req.Location,
		Instagram:   req.Instagram,
		TikTok:      req.TikTok,
		YouTube:     req.YouTube,
		Website:     req.Website,
	})
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Status: "success", Data: mapProfileData(profile), Timestamp: stamp()}, nil
}

func (h Handler) ListMediaHandler(ctx context.Context) (httptransport.MediaListResponse, error) {
	items, err := h.Service.Media(ctx)
	if err != nil {
		return httptransport.MediaListResponse{}, err
	}
	resp := httptransport.MediaListResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Items = make([]httptransport.MediaAssetData, 0, len(items))
	for _, item := range items {
		resp.Data.Items = append(resp.Data.Items, mapMediaAssetData(item))
	}
	return resp, nil
}

func (h Handler) AddMediaHandler(ctx context.Context, req httptransport.AddMediaRequest) (httptransport.MediaAssetResponse, error) {
	asset, err := h.Service.AddMedia(ctx, req.Kind, req.Label, req.URL)
	if err != nil {
		return httptransport.MediaAssetResponse{}, err
	}
	return httptransport.MediaAssetResponse{Status: "success", Data: mapMediaAssetData(asset), Timestamp: stamp()}, nil
}

func (h Handler) ReadinessHandler(ctx context.Context) (httptransport.ReadinessResponse, error) {
	report, err := h.Service.Readiness(ctx)
	if err != nil {
		return httptransport.ReadinessResponse{}, err
	}
	resp := httptransport.ReadinessResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Score = report.Score
	resp.Data.Checks = make([]httptransport.ReadinessCheckData, 0, len(report.Checks))
	for _, check := range report.Checks {
		resp.Data.Checks = append(resp.Data.Checks, httptransport.ReadinessCheckData{
			Key:    check.Key,
			Title:  check.Title,
			Passed: check.Passed,
		})
	}
	return resp, nil
}

func (h Handler) GetPublishingHandler(ctx context.Context) (httptransport.PublishingResponse, error) {
	state, err := h.Service.Publishing(ctx)
	if err != nil {
		return httptransport.PublishingResponse{}, err
	}
	return httptransport.PublishingResponse{Status: "success", Data: mapPublishingData(state), Timestamp: stamp()}, nil
}

func (h Handler) SetSubmissionStatusHandler(ctx context.Context, req httptransport.SubmissionStatusRequest) (httptransport.PublishingResponse, error) {
	state, err := h.Service.SetSubmissionStatus(ctx, req.Status)
	if err != nil {
		return httptransport.PublishingResponse{}, err
	}
	return httptransport.PublishingResponse{Status: "success", Data: mapPublishingData(state), Timestamp: stamp()}, nil
}

func (h Handler) AdminReviewHandler(ctx context.Context, idempotencyKey string, req httptransport.AdminReviewRequest) (httptransport.PublishingResponse, error) {
	state, err := h.Service.AdminReview(ctx, idempotencyKey, req.Action, req.Reason)
	if err != nil {
		return httptransport.PublishingResponse{}, err
	}
	return httptransport.PublishingResponse{Status: "success", Data: mapPublishingData(state), Timestamp: stamp()}, nil
}

func (h Handler) CreateChangeRequestHandler(ctx context.Context, idempotencyKey string, req httptransport.CreateChangeRequestRequest) (httptransport.ChangeRequestResponse, error) {
	request, err := h.Service.CreateChangeRequest(ctx, idempotencyKey, req.Type, req.Reason, req.Payload)
	if err != nil {
		return httptransport.ChangeRequestResponse{}, err
	}
	return httptransport.ChangeRequestResponse{Status: "success", Data: mapChangeRequestData(request), Timestamp: stamp()}, nil
}

func (h Handler) ListChangeRequestsHandler(ctx context.Context) (httptransport.ChangeRequestListResponse, error) {
	items, err := h.Service.ListChangeRequests(ctx)
	if err != nil {
		return httptransport.ChangeRequestListResponse{}, err
	}
	resp := httptransport.ChangeRequestListResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Items = make([]httptransport.ChangeRequestData, 0, len(items))
	for _, item := range items {
		resp.Data.Items = append(resp.Data.Items, mapChangeRequestData(item))
	}
	return resp, nil
}

func (h Handler) ReviewChangeRequestHandler(ctx context.Context, idempotencyKey string, requestID string, req httptransport.ReviewChangeRequestRequest) (httptransport.ChangeRequestResponse, error) {
	request, err := h.Service.ReviewChangeRequest(ctx, idempotencyKey, requestID, req.Action, req.Note)
	if err != nil {
		return httptransport.ChangeRequestResponse{}, err
	}
	return httptransport.ChangeRequestResponse{Status: "success", Data: mapChangeRequestData(request), Timestamp: stamp()}, nil
}

func (h Handler) AuditTrailHandler(ctx context.Context) (httptransport.AuditTrailResponse, error) {
	items := h.Service.AuditTrail(ctx)
	resp := httptransport.AuditTrailResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Items = make([]httptransport.AuditEntryData, 0, len(items))
	for _, item := range items {
		resp.Data.Items = append(resp.Data.Items, mapAuditEntryData(item))
	}
	return resp, nil
}

func (h Handler) ProfileVersionsHandler(ctx context.Context) (httptransport.ProfileVersionsResponse, error) {
	items, err := h.Service.ProfileVersions(ctx)
	if err != nil {
		return httptransport.ProfileVersionsResponse{}, err
	}
	resp := httptransport.ProfileVersionsResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Items = make([]httptransport.ProfileVersionData, 0, len(items))
	for _, item := range items {
		resp.Data.Items = append(resp.Data.Items, httptransport.ProfileVersionData{
			VersionID:     item.VersionID,
			Label:         item.Label,
			Note:          item.Note,
			ChangedFields: item.ChangedFields,
			CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) VisibilityHandler(ctx context.Context, slug string) (httptransport.VisibilityResponse, error) {
	visible, err := h.Service.CheckVisibility(ctx, slug)
	if err != nil {
		return httptransport.VisibilityResponse{}, err
	}
	return httptransport.VisibilityResponse{
		Status:    "success",
		Data:      httptransport.VisibilityData{Slug: slug, Visible: visible},
		Timestamp: stamp(),
	}, nil
}

func mapRecordsData(records entities.ContestantRecords) httptransport.RecordsData {
	media := make([]httptransport.MediaAssetData, 0, len(records.Media))
	for _, item := range records.Media {
		media = append(media, mapMediaAssetData(item))
	}
	return httptransport.RecordsData{
		ContestantID: records.ContestantID,
		Onboarding:   mapOnboardingData(records.Onboarding),
		Compliance:   mapComplianceData(records.Compliance),
		Media:        media,
		Profile:      mapProfileData(records.Profile),
	}
}

func mapOnboardingData(record entities.OnboardingRecord) httptransport.OnboardingData {
	return httptransport.OnboardingData{
		FullName:  record.FullName,
		StageName: record.StageName,
		Email:     record.Email,
		Phone:     record.Phone,
		Category:  record.Category,
	}
}

func mapComplianceData(record entities.ComplianceRecord) httptransport.ComplianceData {
	return httptransport.ComplianceData{
		LegalName:     record.LegalName,
		BirthDate:     record.BirthDate,
		Country:       record.Country,
		DocumentRef:   record.DocumentRef,
		TermsAccepted: record.TermsAccepted,
		DataConsent:   record.DataConsent,
	}
}

func mapProfileData(profile entities.PublicProfile) httptransport.ProfileData {
	return httptransport.ProfileData{
		DisplayName: profile.DisplayName,
		Biography:   profile.Biography,
		Category:    profile.Category,
		Location:    profile.Location,
		Instagram:   profile.Handles.Instagram,
		TikTok:      profile.Handles.TikTok,
		YouTube:     profile.Handles.YouTube,
		Website:     profile.Handles.Website,
	}
}

func mapMediaAssetData(asset entities.MediaAsset) httptransport.MediaAssetData {
	return httptransport.MediaAssetData{
		AssetID:   asset.AssetID,
		Kind:      string(asset.Kind),
		Label:     asset.Label,
		URL:       asset.URL,
		Status:    string(asset.Status),
		CreatedAt: asset.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapPublishingData(state entities.PublishingState) httptransport.PublishingData {
	return httptransport.PublishingData{
		SubmissionStatus:  string(state.SubmissionStatus),
		AdminReviewStatus: string(state.AdminReviewStatus),
		Published:         state.Published(),
		ProfileLocked:     state.ProfileLocked(),
		Phase:             state.Phase(),
		RejectionReason:   state.RejectionReason,
	}
}

func mapChangeRequestData(request entities.ChangeRequest) httptransport.ChangeRequestData {
	data := httptransport.ChangeRequestData{
		RequestID:   request.RequestID,
		Type:        string(request.Type),
		Reason:      request.Reason,
		Payload:     request.Payload,
		Status:      string(request.Status),
		RequestedAt: request.RequestedAt.UTC().Format(time.RFC3339),
		ReviewNote:  request.ReviewNote,
	}
	if request.ReviewedAt != nil {
		data.ReviewedAt = request.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return data
}

func mapAuditEntryData(entry audit.Entry) httptransport.AuditEntryData {
	return httptransport.AuditEntryData{
		EntryID:   entry.EntryID,
		Action:    entry.Action,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
