package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"starcast/contexts/moderation-safety/security-case-service/application"
	"starcast/contexts/moderation-safety/security-case-service/domain/entities"
	httptransport "starcast/contexts/moderation-safety/security-case-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCasesHandler(ctx context.Context) (httptransport.CaseListResponse, error) {
	items, err := h.Service.Cases(ctx)
	if err != nil {
		return httptransport.CaseListResponse{}, err
	}
	resp := httptransport.CaseListResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Items = make([]httptransport.CaseData, 0, len(items))
	for _, item := range items {
		resp.Data.Items = append(resp.Data.Items, mapCaseData(item))
	}
	return resp, nil
}

func (h Handler) UpdateCaseHandler(ctx context.Context, caseID string, req httptransport.UpdateCaseRequest) (httptransport.CaseResponse, error) {
	item, err := h.Service.UpdateCase(ctx, caseID, req.Action, req.Note)
	if err != nil {
		return httptransport.CaseResponse{}, err
	}
	return httptransport.CaseResponse{Status: "success", Data: mapCaseData(item), Timestamp: stamp()}, nil
}

func mapCaseData(item entities.SecurityCase) httptransport.CaseData {
	notes := make([]httptransport.CaseNoteData, 0, len(item.Notes))
	for _, note := range item.Notes {
		notes = append(notes, httptransport.CaseNoteData{
			NoteID:  note.NoteID,
			Body:    note.Body,
			AddedAt: note.AddedAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.CaseData{
		CaseID:          item.CaseID,
		Type:            item.Type,
		Severity:        string(item.Severity),
		Status:          string(item.Status),
		Summary:         item.Summary,
		RemediationPlan: item.RemediationPlan,
		Notes:           notes,
		DetectedAt:      item.DetectedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
