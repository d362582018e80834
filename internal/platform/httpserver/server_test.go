package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	lifecycleservice "starcast/contexts/contestant-lifecycle/lifecycle-service"
	lifecyclehttp "starcast/contexts/contestant-lifecycle/lifecycle-service/transport/http"
	securitycaseservice "starcast/contexts/moderation-safety/security-case-service"
	casehttp "starcast/contexts/moderation-safety/security-case-service/transport/http"
	sponsorofferservice "starcast/contexts/partnerships/sponsor-offer-service"
	offerhttp "starcast/contexts/partnerships/sponsor-offer-service/transport/http"
	"starcast/internal/shared/audit"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	trail := audit.NewTrail(audit.DefaultCapacity)

	lifecycle := lifecycleservice.NewInMemoryModule(logger)
	lifecycle.Service.Audit = trail
	lifecycle.Handler.Service = lifecycle.Service

	offers := sponsorofferservice.NewInMemoryModule(trail, logger)
	cases := securitycaseservice.NewInMemoryModule(trail, logger)

	return New(lifecycle, offers, cases, logger, ":0")
}

func doJSON(t *testing.T, server *Server, method string, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestGetRecordsReturnsSeededWorkspace(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/contestant/v1/records", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp lifecyclehttp.RecordsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("expected success envelope, got %q", resp.Status)
	}
	if resp.Data.ContestantID != "cont_default_1" {
		t.Fatalf("expected seeded contestant, got %q", resp.Data.ContestantID)
	}
	if resp.Data.Profile.DisplayName == "" {
		t.Fatalf("expected a seeded profile display name")
	}
	if resp.Timestamp == "" {
		t.Fatalf("expected a timestamp on the envelope")
	}
}

func TestPatchOnboardingMergesAndPreserves(t *testing.T) {
	server := newTestServer()

	before := doJSON(t, server, http.MethodGet, "/api/contestant/v1/onboarding", nil, nil)
	var prior lifecyclehttp.OnboardingResponse
	if err := json.Unmarshal(before.Body.Bytes(), &prior); err != nil {
		t.Fatalf("decode prior: %v", err)
	}

	rr := doJSON(t, server, http.MethodPatch, "/api/contestant/v1/onboarding",
		[]byte(`{"stage_name":"  Nova  "}`), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp lifecyclehttp.OnboardingResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.StageName != "Nova" {
		t.Fatalf("expected trimmed stage name, got %q", resp.Data.StageName)
	}
	if resp.Data.FullName != prior.Data.FullName {
		t.Fatalf("patch must not touch full_name: got %q want %q", resp.Data.FullName, prior.Data.FullName)
	}
}

func TestPatchProfileRejectsInvalidJSON(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPatch, "/api/contestant/v1/profile", []byte(`{not json`), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	var errResp lifecyclehttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Code != "invalid_json" {
		t.Fatalf("expected invalid_json code, got %q", errResp.Code)
	}
}

func TestAddMediaCreatesPendingAsset(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/contestant/v1/media",
		[]byte(`{"kind":"gallery_image","label":"Press shot","url":"https://cdn.example.com/press.jpg"}`), nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp lifecyclehttp.MediaAssetResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Status != "pending" {
		t.Fatalf("new media must start pending review, got %q", resp.Data.Status)
	}
	if resp.Data.AssetID == "" {
		t.Fatalf("expected a generated asset id")
	}
}

func TestAddMediaRejectsUnknownKind(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/contestant/v1/media",
		[]byte(`{"kind":"hologram","label":"x","url":"https://cdn.example.com/x"}`), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmissionStatusRejectsUnknownValue(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/contestant/v1/submission-status",
		[]byte(`{"status":"archived"}`), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminApprovePublishesProfile(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/contestant/v1/submission-status",
		[]byte(`{"status":"submitted"}`), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("submit failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/contestant/v1/admin-review",
		[]byte(`{"action":"approve"}`), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("approve failed: %d body=%s", rr.Code, rr.Body.String())
	}

	var resp lifecyclehttp.PublishingResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.Published || !resp.Data.ProfileLocked {
		t.Fatalf("approved profile must be published and locked, got %+v", resp.Data)
	}
	if resp.Data.Phase != "approved_published" {
		t.Fatalf("expected approved_published phase, got %q", resp.Data.Phase)
	}
}

func TestAdminReviewIdempotencyKeyReplaysStoredResponse(t *testing.T) {
	server := newTestServer()

	doJSON(t, server, http.MethodPost, "/api/contestant/v1/submission-status",
		[]byte(`{"status":"submitted"}`), nil)

	headers := map[string]string{"Idempotency-Key": "review-1"}
	body := []byte(`{"action":"approve"}`)

	first := doJSON(t, server, http.MethodPost, "/api/contestant/v1/admin-review", body, headers)
	if first.Code != http.StatusOK {
		t.Fatalf("first approve failed: %d body=%s", first.Code, first.Body.String())
	}
	second := doJSON(t, server, http.MethodPost, "/api/contestant/v1/admin-review", body, headers)
	if second.Code != http.StatusOK {
		t.Fatalf("replay failed: %d body=%s", second.Code, second.Body.String())
	}

	var firstResp, secondResp lifecyclehttp.PublishingResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if firstResp.Data != secondResp.Data {
		t.Fatalf("replay must return the stored state:\nfirst:  %+v\nsecond: %+v", firstResp.Data, secondResp.Data)
	}
}

func TestAdminReviewIdempotencyKeyReuseConflicts(t *testing.T) {
	server := newTestServer()

	doJSON(t, server, http.MethodPost, "/api/contestant/v1/submission-status",
		[]byte(`{"status":"submitted"}`), nil)

	headers := map[string]string{"Idempotency-Key": "review-2"}
	first := doJSON(t, server, http.MethodPost, "/api/contestant/v1/admin-review",
		[]byte(`{"action":"approve"}`), headers)
	if first.Code != http.StatusOK {
		t.Fatalf("first approve failed: %d body=%s", first.Code, first.Body.String())
	}

	second := doJSON(t, server, http.MethodPost, "/api/contestant/v1/admin-review",
		[]byte(`{"action":"reject","reason":"quality"}`), headers)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409 on key reuse with a new body, got %d body=%s", second.Code, second.Body.String())
	}
}

func TestReviewChangeRequestErrors(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/contestant/v1/change-requests/cr_missing/review",
		[]byte(`{"action":"approve"}`), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown request, got %d body=%s", rr.Code, rr.Body.String())
	}

	created := doJSON(t, server, http.MethodPost, "/api/contestant/v1/change-requests",
		[]byte(`{"type":"profile","reason":"fix bio","payload":{"biography":"Updated bio"}}`), nil)
	if created.Code != http.StatusCreated {
		t.Fatalf("create change request failed: %d body=%s", created.Code, created.Body.String())
	}
	var cr lifecyclehttp.ChangeRequestResponse
	if err := json.Unmarshal(created.Body.Bytes(), &cr); err != nil {
		t.Fatalf("decode change request: %v", err)
	}

	path := "/api/contestant/v1/change-requests/" + cr.Data.RequestID + "/review"
	first := doJSON(t, server, http.MethodPost, path, []byte(`{"action":"reject","note":"no"}`), nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first review failed: %d body=%s", first.Code, first.Body.String())
	}
	second := doJSON(t, server, http.MethodPost, path, []byte(`{"action":"approve"}`), nil)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double resolve, got %d body=%s", second.Code, second.Body.String())
	}
}

func TestVisibilityReflectsPublicationState(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/contestant/v1/visibility/someone-else", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp lifecyclehttp.VisibilityResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.Visible {
		t.Fatalf("foreign slugs are outside this workspace and stay visible")
	}
}

func TestUpdateOfferAcceptsAndThreadsMessage(t *testing.T) {
	server := newTestServer()

	list := doJSON(t, server, http.MethodGet, "/api/partnerships/v1/offers", nil, nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list offers failed: %d body=%s", list.Code, list.Body.String())
	}
	var offers offerhttp.OfferListResponse
	if err := json.Unmarshal(list.Body.Bytes(), &offers); err != nil {
		t.Fatalf("decode offers: %v", err)
	}
	if len(offers.Data.Items) == 0 {
		t.Fatalf("expected seeded offers")
	}

	offerID := offers.Data.Items[0].OfferID
	rr := doJSON(t, server, http.MethodPost, "/api/partnerships/v1/offers/"+offerID,
		[]byte(`{"action":"accept","message":"Deal."}`), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("update offer failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp offerhttp.OfferResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode offer: %v", err)
	}
	if resp.Data.Status != "accepted" {
		t.Fatalf("expected accepted offer, got %q", resp.Data.Status)
	}
	last := resp.Data.Messages[len(resp.Data.Messages)-1]
	if last.Body != "Deal." || last.Author != "contestant" {
		t.Fatalf("expected threaded contestant message, got %+v", last)
	}
}

func TestUpdateOfferErrors(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/partnerships/v1/offers/offer_missing",
		[]byte(`{"action":"accept"}`), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/partnerships/v1/offers/offer_seed_1",
		[]byte(`{"action":"counter"}`), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateCaseResolvesWithNote(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/security/v1/cases/case_seed_1",
		[]byte(`{"action":"resolve","note":"Rate limiter deployed"}`), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("update case failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp casehttp.CaseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode case: %v", err)
	}
	if resp.Data.Status != "resolved" {
		t.Fatalf("expected resolved case, got %q", resp.Data.Status)
	}
	if len(resp.Data.Notes) == 0 || resp.Data.Notes[len(resp.Data.Notes)-1].Body != "Rate limiter deployed" {
		t.Fatalf("expected the note in the case history, got %+v", resp.Data.Notes)
	}
}

func TestUpdateCaseErrors(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/security/v1/cases/case_missing",
		[]byte(`{"action":"monitor"}`), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/security/v1/cases/case_seed_2",
		[]byte(`{"action":"dismiss"}`), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d body=%s", rr.Code, rr.Body.String())
	}
}
