package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	lifecycleservice "starcast/contexts/contestant-lifecycle/lifecycle-service"
	lifecycleerrors "starcast/contexts/contestant-lifecycle/lifecycle-service/domain/errors"
	lifecyclehttp "starcast/contexts/contestant-lifecycle/lifecycle-service/transport/http"
	securitycaseservice "starcast/contexts/moderation-safety/security-case-service"
	caseerrors "starcast/contexts/moderation-safety/security-case-service/domain/errors"
	casehttp "starcast/contexts/moderation-safety/security-case-service/transport/http"
	sponsorofferservice "starcast/contexts/partnerships/sponsor-offer-service"
	offererrors "starcast/contexts/partnerships/sponsor-offer-service/domain/errors"
	offerhttp "starcast/contexts/partnerships/sponsor-offer-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "starcast/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	lifecycle lifecycleservice.Module
	offers    sponsorofferservice.Module
	cases     securitycaseservice.Module
}

func New(
	lifecycle lifecycleservice.Module,
	offers sponsorofferservice.Module,
	cases securitycaseservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		lifecycle: lifecycle,
		offers:    offers,
		cases:     cases,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/contestant/v1/records", s.handleGetRecords)
	s.mux.HandleFunc("GET /api/contestant/v1/onboarding", s.handleGetOnboarding)
	s.mux.HandleFunc("PATCH /api/contestant/v1/onboarding", s.handlePatchOnboarding)
	s.mux.HandleFunc("GET /api/contestant/v1/compliance", s.handleGetCompliance)
	s.mux.HandleFunc("PATCH /api/contestant/v1/compliance", s.handlePatchCompliance)
	s.mux.HandleFunc("GET /api/contestant/v1/profile", s.handleGetProfile)
	s.mux.HandleFunc("PATCH /api/contestant/v1/profile", s.handlePatchProfile)
	s.mux.HandleFunc("GET /api/contestant/v1/media", s.handleListMedia)
	s.mux.HandleFunc("POST /api/contestant/v1/media", s.handleAddMedia)
	s.mux.HandleFunc("GET /api/contestant/v1/readiness", s.handleReadiness)
	s.mux.HandleFunc("GET /api/contestant/v1/publishing", s.handleGetPublishing)
	s.mux.HandleFunc("POST /api/contestant/v1/submission-status", s.handleSubmissionStatus)
	s.mux.HandleFunc("POST /api/contestant/v1/admin-review", s.handleAdminReview)
	s.mux.HandleFunc("GET /api/contestant/v1/change-requests", s.handleListChangeRequests)
	s.mux.HandleFunc("POST /api/contestant/v1/change-requests", s.handleCreateChangeRequest)
	s.mux.HandleFunc("POST /api/contestant/v1/change-requests/{request_id}/review", s.handleReviewChangeRequest)
	s.mux.HandleFunc("GET /api/contestant/v1/audit", s.handleAuditTrail)
	s.mux.HandleFunc("GET /api/contestant/v1/profile-versions", s.handleProfileVersions)
	s.mux.HandleFunc("GET /api/contestant/v1/visibility/{slug}", s.handleVisibility)

	s.mux.HandleFunc("GET /api/partnerships/v1/offers", s.handleListOffers)
	s.mux.HandleFunc("POST /api/partnerships/v1/offers/{offer_id}", s.handleUpdateOffer)

	s.mux.HandleFunc("GET /api/security/v1/cases", s.handleListCases)
	s.mux.HandleFunc("POST /api/security/v1/cases/{case_id}", s.handleUpdateCase)
}

func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetRecordsHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetOnboardingHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatchOnboarding(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.OnboardingPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.UpdateOnboardingHandler(r.Context(), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCompliance(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetComplianceHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatchCompliance(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.CompliancePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.UpdateComplianceHandler(r.Context(), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetProfileHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.ProfilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.UpdateProfileHandler(r.Context(), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.ListMediaHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddMedia(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.AddMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.AddMediaHandler(r.Context(), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.ReadinessHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPublishing(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.GetPublishingHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.SubmissionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.SetSubmissionStatusHandler(r.Context(), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminReview(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.AdminReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.AdminReviewHandler(r.Context(), r.Header.Get("Idempotency-Key"), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListChangeRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.ListChangeRequestsHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateChangeRequest(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.CreateChangeRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.CreateChangeRequestHandler(r.Context(), r.Header.Get("Idempotency-Key"), req)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReviewChangeRequest(w http.ResponseWriter, r *http.Request) {
	var req lifecyclehttp.ReviewChangeRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLifecycleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.lifecycle.Handler.ReviewChangeRequestHandler(
		r.Context(),
		r.Header.Get("Idempotency-Key"),
		r.PathValue("request_id"),
		req,
	)
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.AuditTrailHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProfileVersions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.ProfileVersionsHandler(r.Context())
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVisibility(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lifecycle.Handler.VisibilityHandler(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeLifecycleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.offers.Handler.ListOffersHandler(r.Context())
	if err != nil {
		writeOfferDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	var req offerhttp.UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOfferError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.offers.Handler.UpdateOfferHandler(r.Context(), r.PathValue("offer_id"), req)
	if err != nil {
		writeOfferDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	resp, err := s.cases.Handler.ListCasesHandler(r.Context())
	if err != nil {
		writeCaseDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	var req casehttp.UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCaseError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.cases.Handler.UpdateCaseHandler(r.Context(), r.PathValue("case_id"), req)
	if err != nil {
		writeCaseDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeLifecycleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lifecycleerrors.ErrChangeRequestNotFound):
		writeLifecycleError(w, http.StatusNotFound, "change_request_not_found", err.Error())
	case errors.Is(err, lifecycleerrors.ErrChangeRequestResolved):
		writeLifecycleError(w, http.StatusConflict, "change_request_resolved", err.Error())
	case errors.Is(err, lifecycleerrors.ErrIdempotencyConflict):
		writeLifecycleError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, lifecycleerrors.ErrUnknownMediaKind),
		errors.Is(err, lifecycleerrors.ErrUnknownSubmissionStatus),
		errors.Is(err, lifecycleerrors.ErrUnknownAdminAction),
		errors.Is(err, lifecycleerrors.ErrUnknownChangeRequestType),
		errors.Is(err, lifecycleerrors.ErrUnknownReviewAction),
		errors.Is(err, lifecycleerrors.ErrInvalidRequest):
		writeLifecycleError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeLifecycleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOfferDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, offererrors.ErrOfferNotFound):
		writeOfferError(w, http.StatusNotFound, "offer_not_found", err.Error())
	case errors.Is(err, offererrors.ErrUnknownOfferAction):
		writeOfferError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeOfferError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCaseDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, caseerrors.ErrCaseNotFound):
		writeCaseError(w, http.StatusNotFound, "case_not_found", err.Error())
	case errors.Is(err, caseerrors.ErrUnknownCaseAction):
		writeCaseError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCaseError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLifecycleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, lifecyclehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeOfferError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, offerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeCaseError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, casehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
