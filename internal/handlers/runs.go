package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/storefrontqa/relatedcheck/internal/models"
	"github.com/storefrontqa/relatedcheck/internal/services"
)

// RunsHandler serves recorded validation runs
type RunsHandler struct {
	runService services.RunService
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(runService services.RunService) *RunsHandler {
	return &RunsHandler{
		runService: runService,
	}
}

// RunResponse represents one recorded run in API responses
type RunResponse struct {
	ID               string `json:"id"`
	Reference        string `json:"reference"`
	TargetURL        string `json:"targetUrl"`
	ExpectedCategory string `json:"expectedCategory"`
	Status           string `json:"status"`
	ItemCount        int    `json:"itemCount"`
	FailureCount     int    `json:"failureCount"`
	Reasons          string `json:"reasons,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// ServeHTTP handles GET /api/runs and GET /api/runs/{reference}
func (h *RunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reference := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/runs"), "/")
	if reference == "" {
		h.listRuns(w, r)
		return
	}
	h.getRun(w, reference)
}

// listRuns responds with the most recent runs, newest first
func (h *RunsHandler) listRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			sendErrorResponse(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := h.runService.ListRuns(limit)
	if err != nil {
		log.Printf("Error listing runs: %v", err)
		sendErrorResponse(w, "Failed to list runs", http.StatusInternalServerError)
		return
	}

	resp := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		resp = append(resp, toRunResponse(run))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// getRun responds with a single run looked up by reference
func (h *RunsHandler) getRun(w http.ResponseWriter, reference string) {
	run, err := h.runService.GetRunByReference(reference)
	if err != nil {
		sendErrorResponse(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toRunResponse(run)); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// toRunResponse maps a run onto the response payload
func toRunResponse(run *models.ValidationRun) RunResponse {
	return RunResponse{
		ID:               run.ID,
		Reference:        run.Reference,
		TargetURL:        run.TargetURL,
		ExpectedCategory: run.ExpectedCategory,
		Status:           string(run.Status),
		ItemCount:        run.ItemCount,
		FailureCount:     run.FailureCount,
		Reasons:          run.Reasons,
		CreatedAt:        run.CreatedAt.Format(time.RFC3339),
	}
}
