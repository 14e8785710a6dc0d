package stub

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/performance"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

type PerformanceHandler struct {
	store *Store
}

func NewPerformanceHandler(store *Store) *PerformanceHandler {
	return &PerformanceHandler{store: store}
}

func (h *PerformanceHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Reviews())
}

func (h *PerformanceHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.ReviewsByEmployee(chi.URLParam(r, "id")))
}

func (h *PerformanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review submitted", h.store.AddReview(req))
}
