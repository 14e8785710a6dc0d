package stub

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/leave"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

type LeaveHandler struct {
	store *Store
}

func NewLeaveHandler(store *Store) *LeaveHandler {
	return &LeaveHandler{store: store}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.LeaveRequests())
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", h.store.AddLeaveRequest(req))
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req leave.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Status != leave.StatusApproved && req.Status != leave.StatusRejected {
		response.HandleError(w, forms.ValidationErrors{
			{Field: "status", Message: "status must be approved or rejected"},
		})
		return
	}

	updated, err := h.store.DecideLeaveRequest(chi.URLParam(r, "id"), req.Status, req.ApprovedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}
