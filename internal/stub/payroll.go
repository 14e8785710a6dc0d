package stub

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/payroll"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

type PayrollHandler struct {
	store *Store
}

func NewPayrollHandler(store *Store) *PayrollHandler {
	return &PayrollHandler{store: store}
}

func (h *PayrollHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.PayrollRecords())
}

func (h *PayrollHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.PayrollByEmployee(chi.URLParam(r, "id")))
}

func (h *PayrollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Net salary is recomputed in the store; the submitted value is ignored.
	response.Created(w, "Payroll record created", h.store.AddPayrollRecord(req))
}
