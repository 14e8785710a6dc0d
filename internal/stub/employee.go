package stub

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/employee"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

type EmployeeHandler struct {
	store *Store
}

func NewEmployeeHandler(store *Store) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Employees())
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.EmployeeByID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, e)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added", h.store.AddEmployee(req))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	e, err := h.store.UpdateEmployee(chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, e)
}
