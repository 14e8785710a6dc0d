package stub

import (
	"encoding/json"
	"net/http"

	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

type DepartmentHandler struct {
	store *Store
}

func NewDepartmentHandler(store *Store) *DepartmentHandler {
	return &DepartmentHandler{store: store}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Departments())
}

type createDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if forms.IsEmpty(req.Name) {
		response.HandleError(w, forms.ValidationErrors{{Field: "name", Message: "name is required"}})
		return
	}

	response.Created(w, "Department created", h.store.AddDepartment(req.Name, req.Description))
}
