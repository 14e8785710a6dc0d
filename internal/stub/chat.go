package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/chat"
	"github.com/hrsuite/hrsuite-console/internal/pkg/forms"
	"github.com/hrsuite/hrsuite-console/internal/stub/response"
)

type ChatHandler struct {
	store *Store
}

func NewChatHandler(store *Store) *ChatHandler {
	return &ChatHandler{store: store}
}

// Send returns a canned, deterministic reply. The stub has no model behind
// it; the reply echoes the question so conversations stay testable.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req chat.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if forms.IsEmpty(req.Message) {
		response.HandleError(w, forms.ValidationErrors{{Field: "message", Message: "message is required"}})
		return
	}

	name := "there"
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if caller, err := identityFromClaims(claims); err == nil && caller.FullName != "" {
			name = caller.FullName
		}
	}

	reply := fmt.Sprintf(
		"Hi %s! You asked: %q. I don't have a live model behind me in this environment, "+
			"but for HR policy questions please check the employee handbook or contact your HR administrator.",
		name, req.Message,
	)

	response.Success(w, chat.SendResponse{
		Response:  reply,
		Timestamp: time.Now().UTC(),
	})
}
