package chat

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn. Turns live only in view memory; history is never
// sent back to the server beyond the latest user message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
