package chat

import "time"

type SendRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type SendResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
