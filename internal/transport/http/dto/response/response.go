package response

import "github.com/google/uuid"

// Error is the envelope every non-2xx reply uses.
type Error struct {
	Message string `json:"message"`
}

func Err(message string) Error {
	return Error{Message: message}
}

type ID struct {
	ID uuid.UUID `json:"id"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
