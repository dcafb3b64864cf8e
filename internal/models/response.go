package models

// APIResponse is the envelope for errors and bare acknowledgements. Successful
// reads return their payload directly.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewMessageResponse creates a success acknowledgement
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a client error response (4xx)
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// NewServerErrorResponse creates a 5xx response. The cause is logged, never echoed.
func NewServerErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

// NewValidationErrorResponse creates a validation error response
func NewValidationErrorResponse(errors map[string]string) APIResponse {
	return APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	}
}

// AuthResponse is returned by student register and login.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// MentorAuthResponse is returned by mentor register and login.
type MentorAuthResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Mentor  MentorSession `json:"mentor"`
}
