package models

// AuthResponse is the success body of /signup and /login. The token is a
// signed JWT bound to the account; name and email echo the stored record.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// StatusResponse is the body of the password-reset endpoints. Message is
// omitted for the bare acknowledgement returned by /verify-otp.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the generic success body of the authenticated
// self-service endpoints, and the body of 4xx failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of 500 responses. It never carries internal
// detail, only a generic marker.
type ErrorResponse struct {
	Error string `json:"error"`
}
