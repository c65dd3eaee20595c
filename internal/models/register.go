package models

// AuthRequest represents the JSON body for user registration and login
// swagger:model AuthRequest
type AuthRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: pw1
	Password string `json:"password"`
}

// MessageResponse represents a successful response carrying a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: User 'alice' registered successfully.
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error detail
	// example: Username already exists.
	Detail string `json:"detail"`
}
