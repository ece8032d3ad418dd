package dto

// LoginRequest holds the credentials exchanged for a bearer token.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}
