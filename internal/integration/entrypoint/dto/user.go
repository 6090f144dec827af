// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for profile updates.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password" binding:"omitempty,min=8"`
}
