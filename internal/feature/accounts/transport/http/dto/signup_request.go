// Package dto defines data transfer objects for the accounts feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// All four fields are required; password equality is checked by the usecase.
type SignupReq struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
