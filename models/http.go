package models

// LoginResponse is the body of a successful login response.
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

// LoginUser is the identity echoed back after a successful login.
type LoginUser struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// RegisterResponse is the body of a successful registration response.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    RegisterUser `json:"user"`
}

// RegisterUser is the identity echoed back after a successful registration.
type RegisterUser struct {
	UserName string `json:"userName"`
}

// ErrorResponse is the body of every failed auth request.
// Error is always a client-safe message, never an internal error chain.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CategoriesResponse is the envelope returned by the categories endpoint on
// success. Data is never null.
type CategoriesResponse struct {
	Success bool       `json:"success"`
	Data    []Category `json:"data"`
}

// CategoriesErrorResponse is returned by the categories endpoint when the
// product service call fails. Code carries the normalized backend failure
// code when one is known.
type CategoriesErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
