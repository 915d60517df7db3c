package models

import "math"

// redactedPassword replaces plaintext passwords in values that are written
// to the audit log.
const redactedPassword = "***"

// RegisterRequest is the body of POST /api/Users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Redacted returns a copy of the request with the password masked.
func (r RegisterRequest) Redacted() RegisterRequest {
	r.Password = redact(r.Password)
	return r
}

// UpdateUserRequest is the body of PUT /api/Users/{id}.
// An empty field means "leave unchanged".
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Username == "" && r.Email == ""
}

// LoginRequest is the body of POST /api/Login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Redacted returns a copy of the request with the password masked.
func (r LoginRequest) Redacted() LoginRequest {
	r.Password = redact(r.Password)
	return r
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ChangePasswordRequest is the body of POST /api/UpdatePassword.
type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Redacted returns a copy of the request with both passwords masked.
func (r ChangePasswordRequest) Redacted() ChangePasswordRequest {
	r.OldPassword = redact(r.OldPassword)
	r.NewPassword = redact(r.NewPassword)
	return r
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return redactedPassword
}

// Default paging applied when GET /api/Users omits the query parameters.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
)

// Pagination selects one page of the user listing. Pages are 1-based.
type Pagination struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Limit returns the maximum number of rows of the page.
func (p Pagination) Limit() uint64 {
	return uint64(p.PageSize)
}

// Offset returns the number of rows preceding the page, capped at
// math.MaxInt64.
func (p Pagination) Offset() uint64 {
	if p.PastEnd() {
		return math.MaxInt64
	}
	return uint64(p.PageNumber-1) * uint64(p.PageSize)
}

// PastEnd reports whether the page starts beyond math.MaxInt64 rows. Such a
// page is empty in any table and cannot be expressed as a SQL offset.
func (p Pagination) PastEnd() bool {
	if p.PageNumber < 1 || p.PageSize < 1 {
		return false
	}
	return int64(p.PageNumber-1) > math.MaxInt64/int64(p.PageSize)
}
