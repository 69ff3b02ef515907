package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// RoleUser and RoleModel are the roles accepted by the Gemini API
	RoleUser  = "user"
	RoleModel = "model"
)
