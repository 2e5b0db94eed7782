package services

import "errors"

// Sentinel errors; controllers map them to HTTP status codes with errors.Is.
// A rejected mutation leaves the order untouched and publishes nothing.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item not available")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidOrderType    = errors.New("invalid order type")
	ErrValidation          = errors.New("validation failed")
	ErrNoNextStatus        = errors.New("no forward status")
	ErrArchiveConflict     = errors.New("order changed during archive")

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidRole        = errors.New("invalid role")
	ErrOwnerImmutable     = errors.New("cannot modify owner accounts")

	ErrSettingNotFound = errors.New("setting not found")
)
