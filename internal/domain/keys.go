package domain

import "errors"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserName  CtxKey = "Name"
	KeyUserRoles CtxKey = "Roles"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")
