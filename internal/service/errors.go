package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid parameters")
	ErrUserExist          = errors.New("user exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("missing or malformed token")
	ErrTokenInvalid       = errors.New("bad token")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserExist:          BadRequest,
	ErrUserNotFound:       NotFound,
	ErrInvalidCredentials: Unauthorized,
	ErrTokenMissing:       Unauthorized,
	ErrTokenInvalid:       Unauthorized,
	UnExpectedError:       InternalServerError,
}
