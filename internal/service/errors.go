package service

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input provided")
	ErrDuplicateAccount  = errors.New("account with this email already exists")
	ErrAccountNotFound   = errors.New("no account registered with this email")
	ErrInvalidCredential = errors.New("wrong password")
)
