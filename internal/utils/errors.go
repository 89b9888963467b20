package utils

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token has expired")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("insufficient permissions")
var ErrValueConversion = errors.New("could not convert value")
