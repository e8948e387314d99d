package service

import "errors"

var (
	ErrUnauthorized    = errors.New("caller is not allowed to perform this operation")
	ErrCommentNotFound = errors.New("comment not found")
	ErrRatingNotFound  = errors.New("rating not found")
)
