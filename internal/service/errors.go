package service

import "errors"

var (
	ErrInternal                    = errors.New("internal server error")
	ErrNotFound                    = errors.New("post not found")
	ErrInvalidID                   = errors.New("invalid post ID")
	ErrEmptyComment                = errors.New("comment text is required")
	ErrUnknownAction               = errors.New("unknown action")
	ErrInvalidPostField            = errors.New("invalid post field")
	ErrFileMustBeImage             = errors.New("file must be an image")
	ErrFileMustHaveAValidExtension = errors.New("file must have a valid extension")
	ErrFileTooLarge                = errors.New("file is too large")
	ErrUploadDisabled              = errors.New("image upload is not configured")
	ErrFailedToUploadImage         = errors.New("failed to upload image")
)
