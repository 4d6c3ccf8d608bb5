package usecase

import "errors"

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrInvalidLeadID  = errors.New("invalid lead id")
	ErrLeadInvalid    = errors.New("lead data invalid")
	ErrPhoneMissing   = errors.New("lead has no phone number")
	ErrMessageMissing = errors.New("lead has no outreach message")
	ErrSendBlocked    = errors.New("send blocked by supervisor")
	ErrRecentlySent   = errors.New("lead was contacted recently")
	ErrLeadClosed     = errors.New("lead already answered")
	ErrInvalidStatus  = errors.New("invalid lead status transition")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	ErrNonCompliant   = errors.New("message fails compliance check")
	ErrEmptyReply     = errors.New("empty reply text")
	ErrRunInProgress  = errors.New("workflow run already in progress")
)
