package service

import "errors"

// 领域错误集合，handler统一映射到HTTP状态码
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrDeadlinePassed    = errors.New("rsvp deadline has passed")
	ErrAtCapacity        = errors.New("event is at capacity")
	ErrEventNotLive      = errors.New("event is not live")
	ErrWrongDay          = errors.New("check-in is only available on the event day")
	ErrNoRSVP            = errors.New("you must rsvp before checking in")
	ErrAlreadyCheckedIn  = errors.New("you have already checked in")
	ErrNotRSVPed         = errors.New("not rsvped")
	ErrDuplicateFeedback = errors.New("feedback already exists")
	ErrEmailTaken        = errors.New("user already exists")
	ErrBadCredentials    = errors.New("invalid email or password")
)
