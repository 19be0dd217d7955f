package settings

import "errors"

var (
	ErrInvalidWorkHours = errors.New("work start time must be earlier than work end time")
	ErrSettingsNotFound = errors.New("company settings not found")
)
