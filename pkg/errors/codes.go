package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeStorage            ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
)

// Deadline calculator error codes.
const (
	ErrCodeDeadlineInvalidReference ErrorCode = "FRIST_001"
	ErrCodeDeadlineUnknownCategory  ErrorCode = "FRIST_002"
	ErrCodeDeadlineOpenEnded        ErrorCode = "FRIST_003"
)

// Reminder engine error codes.
const (
	ErrCodeReminderNotFound          ErrorCode = "ERIN_001"
	ErrCodeReminderInvalidTransition ErrorCode = "ERIN_002"
	ErrCodeReminderInvalidDraft      ErrorCode = "ERIN_003"
	ErrCodeReminderNotRecurring      ErrorCode = "ERIN_004"
)

// Notification error codes.
const (
	ErrCodeNotifyPermissionDenied ErrorCode = "NOTIF_001"
	ErrCodeNotifyDeliveryFailed   ErrorCode = "NOTIF_002"
)

// HTTPStatus maps an ErrorCode to the HTTP status code the API layer should
// respond with.  Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrCodeBadRequest, ErrCodeValidation,
		ErrCodeDeadlineInvalidReference, ErrCodeDeadlineUnknownCategory,
		ErrCodeReminderInvalidDraft, ErrCodeReminderNotRecurring:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeReminderNotFound:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeReminderInvalidTransition:
		return http.StatusConflict
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
