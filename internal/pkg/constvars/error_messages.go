package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"datetime":     "must match the format %s",
	"required_if":  "is required when %s is %s",
	"uuid":         "must be a valid UUID",
	"patient_type": "must be either 'self' or 'family'",
	"booking_flow": "must be either 'doctor' or 'clinic'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":          true,
	"gte":         true,
	"datetime":    true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in"

	ErrClientSessionNotFound        = "booking session not found or expired, please start over"
	ErrClientDoctorNotSelected      = "please select a doctor first"
	ErrClientClinicNotSelected      = "please select a clinic first"
	ErrClientDateNotSelected        = "please pick a date first"
	ErrClientSlotNotSelected        = "please pick a time slot first"
	ErrClientDetailsIncomplete      = "please complete the patient details first"
	ErrClientSlotUnavailable        = "this time slot is no longer available, please pick another"
	ErrClientSlotInPast             = "this time slot has already passed, please pick another"
	ErrClientSlotAlreadyBooked      = "you already have a booking for this time, please pick another slot"
	ErrClientConflictCheckFailed    = "we could not verify this slot right now, please try again"
	ErrClientDateNotBookable        = "this date has no availability, please pick another"
	ErrClientStaleSlots             = "the slot list is out of date, please reselect the date"
	ErrClientBookingInProgress      = "your booking is already being processed"
	ErrClientPaymentFailed          = "payment failed, please try again or use another method"
	ErrClientBookingSubmitFailed    = "we could not submit your booking, please try again"
	ErrClientRescheduleSameTarget   = "the new appointment time is the same as the current one"
	ErrClientRescheduleNotAllowed   = "this appointment cannot be rescheduled"
	ErrClientInvalidPatientDetails  = "patient details are incomplete or invalid"
	ErrClientCannotNavigateFurther  = "there is no further step in this direction"
	ErrClientBookingAlreadyComplete = "this booking is already confirmed, start a new one to book again"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "VALIDATION_FAILED"
	ErrDevInvalidRequestPayload      = "INVALID_REQUEST_PAYLOAD"
	ErrDevCannotParseJSON            = "CANNOT_PARSE_JSON"
	ErrDevCannotMarshalJSON          = "CANNOT_MARSHAL_JSON"
	ErrDevCannotParseDate            = "CANNOT_PARSE_DATE"
	ErrDevBuildRequest               = "CANNOT_BUILD_REQUEST"
	ErrDevSendRequest                = "CANNOT_SEND_REQUEST"
	ErrDevDecodeResponse             = "CANNOT_DECODE_RESPONSE: %s"
	ErrDevUpstreamStatus             = "UPSTREAM_RETURNED_STATUS_%d: %s"
	ErrDevServerDeadlineExceeded     = "SERVER_DEADLINE_EXCEEDED"
	ErrDevAuthTokenMissing           = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalidOrExpired  = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthInvalidSession         = "AUTH_INVALID_SESSION"
	ErrDevSessionNotFound            = "BOOKING_SESSION_NOT_FOUND"
	ErrDevInvalidStepTransition      = "INVALID_STEP_TRANSITION"
	ErrDevInvalidBookingFlow         = "INVALID_BOOKING_FLOW"
	ErrDevMissingPrerequisite        = "MISSING_PREREQUISITE_STEP"
	ErrDevSlotConflict               = "SLOT_CONFLICT"
	ErrDevSlotInPast                 = "SLOT_IN_PAST"
	ErrDevConflictCheckUnavailable   = "CONFLICT_CHECK_UNAVAILABLE"
	ErrDevDoubleSubmission           = "DOUBLE_SUBMISSION_BLOCKED"
	ErrDevPaymentGatewayFailure      = "PAYMENT_GATEWAY_FAILURE"
	ErrDevBookingSubmissionFailure   = "BOOKING_SUBMISSION_FAILURE"
	ErrDevRescheduleIdenticalTarget  = "RESCHEDULE_IDENTICAL_TARGET"
	ErrDevRedisSet                   = "REDIS_SET_FAILED"
	ErrDevRedisGet                   = "REDIS_GET_FAILED: key=%s"
	ErrDevRedisDelete                = "REDIS_DELETE_FAILED"
	ErrDevRedisSetNX                 = "REDIS_SETNX_FAILED"
	ErrDevRedisUnlock                = "REDIS_UNLOCK_FAILED"
	ErrDevMongoInsert                = "MONGO_INSERT_FAILED"
	ErrDevMongoFind                  = "MONGO_FIND_FAILED"
	ErrDevMongoUpdate                = "MONGO_UPDATE_FAILED"
	ErrDevPublishEvent               = "PUBLISH_EVENT_FAILED"
	ErrDevURLParamIDValidationFailed = "URL_PARAM_VALIDATION_FAILED: %s"
)
