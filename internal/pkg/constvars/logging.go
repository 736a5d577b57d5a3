package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionIDKey     = "session_id"
	LoggingUserIDKey        = "user_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingClinicIDKey      = "clinic_id"
	LoggingSlotIDKey        = "slot_id"
	LoggingDateKey          = "date"
	LoggingStepKey          = "step"
	LoggingFlowKey          = "flow"
	LoggingAmountKey        = "amount"
	LoggingPaymentStatusKey = "payment_status"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingSlotCountKey     = "slot_count"
	LoggingDateCountKey     = "date_count"
	LoggingQueueKey         = "queue"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
