package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_USER_ID_KEY      ContextKey = "user_id"
)

const (
	ResourceBooking      = "booking"
	ResourceReschedule   = "reschedule"
	ResourceAvailability = "availability"
	ResourceDoctor       = "Doctor"
	ResourceClinic       = "Clinic"
	ResourceSlot         = "Slot"
	ResourceAppointment  = "Appointment"
	ResourceSubscription = "Subscription"
)

const (
	// BookingSessionKeyFormat keys booking sessions in redis by session id.
	BookingSessionKeyFormat = "booking:session:%s"
	// RescheduleSessionKeyFormat keys reschedule sessions in redis by session id.
	RescheduleSessionKeyFormat = "reschedule:session:%s"
	// BookingLockKeyFormat gates payment/submission per session against double submission.
	BookingLockKeyFormat = "booking:lock:%s"
)

const (
	BookingSessionTTLInMinutes = 30
	BookingLockTTLInSeconds    = 30
)

const (
	// DateOnlyFormat is the calendar-date wire format used across booking endpoints.
	DateOnlyFormat = "2006-01-02"
	// ClockFormat is the 24h wall-clock wire format for slot boundaries.
	ClockFormat = "15:04"
)
