package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Booking flow messages
	BookingSessionCreatedSuccess = "booking session created successfully"
	BookingStateGetSuccess       = "get booking state successfully"
	BookingFlowSetSuccess        = "booking flow set successfully"
	DoctorSelectedSuccess        = "doctor selected successfully"
	ClinicSelectedSuccess        = "clinic selected successfully"
	DateSelectedSuccess          = "date selected successfully"
	SlotSelectedSuccess          = "time slot selected successfully"
	DetailsSavedSuccess          = "patient details saved successfully"
	ReviewGetSuccess             = "get booking review successfully"
	BookingConfirmedSuccess      = "booking confirmed successfully"
	BookingResetSuccess          = "booking session reset successfully"
	NavigationSuccess            = "navigated successfully"

	// Availability messages
	BookableDatesGetSuccess = "get bookable dates successfully"
	SlotsGetSuccess         = "get time slots successfully"

	// Reschedule messages
	RescheduleSessionCreatedSuccess = "reschedule session created successfully"
	RescheduleSubmittedSuccess      = "appointment rescheduled successfully"
)
