package constvars

const (
	URLParamSessionID     = "session_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamDoctorID = "doctor_id"
	URLQueryParamClinicID = "clinic_id"
	URLQueryParamDate     = "date"
	URLQueryParamMonth    = "month"
	URLQueryParamYear     = "year"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)
