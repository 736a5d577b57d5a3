package upstream_dto

// AppointmentRecord is the appointment service's record of a booked or
// rescheduled appointment.
type AppointmentRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	DoctorID  string `json:"doctorId"`
	ClinicID  string `json:"clinicId"`
	Date      string `json:"date"`
	SlotID    string `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// Doctor and Clinic records as the directory service reports them. The clinic
// id field also varies by deployment, same treatment as slot fields.
type DoctorRecord struct {
	ID              string `json:"id,omitempty"`
	UID             string `json:"_id,omitempty"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty,omitempty"`
	ConsultationFee int64  `json:"consultationFee,omitempty"`
}

type ClinicRecord struct {
	ID       string `json:"id,omitempty"`
	ClinicID string `json:"clinicId,omitempty"`
	UID      string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
}

// ResolvedID returns the first non-empty id spelling.
func (d DoctorRecord) ResolvedID() string {
	if d.ID != "" {
		return d.ID
	}
	return d.UID
}

func (c ClinicRecord) ResolvedID() string {
	if c.UID != "" {
		return c.UID
	}
	if c.ClinicID != "" {
		return c.ClinicID
	}
	return c.ID
}
