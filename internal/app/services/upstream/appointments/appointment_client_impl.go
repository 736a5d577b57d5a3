package appointments

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/upstream_dto"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

const (
	resourceSlot        = "Slot"
	resourceSchedule    = "Schedule"
	resourceAppointment = "Appointment"
)

type appointmentClient struct {
	BaseUrl string
}

func NewAppointmentClient(baseUrl string) contracts.AppointmentClient {
	return &appointmentClient{
		BaseUrl: baseUrl,
	}
}

func (c *appointmentClient) GetAvailableSlotsForDate(ctx context.Context, doctorID, clinicID, date string) ([]upstream_dto.RawSlot, error) {
	query := url.Values{}
	query.Set("doctorId", doctorID)
	query.Set("clinicId", clinicID)
	query.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/slots?%s", c.BaseUrl, query.Encode()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("appointment service returned %d", resp.StatusCode), resp.StatusCode, resourceSlot)
	}

	// Some deployments wrap the list in a data envelope, others return it bare.
	var envelope struct {
		Data  []upstream_dto.RawSlot `json:"data"`
		Slots []upstream_dto.RawSlot `json:"slots"`
	}
	bodyBytes := new(bytes.Buffer)
	_, err = bodyBytes.ReadFrom(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceSlot)
	}

	if err := json.Unmarshal(bodyBytes.Bytes(), &envelope); err == nil {
		if envelope.Data != nil {
			return envelope.Data, nil
		}
		if envelope.Slots != nil {
			return envelope.Slots, nil
		}
	}

	var bare []upstream_dto.RawSlot
	if err := json.Unmarshal(bodyBytes.Bytes(), &bare); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceSlot)
	}
	return bare, nil
}

func (c *appointmentClient) GetMonthlySlots(ctx context.Context, doctorID, clinicID string, month, year int) ([]upstream_dto.RawDateEntry, error) {
	query := url.Values{}
	query.Set("doctorId", doctorID)
	query.Set("clinicId", clinicID)
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/schedule?%s", c.BaseUrl, query.Encode()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("appointment service returned %d", resp.StatusCode), resp.StatusCode, resourceSchedule)
	}

	var envelope struct {
		Dates []upstream_dto.RawDateEntry `json:"dates"`
	}
	bodyBytes := new(bytes.Buffer)
	_, err = bodyBytes.ReadFrom(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceSchedule)
	}

	if err := json.Unmarshal(bodyBytes.Bytes(), &envelope); err == nil && envelope.Dates != nil {
		return envelope.Dates, nil
	}

	var bare []upstream_dto.RawDateEntry
	if err := json.Unmarshal(bodyBytes.Bytes(), &bare); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceSchedule)
	}
	return bare, nil
}

func (c *appointmentClient) CheckUserBookingForSlot(ctx context.Context, userID, doctorID, clinicID, date string, slotRange contracts.SlotRange) (bool, error) {
	query := url.Values{}
	query.Set("userId", userID)
	query.Set("doctorId", doctorID)
	query.Set("clinicId", clinicID)
	query.Set("date", date)
	query.Set("startTime", slotRange.StartTime)
	query.Set("endTime", slotRange.EndTime)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/appointments/conflict?%s", c.BaseUrl, query.Encode()), nil)
	if err != nil {
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return false, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return false, exceptions.ErrUpstreamStatus(fmt.Errorf("appointment service returned %d", resp.StatusCode), resp.StatusCode, resourceAppointment)
	}

	var result struct {
		HasBooking bool `json:"hasBooking"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return false, exceptions.ErrDecodeResponse(err, resourceAppointment)
	}
	return result.HasBooking, nil
}

func (c *appointmentClient) BookAppointment(ctx context.Context, input contracts.BookAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	requestJSON, err := json.Marshal(input)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/appointments", c.BaseUrl), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		// Surface the service's own message when it sends one.
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		serverMessage := failure.Message
		if serverMessage == "" {
			serverMessage = failure.Error
		}
		return nil, exceptions.ErrBookingSubmission(fmt.Errorf("appointment service returned %d", resp.StatusCode), serverMessage)
	}

	var record upstream_dto.AppointmentRecord
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceAppointment)
	}
	return &record, nil
}

func (c *appointmentClient) GetAppointmentByID(ctx context.Context, appointmentID string) (*upstream_dto.AppointmentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/appointments/%s", c.BaseUrl, appointmentID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("appointment service returned %d", resp.StatusCode), resp.StatusCode, resourceAppointment)
	}

	var record upstream_dto.AppointmentRecord
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceAppointment)
	}
	return &record, nil
}

func (c *appointmentClient) RescheduleAppointment(ctx context.Context, input contracts.RescheduleAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	requestJSON, err := json.Marshal(input)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, fmt.Sprintf("%s/appointments/%s/reschedule", c.BaseUrl, input.AppointmentID), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		serverMessage := failure.Message
		if serverMessage == "" {
			serverMessage = failure.Error
		}
		return nil, exceptions.ErrBookingSubmission(fmt.Errorf("appointment service returned %d", resp.StatusCode), serverMessage)
	}

	var record upstream_dto.AppointmentRecord
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceAppointment)
	}
	return &record, nil
}
