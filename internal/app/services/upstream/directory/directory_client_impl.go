package directory

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/upstream_dto"
	"medibook-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

const (
	resourceDoctor = "Doctor"
	resourceClinic = "Clinic"
)

type directoryClient struct {
	BaseUrl string
}

func NewDirectoryClient(baseUrl string) contracts.DirectoryClient {
	return &directoryClient{
		BaseUrl: baseUrl,
	}
}

func (c *directoryClient) GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/doctors/%s", c.BaseUrl, doctorID), nil)
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
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("directory returned %d", resp.StatusCode), resp.StatusCode, resourceDoctor)
	}

	var record upstream_dto.DoctorRecord
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceDoctor)
	}

	return &models.Doctor{
		ID:              record.ResolvedID(),
		Name:            record.Name,
		Specialty:       record.Specialty,
		ConsultationFee: record.ConsultationFee,
	}, nil
}

func (c *directoryClient) GetAllClinics(ctx context.Context) ([]models.Clinic, error) {
	return c.fetchClinics(ctx, fmt.Sprintf("%s/clinics", c.BaseUrl))
}

func (c *directoryClient) GetClinicsByDoctor(ctx context.Context, doctorID string) ([]models.Clinic, error) {
	return c.fetchClinics(ctx, fmt.Sprintf("%s/doctors/%s/clinics", c.BaseUrl, doctorID))
}

func (c *directoryClient) fetchClinics(ctx context.Context, url string) ([]models.Clinic, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
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
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("directory returned %d", resp.StatusCode), resp.StatusCode, resourceClinic)
	}

	var records []upstream_dto.ClinicRecord
	err = json.NewDecoder(resp.Body).Decode(&records)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceClinic)
	}

	clinics := make([]models.Clinic, len(records))
	for i, record := range records {
		clinics[i] = models.Clinic{
			ID:      record.ResolvedID(),
			Name:    record.Name,
			Address: record.Address,
		}
	}
	return clinics, nil
}

func (c *directoryClient) GetDoctorsByClinic(ctx context.Context, clinicID string) ([]models.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/clinics/%s/doctors", c.BaseUrl, clinicID), nil)
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
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("directory returned %d", resp.StatusCode), resp.StatusCode, resourceDoctor)
	}

	var records []upstream_dto.DoctorRecord
	err = json.NewDecoder(resp.Body).Decode(&records)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceDoctor)
	}

	doctors := make([]models.Doctor, len(records))
	for i, record := range records {
		doctors[i] = models.Doctor{
			ID:              record.ResolvedID(),
			Name:            record.Name,
			Specialty:       record.Specialty,
			ConsultationFee: record.ConsultationFee,
		}
	}
	return doctors, nil
}
