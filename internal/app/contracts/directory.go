package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

// DirectoryClient reads doctor and clinic records from the directory service.
type DirectoryClient interface {
	GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	GetAllClinics(ctx context.Context) ([]models.Clinic, error)
	GetClinicsByDoctor(ctx context.Context, doctorID string) ([]models.Clinic, error)
	GetDoctorsByClinic(ctx context.Context, clinicID string) ([]models.Doctor, error)
}
