package controllers

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *AvailabilityController) GetBookableDates(w http.ResponseWriter, r *http.Request) {
	requestID, _, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID := r.URL.Query().Get(constvars.URLQueryParamDoctorID)
	clinicID := r.URL.Query().Get(constvars.URLQueryParamClinicID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDoctorNotSelected(fmt.Errorf("missing %s query param", constvars.URLQueryParamDoctorID)))
		return
	}
	if clinicID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrClinicNotSelected(fmt.Errorf("missing %s query param", constvars.URLQueryParamClinicID)))
		return
	}

	now := time.Now()
	month, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamMonth))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	year, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamYear))
	if err != nil || year == 0 {
		year = now.Year()
	}

	ctrl.Log.Info("AvailabilityController.GetBookableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingClinicIDKey, clinicID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	dates, err := ctrl.AvailabilityUsecase.GetBookableDates(ctx, doctorID, clinicID, month, year)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.BookableDates{
		DoctorID: doctorID,
		ClinicID: clinicID,
		Dates:    dates,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookableDatesGetSuccess, response)
}

func (ctrl *AvailabilityController) GetSlotsForDate(w http.ResponseWriter, r *http.Request) {
	requestID, _, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID := r.URL.Query().Get(constvars.URLQueryParamDoctorID)
	clinicID := r.URL.Query().Get(constvars.URLQueryParamClinicID)
	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDoctorNotSelected(fmt.Errorf("missing %s query param", constvars.URLQueryParamDoctorID)))
		return
	}
	if clinicID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrClinicNotSelected(fmt.Errorf("missing %s query param", constvars.URLQueryParamClinicID)))
		return
	}
	if _, err := time.Parse(constvars.DateOnlyFormat, date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctrl.Log.Info("AvailabilityController.GetSlotsForDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingDateKey, date))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	slots, err := ctrl.AvailabilityUsecase.GetSlotsForDate(ctx, doctorID, clinicID, date, time.Now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.SlotsForDate{
		DoctorID: doctorID,
		ClinicID: clinicID,
		Date:     date,
		Slots:    slots,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotsGetSuccess, response)
}
