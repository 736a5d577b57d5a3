package controllers

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RescheduleController struct {
	Log               *zap.Logger
	RescheduleUsecase contracts.RescheduleUsecase
	InternalConfig    *config.InternalConfig
}

func NewRescheduleController(logger *zap.Logger, rescheduleUsecase contracts.RescheduleUsecase, internalConfig *config.InternalConfig) *RescheduleController {
	return &RescheduleController{
		Log:               logger,
		RescheduleUsecase: rescheduleUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *RescheduleController) StartSession(w http.ResponseWriter, r *http.Request) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("RescheduleController.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := &requests.CreateRescheduleSession{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := ctrl.RescheduleUsecase.StartSession(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RescheduleSessionCreatedSuccess, state)
}

func (ctrl *RescheduleController) GetState(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "GetState", constvars.BookingStateGetSuccess, nil, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.RescheduleUsecase.GetState(ctx, userID, sessionID)
	})
}

func (ctrl *RescheduleController) SelectClinic(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectClinic{}
	ctrl.handle(w, r, "SelectClinic", constvars.ClinicSelectedSuccess, request, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.RescheduleUsecase.SelectClinic(ctx, userID, sessionID, request)
	})
}

func (ctrl *RescheduleController) SelectDate(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectDate{}
	ctrl.handle(w, r, "SelectDate", constvars.DateSelectedSuccess, request, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.RescheduleUsecase.SelectDate(ctx, userID, sessionID, request)
	})
}

func (ctrl *RescheduleController) SelectSlot(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectSlot{}
	ctrl.handle(w, r, "SelectSlot", constvars.SlotSelectedSuccess, request, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.RescheduleUsecase.SelectSlot(ctx, userID, sessionID, request)
	})
}

func (ctrl *RescheduleController) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "Submit", constvars.RescheduleSubmittedSuccess, nil, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.RescheduleUsecase.Submit(ctx, userID, sessionID)
	})
}

func (ctrl *RescheduleController) handle(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	successMessage string,
	request interface{},
	apply func(ctx context.Context, userID, sessionID string) (interface{}, error),
) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("RescheduleController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID))

	if request != nil {
		if err := utils.DecodeAndValidate(r, request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := apply(ctx, userID, sessionID)
	if err != nil {
		ctrl.Log.Error("RescheduleController."+operation+" usecase error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, state)
}
