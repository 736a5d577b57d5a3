package controllers

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

// callerIdentity pulls the request id and authenticated user id placed in the
// context by the middlewares.
func callerIdentity(r *http.Request) (requestID, userID string, err error) {
	requestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	userID, ok := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		return requestID, "", exceptions.ErrInvalidSession(fmt.Errorf("user id not found in context"))
	}
	return requestID, userID, nil
}

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	seconds := internalConfig.App.UpstreamTimeoutInSeconds
	if seconds <= 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

func (ctrl *BookingController) StartSession(w http.ResponseWriter, r *http.Request) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("BookingController.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := &requests.CreateBookingSession{}
	if r.ContentLength > 0 {
		if err := utils.DecodeAndValidate(r, request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := ctrl.BookingUsecase.StartSession(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingSessionCreatedSuccess, state)
}

func (ctrl *BookingController) GetState(w http.ResponseWriter, r *http.Request) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController.GetState called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := ctrl.BookingUsecase.GetState(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingStateGetSuccess, state)
}

func (ctrl *BookingController) SetFlow(w http.ResponseWriter, r *http.Request) {
	request := &requests.SetBookingFlow{}
	ctrl.handleMutation(w, r, "SetFlow", request, constvars.BookingFlowSetSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.SetFlow(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectDoctor{}
	ctrl.handleMutation(w, r, "SelectDoctor", request, constvars.DoctorSelectedSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.SelectDoctor(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) SelectClinic(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectClinic{}
	ctrl.handleMutation(w, r, "SelectClinic", request, constvars.ClinicSelectedSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.SelectClinic(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) SelectDate(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectDate{}
	ctrl.handleMutation(w, r, "SelectDate", request, constvars.DateSelectedSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.SelectDate(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) SelectSlot(w http.ResponseWriter, r *http.Request) {
	request := &requests.SelectSlot{}
	ctrl.handleMutation(w, r, "SelectSlot", request, constvars.SlotSelectedSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.SelectSlot(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) SetDetails(w http.ResponseWriter, r *http.Request) {
	request := &requests.BookingDetails{}
	ctrl.handleMutation(w, r, "SetDetails", request, constvars.DetailsSavedSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.SetDetails(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) Review(w http.ResponseWriter, r *http.Request) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController.Review called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	review, err := ctrl.BookingUsecase.Review(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewGetSuccess, review)
}

func (ctrl *BookingController) Pay(w http.ResponseWriter, r *http.Request) {
	request := &requests.Payment{}
	ctrl.handleMutation(w, r, "Pay", request, constvars.BookingConfirmedSuccess, func(ctx context.Context, userID, sessionID string) (interface{}, error) {
		return ctrl.BookingUsecase.Pay(ctx, userID, sessionID, request)
	})
}

func (ctrl *BookingController) GoBack(w http.ResponseWriter, r *http.Request) {
	ctrl.handleNavigation(w, r, "GoBack", ctrl.BookingUsecase.GoBack)
}

func (ctrl *BookingController) GoNext(w http.ResponseWriter, r *http.Request) {
	ctrl.handleNavigation(w, r, "GoNext", ctrl.BookingUsecase.GoNext)
}

func (ctrl *BookingController) Reset(w http.ResponseWriter, r *http.Request) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := ctrl.BookingUsecase.Reset(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingResetSuccess, state)
}

// handleMutation is the shared body of the decode-validate-apply handlers.
func (ctrl *BookingController) handleMutation(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	request interface{},
	successMessage string,
	apply func(ctx context.Context, userID, sessionID string) (interface{}, error),
) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID))

	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := apply(ctx, userID, sessionID)
	if err != nil {
		ctrl.Log.Error("BookingController."+operation+" usecase error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, state)
}

func (ctrl *BookingController) handleNavigation(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	move func(ctx context.Context, userID, sessionID string) (*models.BookingState, error),
) {
	requestID, userID, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("BookingController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	state, err := move(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigationSuccess, state)
}
