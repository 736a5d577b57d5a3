package exceptions

import "medibook-service/internal/pkg/constvars"

var (
	ErrBookingSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientSessionNotFound, constvars.ErrDevSessionNotFound)
	}
	ErrInvalidBookingFlow = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidBookingFlow)
	}
	ErrInvalidStepTransition = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientCannotNavigateFurther, constvars.ErrDevInvalidStepTransition)
	}
	ErrDoctorNotSelected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientDoctorNotSelected, constvars.ErrDevMissingPrerequisite)
	}
	ErrClinicNotSelected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientClinicNotSelected, constvars.ErrDevMissingPrerequisite)
	}
	ErrDateNotSelected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientDateNotSelected, constvars.ErrDevMissingPrerequisite)
	}
	ErrSlotNotSelected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientSlotNotSelected, constvars.ErrDevMissingPrerequisite)
	}
	ErrDetailsIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientDetailsIncomplete, constvars.ErrDevMissingPrerequisite)
	}
	ErrSlotUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotUnavailable, constvars.ErrDevSlotConflict)
	}
	ErrSlotInPast = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotInPast, constvars.ErrDevSlotInPast)
	}
	ErrSlotAlreadyBooked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevSlotConflict)
	}
	ErrConflictCheckUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientConflictCheckFailed, constvars.ErrDevConflictCheckUnavailable)
	}
	ErrStaleSlotGrid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientStaleSlots, constvars.ErrDevInvalidStepTransition)
	}
	ErrBookingInProgress = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBookingInProgress, constvars.ErrDevDoubleSubmission)
	}
	ErrBookingAlreadyComplete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBookingAlreadyComplete, constvars.ErrDevInvalidStepTransition)
	}
	ErrPaymentFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentFailed, constvars.ErrDevPaymentGatewayFailure)
	}
	ErrBookingSubmission = func(err error, serverMessage string) *CustomError {
		clientMessage := constvars.ErrClientBookingSubmitFailed
		if serverMessage != "" {
			clientMessage = serverMessage
		}
		return BuildNewCustomError(err, constvars.StatusBadGateway, clientMessage, constvars.ErrDevBookingSubmissionFailure)
	}
	ErrRescheduleIdenticalTarget = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRescheduleSameTarget, constvars.ErrDevRescheduleIdenticalTarget)
	}
)
