package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	sessionPath := "/{" + constvars.URLParamSessionID + "}"

	router.With(middlewares.Authenticate).Post("/", bookingController.StartSession)
	router.With(middlewares.Authenticate).Get(sessionPath, bookingController.GetState)
	router.With(middlewares.Authenticate).Post(sessionPath+"/flow", bookingController.SetFlow)
	router.With(middlewares.Authenticate).Post(sessionPath+"/doctor", bookingController.SelectDoctor)
	router.With(middlewares.Authenticate).Post(sessionPath+"/clinic", bookingController.SelectClinic)
	router.With(middlewares.Authenticate).Post(sessionPath+"/date", bookingController.SelectDate)
	router.With(middlewares.Authenticate).Post(sessionPath+"/slot", bookingController.SelectSlot)
	router.With(middlewares.Authenticate).Post(sessionPath+"/details", bookingController.SetDetails)
	router.With(middlewares.Authenticate).Get(sessionPath+"/review", bookingController.Review)
	router.With(middlewares.Authenticate).Post(sessionPath+"/payment", bookingController.Pay)
	router.With(middlewares.Authenticate).Post(sessionPath+"/back", bookingController.GoBack)
	router.With(middlewares.Authenticate).Post(sessionPath+"/next", bookingController.GoNext)
	router.With(middlewares.Authenticate).Delete(sessionPath, bookingController.Reset)
}
