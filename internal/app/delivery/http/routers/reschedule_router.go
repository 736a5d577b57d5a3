package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRescheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, rescheduleController *controllers.RescheduleController) {
	sessionPath := "/{" + constvars.URLParamSessionID + "}"

	router.With(middlewares.Authenticate).Post("/", rescheduleController.StartSession)
	router.With(middlewares.Authenticate).Get(sessionPath, rescheduleController.GetState)
	router.With(middlewares.Authenticate).Post(sessionPath+"/clinic", rescheduleController.SelectClinic)
	router.With(middlewares.Authenticate).Post(sessionPath+"/date", rescheduleController.SelectDate)
	router.With(middlewares.Authenticate).Post(sessionPath+"/slot", rescheduleController.SelectSlot)
	router.With(middlewares.Authenticate).Post(sessionPath+"/submit", rescheduleController.Submit)
}
