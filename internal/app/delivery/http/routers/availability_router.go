package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.With(middlewares.Authenticate).Get("/dates", availabilityController.GetBookableDates)
	router.With(middlewares.Authenticate).Get("/slots", availabilityController.GetSlotsForDate)
}
