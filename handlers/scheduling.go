package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"atelier/models"
	"atelier/services/scheduling"
	"atelier/utils"
)

// SchedulingHandler exposes availability lookup, direct booking, and the
// service catalogue.
type SchedulingHandler struct {
	Svc scheduling.CalendarService
}

func NewSchedulingHandler(svc scheduling.CalendarService) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc}
}

// GetAvailability lists the day's slots for a service.
func (h *SchedulingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	serviceType := models.ServiceType(c.Query("serviceType"))

	availability, err := h.Svc.GetAvailability(c.Request.Context(), date, serviceType)
	if err != nil {
		utils.GetLogger().Error("availability lookup failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "could not load availability for that date")
		return
	}
	utils.JSONData(c, availability)
}

// ScheduleBooking creates a booking directly, outside the chat flow.
func (h *SchedulingHandler) ScheduleBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request: "+err.Error())
		return
	}

	event, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("direct booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	utils.JSONData(c, event)
}

// ListServices returns the static service catalogue.
func (h *SchedulingHandler) ListServices(c *gin.Context) {
	utils.JSONData(c, scheduling.ServiceCatalogue())
}
