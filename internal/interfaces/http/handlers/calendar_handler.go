package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// CalendarHandler exposes the month-view calendar aggregation.
type CalendarHandler struct {
	service *app.Service
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(service *app.Service) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Month returns the calendar view for ?jahr=YYYY&monat=M; both default to the
// current month.
func (h *CalendarHandler) Month(c *gin.Context) {
	today := h.service.Today()
	year := today.Year()
	month := today.Month()

	if v := c.Query("jahr"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, errors.Newf(errors.ErrCodeBadRequest, "invalid year %q", v))
			return
		}
		year = n
	}
	if v := c.Query("monat"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			respondError(c, errors.Newf(errors.ErrCodeBadRequest, "invalid month %q", v))
			return
		}
		month = time.Month(n)
	}

	respond(c, http.StatusOK, h.service.MonthView(year, month))
}
