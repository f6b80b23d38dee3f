package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
)

// NotifyHandler triggers the due-reminder dispatch.
type NotifyHandler struct {
	service    *app.Service
	dispatcher *app.Dispatcher
}

// NewNotifyHandler constructs a NotifyHandler.
func NewNotifyHandler(service *app.Service, dispatcher *app.Dispatcher) *NotifyHandler {
	return &NotifyHandler{service: service, dispatcher: dispatcher}
}

// Dispatch sends one notification for every due reminder that has not been
// notified today and reports how many went out.
func (h *NotifyHandler) Dispatch(c *gin.Context) {
	sent := h.dispatcher.DispatchDue(c.Request.Context(), h.service.All())
	respond(c, http.StatusOK, gin.H{"versendet": sent})
}
