package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// ReminderHandler exposes the reminder collection over HTTP.
type ReminderHandler struct {
	service           *app.Service
	urgentHorizonDays int
}

// NewReminderHandler constructs a ReminderHandler.
func NewReminderHandler(service *app.Service, urgentHorizonDays int) *ReminderHandler {
	return &ReminderHandler{service: service, urgentHorizonDays: urgentHorizonDays}
}

// createRequest is the POST body for a new reminder.
type createRequest struct {
	Title         string          `json:"titel"`
	Description   string          `json:"beschreibung"`
	Category      domain.Category `json:"typ"`
	DeadlineDate  common.Date     `json:"fristDatum"`
	LeadDays      *int            `json:"vorlaufTage"`
	Priority      domain.Priority `json:"prioritaet"`
	CaseReference string          `json:"aktenzeichen"`
	Recurring     bool            `json:"wiederholend"`
	Interval      domain.Interval `json:"wiederholungsIntervall"`
}

// updateRequest is the PUT body; absent fields stay unchanged.
type updateRequest struct {
	Title         *string          `json:"titel"`
	Description   *string          `json:"beschreibung"`
	Category      *domain.Category `json:"typ"`
	DeadlineDate  *common.Date     `json:"fristDatum"`
	LeadDays      *int             `json:"vorlaufTage"`
	Priority      *domain.Priority `json:"prioritaet"`
	CaseReference *string          `json:"aktenzeichen"`
	Recurring     *bool            `json:"wiederholend"`
	Interval      *domain.Interval `json:"wiederholungsIntervall"`
}

// statusRequest is the body of a status transition.
type statusRequest struct {
	Status domain.Status `json:"status"`
}

// List returns every reminder sorted by deadline and priority.
func (h *ReminderHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.service.All())
}

// Get returns one reminder by id.
func (h *ReminderHandler) Get(c *gin.Context) {
	entity, err := h.service.Get(common.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, entity)
}

// Create adds a new reminder.
func (h *ReminderHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	entity, err := h.service.Create(c.Request.Context(), app.Draft{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		DeadlineDate:  req.DeadlineDate,
		LeadDays:      req.LeadDays,
		Priority:      req.Priority,
		CaseReference: req.CaseReference,
		Recurring:     req.Recurring,
		Interval:      req.Interval,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, entity)
}

// Update applies a partial update to one reminder.
func (h *ReminderHandler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	entity, err := h.service.Update(c.Request.Context(), common.ID(c.Param("id")), app.Patch{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		DeadlineDate:  req.DeadlineDate,
		LeadDays:      req.LeadDays,
		Priority:      req.Priority,
		CaseReference: req.CaseReference,
		Recurring:     req.Recurring,
		Interval:      req.Interval,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, entity)
}

// Delete removes one reminder.  Deleting an absent id succeeds.
func (h *ReminderHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), common.ID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus applies a user-driven status transition.
func (h *ReminderHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid request body"))
		return
	}

	entity, err := h.service.SetStatus(c.Request.Context(), common.ID(c.Param("id")), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, entity)
}

// Reconcile runs the overdue pass and returns the number of transitions.
func (h *ReminderHandler) Reconcile(c *gin.Context) {
	changed, err := h.service.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"verpasst": changed})
}

// Urgent returns the reminders within the urgency horizon.  The horizon can be
// overridden with ?tage=N.
func (h *ReminderHandler) Urgent(c *gin.Context) {
	horizon := h.urgentHorizonDays
	if v := c.Query("tage"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(c, errors.Newf(errors.ErrCodeBadRequest, "invalid horizon %q", v))
			return
		}
		horizon = n
	}
	respond(c, http.StatusOK, h.service.Urgent(horizon))
}

// NextOccurrence returns the suggested next deadline of a recurring reminder.
// The successor is never created implicitly.
func (h *ReminderHandler) NextOccurrence(c *gin.Context) {
	next, err := h.service.NextOccurrence(common.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"naechsteFrist": next})
}
