package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/transit_routing_system/internal/config"
	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/shenikar/transit_routing_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	routeService    service.RouteService
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(routeService service.RouteService, incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		routeService:    routeService,
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Find a route between two coordinates
// @Description Resolve each coordinate to the nearest station and find the minimum-total-time route between them.
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteByCoordinatesRequest true "Route search request"
// @Success 200 {object} RoutePlanResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Station not found or no route exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/by-coordinates [post]
func (h *Handler) findRouteByCoordinates(c *gin.Context) {
	var input RouteByCoordinatesRequest
	log := h.logger.WithField("method", "findRouteByCoordinates")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.routeService.FindRouteByCoordinates(
		c.Request.Context(),
		input.OriginLatitude, input.OriginLongitude,
		input.DestinationLatitude, input.DestinationLongitude,
	)
	if err != nil {
		h.respondRouteError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRoutePlanResponse(plan))
}

// @Summary Find a route between two named stations
// @Description Fan out over every station matching each name (optionally filtered by agency) and return the globally minimal route.
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteByNamesRequest true "Route search request"
// @Success 200 {object} RoutePlanResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Station not found or no route exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/by-names [post]
func (h *Handler) findRouteByNames(c *gin.Context) {
	var input RouteByNamesRequest
	log := h.logger.WithField("method", "findRouteByNames")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.routeService.FindRouteByNames(
		c.Request.Context(),
		input.StartName, input.EndName,
		input.StartAgency, input.EndAgency,
	)
	if err != nil {
		h.respondRouteError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRoutePlanResponse(plan))
}

// respondRouteError различает таксономию ошибок поиска: станция не найдена
// и недостижимость — разные ответы клиенту
func (h *Handler) respondRouteError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrStationNotFound):
		log.WithError(err).Warn("Station not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
	case errors.Is(err, service.ErrNoRoute):
		log.WithError(err).Warn("No route between stations")
		c.JSON(http.StatusNotFound, gin.H{"error": "no route found"})
	case errors.Is(err, service.ErrSearchBudgetExceeded):
		log.WithError(err).Warn("Route search exceeded budget")
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "route search timed out"})
	default:
		log.WithError(err).Error("Failed to find route in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a new incident
// @Description Report an incident at a location. Nearby journeys get the incident type's estimated delay. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.ReportIncident(c.Request.Context(), input.TypeID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of all incidents. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Expire an incident
// @Description Deactivate an incident and retract its delay contribution from nearby journeys. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) expireIncident(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "expireIncident").WithField("id", id)

	if err := h.incidentService.ExpireIncident(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrIncidentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to expire incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to expire incident"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create a new incident type
// @Description Create an incident type with severity and estimated duration in minutes. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incidentType body CreateIncidentTypeRequest true "Incident type creation request"
// @Success 201 {object} IncidentTypeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incident-types [post]
func (h *Handler) createIncidentType(c *gin.Context) {
	var input CreateIncidentTypeRequest
	log := h.logger.WithField("method", "createIncidentType")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := &models.IncidentType{
		Type:             input.Type,
		Description:      input.Description,
		Severity:         input.Severity,
		EstimatedMinutes: input.EstimatedMinutes,
	}
	if err := h.incidentService.CreateIncidentType(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident type in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentTypeResponse(model))
}

// @Summary Get a list of incident types
// @Description Get all registered incident types.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {array} IncidentTypeResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incident-types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidentTypes")

	types, err := h.incidentService.ListIncidentTypes(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incident types from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	responses := make([]*IncidentTypeResponse, len(types))
	for i := range types {
		responses[i] = ModelToIncidentTypeResponse(&types[i])
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Check location for incidents
// @Description Record a user's position and return active incidents near it. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {array} ActiveIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents, err := h.incidentService.CheckLocation(c.Request.Context(), input.UserID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to check location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToActiveIncidentResponses(incidents))
}

// @Summary Get user statistics
// @Description Get the count of distinct users who checked their location within the stats window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
