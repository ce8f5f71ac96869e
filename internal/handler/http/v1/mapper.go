package v1

import "github.com/shenikar/transit_routing_system/internal/models"

// ModelToRoutePlanResponse преобразует доменную модель маршрута в DTO для ответа
func ModelToRoutePlanResponse(plan *models.RoutePlan) *RoutePlanResponse {
	resp := &RoutePlanResponse{
		TotalSeconds: plan.TotalSeconds,
		Steps:        make([]RouteStepResponse, len(plan.Steps)),
	}
	for i, step := range plan.Steps {
		resp.Steps[i] = RouteStepResponse{
			From: StepEndpointResponse{
				Name:      step.From.Name,
				Latitude:  step.From.Latitude,
				Longitude: step.From.Longitude,
			},
			To: StepEndpointResponse{
				Name:      step.To.Name,
				Latitude:  step.To.Latitude,
				Longitude: step.To.Longitude,
			},
			Time:            step.Time,
			TransferPenalty: step.TransferPenalty,
			IsTransfer:      step.IsTransfer,
			RouteInfo: RouteInfoResponse{
				Agency:     step.RouteInfo.Agency,
				RouteLong:  step.RouteInfo.RouteLong,
				RouteShort: step.RouteInfo.RouteShort,
			},
		}
	}
	if len(plan.Incidents) > 0 {
		resp.Incidents = make([]IncidentAlertResponse, len(plan.Incidents))
		for i, alert := range plan.Incidents {
			resp.Incidents[i] = IncidentAlertResponse{
				IncidentID:       alert.IncidentID,
				Type:             alert.Type,
				Description:      alert.Description,
				Severity:         alert.Severity,
				EstimatedMinutes: alert.EstimatedMinutes,
				Latitude:         alert.Latitude,
				Longitude:        alert.Longitude,
			}
		}
	}
	return resp
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO для ответа
func ModelToIncidentResponse(model *models.IncidentLocation) *IncidentResponse {
	return &IncidentResponse{
		ID:         model.ID,
		ReportTime: model.ReportTime,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Active:     model.Active,
		TypeID:     model.TypeID,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.IncidentLocation) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToIncidentTypeResponse преобразует модель типа инцидента в DTO
func ModelToIncidentTypeResponse(model *models.IncidentType) *IncidentTypeResponse {
	return &IncidentTypeResponse{
		ID:               model.ID,
		Type:             model.Type,
		Description:      model.Description,
		Severity:         model.Severity,
		EstimatedMinutes: model.EstimatedMinutes,
	}
}

// ModelsToActiveIncidentResponses преобразует активные инциденты в DTO
func ModelsToActiveIncidentResponses(incidents []models.ActiveIncident) []*ActiveIncidentResponse {
	responses := make([]*ActiveIncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = &ActiveIncidentResponse{
			IncidentResponse: IncidentResponse{
				ID:         incident.ID,
				ReportTime: incident.ReportTime,
				Latitude:   incident.Latitude,
				Longitude:  incident.Longitude,
				Active:     incident.Active,
				TypeID:     incident.TypeID,
			},
			Type:             incident.Type,
			Description:      incident.Description,
			Severity:         incident.Severity,
			EstimatedMinutes: incident.EstimatedMinutes,
		}
	}
	return responses
}
