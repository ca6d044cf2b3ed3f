package v1

import "github.com/pchukwuemeka424/famGuard-sub003/internal/models"

// DTOToLocationFix преобразует DTO фикса в доменную модель
func DTOToLocationFix(dto LocationFixRequest) models.LocationFix {
	return models.LocationFix{
		Latitude:   dto.Latitude,
		Longitude:  dto.Longitude,
		Accuracy:   dto.Accuracy,
		Address:    dto.Address,
		CapturedAt: dto.CapturedAt,
	}
}

// DTOToIncidentModel преобразует DTO сообщения об инциденте в доменную модель
func DTOToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		Category:    dto.Category,
		Title:       dto.Title,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Category:    model.Category,
		Title:       model.Title,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
