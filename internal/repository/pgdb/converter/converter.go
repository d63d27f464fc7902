package converter

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// ShoeToModel преобразует доменную модель в запись БД. Нулевая дата релиза хранится как NULL.
func ShoeToModel(entity *domain.Shoe) *ShoeModel {
	return &ShoeModel{
		ID:          entity.ID,
		Slug:        entity.Slug,
		Name:        entity.Name,
		ImageSrc:    entity.ImageSrc,
		Price:       entity.Price,
		SalePrice:   entity.SalePrice,
		ReleaseDate: timeToPointer(entity.ReleaseDate),
		NumOfColors: int32(entity.NumOfColors),
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		IsArchived:  entity.IsArchived,
	}
}

func ShoeToEntity(model *ShoeModel) *domain.Shoe {
	return &domain.Shoe{
		ID:          model.ID,
		Slug:        model.Slug,
		Name:        model.Name,
		ImageSrc:    model.ImageSrc,
		Price:       model.Price,
		SalePrice:   model.SalePrice,
		ReleaseDate: pointerToTime(model.ReleaseDate),
		NumOfColors: int(model.NumOfColors),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		IsArchived:  model.IsArchived,
	}
}

func OutboxEventToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		ShoeID:      entity.ShoeID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func OutboxEventToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		ShoeID:      model.ShoeID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func OutboxEventsToEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	res := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		res = append(res, OutboxEventToEntity(m))
	}

	return res
}

func timeToPointer(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func pointerToTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
