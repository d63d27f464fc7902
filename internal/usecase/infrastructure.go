package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// EventEncoder сериализует событие изменения товара для outbox.
type EventEncoder interface {
	EncodeShoeEvent(eventID string, eventType OutboxEventType, shoe *domain.Shoe, at time.Time) ([]byte, error)
}
