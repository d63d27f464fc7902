package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/shoecard"
)

// SHOE USECASE

// RegisterShoeReq — запрос на добавление или обновление модели обуви.
type RegisterShoeReq struct {
	Slug        string
	Name        string
	Price       int64  // в центах
	SalePrice   *int64 // в центах, nil — без скидки
	ReleaseDate time.Time
	NumOfColors int
	Image       *ShoeImage // необязательно при обновлении
}

// ShoeImage представляет изображение, загруженное через multipart/form-data.
type ShoeImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type, определённый по содержимому
	Name     string // оригинальное имя файла (для логов)
}

// ListShoesReq — запрос карточек витрины. Пустой Variant — все варианты.
type ListShoesReq struct {
	Variant shoecard.Variant
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ShoeUpserted OutboxEventType = "shoe_upserted"
)

// OutboxEvent — событие, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ShoeID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTUCTURE

// WriteRawMessageReq — уже сериализованное сообщение для Kafka.
type WriteRawMessageReq struct {
	ShoeID  int64
	Payload []byte
}

// UploadImageReq — запрос на загрузку изображения товара.
type UploadImageReq struct {
	Slug  string
	Image ShoeImage
}

// UploadImageRes — ключ объекта в MinIO и публичная ссылка на него.
type UploadImageRes struct {
	Key string
	URL string
}

// REPOSITORIES

type UpsertShoeRes struct {
	Shoe      *domain.Shoe
	NoChanges bool
}

// MAPPERS

func NewRegisterShoeReq(slug, name string, price int64, salePrice *int64, releaseDate time.Time, numOfColors int, image *ShoeImage) *RegisterShoeReq {
	return &RegisterShoeReq{
		Slug:        slug,
		Name:        name,
		Price:       price,
		SalePrice:   salePrice,
		ReleaseDate: releaseDate,
		NumOfColors: numOfColors,
		Image:       image,
	}
}

func NewShoeImage(data []byte, mimeType string, name string) *ShoeImage {
	return &ShoeImage{
		Data:     data,
		MimeType: mimeType,
		Name:     name,
	}
}

func NewListShoesReq(variant shoecard.Variant) *ListShoesReq {
	return &ListShoesReq{Variant: variant}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, shoeID int64, payload []byte, createdAt time.Time) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ShoeID:    shoeID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: createdAt,
	}
}

func NewWriteRawMessageReq(shoeID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ShoeID:  shoeID,
		Payload: payload,
	}
}

func NewUploadImageReq(slug string, image ShoeImage) *UploadImageReq {
	return &UploadImageReq{
		Slug:  slug,
		Image: image,
	}
}

func NewUploadImageRes(key, url string) *UploadImageRes {
	return &UploadImageRes{
		Key: key,
		URL: url,
	}
}

func NewUpsertShoeRes(shoe *domain.Shoe, noChanges bool) *UpsertShoeRes {
	return &UpsertShoeRes{
		Shoe:      shoe,
		NoChanges: noChanges,
	}
}
