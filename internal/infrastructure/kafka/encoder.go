package kafka

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoEncoder сериализует события об обуви в google.protobuf.Struct.
type ProtoEncoder struct{}

func NewProtoEncoder() *ProtoEncoder {
	return &ProtoEncoder{}
}

// EncodeShoeEvent собирает событие изменения товара. Поле sale_price отсутствует, если скидки нет.
func (ProtoEncoder) EncodeShoeEvent(eventID string, eventType usecase.OutboxEventType, shoe *domain.Shoe, at time.Time) ([]byte, error) {
	fields := map[string]*structpb.Value{
		"event_id":        structpb.NewStringValue(eventID),
		"event_type":      structpb.NewStringValue(string(eventType)),
		"event_timestamp": structpb.NewStringValue(at.UTC().Format(time.RFC3339Nano)),
		"shoe_id":         structpb.NewNumberValue(float64(shoe.ID)),
		"slug":            structpb.NewStringValue(shoe.Slug),
		"name":            structpb.NewStringValue(shoe.Name),
		"image_src":       structpb.NewStringValue(shoe.ImageSrc),
		"price":           structpb.NewNumberValue(float64(shoe.Price)),
		"num_of_colors":   structpb.NewNumberValue(float64(shoe.NumOfColors)),
	}

	if shoe.SalePrice != nil {
		fields["sale_price"] = structpb.NewNumberValue(float64(*shoe.SalePrice))
	}
	if !shoe.ReleaseDate.IsZero() {
		fields["release_date"] = structpb.NewStringValue(shoe.ReleaseDate.UTC().Format(time.RFC3339))
	}

	data, err := proto.Marshal(&structpb.Struct{Fields: fields})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// DecodeShoeEvent разбирает payload события обратно в Struct (для потребителей и отладки).
func DecodeShoeEvent(payload []byte) (*structpb.Struct, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(payload, &s); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &s, nil
}
