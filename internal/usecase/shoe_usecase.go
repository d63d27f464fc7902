package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/shoecard"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ShoeUseCase реализует бизнес-логику витрины: каталог обуви и карточки товаров.
type ShoeUseCase struct {
	shoeRepo    ShoeRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	imagesInfra ImagesInfra
	encoder     EventEncoder
	txManager   tr.Manager
	logger      logger.Logger
	promo       string
	pageSize    int
	now         func() time.Time
}

func NewShoeUC(
	shoeRepo ShoeRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	encoder EventEncoder,
	txManager tr.Manager,
	logger logger.Logger,
	promo string,
	pageSize int,
) *ShoeUseCase {
	return &ShoeUseCase{
		shoeRepo:    shoeRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		imagesInfra: imagesInfra,
		encoder:     encoder,
		txManager:   txManager,
		logger:      logger,
		promo:       promo,
		pageSize:    pageSize,
		now:         time.Now,
	}
}

// WithClock подменяет источник текущего времени.
func (s *ShoeUseCase) WithClock(now func() time.Time) *ShoeUseCase {
	s.now = now
	return s
}

// RegisterShoe добавляет или обновляет модель обуви. Изменение товара и событие outbox
// сохраняются в одной транзакции. Если запись не изменилась, событие не создаётся и возвращается nil.
func (s *ShoeUseCase) RegisterShoe(ctx context.Context, req *RegisterShoeReq) (*OutboxEvent, error) {
	const op = "ShoeUseCase.RegisterShoe"

	if err := s.validateShoe(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var image *UploadImageRes
	if req.Image != nil {
		var err error
		image, err = s.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Slug, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	imageSrc := ""
	if image != nil {
		imageSrc = image.URL
	}
	shoe := domain.NewShoe(req.Slug, strings.TrimSpace(req.Name), imageSrc, req.Price, req.SalePrice, req.ReleaseDate, req.NumOfColors)

	var event *OutboxEvent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.shoeRepo.Upsert(ctx, shoe)
		if err != nil {
			return err
		}
		if res.NoChanges {
			return nil
		}

		event, err = s.createEvent(ctx, res.Shoe)
		return err
	})
	if err != nil {
		// Изображение уже лежит в MinIO, а ссылка на него не сохранилась
		if image != nil {
			s.logger.Warnf("Cleaning up orphaned image after transaction failure. slug: %s, error: %v", req.Slug, e.Wrap(op, err))
			s.imagesInfra.CleanupImages([]string{image.Key})
		}

		return nil, e.Wrap(op, err)
	}

	if event == nil {
		return nil, nil
	}

	// Удаление из кэша старых данных товара
	if err := s.cacheRepo.DeleteShoe(ctx, req.Slug); err != nil {
		s.logger.Warnf("Failed to evict shoe from cache: %v", e.Wrap(op, err))
	}

	return event, nil
}

// ListShoeCards возвращает карточки активных товаров, начиная с самых свежих релизов.
func (s *ShoeUseCase) ListShoeCards(ctx context.Context, req *ListShoesReq) ([]shoecard.Card, error) {
	const op = "ShoeUseCase.ListShoeCards"

	shoes, err := s.shoeRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cards := shoecard.NewCards(shoes, s.now())
	if req != nil && req.Variant != "" {
		cards = shoecard.Filter(cards, req.Variant)
	}

	if s.pageSize > 0 && len(cards) > s.pageSize {
		cards = cards[:s.pageSize]
	}

	return cards, nil
}

// GetShoeCard возвращает карточку товара по slug. Сначала смотрит в кэш, затем в БД.
func (s *ShoeUseCase) GetShoeCard(ctx context.Context, slug string) (*shoecard.Card, error) {
	const op = "ShoeUseCase.GetShoeCard"

	if strings.TrimSpace(slug) == "" {
		return nil, e.Wrap(op, e.ErrShoeNotFound)
	}

	shoe, err := s.cacheRepo.GetShoe(ctx, slug)
	if err != nil {
		s.logger.Warnf("Cache lookup failed, falling back to DB: %v", e.Wrap(op, err))
	}

	if shoe == nil {
		shoe, err = s.shoeRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товара в кэш
		cached := *shoe
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := s.cacheRepo.SetShoe(bgCtx, &cached); err != nil {
				s.logger.Warnf("Failed to cache shoe in background: %v", e.Wrap(op, err))
			}
		}()
	}

	card := shoecard.NewCard(shoe, s.now())
	return &card, nil
}

// Header возвращает шапку витрины.
func (s *ShoeUseCase) Header() *domain.Header {
	return domain.NewHeader(s.promo)
}

// createEvent сериализует изменение товара и кладёт его в outbox в текущей транзакции.
func (s *ShoeUseCase) createEvent(ctx context.Context, shoe *domain.Shoe) (*OutboxEvent, error) {
	eventID := uuid.NewString()
	at := s.now().UTC()

	payload, err := s.encoder.EncodeShoeEvent(eventID, ShoeUpserted, shoe, at)
	if err != nil {
		return nil, err
	}

	return s.outboxRepo.Create(ctx, NewOutboxEvent(eventID, ShoeUpserted, shoe.ID, payload, at))
}

// validateShoe проверяет корректность входных данных запроса.
func (s *ShoeUseCase) validateShoe(req *RegisterShoeReq) error {
	var errs []error

	if strings.TrimSpace(req.Slug) == "" {
		errs = append(errs, e.ErrSlugRequired)
	} else if !slugPattern.MatchString(req.Slug) {
		errs = append(errs, e.ErrInvalidSlug)
	}

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, e.ErrShoeNameRequired)
	}

	if req.Price <= 0 {
		errs = append(errs, e.ErrPriceMustBePositive)
	}

	if req.SalePrice != nil && *req.SalePrice < 0 {
		errs = append(errs, e.ErrInvalidSalePrice)
	}

	if req.NumOfColors < 0 {
		errs = append(errs, e.ErrInvalidColorCount)
	}

	return errors.Join(errs...)
}
