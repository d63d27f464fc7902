package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

type fakeShoeRepo struct {
	shoes     []domain.Shoe
	upserted  []*domain.Shoe
	noChanges bool
	upsertErr error
	listErr   error
}

func (f *fakeShoeRepo) Upsert(_ context.Context, shoe *domain.Shoe) (*UpsertShoeRes, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = append(f.upserted, shoe)

	stored := *shoe
	stored.ID = int64(len(f.upserted))
	return NewUpsertShoeRes(&stored, f.noChanges), nil
}

func (f *fakeShoeRepo) List(_ context.Context) ([]domain.Shoe, error) {
	return f.shoes, f.listErr
}

func (f *fakeShoeRepo) GetBySlug(_ context.Context, slug string) (*domain.Shoe, error) {
	for i := range f.shoes {
		if f.shoes[i].Slug == slug {
			s := f.shoes[i]
			return &s, nil
		}
	}

	return nil, e.ErrShoeNotFound
}

type fakeOutboxRepo struct {
	created   []*OutboxEvent
	createErr error
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	event.ID = int64(len(f.created) + 1)
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error {
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	shoes   map[string]domain.Shoe
	getErr  error
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{shoes: map[string]domain.Shoe{}}
}

func (f *fakeCache) GetShoe(_ context.Context, slug string) (*domain.Shoe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.shoes[slug]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeCache) SetShoe(_ context.Context, shoe *domain.Shoe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shoes[shoe.Slug] = *shoe
	return nil
}

func (f *fakeCache) DeleteShoe(_ context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.shoes, slug)
	f.deleted = append(f.deleted, slug)
	return nil
}

func (f *fakeCache) has(slug string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.shoes[slug]
	return ok
}

type fakeImages struct {
	uploaded  []*UploadImageReq
	cleaned   []string
	uploadErr error
}

func (f *fakeImages) UploadImage(_ context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploaded = append(f.uploaded, req)
	key := req.Slug + "/" + req.Image.Name
	return NewUploadImageRes(key, "http://cdn/shoes/"+key), nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.cleaned = append(f.cleaned, keys...)
}

type fakeEncoder struct{}

func (fakeEncoder) EncodeShoeEvent(eventID string, eventType OutboxEventType, shoe *domain.Shoe, _ time.Time) ([]byte, error) {
	return []byte(string(eventType) + ":" + eventID + ":" + shoe.Slug), nil
}

// fakeTx выполняет функцию без транзакции, как менеджер поверх in-memory хранилища.
type fakeTx struct {
	calls int
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}
