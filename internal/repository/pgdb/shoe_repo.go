package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const shoeColumns = `id, slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at, is_archived`

// ShoeRepo реализует репозиторий обуви поверх PostgreSQL.
type ShoeRepo struct {
	pool *pgxpool.Pool
}

func NewShoeRepo(pool *pgxpool.Pool) *ShoeRepo {
	return &ShoeRepo{pool: pool}
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному slug.
// Запись обновляется только если изменилось хотя бы одно поле. Пустой image_src не затирает сохранённое изображение.
func (s *ShoeRepo) Upsert(ctx context.Context, shoe *domain.Shoe) (*usecase.UpsertShoeRes, error) {
	// $1 slug, $2 name, $3 image_src, $4 price, $5 sale_price, $6 release_date, $7 num_of_colors
	query := `
		WITH upsert AS (
		INSERT INTO shoes (slug, name, image_src, price, sale_price, release_date, num_of_colors)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug)
		DO UPDATE SET
			name = EXCLUDED.name,
			image_src = COALESCE(NULLIF(EXCLUDED.image_src, ''), shoes.image_src),
			price = EXCLUDED.price,
			sale_price = EXCLUDED.sale_price,
			release_date = EXCLUDED.release_date,
			num_of_colors = EXCLUDED.num_of_colors,
			is_archived = false,
			updated_at = NOW()
		WHERE
			shoes.name IS DISTINCT FROM EXCLUDED.name OR
			(EXCLUDED.image_src <> '' AND shoes.image_src IS DISTINCT FROM EXCLUDED.image_src) OR
			shoes.price IS DISTINCT FROM EXCLUDED.price OR
			shoes.sale_price IS DISTINCT FROM EXCLUDED.sale_price OR
			shoes.release_date IS DISTINCT FROM EXCLUDED.release_date OR
			shoes.num_of_colors IS DISTINCT FROM EXCLUDED.num_of_colors OR
			shoes.is_archived
		RETURNING ` + shoeColumns + `
		)
		SELECT ` + shoeColumns + `, false AS no_changes
		FROM upsert

		UNION ALL

		SELECT ` + shoeColumns + `, true AS no_changes
		FROM shoes
		WHERE slug = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	in := converter.ShoeToModel(shoe)

	var (
		model     converter.ShoeModel
		noChanges bool
	)
	err := tr.Conn(ctx, s.pool).QueryRow(ctx, query,
		in.Slug, in.Name, in.ImageSrc, in.Price, in.SalePrice, in.ReleaseDate, in.NumOfColors,
	).Scan(append(shoeDest(&model), &noChanges)...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertShoeRes(converter.ShoeToEntity(&model), noChanges), nil
}

// List возвращает активные товары: сначала свежие релизы, товары без даты релиза — в конце.
func (s *ShoeRepo) List(ctx context.Context) ([]domain.Shoe, error) {
	query := `
		SELECT ` + shoeColumns + `
		FROM shoes
		WHERE NOT is_archived
		ORDER BY release_date DESC NULLS LAST, id
	`

	rows, err := tr.Conn(ctx, s.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Shoe, 0)
	for rows.Next() {
		var model converter.ShoeModel
		if err := rows.Scan(shoeDest(&model)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *converter.ShoeToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetBySlug возвращает активный товар по slug или e.ErrShoeNotFound.
func (s *ShoeRepo) GetBySlug(ctx context.Context, slug string) (*domain.Shoe, error) {
	query := `
		SELECT ` + shoeColumns + `
		FROM shoes
		WHERE slug = $1 AND NOT is_archived
	`

	var model converter.ShoeModel
	if err := tr.Conn(ctx, s.pool).QueryRow(ctx, query, slug).Scan(shoeDest(&model)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(slug, e.ErrShoeNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ShoeToEntity(&model), nil
}

// shoeDest возвращает указатели на поля модели в порядке shoeColumns.
func shoeDest(m *converter.ShoeModel) []any {
	return []any{
		&m.ID, &m.Slug, &m.Name, &m.ImageSrc, &m.Price, &m.SalePrice,
		&m.ReleaseDate, &m.NumOfColors, &m.CreatedAt, &m.UpdatedAt, &m.IsArchived,
	}
}
