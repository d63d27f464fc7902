package converter

import "time"

// ShoeModel представляет запись таблицы shoes в PostgreSQL.
type ShoeModel struct {
	ID          int64      `db:"id"`
	Slug        string     `db:"slug"`
	Name        string     `db:"name"`
	ImageSrc    string     `db:"image_src"`
	Price       int64      `db:"price"`
	SalePrice   *int64     `db:"sale_price"`
	ReleaseDate *time.Time `db:"release_date"`
	NumOfColors int32      `db:"num_of_colors"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	IsArchived  bool       `db:"is_archived"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ShoeID      int64      `db:"shoe_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
