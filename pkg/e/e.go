package e

import "fmt"

var (
	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrShoeNameRequired     = fmt.Errorf("shoe name is required")
	ErrSlugRequired         = fmt.Errorf("shoe slug is required")
	ErrInvalidSlug          = fmt.Errorf("slug may contain only lowercase letters, digits and dashes")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidSalePrice     = fmt.Errorf("sale price must not be negative")
	ErrInvalidReleaseDate   = fmt.Errorf("invalid release date")
	ErrInvalidColorCount    = fmt.Errorf("number of colors must be a non-negative integer")
	ErrInvalidVariant       = fmt.Errorf("unknown variant")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 404 Not Found
	ErrShoeNotFound = fmt.Errorf("shoe not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
