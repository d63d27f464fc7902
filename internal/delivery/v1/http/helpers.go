package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const maxImageSize = 15 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShoeForm — поля формы регистрации товара после разбора.
type ShoeForm struct {
	Slug        string
	Name        string
	Price       int64
	SalePrice   *int64
	ReleaseDate time.Time
	NumOfColors int
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var badRequestErrors = []error{
	e.ErrStatusBadRequest,
	e.ErrExpectedMultipart,
	e.ErrMissingFields,
	e.ErrShoeNameRequired,
	e.ErrSlugRequired,
	e.ErrInvalidSlug,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrPriceMustBePositive,
	e.ErrInvalidSalePrice,
	e.ErrInvalidReleaseDate,
	e.ErrInvalidColorCount,
	e.ErrInvalidVariant,
	e.ErrFileTooLarge,
	e.ErrUnsupportedMediaType,
}

// ToHTTPResponse сопоставляет ошибку со статусом и безопасным текстом для клиента.
// Для ошибок валидации текст собирается из всех найденных сентинелов.
func ToHTTPResponse(err error) (int, string) {
	if errors.Is(err, e.ErrShoeNotFound) {
		return http.StatusNotFound, e.ErrShoeNotFound.Error()
	}

	var msgs []string
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			msgs = append(msgs, target.Error())
		}
	}
	if len(msgs) > 0 {
		return http.StatusBadRequest, strings.Join(msgs, "; ")
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "59.99" or "60" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (1 billion dollars)
func parsePriceToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		// "60.500" тоже отвергается: точность считается по записи, а не по значению
		return 0, e.ErrPricePrecision
	}

	return d.Shift(2).Round(0).IntPart(), nil
}

// parseReleaseDate принимает RFC3339 или YYYY-MM-DD (полночь UTC). Пустая строка — дата неизвестна.
func parseReleaseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Time{}, e.Wrap(s, e.ErrInvalidReleaseDate)
}

func parseColorCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, e.Wrap(s, e.ErrInvalidColorCount)
	}

	return n, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}
	return nil
}

func parseShoeForm(r *http.Request) (*ShoeForm, error) {
	slug := strings.TrimSpace(r.FormValue("slug"))
	name := strings.TrimSpace(r.FormValue("name"))
	priceStr := r.FormValue("price")

	if slug == "" || name == "" || strings.TrimSpace(priceStr) == "" {
		return nil, e.Wrap(fmt.Sprintf("slug: %q, name: %q, price: %q", slug, name, priceStr), e.ErrMissingFields)
	}

	price, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, e.Wrap("price", err)
	}

	var salePrice *int64
	if s := r.FormValue("sale_price"); strings.TrimSpace(s) != "" {
		sp, err := parsePriceToCents(s)
		if err != nil {
			return nil, e.Wrap("sale_price", err)
		}
		salePrice = &sp
	}

	releaseDate, err := parseReleaseDate(r.FormValue("release_date"))
	if err != nil {
		return nil, err
	}

	colors, err := parseColorCount(r.FormValue("num_of_colors"))
	if err != nil {
		return nil, err
	}

	return &ShoeForm{
		Slug:        slug,
		Name:        name,
		Price:       price,
		SalePrice:   salePrice,
		ReleaseDate: releaseDate,
		NumOfColors: colors,
	}, nil
}

// parseImage читает необязательный файл из поля image. Отсутствие файла — (nil, nil).
func parseImage(files []*multipart.FileHeader) (*usecase.ShoeImage, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > 1 {
		return nil, e.Wrap("only one image is allowed", e.ErrStatusBadRequest)
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxImageSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewShoeImage(data, mimeType, fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	if fh.Size > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
