package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "59.99", want: 5999},
		{in: "60", want: 6000},
		{in: " 0.5 ", want: 50},
		{in: "1234567.5", want: 123456750},
		{in: "0", want: 0},
		{in: "", wantErr: e.ErrMissingFields},
		{in: "abc", wantErr: e.ErrInvalidPrice},
		{in: "-1", wantErr: e.ErrInvalidPrice},
		{in: "1000000001", wantErr: e.ErrInvalidPrice},
		{in: "9.999", wantErr: e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePriceToCents(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReleaseDate(t *testing.T) {
	got, err := parseReleaseDate("2026-09-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 16, 0, 0, 0, 0, time.UTC), got)

	got, err = parseReleaseDate("2026-09-16T10:00:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 16, 7, 0, 0, 0, time.UTC), got)

	got, err = parseReleaseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseReleaseDate("16/09/2026")
	assert.ErrorIs(t, err, e.ErrInvalidReleaseDate)
}

func TestParseColorCount(t *testing.T) {
	n, err := parseColorCount("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = parseColorCount("")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = parseColorCount("-1")
	assert.ErrorIs(t, err, e.ErrInvalidColorCount)

	_, err = parseColorCount("two")
	assert.ErrorIs(t, err, e.ErrInvalidColorCount)
}

func TestToHTTPResponse(t *testing.T) {
	code, msg := ToHTTPResponse(e.Wrap("ShoeUseCase.GetShoeCard", e.ErrShoeNotFound))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, e.ErrShoeNotFound.Error(), msg)

	code, msg = ToHTTPResponse(errors.Join(e.ErrSlugRequired, e.ErrPriceMustBePositive))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, msg, e.ErrSlugRequired.Error())
	assert.Contains(t, msg, e.ErrPriceMustBePositive.Error())

	code, msg = ToHTTPResponse(errors.New("pq: connection reset"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
