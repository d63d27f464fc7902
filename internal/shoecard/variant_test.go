package shoecard

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func cents(v int64) *int64 { return &v }

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		name string
		shoe domain.Shoe
		want Variant
	}{
		{
			name: "sale on an old shoe",
			shoe: domain.Shoe{SalePrice: cents(9000), ReleaseDate: now.AddDate(-10, 0, 0)},
			want: VariantOnSale,
		},
		{
			name: "released five days ago",
			shoe: domain.Shoe{ReleaseDate: now.AddDate(0, 0, -5)},
			want: VariantNewRelease,
		},
		{
			name: "released two years ago",
			shoe: domain.Shoe{ReleaseDate: now.AddDate(-2, 0, 0)},
			want: VariantDefault,
		},
		{
			name: "sale wins over new release",
			shoe: domain.Shoe{SalePrice: cents(5000), ReleaseDate: now.AddDate(0, 0, -2)},
			want: VariantOnSale,
		},
		{
			name: "zero sale price still counts as a sale",
			shoe: domain.Shoe{SalePrice: cents(0), ReleaseDate: now.AddDate(-1, 0, 0)},
			want: VariantOnSale,
		},
		{
			name: "negative sale price still counts as a sale",
			shoe: domain.Shoe{SalePrice: cents(-1)},
			want: VariantOnSale,
		},
		{
			name: "no release date",
			shoe: domain.Shoe{},
			want: VariantDefault,
		},
		{
			name: "announced for next week",
			shoe: domain.Shoe{ReleaseDate: now.AddDate(0, 0, 7)},
			want: VariantDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVariant(&tt.shoe, now))
		})
	}
}

func TestParseVariant(t *testing.T) {
	v, ok, err := ParseVariant("")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok, err = ParseVariant("new-release")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, VariantNewRelease, v)

	_, _, err = ParseVariant("clearance")
	assert.ErrorIs(t, err, e.ErrInvalidVariant)
}

func TestVariantTag(t *testing.T) {
	assert.Equal(t, "Sale", VariantOnSale.Tag())
	assert.Equal(t, "Just Released!", VariantNewRelease.Tag())
	assert.Empty(t, VariantDefault.Tag())
}
