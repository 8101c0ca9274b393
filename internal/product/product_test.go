package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProductDefaults(t *testing.T) {
	p, err := NewProduct(" ron001 ", "Ron Viejo de Caldas 8 Años", "Ron", "Botella 750ml", "Licores Nacionales S.A.", 45000, 65000, 100)
	require.NoError(t, err)
	require.Zero(t, p.ID)
	require.Equal(t, "RON001", p.SKU)
	require.Equal(t, StatusActive, p.Status)
	require.True(t, p.IsActive())
	require.False(t, p.CreatedAt.IsZero())
	require.False(t, p.UpdatedAt.Before(p.CreatedAt))
}

func TestNewProductRejectsNegativeStock(t *testing.T) {
	_, err := NewProduct("RON001", "Ron", "Ron", "Botella 750ml", "Proveedor", 45000, 65000, -1)
	require.ErrorIs(t, err, ErrInvalidStock)
}

func TestSetStock(t *testing.T) {
	p, err := NewProduct("RON001", "Ron", "Ron", "Botella 750ml", "Proveedor", 45000, 65000, 100)
	require.NoError(t, err)
	before := p.UpdatedAt

	require.NoError(t, p.SetStock(150))
	require.Equal(t, 150, p.Stock)
	require.False(t, p.UpdatedAt.Before(before))

	for _, negative := range []int{-1, -50, -1000} {
		err := p.SetStock(negative)
		require.ErrorIs(t, err, ErrInvalidStock)
		require.Equal(t, 150, p.Stock, "failed assignment must leave stock untouched")
	}
}

func TestValidatePrices(t *testing.T) {
	cases := []struct {
		name     string
		purchase float64
		sale     float64
		wantErr  bool
	}{
		{"both positive", 45000, 65000, false},
		{"zero purchase", 0, 65000, true},
		{"zero sale", 45000, 0, true},
		{"negative purchase", -1, 65000, true},
		{"negative sale", 45000, -0.01, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Product{PurchasePrice: tc.purchase, SalePrice: tc.sale}
			err := p.ValidatePrices()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDeactivateIdempotent(t *testing.T) {
	p, err := NewProduct("RON001", "Ron", "Ron", "Botella 750ml", "Proveedor", 45000, 65000, 100)
	require.NoError(t, err)

	p.Deactivate()
	require.Equal(t, StatusInactive, p.Status)
	require.False(t, p.IsActive())
	first := p.UpdatedAt

	p.Deactivate()
	require.Equal(t, StatusInactive, p.Status)
	require.False(t, p.UpdatedAt.Before(first))

	p.Activate()
	require.True(t, p.IsActive())
	p.Activate()
	require.True(t, p.IsActive())
}

func TestNormalizeSKU(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ron001", "RON001", false},
		{" RON001 ", "RON001", false},
		{"ron-001", "RON-001", false},
		{"RON 001", "", true},
		{"RON\t001", "", true},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizeSKU(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrInvalidSKU, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}

	long := make([]byte, maxSKULength+1)
	for i := range long {
		long[i] = 'A'
	}
	_, err := NormalizeSKU(string(long))
	require.ErrorIs(t, err, ErrInvalidSKU)
}
