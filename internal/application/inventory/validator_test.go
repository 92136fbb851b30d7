package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

func TestValidateRequest(t *testing.T) {
	var v inventory.Validator

	tests := []struct {
		name     string
		kind     entity.MovementKind
		quantity decimal.Decimal
		wantErr  error
	}{
		{"entrada válida", entity.MovementKindInbound, decimal.NewFromInt(10), nil},
		{"salida válida", entity.MovementKindOutbound, decimal.NewFromInt(1), nil},
		{"kind desconocido", entity.MovementKind("ajuste"), decimal.NewFromInt(1), domain.ErrInvalidKind},
		{"kind vacío", entity.MovementKind(""), decimal.NewFromInt(1), domain.ErrInvalidKind},
		{"kind con mayúsculas", entity.MovementKind("ENTRADA"), decimal.NewFromInt(1), domain.ErrInvalidKind},
		{"cantidad cero", entity.MovementKindInbound, decimal.Zero, domain.ErrInvalidQuantity},
		{"cantidad negativa", entity.MovementKindOutbound, decimal.NewFromInt(-3), domain.ErrInvalidQuantity},
		{"cantidad no entera", entity.MovementKindInbound, decimal.RequireFromString("2.5"), domain.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRequest(tt.kind, tt.quantity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateStock(t *testing.T) {
	var v inventory.Validator

	t.Run("entrada nunca depende del stock", func(t *testing.T) {
		err := v.ValidateStock("p1", entity.MovementKindInbound, decimal.NewFromInt(1000), decimal.Zero)
		assert.NoError(t, err)
	})

	t.Run("salida dentro del stock", func(t *testing.T) {
		err := v.ValidateStock("p1", entity.MovementKindOutbound, decimal.NewFromInt(5), decimal.NewFromInt(5))
		assert.NoError(t, err)
	})

	t.Run("salida mayor al stock", func(t *testing.T) {
		err := v.ValidateStock("p1", entity.MovementKindOutbound, decimal.NewFromInt(5), decimal.NewFromInt(2))
		require.ErrorIs(t, err, domain.ErrInsufficientStock)

		var insufficient *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, "p1", insufficient.ProductID)
		assert.True(t, insufficient.Requested.Equal(decimal.NewFromInt(5)))
		assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(2)))
	})

	t.Run("es idempotente y sin efectos", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			err := v.ValidateStock("p1", entity.MovementKindOutbound, decimal.NewFromInt(1), decimal.NewFromInt(1))
			assert.NoError(t, err)
		}
	})
}
