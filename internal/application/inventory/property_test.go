package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Propiedades sobre secuencias aleatorias de movimientos: el stock nunca es
// negativo, se conserva frente a los movimientos comprometidos y los
// rechazados no dejan rastro.
func TestMovementSequenceProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.Int64Range(0, 100).Draw(t, "initialStock")

		store := newMemStore()
		store.addProduct("p1", "Producto", initial)
		uc := newTestUseCase(store, nil)

		model := decimal.NewFromInt(initial) // stock esperado
		committed := 0

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			kind := rapid.SampledFrom([]string{"entrada", "salida"}).Draw(t, "kind")
			qty := rapid.Int64Range(1, 60).Draw(t, "qty")

			mov, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
				ProductID: "p1",
				Kind:      kind,
				Quantity:  decimal.NewFromInt(qty),
				Actor:     "user-1",
			})

			if kind == "salida" && decimal.NewFromInt(qty).GreaterThan(model) {
				// Debe rechazarse sin tocar nada
				if !errors.Is(err, domain.ErrInsufficientStock) {
					t.Fatalf("esperaba stock insuficiente, obtuve %v", err)
				}
			} else {
				if err != nil {
					t.Fatalf("movimiento válido rechazado: %v", err)
				}
				committed++
				if kind == "entrada" {
					model = model.Add(decimal.NewFromInt(qty))
				} else {
					model = model.Sub(decimal.NewFromInt(qty))
				}
				if mov.Kind != entity.MovementKind(kind) {
					t.Fatalf("kind inesperado: %s", mov.Kind)
				}
			}

			// Invariante continuo, no solo al final
			current := store.stockOf("p1")
			if current.IsNegative() {
				t.Fatalf("stock negativo: %s", current)
			}
			if !current.Equal(model) {
				t.Fatalf("stock %s difiere del modelo %s", current, model)
			}
		}

		// Exactamente una fila de kardex por movimiento comprometido
		if got := store.movementCount(); got != committed {
			t.Fatalf("kardex con %d filas, comprometidos %d", got, committed)
		}
	})
}
