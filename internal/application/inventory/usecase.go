package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/keymutex"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

// UseCase coordina el registro de movimientos: validar → lock por producto →
// revalidar con el stock fresco → aplicar + anexar al kardex en una sola
// transacción. Es el único camino que muta el stock de un producto.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	movementRepo repository.MovementRepository
	validator    Validator
	locks        *keymutex.KeyMutex
	cache        StockCache // puede ser nil
	log          *logger.Logger
	lockTimeout  time.Duration
}

// NewUseCase construye el coordinador. cache puede ser nil (sin Redis).
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
	cache StockCache,
	log *logger.Logger,
	lockTimeout time.Duration,
) *UseCase {
	if lockTimeout <= 0 {
		lockTimeout = 2 * time.Second
	}
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		locks:        keymutex.New(),
		cache:        cache,
		log:          log.WithComponent("inventory"),
		lockTimeout:  lockTimeout,
	}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Kind      string
	Quantity  decimal.Decimal
	Actor     string // identidad del caller, la aporta el middleware de auth
	Notes     string
}

// RecordMovement registra un movimiento entrada/salida. Devuelve el movimiento
// comprometido (con ID y fecha asignados) o un error de dominio; un movimiento
// rechazado no deja rastro alguno en stock ni en el kardex.
func (uc *UseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	kind := entity.MovementKind(input.Kind)

	// Chequeos estáticos, sin tocar estado
	if err := uc.validator.ValidateRequest(kind, input.Quantity); err != nil {
		return nil, err
	}

	// Existencia del producto (catálogo como colaborador externo)
	exists, err := uc.productRepo.Exists(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}

	// Lock por producto con espera acotada; productos distintos no compiten
	lockCtx, cancel := context.WithTimeout(ctx, uc.lockTimeout)
	defer cancel()
	if err := uc.locks.Lock(lockCtx, input.ProductID); err != nil {
		return nil, domain.ErrBusy
	}
	defer uc.locks.Unlock(input.ProductID)

	// Con el lock en mano el movimiento corre hasta commit o rechazo;
	// la cancelación del request ya no lo interrumpe.
	txCtx := context.WithoutCancel(ctx)

	var committed *entity.Movement
	err = uc.txRunner.Run(txCtx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		current, err := stockRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		// Revalidar contra el stock leído bajo el lock
		if err := uc.validator.ValidateStock(input.ProductID, kind, input.Quantity, current); err != nil {
			return err
		}

		mov := &entity.Movement{
			ProductID: input.ProductID,
			Kind:      kind,
			Quantity:  input.Quantity,
			Actor:     input.Actor,
			Notes:     input.Notes,
		}
		newStock := current.Add(mov.SignedDelta())
		if newStock.IsNegative() {
			// Inalcanzable tras la revalidación; nunca se ajusta en silencio
			return &domain.InvariantViolationError{ProductID: input.ProductID, Attempted: newStock}
		}
		if err := stockRepo.Update(input.ProductID, newStock); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		committed = mov
		return nil
	})
	if err != nil {
		return nil, uc.classify(input, err)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(txCtx, input.ProductID)
	}
	uc.log.Info().
		Int64("movement_id", committed.ID).
		Str("product_id", committed.ProductID).
		Str("kind", string(committed.Kind)).
		Str("quantity", committed.Quantity.String()).
		Str("actor", committed.Actor).
		Msg("movimiento registrado")
	return committed, nil
}

// classify separa los rechazos de negocio de los fallos de infraestructura:
// los primeros vuelven tal cual; el resto se envuelve como ErrPersistence
// (la transacción ya fue revertida por el TxRunner).
func (uc *UseCase) classify(input MovementInput, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrProductNotFound):
		return err
	case errors.Is(err, domain.ErrInvariantViolation):
		uc.log.Error().
			Str("product_id", input.ProductID).
			Str("kind", input.Kind).
			Str("quantity", input.Quantity.String()).
			Err(err).
			Msg("violación de invariante de stock, transacción abortada")
		return err
	default:
		uc.log.Error().Str("product_id", input.ProductID).Err(err).Msg("fallo de persistencia, rollback completo")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
}

// GetStock devuelve el stock actual. Lectura sin lock: para dashboards una
// leve obsolescencia es aceptable; pasa por el cache si está configurado.
func (uc *UseCase) GetStock(ctx context.Context, productID string) (decimal.Decimal, error) {
	if uc.cache != nil {
		if stock, ok := uc.cache.Get(ctx, productID); ok {
			return stock, nil
		}
	}
	stock, err := uc.stockRepo.Get(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, productID, stock)
	}
	return stock, nil
}

// GetHistory devuelve el kardex más reciente primero (fecha DESC, id DESC).
// productID vacío = todos los productos.
func (uc *UseCase) GetHistory(ctx context.Context, productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if productID != "" {
		return uc.movementRepo.ListByProduct(productID, limit, offset)
	}
	return uc.movementRepo.List(limit, offset)
}
