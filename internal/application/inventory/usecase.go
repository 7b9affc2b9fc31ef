package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/internal/application/audit"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/posting"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma
// transaccional: bloqueo de fila sobre el producto (SELECT FOR UPDATE),
// alta del movimiento y aplicación del delta en la misma tx.
//
// Es el camino administrativo directo (return, damage, adjustment y
// correcciones in/out); el motor de posteo reutiliza ApplyInTx para los
// movimientos derivados de ventas y compras.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	auditor     *audit.Recorder
}

// NewRegisterMovementUseCase construye el caso de uso. movRepo se usa solo
// para lecturas; las escrituras pasan siempre por el txRunner.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository, auditor *audit.Recorder) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo, auditor: auditor}
}

// RegisterMovement valida la entrada, ejecuta el movimiento en una tx y
// audita post-commit. Devuelve el movimiento persistido.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID, ipAddress string, in dto.RegisterMovementRequest) (*entity.StockMovement, error) {
	if !posting.ValidMovementType(in.MovementType) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	// Magnitudes negativas solo tienen sentido en adjustment
	if in.Quantity < 0 && in.MovementType != entity.MovementTypeAdjustment {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	mov := &entity.StockMovement{
		ProductID:    in.ProductID,
		ProductName:  product.Name,
		Quantity:     in.Quantity,
		MovementType: in.MovementType,
		BranchID:     in.BranchID,
		Reference:    in.Reference,
		CreatedBy:    userID,
		Note:         in.Note,
		CreatedAt:    time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Releer con bloqueo de fila dentro de la tx
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		return ApplyInTx(movRepo, productRepo, locked, mov)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(userID, ipAddress, audit.Entry{
		Action:     entity.AuditActionCreate,
		EntityType: "StockMovement",
		EntityID:   mov.ID,
		Changes:    audit.MovementSnapshot(mov),
	})
	return mov, nil
}

// GetMovement obtiene un movimiento por ID.
func (uc *RegisterMovementUseCase) GetMovement(id string) (*entity.StockMovement, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// ListMovements lista movimientos, opcionalmente por sucursal.
func (uc *RegisterMovementUseCase) ListMovements(branchID string, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.List(branchID, limit, offset)
}

// ListByProduct historial de movimientos de un producto.
func (uc *RegisterMovementUseCase) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByProduct(productID, limit, offset)
}

// ApplyInTx crea el movimiento y aplica su delta sobre el producto usando
// los repositorios del caller (misma transacción). El caller debe haber
// obtenido product con GetForUpdate.
//
// Regla de aplicación:
//
//	in, return  → quantity += |q|
//	out, damage → quantity -= |q|   (falla si el resultado sería negativo)
//	adjustment  → quantity += q     (delta con signo, sin piso)
func ApplyInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	product *entity.Product,
	mov *entity.StockMovement,
) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	delta := posting.SignedDelta(mov.MovementType, mov.Quantity)
	newQty := product.Quantity + delta
	if newQty < 0 && posting.FloorGuarded(mov.MovementType) {
		requested := mov.Quantity
		if requested < 0 {
			requested = -requested
		}
		return &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.Quantity,
			Requested:   requested,
		}
	}
	if mov.Reference == "" {
		mov.Reference = autoReference(mov.MovementType)
	}
	if mov.ProductName == "" {
		mov.ProductName = product.Name
	}
	if err := movRepo.Create(mov); err != nil {
		return err
	}
	if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
		return err
	}
	product.Quantity = newQty
	return nil
}

// autoReference genera una referencia "<tipo>-<8 hex>" para movimientos
// sueltos sin transacción de origen.
func autoReference(movementType string) string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return movementType + "-" + hex
}
