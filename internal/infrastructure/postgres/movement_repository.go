package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Los listados con filtros opcionales se construyen con squirrel.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Create persiste un nuevo movimiento. TotalPrice llega ya calculado por el caso
// de uso y se guarda tal cual; el trigger de la DB ajusta el stock del producto.
func (r *MovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, movement_type, quantity, unit_price,
			total_price, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.UnitPrice,
		m.TotalPrice, m.Reference, m.Notes, nullIfEmpty(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // producto inexistente
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List lista movimientos con producto resuelto, más recientes primero.
// filter.Type aplica igualdad sobre movement_type; filter.Limit trunca el resultado.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]repository.MovementWithProduct, error) {
	b := builder().
		Select(
			"m.id", "m.product_id", "m.movement_type", "m.quantity", "m.unit_price",
			"m.total_price", "COALESCE(m.reference, '')", "COALESCE(m.notes, '')",
			"COALESCE(m.created_by::text, '')", "m.created_at",
			"COALESCE(p.name, '')", "COALESCE(p.sku, '')", "COALESCE(p.unit, '')",
		).
		From("inventory_movements m").
		LeftJoin("products p ON p.id = m.product_id").
		OrderBy("m.created_at DESC")

	if filter.Type != "" {
		b = b.Where(sq.Eq{"m.movement_type": filter.Type})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movements query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementWithProduct
	for rows.Next() {
		var m repository.MovementWithProduct
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitPrice,
			&m.TotalPrice, &m.Reference, &m.Notes, &m.CreatedBy, &m.CreatedAt,
			&m.ProductName, &m.ProductSKU, &m.ProductUnit,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListAll lista todos los movimientos sin joins, para las agregaciones de reportes.
func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, unit_price, total_price,
			COALESCE(reference, ''), COALESCE(notes, ''), COALESCE(created_by::text, ''), created_at
		FROM inventory_movements`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitPrice, &m.TotalPrice,
			&m.Reference, &m.Notes, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
