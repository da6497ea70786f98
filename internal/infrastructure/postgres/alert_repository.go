package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// List lista alertas con los campos mínimos del producto, más recientes primero.
func (r *AlertRepo) List(ctx context.Context, filter repository.AlertFilter) ([]repository.AlertWithProduct, error) {
	b := builder().
		Select(
			"a.id", "a.product_id", "a.alert_type", "a.is_resolved", "a.created_at", "a.resolved_at",
			"COALESCE(p.name, '')", "COALESCE(p.sku, '')",
			"COALESCE(p.current_stock, 0)", "COALESCE(p.min_stock, 0)", "COALESCE(p.max_stock, 0)",
		).
		From("stock_alerts a").
		LeftJoin("products p ON p.id = a.product_id").
		OrderBy("a.created_at DESC")

	if filter.OnlyUnresolved {
		b = b.Where(sq.Eq{"a.is_resolved": false})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alerts query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []repository.AlertWithProduct
	for rows.Next() {
		var a repository.AlertWithProduct
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.AlertType, &a.IsResolved, &a.CreatedAt, &a.ResolvedAt,
			&a.ProductName, &a.ProductSKU,
			&a.CurrentStock, &a.MinStock, &a.MaxStock,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListUnresolved lista las alertas pendientes sin joins (stat del dashboard).
func (r *AlertRepo) ListUnresolved(ctx context.Context) ([]*entity.StockAlert, error) {
	query := `
		SELECT id, product_id, alert_type, is_resolved, created_at, resolved_at
		FROM stock_alerts WHERE NOT is_resolved`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.AlertType, &a.IsResolved, &a.CreatedAt, &a.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Resolve marca la alerta como resuelta y estampa resolved_at.
func (r *AlertRepo) Resolve(ctx context.Context, id string, resolvedAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock_alerts SET is_resolved = true, resolved_at = $2 WHERE id = $1`,
		id, resolvedAt,
	)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
