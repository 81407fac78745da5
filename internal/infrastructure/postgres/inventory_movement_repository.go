package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, inventory_id, date, reference, type, storage_id, item_id, product_id,
	before, quantity, after, remark, created_by, created_at`

var movementOrderColumns = map[string]string{
	repository.OrderByID:          "id",
	repository.OrderByDate:        "created_at",
	repository.OrderByCreatedDate: "created_at",
	repository.OrderByQuantity:    "quantity",
}

// InventoryMovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserción.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste una entrada del libro.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	sql, args, err := psql.Insert("inventory_movements").
		Columns("id", "inventory_id", "date", "reference", "type", "storage_id", "item_id", "product_id",
			"before", "quantity", "after", "remark", "created_by", "created_at").
		Values(m.ID, m.InventoryID, m.Date, m.Reference, m.Type, m.StorageID,
			nullIfEmpty(m.ItemID), nullIfEmpty(m.ProductID),
			m.Before, m.Quantity, m.After, m.Remark, m.CreatedBy, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del libro por ID.
func (r *InventoryMovementRepo) GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error) {
	sql, args, err := psql.Select(movementColumns).From("inventory_movements").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get movement: %w", err)
	}
	m, err := scanMovement(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List libro completo; keyword sobre referencia y observación.
func (r *InventoryMovementRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.InventoryMovement, int, error) {
	where := squirrel.And{}
	if kw := keywordFilter(opts.Keyword, "reference", "remark"); kw != nil {
		where = append(where, kw)
	}
	return r.list(ctx, where, opts)
}

// ListByInventory historial de una posición.
func (r *InventoryMovementRepo) ListByInventory(ctx context.Context, inventoryID string, opts repository.ListOptions) ([]*entity.InventoryMovement, int, error) {
	where := squirrel.And{squirrel.Eq{"inventory_id": inventoryID}}
	if kw := keywordFilter(opts.Keyword, "reference", "remark"); kw != nil {
		where = append(where, kw)
	}
	return r.list(ctx, where, opts)
}

func (r *InventoryMovementRepo) list(ctx context.Context, where squirrel.And, opts repository.ListOptions) ([]*entity.InventoryMovement, int, error) {
	countSQL, countArgs, err := psql.Select("COUNT(*)").From("inventory_movements").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count movements: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	sql, args, err := pageSelect(psql.Select(movementColumns).From("inventory_movements").Where(where),
		opts, movementOrderColumns).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list movements: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// LastInbound vista de antigüedad: entrada IN más reciente por (bodega, código de artículo).
func (r *InventoryMovementRepo) LastInbound(ctx context.Context, storageID, keyword string) ([]entity.StockAgeRow, error) {
	sql, args, err := lastInboundQuery(storageID, keyword).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last inbound: %w", err)
	}
	var rows []entity.StockAgeRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("last inbound: %w", err)
	}
	return rows, nil
}

func lastInboundQuery(storageID, keyword string) squirrel.SelectBuilder {
	where := squirrel.And{
		squirrel.Eq{"m.type": entity.MovementTypeIN, "m.storage_id": storageID},
		squirrel.Expr("i.item IS NOT NULL"),
	}
	if kw := keywordFilter(keyword, "i.item->>'code'", "i.item->>'name'", "i.item->>'realizationOrder'"); kw != nil {
		where = append(where, kw)
	}
	return psql.Select(
		"m.storage_id",
		"i.storage->>'code' AS storage_code",
		"i.storage->>'name' AS storage_name",
		"i.item->>'code' AS item_code",
		"i.item->>'name' AS item_name",
		"m.created_at AS last_inbound_at",
	).
		Options("DISTINCT ON (m.storage_id, i.item->>'code')").
		From("inventory_movements m").
		Join("inventories i ON i.id = m.inventory_id").
		Where(where).
		OrderBy("m.storage_id", "i.item->>'code'", "m.created_at DESC")
}

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var (
		m                 entity.InventoryMovement
		itemID, productID *string
	)
	err := row.Scan(
		&m.ID, &m.InventoryID, &m.Date, &m.Reference, &m.Type, &m.StorageID, &itemID, &productID,
		&m.Before, &m.Quantity, &m.After, &m.Remark, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ItemID = derefString(itemID)
	m.ProductID = derefString(productID)
	return &m, nil
}
