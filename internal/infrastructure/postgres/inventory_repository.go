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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, storage_id, item_id, product_id, quantity, storage, item, product,
	created_by, created_agent, created_at, updated_by, updated_agent, updated_at, deleted`

var inventoryOrderColumns = map[string]string{
	repository.OrderByID:          "id",
	repository.OrderByCreatedDate: "created_at",
	repository.OrderByUpdatedDate: "updated_at",
	repository.OrderByQuantity:    "quantity",
	repository.OrderByCode:        "COALESCE(item->>'code', product->>'code')",
	repository.OrderByName:        "COALESCE(item->>'name', product->>'name')",
}

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
// Los snapshots de bodega/artículo/producto se guardan como JSONB.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de posiciones. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una nueva posición.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	sql, args, err := insertInventory(inv).ToSql()
	if err != nil {
		return fmt.Errorf("build insert inventory: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta con ON CONFLICT DO NOTHING contra los índices únicos parciales
// (un par vivo por bodega). false si ya existía.
func (r *InventoryRepo) CreateIfAbsent(ctx context.Context, inv *entity.Inventory) (bool, error) {
	sql, args, err := insertInventory(inv).Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert inventory: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("insert inventory: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func insertInventory(inv *entity.Inventory) squirrel.InsertBuilder {
	return psql.Insert("inventories").
		Columns("id", "storage_id", "item_id", "product_id", "quantity", "storage", "item", "product",
			"created_by", "created_agent", "created_at", "updated_by", "updated_agent", "updated_at", "deleted").
		Values(inv.ID, inv.StorageID, nullIfEmpty(inv.ItemID), nullIfEmpty(inv.ProductID), inv.Quantity,
			inv.Storage, inv.Item, inv.Product,
			inv.CreatedBy, inv.CreatedAgent, inv.CreatedAt, inv.UpdatedBy, inv.UpdatedAgent, inv.UpdatedAt, inv.Deleted)
}

// Update reemplaza la posición completa.
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	sql, args, err := psql.Update("inventories").
		SetMap(map[string]any{
			"storage_id":    inv.StorageID,
			"item_id":       nullIfEmpty(inv.ItemID),
			"product_id":    nullIfEmpty(inv.ProductID),
			"quantity":      inv.Quantity,
			"storage":       inv.Storage,
			"item":          inv.Item,
			"product":       inv.Product,
			"updated_by":    inv.UpdatedBy,
			"updated_agent": inv.UpdatedAgent,
			"updated_at":    inv.UpdatedAt,
			"deleted":       inv.Deleted,
		}).
		Where(squirrel.Eq{"id": inv.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update inventory: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory %s: %w", inv.ID, domain.ErrNotFound)
	}
	return nil
}

// GetByID obtiene una posición por ID (incluye borradas).
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	return r.getOne(ctx, psql.Select(inventoryColumns).From("inventories").Where(squirrel.Eq{"id": id}))
}

// GetForUpdate obtiene la posición y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.Inventory, error) {
	return r.getOne(ctx, psql.Select(inventoryColumns).From("inventories").
		Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"))
}

// GetByStorageAndItem posición viva del par (bodega, artículo).
func (r *InventoryRepo) GetByStorageAndItem(ctx context.Context, storageID, itemID string) (*entity.Inventory, error) {
	return r.getOne(ctx, psql.Select(inventoryColumns).From("inventories").
		Where(squirrel.Eq{"storage_id": storageID, "item_id": itemID, "deleted": false}))
}

// GetByStorageAndProduct posición viva del par (bodega, producto).
func (r *InventoryRepo) GetByStorageAndProduct(ctx context.Context, storageID, productID string) (*entity.Inventory, error) {
	return r.getOne(ctx, psql.Select(inventoryColumns).From("inventories").
		Where(squirrel.Eq{"storage_id": storageID, "product_id": productID, "item_id": nil, "deleted": false}))
}

func (r *InventoryRepo) getOne(ctx context.Context, b squirrel.SelectBuilder) (*entity.Inventory, error) {
	sql, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get inventory: %w", err)
	}
	inv, err := scanInventory(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// List posiciones vivas; keyword sobre código/nombre del artículo y nombre de la bodega.
func (r *InventoryRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Inventory, int, error) {
	where := squirrel.And{squirrel.Eq{"deleted": false}}
	if kw := keywordFilter(opts.Keyword,
		"item->>'code'", "item->>'name'", "product->>'code'", "product->>'name'", "storage->>'name'",
	); kw != nil {
		where = append(where, kw)
	}
	return r.list(ctx, where, opts)
}

// ListByStorage posiciones vivas de una bodega; keyword sobre código, nombre, orden de
// realización y precio nacional del artículo.
func (r *InventoryRepo) ListByStorage(ctx context.Context, storageID string, opts repository.ListOptions) ([]*entity.Inventory, int, error) {
	return r.list(ctx, listByStorageWhere(storageID, opts.Keyword), opts)
}

func listByStorageWhere(storageID, keyword string) squirrel.And {
	where := squirrel.And{squirrel.Eq{"deleted": false, "storage_id": storageID}}
	if kw := keywordFilter(keyword,
		"item->>'code'", "item->>'name'", "item->>'realizationOrder'", "item->>'domesticSale'",
	); kw != nil {
		where = append(where, kw)
	}
	return where
}

// ListByItem posiciones vivas de un artículo en todas las bodegas.
func (r *InventoryRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Inventory, error) {
	sql, args, err := psql.Select(inventoryColumns).From("inventories").
		Where(squirrel.Eq{"item_id": itemID, "deleted": false}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inventory by item: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *InventoryRepo) list(ctx context.Context, where squirrel.Sqlizer, opts repository.ListOptions) ([]*entity.Inventory, int, error) {
	countSQL, countArgs, err := psql.Select("COUNT(*)").From("inventories").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count inventory: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	sql, args, err := pageSelect(psql.Select(inventoryColumns).From("inventories").Where(where),
		opts, inventoryOrderColumns).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list inventory: %w", err)
	}
	list, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *InventoryRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// CurrentQuantities vista de cantidad actual: primera posición (por fecha de creación)
// por (bodega, código de artículo) con quantity > 0.
func (r *InventoryRepo) CurrentQuantities(ctx context.Context, storageID, keyword string) ([]entity.StockQuantityRow, error) {
	sql, args, err := currentQuantitiesQuery(storageID, keyword).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build current quantities: %w", err)
	}
	var rows []entity.StockQuantityRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("current quantities: %w", err)
	}
	return rows, nil
}

func currentQuantitiesQuery(storageID, keyword string) squirrel.SelectBuilder {
	where := squirrel.And{
		squirrel.Eq{"deleted": false, "storage_id": storageID},
		squirrel.Gt{"quantity": 0},
		squirrel.Expr("item IS NOT NULL"),
	}
	if kw := keywordFilter(keyword, "item->>'code'", "item->>'name'", "item->>'realizationOrder'"); kw != nil {
		where = append(where, kw)
	}
	return psql.Select(
		"storage_id",
		"storage->>'code' AS storage_code",
		"storage->>'name' AS storage_name",
		"item->>'code' AS item_code",
		"item->>'name' AS item_name",
		"quantity",
	).
		Options("DISTINCT ON (storage_id, item->>'code')").
		From("inventories").
		Where(where).
		OrderBy("storage_id", "item->>'code'", "created_at ASC")
}

// pageSelect aplica orden de la lista blanca, offset y limit.
func pageSelect(b squirrel.SelectBuilder, opts repository.ListOptions, columns map[string]string) squirrel.SelectBuilder {
	b = b.OrderBy(orderBy(opts.OrderBy, opts.Asc, columns, "id"))
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		b = b.Offset(uint64(opts.Offset))
	}
	return b
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var (
		inv               entity.Inventory
		itemID, productID *string
	)
	err := row.Scan(
		&inv.ID, &inv.StorageID, &itemID, &productID, &inv.Quantity,
		&inv.Storage, &inv.Item, &inv.Product,
		&inv.CreatedBy, &inv.CreatedAgent, &inv.CreatedAt,
		&inv.UpdatedBy, &inv.UpdatedAgent, &inv.UpdatedAt, &inv.Deleted,
	)
	if err != nil {
		return nil, err
	}
	inv.ItemID = derefString(itemID)
	inv.ProductID = derefString(productID)
	return &inv, nil
}
