package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodnodes/internal/apperrors"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/port"
	"github.com/shopspring/decimal"
)

const lineColumns = `id, order_id, node_id, delivery_date_id, delivery_date, delivery_timezone,
	product_id, product_name, product_price, price_unit, package_amount, package_unit,
	variant_id, variant_name, variant_price, variant_package_amount,
	producer_id, producer_name, producer_currency, quantity`

const (
	getCartSQL = `SELECT ` + lineColumns + ` FROM cart_lines
		WHERE owner_id = $1 AND order_id IS NULL
		ORDER BY created_at, id`

	lockCartSQL = getCartSQL + ` FOR UPDATE`

	addItemSQL = `INSERT INTO cart_lines (id, owner_id, node_id, delivery_date_id, delivery_date, delivery_timezone,
			product_id, product_name, product_price, price_unit, package_amount, package_unit,
			variant_id, variant_name, variant_price, variant_package_amount,
			producer_id, producer_name, producer_currency, quantity)
		VALUES (@id, @owner_id, @node_id, @delivery_date_id, @delivery_date, @delivery_timezone,
			@product_id, @product_name, @product_price, @price_unit, @package_amount, @package_unit,
			@variant_id, @variant_name, @variant_price, @variant_package_amount,
			@producer_id, @producer_name, @producer_currency, @quantity)
		ON CONFLICT (owner_id, product_id, (COALESCE(variant_id, '')), delivery_date_id) WHERE order_id IS NULL
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
		RETURNING id`

	updateQuantitySQL = `UPDATE cart_lines SET quantity = @quantity
		WHERE id = @id AND owner_id = @owner_id AND order_id IS NULL`

	deleteItemSQL = `DELETE FROM cart_lines
		WHERE id = @id AND owner_id = @owner_id AND order_id IS NULL`

	insertOrderSQL = `INSERT INTO orders (id, owner_id, node_id, delivery_date_id, delivery_date, delivery_timezone, created_at)
		VALUES (@id, @owner_id, @node_id, @delivery_date_id, @delivery_date, @delivery_timezone, @created_at)`

	assignOrderSQL = `UPDATE cart_lines SET order_id = @order_id
		WHERE owner_id = @owner_id AND order_id IS NULL
			AND node_id = @node_id AND delivery_date_id = @delivery_date_id`

	listOrdersSQL = `SELECT id, node_id, delivery_date_id, delivery_date, delivery_timezone, created_at
		FROM orders
		WHERE owner_id = $1
		ORDER BY created_at, id`

	listOrderedLinesSQL = `SELECT ` + lineColumns + ` FROM cart_lines
		WHERE owner_id = $1 AND order_id IS NOT NULL
		ORDER BY created_at, id`
)

type cartRepository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, errors.New("pool is nil")
	}

	return &cartRepository{
		db:   pool,
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		db:   tx,
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) ([]domain.CartLineItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	lines, err := queryLines(ctx, r.db, getCartSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("queryLines: %w", err)
	}

	return mapLineRowsToDomain(lines), nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, item domain.CartLineItem) (string, error) {
	switch {
	case ownerID == "":
		return "", fmt.Errorf("ownerID is empty")
	case item.Quantity <= 0:
		return "", fmt.Errorf("quantity[%d] is not positive", item.Quantity)
	case item.Product.ID == "":
		return "", fmt.Errorf("product ID is empty")
	case item.Date.Date.IsZero():
		return "", fmt.Errorf("delivery date is empty")
	}
	if err := domain.ValidateCurrency(item.Producer.Currency); err != nil {
		return "", fmt.Errorf("domain.ValidateCurrency: %w", err)
	}

	args := pgx.NamedArgs{
		"id":                     uuid.New(),
		"owner_id":               ownerID,
		"node_id":                item.Date.NodeID,
		"delivery_date_id":       item.Date.ID,
		"delivery_date":          item.Date.Date,
		"delivery_timezone":      item.Date.Date.Location().String(),
		"product_id":             item.Product.ID,
		"product_name":           item.Product.Name,
		"product_price":          item.Product.Price,
		"price_unit":             item.Product.PriceUnit,
		"package_amount":         item.Product.PackageAmount,
		"package_unit":           item.Product.PackageUnit,
		"variant_id":             (*string)(nil),
		"variant_name":           (*string)(nil),
		"variant_price":          decimal.NullDecimal{},
		"variant_package_amount": decimal.NullDecimal{},
		"producer_id":            item.Producer.ID,
		"producer_name":          item.Producer.Name,
		"producer_currency":      domain.NormalizeCurrency(item.Producer.Currency),
		"quantity":               item.Quantity,
	}

	if v := item.Variant; v != nil {
		args["variant_id"] = &v.ID
		args["variant_name"] = &v.Name
		args["variant_price"] = decimal.NewNullDecimal(v.Price)
		args["variant_package_amount"] = decimal.NewNullDecimal(v.PackageAmount)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, addItemSQL, args).Scan(&id); err != nil {
		return "", fmt.Errorf("db.QueryRow: %w", err)
	}

	return id.String(), nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, ownerID, id string, quantity int) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}
	if quantity < 0 {
		return false, fmt.Errorf("quantity[%d] is negative", quantity)
	}
	if quantity == 0 {
		return r.DeleteItem(ctx, ownerID, id)
	}

	lineID, err := uuid.Parse(id)
	if err != nil {
		// not an id this repository ever issued
		return false, nil
	}

	tag, err := r.db.Exec(ctx, updateQuantitySQL, pgx.NamedArgs{
		"id":       lineID,
		"owner_id": ownerID,
		"quantity": quantity,
	})
	if err != nil {
		return false, fmt.Errorf("db.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID, id string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	lineID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	tag, err := r.db.Exec(ctx, deleteItemSQL, pgx.NamedArgs{
		"id":       lineID,
		"owner_id": ownerID,
	})
	if err != nil {
		return false, fmt.Errorf("db.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *cartRepository) CreateOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, r.db, func(db dbtx) ([]domain.Order, error) {
		lines, err := queryLines(ctx, db, lockCartSQL, ownerID)
		if err != nil {
			return nil, fmt.Errorf("queryLines: %w", err)
		}
		if len(lines) == 0 {
			return nil, apperrors.Conflict("cart is empty")
		}

		orders := splitIntoOrders(mapLineRowsToDomain(lines), time.Now().UTC().Truncate(time.Microsecond))

		batch := &pgx.Batch{}
		for _, order := range orders {
			batch.Queue(insertOrderSQL, pgx.NamedArgs{
				"id":                order.ID,
				"owner_id":          ownerID,
				"node_id":           order.NodeID,
				"delivery_date_id":  order.Date.ID,
				"delivery_date":     order.Date.Date,
				"delivery_timezone": order.Date.Date.Location().String(),
				"created_at":        order.CreatedAt,
			})
			batch.Queue(assignOrderSQL, pgx.NamedArgs{
				"order_id":         order.ID,
				"owner_id":         ownerID,
				"node_id":          order.NodeID,
				"delivery_date_id": order.Date.ID,
			})
		}

		if err := db.SendBatch(ctx, batch).Close(); err != nil {
			return nil, fmt.Errorf("batch.Close: %w", err)
		}

		return orders, nil
	})
}

func (r *cartRepository) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.db.Query(ctx, listOrdersSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}

	orderRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[orderRow])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	lines, err := queryLines(ctx, r.db, listOrderedLinesSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("queryLines: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]domain.CartLineItem, len(orderRows))
	for _, line := range lines {
		itemsByOrder[*line.OrderID] = append(itemsByOrder[*line.OrderID], mapLineRowToDomain(line))
	}

	orders := make([]domain.Order, 0, len(orderRows))
	for _, row := range orderRows {
		orders = append(orders, domain.Order{
			ID:     row.ID.String(),
			NodeID: row.NodeID,
			Date: domain.DeliveryDate{
				ID:     row.DeliveryDateID,
				NodeID: row.NodeID,
				Date:   inLocation(row.DeliveryDate, row.DeliveryTimezone),
			},
			Items:     itemsByOrder[row.ID],
			CreatedAt: row.CreatedAt.UTC(),
		})
	}

	return orders, nil
}

// splitIntoOrders groups lines by node and delivery date, in cart order.
func splitIntoOrders(items []domain.CartLineItem, now time.Time) []domain.Order {
	type orderKey struct{ nodeID, dateID string }

	var orders []domain.Order
	index := make(map[orderKey]int)

	for _, item := range items {
		key := orderKey{nodeID: item.Date.NodeID, dateID: item.Date.ID}

		i, ok := index[key]
		if !ok {
			i = len(orders)
			index[key] = i
			orders = append(orders, domain.Order{
				ID:        uuid.NewString(),
				NodeID:    item.Date.NodeID,
				Date:      item.Date,
				CreatedAt: now,
			})
		}

		orders[i].Items = append(orders[i].Items, item)
	}

	return orders
}

type lineRow struct {
	ID                   uuid.UUID           `db:"id"`
	OrderID              *uuid.UUID          `db:"order_id"`
	NodeID               string              `db:"node_id"`
	DeliveryDateID       string              `db:"delivery_date_id"`
	DeliveryDate         time.Time           `db:"delivery_date"`
	DeliveryTimezone     string              `db:"delivery_timezone"`
	ProductID            string              `db:"product_id"`
	ProductName          string              `db:"product_name"`
	ProductPrice         decimal.Decimal     `db:"product_price"`
	PriceUnit            string              `db:"price_unit"`
	PackageAmount        decimal.Decimal     `db:"package_amount"`
	PackageUnit          string              `db:"package_unit"`
	VariantID            *string             `db:"variant_id"`
	VariantName          *string             `db:"variant_name"`
	VariantPrice         decimal.NullDecimal `db:"variant_price"`
	VariantPackageAmount decimal.NullDecimal `db:"variant_package_amount"`
	ProducerID           string              `db:"producer_id"`
	ProducerName         string              `db:"producer_name"`
	ProducerCurrency     string              `db:"producer_currency"`
	Quantity             int32               `db:"quantity"`
}

type orderRow struct {
	ID               uuid.UUID `db:"id"`
	NodeID           string    `db:"node_id"`
	DeliveryDateID   string    `db:"delivery_date_id"`
	DeliveryDate     time.Time `db:"delivery_date"`
	DeliveryTimezone string    `db:"delivery_timezone"`
	CreatedAt        time.Time `db:"created_at"`
}

func queryLines(ctx context.Context, db dbtx, sql string, args ...any) ([]lineRow, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}

	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[lineRow])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	return lines, nil
}

func mapLineRowToDomain(row lineRow) domain.CartLineItem {
	item := domain.CartLineItem{
		ID:       row.ID.String(),
		Quantity: int(row.Quantity),
		Product: domain.Product{
			ID:            row.ProductID,
			Name:          row.ProductName,
			Price:         row.ProductPrice,
			PriceUnit:     row.PriceUnit,
			PackageAmount: row.PackageAmount,
			PackageUnit:   row.PackageUnit,
		},
		Producer: domain.Producer{
			ID:       row.ProducerID,
			Name:     row.ProducerName,
			Currency: row.ProducerCurrency,
		},
		Date: domain.DeliveryDate{
			ID:     row.DeliveryDateID,
			NodeID: row.NodeID,
			Date:   inLocation(row.DeliveryDate, row.DeliveryTimezone),
		},
	}

	if row.VariantID != nil {
		item.Variant = &domain.Variant{
			ID:            *row.VariantID,
			Price:         row.VariantPrice.Decimal,
			PackageAmount: row.VariantPackageAmount.Decimal,
		}
		if row.VariantName != nil {
			item.Variant.Name = *row.VariantName
		}
	}

	return item
}

func mapLineRowsToDomain(rows []lineRow) []domain.CartLineItem {
	items := make([]domain.CartLineItem, 0, len(rows))

	for _, row := range rows {
		items = append(items, mapLineRowToDomain(row))
	}

	return items
}

func inLocation(t time.Time, timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return t.UTC()
	}
	return t.In(loc)
}
