package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CartReader interface {
	GetCartItem(ctx context.Context, cartItemID string) (entities.CartItem, error)
}

type ProductReader interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}

type Aggregation struct {
	Items []entities.LineItem
	Total decimal.Decimal
}

// Одновременных чтений при сборке корзины.
const aggregateConcurrency = 8

type cartAggregator struct {
	logger   *slog.Logger
	carts    CartReader
	products ProductReader
}

func NewCartAggregator(logger *slog.Logger, carts CartReader, products ProductReader) *cartAggregator {
	return &cartAggregator{
		logger:   logger.With(slog.String("service", "cart")),
		carts:    carts,
		products: products,
	}
}

// Aggregate собирает позиции заказа по id позиций корзины.
// Позиции без корзины или без товара пропускаются. Порядок и дубли сохраняются.
func (a *cartAggregator) Aggregate(ctx context.Context, cartItemIDs []string) (Aggregation, error) {
	resolved := make([]*entities.LineItem, len(cartItemIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(aggregateConcurrency)

	for i, id := range cartItemIDs {
		g.Go(func() error {
			li, err := a.resolve(gctx, id)
			if err != nil {
				return err
			}
			resolved[i] = li
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Aggregation{}, err
	}

	agg := Aggregation{Items: make([]entities.LineItem, 0, len(resolved)), Total: decimal.Zero}
	for _, li := range resolved {
		if li == nil {
			continue
		}
		agg.Items = append(agg.Items, *li)
		agg.Total = agg.Total.Add(li.Subtotal())
	}

	if len(agg.Items) == 0 {
		return Aggregation{}, entities.ErrNoValidItems
	}
	return agg, nil
}

func (a *cartAggregator) resolve(ctx context.Context, cartItemID string) (*entities.LineItem, error) {
	item, err := a.carts.GetCartItem(ctx, cartItemID)
	if errors.Is(err, entities.ErrCartItemNotFound) {
		a.logger.DebugContext(ctx, "cart item skipped", slog.String("cart_item_id", cartItemID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item %s: %w", cartItemID, err)
	}

	product, err := a.products.GetProduct(ctx, item.ProductID)
	if errors.Is(err, entities.ErrProductNotFound) {
		a.logger.DebugContext(ctx, "cart item skipped, product not found",
			slog.String("cart_item_id", cartItemID),
			slog.String("product_id", item.ProductID),
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", item.ProductID, err)
	}

	return &entities.LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Size:        item.Size,
		Quantity:    item.Quantity,
		UnitPrice:   product.Price,
	}, nil
}
