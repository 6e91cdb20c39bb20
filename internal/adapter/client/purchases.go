package client

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-varejo/internal/domain/purchase"
)

const purchasesPath = "/api/products/purchases/"

// ListPurchases retorna as notas de compra registradas
func (c *Client) ListPurchases(ctx context.Context) ([]purchase.Purchase, error) {
	var purchases []purchase.Purchase
	if err := c.doGet(ctx, purchasesPath, nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// GetPurchase retorna uma nota de compra pelo ID
func (c *Client) GetPurchase(ctx context.Context, id int) (purchase.Purchase, error) {
	var p purchase.Purchase
	path := fmt.Sprintf("%s%d/", purchasesPath, id)
	if err := c.doGet(ctx, path, nil, &p); err != nil {
		return purchase.Purchase{}, err
	}
	return p, nil
}

// CreatePurchase registra uma nova nota de compra
func (c *Client) CreatePurchase(ctx context.Context, p purchase.Purchase) (purchase.Purchase, error) {
	var created purchase.Purchase
	if err := c.doPost(ctx, purchasesPath, p, &created); err != nil {
		return purchase.Purchase{}, err
	}
	return created, nil
}
