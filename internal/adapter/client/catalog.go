package client

import (
	"context"

	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
)

const (
	productsPath   = "/api/products/products/"
	categoriesPath = "/api/products/categories/"
	locationsPath  = "/api/products/locations/"
)

// ListProducts retorna todos os produtos do catálogo remoto
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.doGet(ctx, productsPath, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories retorna as categorias de produtos
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.doGet(ctx, categoriesPath, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListLocations retorna os locais de estoque
func (c *Client) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	var locations []catalog.Location
	if err := c.doGet(ctx, locationsPath, nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}
