package catalog

import "context"

// Service é o contrato de consulta ao catálogo remoto de produtos
type Service interface {
	// ListProducts retorna todos os produtos do catálogo
	ListProducts(ctx context.Context) ([]Product, error)

	// ListCategories retorna as categorias de produtos
	ListCategories(ctx context.Context) ([]Category, error)

	// ListLocations retorna os locais de estoque
	ListLocations(ctx context.Context) ([]Location, error)
}
