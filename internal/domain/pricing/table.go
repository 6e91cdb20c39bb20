package pricing

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrPriceNotConfigured sinaliza que a seção não tem preço cadastrado
// para o produto. Não é um erro fatal: o caller deve emitir um aviso e
// adicionar o item com preço zero para correção manual.
var ErrPriceNotConfigured = errors.New("produto sem preço cadastrado para a seção")

// Entry é um registro da tabela de preços de uma seção, como retornado
// pelo backend remoto (preço como string decimal)
type Entry struct {
	ID      int    `json:"id"`
	Section int    `json:"section"`
	Product int    `json:"product"`
	Price   string `json:"price"`
}

// BulkItem é um item de gravação em lote de preços
type BulkItem struct {
	Product int    `json:"product"`
	Price   string `json:"price"`
}

// Service é o contrato de consulta e gravação de preços por seção
type Service interface {
	// ListPrices retorna a tabela de preços completa da seção
	ListPrices(ctx context.Context, sectionID int) ([]Entry, error)

	// BulkSetPrices grava preços para uma ou mais seções
	BulkSetPrices(ctx context.Context, sectionIDs []int, items []BulkItem) error
}

// Table é a tabela de preços carregada para a seção ativa: produto ->
// preço unitário. Recarregada por completo a cada troca de seção;
// nenhum componente a modifica depois de montada.
type Table map[int]decimal.Decimal

// NewTable monta a tabela a partir dos registros do backend. Entradas
// com preço inválido são ignoradas e tratadas como não cadastradas.
func NewTable(entries []Entry) Table {
	table := make(Table, len(entries))
	for _, e := range entries {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			continue
		}
		table[e.Product] = price
	}
	return table
}

// Resolve retorna o preço unitário do produto na seção ativa, ou
// ErrPriceNotConfigured quando não há entrada (distinto de preço zero)
func (t Table) Resolve(productID int) (decimal.Decimal, error) {
	price, ok := t[productID]
	if !ok {
		return decimal.Zero, ErrPriceNotConfigured
	}
	return price, nil
}
