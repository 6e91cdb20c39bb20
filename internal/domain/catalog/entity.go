package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo remoto. O terminal mantém
// apenas uma cópia de leitura; o catálogo é de propriedade do backend.
type Product struct {
	ID           int             `json:"id"`
	UniqueID     string          `json:"unique_id"`
	ItemName     string          `json:"item_name"`
	Brand        string          `json:"brand"`
	SerialNumber string          `json:"serial_number"`
	Variants     string          `json:"variants"`
	Category     *int            `json:"category"`
	Rate         decimal.Decimal `json:"rate"`
	Quantity     int             `json:"quantity"`
	Location     *int            `json:"location"`
	Active       bool            `json:"active"`
	Image        string          `json:"image"`
}

// Category representa uma categoria de produtos
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Location representa um local de estoque
type Location struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SortValue retorna o valor de ordenação do produto para a chave
// informada. Chaves desconhecidas retornam nil.
func (p Product) SortValue(key string) interface{} {
	switch key {
	case "id":
		return p.ID
	case "unique_id", "uniqueId":
		return p.UniqueID
	case "item_name", "itemName":
		return p.ItemName
	case "brand":
		return p.Brand
	case "serial_number", "serialNumber":
		return p.SerialNumber
	case "variants":
		return p.Variants
	case "rate":
		return p.Rate.InexactFloat64()
	case "quantity":
		return p.Quantity
	default:
		return nil
	}
}

// MatchesCode verifica se o código escaneado corresponde ao produto:
// igualdade exata de código de barras ou de nome (case-insensitive)
func (p Product) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	return p.UniqueID == code || strings.EqualFold(p.ItemName, code)
}
