package sale

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
)

// Line é um item do carrinho: referência ao produto mais uma cópia dos
// campos de exibição no momento da adição, para que a venda sobreviva a
// alterações posteriores do catálogo
type Line struct {
	ProductID      int             `json:"product_id"`
	ProductName    string          `json:"product_name"`
	ProductBarcode string          `json:"product_barcode"`
	ProductBrand   string          `json:"product_brand"`
	ProductVariant string          `json:"product_variant"`
	SerialNumber   string          `json:"serial_number"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	LocationID     *int            `json:"location_id"`
}

// newLine cria um item com quantidade 1 a partir do produto e do preço
// resolvido para a seção ativa
func newLine(product catalog.Product, unitPrice decimal.Decimal, locationID *int) Line {
	line := Line{
		ProductID:      product.ID,
		ProductName:    product.ItemName,
		ProductBarcode: product.UniqueID,
		ProductBrand:   product.Brand,
		ProductVariant: product.Variants,
		SerialNumber:   product.SerialNumber,
		Price:          unitPrice,
		Quantity:       1,
		LocationID:     locationID,
	}
	line.recalcTotal()
	return line
}

// SetQuantity define a quantidade do item, com mínimo de 1
func (l *Line) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	l.Quantity = quantity
	l.recalcTotal()
}

// SetPrice sobrescreve manualmente o preço unitário (correção do operador)
func (l *Line) SetPrice(price decimal.Decimal) {
	l.Price = price
	l.recalcTotal()
}

// recalcTotal mantém o invariante total = preço x quantidade
func (l *Line) recalcTotal() {
	l.Total = l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
