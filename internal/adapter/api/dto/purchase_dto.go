package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/domain/purchase"
)

// PurchaseItemRequest é um item da nota de compra
type PurchaseItemRequest struct {
	Product  int             `json:"product" binding:"required"`
	Quantity int             `json:"quantity" binding:"required"`
	Rate     decimal.Decimal `json:"rate"`
	Location int             `json:"location"`
}

// PurchaseRequest registra uma nova nota de compra
type PurchaseRequest struct {
	SupplierName  string                `json:"supplier_name" binding:"required"`
	InvoiceNumber string                `json:"invoice_number"`
	PurchaseDate  string                `json:"purchase_date" binding:"required"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	Discount      decimal.Decimal       `json:"discount"`
	Items         []PurchaseItemRequest `json:"items" binding:"required"`
}

// ToPurchase converte a requisição para a entidade de domínio
func (r PurchaseRequest) ToPurchase() purchase.Purchase {
	items := make([]purchase.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = purchase.Item{
			Product:  item.Product,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Location: item.Location,
		}
	}

	return purchase.Purchase{
		SupplierName:  r.SupplierName,
		InvoiceNumber: r.InvoiceNumber,
		PurchaseDate:  r.PurchaseDate,
		TotalAmount:   r.TotalAmount,
		Discount:      r.Discount,
		Items:         items,
	}
}
