package purchase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySupplier = errors.New("nome do fornecedor não pode ser vazio")
	ErrNoItems       = errors.New("a compra deve ter pelo menos um item")
)

// Item é um item de uma nota de compra
type Item struct {
	ID       int             `json:"id,omitempty"`
	Product  int             `json:"product"`
	Quantity int             `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Location int             `json:"location"`
}

// Purchase representa uma nota de compra de mercadorias
type Purchase struct {
	ID            int             `json:"id,omitempty"`
	SupplierName  string          `json:"supplier_name"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PurchaseDate  string          `json:"purchase_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Discount      decimal.Decimal `json:"discount"`
	Items         []Item          `json:"items"`
}

// Validate verifica os campos mínimos antes do envio ao backend
func (p Purchase) Validate() error {
	if p.SupplierName == "" {
		return ErrEmptySupplier
	}
	if len(p.Items) == 0 {
		return ErrNoItems
	}
	return nil
}

// Service é o contrato do serviço remoto de compras
type Service interface {
	// ListPurchases retorna as notas de compra registradas
	ListPurchases(ctx context.Context) ([]Purchase, error)

	// GetPurchase retorna uma nota de compra pelo ID
	GetPurchase(ctx context.Context, id int) (Purchase, error)

	// CreatePurchase registra uma nova nota de compra
	CreatePurchase(ctx context.Context, p Purchase) (Purchase, error)
}
