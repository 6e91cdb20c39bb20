package sale

import (
	"context"

	"github.com/shopspring/decimal"
)

// ItemPayload é um item de venda no formato aceito pelo backend. Os
// campos de exibição são enviados mesmo que o backend pudesse derivá-los
// do catálogo: a venda persiste a fotografia do produto no momento da
// emissão, independente de edições posteriores.
type ItemPayload struct {
	Product        int             `json:"product"`
	ProductName    string          `json:"product_name"`
	ProductBarcode string          `json:"product_barcode,omitempty"`
	ProductBrand   string          `json:"product_brand,omitempty"`
	ProductVariant string          `json:"product_variant,omitempty"`
	SerialNumber   string          `json:"serial_number,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	Location       *int            `json:"location,omitempty"`
}

// Payload é o corpo de criação de venda enviado ao backend
type Payload struct {
	Section        int             `json:"section"`
	Channel        int             `json:"channel"`
	PaymentMode    PaymentMode     `json:"payment_mode"`
	Discount       decimal.Decimal `json:"discount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Items          []ItemPayload   `json:"items_write"`
	CustomerName   string          `json:"customer_name"`
	CustomerMobile string          `json:"customer_mobile"`
	User           string          `json:"user"`
}

// SubmitResult é a resposta do backend à criação da venda
type SubmitResult struct {
	ID            int    `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
}

// Record é uma venda persistida, como listada pelo backend
type Record struct {
	ID             int              `json:"id"`
	Channel        int              `json:"channel"`
	Section        int              `json:"section"`
	InvoiceNumber  string           `json:"invoice_number"`
	SaleDatetime   string           `json:"sale_datetime"`
	CustomerName   string           `json:"customer_name"`
	CustomerMobile string           `json:"customer_mobile"`
	PaymentMode    PaymentMode      `json:"payment_mode"`
	Discount       *decimal.Decimal `json:"discount"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`
	CreatedBy      string           `json:"created_by"`
	Items          []ItemPayload    `json:"items"`
}

// Service é o contrato do serviço remoto de vendas
type Service interface {
	// CreateSale persiste a venda e devolve o número da nota emitida
	CreateSale(ctx context.Context, payload Payload) (SubmitResult, error)

	// ListSales retorna as vendas registradas
	ListSales(ctx context.Context) ([]Record, error)
}
