package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
)

// SetSectionRequest define a seção de vendas ativa do terminal
type SetSectionRequest struct {
	SectionID int `json:"section_id" binding:"required"`
}

// AddItemRequest adiciona um produto ao carrinho ativo, por ID ou por
// código escaneado (código de barras ou nome exato)
type AddItemRequest struct {
	ProductID *int   `json:"product_id"`
	Code      string `json:"code"`
}

// UpdateLineRequest altera quantidade e/ou preço de um item do carrinho
type UpdateLineRequest struct {
	Quantity *int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// UpdateCartRequest altera os campos de resumo da venda ativa
type UpdateCartRequest struct {
	CustomerName   *string          `json:"customer_name"`
	CustomerMobile *string          `json:"customer_mobile"`
	Discount       *decimal.Decimal `json:"discount"`
	PaymentMode    *string          `json:"payment_mode"`
}

// CartLineResponse é um item do carrinho; o número sequencial é
// derivado da posição, nunca armazenado
type CartLineResponse struct {
	SlNo           int             `json:"sl_no"`
	ProductID      int             `json:"product_id"`
	ProductName    string          `json:"product_name"`
	ProductBarcode string          `json:"product_barcode"`
	ProductBrand   string          `json:"product_brand"`
	ProductVariant string          `json:"product_variant"`
	SerialNumber   string          `json:"serial_number"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
}

// CartResponse é o estado completo da venda ativa
type CartResponse struct {
	ID             string             `json:"id"`
	Status         sale.Status        `json:"status"`
	InvoiceNumber  string             `json:"invoice_number"`
	CustomerName   string             `json:"customer_name"`
	CustomerMobile string             `json:"customer_mobile"`
	PaymentMode    sale.PaymentMode   `json:"payment_mode"`
	Lines          []CartLineResponse `json:"lines"`
	Discount       decimal.Decimal    `json:"discount"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	GrandTotal     decimal.Decimal    `json:"grand_total"`
}

// TabsResponse é a barra de abas do terminal
type TabsResponse struct {
	ActiveID string            `json:"active_id"`
	Tabs     []sale.TabSummary `json:"tabs"`
}

// ToCartResponse converte a aba de venda para a resposta da API
func ToCartResponse(instance sale.Instance) CartResponse {
	lines := make([]CartLineResponse, len(instance.Lines))
	for i, line := range instance.Lines {
		lines[i] = CartLineResponse{
			SlNo:           i + 1,
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			ProductBarcode: line.ProductBarcode,
			ProductBrand:   line.ProductBrand,
			ProductVariant: line.ProductVariant,
			SerialNumber:   line.SerialNumber,
			Price:          line.Price,
			Quantity:       line.Quantity,
			Total:          line.Total,
		}
	}

	return CartResponse{
		ID:             instance.ID,
		Status:         instance.Status,
		InvoiceNumber:  instance.InvoiceNumber,
		CustomerName:   instance.CustomerName,
		CustomerMobile: instance.CustomerMobile,
		PaymentMode:    instance.PaymentMode,
		Lines:          lines,
		Discount:       instance.Discount,
		Subtotal:       instance.Subtotal(),
		GrandTotal:     instance.GrandTotal(),
	}
}
