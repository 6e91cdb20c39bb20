package sale

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
)

// Status representa o estado de uma aba de venda
type Status string

const (
	// StatusOpen aceita edições de itens
	StatusOpen Status = "open"
	// StatusSubmitting indica checkout em andamento
	StatusSubmitting Status = "submitting"
)

// PaymentMode é a forma de pagamento aceita pelo backend
type PaymentMode string

const (
	PaymentCash   PaymentMode = "Cash"
	PaymentCredit PaymentMode = "Credit"
	PaymentOnline PaymentMode = "Online"
)

// ValidPaymentMode verifica se a forma de pagamento é aceita
func ValidPaymentMode(mode PaymentMode) bool {
	switch mode {
	case PaymentCash, PaymentCredit, PaymentOnline:
		return true
	}
	return false
}

// Instance é uma venda em andamento (aba). A ordem de inserção dos
// itens é a ordem de numeração exibida; nenhum identificador de linha
// é armazenado.
type Instance struct {
	ID             string          `json:"id"`
	Status         Status          `json:"status"`
	Lines          []Line          `json:"lines"`
	Discount       decimal.Decimal `json:"discount"`
	CustomerName   string          `json:"customer_name"`
	CustomerMobile string          `json:"customer_mobile"`
	PaymentMode    PaymentMode     `json:"payment_mode"`
	InvoiceNumber  string          `json:"invoice_number"`
}

// newInstance cria uma aba de venda vazia em estado aberto
func newInstance() *Instance {
	return &Instance{
		ID:          uuid.New().String(),
		Status:      StatusOpen,
		Lines:       []Line{},
		Discount:    decimal.Zero,
		PaymentMode: PaymentCash,
	}
}

// addOrMergeLine adiciona o produto ao carrinho. Se já existe item com
// o mesmo produto, incrementa a quantidade em 1 e atualiza o preço com
// o valor recém-resolvido; caso contrário anexa um novo item com
// quantidade 1.
func (i *Instance) addOrMergeLine(product catalog.Product, unitPrice decimal.Decimal, locationID *int) {
	for idx := range i.Lines {
		if i.Lines[idx].ProductID == product.ID {
			i.Lines[idx].Price = unitPrice
			i.Lines[idx].SetQuantity(i.Lines[idx].Quantity + 1)
			return
		}
	}
	i.Lines = append(i.Lines, newLine(product, unitPrice, locationID))
}

// removeLine remove o item na posição informada; os demais mantêm a
// ordem relativa
func (i *Instance) removeLine(index int) error {
	if index < 0 || index >= len(i.Lines) {
		return ErrLineNotFound
	}
	i.Lines = append(i.Lines[:index], i.Lines[index+1:]...)
	return nil
}

// Subtotal é a soma dos totais dos itens
func (i *Instance) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range i.Lines {
		subtotal = subtotal.Add(line.Total)
	}
	return subtotal
}

// GrandTotal é o subtotal menos o desconto. Não há clamp: um desconto
// maior que o subtotal produz total negativo.
func (i *Instance) GrandTotal() decimal.Decimal {
	return i.Subtotal().Sub(i.Discount)
}

// resetForNextSale recicla a aba para uma nova venda aberta no mesmo
// slot, guardando o número da nota emitida para exibição
func (i *Instance) resetForNextSale(invoiceNumber string) {
	i.Status = StatusOpen
	i.Lines = []Line{}
	i.Discount = decimal.Zero
	i.CustomerName = ""
	i.CustomerMobile = ""
	i.InvoiceNumber = invoiceNumber
}

// clone retorna uma cópia profunda da aba
func (i *Instance) clone() Instance {
	copied := *i
	copied.Lines = make([]Line, len(i.Lines))
	copy(copied.Lines, i.Lines)
	return copied
}
