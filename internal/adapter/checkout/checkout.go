package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/client"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/notify"
	"github.com/hugohenrick/pdv-varejo/pkg/printer"
)

// Result é o retorno de um checkout aceito pelo backend
type Result struct {
	InvoiceNumber string          `json:"invoice_number"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// Adapter valida a venda, monta o corpo esperado pelo backend, envia e
// processa o resultado. Em caso de sucesso a aba é reciclada e o cupom
// vai ao spool de forma assíncrona; em caso de falha a aba permanece
// intocada. Falha de transporte e rejeição do backend recebem o mesmo
// tratamento.
type Adapter struct {
	manager  *sale.Manager
	sales    sale.Service
	notifier notify.Notifier
	printer  printer.Printer
	logger   logger.Logger
	cashier  string
}

// NewAdapter cria o adaptador de checkout
func NewAdapter(manager *sale.Manager, sales sale.Service, notifier notify.Notifier, p printer.Printer, log logger.Logger, cashier string) *Adapter {
	return &Adapter{
		manager:  manager,
		sales:    sales,
		notifier: notifier,
		printer:  p,
		logger:   log,
		cashier:  cashier,
	}
}

// Checkout envia a venda ao backend. Checkout reentrante sobre uma
// venda já em envio é recusado em silêncio: o envio em andamento é o
// autoritativo e o operador não deve ver erro por um clique duplo.
func (a *Adapter) Checkout(ctx context.Context, instanceID string) (Result, error) {
	snapshot, err := a.manager.BeginCheckout(instanceID)
	if err != nil {
		if !errors.Is(err, sale.ErrCheckoutInProgress) {
			a.notifier.Notify(err.Error(), notify.SeverityWarning)
		}
		return Result{}, err
	}

	payload := buildPayload(snapshot, a.cashier)

	result, err := a.sales.CreateSale(ctx, payload)
	if err != nil {
		a.manager.FailCheckout(instanceID)
		a.logger.Error("erro ao registrar venda no backend", "error", err)
		a.notifier.Notify("erro ao registrar a venda: "+errorDetail(err), notify.SeverityError)
		return Result{}, fmt.Errorf("registrar venda: %w", err)
	}

	a.manager.CompleteCheckout(instanceID, result.InvoiceNumber)
	a.notifier.Notify("venda concluída com sucesso", notify.SeveritySuccess)

	// cupom montado com a fotografia anterior à reciclagem da aba; a
	// impressão não bloqueia a próxima venda
	receipt := buildReceipt(snapshot, result.InvoiceNumber, time.Now(), a.cashier)
	go a.printer.Print(receipt)

	return Result{
		InvoiceNumber: result.InvoiceNumber,
		GrandTotal:    snapshot.Instance.GrandTotal(),
	}, nil
}

// buildPayload monta o corpo de criação de venda a partir da fotografia
func buildPayload(snapshot sale.CheckoutSnapshot, cashier string) sale.Payload {
	instance := snapshot.Instance

	items := make([]sale.ItemPayload, len(instance.Lines))
	for i, line := range instance.Lines {
		items[i] = sale.ItemPayload{
			Product:        line.ProductID,
			ProductName:    line.ProductName,
			ProductBarcode: line.ProductBarcode,
			ProductBrand:   line.ProductBrand,
			ProductVariant: line.ProductVariant,
			SerialNumber:   line.SerialNumber,
			Price:          line.Price,
			Quantity:       line.Quantity,
			Total:          line.Total,
			Location:       line.LocationID,
		}
	}

	return sale.Payload{
		Section:        snapshot.Section.ID,
		Channel:        snapshot.Section.Channel.ID,
		PaymentMode:    instance.PaymentMode,
		Discount:       instance.Discount,
		TotalAmount:    instance.GrandTotal(),
		Items:          items,
		CustomerName:   instance.CustomerName,
		CustomerMobile: instance.CustomerMobile,
		User:           cashier,
	}
}

// buildReceipt monta o cupom com os dados da venda recém-enviada
func buildReceipt(snapshot sale.CheckoutSnapshot, invoiceNumber string, date time.Time, cashier string) printer.Receipt {
	instance := snapshot.Instance

	items := make([]printer.ReceiptItem, len(instance.Lines))
	for i, line := range instance.Lines {
		items[i] = printer.ReceiptItem{
			Name:     line.ProductName,
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    line.Total,
		}
	}

	return printer.Receipt{
		InvoiceNumber:  invoiceNumber,
		SectionName:    snapshot.Section.Name,
		Date:           date,
		CustomerName:   instance.CustomerName,
		CustomerMobile: instance.CustomerMobile,
		Items:          items,
		Subtotal:       instance.Subtotal(),
		Discount:       instance.Discount,
		GrandTotal:     instance.GrandTotal(),
		Cashier:        cashier,
	}
}

// errorDetail extrai o detalhe reportado pelo backend, quando houver
func errorDetail(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail()
	}
	return err.Error()
}
