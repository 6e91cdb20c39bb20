package printer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// largura em caracteres de uma bobina térmica de 80mm
const receiptWidth = 42

// ReceiptItem é uma linha de produto no cupom
type ReceiptItem struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// Receipt contém os dados resolvidos do cupom de venda
type Receipt struct {
	InvoiceNumber  string
	SectionName    string
	Date           time.Time
	CustomerName   string
	CustomerMobile string
	Items          []ReceiptItem
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	GrandTotal     decimal.Decimal
	Cashier        string
}

// Printer recebe um cupom e dispara a impressão sem retorno ao caller
type Printer interface {
	Print(receipt Receipt)
}

// SpoolPrinter grava cupons renderizados em um diretório de spool,
// de onde o serviço de impressão da plataforma os consome
type SpoolPrinter struct {
	dir    string
	logger logger.Logger
}

// NewSpoolPrinter cria um SpoolPrinter para o diretório informado
func NewSpoolPrinter(dir string, log logger.Logger) *SpoolPrinter {
	return &SpoolPrinter{dir: dir, logger: log}
}

// Print renderiza e grava o cupom. Falhas são registradas no log e
// nunca propagadas: a impressão não pode bloquear a próxima venda.
func (p *SpoolPrinter) Print(receipt Receipt) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		p.logger.Error("erro ao criar diretório de spool", "error", err)
		return
	}

	name := fmt.Sprintf("%s-%d.txt", sanitizeName(receipt.InvoiceNumber), receipt.Date.UnixMilli())
	path := filepath.Join(p.dir, name)

	if err := os.WriteFile(path, []byte(Render(receipt)), 0o644); err != nil {
		p.logger.Error("erro ao gravar cupom no spool", "error", err, "invoice", receipt.InvoiceNumber)
		return
	}

	p.logger.Info("cupom enviado ao spool", "invoice", receipt.InvoiceNumber, "path", path)
}

// Render produz o texto do cupom no layout da bobina de 80mm
func Render(r Receipt) string {
	var b strings.Builder

	writeCentered(&b, r.SectionName)
	writeCentered(&b, "CUPOM DE VENDA")
	if r.InvoiceNumber != "" {
		writeCentered(&b, "Nota: "+r.InvoiceNumber)
	}
	b.WriteString(divider())

	fmt.Fprintf(&b, "Data: %s\n", r.Date.Format("02/01/2006 15:04"))
	if r.CustomerName != "" {
		fmt.Fprintf(&b, "Cliente: %s\n", r.CustomerName)
	}
	fmt.Fprintf(&b, "Celular: %s\n", r.CustomerMobile)
	b.WriteString(divider())

	fmt.Fprintf(&b, "%-3s %-20s %3s %6s %7s\n", "No", "Produto", "Qtd", "Preco", "Total")
	for i, item := range r.Items {
		fmt.Fprintf(&b, "%-3d %-20s %3d %6s %7s\n",
			i+1,
			truncate(item.Name, 20),
			item.Quantity,
			item.Price.StringFixed(2),
			item.Total.StringFixed(2),
		)
	}
	b.WriteString(divider())

	fmt.Fprintf(&b, "%-28s %13s\n", "Subtotal", r.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "%-28s %13s\n", "Desconto", r.Discount.StringFixed(2))
	fmt.Fprintf(&b, "%-28s %13s\n", "TOTAL", r.GrandTotal.StringFixed(2))
	b.WriteString(divider())

	fmt.Fprintf(&b, "Operador: %s\n", r.Cashier)
	writeCentered(&b, "Obrigado pela preferencia!")

	return b.String()
}

func writeCentered(b *strings.Builder, text string) {
	text = truncate(text, receiptWidth)
	padding := (receiptWidth - utf8.RuneCountInString(text)) / 2
	if padding > 0 {
		b.WriteString(strings.Repeat(" ", padding))
	}
	b.WriteString(text)
	b.WriteByte('\n')
}

func divider() string {
	return strings.Repeat("-", receiptWidth) + "\n"
}

// truncate corta em runas, nunca em bytes: nomes como "Feijão" não
// podem virar UTF-8 inválido no cupom
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func sanitizeName(s string) string {
	if s == "" {
		return "cupom"
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
	return clean
}
