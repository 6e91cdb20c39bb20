package sale

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
	"github.com/hugohenrick/pdv-varejo/pkg/notify"
)

// Manager é o dono do estado mutável do terminal: as abas de venda em
// andamento, o ponteiro de aba ativa, a seção selecionada e a tabela de
// preços carregada para ela. Todo acesso passa pelas operações do
// Manager; nenhum outro componente modifica as abas diretamente.
type Manager struct {
	mu        sync.Mutex
	instances []*Instance
	activeID  string
	section   *section.Section
	prices    pricing.Table
	notifier  notify.Notifier
}

// TabSummary é o resumo de uma aba para a barra de abas da interface
type TabSummary struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	LineCount     int    `json:"line_count"`
	Active        bool   `json:"active"`
}

// CheckoutSnapshot é a cópia imutável da venda no momento do envio,
// junto com a seção ativa naquele instante
type CheckoutSnapshot struct {
	Instance Instance
	Section  section.Section
}

// NewManager cria o gerenciador com exatamente uma aba aberta e ativa
func NewManager(notifier notify.Notifier) *Manager {
	first := newInstance()
	return &Manager{
		instances: []*Instance{first},
		activeID:  first.ID,
		notifier:  notifier,
	}
}

// SetSection define a seção ativa e a tabela de preços recarregada para
// ela. A tabela anterior é descartada por completo.
func (m *Manager) SetSection(sec *section.Section, table pricing.Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.section = sec
	m.prices = table
}

// Section retorna uma cópia da seção ativa, ou nil se nenhuma
func (m *Manager) Section() *section.Section {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.section == nil {
		return nil
	}
	copied := *m.section
	return &copied
}

// CreateInstance abre uma nova aba vazia e a torna ativa
func (m *Manager) CreateInstance() Instance {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := newInstance()
	m.instances = append(m.instances, instance)
	m.activeID = instance.ID
	return instance.clone()
}

// SetActive muda o ponteiro de aba ativa
func (m *Manager) SetActive(instanceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(instanceID) == nil {
		return ErrInstanceNotFound
	}
	m.activeID = instanceID
	return nil
}

// ActiveID retorna o ID da aba ativa
func (m *Manager) ActiveID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeID
}

// CloseInstance remove a aba. Fechar a última aba restante é recusado:
// sempre existe pelo menos uma venda em andamento. Se a aba fechada era
// a ativa, a primeira restante passa a ser ativa.
func (m *Manager) CloseInstance(instanceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(instanceID) == nil {
		return ErrInstanceNotFound
	}
	if len(m.instances) == 1 {
		return ErrLastInstance
	}

	remaining := make([]*Instance, 0, len(m.instances)-1)
	for _, instance := range m.instances {
		if instance.ID != instanceID {
			remaining = append(remaining, instance)
		}
	}
	m.instances = remaining

	if m.activeID == instanceID {
		m.activeID = m.instances[0].ID
	}
	return nil
}

// Tabs retorna o resumo das abas na ordem de criação
func (m *Manager) Tabs() []TabSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	tabs := make([]TabSummary, len(m.instances))
	for i, instance := range m.instances {
		tabs[i] = TabSummary{
			ID:            instance.ID,
			InvoiceNumber: instance.InvoiceNumber,
			LineCount:     len(instance.Lines),
			Active:        instance.ID == m.activeID,
		}
	}
	return tabs
}

// Snapshot retorna uma cópia profunda da aba
func (m *Manager) Snapshot(instanceID string) (Instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := m.find(instanceID)
	if instance == nil {
		return Instance{}, ErrInstanceNotFound
	}
	return instance.clone(), nil
}

// AddProduct resolve o preço do produto na seção ativa e adiciona (ou
// mescla) o item na aba. Sem seção selecionada a operação falha sem
// mutação. Produto sem preço cadastrado entra com preço zero e gera um
// aviso ao operador, nunca uma recusa: o caixa sempre consegue
// registrar um item escaneado.
func (m *Manager) AddProduct(instanceID string, product catalog.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := m.find(instanceID)
	if instance == nil {
		return ErrInstanceNotFound
	}
	if m.section == nil {
		m.notifier.Notify(ErrNoSectionSelected.Error(), notify.SeverityWarning)
		return ErrNoSectionSelected
	}

	unitPrice, err := m.prices.Resolve(product.ID)
	if err != nil {
		m.notifier.Notify(
			fmt.Sprintf("produto %q sem preço cadastrado; informe o preço manualmente", product.ItemName),
			notify.SeverityWarning,
		)
		unitPrice = decimal.Zero
	}

	instance.addOrMergeLine(product, unitPrice, m.section.Location)
	return nil
}

// UpdateLine altera quantidade e/ou preço do item na posição informada
func (m *Manager) UpdateLine(instanceID string, index int, quantity *int, price *decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := m.find(instanceID)
	if instance == nil {
		return ErrInstanceNotFound
	}
	if index < 0 || index >= len(instance.Lines) {
		return ErrLineNotFound
	}

	if quantity != nil {
		instance.Lines[index].SetQuantity(*quantity)
	}
	if price != nil {
		instance.Lines[index].SetPrice(*price)
	}
	return nil
}

// RemoveLine remove o item na posição informada
func (m *Manager) RemoveLine(instanceID string, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := m.find(instanceID)
	if instance == nil {
		return ErrInstanceNotFound
	}
	return instance.removeLine(index)
}

// UpdateDetails altera os campos de resumo da venda. Campos nil não são
// alterados.
func (m *Manager) UpdateDetails(instanceID string, customerName, customerMobile *string, discount *decimal.Decimal, paymentMode *PaymentMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := m.find(instanceID)
	if instance == nil {
		return ErrInstanceNotFound
	}

	if customerName != nil {
		instance.CustomerName = *customerName
	}
	if customerMobile != nil {
		instance.CustomerMobile = *customerMobile
	}
	if discount != nil {
		instance.Discount = *discount
	}
	if paymentMode != nil && ValidPaymentMode(*paymentMode) {
		instance.PaymentMode = *paymentMode
	}
	return nil
}

// BeginCheckout valida a venda e a marca como em envio, devolvendo a
// cópia a ser submetida. A validação segue a ordem seção, celular do
// cliente, carrinho; a primeira falha aborta sem efeitos. Uma venda já
// em envio é recusada com ErrCheckoutInProgress para impedir submissão
// duplicada.
func (m *Manager) BeginCheckout(instanceID string) (CheckoutSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	instance := m.find(instanceID)
	if instance == nil {
		return CheckoutSnapshot{}, ErrInstanceNotFound
	}
	if instance.Status == StatusSubmitting {
		return CheckoutSnapshot{}, ErrCheckoutInProgress
	}
	if m.section == nil {
		return CheckoutSnapshot{}, ErrNoSectionSelected
	}
	if strings.TrimSpace(instance.CustomerMobile) == "" {
		return CheckoutSnapshot{}, ErrMissingCustomerContact
	}
	if len(instance.Lines) == 0 {
		return CheckoutSnapshot{}, ErrEmptyCart
	}

	instance.Status = StatusSubmitting
	return CheckoutSnapshot{
		Instance: instance.clone(),
		Section:  *m.section,
	}, nil
}

// CompleteCheckout recicla a aba para uma nova venda aberta no mesmo
// slot, com o número da nota atribuído pelo backend
func (m *Manager) CompleteCheckout(instanceID, invoiceNumber string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if instance := m.find(instanceID); instance != nil {
		instance.resetForNextSale(invoiceNumber)
	}
}

// FailCheckout devolve a aba ao estado aberto sem tocar em nenhum outro
// campo: itens, desconto e cliente ficam exatamente como antes do envio
func (m *Manager) FailCheckout(instanceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if instance := m.find(instanceID); instance != nil {
		instance.Status = StatusOpen
	}
}

// find retorna a aba pelo ID; deve ser chamado com o lock adquirido
func (m *Manager) find(instanceID string) *Instance {
	for _, instance := range m.instances {
		if instance.ID == instanceID {
			return instance
		}
	}
	return nil
}
