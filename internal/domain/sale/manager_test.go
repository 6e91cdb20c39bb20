package sale

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
	"github.com/hugohenrick/pdv-varejo/pkg/notify"
)

type captureNotifier struct {
	mu         sync.Mutex
	messages   []string
	severities []notify.Severity
}

func (c *captureNotifier) Notify(message string, severity notify.Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
	c.severities = append(c.severities, severity)
}

func (c *captureNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func testSection() *section.Section {
	loc := 7
	return &section.Section{
		ID:       1,
		Name:     "Loja Centro",
		Channel:  section.Channel{ID: 2, Name: "Loja Física"},
		Location: &loc,
	}
}

func testProduct(id int, name string) catalog.Product {
	return catalog.Product{
		ID:       id,
		ItemName: name,
		UniqueID: "BC-" + name,
		Brand:    "Genérica",
	}
}

func testTable() pricing.Table {
	return pricing.NewTable([]pricing.Entry{
		{Product: 1, Price: "10.00"},
		{Product: 2, Price: "5.00"},
	})
}

func newTestManager() (*Manager, *captureNotifier) {
	notifier := &captureNotifier{}
	m := NewManager(notifier)
	m.SetSection(testSection(), testTable())
	return m, notifier
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestNewManagerStartsWithOneOpenInstance(t *testing.T) {
	m := NewManager(&captureNotifier{})

	tabs := m.Tabs()
	require.Len(t, tabs, 1)
	assert.True(t, tabs[0].Active)
	assert.Equal(t, tabs[0].ID, m.ActiveID())

	instance, err := m.Snapshot(m.ActiveID())
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, instance.Status)
	assert.Empty(t, instance.Lines)
}

func TestAddProductMergesByProductID(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()

	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))
	require.NoError(t, m.AddProduct(id, testProduct(2, "Feijão")))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	require.Len(t, instance.Lines, 2)

	assert.Equal(t, 1, instance.Lines[0].ProductID)
	assert.Equal(t, 2, instance.Lines[0].Quantity)
	assert.True(t, instance.Lines[0].Total.Equal(decimal.RequireFromString("20.00")))

	assert.Equal(t, 2, instance.Lines[1].ProductID)
	assert.Equal(t, 1, instance.Lines[1].Quantity)
	assert.True(t, instance.Lines[1].Total.Equal(decimal.RequireFromString("5.00")))

	assert.True(t, instance.GrandTotal().Equal(decimal.RequireFromString("25.00")))

	// desconto de 5 reduz o total para 20
	require.NoError(t, m.UpdateDetails(id, nil, nil, decPtr(decimal.NewFromInt(5)), nil))
	instance, err = m.Snapshot(id)
	require.NoError(t, err)
	assert.True(t, instance.GrandTotal().Equal(decimal.RequireFromString("20.00")))
}

func TestAddProductWithoutSectionFails(t *testing.T) {
	notifier := &captureNotifier{}
	m := NewManager(notifier)

	err := m.AddProduct(m.ActiveID(), testProduct(1, "Arroz"))
	assert.ErrorIs(t, err, ErrNoSectionSelected)

	instance, snapErr := m.Snapshot(m.ActiveID())
	require.NoError(t, snapErr)
	assert.Empty(t, instance.Lines)
	assert.Equal(t, 1, notifier.count())
}

func TestAddProductWithoutConfiguredPrice(t *testing.T) {
	m, notifier := newTestManager()
	id := m.ActiveID()

	// produto 3 não tem preço na tabela: entra com preço zero e gera aviso
	require.NoError(t, m.AddProduct(id, testProduct(3, "Sabão")))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	require.Len(t, instance.Lines, 1)
	assert.True(t, instance.Lines[0].Price.IsZero())
	assert.True(t, instance.Lines[0].Total.IsZero())
	require.Equal(t, 1, notifier.count())
	assert.Equal(t, notify.SeverityWarning, notifier.severities[0])
}

func TestAddProductInheritsSectionLocation(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()

	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	require.NotNil(t, instance.Lines[0].LocationID)
	assert.Equal(t, 7, *instance.Lines[0].LocationID)
}

func TestUpdateLineClampsQuantityToOne(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))

	require.NoError(t, m.UpdateLine(id, 0, intPtr(0), nil))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, 1, instance.Lines[0].Quantity)
	assert.True(t, instance.Lines[0].Total.Equal(decimal.RequireFromString("10.00")))
}

func TestUpdateLinePriceOverride(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.AddProduct(id, testProduct(3, "Sabão")))

	require.NoError(t, m.UpdateLine(id, 0, intPtr(4), decPtr(decimal.RequireFromString("2.50"))))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	assert.True(t, instance.Lines[0].Total.Equal(decimal.RequireFromString("10.00")))
}

func TestUpdateLineUnknownIndex(t *testing.T) {
	m, _ := newTestManager()

	err := m.UpdateLine(m.ActiveID(), 5, intPtr(1), nil)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveLineKeepsRelativeOrder(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))
	require.NoError(t, m.AddProduct(id, testProduct(2, "Feijão")))
	require.NoError(t, m.AddProduct(id, testProduct(3, "Sabão")))

	require.NoError(t, m.RemoveLine(id, 1))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	require.Len(t, instance.Lines, 2)
	assert.Equal(t, 1, instance.Lines[0].ProductID)
	assert.Equal(t, 3, instance.Lines[1].ProductID)
}

func TestGrandTotalMatchesRecomputation(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()

	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))
	require.NoError(t, m.AddProduct(id, testProduct(2, "Feijão")))
	require.NoError(t, m.UpdateLine(id, 0, intPtr(3), nil))
	require.NoError(t, m.UpdateLine(id, 1, nil, decPtr(decimal.RequireFromString("7.25"))))
	require.NoError(t, m.UpdateDetails(id, nil, nil, decPtr(decimal.RequireFromString("4.10")), nil))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)

	expected := decimal.Zero
	for _, line := range instance.Lines {
		expected = expected.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	expected = expected.Sub(instance.Discount)

	assert.True(t, instance.GrandTotal().Equal(expected))
}

func TestDiscountAboveSubtotalNotClamped(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.AddProduct(id, testProduct(2, "Feijão")))
	require.NoError(t, m.UpdateDetails(id, nil, nil, decPtr(decimal.NewFromInt(100)), nil))

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	assert.True(t, instance.GrandTotal().IsNegative())
}

func TestCloseInstanceNeverEmptiesManager(t *testing.T) {
	m, _ := newTestManager()
	first := m.ActiveID()
	second := m.CreateInstance()
	third := m.CreateInstance()

	require.NoError(t, m.CloseInstance(second.ID))
	require.NoError(t, m.CloseInstance(third.ID))

	// fechar a última aba é recusado, quantas vezes for tentado
	assert.ErrorIs(t, m.CloseInstance(first), ErrLastInstance)
	assert.ErrorIs(t, m.CloseInstance(first), ErrLastInstance)
	assert.Len(t, m.Tabs(), 1)
}

func TestCloseActiveInstanceRepointsToFirst(t *testing.T) {
	m, _ := newTestManager()
	first := m.ActiveID()
	second := m.CreateInstance()

	require.Equal(t, second.ID, m.ActiveID())
	require.NoError(t, m.CloseInstance(second.ID))

	assert.Equal(t, first, m.ActiveID())
}

func TestSetActiveUnknownInstance(t *testing.T) {
	m, _ := newTestManager()
	assert.ErrorIs(t, m.SetActive("nao-existe"), ErrInstanceNotFound)
}

func TestBeginCheckoutValidationOrder(t *testing.T) {
	notifier := &captureNotifier{}
	m := NewManager(notifier)
	id := m.ActiveID()

	// sem seção: primeira falha, mesmo com celular e carrinho vazios
	_, err := m.BeginCheckout(id)
	assert.ErrorIs(t, err, ErrNoSectionSelected)

	m.SetSection(testSection(), testTable())

	// celular em branco (espaços contam como vazio)
	require.NoError(t, m.UpdateDetails(id, nil, strPtr("   "), nil, nil))
	_, err = m.BeginCheckout(id)
	assert.ErrorIs(t, err, ErrMissingCustomerContact)

	// carrinho vazio
	require.NoError(t, m.UpdateDetails(id, nil, strPtr("11999990000"), nil, nil))
	_, err = m.BeginCheckout(id)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// venda válida
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))
	snapshot, err := m.BeginCheckout(id)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Section.ID)
	assert.Len(t, snapshot.Instance.Lines, 1)
}

func TestBeginCheckoutReentrancyGuard(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.UpdateDetails(id, nil, strPtr("11999990000"), nil, nil))
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))

	_, err := m.BeginCheckout(id)
	require.NoError(t, err)

	_, err = m.BeginCheckout(id)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	// falha devolve a venda ao estado aberto e permite novo envio
	m.FailCheckout(id)
	_, err = m.BeginCheckout(id)
	assert.NoError(t, err)
}

func TestCompleteCheckoutRecyclesInstance(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.UpdateDetails(id, strPtr("Maria"), strPtr("11999990000"), decPtr(decimal.NewFromInt(2)), nil))
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))

	_, err := m.BeginCheckout(id)
	require.NoError(t, err)

	m.CompleteCheckout(id, "INV-042")

	instance, err := m.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, instance.Status)
	assert.Empty(t, instance.Lines)
	assert.True(t, instance.Discount.IsZero())
	assert.Empty(t, instance.CustomerName)
	assert.Empty(t, instance.CustomerMobile)
	assert.Equal(t, "INV-042", instance.InvoiceNumber)

	// a aba reciclada continua no mesmo slot
	tabs := m.Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, id, tabs[0].ID)
}

func TestFailCheckoutLeavesInstanceUntouched(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.UpdateDetails(id, strPtr("Maria"), strPtr("11999990000"), decPtr(decimal.NewFromInt(2)), nil))
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))

	before, err := m.Snapshot(id)
	require.NoError(t, err)

	_, err = m.BeginCheckout(id)
	require.NoError(t, err)
	m.FailCheckout(id)

	after, err := m.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	m, _ := newTestManager()
	id := m.ActiveID()
	require.NoError(t, m.AddProduct(id, testProduct(1, "Arroz")))

	snapshot, err := m.Snapshot(id)
	require.NoError(t, err)

	require.NoError(t, m.UpdateLine(id, 0, intPtr(9), nil))

	assert.Equal(t, 1, snapshot.Lines[0].Quantity)
}
