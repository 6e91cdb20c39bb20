package section

import "context"

// Channel representa um canal de vendas (loja física, marketplace, etc)
type Channel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Section representa uma seção de vendas de um canal, com sua própria
// tabela de preços e, opcionalmente, um local de estoque associado
type Section struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Channel  Channel `json:"channel"`
	Location *int    `json:"location"`
}

// SectionInput são os campos de criação e alteração de uma seção
type SectionInput struct {
	Name      string `json:"name"`
	ChannelID int    `json:"channel_id"`
	Location  *int   `json:"location,omitempty"`
}

// Service é o contrato de consulta e gestão de canais e seções de vendas
type Service interface {
	// ListChannels retorna os canais de vendas
	ListChannels(ctx context.Context) ([]Channel, error)

	// CreateChannel cria um canal de vendas
	CreateChannel(ctx context.Context, name string) (Channel, error)

	// UpdateChannel renomeia um canal de vendas
	UpdateChannel(ctx context.Context, id int, name string) (Channel, error)

	// DeleteChannel remove um canal de vendas
	DeleteChannel(ctx context.Context, id int) error

	// ListSections retorna as seções, opcionalmente filtradas por canal
	ListSections(ctx context.Context, channelID *int) ([]Section, error)

	// CreateSection cria uma seção de vendas
	CreateSection(ctx context.Context, input SectionInput) (Section, error)

	// UpdateSection altera uma seção de vendas
	UpdateSection(ctx context.Context, id int, input SectionInput) (Section, error)

	// DeleteSection remove uma seção de vendas
	DeleteSection(ctx context.Context, id int) error
}
