package dto

import "github.com/hugohenrick/pdv-varejo/internal/domain/section"

// ChannelRequest cria ou renomeia um canal de vendas
type ChannelRequest struct {
	Name string `json:"name" binding:"required"`
}

// SectionRequest cria ou altera uma seção de vendas
type SectionRequest struct {
	Name      string `json:"name" binding:"required"`
	ChannelID int    `json:"channel_id" binding:"required"`
	Location  *int   `json:"location"`
}

// ToSectionInput converte a requisição para os campos de gravação
func (r SectionRequest) ToSectionInput() section.SectionInput {
	return section.SectionInput{
		Name:      r.Name,
		ChannelID: r.ChannelID,
		Location:  r.Location,
	}
}
