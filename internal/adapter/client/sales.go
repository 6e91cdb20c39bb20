package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
)

const (
	channelsPath      = "/api/sales/channels/"
	sectionsPath      = "/api/sales/sections/"
	pricesPath        = "/api/sales/prices/"
	pricesBulkSetPath = "/api/sales/prices/bulk-set/"
	salesPath         = "/api/sales/sales/"
)

// ListChannels retorna os canais de vendas
func (c *Client) ListChannels(ctx context.Context) ([]section.Channel, error) {
	var channels []section.Channel
	if err := c.doGet(ctx, channelsPath, nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// CreateChannel cria um canal de vendas
func (c *Client) CreateChannel(ctx context.Context, name string) (section.Channel, error) {
	var created section.Channel
	if err := c.doPost(ctx, channelsPath, map[string]string{"name": name}, &created); err != nil {
		return section.Channel{}, err
	}
	return created, nil
}

// UpdateChannel renomeia um canal de vendas
func (c *Client) UpdateChannel(ctx context.Context, id int, name string) (section.Channel, error) {
	var updated section.Channel
	path := fmt.Sprintf("%s%d/", channelsPath, id)
	if err := c.doPut(ctx, path, map[string]string{"name": name}, &updated); err != nil {
		return section.Channel{}, err
	}
	return updated, nil
}

// DeleteChannel remove um canal de vendas
func (c *Client) DeleteChannel(ctx context.Context, id int) error {
	return c.doDelete(ctx, fmt.Sprintf("%s%d/", channelsPath, id))
}

// ListSections retorna as seções de vendas, opcionalmente por canal
func (c *Client) ListSections(ctx context.Context, channelID *int) ([]section.Section, error) {
	query := map[string]string{}
	if channelID != nil {
		query["channel_id"] = strconv.Itoa(*channelID)
	}

	var sections []section.Section
	if err := c.doGet(ctx, sectionsPath, query, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// CreateSection cria uma seção de vendas
func (c *Client) CreateSection(ctx context.Context, input section.SectionInput) (section.Section, error) {
	var created section.Section
	if err := c.doPost(ctx, sectionsPath, input, &created); err != nil {
		return section.Section{}, err
	}
	return created, nil
}

// UpdateSection altera uma seção de vendas
func (c *Client) UpdateSection(ctx context.Context, id int, input section.SectionInput) (section.Section, error) {
	var updated section.Section
	path := fmt.Sprintf("%s%d/", sectionsPath, id)
	if err := c.doPut(ctx, path, input, &updated); err != nil {
		return section.Section{}, err
	}
	return updated, nil
}

// DeleteSection remove uma seção de vendas
func (c *Client) DeleteSection(ctx context.Context, id int) error {
	return c.doDelete(ctx, fmt.Sprintf("%s%d/", sectionsPath, id))
}

// ListPrices retorna a tabela de preços completa da seção
func (c *Client) ListPrices(ctx context.Context, sectionID int) ([]pricing.Entry, error) {
	query := map[string]string{"section_id": strconv.Itoa(sectionID)}

	var entries []pricing.Entry
	if err := c.doGet(ctx, pricesPath, query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// BulkSetPrices grava preços para uma ou mais seções
func (c *Client) BulkSetPrices(ctx context.Context, sectionIDs []int, items []pricing.BulkItem) error {
	body := map[string]interface{}{
		"sections": sectionIDs,
		"items":    items,
	}
	return c.doPost(ctx, pricesBulkSetPath, body, nil)
}

// CreateSale persiste a venda e devolve o número da nota emitida
func (c *Client) CreateSale(ctx context.Context, payload sale.Payload) (sale.SubmitResult, error) {
	var result sale.SubmitResult
	if err := c.doPost(ctx, salesPath, payload, &result); err != nil {
		return sale.SubmitResult{}, err
	}
	return result, nil
}

// ListSales retorna as vendas registradas
func (c *Client) ListSales(ctx context.Context) ([]sale.Record, error) {
	var records []sale.Record
	if err := c.doGet(ctx, salesPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
