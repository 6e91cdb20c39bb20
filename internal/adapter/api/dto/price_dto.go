package dto

import "github.com/hugohenrick/pdv-varejo/internal/domain/pricing"

// BulkSetPricesRequest grava preços para uma ou mais seções
type BulkSetPricesRequest struct {
	Sections []int              `json:"sections" binding:"required"`
	Items    []pricing.BulkItem `json:"items" binding:"required"`
}
