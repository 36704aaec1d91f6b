// Package dto defines data transfer objects for the store feature's HTTP transport layer.
package dto

// AddItemReq represents the request body for POST /cart/items.
type AddItemReq struct {
	ProductID string `json:"productId" binding:"required"`
}
