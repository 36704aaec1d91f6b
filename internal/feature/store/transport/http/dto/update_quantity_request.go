package dto

// UpdateQuantityReq represents the request body for PATCH /cart/items/:productId.
// Delta may be negative; sending -quantity removes the item outright.
type UpdateQuantityReq struct {
	Delta int `json:"delta" binding:"required"`
}
