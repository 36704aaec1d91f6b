package dto

import (
	"math"

	"globalhub_backend/internal/feature/store/domain/entity"
)

// TotalsRes は表示用に2桁丸めした合計金額を表します。
// 計算自体は全精度で行われ、丸めはこのレスポンス生成時のみです。
type TotalsRes struct {
	Subtotal float64 `json:"subtotal"`
	Donation float64 `json:"donation"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// NewTotalsRes converts full-precision totals into their display form.
func NewTotalsRes(t entity.Totals) TotalsRes {
	return TotalsRes{
		Subtotal: round2(t.Subtotal),
		Donation: round2(t.Donation),
		Shipping: round2(t.Shipping),
		Total:    round2(t.Total),
	}
}

// round2 rounds to two decimal places for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
