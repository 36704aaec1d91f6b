package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"globalhub_backend/internal/feature/store/domain/entity"

	"github.com/google/uuid"
)

// DefaultProcessingDelay is the artificial delay that stands in for payment
// gateway latency. There is no real gateway behind it.
const DefaultProcessingDelay = 2500 * time.Millisecond

// CheckoutState models the linear checkout progression. There is no error
// state and no cancellation once processing begins; idle is re-entered only
// by starting a new checkout.
type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutProcessing
	CheckoutSuccess
)

// String returns the state name for logging.
func (s CheckoutState) String() string {
	switch s {
	case CheckoutProcessing:
		return "processing"
	case CheckoutSuccess:
		return "success"
	default:
		return "idle"
	}
}

// OrderRepository abstracts the persistence layer for completed orders.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type OrderRepository interface {
	// Create persists a completed order with its items.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUserID returns a user's orders, most recent first.
	ListByUserID(ctx context.Context, userID uint) ([]entity.Order, error)
}

// Sleeper abstracts the artificial processing delay so tests can run the
// checkout transition without wall-clock waiting.
type Sleeper interface {
	Sleep(d time.Duration)
}

// realSleeper blocks on the wall clock. The delay is deliberately
// non-cancellable; the transition has no side effect beyond the state flip.
type realSleeper struct{}

func (realSleeper) Sleep(d time.Duration) { time.Sleep(d) }

// CheckoutUsecase runs the one-way checkout transition: it simulates order
// processing, records the order, and clears the cart.
type CheckoutUsecase struct {
	carts   CartRepository
	orders  OrderRepository
	sleeper Sleeper
	delay   time.Duration
}

// NewCheckoutUsecase はCheckoutUsecaseの新しいインスタンスを生成します。
// sleeperがnilの場合は実時間でスリープします。
func NewCheckoutUsecase(carts CartRepository, orders OrderRepository, sleeper Sleeper) *CheckoutUsecase {
	if sleeper == nil {
		sleeper = realSleeper{}
	}
	return &CheckoutUsecase{
		carts:   carts,
		orders:  orders,
		sleeper: sleeper,
		delay:   DefaultProcessingDelay,
	}
}

// Checkout はIdle→Processing→Successの一方向遷移を実行します。
// 合計金額を計算し、注文を永続化した後、カートを空にします。
// 空のカートでも配送料のみの注文として成立します。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID uint) (*entity.Order, error) {
	cart, err := u.carts.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	slog.Info("checkout state change", "user_id", userID, "state", CheckoutProcessing.String())
	u.sleeper.Sleep(u.delay)

	totals := cart.Totals()
	order := &entity.Order{
		OrderNumber: uuid.NewString(),
		UserID:      userID,
		Subtotal:    totals.Subtotal,
		Donation:    totals.Donation,
		Shipping:    totals.Shipping,
		Total:       totals.Total,
		Status:      entity.OrderStatusCompleted,
		Items:       make([]entity.OrderItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := u.carts.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	slog.Info("checkout state change", "user_id", userID, "state", CheckoutSuccess.String(),
		"order_number", order.OrderNumber, "total", order.Total)
	return order, nil
}

// Orders は指定ユーザーの注文履歴を返します。
func (u *CheckoutUsecase) Orders(ctx context.Context, userID uint) ([]entity.Order, error) {
	return u.orders.ListByUserID(ctx, userID)
}
