// Package checkout owns the order draft for one checkout flow and drives
// submission. One session per flow; the draft is never process-global.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slicelab/pizzacart/internal/cart"
	"github.com/slicelab/pizzacart/internal/config"
	"github.com/slicelab/pizzacart/internal/domain"
	"github.com/slicelab/pizzacart/internal/payload"
	"github.com/slicelab/pizzacart/internal/port"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNoDestination = errors.New("no delivery address or pickup pizzeria selected")
)

// Deps are the external collaborators a session needs to submit.
type Deps struct {
	Submitter port.OrderSubmitter
	Fetcher   port.OrderFetcher
	Push      port.PushRegistrar
	Logger    *zap.Logger
	Now       func() time.Time
	DeviceID  string
}

type Session struct {
	id            uuid.UUID
	cart          *cart.Cart
	cfg           config.Config
	authenticated bool
	draft         domain.OrderDraft
	deps          Deps
}

func NewSession(c *cart.Cart, cfg config.Config, authenticated bool, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Session{
		id:            uuid.New(),
		cart:          c,
		cfg:           cfg,
		authenticated: authenticated,
		draft:         domain.OrderDraft{Payment: domain.PaymentCash},
		deps:          deps,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Draft returns a copy of the current choices.
func (s *Session) Draft() domain.OrderDraft {
	return s.draft
}

func (s *Session) DeliverTo(address domain.DeliveryAddress) {
	s.draft.Destination = domain.DeliverTo(address)
}

func (s *Session) PickupAt(pizzeriaID string) {
	s.draft.Destination = domain.PickupAt(pizzeriaID)
}

func (s *Session) SetComment(comment string) {
	s.draft.Comment = comment
}

func (s *Session) SetPromoCode(code string) {
	s.draft.PromoCode = code
}

func (s *Session) SetPaymentMethod(method domain.PaymentMethod) {
	s.draft.Payment = method
}

func (s *Session) SetGuestContact(name, phone string) {
	s.draft.Guest = &domain.GuestContact{Name: name, Phone: phone}
}

// ApplyBonus clamps the requested redemption to what the cart and policy
// allow and records it on the draft. Guests cannot redeem points. Returns
// the amount actually applied.
func (s *Session) ApplyBonus(requested, balance domain.Money) domain.Money {
	applied := domain.ZeroMoney(balance.Currency)

	if s.authenticated && requested.IsPositive() {
		max := s.cart.MaxRedeemableBonusAmount(balance, s.cfg.MaxBonusRedeemPercent)
		applied = requested.FloorRound()
		if applied.Cmp(max) > 0 {
			applied = max
		}
	}

	s.draft.BonusAmount = applied
	return applied
}

func (s *Session) ClearBonus() {
	s.draft.BonusAmount = domain.ZeroMoney(domain.DefaultCurrency)
}

// EnablePush honors the opt-in only after a successful token registration;
// a failed or declined registration forces it off.
func (s *Session) EnablePush(ctx context.Context) bool {
	granted, err := s.deps.Push.RegisterForPush(ctx)
	if err != nil || !granted {
		if err != nil {
			s.deps.Logger.Warn("push registration failed", zap.Error(err))
		}
		s.draft.PushEnabled = false
		return false
	}
	s.draft.PushEnabled = true
	return true
}

func (s *Session) DisablePush() {
	s.draft.PushEnabled = false
}

// QualifiesForFreeDelivery reports whether the cart total has reached the
// configured threshold. A zero threshold disables the promotion.
func (s *Session) QualifiesForFreeDelivery() bool {
	threshold := s.cfg.FreeDeliveryThreshold
	if !threshold.IsPositive() {
		return false
	}
	return s.cart.TotalPrice().Cmp(threshold) >= 0
}

// Submit builds the payload, hands it to the submitter, re-fetches the
// created order and clears the cart.
func (s *Session) Submit(ctx context.Context) (domain.Order, error) {
	var o domain.Order

	if s.cart.Len() == 0 {
		return o, ErrEmptyCart
	}
	if !s.draft.Destination.IsSet() {
		return o, ErrNoDestination
	}

	body := payload.BuildOrder(s.draft, s.cart.Items(), payload.BuildOptions{
		Authenticated: s.authenticated,
		Now:           s.deps.Now(),
		DeviceID:      s.deps.DeviceID,
	})

	orderID, err := s.deps.Submitter.Submit(ctx, body)
	if err != nil {
		return o, fmt.Errorf("submitter.Submit: %w", err)
	}

	order, err := s.deps.Fetcher.FetchOrder(ctx, orderID)
	if err != nil {
		return o, fmt.Errorf("fetcher.FetchOrder: %w", err)
	}

	s.cart.RemoveAllItems()

	s.deps.Logger.Info("order submitted",
		zap.String("session_id", s.id.String()),
		zap.String("order_id", orderID.String()),
		zap.String("total", order.Total.String()),
		zap.Bool("pickup", order.Pickup),
	)

	return order, nil
}
