package bookingservice

//go:generate mockgen -source=bookingservice.go -destination=mock_bookingservice.go -package=bookingservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/pricing"
	"github.com/olobando-hub/BicPop-Web/internal/service/balanceservice"
	"github.com/olobando-hub/BicPop-Web/internal/settlement"
)

type BikeRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Bike, error)
}

type Wallet interface {
	GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	CanAfford(ctx context.Context, sessionID string, total int64) (bool, error)
	Debit(ctx context.Context, sessionID string, total int64) (*domain.Balance, error)
}

type Scheduler interface {
	After(delay time.Duration, task settlement.Task, drop func(error)) (*settlement.Pending, error)
}

type Metrics interface {
	BookingCompleted(method domain.PaymentMethod, total int64)
	BookingRejected(method domain.PaymentMethod)
	BookingCancelled(method domain.PaymentMethod)
}

var (
	ErrBikeNotFound         = errors.New("bike not found")
	ErrBikeUnavailable      = errors.New("bike unavailable")
	ErrBookingInProgress    = errors.New("another booking is in progress")
	ErrNoActiveBooking      = errors.New("no active booking")
	ErrNotSelecting         = errors.New("booking can no longer be changed")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentInProgress    = errors.New("payment already in progress")
	ErrPaymentNotStarted    = errors.New("payment not started")
	ErrBookingCancelled     = errors.New("booking cancelled")
	ErrAlreadyPaid          = errors.New("booking already paid")
	ErrPaymentAborted       = errors.New("payment aborted")
	ErrInsufficientFunds    = balanceservice.ErrInsufficientFunds
)

type Service struct {
	bikeRepo    BikeRepo
	wallet      Wallet
	scheduler   Scheduler
	metrics     Metrics
	delay       time.Duration
	checkoutURL string

	mu        sync.Mutex
	checkouts map[string]*checkout
}

// checkout holds the single live booking of a session.
type checkout struct {
	mu      sync.Mutex
	booking *domain.Booking
	attempt *attempt
	// seq changes whenever a scheduled settlement must stop applying.
	seq uint64
}

type attempt struct {
	seq      uint64
	pending  *settlement.Pending
	done     chan struct{}
	resolved bool
	receipt  *domain.Receipt
	err      error
}

func New(bikeRepo BikeRepo, wallet Wallet, scheduler Scheduler, metrics Metrics, delay time.Duration, checkoutURL string) *Service {
	return &Service{
		bikeRepo:    bikeRepo,
		wallet:      wallet,
		scheduler:   scheduler,
		metrics:     metrics,
		delay:       delay,
		checkoutURL: checkoutURL,
		checkouts:   make(map[string]*checkout),
	}
}

func (s *Service) checkout(sessionID string) *checkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.checkouts[sessionID]
	if !ok {
		c = &checkout{}
		s.checkouts[sessionID] = c
	}
	return c
}

func (s *Service) Select(ctx context.Context, sessionID, bikeID string) (*domain.Booking, error) {
	bike, err := s.bikeRepo.FindByID(ctx, bikeID)
	if err != nil {
		zap.L().Error("failed to find bike", zap.String("bike_id", bikeID), zap.Error(err))
		return nil, err
	}
	if bike == nil {
		return nil, ErrBikeNotFound
	}
	if !bike.Available {
		zap.L().Info("unavailable bike selected", zap.String("bike_id", bikeID))
		return nil, ErrBikeUnavailable
	}
	total, err := pricing.Total(bike.Price, pricing.DefaultDuration)
	if err != nil {
		zap.L().Error("bike has no valid price", zap.String("bike_id", bikeID), zap.Error(err))
		return nil, err
	}

	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.booking != nil {
		return nil, ErrBookingInProgress
	}
	c.booking = &domain.Booking{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Bike:      *bike,
		Hours:     pricing.DefaultDuration,
		Method:    domain.PaymentBalance,
		Total:     total,
		State:     domain.BookingSelecting,
		CreatedAt: time.Now(),
	}
	c.attempt = nil

	zap.L().Info("bike selected", zap.String("session_id", sessionID), zap.String("bike_id", bikeID))
	return snapshot(c.booking), nil
}

func (s *Service) SetDuration(ctx context.Context, sessionID string, hours int) (*domain.Booking, error) {
	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.selecting()
	if err != nil {
		return nil, err
	}
	total, err := pricing.Total(b.Bike.Price, hours)
	if err != nil {
		return nil, err
	}
	b.Hours = hours
	b.Total = total
	return snapshot(b), nil
}

func (s *Service) SetPaymentMethod(ctx context.Context, sessionID string, method domain.PaymentMethod) (*domain.Booking, error) {
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.selecting()
	if err != nil {
		return nil, err
	}
	b.Method = method
	return snapshot(b), nil
}

func (s *Service) Quote(ctx context.Context, sessionID string) (int64, error) {
	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.booking == nil {
		return 0, ErrNoActiveBooking
	}
	return pricing.Quote(*c.booking)
}

// Current returns the live booking. A completed booking is reported once,
// after which the session is idle again.
func (s *Service) Current(ctx context.Context, sessionID string) (*domain.Booking, error) {
	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.booking == nil {
		return nil, ErrNoActiveBooking
	}
	b := snapshot(c.booking)
	if b.State == domain.BookingCompleted {
		c.reset()
	}
	return b, nil
}

// Pay starts settlement of the live booking. Balance payments are checked
// against the wallet first and rejected without leaving selection.
func (s *Service) Pay(ctx context.Context, sessionID string) (*domain.Booking, error) {
	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.booking
	if b == nil {
		return nil, ErrNoActiveBooking
	}
	switch b.State {
	case domain.BookingSelecting:
	case domain.BookingProcessing:
		return nil, ErrPaymentInProgress
	default:
		return nil, ErrNotSelecting
	}

	total, err := pricing.Quote(*b)
	if err != nil {
		return nil, err
	}

	var link string
	switch b.Method {
	case domain.PaymentBalance:
		ok, err := s.wallet.CanAfford(ctx, sessionID, total)
		if err != nil {
			zap.L().Error("failed to check wallet", zap.String("session_id", sessionID), zap.Error(err))
			return nil, err
		}
		if !ok {
			s.metrics.BookingRejected(b.Method)
			zap.L().Info("payment rejected, insufficient funds", zap.String("session_id", sessionID), zap.Int64("total", total))
			return nil, ErrInsufficientFunds
		}
	case domain.PaymentExternal:
		link, err = s.checkoutLink(b)
		if err != nil {
			zap.L().Error("failed to build checkout link", zap.Error(err))
			return nil, err
		}
	}

	c.seq++
	a := &attempt{seq: c.seq, done: make(chan struct{})}
	pending, err := s.scheduler.After(s.delay, func() error {
		return s.settle(sessionID, c, a)
	}, func(reason error) {
		s.abort(sessionID, c, a, reason)
	})
	if err != nil {
		zap.L().Error("failed to schedule settlement", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	a.pending = pending
	c.attempt = a

	b.Total = total
	b.CheckoutURL = link
	b.State = domain.BookingProcessing

	zap.L().Info("payment processing",
		zap.String("session_id", sessionID),
		zap.String("booking_id", b.ID),
		zap.String("method", string(b.Method)),
		zap.Int64("total", total),
	)
	return snapshot(b), nil
}

func (s *Service) settle(sessionID string, c *checkout, a *attempt) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.booking
	if b == nil || c.attempt != a || c.seq != a.seq || b.State != domain.BookingProcessing {
		return nil
	}

	var balance int64
	switch b.Method {
	case domain.PaymentBalance:
		after, err := s.wallet.Debit(context.Background(), sessionID, b.Total)
		if err != nil {
			b.State = domain.BookingSelecting
			a.resolve(nil, err)
			s.metrics.BookingRejected(b.Method)
			if errors.Is(err, ErrInsufficientFunds) {
				return nil
			}
			return fmt.Errorf("settle booking %s: %w", b.ID, err)
		}
		balance = after.Current
	case domain.PaymentExternal:
		if current, err := s.wallet.GetBalance(context.Background(), sessionID); err == nil {
			balance = current.Current
		}
	}

	b.State = domain.BookingCompleted
	b.PaidAt = time.Now()
	a.resolve(&domain.Receipt{
		Booking:  *snapshot(b),
		Total:    b.Total,
		Balance:  balance,
		Verified: b.Method == domain.PaymentBalance,
	}, nil)
	s.metrics.BookingCompleted(b.Method, b.Total)

	zap.L().Info("booking paid",
		zap.String("session_id", sessionID),
		zap.String("booking_id", b.ID),
		zap.String("method", string(b.Method)),
		zap.Int64("total", b.Total),
	)
	return nil
}

// abort returns a booking whose settlement will never run to selection.
func (s *Service) abort(sessionID string, c *checkout, a *attempt, reason error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.booking
	if b == nil || c.attempt != a || c.seq != a.seq || b.State != domain.BookingProcessing {
		return
	}
	c.seq++
	b.State = domain.BookingSelecting
	b.CheckoutURL = ""
	a.resolve(nil, fmt.Errorf("%w: %w", ErrPaymentAborted, reason))
	s.metrics.BookingRejected(b.Method)

	zap.L().Warn("settlement dropped",
		zap.String("session_id", sessionID),
		zap.String("booking_id", b.ID),
		zap.Error(reason),
	)
}

// Wait blocks until the payment started by Pay has resolved.
func (s *Service) Wait(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	c := s.checkout(sessionID)
	c.mu.Lock()
	if c.booking == nil {
		c.mu.Unlock()
		return nil, ErrNoActiveBooking
	}
	a := c.attempt
	c.mu.Unlock()
	if a == nil {
		return nil, ErrPaymentNotStarted
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-a.done:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attempt == a {
		if a.err != nil {
			c.attempt = nil
		} else if c.booking != nil && c.booking.State == domain.BookingCompleted {
			c.reset()
		}
	}
	return a.receipt, a.err
}

// ConfirmPayment pays and waits for settlement. If ctx ends first the
// booking is cancelled and the wallet is left untouched.
func (s *Service) ConfirmPayment(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	if _, err := s.Pay(ctx, sessionID); err != nil {
		return nil, err
	}

	receipt, err := s.Wait(ctx, sessionID)
	if err == nil || ctx.Err() == nil {
		return receipt, err
	}

	if _, cerr := s.Cancel(context.Background(), sessionID); errors.Is(cerr, ErrAlreadyPaid) {
		return s.Wait(context.Background(), sessionID)
	}
	return nil, err
}

func (s *Service) Cancel(ctx context.Context, sessionID string) (*domain.Booking, error) {
	c := s.checkout(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.booking
	if b == nil {
		return nil, ErrNoActiveBooking
	}
	if b.State == domain.BookingCompleted {
		return nil, ErrAlreadyPaid
	}

	c.seq++
	if a := c.attempt; a != nil && !a.resolved {
		a.pending.Stop()
		a.resolve(nil, ErrBookingCancelled)
	}
	cancelled := snapshot(b)
	cancelled.State = domain.BookingCancelled
	c.reset()

	s.metrics.BookingCancelled(b.Method)
	zap.L().Info("booking cancelled", zap.String("session_id", sessionID), zap.String("booking_id", b.ID))
	return cancelled, nil
}

// Discard tears down everything the session holds. A live booking is
// cancelled first so no settlement applies afterwards.
func (s *Service) Discard(ctx context.Context, sessionID string) error {
	if _, err := s.Cancel(ctx, sessionID); err != nil &&
		!errors.Is(err, ErrNoActiveBooking) && !errors.Is(err, ErrAlreadyPaid) {
		return err
	}

	s.mu.Lock()
	c, ok := s.checkouts[sessionID]
	delete(s.checkouts, sessionID)
	s.mu.Unlock()

	if ok {
		c.mu.Lock()
		c.seq++
		c.reset()
		c.mu.Unlock()
	}
	return nil
}

func (s *Service) checkoutLink(b *domain.Booking) (string, error) {
	u, err := url.Parse(s.checkoutURL)
	if err != nil {
		return "", fmt.Errorf("parse checkout url: %w", err)
	}
	q := u.Query()
	q.Set("client_reference_id", fmt.Sprintf("bike_%s_%dh", b.Bike.ID, b.Hours))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *checkout) selecting() (*domain.Booking, error) {
	if c.booking == nil {
		return nil, ErrNoActiveBooking
	}
	if c.booking.State != domain.BookingSelecting {
		return nil, ErrNotSelecting
	}
	return c.booking, nil
}

func (c *checkout) reset() {
	c.booking = nil
	c.attempt = nil
}

func (a *attempt) resolve(receipt *domain.Receipt, err error) {
	if a.resolved {
		return
	}
	a.resolved = true
	a.receipt = receipt
	a.err = err
	close(a.done)
}

func snapshot(b *domain.Booking) *domain.Booking {
	out := *b
	if b.Bike.Battery != nil {
		lvl := *b.Bike.Battery
		out.Bike.Battery = &lvl
	}
	return &out
}
