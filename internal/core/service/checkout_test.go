package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdiginow/storefront/internal/core/domain"
	"github.com/shopdiginow/storefront/internal/core/port"
)

type mockOrderLogger struct {
	logged  chan domain.Order
	blockOn chan struct{}
}

func newMockOrderLogger() *mockOrderLogger {
	return &mockOrderLogger{logged: make(chan domain.Order, 1)}
}

func (m *mockOrderLogger) LogOrder(_ context.Context, o domain.Order) {
	if m.blockOn != nil {
		<-m.blockOn
	}
	m.logged <- o
}

func (m *mockOrderLogger) wait(t *testing.T) domain.Order {
	t.Helper()
	select {
	case o := <-m.logged:
		return o
	case <-time.After(time.Second):
		t.Fatal("order was not logged")
		return domain.Order{}
	}
}

func validInfo() domain.CustomerInfo {
	return domain.CustomerInfo{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "+1 (555) 123-4567",
	}
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, *CartService, *mockOrderLogger) {
	t.Helper()

	cart := NewCartService(testCatalog())
	logger := newMockOrderLogger()
	s := NewCheckoutService(cart, logger, "SDN")
	s.now = func() time.Time { return time.UnixMilli(1753397368123) }
	return s, cart, logger
}

func fillCart(t *testing.T, cart *CartService) {
	t.Helper()
	// 57 x2 + 39 = 153
	for _, id := range []int{1, 1, 3} {
		_, err := cart.AddToCart(id)
		require.NoError(t, err)
	}
}

func TestCheckoutBegin(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		s, _, _ := newCheckoutFixture(t)

		_, err := s.Begin()
		assert.ErrorIs(t, err, domain.ErrEmptyCart)

		_, err = s.Status()
		assert.ErrorIs(t, err, domain.ErrNoCheckout)
	})

	t.Run("StartsInFormState", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)

		st, err := s.Begin()
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutForm, st.State)
		assert.Equal(t, "SDN-368123", st.OrderID)
		assert.Nil(t, st.Order)
	})

	t.Run("FreshInstanceGetsFreshOrderID", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)

		first, err := s.Begin()
		require.NoError(t, err)

		s.now = func() time.Time { return time.UnixMilli(1753397999456) }
		second, err := s.Begin()
		require.NoError(t, err)

		assert.NotEqual(t, first.OrderID, second.OrderID)
		assert.Equal(t, domain.CheckoutForm, second.State)
	})
}

func TestCheckoutSubmit(t *testing.T) {
	t.Run("WhatsAppGoesToInstructions", func(t *testing.T) {
		s, cart, logger := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		st, notif, err := s.Submit(validInfo(), domain.PayWhatsApp)
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutInstructions, st.State)
		assert.Nil(t, notif)

		require.NotNil(t, st.Order)
		assert.Equal(t, "SDN-368123", st.Order.ID)
		assert.Equal(t, int64(153), st.Order.Subtotal)
		assert.Equal(t, int64(30), st.Order.Discount)
		assert.Equal(t, int64(123), st.Order.Total)
		assert.Len(t, st.Order.Items, 2)

		logged := logger.wait(t)
		assert.Equal(t, st.Order.ID, logged.ID)
		assert.Equal(t, domain.PayWhatsApp, logged.Payment)
	})

	t.Run("CardShortCircuitsToCompleted", func(t *testing.T) {
		s, cart, logger := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		st, notif, err := s.Submit(validInfo(), domain.PayCard)
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutCompleted, st.State)
		require.NotNil(t, notif)
		assert.Contains(t, notif.Message, "coming soon")

		logged := logger.wait(t)
		assert.Equal(t, domain.PayCard, logged.Payment)
	})

	t.Run("MissingFieldsStaysInForm", func(t *testing.T) {
		s, cart, logger := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		info := validInfo()
		info.Phone = ""
		_, _, err = s.Submit(info, domain.PayWhatsApp)
		assert.ErrorIs(t, err, domain.ErrMissingFields)

		st, err := s.Status()
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutForm, st.State)
		assert.Empty(t, logger.logged)
	})

	t.Run("InvalidEmailStaysInForm", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		info := validInfo()
		info.Email = "johnexample.com"
		_, _, err = s.Submit(info, domain.PayWhatsApp)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)

		st, err := s.Status()
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutForm, st.State)
	})

	t.Run("UnknownPaymentMethod", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		_, _, err = s.Submit(validInfo(), "paypal")
		assert.ErrorIs(t, err, domain.ErrInvalidPayment)
	})

	t.Run("WithoutBegin", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)

		_, _, err := s.Submit(validInfo(), domain.PayWhatsApp)
		assert.ErrorIs(t, err, domain.ErrNoCheckout)
	})

	t.Run("TwiceIsInvalidTransition", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		_, _, err = s.Submit(validInfo(), domain.PayWhatsApp)
		require.NoError(t, err)

		_, _, err = s.Submit(validInfo(), domain.PayWhatsApp)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("SlowLoggerDoesNotBlockTransition", func(t *testing.T) {
		s, cart, logger := newCheckoutFixture(t)
		logger.blockOn = make(chan struct{})
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		done := make(chan port.CheckoutStatus, 1)
		go func() {
			st, _, err := s.Submit(validInfo(), domain.PayWhatsApp)
			assert.NoError(t, err)
			done <- st
		}()

		select {
		case st := <-done:
			assert.Equal(t, domain.CheckoutInstructions, st.State)
		case <-time.After(time.Second):
			t.Fatal("submit blocked on the order logger")
		}

		close(logger.blockOn)
		logger.wait(t)
	})
}

func TestCheckoutBackAndConfirm(t *testing.T) {
	submitted := func(t *testing.T) (*CheckoutService, *mockOrderLogger) {
		t.Helper()
		s, cart, logger := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)
		_, _, err = s.Submit(validInfo(), domain.PayWhatsApp)
		require.NoError(t, err)
		return s, logger
	}

	t.Run("BackReturnsToForm", func(t *testing.T) {
		s, _ := submitted(t)

		st, err := s.Back()
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutForm, st.State)
		assert.Equal(t, "SDN-368123", st.OrderID, "order id survives the back action")
	})

	t.Run("ConfirmCompletesFlow", func(t *testing.T) {
		s, _ := submitted(t)

		st, notif, err := s.ConfirmSent()
		require.NoError(t, err)
		assert.Equal(t, domain.CheckoutCompleted, st.State)
		assert.Equal(t, "Order Submitted!", notif.Title)
	})

	t.Run("CompletedIsTerminal", func(t *testing.T) {
		s, _ := submitted(t)
		_, _, err := s.ConfirmSent()
		require.NoError(t, err)

		_, err = s.Back()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		_, _, err = s.ConfirmSent()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("BackFromFormIsInvalid", func(t *testing.T) {
		s, cart, _ := newCheckoutFixture(t)
		fillCart(t, cart)
		_, err := s.Begin()
		require.NoError(t, err)

		_, err = s.Back()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("WithoutCheckout", func(t *testing.T) {
		s, _, _ := newCheckoutFixture(t)

		_, err := s.Back()
		assert.ErrorIs(t, err, domain.ErrNoCheckout)

		_, _, err = s.ConfirmSent()
		assert.ErrorIs(t, err, domain.ErrNoCheckout)
	})
}
