package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/mailer"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendToOwner(ctx context.Context, msg mailer.OwnerMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func validBookingRequest() BookingRequest {
	return BookingRequest{
		Name:     "Jean Dupont",
		Email:    "jean.dupont@email.com",
		Phone:    "+33 6 12 34 56 78",
		Guests:   4,
		CheckIn:  "2025-12-20",
		CheckOut: "2025-12-23",
	}
}

func TestSubmitBookingRequest_Success(t *testing.T) {
	mail := new(MockMailer)
	mail.On("SendToOwner", mock.Anything, mock.MatchedBy(func(msg mailer.OwnerMessage) bool {
		return msg.ReplyTo == "jean.dupont@email.com"
	})).Return(nil)

	service := NewService(mail, 96, 40)

	quote, err := service.SubmitBookingRequest(context.Background(), validBookingRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 3*96.0+40.0, quote.Total)
	mail.AssertExpectations(t)
}

func TestSubmitBookingRequest_InvalidEmail(t *testing.T) {
	mail := new(MockMailer)
	service := NewService(mail, 96, 40)

	req := validBookingRequest()
	req.Email = "not-an-email"

	_, err := service.SubmitBookingRequest(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	mail.AssertNotCalled(t, "SendToOwner", mock.Anything, mock.Anything)
}

func TestSubmitBookingRequest_ReversedDates(t *testing.T) {
	mail := new(MockMailer)
	service := NewService(mail, 96, 40)

	req := validBookingRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

	_, err := service.SubmitBookingRequest(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitBookingRequest_MailerFailure(t *testing.T) {
	mail := new(MockMailer)
	mail.On("SendToOwner", mock.Anything, mock.Anything).Return(assert.AnError)

	service := NewService(mail, 96, 40)

	_, err := service.SubmitBookingRequest(context.Background(), validBookingRequest())

	assert.ErrorIs(t, err, ErrDelivery)
}

func TestSubmitContactMessage_Success(t *testing.T) {
	mail := new(MockMailer)
	mail.On("SendToOwner", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mail, 96, 40)

	err := service.SubmitContactMessage(context.Background(), ContactMessage{
		Name:    "Marie Martin",
		Email:   "marie.martin@email.com",
		Message: "Is the gîte available for New Year's Eve?",
	})

	assert.NoError(t, err)
	mail.AssertExpectations(t)
}

func TestSubmitContactMessage_MissingMessage(t *testing.T) {
	mail := new(MockMailer)
	service := NewService(mail, 96, 40)

	err := service.SubmitContactMessage(context.Background(), ContactMessage{
		Name:  "Marie Martin",
		Email: "marie.martin@email.com",
	})

	assert.ErrorIs(t, err, ErrValidation)
}
