package request

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/pkg/mailer"
)

const dateLayout = "2006-01-02"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service handles the public flows that email the owner: booking
// requests and contact messages. Nothing is persisted; a request lives
// in the owner's inbox until it is confirmed manually in the admin.
type Service struct {
	mail        mailer.Mailer
	nightlyRate float64
	cleaningFee float64
}

func NewService(mail mailer.Mailer, nightlyRate, cleaningFee float64) *Service {
	return &Service{
		mail:        mail,
		nightlyRate: nightlyRate,
		cleaningFee: cleaningFee,
	}
}

// SubmitBookingRequest validates the request, computes the stay quote
// and mails the owner with reply-to set to the guest.
func (s *Service) SubmitBookingRequest(ctx context.Context, req BookingRequest) (*Quote, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" || req.Guests <= 0 {
		return nil, ErrValidation
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrValidation
	}

	checkIn, err := time.Parse(dateLayout, strings.TrimSpace(req.CheckIn))
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, strings.TrimSpace(req.CheckOut))
	if err != nil {
		return nil, ErrValidation
	}
	stay := domain.DateRange{Start: domain.NormalizeDay(checkIn), End: domain.NormalizeDay(checkOut)}
	if !stay.Start.Before(stay.End) {
		return nil, ErrValidation
	}

	nights := stay.Nights()
	quote := &Quote{
		Nights:   nights,
		Rate:     s.nightlyRate,
		Cleaning: s.cleaningFee,
		Total:    float64(nights)*s.nightlyRate + s.cleaningFee,
	}

	body, err := renderBookingRequestEmail(bookingRequestEmailData{
		Name:            name,
		Email:           email,
		Phone:           phone,
		Guests:          req.Guests,
		CheckIn:         stay.Start.Format("Monday 02 January 2006"),
		CheckOut:        stay.End.Format("Monday 02 January 2006"),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		Quote:           *quote,
	})
	if err != nil {
		return nil, err
	}

	msg := mailer.OwnerMessage{
		Subject: fmt.Sprintf("New booking request %s to %s - %s",
			stay.Start.Format("02/01/2006"), stay.End.Format("02/01/2006"), name),
		HTMLBody: body,
		ReplyTo:  email,
	}
	if err := s.mail.SendToOwner(ctx, msg); err != nil {
		return nil, ErrDelivery
	}

	return quote, nil
}

// SubmitContactMessage relays a general enquiry to the owner.
func (s *Service) SubmitContactMessage(ctx context.Context, req ContactMessage) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return ErrValidation
	}
	if !emailRegex.MatchString(email) {
		return ErrValidation
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "New contact message"
	}

	body, err := renderContactEmail(contactEmailData{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return err
	}

	msg := mailer.OwnerMessage{
		Subject:  fmt.Sprintf("%s - %s", subject, name),
		HTMLBody: body,
		ReplyTo:  email,
	}
	if err := s.mail.SendToOwner(ctx, msg); err != nil {
		return ErrDelivery
	}
	return nil
}

type bookingRequestEmailData struct {
	Name            string
	Email           string
	Phone           string
	Guests          int
	CheckIn         string
	CheckOut        string
	SpecialRequests string
	Quote           Quote
}

type contactEmailData struct {
	Name    string
	Email   string
	Message string
}

var bookingRequestTmpl = template.Must(template.New("booking_request").Parse(`<!DOCTYPE html>
<html>
  <body>
    <h1>New booking request</h1>
    <p><strong>Action required:</strong> confirm or decline this request.</p>
    <h2>Guest</h2>
    <ul>
      <li>Name: {{.Name}}</li>
      <li>Email: {{.Email}}</li>
      <li>Phone: {{.Phone}}</li>
      <li>Guests: {{.Guests}}</li>
    </ul>
    <h2>Stay</h2>
    <ul>
      <li>Arrival: {{.CheckIn}} (from 15:00)</li>
      <li>Departure: {{.CheckOut}} (before 11:00)</li>
      <li>Nights: {{.Quote.Nights}}</li>
    </ul>
    <h2>Quote</h2>
    <ul>
      <li>Nightly rate: {{printf "%.0f" .Quote.Rate}} EUR</li>
      <li>Cleaning fee: {{printf "%.0f" .Quote.Cleaning}} EUR</li>
      <li><strong>Total: {{printf "%.0f" .Quote.Total}} EUR</strong></li>
    </ul>
    {{if .SpecialRequests}}<h2>Special requests</h2><p>{{.SpecialRequests}}</p>{{end}}
    <p>Reply to this email to answer the guest directly.</p>
  </body>
</html>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
  <body>
    <h1>New contact message</h1>
    <ul>
      <li>Name: {{.Name}}</li>
      <li>Email: {{.Email}}</li>
    </ul>
    <p>{{.Message}}</p>
    <p>Reply to this email to answer directly.</p>
  </body>
</html>`))

func renderBookingRequestEmail(data bookingRequestEmailData) (string, error) {
	var buf bytes.Buffer
	if err := bookingRequestTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderContactEmail(data contactEmailData) (string, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
