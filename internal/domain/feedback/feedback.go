package feedback

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog/log"
)

// Submission is what a visitor sends from the feedback form.
type Submission struct {
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Text    string `json:"text" form:"text"`
}

func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&s.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(1, 200),
		),
		validation.Field(&s.Text,
			validation.Required.Error("message is required"),
		),
	)
}

// Message is a composed e-mail ready for the transport.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Transport hands a message to the outside world. Implementations must
// honour ctx cancellation and deadlines.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// ValidationError lists the offending fields with a message each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "feedback: invalid " + strings.Join(names, ", ")
}

// DeliveryError means the message was valid but the transport failed.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "feedback: delivery failed: " + e.Err.Error() }
func (e *DeliveryError) Unwrap() error { return e.Err }

// Dispatcher validates submissions and forwards them to the notification
// address.
type Dispatcher struct {
	transport Transport
	sender    string
	recipient string
	timeout   time.Duration
}

// NewDispatcher sends from sender (falling back to recipient when empty)
// to recipient.
func NewDispatcher(t Transport, sender, recipient string, timeout time.Duration) *Dispatcher {
	if sender == "" {
		sender = recipient
	}
	return &Dispatcher{transport: t, sender: sender, recipient: recipient, timeout: timeout}
}

func (d *Dispatcher) Submit(ctx context.Context, s Submission) error {
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Text = strings.TrimSpace(s.Text)

	if err := s.Validate(); err != nil {
		return toValidationError(err)
	}

	msg, err := d.Compose(s)
	if err != nil {
		return err
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.transport.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("reply_to", s.Email).Msg("feedback delivery failed")
		return &DeliveryError{Err: err}
	}
	log.Info().Str("reply_to", s.Email).Msg("feedback delivered")
	return nil
}

var mailTemplate = template.Must(template.New("mail").Parse(
	`<h3>New message from the website</h3>
<p><b>E-mail:</b> {{.Email}}</p>
<p><b>Subject:</b> {{.Subject}}</p>
<p>{{.Text}}</p>
`))

// Compose builds the notification message for a valid submission.
func (d *Dispatcher) Compose(s Submission) (Message, error) {
	var body bytes.Buffer
	if err := mailTemplate.Execute(&body, s); err != nil {
		return Message{}, err
	}
	return Message{
		From:    d.sender,
		To:      []string{d.recipient},
		ReplyTo: s.Email,
		Subject: s.Subject,
		HTML:    body.String(),
	}, nil
}

func toValidationError(err error) error {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return &ValidationError{Fields: map[string]string{"form": err.Error()}}
	}
	fields := make(map[string]string, len(errs))
	for name, fe := range errs {
		fields[name] = fe.Error()
	}
	return &ValidationError{Fields: fields}
}
