package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Send(ctx context.Context, msg Message) error {
	return m.Called(ctx, msg).Error(0)
}

func TestSubmitRejectsInvalidEmail(t *testing.T) {
	transport := new(mockTransport)
	d := NewDispatcher(transport, "", "artist@example.org", time.Second)

	err := d.Submit(context.Background(), Submission{Email: "not-an-email", Subject: "s", Text: "b"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.NotContains(t, verr.Fields, "subject")
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitNamesEveryMissingField(t *testing.T) {
	transport := new(mockTransport)
	d := NewDispatcher(transport, "", "artist@example.org", time.Second)

	err := d.Submit(context.Background(), Submission{Email: "  ", Subject: "", Text: "\n"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	for _, f := range []string{"email", "subject", "text"} {
		assert.Contains(t, verr.Fields, f)
	}
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitSendsExactlyOnce(t *testing.T) {
	transport := new(mockTransport)
	d := NewDispatcher(transport, "", "artist@example.org", time.Second)

	transport.On("Send", mock.Anything, mock.MatchedBy(func(m Message) bool {
		return m.From == "artist@example.org" &&
			len(m.To) == 1 && m.To[0] == "artist@example.org" &&
			m.ReplyTo == "a@b.com" &&
			m.Subject == "s"
	})).Return(nil).Once()

	err := d.Submit(context.Background(), Submission{Email: "a@b.com", Subject: "s", Text: "b"})
	require.NoError(t, err)

	transport.AssertExpectations(t)
	transport.AssertNumberOfCalls(t, "Send", 1)

	sent := transport.Calls[0].Arguments.Get(1).(Message)
	assert.Contains(t, sent.HTML, "a@b.com")
	assert.Contains(t, sent.HTML, "<p>b</p>")
}

func TestSubmitUsesConfiguredSender(t *testing.T) {
	transport := new(mockTransport)
	d := NewDispatcher(transport, "Website <noreply@example.org>", "artist@example.org", time.Second)
	transport.On("Send", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, d.Submit(context.Background(), Submission{Email: "fan@example.com", Subject: "Hi", Text: "Bravo"}))

	sent := transport.Calls[0].Arguments.Get(1).(Message)
	assert.Equal(t, "Website <noreply@example.org>", sent.From)
	assert.Equal(t, []string{"artist@example.org"}, sent.To)
}

func TestSubmitSurfacesDeliveryFailure(t *testing.T) {
	transport := new(mockTransport)
	d := NewDispatcher(transport, "", "artist@example.org", time.Second)
	cause := errors.New("connection refused")
	transport.On("Send", mock.Anything, mock.Anything).Return(cause).Once()

	err := d.Submit(context.Background(), Submission{Email: "a@b.com", Subject: "s", Text: "b"})

	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, cause)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestSubmitBoundsTransportWithDeadline(t *testing.T) {
	transport := new(mockTransport)
	d := NewDispatcher(transport, "", "artist@example.org", 50*time.Millisecond)
	transport.On("Send", mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		})

	err := d.Submit(context.Background(), Submission{Email: "a@b.com", Subject: "s", Text: "b"})
	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestComposeEscapesVisitorInput(t *testing.T) {
	d := NewDispatcher(nil, "", "artist@example.org", 0)
	msg, err := d.Compose(Submission{Email: "a@b.com", Subject: "s", Text: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}
