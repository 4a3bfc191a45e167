package mail

import (
	"context"
	"io"
	"mime/quotedprintable"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"artist-site/internal/domain/feedback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ feedback.Transport = (*SMTPTransport)(nil)

func TestBuildMessageHeaders(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := string(BuildMessage(feedback.Message{
		From:    "site@example.com",
		To:      []string{"artist@example.com"},
		ReplyTo: "fan@example.com",
		Subject: "Concert in Köln",
		HTML:    "<p>Hello</p>\n<p>Bye</p>",
	}, now))

	head, body, ok := strings.Cut(raw, "\r\n\r\n")
	require.True(t, ok)

	assert.Contains(t, head, "From: site@example.com\r\n")
	assert.Contains(t, head, "To: artist@example.com\r\n")
	assert.Contains(t, head, "Reply-To: fan@example.com\r\n")
	assert.Contains(t, head, "Subject: =?utf-8?q?Concert_in_K=C3=B6ln?=\r\n")
	assert.Contains(t, head, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, head, "Date: Sat, 01 Mar 2025 12:00:00 +0000")
	assert.Contains(t, head, "Content-Transfer-Encoding: quoted-printable")
	assert.Equal(t, "<p>Hello</p>\r\n<p>Bye</p>\r\n", body)
}

func TestBuildMessageStripsHeaderInjection(t *testing.T) {
	raw := string(BuildMessage(feedback.Message{
		From:    "site@example.com",
		To:      []string{"artist@example.com"},
		ReplyTo: "fan@example.com\r\nBcc: victim@example.com",
		Subject: "hi\nBcc: victim@example.com",
	}, time.Now()))

	head, _, _ := strings.Cut(raw, "\r\n\r\n")
	for _, line := range strings.Split(head, "\r\n") {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line %q", line)
	}
}

func TestSendUnreachableHost(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	tr := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: port})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = tr.Send(ctx, feedback.Message{From: "site@example.com", To: []string{"artist@example.com"}})
	assert.Error(t, err)
}

func TestSendRejectsBadSender(t *testing.T) {
	tr := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: 1})
	err := tr.Send(context.Background(), feedback.Message{From: "not an address", To: []string{"a@example.com"}})
	assert.ErrorContains(t, err, "invalid sender")
}

func TestBuildMessageWrapsLongLines(t *testing.T) {
	text := "<p>" + strings.Repeat("Wunderbar=schön ", 200) + "</p>"
	raw := string(BuildMessage(feedback.Message{
		From: "site@example.com",
		To:   []string{"artist@example.com"},
		HTML: text,
	}, time.Now()))

	for _, line := range strings.Split(raw, "\r\n") {
		assert.LessOrEqual(t, len(line), 76, "line too long: %q", line)
	}

	_, body, ok := strings.Cut(raw, "\r\n\r\n")
	require.True(t, ok)
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	require.NoError(t, err)
	assert.Equal(t, text, strings.TrimRight(string(decoded), "\r\n"))
}

// smtpSession is what a fake relay saw during one delivery.
type smtpSession struct {
	mu   sync.Mutex
	from string
	rcpt []string
	data string
}

// fakeRelay accepts one plain SMTP session without TLS or AUTH.
func fakeRelay(t *testing.T) (int, *smtpSession, <-chan struct{}) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	seen := &smtpSession{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		tp := textproto.NewConn(conn)
		_ = tp.PrintfLine("220 localhost ESMTP")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				_ = tp.PrintfLine("250 localhost")
			case strings.HasPrefix(cmd, "MAIL FROM:"):
				seen.mu.Lock()
				seen.from = strings.TrimSpace(line[len("MAIL FROM:"):])
				seen.mu.Unlock()
				_ = tp.PrintfLine("250 OK")
			case strings.HasPrefix(cmd, "RCPT TO:"):
				seen.mu.Lock()
				seen.rcpt = append(seen.rcpt, strings.TrimSpace(line[len("RCPT TO:"):]))
				seen.mu.Unlock()
				_ = tp.PrintfLine("250 OK")
			case cmd == "DATA":
				_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
				data, err := tp.ReadDotBytes()
				if err != nil {
					return
				}
				seen.mu.Lock()
				seen.data = string(data)
				seen.mu.Unlock()
				_ = tp.PrintfLine("250 OK queued")
			case cmd == "QUIT":
				_ = tp.PrintfLine("221 Bye")
				return
			default:
				_ = tp.PrintfLine("502 not implemented")
			}
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port, seen, done
}

func TestSendDeliversToRelay(t *testing.T) {
	port, seen, done := fakeRelay(t)

	tr := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: port})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	html := "<p>" + strings.Repeat("long visitor paragraph ", 100) + "</p>"
	err := tr.Send(ctx, feedback.Message{
		From:    "Site <site@example.com>",
		To:      []string{"artist@example.com"},
		ReplyTo: "fan@example.com",
		Subject: "Hello",
		HTML:    html,
	})
	require.NoError(t, err)
	<-done

	seen.mu.Lock()
	defer seen.mu.Unlock()
	assert.Equal(t, "<site@example.com>", seen.from)
	assert.Equal(t, []string{"<artist@example.com>"}, seen.rcpt)

	head, body, ok := strings.Cut(seen.data, "\n\n")
	require.True(t, ok)
	assert.Contains(t, head, "Reply-To: fan@example.com")
	assert.Contains(t, head, "Content-Transfer-Encoding: quoted-printable")
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	require.NoError(t, err)
	assert.Contains(t, string(decoded), html)
}
