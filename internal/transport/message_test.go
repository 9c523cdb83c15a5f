package transport

import (
	"io"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRawMessage(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	raw, err := buildRawMessage(&Message{
		From:    "jane@gmail.com",
		To:      []string{"a@x.com", "b@y.com"},
		Subject: "Hello",
		Body:    "line one\nline two",
	}, now)
	require.NoError(t, err)

	m, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	assert.Equal(t, "jane@gmail.com", m.Header.Get("From"))
	assert.Equal(t, "a@x.com, b@y.com", m.Header.Get("To"))
	assert.Equal(t, "Hello", m.Header.Get("Subject"))
	assert.Equal(t, "text/plain; charset=UTF-8", m.Header.Get("Content-Type"))
	assert.True(t, strings.HasSuffix(m.Header.Get("Message-ID"), "@gmail.com>"))

	date, err := m.Header.Date()
	require.NoError(t, err)
	assert.True(t, now.Equal(date))

	body, err := io.ReadAll(quotedprintable.NewReader(m.Body))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", strings.ReplaceAll(string(body), "\r\n", "\n"))
}

func TestBuildRawMessage_HTMLAndEncodedSubject(t *testing.T) {
	raw, err := buildRawMessage(&Message{
		From:    "jane@gmail.com",
		To:      []string{"a@x.com"},
		Subject: "Olá",
		Body:    "<p>hi</p>",
		HTML:    true,
	}, time.Now())
	require.NoError(t, err)

	m, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=UTF-8", m.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(m.Header.Get("Subject"), "=?UTF-8?q?"))
}

func TestMessageID_NoDomain(t *testing.T) {
	assert.True(t, strings.HasSuffix(messageID("nobody"), "@localhost>"))
}
