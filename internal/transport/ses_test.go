package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSESClient struct {
	err       error
	callCount int
	lastInput *sesv2.SendEmailInput
}

func (m *mockSESClient) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	m.callCount++
	m.lastInput = params
	if m.err != nil {
		return nil, m.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("test-message-id")}, nil
}

func TestSESTransport_SendText(t *testing.T) {
	mock := &mockSESClient{}
	tr := NewSESWithClient("jane@example.com", mock)
	assert.Equal(t, KindSES, tr.Name())

	resp, err := tr.Send(context.Background(), &Message{
		From:    "jane@example.com",
		To:      []string{"a@x.com", "b@y.com"},
		Subject: "Subject",
		Body:    "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "MessageId: test-message-id", resp)
	assert.Equal(t, 1, mock.callCount)

	input := mock.lastInput
	assert.Equal(t, "jane@example.com", aws.ToString(input.FromEmailAddress))
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "Subject", aws.ToString(input.Content.Simple.Subject.Data))
	require.NotNil(t, input.Content.Simple.Body.Text)
	assert.Equal(t, "Hello", aws.ToString(input.Content.Simple.Body.Text.Data))
	assert.Nil(t, input.Content.Simple.Body.Html)
}

func TestSESTransport_SendHTML(t *testing.T) {
	mock := &mockSESClient{}
	tr := NewSESWithClient("", mock)

	_, err := tr.Send(context.Background(), &Message{
		From: "jane@example.com",
		To:   []string{"a@x.com"},
		Body: "<p>Hello</p>",
		HTML: true,
	})
	require.NoError(t, err)

	input := mock.lastInput
	assert.Equal(t, "jane@example.com", aws.ToString(input.FromEmailAddress))
	require.NotNil(t, input.Content.Simple.Body.Html)
	assert.Equal(t, "<p>Hello</p>", aws.ToString(input.Content.Simple.Body.Html.Data))
	assert.Nil(t, input.Content.Simple.Body.Text)
}

func TestSESTransport_Error(t *testing.T) {
	apiErr := errors.New("MessageRejected: Email address is not verified")
	mock := &mockSESClient{err: apiErr}
	tr := NewSESWithClient("jane@example.com", mock)

	_, err := tr.Send(context.Background(), &Message{To: []string{"a@x.com"}, Body: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, 1, mock.callCount)
}

func TestSESTransport_NoRecipients(t *testing.T) {
	mock := &mockSESClient{}
	tr := NewSESWithClient("jane@example.com", mock)

	_, err := tr.Send(context.Background(), &Message{Body: "x"})
	assert.ErrorIs(t, err, ErrNoRecipients)
	assert.Zero(t, mock.callCount)
}
