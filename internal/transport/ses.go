package transport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SendEmailAPI is the SES v2 SendEmail operation.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESTransport sends through AWS SES v2.
type SESTransport struct {
	sender string
	client SendEmailAPI
	logger *slog.Logger
}

// NewSES loads AWS configuration and creates an SES transport. Static
// keys from cfg take precedence over the default credential chain.
func NewSES(ctx context.Context, cfg Config) (*SESTransport, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.SESRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.SESRegion))
	}
	if cfg.SESAccessKey != "" && cfg.SESSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SESAccessKey, cfg.SESSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	t := NewSESWithClient(cfg.User, sesv2.NewFromConfig(awsCfg))
	if cfg.Logger != nil {
		t.logger = cfg.Logger
	}
	return t, nil
}

// NewSESWithClient creates an SES transport around an existing client.
func NewSESWithClient(sender string, client SendEmailAPI) *SESTransport {
	return &SESTransport{
		sender: sender,
		client: client,
		logger: slog.Default(),
	}
}

// Name returns "ses".
func (t *SESTransport) Name() string {
	return KindSES
}

// Send delivers msg as a simple SES message.
func (t *SESTransport) Send(ctx context.Context, msg *Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	out, err := t.client.SendEmail(ctx, buildSESInput(t.sender, msg))
	if err != nil {
		return "", fmt.Errorf("failed to send via SES: %w", err)
	}

	id := aws.ToString(out.MessageId)
	t.logger.Debug("message sent", "transport", KindSES, "id", id)
	return "MessageId: " + id, nil
}

func buildSESInput(sender string, msg *Message) *sesv2.SendEmailInput {
	if sender == "" {
		sender = msg.From
	}

	content := &types.Content{
		Data:    aws.String(msg.Body),
		Charset: aws.String("UTF-8"),
	}
	body := &types.Body{}
	if msg.HTML {
		body.Html = content
	} else {
		body.Text = content
	}

	return &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(sender),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(msg.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: body,
			},
		},
	}
}
