package email

import (
	"context"
	netmail "net/mail"
	"unitactivity/internal/core/domain/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type SESSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	source string
}

func NewSESSender(
	awsConfig aws.Config,
	from string,
	fromName string,
	optFns ...func(*ses.Options),
) *SESSender {
	source := netmail.Address{Name: fromName, Address: from}
	return &SESSender{
		ses:    ses.NewFromConfig(awsConfig, optFns...),
		source: source.String(),
	}
}

func (s *SESSender) Name() string {
	return "ses"
}

func (s *SESSender) Send(ctx context.Context, msg mail.Message) (mail.DeliveryID, error) {
	output, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.source,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(msg.To)},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String(charset)},
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	return mail.DeliveryID(aws.ToString(output.MessageId)), nil
}

func (s *SESSender) Verify(ctx context.Context) error {
	_, err := s.ses.GetSendQuota(ctx, &ses.GetSendQuotaInput{})
	return err
}
