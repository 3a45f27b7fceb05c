package email

import (
	"authd/internal/core/domain/user"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const passwordResetSubject = "Password Reset Request"

type SesSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender               string
	passwordResetBaseUrl url.URL
}

func NewSesSender(
	awsConfig aws.Config,
	sender string,
	passwordResetBaseUrl url.URL,
) *SesSender {
	return &SesSender{
		ses:                  ses.NewFromConfig(awsConfig),
		sender:               sender,
		passwordResetBaseUrl: passwordResetBaseUrl,
	}
}

func (s *SesSender) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) error {
	resetUrl := s.passwordResetBaseUrl.JoinPath(string(token)).String()
	body := fmt.Sprintf(
		"To reset your password, please click on the following link: \n\n%s",
		resetUrl,
	)

	email := string(u.Email)
	subject := passwordResetSubject
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Text: &types.Content{Data: &body},
				},
			},
		},
	)
	return err
}
