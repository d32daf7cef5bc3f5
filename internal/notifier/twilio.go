package notifier

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioProvider struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioProvider builds Provider sending messages through Twilio REST API
func NewTwilioProvider(accountSid string, authToken string, from string) Provider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return &twilioProvider{client: client, from: from}
}

// Send performs a single blocking call to Twilio. No retries, no extra
// timeout on top of what the client itself enforces.
func (p *twilioProvider) Send(_ context.Context, to string, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(p.from)
	params.SetBody(body)

	if _, err := p.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio message create failed - %w", err)
	}
	return nil
}
