package twilio

import (
	"errors"

	_twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Client interface {
	SendSms(from, to, msg string) (string, error)
}

func NewClient(accountSid, authToken string) (*ClientImpl, error) {
	if accountSid == "" || authToken == "" {
		return nil, errors.New("account sid and auth token cannot be empty")
	}

	client := _twilio.NewRestClientWithParams(_twilio.RestClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &ClientImpl{client: client}, nil
}

type ClientImpl struct {
	client *_twilio.RestClient
}

// SendSms returns the sid of the created message.
func (c ClientImpl) SendSms(from, to, msg string) (string, error) {
	if from == "" || to == "" || msg == "" {
		return "", errors.New("none of the parameters can be empty")
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(msg)

	message, err := c.client.ApiV2010.CreateMessage(params)
	if err != nil {
		return "", err
	}

	if message.Sid == nil {
		return "", nil
	}

	return *message.Sid, nil
}
