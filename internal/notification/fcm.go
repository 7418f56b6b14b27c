package notification

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// fcmClient adapts the Firebase Cloud Messaging SDK to PushClient.
type fcmClient struct {
	messaging *messaging.Client
}

// NewFCMClientFactory wires Firebase credentials into a lazy client
// factory. An empty credentials path fails fast, which the dispatcher
// turns into permanent graceful degradation.
func NewFCMClientFactory(credentialsFile string) ClientFactory {
	return func(ctx context.Context) (PushClient, error) {
		if credentialsFile == "" {
			return nil, errors.New("no FCM credentials configured")
		}
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
		}
		client, err := app.Messaging(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize FCM client: %w", err)
		}
		return &fcmClient{messaging: client}, nil
	}
}

func (c *fcmClient) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]SendResult, error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	batch, err := c.messaging.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("FCM multicast: %w", err)
	}

	results := make([]SendResult, len(batch.Responses))
	for i, resp := range batch.Responses {
		results[i] = SendResult{
			Token: tokens[i],
			Err:   resp.Error,
		}
		if resp.Error != nil {
			results[i].Unregistered = messaging.IsUnregistered(resp.Error) ||
				errorutils.IsInvalidArgument(resp.Error)
		}
	}
	return results, nil
}
