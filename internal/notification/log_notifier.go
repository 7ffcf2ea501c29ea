package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes deliveries to the structured log instead of a provider.
// Used wherever a real gateway is not configured. Credentials are redacted;
// only the recipient and subject are logged.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notification.log")}
}

func (n *LogNotifier) SendWelcomeEmail(ctx context.Context, msg WelcomeEmail) error {
	body := welcomeEmailBody(msg)
	n.logger.Info("welcome email delivered",
		zap.String("to", msg.Email),
		zap.String("subject", welcomeEmailSubject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

func (n *LogNotifier) SendWelcomeSMS(ctx context.Context, msg WelcomeSMS) error {
	body := welcomeSMSBody(msg)
	n.logger.Info("welcome sms delivered",
		zap.String("to", msg.PhoneNumber),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}
