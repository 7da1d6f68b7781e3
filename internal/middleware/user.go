package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserRegistrar stores users on first contact
type UserRegistrar interface {
	EnsureUserExists(userID int64) error
}

// EnsureUser creates the sender's user record before any handler runs
func EnsureUser(users UserRegistrar, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := users.EnsureUserExists(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return c.Send("Something went wrong. Please try again later.")
			}

			return next(c)
		}
	}
}
