package commands

import (
	"context"
	"strings"

	"hotel-booking/internal/pkg/errs"
)

var ErrMessageFieldsRequired = errs.Validation("full name, email, and message are required")

type MessageCommands interface {
	SendMessage(ctx context.Context, fullName, email, message string) error
}

type messageCommandsImpl struct {
	store MessageStore
}

func NewMessageCommands(store MessageStore) MessageCommands {
	return &messageCommandsImpl{store: store}
}

func (m *messageCommandsImpl) SendMessage(ctx context.Context, fullName, email, message string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" || strings.TrimSpace(message) == "" {
		return ErrMessageFieldsRequired
	}
	if err := m.store.SendMessage(ctx, fullName, email, message); err != nil {
		return errs.Mark(errs.Wrap(err, "message delivery failed"), errs.ErrStoreUnavailable)
	}
	return nil
}
