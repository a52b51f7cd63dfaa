package repository

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/procs"
)

type MessageWriteQueries interface {
	SendMessage(ctx context.Context, db procs.DBTX, fullName, email, message string) error
}

type MessageRepository struct {
	queries MessageWriteQueries
	db      procs.DBTX
}

func NewMessageRepository(queries MessageWriteQueries, db procs.DBTX) *MessageRepository {
	return &MessageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MessageRepository) SendMessage(ctx context.Context, fullName, email, message string) error {
	if err := r.queries.SendMessage(ctx, r.db, fullName, email, message); err != nil {
		return infra.WrapRepoErr("failed to send message", err)
	}
	return nil
}
