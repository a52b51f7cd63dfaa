package queries

import "context"

type AdminQueries interface {
	Reservations(ctx context.Context) ([]Row, error)
	Messages(ctx context.Context) ([]Row, error)
}

type adminQueriesImpl struct {
	repo AdminReadStore
}

func NewAdminQueries(repo AdminReadStore) AdminQueries {
	return &adminQueriesImpl{repo: repo}
}

func (q *adminQueriesImpl) Reservations(ctx context.Context) ([]Row, error) {
	rows, err := q.repo.Reservations(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to fetch reservations")
	}
	return nonNil(rows), nil
}

func (q *adminQueriesImpl) Messages(ctx context.Context) ([]Row, error) {
	rows, err := q.repo.Messages(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to fetch messages")
	}
	return nonNil(rows), nil
}

func nonNil(rows []Row) []Row {
	if rows == nil {
		return []Row{}
	}
	return rows
}
