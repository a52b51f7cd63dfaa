package procs

import "context"

const adminViewAllReservations = `SELECT * FROM admin_view_all_reservations()`

func (q *Queries) AdminViewAllReservations(ctx context.Context, db DBTX) ([]map[string]any, error) {
	rows, err := db.Query(ctx, adminViewAllReservations)
	if err != nil {
		return nil, err
	}
	return collectMaps(rows)
}

const adminViewAllMessages = `SELECT * FROM admin_view_all_messages()`

func (q *Queries) AdminViewAllMessages(ctx context.Context, db DBTX) ([]map[string]any, error) {
	rows, err := db.Query(ctx, adminViewAllMessages)
	if err != nil {
		return nil, err
	}
	return collectMaps(rows)
}
