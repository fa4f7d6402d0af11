package source

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
)

// Query streams the rows of a SQL query as a one-shot sequence, scanning
// each row with scan. The query runs when iteration starts and the rows are
// closed when it ends; query, scan and iteration errors are reported by the
// returned error function after the sequence ends.
//
// The adapter works with whatever driver db was opened with.
func Query[Item any](
	ctx context.Context,
	db *sql.DB,
	query string,
	args []any,
	scan func(rows *sql.Rows) (Item, error),
) (iter.Seq[Item], func() error) {
	var err error
	seq := func(yield func(Item) bool) {
		rows, e := db.QueryContext(ctx, query, args...)
		if e != nil {
			err = fmt.Errorf("query: %w", e)
			return
		}
		defer rows.Close()

		for rows.Next() {
			item, e := scan(rows)
			if e != nil {
				err = fmt.Errorf("scan: %w", e)
				return
			}
			if !yield(item) {
				return
			}
		}

		if e := rows.Err(); e != nil {
			err = fmt.Errorf("rows: %w", e)
		}
	}

	return seq, func() error { return err }
}
