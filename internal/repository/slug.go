package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// slugTaken reports whether another row in table already uses slug. exclude
// skips the row being updated; pass uuid.Nil on create.
func slugTaken(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table, slug string, exclude uuid.UUID, op string) (bool, error) {
	builder := sb.Select("1").From(table).Where(sq.Eq{"slug": slug})
	if exclude != uuid.Nil {
		builder = builder.Where(sq.NotEq{"id": exclude})
	}

	query, args, err := builder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var one int
	err = db.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// countRows returns the number of rows in table, used by the dashboard stats.
func countRows(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table, op string) (int, error) {
	query, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
