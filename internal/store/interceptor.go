package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type queryStartKey struct{}

type queryStart struct {
	sql  string
	args int
	at   time.Time
}

// QueryLogger logs every statement run through a pgx connection at debug level.
type QueryLogger struct {
	log *zap.SugaredLogger
}

func NewQueryLogger(log *zap.SugaredLogger) *QueryLogger {
	return &QueryLogger{log: log}
}

func (q *QueryLogger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, args: len(data.Args), at: time.Now()})
}

func (q *QueryLogger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, _ := ctx.Value(queryStartKey{}).(queryStart)
	elapsed := time.Since(start.at)

	if data.Err != nil {
		q.log.Debugw("query failed", "sql", start.sql, "args", start.args, "duration", elapsed, "error", data.Err)
		return
	}
	q.log.Debugw("query", "sql", start.sql, "args", start.args, "duration", elapsed, "rows", data.CommandTag.RowsAffected())
}
