package service

import (
	"context"
	"database/sql"

	"github.com/sportclub/SC-AppointmentService/pkg/dbmetrics"
)

// Database executor interfaces shared with dbmetrics
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions on *sql.DB or *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
