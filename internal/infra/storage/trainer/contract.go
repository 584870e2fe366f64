package trainer

import (
	"github.com/sportclub/SC-AppointmentService/pkg/dbmetrics"
)

// Database executor interfaces shared with dbmetrics
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
