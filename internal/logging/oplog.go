package logging

import (
	"context"

	"github.com/Domenick1991/seatledger/internal/service/ledger"
	"go.uber.org/zap"
)

// OperationLogger writes the ledger service's operation trail through zap.
type OperationLogger struct {
	logger *zap.Logger
}

func NewOperationLogger(logger *zap.Logger) *OperationLogger {
	return &OperationLogger{logger: logger}
}

func (l *OperationLogger) LogOperation(_ context.Context, entry ledger.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("flight_id", entry.FlightID),
	}
	if entry.Passenger != "" {
		fields = append(fields, zap.String("passenger", entry.Passenger))
	}
	fields = append(fields,
		zap.Int("seats", entry.Seats),
		zap.Int("remaining_seats", entry.Remaining),
	)

	if entry.Err != nil {
		fields = append(fields, zap.Error(entry.Err))
		l.logger.Warn("ledger operation rejected", fields...)
		return
	}
	l.logger.Info("ledger operation applied", fields...)
}

var _ ledger.OperationLogger = (*OperationLogger)(nil)
