package logging

import (
	"context"
	"testing"

	"github.com/Domenick1991/seatledger/config"
	"github.com/Domenick1991/seatledger/internal/domain"
	"github.com/Domenick1991/seatledger/internal/service/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{})

	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "verbose"})

	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "failed to parse log level")
}

func TestOperationLogger_LogOperation(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	oplog := NewOperationLogger(zap.New(core))
	ctx := context.Background()

	oplog.LogOperation(ctx, ledger.OperationLog{
		Operation: ledger.OpBookSeats,
		FlightID:  "f-1",
		Passenger: "alice@example.com",
		Seats:     2,
		Remaining: 8,
	})
	oplog.LogOperation(ctx, ledger.OperationLog{
		Operation: ledger.OpBookSeats,
		FlightID:  "f-1",
		Passenger: "bob@example.com",
		Seats:     9,
		Remaining: 8,
		Err:       domain.ErrOverbooking,
	})

	entries := observed.All()
	require.Len(t, entries, 2)

	applied := entries[0]
	assert.Equal(t, zapcore.InfoLevel, applied.Level)
	assert.Equal(t, "ledger operation applied", applied.Message)
	assert.Equal(t, ledger.OpBookSeats, applied.ContextMap()["operation"])
	assert.Equal(t, "alice@example.com", applied.ContextMap()["passenger"])
	assert.Equal(t, int64(8), applied.ContextMap()["remaining_seats"])

	rejected := entries[1]
	assert.Equal(t, zapcore.WarnLevel, rejected.Level)
	assert.Equal(t, "ledger operation rejected", rejected.Message)
	assert.Equal(t, domain.ErrOverbooking.Error(), rejected.ContextMap()["error"])
}
