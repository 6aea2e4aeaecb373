// Package csvio is the boundary between delimited text records and the
// ledger engine: it normalizes input rows into typed transactions and
// serializes the final account state back out. Malformed rows never reach
// the engine; per-row failures are logged and the run continues.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"go.uber.org/zap"

	"github.com/punchamoorthee/paymentsengine/internal/domain"
	"github.com/punchamoorthee/paymentsengine/internal/engine"
	"github.com/punchamoorthee/paymentsengine/internal/metrics"
)

// Row is the raw shape of one input record.
type Row struct {
	Type   string `csv:"type"`
	Client uint16 `csv:"client"`
	Tx     uint32 `csv:"tx"`
	Amount string `csv:"amount"`
}

// transaction normalizes the row into a fully-typed transaction. The type
// name must be known and a present amount must parse as a strictly-positive
// decimal; a missing amount is left to the engine, which rejects it for
// deposits and withdrawals.
func (r Row) transaction() (domain.Transaction, error) {
	txType, err := domain.ParseTransactionType(r.Type)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		Type:   txType,
		Client: domain.ClientID(r.Client),
		ID:     domain.TransactionID(r.Tx),
		Status: domain.StatusPending,
	}

	if r.Amount != "" {
		amount, err := domain.ParseAmount(r.Amount)
		if err != nil {
			return domain.Transaction{}, err
		}
		tx.Amount = &amount
	}

	return tx, nil
}

// Processor streams transaction rows into an engine.
type Processor struct {
	engine   *engine.Engine
	logger   *zap.Logger
	recorder *metrics.Recorder
}

func NewProcessor(eng *engine.Engine, logger *zap.Logger, recorder *metrics.Recorder) *Processor {
	return &Processor{engine: eng, logger: logger, recorder: recorder}
}

// paddedReader widens short records to the header width, so referential
// rows may omit the trailing empty amount field.
type paddedReader struct {
	reader *csv.Reader
	width  int
}

func (r *paddedReader) Read() ([]string, error) {
	record, err := r.reader.Read()
	if err != nil {
		return nil, err
	}
	for len(record) < r.width {
		record = append(record, "")
	}
	return record, nil
}

// Run reads CSV records from input and applies them to the engine in
// arrival order. Row-level problems are logged and skipped; only an
// unreadable header is a run-level error.
func (p *Processor) Run(input io.Reader) error {
	reader := csv.NewReader(input)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// Empty input, nothing to process.
		return nil
	}
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	decoder, err := csvutil.NewDecoder(&paddedReader{reader: reader, width: len(header)}, header...)
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	decoder.Map = func(field, column string, v any) string {
		return strings.TrimSpace(field)
	}

	for {
		var row Row
		err := decoder.Decode(&row)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			p.recorder.ObserveMalformedRow()
			p.logger.Warn("skipping malformed row", zap.Error(err))
			continue
		}

		tx, err := row.transaction()
		if err != nil {
			p.recorder.ObserveMalformedRow()
			p.logger.Warn("skipping malformed row", zap.Error(err))
			continue
		}

		err = p.engine.Process(tx)
		p.recorder.ObserveTransaction(tx.Type, err)
		if err != nil {
			p.logger.Warn("transaction rejected",
				zap.String("type", string(tx.Type)),
				zap.Uint16("client", uint16(tx.Client)),
				zap.Uint32("tx", uint32(tx.ID)),
				zap.String("reason", engine.FailureReason(err)),
				zap.Error(err),
			)
		}
	}
}
