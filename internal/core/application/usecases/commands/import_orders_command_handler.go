package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/shopspring/decimal"
)

// importChunkSize is the number of CSV data rows committed per transaction.
const importChunkSize = 10

// csv column positions after the header row.
const (
	colOrderNumber = iota
	colDescription
	colDestinationAddress
	colWeight
	importColumns
)

// ImportOrdersResult reports the outcome of an import run.
type ImportOrdersResult struct {
	// RowsImported is the number of orders inserted by this run.
	RowsImported int

	// RowsSkipped is the number of data rows dropped for a blank order
	// number.
	RowsSkipped int

	// ChunksCommitted is the number of chunks committed by this run,
	// excluding chunks already committed by a previous run.
	ChunksCommitted int

	// ResumedAfterChunk is the checkpointed chunk index this run resumed
	// after, or -1 when the import started from the beginning.
	ResumedAfterChunk int
}

// ImportOrdersCommandHandler implements the chunked CSV import. Data rows
// are grouped into consecutive chunks of ten by file position; each chunk's
// orders and its checkpoint commit in one transaction, so a failed run can
// be retried with the same import identifier and resumes exactly after the
// last committed chunk.
//
// Per-row validation is tolerant: a blank order number drops the row and a
// malformed weight imports the order without one. A malformed CSV row or a
// failed chunk commit is fatal and ends the run.
type ImportOrdersCommandHandler struct {
	uowFactory ImportUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewImportOrdersCommandHandler creates a handler for CSV order imports.
func NewImportOrdersCommandHandler(
	uowFactory ImportUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the import for the tenant bound to the context.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (ImportOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportOrdersResult{}, err
	}

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return ImportOrdersResult{}, err
	}

	lastCommitted, err := h.lastCommittedChunk(ctx, cmd.ImportID())
	if err != nil {
		return ImportOrdersResult{}, err
	}

	result := ImportOrdersResult{ResumedAfterChunk: lastCommitted}

	reader := csv.NewReader(cmd.Source())
	reader.FieldsPerRecord = -1

	// Header row is required but its content is not checked beyond arity.
	header, err := reader.Read()
	if err == io.EOF {
		return result, nil
	}
	if err != nil {
		return result, errs.NewValueIsInvalidErrorWithCause("csv", err)
	}
	if len(header) < importColumns {
		return result, errs.NewValueIsInvalidErrorWithCause(
			"csv",
			fmt.Errorf("expected %d header columns, got %d", importColumns, len(header)),
		)
	}

	chunkIndex := 0
	chunk := make([][]string, 0, importChunkSize)

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		defer func() {
			chunkIndex++
			chunk = chunk[:0]
		}()

		if chunkIndex <= lastCommitted {
			return nil
		}

		imported, skipped, chunkErr := h.commitChunk(ctx, cmd.ImportID(), tenantID, chunkIndex, chunk)
		if chunkErr != nil {
			return chunkErr
		}

		result.RowsImported += imported
		result.RowsSkipped += skipped
		result.ChunksCommitted++
		return nil
	}

	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return result, errs.NewValueIsInvalidErrorWithCause("csv", readErr)
		}

		chunk = append(chunk, row)
		if len(chunk) == importChunkSize {
			if err = flush(); err != nil {
				return result, err
			}
		}
	}

	if err = flush(); err != nil {
		return result, err
	}

	return result, nil
}

// lastCommittedChunk reads the checkpoint outside the chunk transactions.
func (h *ImportOrdersCommandHandler) lastCommittedChunk(ctx context.Context, importID string) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lastCommitted, err := uow.ImportCheckpointRepository().LastCommittedChunk(ctx, importID)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return lastCommitted, nil
}

// commitChunk inserts one chunk's orders and its checkpoint in a single
// transaction, then publishes an OrderCreated event per inserted order.
func (h *ImportOrdersCommandHandler) commitChunk(
	ctx context.Context,
	importID string,
	tenantID kernel.UUID,
	chunkIndex int,
	rows [][]string,
) (imported, skipped int, err error) {
	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, rowErr := h.buildOrder(tenantID, row)
		if rowErr != nil {
			return 0, 0, rowErr
		}
		if o == nil {
			skipped++
			continue
		}
		orders = append(orders, o)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().AddAll(ctx, orders); err != nil {
		return 0, 0, err
	}

	if err = uow.ImportCheckpointRepository().SaveCheckpoint(ctx, importID, chunkIndex); err != nil {
		return 0, 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, 0, err
	}

	for _, o := range orders {
		h.publisher.Publish(ctx, order.NewEvent(o, order.EventOrderCreated))
	}

	return len(orders), skipped, nil
}

// buildOrder maps a CSV row to an order, or to nil when the row is dropped.
func (h *ImportOrdersCommandHandler) buildOrder(tenantID kernel.UUID, row []string) (*order.Order, error) {
	field := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	orderNumber := field(colOrderNumber)
	if orderNumber == "" {
		h.logger.Warn("skipping import row with blank order number", "tenantId", tenantID.String())
		return nil, nil
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		field(colDescription),
		field(colDestinationAddress),
		tenantID,
	)
	if err != nil {
		return nil, err
	}

	if rawWeight := field(colWeight); rawWeight != "" {
		weight, weightErr := decimal.NewFromString(rawWeight)
		if weightErr != nil || weight.IsNegative() {
			h.logger.Warn("ignoring malformed weight in import row",
				"orderNumber", orderNumber,
				"weight", rawWeight,
			)
		} else if err = o.SetWeight(weight); err != nil {
			return nil, err
		}
	}

	return o, nil
}
