package commands

import (
	"errors"
	"io"

	"smartlogix/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrImportIDIsRequired     = errors.New("importId is required")
	ErrImportSourceIsRequired = errors.New("import source is required")
)

// ImportOrdersCommand represents a request to bulk-import orders from a CSV
// source. The import identifier keys the checkpoint state: rerunning a
// command with the same identifier and the same file resumes after the last
// committed chunk instead of duplicating it.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	importID string
	source   io.Reader

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to import orders from source.
// The source must yield the CSV content with a header row of
// orderNumber,description,destinationAddress,weight.
func NewImportOrdersCommand(importID string, source io.Reader) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setImportID(importID),
		cmd.setSource(source),
	); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// ImportID returns the identifier keying the import's checkpoint state.
func (c ImportOrdersCommand) ImportID() string {
	return c.importID
}

// Source returns the CSV content reader.
func (c ImportOrdersCommand) Source() io.Reader {
	return c.source
}

func (c *ImportOrdersCommand) setImportID(importID string) error {
	if importID == "" {
		return ErrImportIDIsRequired
	}

	c.importID = importID
	return nil
}

func (c *ImportOrdersCommand) setSource(source io.Reader) error {
	if source == nil {
		return ErrImportSourceIsRequired
	}

	c.source = source
	return nil
}
