// Package cli maps the first command-line token to an employee operation,
// loads the collection for it and turns rejected input into terminal messages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/staffbook/internal/lib/logger/sl"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/models"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/UnknownOlympus/staffbook/internal/services/employees"
)

const (
	CommandAdd    = "-add"
	CommandUpdate = "-update"
	CommandGet    = "-get"
	CommandDelete = "-delete"
	CommandGetAll = "-getall"
)

const (
	MsgNoArguments    = "No arguments provided"
	MsgInvalidCommand = "Invalid command"
)

const (
	statusSuccess  = "success"
	statusRejected = "rejected"
	statusFailure  = "failure"

	unknownCommand = "unknown"
)

type handlerFunc func(ctx context.Context, collection []models.Employee, args []string) ([]models.Employee, error)

// Dispatcher runs exactly one command per call. It keeps no state between calls.
type Dispatcher struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	staff   *employees.Staff
	metrics *metrics.Metrics
	out     io.Writer
}

func NewDispatcher(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	metrics *metrics.Metrics,
	out io.Writer,
) *Dispatcher {
	return &Dispatcher{
		log:     log,
		repo:    repo,
		staff:   employees.NewStaff(log, repo, out),
		metrics: metrics,
		out:     out,
	}
}

func (d *Dispatcher) initLogger(opn string) *slog.Logger {
	return d.log.With(
		slog.String("op", opn),
		slog.String("division", "cli"),
	)
}

// Run executes the command named by args[0] with the remaining tokens.
// Rejected input is printed to the output and is not an error; only failures
// to read or write the collection are returned.
func (d *Dispatcher) Run(ctx context.Context, args []string) error {
	const opn = "Dispatcher.Run"
	log := d.initLogger(opn)

	defer d.metrics.LastRun.SetToCurrentTime()

	if len(args) == 0 {
		fmt.Fprintln(d.out, MsgNoArguments)
		return nil
	}

	command := strings.ToLower(args[0])
	handler, ok := d.handler(command)
	if !ok {
		log.DebugContext(ctx, "Unknown command", sl.Args(args))
		d.metrics.Operations.WithLabelValues(unknownCommand, statusRejected).Inc()
		fmt.Fprintln(d.out, MsgInvalidCommand)
		return nil
	}

	startTime := time.Now()
	log.DebugContext(ctx, "Dispatching command", "command", command, sl.Args(args[1:]))

	collection, err := d.repo.LoadEmployees(ctx)
	if err != nil {
		d.metrics.Operations.WithLabelValues(command, statusFailure).Inc()
		return fmt.Errorf("failed to load employees: %w", err)
	}

	_, err = handler(ctx, collection, args[1:])

	var userErr employees.UserError
	switch {
	case err == nil:
		d.metrics.Operations.WithLabelValues(command, statusSuccess).Inc()
	case errors.As(err, &userErr):
		log.InfoContext(ctx, "Command rejected", "command", command, sl.Err(err))
		d.metrics.Operations.WithLabelValues(command, statusRejected).Inc()
		fmt.Fprintln(d.out, userErr.UserMessage())
	default:
		d.metrics.Operations.WithLabelValues(command, statusFailure).Inc()
		return fmt.Errorf("failed to run %s: %w", command, err)
	}

	log.DebugContext(ctx, "Command finished", "command", command, "duration", time.Since(startTime).String())

	return nil
}

func (d *Dispatcher) handler(command string) (handlerFunc, bool) {
	switch command {
	case CommandAdd:
		return d.staff.Add, true
	case CommandUpdate:
		return d.staff.Update, true
	case CommandGet:
		return d.staff.Get, true
	case CommandDelete:
		return d.staff.Delete, true
	case CommandGetAll:
		return d.staff.GetAll, true
	default:
		return nil, false
	}
}
