package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/dto"
	"github.com/SscSPs/cleanbook_engine/internal/platform/logging"
)

const usage = `usage: booking_engine <command> [flags]

commands:
  quote -request FILE               price a booking request (FILE may be - for stdin)
  validate-promocode -code CODE     check whether a promocode is usable
                     [-lock]        check under a row lock; the lock is released when
                                    the command exits and reserves nothing
  settle -booking ID -cleaner ID    credit a cleaner for a completed cash booking
`

var errUsage = errors.New("invalid usage")

type app struct {
	services  *portssvc.ServiceContainer
	txManager portsrepo.TransactionManager
	logger    *slog.Logger
	in        io.Reader
	out       io.Writer
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}

	command, rest := args[0], args[1:]
	ctx, logger := logging.WithCommandLogger(ctx, a.logger, command)

	var err error
	switch command {
	case "quote":
		err = a.quote(ctx, rest)
	case "validate-promocode":
		err = a.validatePromocode(ctx, rest)
	case "settle":
		err = a.settle(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	if err == nil {
		logger.Info("Command completed")
	}
	return err
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *app) quote(ctx context.Context, args []string) error {
	fs := a.newFlagSet("quote")
	requestPath := fs.String("request", "", "path to a JSON quote request, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *requestPath == "" {
		return fmt.Errorf("%w: -request is required", errUsage)
	}

	req, err := a.readQuoteRequest(*requestPath)
	if err != nil {
		return err
	}

	resp, err := a.services.Quote.Quote(ctx, req)
	if err != nil {
		return err
	}
	return a.writeJSON(resp)
}

func (a *app) readQuoteRequest(path string) (dto.QuoteRequest, error) {
	var r io.Reader = a.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return dto.QuoteRequest{}, fmt.Errorf("failed to open quote request: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req dto.QuoteRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return dto.QuoteRequest{}, fmt.Errorf("%w: malformed quote request: %v", apperrors.ErrValidation, err)
	}
	return req, nil
}

func (a *app) validatePromocode(ctx context.Context, args []string) error {
	fs := a.newFlagSet("validate-promocode")
	code := fs.String("code", "", "promocode to validate")
	lock := fs.Bool("lock", false, "check under a row lock released before exit")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var result domain.PromocodeValidationResult
	check := func(ctx context.Context) error {
		var err error
		result, err = a.services.Promocode.Validate(ctx, *code, *lock)
		return err
	}

	// The lock lives only as long as this transaction, so it guards the check and nothing after it.
	var err error
	if *lock {
		err = a.txManager.WithinTransaction(ctx, check)
	} else {
		err = check(ctx)
	}
	if err != nil {
		return err
	}
	return a.writeJSON(result)
}

func (a *app) settle(ctx context.Context, args []string) error {
	fs := a.newFlagSet("settle")
	bookingID := fs.String("booking", "", "booking ID")
	cleanerID := fs.String("cleaner", "", "cleaner ID")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *bookingID == "" || *cleanerID == "" {
		return fmt.Errorf("%w: -booking and -cleaner are required", errUsage)
	}

	settlement, err := a.services.Settlement.SettleBooking(ctx, *bookingID, *cleanerID)
	if err != nil {
		return err
	}
	return a.writeJSON(dto.ToSettlementResponse(*bookingID, *cleanerID, settlement))
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitCode maps failures to distinct process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrAlreadySettled):
		return 3
	case errors.Is(err, apperrors.ErrNotFound):
		return 4
	default:
		return 1
	}
}
