// Command ride drives a single order through its whole life with the
// in-process adapters and logs the order after every step. It needs no
// database, broker or cache and shows how the taxiapi facade is used as a
// library: taxiapi.New with memory.NewStubDriverRepository and
// memory.NewSequenceAllocator.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"taxi/cmd"
	"taxi/internal/adapters/out/memory"
	"taxi/internal/core/application/taxiapi"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
)

func main() {
	cancel := flag.Bool("cancel", false, "cancel the order while the car is on its way instead of riding")
	flag.Parse()

	logger := cmd.NewLogger(cmd.Config{LogLevel: "info", LogFormat: "text"}, os.Stdout)
	if err := run(context.Background(), logger, *cancel); err != nil {
		logger.Error("Ride failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cancel bool) error {
	api := taxiapi.New(memory.NewStubDriverRepository(), memory.NewSequenceAllocator(), kernel.SystemClock())

	o, err := api.CreateOrderWithoutDestination(ctx, "Anna", "Smith", "Baker St", "12")
	if err != nil {
		return err
	}
	logStep(logger, api, o, "created")

	if err = api.UpdateDestination(o, "Lenina", "1"); err != nil {
		return err
	}
	logStep(logger, api, o, "destination updated")

	if err = api.AssignDriver(ctx, o, memory.StubDriverID); err != nil {
		return err
	}
	logStep(logger, api, o, "driver assigned")

	if cancel {
		if err = api.Cancel(o); err != nil {
			return err
		}
		logStep(logger, api, o, "canceled")
		return nil
	}

	if err = api.StartRide(o); err != nil {
		return err
	}
	logStep(logger, api, o, "ride started")

	if err = api.FinishRide(o); err != nil {
		return err
	}
	logStep(logger, api, o, "ride finished")
	return nil
}

func logStep(logger *slog.Logger, api *taxiapi.API, o *order.TaxiOrder, step string) {
	attrs := []any{"step", step, "order", api.GetShortOrderInfo(o)}
	if info, ok := api.GetDriverFullInfo(o); ok {
		attrs = append(attrs, "driver", info)
	}
	logger.Info("Order changed", attrs...)
}
