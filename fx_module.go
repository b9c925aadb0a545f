package partialspan

import (
	"context"

	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides and configures the partial span
// Processor. It mirrors the wiring pattern used by the other packages in
// this repository: provide the concrete type, bind it to the interface the
// rest of the application depends on, and register lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    partialspan.FXModule,
//	    fx.Provide(func() partialspan.Config { return partialspan.Config{...} }),
//	)
var FXModule = fx.Module("partialspan",
	fx.Provide(NewProcessorWithDI),
	fx.Invoke(RegisterProcessorLifecycle),
)

// ProcessorParams groups the dependencies needed to construct a Processor
// through fx.
type ProcessorParams struct {
	fx.In

	Config Config
}

// NewProcessorWithDI constructs a Processor from an fx-provided Config.
func NewProcessorWithDI(params ProcessorParams) (*Processor, error) {
	return NewProcessor(params.Config)
}

// ProcessorLifecycleParams groups the dependencies needed to register the
// Processor's shutdown with the fx lifecycle system.
type ProcessorLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Processor *Processor
}

// RegisterProcessorLifecycle ties the Processor's Shutdown to the fx
// application's OnStop hook, so it stops its scheduler loop and shuts down
// its LogExporter when the host application shuts down.
func RegisterProcessorLifecycle(params ProcessorLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Processor.Shutdown(ctx)
		},
	})
}
