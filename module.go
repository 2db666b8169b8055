package optsetter

import (
	"log/slog"

	"go.uber.org/fx"
)

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// Module returns an Fx module that provides a *Setter built from opts.
// A *slog.Logger in the container is used unless opts set one.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...Option) fx.Option {
	return fx.Module("optsetter",
		fx.Provide(func(params moduleParams) *Setter {
			all := make([]Option, 0, len(opts)+1)

			if params.Logger != nil {
				all = append(all, WithLogger(params.Logger))
			}

			return New(append(all, opts...)...)
		}),
	)
}
