package cmd

import (
	"context"
	"net"
	"net/http"

	"github.com/jsphweid/chordtone/chord"
	"github.com/jsphweid/chordtone/config"
	"github.com/jsphweid/chordtone/server"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	Long:  `Serves /chord, /chord-types, /notes and /health on CHORDTONE_PORT.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(serveOptions(cfg, log, engine)).Run()
	},
}

func serveOptions(cfg config.Config, log *zap.SugaredLogger, engine *chord.Engine) fx.Option {
	return fx.Options(
		fx.Supply(cfg, log, engine),
		fx.Provide(
			AsRoute(server.NewHealthHandler),
			AsRoute(server.NewNotesHandler),
			AsRoute(server.NewChordTypesHandler),
			AsRoute(server.NewChordHandler),
			fx.Annotate(server.NewRouter, fx.ParamTags(``, ``, `group:"routes"`)),
			NewHTTPServer,
		),
		fx.Invoke(func(*http.Server) {}),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Desugar()}
		}),
	)
}

func NewHTTPServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg config.Config, handler http.Handler) *http.Server {
	srv := &http.Server{Addr: cfg.Addr(), Handler: handler}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infow("starting HTTP server", "addr", ln.Addr().String())
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}
