package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/cursor"
	apperrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/version"
)

// Component logger names; logging.components can set a level for each.
const (
	componentCLI           = "cli"
	componentServer        = "server"
	componentHandlers      = "handlers"
	componentObservability = "observability"
	componentConfig        = "config"
)

var components = []string{componentCLI, componentServer, componentHandlers, componentObservability, componentConfig}

// app holds the state shared by every subcommand once the root's
// PersistentPreRunE has loaded the config.
type app struct {
	configFile string
	logLevel   string

	cfg      *AppConfig
	log      *logger.Logger
	metrics  *observability.CursorMetrics
	shutdown []func(context.Context) error
}

// run builds the command tree, executes args and releases telemetry.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadAppConfig(a.configFile, a.logLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg

	w := cmd.ErrOrStderr()
	if cfg.Logging.Output == "stdout" {
		w = cmd.OutOrStdout()
	}
	logger.SetGlobalLogger(logger.NewWithWriter(&cfg.Logging, cfg.Name, w))
	if err := logger.RegisterComponents(cfg.Logging.Components, components...); err != nil {
		return apperrors.InvalidConfig("logging", err)
	}
	a.log = logger.Get(componentCLI)

	if err := a.initTelemetry(cmd.Context()); err != nil {
		return err
	}

	metrics, err := observability.NewCursorMetrics(observability.Meter(serviceName))
	if err != nil {
		return apperrors.Internal(err)
	}
	a.metrics = metrics

	a.log.Debug("config loaded", logger.Fields(
		"environment", cfg.Environment,
		"telemetry", cfg.Observability.Enabled,
	))
	return nil
}

func (a *app) initTelemetry(ctx context.Context) error {
	o := a.cfg.Observability
	if !o.Enabled {
		return nil
	}

	serviceVersion := a.cfg.Version
	if serviceVersion == "" {
		serviceVersion = version.Get().Short()
	}

	tc := observability.DefaultTracerConfig(a.cfg.Name)
	tc.ServiceVersion = serviceVersion
	tc.Environment = a.cfg.Environment
	tc.Endpoint = o.Endpoint
	tc.Insecure = !o.TLS
	tc.SampleRate = o.SampleRate
	tp, err := observability.InitTracer(ctx, tc)
	if err != nil {
		return apperrors.InvalidConfig("observability", err)
	}
	a.shutdown = append(a.shutdown, tp.Shutdown)

	mc := observability.DefaultMeterConfig(a.cfg.Name)
	mc.ServiceVersion = serviceVersion
	mc.Environment = a.cfg.Environment
	mc.Endpoint = o.Endpoint
	mc.Insecure = !o.TLS
	mc.Interval = o.MetricInterval
	mp, err := observability.InitMeter(ctx, mc)
	if err != nil {
		return apperrors.InvalidConfig("observability", err)
	}
	a.shutdown = append(a.shutdown, mp.Shutdown)
	return nil
}

// close flushes telemetry providers in reverse order of creation.
func (a *app) close(ctx context.Context) error {
	if len(a.shutdown) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	var errs []error
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		errs = append(errs, a.shutdown[i](ctx))
	}
	a.shutdown = nil
	return errors.Join(errs...)
}

// runPipeline drains c inside an observed run.
func runPipeline[T any](ctx context.Context, a *app, name string, c cursor.Cursor[T]) ([]T, error) {
	run := observability.NewRun(name, a.metrics)
	ctx = run.Start(ctx)
	items, err := observability.CollectTraced(ctx, observability.Observe(c, name, a.metrics), name)
	run.End(ctx, len(items), err)
	return items, err
}
