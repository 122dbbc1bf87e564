package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonwraymond/funcops/callable"
	"github.com/jonwraymond/funcops/exiting"
	"github.com/jonwraymond/funcops/observe"
	"github.com/jonwraymond/funcops/timing"
)

// StatusNotFound is the exit status used when the program cannot be started.
const StatusNotFound = 127

// execSettings is the resolved configuration of one exec invocation.
type execSettings struct {
	Time            bool
	Flush           bool
	TraceExporter   string
	MetricsExporter string
	SamplePct       float64
	LogLevel        string
	LogBackend      string
}

func loadExecSettings(v *viper.Viper) execSettings {
	return execSettings{
		Time:            v.GetBool("time"),
		Flush:           v.GetBool("flush"),
		TraceExporter:   v.GetString("trace-exporter"),
		MetricsExporter: v.GetString("metrics-exporter"),
		SamplePct:       v.GetFloat64("sample-pct"),
		LogLevel:        v.GetString("log-level"),
		LogBackend:      v.GetString("log-backend"),
	}
}

func exporterEnabled(name string) bool {
	return name != "" && name != "none"
}

// observed reports whether any telemetry is requested.
func (s execSettings) observed() bool {
	return exporterEnabled(s.TraceExporter) || exporterEnabled(s.MetricsExporter) || s.LogLevel != ""
}

// observerConfig maps the settings onto an observe.Config. Exporter output
// goes to out so the program's stdout stays untouched.
func (s execSettings) observerConfig(out io.Writer) observe.Config {
	return observe.Config{
		ServiceName: "funcops",
		Version:     Version,
		Tracing: observe.TracingConfig{
			Enabled:   exporterEnabled(s.TraceExporter),
			Exporter:  s.TraceExporter,
			SamplePct: s.SamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  exporterEnabled(s.MetricsExporter),
			Exporter: s.MetricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: s.LogLevel != "",
			Level:   s.LogLevel,
			Backend: s.LogBackend,
		},
		Output: out,
	}
}

func newExecCmd(v *viper.Viper, exit func(int)) *cobra.Command {
	c := &cobra.Command{
		Use:   "exec [flags] -- <command> [args...]",
		Short: "Run a program and exit with its status",
		Long: `Exec runs a program with its standard streams attached and terminates
with the program's exit status. Programs that cannot be started exit 127.

Example:
  funcops exec --time -- make test
  funcops exec --trace-exporter stdout --log-level info -- ./backup.sh
  FUNCOPS_TIME=true funcops exec -- sleep 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, loadExecSettings(v), args, exit)
		},
	}

	c.Flags().Bool("time", false, "report the program's wall time on stderr")
	c.Flags().Bool("flush", false, "flush stderr after the timing report")
	c.Flags().String("trace-exporter", "", "tracing exporter (otlp|stdout|none)")
	c.Flags().String("metrics-exporter", "", "metrics exporter (otlp|prometheus|stdout|none)")
	c.Flags().Float64("sample-pct", 1.0, "trace sampling percentage (0.0-1.0)")
	c.Flags().String("log-level", "", "log level (debug|info|warn|error); empty disables logging")
	c.Flags().String("log-backend", "json", "log backend (json|zap)")

	// Flag names are static, binding cannot fail
	_ = v.BindPFlags(c.Flags())
	return c
}

func runExec(cmd *cobra.Command, s execSettings, argv []string, exit func(int)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := cmd.ErrOrStderr()

	obs, err := observe.NewObserver(ctx, s.observerConfig(stderr))
	if err != nil {
		return err
	}

	decorate, err := s.decorate(obs, stderr, argv[0])
	if err != nil {
		return err
	}
	run := decorate(command(cmd.InOrStdin(), cmd.OutOrStdout(), stderr))

	exiting.Main(ctx, func(ctx context.Context) (any, error) {
		code, err := run(ctx, argv)
		if serr := obs.Shutdown(context.WithoutCancel(ctx)); serr != nil {
			obs.Logger().Warn(ctx, "telemetry shutdown failed", observe.Field{Key: "error", Value: serr.Error()})
		}
		return code, err
	},
		exiting.WithExit(exit),
		exiting.WithStderr(stderr),
		exiting.WithLogger(obs.Logger()),
	)
	return nil
}

// decorate builds the decorator chain for one program: telemetry outermost,
// then timing.
func (s execSettings) decorate(obs observe.Observer, stderr io.Writer, program string) (callable.Decorator[[]string, int], error) {
	var decorators []callable.Decorator[[]string, int]

	if s.observed() {
		mw, err := observe.MiddlewareFromObserver(obs)
		if err != nil {
			return nil, err
		}
		meta := observe.FuncMeta{Package: "exec", Name: filepath.Base(program), Version: Version}
		decorators = append(decorators, observe.Decorate[[]string, int](mw, meta))
	}

	if s.Time {
		decorators = append(decorators, timing.Timeit[[]string, int](
			timing.WithSink(stderr),
			timing.WithFlush(s.Flush),
			timing.WithName(program),
			timing.WithReporter(observe.TimingReporter(obs.Logger())),
		))
	}

	return callable.Chain(decorators...), nil
}

// command returns a Func running argv with the given streams. A non-zero
// exit is reported as an error carrying the program's status.
func command(stdin io.Reader, stdout, stderr io.Writer) callable.Func[[]string, int] {
	return func(ctx context.Context, argv []string) (int, error) {
		c := exec.CommandContext(ctx, argv[0], argv[1:]...)
		c.Stdin, c.Stdout, c.Stderr = stdin, stdout, stderr

		err := c.Run()
		if err == nil {
			return 0, nil
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				// Terminated by signal
				code = 1
			}
			return code, exiting.WithCode(code, fmt.Errorf("%s: %w", argv[0], err))
		}
		return StatusNotFound, exiting.WithCode(StatusNotFound, err)
	}
}
