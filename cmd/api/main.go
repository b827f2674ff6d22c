package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"easyrent-server/cmd/api/wire"
	"easyrent-server/cmd/config"
	"easyrent-server/internal/infra/async"
	"easyrent-server/internal/infra/httpserver"
	"easyrent-server/internal/infra/node"
	"easyrent-server/internal/infra/subscription"
	"easyrent-server/internal/infra/utils"
	"easyrent-server/internal/onboarding/consumers"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const _workerTick = 30 * time.Second

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	slog.SetDefault(slog.New(handler))
	slog.Info("🚀 easyrent is initializing")
	slog.Debug("config loaded", "data", config)

	if err := utils.ValidateTimezone(config.General.Timezone); err != nil {
		slog.Warn("falling back to UTC", slog.String("error", err.Error()))
	}
	time.Local = utils.MustLoadLocation(config.General.Timezone)

	shutdownOtel := startOTel()

	httpServer := httpserver.NewServer(
		httpserver.ServerConfig{
			Addr:           config.HTTP.Addr,
			AllowedOrigins: config.HTTP.AllowedOrigins,
		},
		handleWireInjector(wire.InitializePropertyController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeLeaseController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeMaintenanceRequestController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeInviteController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeWizardController()).(httpserver.Controller),
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	subscriber := startSubscriber(appCtx)

	var wg sync.WaitGroup
	sweepWorker := newCronWorker(config.Workers.JournalSweepSchedule, handleWireInjector(wire.InitializeJournalSweepJob()).(async.Job))
	expiryWorker := newCronWorker(config.Workers.InviteExpirySchedule, handleWireInjector(wire.InitializeInviteExpiryJob()).(async.Job))
	for _, worker := range []*async.CronWorker{sweepWorker, expiryWorker} {
		wg.Add(1)
		go worker.Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel", slog.Any("error", err))
	}

	subscriber.Stop()
	cancelFn()
	wg.Wait()
	slog.Info("good bye!!!")
	os.Exit(0)
}

// startSubscriber consumes the onboarding completion topic so the landlord
// gets an email once a tenant finishes the wizard.
func startSubscriber(ctx context.Context) *subscription.Subscriber {
	subscriber := handleWireInjector(wire.InitializeSubscriber()).(*subscription.Subscriber)
	notifier := handleWireInjector(wire.InitializeCompletionNotifier()).(*consumers.CompletionNotifier)

	if err := subscriber.RegisterHandler(notifier); err != nil {
		slog.Error("failed to register completion notifier", slog.Any("error", err))
		panic(err)
	}

	if err := subscriber.Start(ctx); err != nil {
		slog.Error("failed to start subscriber", slog.Any("error", err))
		panic(err)
	}

	return subscriber
}

func newCronWorker(schedule string, job async.Job) *async.CronWorker {
	worker, err := async.NewCronWorker(time.NewTicker(_workerTick), schedule, job)
	if err != nil {
		slog.Error("failed to create cron worker", slog.String("job", job.Name()), slog.Any("error", err))
		panic(err)
	}
	return worker
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_defautlEndpoint = "localhost:4317"
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}
)

func startOTel() ShutdownFunc {
	slog.Info("starting OTel providers")
	shutdown, err := otelStart(context.Background())
	if err != nil {
		panic(err)
	}

	return shutdown
}

func otelStart(ctx context.Context) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func startTraceProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := newTraceExporter(ctx)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("easyrent-server"),
		)),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func newTraceExporter(ctx context.Context) (trace.SpanExporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("EASYRENT_SERVER_OTELCOL_ENDPOINT"); ok {
		endpoint = value
	}

	return otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
}

func startMetricsProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := newMetricExporter(ctx)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMetricExporter(ctx context.Context) (metric.Exporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("EASYRENT_SERVER_OTELCOL_ENDPOINT"); ok {
		endpoint = value
	}

	return otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
}

func newMeterProvider(metricExporter metric.Exporter) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
