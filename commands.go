package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type cli struct {
	configPath string
	output     string
	cfg        *config.SchedulerConfig
	logCloser  io.Closer
}

func newRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "cpu-scheduler",
		Short:         "Compare FIFO, SJF and SRT scheduling on a synthetic workload",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if c.logCloser != nil {
				return c.logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.simulate(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default ./config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "", "write logs to a rotated file instead of stderr")
	pf.IntP("count", "n", 10, "number of processes")
	pf.IntP("max-arrival", "k", 20, "arrival times are drawn from [0, k]")
	pf.Float64P("mean-burst", "d", 10, "mean burst time")
	pf.Float64P("burst-stddev", "v", 5, "burst time standard deviation")
	pf.Uint64("seed", 0, "random seed, 0 picks one")
	pf.StringSlice("algorithms", []string{"FIFO", "SJF", "SRT"}, "algorithms to run")
	pf.StringVarP(&c.output, "output", "o", "text", "output format: text or json")
	bind(pf.Lookup("log-level"), "log.level")
	bind(pf.Lookup("log-file"), "log.file")
	bind(pf.Lookup("count"), "workload.count")
	bind(pf.Lookup("max-arrival"), "workload.max_arrival")
	bind(pf.Lookup("mean-burst"), "workload.mean_burst")
	bind(pf.Lookup("burst-stddev"), "workload.burst_stddev")
	bind(pf.Lookup("seed"), "workload.seed")
	bind(pf.Lookup("algorithms"), "scheduler.algorithms")

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Generate a workload and print gantt charts, tables and the comparison",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.simulate(cmd.OutOrStdout())
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
	serve.Flags().Int("port", 9095, "HTTP port")
	serve.Flags().String("metrics-listen", "", "address for the Prometheus /metrics endpoint, e.g. :9090")
	bind(serve.Flags().Lookup("port"), "port")
	bind(serve.Flags().Lookup("metrics-listen"), "metrics.listen")

	root.AddCommand(simulate, serve)
	return root
}

func bind(flag *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func (c *cli) setup(stderr io.Writer) error {
	if c.configPath != "" {
		viper.SetConfigFile(c.configPath)
	}
	cfg, err := config.GetSchedulerConfig()
	if err != nil {
		return err
	}
	log, closer, err := logger.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	c.cfg, c.logCloser = cfg, closer
	return nil
}

func (c *cli) simulate(stdout io.Writer) error {
	algorithms := make([]schedulers.Algorithm, 0, len(c.cfg.Algorithms))
	for _, name := range c.cfg.Algorithms {
		a, err := schedulers.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algorithms = append(algorithms, a)
	}

	g, err := workload.New(c.cfg.Workload)
	if err != nil {
		return err
	}
	w := g.Generate()
	slog.Debug("workload generated", slog.Int("processes", len(w)))

	results, err := schedulers.RunAll(w, algorithms...)
	if err != nil {
		return err
	}

	switch c.output {
	case "json":
		return report.WriteJSON(stdout, results)
	case "text":
		return report.WriteAll(stdout, w, results)
	}
	return fmt.Errorf("unknown output format %q", c.output)
}

func (c *cli) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}
	if c.cfg.MetricsListen != "" {
		go func() {
			slog.Info("serving metrics", slog.String("addr", c.cfg.MetricsListen))
			if err := metrics.Serve(c.cfg.MetricsListen); err != nil {
				slog.Error("metrics server stopped", slog.Any("error", err))
			}
		}()
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(c.cfg))
	go func() {
		<-ctx.Done()
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	addr := fmt.Sprintf(":%d", c.cfg.Port)
	slog.Info("serving scheduler api", slog.String("addr", addr))
	return app.Listen(addr)
}
