package main

import (
	"context"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "hivesim/internal/adapter/http"
	metricsinmem "hivesim/internal/adapter/metrics/inmemory"
	"hivesim/internal/adapter/repo/memory"
	"hivesim/internal/app/replay"
	"hivesim/internal/app/sim"
	"hivesim/internal/app/status"
	"hivesim/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type settings struct {
	Colony   colony.Config
	TickHz   int
	Seed     uint64
	Addr     string
	LogSize  int
	LogLevel hlog.Level
}

func main() {
	st := loadSettings()
	hlog.SetLevel(st.LogLevel)
	if err := st.Colony.Validate(); err != nil {
		hlog.Fatalf("colony config: %v", err)
	}

	kpiRecorder := metricsinmem.NewRecorder()
	eventRepo := memory.NewEventRepo(memory.NewStore(st.LogSize))
	rng := rand.New(rand.NewPCG(st.Seed, st.Seed^0x5851f42d4c957f2d))

	simulation, err := sim.New(st.Colony, rng,
		sim.WithMetrics(kpiRecorder),
		sim.WithEventRepo(eventRepo),
	)
	if err != nil {
		hlog.Fatalf("build simulation: %v", err)
	}
	runner := sim.NewRunner(simulation, st.TickHz)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = runner.Run(ctx)
	}()

	h := httpadapter.Handler{
		StatusUC: status.UseCase{Source: runner},
		ReplayUC: replay.UseCase{Events: eventRepo},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(st.Addr))
	h.RegisterRoutes(s)

	hlog.Infof("hivesim server listening on %s (run %s, seed %d, %d Hz)", st.Addr, simulation.RunID(), st.Seed, st.TickHz)
	s.Spin()
}

func loadSettings() settings {
	cfg := colony.DefaultConfig()
	cfg.Scouts = intEnv("HIVE_SCOUTS", cfg.Scouts)
	cfg.Collectors = intEnv("HIVE_COLLECTORS", cfg.Collectors)
	cfg.Guardians = intEnv("HIVE_GUARDIANS", cfg.Guardians)
	cfg.Resources = intEnv("HIVE_RESOURCES", cfg.Resources)
	cfg.SpawnChance = float64(intEnv("HIVE_SPAWN_PERCENT", int(cfg.SpawnChance*100))) / 100

	return settings{
		Colony:   cfg,
		TickHz:   intEnv("HIVE_TICK_HZ", sim.DefaultTickHz),
		Seed:     uint64(intEnv("HIVE_SEED", int(time.Now().UnixNano()&0x7fffffff))),
		Addr:     stringEnv("HIVE_ADDR", ":8080"),
		LogSize:  intEnv("HIVE_EVENT_LOG_SIZE", memory.DefaultCapacity),
		LogLevel: logLevel(os.Getenv("HIVE_LOG_LEVEL")),
	}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		hlog.Warnf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func logLevel(raw string) hlog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "notice":
		return hlog.LevelNotice
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
