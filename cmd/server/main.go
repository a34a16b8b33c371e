package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "larryrun/internal/adapter/http"
	metricsinmem "larryrun/internal/adapter/metrics/inmemory"
	gormrepo "larryrun/internal/adapter/repo/gorm"
	"larryrun/internal/adapter/repo/memory"
	worldruntime "larryrun/internal/adapter/world/runtime"
	"larryrun/internal/app/observe"
	"larryrun/internal/app/pickup"
	"larryrun/internal/app/ports"
	"larryrun/internal/app/replay"
	"larryrun/internal/app/run"
	"larryrun/internal/app/shared/operation"
	"larryrun/internal/app/spawn"
	"larryrun/internal/app/status"
	"larryrun/internal/app/tick"
	"larryrun/internal/app/vitals"
	"larryrun/internal/domain/character"
	domainpickup "larryrun/internal/domain/pickup"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	hlog.SetLevel(logLevelEnv("LARRYRUN_LOG_LEVEL", hlog.LevelInfo))

	store := memory.NewStore()
	characters := memory.NewCharacterRepo(store)
	var (
		txManager ports.TxManager         = memory.NewTxManager(store)
		journal   ports.JournalRepository = memory.NewJournalRepo(store)
	)
	trackCfg := buildTrackConfigFromEnv()

	if dsn := strings.TrimSpace(os.Getenv("LARRYRUN_DB_DSN")); dsn != "" {
		db, err := gormrepo.OpenPostgres(dsn)
		if err != nil {
			hlog.Fatalf("open postgres: %v", err)
		}
		migrations := gormrepo.Migrations()
		if dir := strings.TrimSpace(os.Getenv("LARRYRUN_MIGRATIONS_DIR")); dir != "" {
			migrations = os.DirFS(dir)
		}
		if err := gormrepo.ApplyMigrations(context.Background(), db, migrations); err != nil {
			hlog.Fatalf("apply migrations: %v", err)
		}
		// Memory first: the store lock is held while the SQL transaction runs.
		txManager = ports.ChainTx(txManager, gormrepo.NewTxManager(db))
		journal = gormrepo.NewJournalRepo(db)
		trackCfg.Seeds = gormrepo.NewTrackSeedRepo(db)
		hlog.Infof("journal persisted to postgres")
	}

	kpiRecorder := metricsinmem.NewRecorder()
	catalog := domainpickup.DefaultCatalog()
	trackCfg.Track.Pickups = catalog.Kinds()
	tracks := worldruntime.NewProvider(trackCfg)
	maxDelta := floatEnv("LARRYRUN_MAX_DT", tick.DefaultMaxDelta)

	runner := operation.Runner{
		TxManager:  txManager,
		Characters: characters,
		Journal:    journal,
		Metrics:    kpiRecorder,
		Now:        time.Now,
	}
	h := httpadapter.Handler{
		SpawnUC: spawn.UseCase{
			TxManager:  txManager,
			Characters: characters,
			Journal:    journal,
			Metrics:    kpiRecorder,
			Defaults:   buildCharacterConfigFromEnv(),
			Now:        time.Now,
		},
		ListUC:   status.ListUseCase{Characters: characters},
		StatusUC: status.UseCase{TxManager: txManager, Characters: characters},
		TickUC:   tick.UseCase{Runner: runner, MaxDelta: maxDelta},
		RunUC: run.UseCase{
			Runner:        runner,
			Tracks:        tracks,
			Catalog:       catalog,
			MaxDelta:      maxDelta,
			BarrierDamage: intEnv("LARRYRUN_BARRIER_DAMAGE", run.DefaultBarrierDamage),
		},
		PickupUC:  pickup.UseCase{Runner: runner, Catalog: catalog},
		VitalsUC:  vitals.UseCase{Runner: runner},
		ObserveUC: observe.UseCase{TxManager: txManager, Characters: characters, Tracks: tracks},
		ReplayUC:  replay.UseCase{Journal: journal},
		KPI:       kpiRecorder,
	}

	addr := envOr("LARRYRUN_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	hlog.Infof("larryrun server listening on %s", addr)
	s.Spin()
}

func buildCharacterConfigFromEnv() character.Config {
	cfg := character.DefaultConfig()
	cfg.StartSpeed = floatEnv("LARRYRUN_START_SPEED", cfg.StartSpeed)
	cfg.StartHealth = intEnv("LARRYRUN_START_HEALTH", cfg.StartHealth)
	cfg.Smoothing = floatEnv("LARRYRUN_SMOOTHING", cfg.Smoothing)
	if err := cfg.Validate(); err != nil {
		hlog.Warnf("ignoring character config from env: %v", err)
		return character.DefaultConfig()
	}
	return cfg
}

func buildTrackConfigFromEnv() worldruntime.Config {
	cfg := worldruntime.DefaultConfig()
	cfg.Track.Seed = uint64(intEnv("LARRYRUN_TRACK_SEED", int(cfg.Track.Seed)))
	cfg.Track.ObstacleChance = floatEnv("LARRYRUN_OBSTACLE_CHANCE", cfg.Track.ObstacleChance)
	cfg.Track.SafeChunks = intEnv("LARRYRUN_SAFE_CHUNKS", cfg.Track.SafeChunks)
	return cfg
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func logLevelEnv(key string, fallback hlog.Level) hlog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "info":
		return hlog.LevelInfo
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return fallback
	}
}
