package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/talkincode/restodesk/config"
	"github.com/talkincode/restodesk/internal/persist"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/pkg/common"
	"github.com/talkincode/restodesk/pkg/metrics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	store     *store.Store
	slot      persist.Slot
	bridge    *persist.Bridge
	metrics   *metrics.Metrics
	now       func() time.Time

	// opMu makes read-validate-dispatch sequences atomic
	opMu sync.Mutex
}

// Ensure Application implements all interfaces
var (
	_ StoreProvider      = (*Application)(nil)
	_ ConfigProvider     = (*Application)(nil)
	_ IDProvider         = (*Application)(nil)
	_ MetricsProvider    = (*Application)(nil)
	_ OperationsProvider = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig, now: time.Now}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Store {
	return a.store
}

func (a *Application) Metrics() *metrics.Metrics {
	return a.metrics
}

func (a *Application) Now() time.Time {
	return a.now()
}

func (a *Application) NewID() string {
	return common.UUID()
}

// OverrideClock replaces the application clock (used in tests).
func (a *Application) OverrideClock(now func() time.Time) {
	a.now = now
}

// OverrideSlot replaces the durable slot opened by Init (used in tests).
func (a *Application) OverrideSlot(slot persist.Slot) {
	a.slot = slot
}

func (a *Application) Init(cfg *config.AppConfig) {
	a.appConfig = cfg
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	if err := common.SetNode(cfg.System.NodeID); err != nil {
		zap.L().Error("invalid snowflake node, keeping default",
			zap.String("namespace", "app"),
			zap.Int64("node_id", cfg.System.NodeID),
			zap.Error(err))
	}

	a.metrics = metrics.New()

	if a.slot == nil {
		a.slot = openSlot(cfg)
	}
	a.store = store.New(store.State{}, store.WithClock(a.now))
	if err := a.store.OnCommit(a.observeCommit); err != nil {
		zap.L().Error("failed to register metrics hook", zap.String("namespace", "app"), zap.Error(err))
	}

	a.bridge = persist.NewBridge(a.slot)
	a.bridge.OnFailure(func(op string, _ error) {
		a.metrics.ObservePersistFailure(op)
	})
	src := a.bridge.Hydrate(context.Background(), a.store, a.seed)
	if err := a.bridge.Attach(a.store); err != nil {
		zap.L().Error("failed to attach persistence", zap.String("namespace", "app"), zap.Error(err))
	}
	zap.L().Info("restaurant state loaded",
		zap.String("namespace", "app"),
		zap.String("source", string(src)),
		zap.String("storage", cfg.Storage.Type))

	a.checkDefaultUser()
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stderr"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		filename := cfg.GetLogFilename()
		_ = os.MkdirAll(filepath.Dir(filename), 0o755)
		lumberJackLogger := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// openSlot opens the configured durable slot. A bolt file that cannot be
// opened leaves the session in memory only.
func openSlot(cfg *config.AppConfig) persist.Slot {
	if strings.EqualFold(cfg.Storage.Type, config.StorageMemory) {
		return persist.NewMemorySlot()
	}
	path := cfg.GetStoragePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		zap.L().Error("failed to create storage directory", zap.String("namespace", "app"), zap.Error(err))
	}
	slot, err := persist.OpenBoltSlot(path, cfg.Storage.Bucket, cfg.Storage.Key)
	if err != nil {
		zap.L().Error("durable slot unavailable, using memory",
			zap.String("namespace", "app"),
			zap.String("path", path),
			zap.Error(err))
		return persist.NewMemorySlot()
	}
	return slot
}

func (a *Application) seed() persist.Snapshot {
	return SeedData(a.now())
}

func (a *Application) observeCommit(c store.Commit) {
	a.metrics.ObserveAction(string(c.Action.Kind()))
	a.metrics.SetWalletBalance(c.Next.WalletBalance)
	counts := make(map[string]int)
	for status, n := range views.OrderCountsByStatus(c.Next.Orders) {
		counts[string(status)] = n
	}
	a.metrics.SetOrderCounts(counts)
}

func (a *Application) PersistenceDegraded() bool {
	return a.bridge.Degraded()
}

// ResetData clears the durable slot and reloads the seed dataset.
func (a *Application) ResetData(ctx context.Context) error {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	if err := a.bridge.Reset(ctx); err != nil {
		return err
	}
	actions := append(a.seed().Actions(), store.ClearNotifications{})
	a.store.Dispatch(actions...)
	zap.L().Warn("restaurant data reset to seed", zap.String("namespace", "app"))
	return nil
}

// Release releases application resources
func (a *Application) Release() {
	if a.slot != nil {
		if err := a.slot.Close(); err != nil {
			zap.L().Error("failed to close durable slot", zap.String("namespace", "app"), zap.Error(err))
		}
	}
	_ = zap.L().Sync()
}
