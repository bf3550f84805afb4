package root

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xafn/nextstep/internal/gamification"
	"github.com/xafn/nextstep/internal/resume"
	"github.com/xafn/nextstep/internal/storage"
	"github.com/xafn/nextstep/internal/ui"
)

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openStore opens the on-disk store, degrading to an in-memory store when
// it cannot be opened: the engine keeps working, progress is just not
// persisted for this run.
func openStore(ctx context.Context) (storage.Store, func()) {
	path, err := storage.ResolveDBPath()
	if err == nil {
		var st *storage.SQLite
		st, err = storage.OpenSQLite(ctx, path)
		if err == nil {
			return st, func() { _ = st.Close() }
		}
	}

	fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" storage unavailable, progress will not be saved: "+err.Error()))
	mem := storage.NewMemory()
	return mem, func() { _ = mem.Close() }
}

// loadSnapshot reads the persisted resume for the achievement rules,
// treating an unreadable resume as empty.
func loadSnapshot(ctx context.Context, st storage.Store, user string) resume.Snapshot {
	data, err := resume.Load(ctx, st, user)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" resume unreadable, checking without it: "+err.Error()))
	}
	return data.Snapshot()
}

func openEngine(ctx context.Context) (*gamification.Engine, storage.Store, func()) {
	st, cleanup := openStore(ctx)
	log := newLogger()
	eng := gamification.New(ctx, st,
		gamification.WithUser(userFlag),
		gamification.WithLogger(log),
	)
	closeAll := func() {
		_ = log.Sync()
		cleanup()
	}
	return eng, st, closeAll
}
