package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// Options control how the base logger is built. Empty values fall back to the
// LOG_LEVEL and JSON_LOG environment variables.
type Options struct {
	Level string
	JSON  bool
}

var (
	once   sync.Once
	logger *zap.SugaredLogger
)

// Init builds the base logger from opts. Only the first call to Init or Get has any effect.
func Init(opts Options) *zap.SugaredLogger {
	once.Do(func() {
		logger = build(opts)
	})

	return logger
}

// Get initializes a zap.SugaredLogger instance from the environment if it has not been
// initialized already and returns the same instance for subsequent calls.
func Get() *zap.SugaredLogger {
	return Init(Options{})
}

func build(opts Options) *zap.SugaredLogger {
	if opts.Level == "" {
		opts.Level = os.Getenv("LOG_LEVEL")
	}
	if !opts.JSON {
		opts.JSON = os.Getenv("JSON_LOG") != ""
	}

	level := zap.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			log.Println(fmt.Errorf("invalid level, defaulting to INFO: %w", err))
		} else {
			level = parsed
		}
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		productionCfg := zap.NewProductionEncoderConfig()
		productionCfg.TimeKey = "timestamp"
		productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(productionCfg)
	} else {
		developmentCfg := zap.NewDevelopmentEncoderConfig()
		developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(developmentCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
		for _, v := range buildInfo.Settings {
			if v.Key == "vcs.revision" && len(v.Value) >= 7 {
				fields = append(fields, zap.String("git_revision", v.Value[0:7]))
				break
			}
		}

		core = core.With(fields)
	}

	return zap.New(core).Sugar()
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the base logger is returned.
func FromCtx(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return l
	}

	return Get()
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && lp == l {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
