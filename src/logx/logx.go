package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const Logfile string = "canvaschess.log"

// Logger is what the board, the rules backends and the frontends log through.
// With returns a child that adds key/value fields to every entry, for example
// the square or the move being handled.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	With(keysAndValues ...interface{}) Logger
	Named(name string) Logger
}

type Logx struct {
	*zap.SugaredLogger
	level   zap.AtomicLevel
	dev     bool
	console bool
}

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{level: zap.NewAtomicLevelAt(lvl), dev: dev, console: console}
}

// NewNop discards everything
func NewNop() *Logx {
	return &Logx{level: zap.NewAtomicLevelAt(zapcore.FatalLevel), SugaredLogger: zap.NewNop().Sugar()}
}

// FromZap wraps an existing logger, tests pass an observer core here
func FromZap(l *zap.Logger) *Logx {
	return &Logx{level: zap.NewAtomicLevelAt(l.Level()), SugaredLogger: l.Sugar()}
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func GetLoggerLevelByString(lvl string) zapcore.Level {
	if level, ok := loggerLevelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

// OpenLogfile opens the append-only log file next to the binary
func OpenLogfile() (*os.File, error) {
	return os.OpenFile(Logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func encoderConfig(dev bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	if dev {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.LevelKey = "LEVEL"
	cfg.CallerKey = "CALLER"
	cfg.TimeKey = "TIME"
	cfg.NameKey = "NAME"
	cfg.MessageKey = "MESSAGE"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// InitLogger builds the zap core. Console mode writes to stdout with the
// console encoder, otherwise JSON goes to w.
func (l *Logx) InitLogger(w io.Writer) {
	sink := zapcore.AddSync(w)
	encoder := zapcore.NewJSONEncoder(encoderConfig(l.dev))
	if l.console {
		sink = zapcore.AddSync(os.Stdout)
		encoder = zapcore.NewConsoleEncoder(encoderConfig(l.dev))
	}
	core := zapcore.NewCore(encoder, sink, l.level)
	l.SugaredLogger = zap.New(core, zap.AddCaller()).Named("canvaschess").Sugar()
}

// SetLevel changes the level of this logger and of every child
func (l *Logx) SetLevel(lvl zapcore.Level) {
	l.level.SetLevel(lvl)
}

func (l *Logx) Level() zapcore.Level {
	return l.level.Level()
}

func (l *Logx) With(keysAndValues ...interface{}) Logger {
	return &Logx{SugaredLogger: l.SugaredLogger.With(keysAndValues...), level: l.level, dev: l.dev, console: l.console}
}

func (l *Logx) Named(name string) Logger {
	return &Logx{SugaredLogger: l.SugaredLogger.Named(name), level: l.level, dev: l.dev, console: l.console}
}

func (l *Logx) Sync() error {
	if l.SugaredLogger == nil {
		return nil
	}
	return l.SugaredLogger.Sync()
}
