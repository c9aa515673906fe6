package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridword/gridgraph"
	"github.com/katalvlaran/gridword/wordsearch"
)

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	))
}

// searchHooks reports walker progress at debug level.
func searchHooks(log *zap.Logger, target string) []wordsearch.Option {
	if !log.Core().Enabled(zap.DebugLevel) {
		return nil
	}
	return []wordsearch.Option{
		wordsearch.WithOnAttempt(func(seed gridgraph.Coord, pos int) {
			log.Debug("attempt", zap.String("target", target), zap.Stringer("seed", seed), zap.Int("pos", pos))
		}),
		wordsearch.WithOnStep(func(at gridgraph.Coord, pos int) {
			log.Debug("step", zap.String("target", target), zap.Stringer("at", at), zap.Int("pos", pos))
		}),
	}
}
