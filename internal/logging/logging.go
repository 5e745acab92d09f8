// Package logging builds the engine's zap logger.
package logging

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// New returns a configured logger. debug switches to the human-readable
// development encoder with debug-level output.
func New(debug bool) (*zap.Logger, error) {
	var zapCfg zap.Config
	if debug {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, eris.Wrap(err, "logging: build logger")
	}
	return logger, nil
}
