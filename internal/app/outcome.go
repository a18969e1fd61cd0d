package app

import (
	"github.com/bft-labs/wallpick/internal/ports"
	"github.com/bft-labs/wallpick/pkg/log"
)

// outcome sends a notable event to the structured logger and the daily journal.
// A journal failure is only logged.
type outcome struct {
	logger  log.Logger
	journal ports.Journal
}

func (o outcome) info(msg string, fields ...log.Field) {
	o.logger.Info(msg, fields...)
	o.write(msg)
}

func (o outcome) warn(msg string, fields ...log.Field) {
	o.logger.Warn(msg, fields...)
	o.write(msg)
}

func (o outcome) error(msg string, fields ...log.Field) {
	o.logger.Error(msg, fields...)
	o.write(msg)
}

func (o outcome) write(msg string) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Write(msg); err != nil {
		o.logger.Warn("daily log write failed", log.Err(err))
	}
}
