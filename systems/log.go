package systems

import (
	"github.com/rs/zerolog"
)

// logger is shared by every system. main replaces it with the root logger.
var logger = zerolog.Nop()

// SetLogger sets the logger used by the systems package.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "systems").Logger()
}
