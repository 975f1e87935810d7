package app

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/deskboard/internal/config"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

// Context is the state every page shares. It is created once by New and
// passed explicitly to each page constructor.
type Context struct {
	Host    *host.Host
	Overlay config.Overlay
	Now     func() time.Time
}

// Log returns the host logger.
func (c *Context) Log() *log.Logger {
	return c.Host.Log()
}

// Theme returns the active theme.
func (c *Context) Theme() *styles.Theme {
	return c.Host.Theme
}
