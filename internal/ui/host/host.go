// Package host bundles the capabilities interactive components need from the
// terminal runtime: frame scheduling, pointer capture, global cursor state,
// element geometry and a portal root.
//
// A Host is created once by the application and handed to every component.
// Nothing in this package is global; two Hosts never share state.
package host

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/deskboard/internal/icons"
	"github.com/llehouerou/deskboard/internal/ui/geom"
	"github.com/llehouerou/deskboard/internal/ui/portal"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// Host is the capability set shared by components of one program.
type Host struct {
	Frames    *Frames
	Capture   *Capture
	Document  *Document
	Root      *portal.Container
	Zones     *Zones // nil disables zone marking (tests)
	Theme     *styles.Theme
	Icons     icons.Set
	Precision Modifier

	log      *log.Logger
	viewport geom.Size
	nextID   int
}

// Option configures a Host.
type Option func(*Host)

// WithFrameInterval sets the delay between animation frames.
func WithFrameInterval(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.Frames.interval = d
		}
	}
}

// WithZones enables zone-backed element geometry.
func WithZones(z *Zones) Option {
	return func(h *Host) { h.Zones = z }
}

// WithLogger sets the logger components write debug output to.
func WithLogger(l *log.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.log = l
		}
	}
}

// WithPrecisionModifier selects the key that slows value drags down.
func WithPrecisionModifier(m Modifier) Option {
	return func(h *Host) { h.Precision = m }
}

// WithTheme sets the initial theme.
func WithTheme(t *styles.Theme) Option {
	return func(h *Host) {
		if t != nil {
			h.Theme = t
		}
	}
}

// WithIcons sets the icon glyph set.
func WithIcons(set icons.Set) Option {
	return func(h *Host) { h.Icons = set }
}

// WithViewport sets the initial viewport size.
func WithViewport(w, ht int) Option {
	return func(h *Host) { h.viewport = geom.Size{W: w, H: ht} }
}

// New creates a Host with its own scheduler, capture slot, document and portal root.
func New(opts ...Option) *Host {
	h := &Host{
		Frames:    NewFrames(DefaultFrameInterval),
		Capture:   &Capture{},
		Document:  &Document{},
		Root:      portal.NewContainer(),
		Theme:     styles.Dark(),
		Icons:     icons.For(string(icons.StyleUnicode)),
		Precision: ModAlt,
		log:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Log returns the host logger. It is never nil.
func (h *Host) Log() *log.Logger {
	return h.log
}

// SetViewport records the terminal dimensions.
func (h *Host) SetViewport(w, ht int) {
	h.viewport = geom.Size{W: w, H: ht}
}

// Viewport returns the terminal dimensions.
func (h *Host) Viewport() geom.Size {
	return h.viewport
}

// NewID returns a host-unique identifier with the given prefix.
// Component instances use it for zone marks and capture ownership.
func (h *Host) NewID(prefix string) string {
	h.nextID++
	return fmt.Sprintf("%s-%d", prefix, h.nextID)
}

// Mark wraps rendered content in a zone so its geometry can be read back
// after the frame is scanned. Without zones the content is returned as is.
func (h *Host) Mark(id, s string) string {
	if h.Zones == nil {
		return s
	}
	return h.Zones.Mark(id, s)
}

// Element returns the zone-backed element for id. Without zones the element
// never has bounds.
func (h *Host) Element(id string) Element {
	if h.Zones == nil {
		return Missing{}
	}
	return h.Zones.Element(id)
}
