// Keeps a built scene in sync with the sign state.
// The controller only mutates the tagged entities of the scene:
// nothing is allocated, parsed or rebuilt on update.
package control

import (
	"errors"
	"log"

	"github.com/benoitkugler/roadsign/scene"
)

// ErrMissingTaggedEntity is logged when an update can't find its
// target, which only happens before the scene is built.
var ErrMissingTaggedEntity = errors.New("missing tagged entity")

// Controller applies sign state changes to a scene.
// It must be called from the UI callback, never concurrently
// with a draw pass.
type Controller struct {
	graph  *scene.Graph
	logger *log.Logger // nil means the standard logger
}

// New returns a controller for `g`, which may be nil until
// the scene is built (see Attach).
func New(g *scene.Graph) *Controller {
	return &Controller{graph: g}
}

// SetLogger redirects the warnings of the controller.
func (c *Controller) SetLogger(logger *log.Logger) { c.logger = logger }

// Attach sets the scene to update.
func (c *Controller) Attach(g *scene.Graph) { c.graph = g }

// Graph returns the scene being updated.
func (c *Controller) Graph() *scene.Graph { return c.graph }

func (c *Controller) warn(tag scene.Tag) {
	if c.logger != nil {
		c.logger.Printf("skipping update: %s: %s", ErrMissingTaggedEntity, tag)
	} else {
		log.Printf("skipping update: %s: %s", ErrMissingTaggedEntity, tag)
	}
}

// ApplyLimit displays `limit` on the limit text.
func (c *Controller) ApplyLimit(limit uint32) {
	e, ok := c.graph.Lookup(scene.LimitTextTag)
	if !ok || !e.SetText(scene.FormatLimit(limit)) {
		c.warn(scene.LimitTextTag)
	}
}

// ApplyTempFlag paints the temp background in yellow
// for temporary signs, white otherwise.
func (c *Controller) ApplyTempFlag(isTemp bool) {
	e, ok := c.graph.Lookup(scene.TempBackgroundTag)
	if !ok {
		c.warn(scene.TempBackgroundTag)
		return
	}
	e.Fill = scene.TempFill(isTemp)
}

// Sync applies the fields of `next` which differ from `prev`.
func (c *Controller) Sync(prev, next scene.SignState) {
	if prev.Limit != next.Limit {
		c.ApplyLimit(next.Limit)
	}
	if prev.IsTemp != next.IsTemp {
		c.ApplyTempFlag(next.IsTemp)
	}
}
