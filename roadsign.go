// Package roadsign renders a parametric speed limit sign from
// a vector template, and keeps the rendered scene in sync with
// the limit and the temporary flag.
//
// The sub packages may be used directly: signsvg parses the template,
// scene builds and draws the scene, control updates it, and signraster
// and signpdf are painting backends.
package roadsign

import (
	_ "embed"
	"io"
	"strings"

	"github.com/benoitkugler/roadsign/control"
	"github.com/benoitkugler/roadsign/scene"
	"github.com/benoitkugler/roadsign/signsvg"
)

// SpeedLimitTemplate is the canonical sign markup.
//
//go:embed template/speedlimit.svg
var SpeedLimitTemplate string

// Sign is a built scene with its controller.
type Sign struct {
	Graph      *scene.Graph
	Controller *control.Controller
}

// Compile parses `template` and builds the scene for `state`.
// Every error is fatal: the template is unusable.
func Compile(template string, state scene.SignState) (*Sign, error) {
	return CompileStream(strings.NewReader(template), signsvg.IgnoreErrorMode, state)
}

// CompileStream is like Compile, reading the template from `r`.
// errMode determines if unsupported elements are logged.
func CompileStream(r io.Reader, errMode signsvg.ErrorMode, state scene.SignState) (*Sign, error) {
	desc, err := signsvg.ParseStream(r, errMode)
	if err != nil {
		return nil, err
	}
	g, err := scene.Build(desc, state)
	if err != nil {
		return nil, err
	}
	return &Sign{Graph: g, Controller: control.New(g)}, nil
}
