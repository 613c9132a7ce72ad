// Command roadsign renders the speed limit sign to PNG and PDF,
// and optionally runs a terminal panel to edit it live.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/benoitkugler/roadsign"
	"github.com/benoitkugler/roadsign/config"
	"github.com/benoitkugler/roadsign/panel"
	"github.com/benoitkugler/roadsign/scene"
	"github.com/benoitkugler/roadsign/signpdf"
	"github.com/benoitkugler/roadsign/signraster"
	"github.com/benoitkugler/roadsign/signsvg"
)

var (
	configPath  = flag.String("config", "", "YAML configuration file (optional)")
	template    = flag.String("template", "", "sign markup file (defaults to the embedded template)")
	limit       = flag.Uint("limit", 0, "speed limit, in [5, 110]")
	temporary   = flag.Bool("temp", false, "render a temporary sign")
	pngPath     = flag.String("png", "", "PNG output file")
	pdfPath     = flag.String("pdf", "", "PDF output file")
	interactive = flag.Bool("interactive", false, "edit the sign in a terminal panel")
	warn        = flag.Bool("warn", false, "log unsupported markup elements")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "template":
			cfg.Template = *template
		case "limit":
			cfg.Limit, flagErr = limitFromFlag(*limit)
		case "temp":
			cfg.Temporary = *temporary
		case "png":
			cfg.PNG = *pngPath
		case "pdf":
			cfg.PDF = *pdfPath
		case "warn":
			cfg.WarnUnknownTags = *warn
		}
	})
	if flagErr != nil {
		log.Fatal(flagErr)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sign, err := compile(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := render(cfg, sign.Graph); err != nil {
		log.Fatal(err)
	}
	if !*interactive {
		return
	}

	p, err := panel.Open(sign.Controller, cfg.State())
	if err != nil {
		log.Fatal(err)
	}
	// the terminal is owned by the panel: keep render errors for the exit
	var renderErr error
	p.OnChange = func(scene.SignState) {
		if err := render(cfg, sign.Graph); err != nil && renderErr == nil {
			renderErr = err
		}
	}
	p.Run()
	p.Close()
	if renderErr != nil {
		log.Fatal(renderErr)
	}
}

// limitFromFlag rejects values which don't fit a speed limit,
// before they are truncated to 32 bits.
func limitFromFlag(v uint) (uint32, error) {
	if v < scene.MinLimit || v > scene.MaxLimit {
		return 0, fmt.Errorf("-limit: speed limit %d out of range [%d, %d]", v, scene.MinLimit, scene.MaxLimit)
	}
	return uint32(v), nil
}

func compile(cfg config.Config) (*roadsign.Sign, error) {
	mode := signsvg.IgnoreErrorMode
	if cfg.WarnUnknownTags {
		mode = signsvg.WarnErrorMode
	}
	var r io.Reader = strings.NewReader(roadsign.SpeedLimitTemplate)
	if cfg.Template != "" {
		f, err := os.Open(cfg.Template)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return roadsign.CompileStream(r, mode, cfg.State())
}

func render(cfg config.Config, g *scene.Graph) error {
	if cfg.PNG != "" {
		var buf bytes.Buffer
		if err := signraster.WritePNG(&buf, g, cfg.Width, cfg.Height); err != nil {
			return err
		}
		if err := os.WriteFile(cfg.PNG, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	if cfg.PDF != "" {
		var buf bytes.Buffer
		if err := signpdf.RenderSignToPDF(&buf, g, float64(cfg.Width), float64(cfg.Height)); err != nil {
			return err
		}
		if err := os.WriteFile(cfg.PDF, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}
