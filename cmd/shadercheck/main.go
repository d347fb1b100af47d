// Command shadercheck compiles the WGSL of every scene, including the struct
// definitions generated from Go, and reports shaders that fail to compile.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/subhrm/shaders-playground/client/engine"
	"github.com/subhrm/shaders-playground/client/scene"
	"github.com/subhrm/shaders-playground/client/scenes/cube"
	"github.com/subhrm/shaders-playground/client/scenes/gradient"
	"github.com/subhrm/shaders-playground/client/scenes/spheres"
	"github.com/subhrm/shaders-playground/client/scenes/triangle"
	"github.com/subhrm/shaders-playground/common/shadercheck"
)

var (
	only    = flag.String("scene", "", "only check the scene with this id")
	outDir  = flag.String("out", "", "write the compiled SPIR-V modules to this directory")
	layouts = flag.Bool("layouts", false, "print the WGSL layout of every shared struct")
	strict  = flag.Bool("strict", false, "treat unsupported compiler features as failures")
	verbose = flag.Bool("v", false, "enable debug logging")
)

var sceneShaders = map[string]func() []engine.ShaderSource{
	triangle.ID: triangle.Shaders,
	gradient.ID: gradient.Shaders,
	cube.ID:     cube.Shaders,
	spheres.ID:  spheres.Shaders,
}

type result struct {
	scene       string
	label       string
	spirv       []byte
	err         error
	unsupported bool
}

func check(id string) ([]result, error) {
	shaders, ok := sceneShaders[id]
	if !ok {
		return nil, errors.Wrapf(scene.ErrNotFound, "no shaders for %q", id)
	}
	var results []result
	for _, src := range shaders() {
		spirv, err := shadercheck.Compile(src.Label, src.WGSL())
		results = append(results, result{
			scene:       id,
			label:       src.Label,
			spirv:       spirv,
			err:         err,
			unsupported: shadercheck.Unsupported(err),
		})
	}
	return results, nil
}

func fileName(label string) string {
	return strings.ReplaceAll(label, " ", "_") + ".spv"
}

func writeLayouts(w io.Writer, ids []string) {
	seen := map[string]bool{}
	for _, id := range ids {
		for _, src := range sceneShaders[id]() {
			for _, s := range src.Structs {
				key := id + "/" + s.Name
				if seen[key] {
					continue
				}
				seen[key] = true
				fmt.Fprintf(w, "# %s\n%s\n", id, s.Layout())
			}
		}
	}
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var ids []string
	for _, m := range scene.All() {
		if *only == "" || *only == m.ID {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) == 0 {
		log.Fatalf("unknown scene %q", *only)
	}

	if *layouts {
		writeLayouts(os.Stdout, ids)
	}

	failed := 0
	for _, id := range ids {
		results, err := check(id)
		if err != nil {
			log.WithError(err).Error("checking scene")
			failed++
			continue
		}
		for _, r := range results {
			logger := log.WithFields(log.Fields{"scene": r.scene, "shader": r.label})
			switch {
			case r.err == nil:
				logger.WithField("bytes", len(r.spirv)).Info("ok")
			case r.unsupported && !*strict:
				logger.WithError(r.err).Warn("skipped, unsupported by compiler")
				continue
			default:
				logger.WithError(r.err).Error("failed")
				failed++
				continue
			}
			if *outDir != "" {
				path := filepath.Join(*outDir, fileName(r.label))
				if err := os.WriteFile(path, r.spirv, 0o644); err != nil {
					logger.WithError(err).Error("writing SPIR-V")
					failed++
				} else {
					logger.WithField("path", path).Debug("wrote SPIR-V")
				}
			}
		}
	}
	if failed > 0 {
		log.Fatalf("%d shader(s) failed", failed)
	}
}
