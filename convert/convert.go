// Package convert provides the default settings converters used when
// exporting a host scene. Each converter distills one host subsystem into
// the record shape the renderer expects; the material converter may write
// image files into the session working directory as a side effect.
package convert

import (
	"github.com/f1vefour/carbide/export"
	"github.com/f1vefour/carbide/imageio"
	"github.com/f1vefour/carbide/scene"
	"github.com/f1vefour/carbide/wo3"
)

// A fully wired collaborator bundle with the default converters.
func Default() export.Converters {
	return export.Converters{
		Renderer:   Renderer{},
		Integrator: Integrator{},
		Camera:     Camera{},
		World:      World{},
		Material:   Material{},
		Mesh:       wo3.Writer{},
		Image:      imageio.Saver{},
	}
}

type Renderer struct{}

func (Renderer) ConvertRenderer(s *export.Session, sc *scene.Scene) (export.Record, error) {
	spp := sc.Render.SamplesPerPixel
	if spp <= 0 {
		spp = 64
	}
	return export.Record{
		"spp":      spp,
		"spp_step": 4,
	}, nil
}

type Integrator struct{}

func (Integrator) ConvertIntegrator(s *export.Session, sc *scene.Scene) (export.Record, error) {
	return export.Record{
		"type":                      "path_tracer",
		"min_bounces":               0,
		"max_bounces":               64,
		"enable_consistency_checks": false,
		"enable_two_sided_shading":  true,
	}, nil
}

type Camera struct{}

func (Camera) ConvertCamera(s *export.Session, cam *scene.Camera) (export.Record, error) {
	fov := cam.FOV
	if fov <= 0 {
		fov = 49.1
	}
	return export.Record{
		"type":    "pinhole",
		"fov":     fov,
		"tonemap": "filmic",
	}, nil
}

type World struct{}

func (World) ConvertWorld(s *export.Session, w *scene.World) (export.Record, error) {
	name := w.Name
	if name == "" {
		name = "__world"
	}
	return export.Record{
		"name":     name,
		"type":     "infinite_sphere",
		"emission": []float32{w.Emission[0], w.Emission[1], w.Emission[2]},
		"bsdf":     export.Record{"type": "null"},
	}, nil
}

type Material struct{}

// Convert a host material to a lambert bsdf. The reference fragment points
// at the bsdf by name; the full record is appended to the manifest by the
// session on first use. Textured materials resolve their image through the
// session, which may write a file into the working directory.
func (Material) ConvertMaterial(s *export.Session, m *scene.Material) (export.Record, export.Record, error) {
	var albedo interface{} = []float32{m.Albedo[0], m.Albedo[1], m.Albedo[2]}
	if m.Texture != nil {
		ref, err := s.AddImage(m.Texture)
		if err != nil {
			return nil, nil, err
		}
		albedo = ref
	}

	full := export.Record{
		"name":   m.Name,
		"type":   "lambert",
		"albedo": albedo,
	}
	ref := export.Record{"bsdf": m.Name}
	return ref, full, nil
}
