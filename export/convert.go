package export

import "github.com/f1vefour/carbide/scene"

// Settings converters turn host entities into manifest records. Converters
// receive the session and are allowed to call back into it (AddImage in
// particular), so converting an entity may write files into the working
// directory as a side effect.

// Produces the renderer settings block.
type RendererConverter interface {
	ConvertRenderer(s *Session, sc *scene.Scene) (Record, error)
}

// Produces the integrator settings block.
type IntegratorConverter interface {
	ConvertIntegrator(s *Session, sc *scene.Scene) (Record, error)
}

// Produces the extra camera fields (lens model, tonemap and friends) merged
// on top of the transform/resolution the session fills in itself.
type CameraConverter interface {
	ConvertCamera(s *Session, cam *scene.Camera) (Record, error)
}

// Produces the environment primitive for the world entity.
type WorldConverter interface {
	ConvertWorld(s *Session, w *scene.World) (Record, error)
}

// Produces a material reference fragment plus, for materials not fully
// described by the fragment alone, the full bsdf record to append to the
// manifest. The full record is nil when no append is needed.
type MaterialConverter interface {
	ConvertMaterial(s *Session, m *scene.Material) (ref Record, full Record, err error)
}

// Writes the binary mesh artifact for an object. The returned vertex and
// triangle counts are used for diagnostics only.
type MeshWriter interface {
	WriteMesh(sc *scene.Scene, o *scene.Object, pathToFile string) (verts, tris int, err error)
}

// Persists a host image to disk in the requested encoding.
type ImageSaver interface {
	SaveImage(im *scene.Image, pathToFile string, format scene.ImageFormat) error
}

// The collaborator bundle a session exports through.
type Converters struct {
	Renderer   RendererConverter
	Integrator IntegratorConverter
	Camera     CameraConverter
	World      WorldConverter
	Material   MaterialConverter
	Mesh       MeshWriter
	Image      ImageSaver
}
