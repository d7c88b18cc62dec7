package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/f1vefour/carbide/log"
	"github.com/f1vefour/carbide/scene"
)

// Object types that carry exportable geometry. Everything else is skipped
// during traversal.
var exportableTypes = map[scene.ObjectType]struct{}{
	scene.ObjectMesh:    {},
	scene.ObjectCurve:   {},
	scene.ObjectSurface: {},
	scene.ObjectMeta:    {},
	scene.ObjectFont:    {},
}

// Session options.
type Options struct {
	// Working directory for the export bundle. When empty the session
	// allocates a temporary directory and removes it on Close.
	Path string

	// Copy/convert all referenced assets into the working directory
	// instead of referencing existing files by path.
	SelfContained bool

	// The collaborator bundle used during population.
	Converters Converters
}

// An export session owns a working directory and the manifest being built.
// Lifecycle: NewSession -> AddAll -> Save -> optionally WriteArchive ->
// Close. A session populates at most once.
type Session struct {
	dir           string
	ownsDir       bool
	selfContained bool
	conv          Converters
	doc           *Document
	logger        log.Logger

	// Dedup caches keyed by host entity name. A material or image with a
	// given name is converted at most once per session; host names are
	// trusted to be unique.
	mats   map[string]Record
	images map[string]string

	populated bool
	closed    bool
}

// Create a new export session. When opts.Path is empty a session-owned
// temporary directory is allocated; otherwise the caller-supplied directory
// is created if missing and left intact on Close.
func NewSession(opts Options) (*Session, error) {
	s := &Session{
		dir:           opts.Path,
		selfContained: opts.SelfContained,
		conv:          opts.Converters,
		doc:           newDocument(),
		logger:        log.New("export"),
		mats:          make(map[string]Record),
		images:        make(map[string]string),
	}

	if s.dir == "" {
		dir, err := os.MkdirTemp("", "carbide-export")
		if err != nil {
			return nil, err
		}
		s.dir = dir
		s.ownsDir = true
	} else if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}

	return s, nil
}

// The session working directory.
func (s *Session) Dir() string {
	return s.dir
}

// Join path elements onto the working directory.
func (s *Session) Path(elem ...string) string {
	return filepath.Join(append([]string{s.dir}, elem...)...)
}

// The manifest under construction.
func (s *Session) Document() *Document {
	return s.doc
}

// Populate the manifest from a host scene. The stages run in a fixed order:
// renderer settings, integrator settings, world, camera, then objects in
// host iteration order. May only be called once per session.
func (s *Session) AddAll(sc *scene.Scene) error {
	if s.populated {
		return errors.New("export: session has already been populated")
	}
	s.populated = true

	start := time.Now()

	if s.conv.Renderer != nil {
		rec, err := s.conv.Renderer.ConvertRenderer(s, sc)
		if err != nil {
			return err
		}
		s.doc.Renderer.merge(rec)
	}

	if s.conv.Integrator != nil {
		rec, err := s.conv.Integrator.ConvertIntegrator(s, sc)
		if err != nil {
			return err
		}
		s.doc.Integrator.merge(rec)
	}

	if sc.World != nil {
		if err := s.AddWorld(sc.World); err != nil {
			return err
		}
	}

	if err := s.AddCamera(sc, sc.Camera); err != nil {
		return err
	}

	for _, o := range sc.Objects {
		if err := s.AddObject(sc, o); err != nil {
			return err
		}
	}

	s.logger.Noticef("populated scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Convert the world entity and append its environment primitive.
func (s *Session) AddWorld(w *scene.World) error {
	if s.conv.World == nil {
		return nil
	}
	rec, err := s.conv.World.ConvertWorld(s, w)
	if err != nil {
		return err
	}
	s.doc.Primitives = append(s.doc.Primitives, rec)
	return nil
}

// Build the camera record: handedness-corrected transform, scaled
// resolution, plus whatever extra fields the camera converter supplies.
func (s *Session) AddCamera(sc *scene.Scene, cam *scene.Camera) error {
	if cam == nil {
		return errors.New("export: scene has no camera")
	}

	transform := cameraTransform(cam.MatrixWorld)
	resolution := renderResolution(sc.Render)

	rec := Record{
		"transform":  transform.Floats(),
		"resolution": resolution,
	}

	if s.conv.Camera != nil {
		extra, err := s.conv.Camera.ConvertCamera(s, cam)
		if err != nil {
			return err
		}
		rec.merge(extra)
	}

	s.doc.Camera = rec
	return nil
}

// Export an object's mesh and return the mesh filename relative to the
// working directory. An empty name defaults to the object name.
func (s *Session) AddMesh(sc *scene.Scene, o *scene.Object, name string) (string, error) {
	if name == "" {
		name = o.Name
	}
	outName := name + ".wo3"

	if s.conv.Mesh == nil {
		return "", fmt.Errorf("export: no mesh writer configured; cannot export %q", o.Name)
	}

	start := time.Now()
	verts, tris, err := s.conv.Mesh.WriteMesh(sc, o, s.Path(outName))
	if err != nil {
		return "", fmt.Errorf("export: mesh %q: %v", o.Name, err)
	}
	s.logger.Infof("wrote %s in %d ms (%d verts, %d tris)", outName, time.Since(start).Nanoseconds()/1e6, verts, tris)

	return outName, nil
}

// Resolve a material to its reference fragment, converting and appending the
// full bsdf record on first use. Failed conversions are not cached.
func (s *Session) AddMaterial(m *scene.Material) (Record, error) {
	if ref, exists := s.mats[m.Name]; exists {
		return ref, nil
	}

	if s.conv.Material == nil {
		return nil, fmt.Errorf("export: no material converter configured; cannot export %q", m.Name)
	}

	ref, full, err := s.conv.Material.ConvertMaterial(s, m)
	if err != nil {
		return nil, fmt.Errorf("export: material %q: %v", m.Name, err)
	}
	if full != nil {
		s.doc.Bsdfs = append(s.doc.Bsdfs, full)
	}
	s.mats[m.Name] = ref
	return ref, nil
}

// Turn a host object into a primitive record. Objects without exportable
// geometry are skipped silently.
func (s *Session) AddObject(sc *scene.Scene, o *scene.Object) error {
	if _, exportable := exportableTypes[o.Type]; !exportable {
		// no geometry
		s.logger.Debugf("skipping object %q of type %s", o.Name, o.Type)
		return nil
	}

	meshFile, err := s.AddMesh(sc, o, "")
	if err != nil {
		return err
	}

	rec := Record{
		"name":      o.Name,
		"type":      "mesh",
		"smooth":    o.Smooth,
		"file":      meshFile,
		"transform": o.MatrixWorld.Floats(),
	}

	// Only material slot 0 is consulted; multi-material objects are not
	// supported.
	if len(o.MaterialSlots) > 0 && o.MaterialSlots[0] != nil {
		ref, err := s.AddMaterial(o.MaterialSlots[0])
		if err != nil {
			return err
		}
		rec.merge(ref)
	} else {
		rec["bsdf"] = DefaultMaterialName
	}

	s.doc.Primitives = append(s.doc.Primitives, rec)
	return nil
}

// Serialize the manifest to scene.json inside the working directory,
// replacing any previous manifest. The output is pretty-printed with 4-space
// indentation so exports diff cleanly.
func (s *Session) Save() error {
	data, err := json.MarshalIndent(s.doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(ManifestFile), append(data, '\n'), 0644)
}

// Release the session. A session-owned temporary working directory is
// removed together with its contents; caller-supplied directories are left
// intact. Safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.ownsDir {
		return os.RemoveAll(s.dir)
	}
	return nil
}

// Render a summary of the populated manifest.
func (s *Session) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Entry", "Count"})
	table.Append([]string{"Primitives", strconv.Itoa(len(s.doc.Primitives))})
	table.Append([]string{"Bsdfs", strconv.Itoa(len(s.doc.Bsdfs))})
	table.Append([]string{"Media", strconv.Itoa(len(s.doc.Media))})
	table.Append([]string{"Images", strconv.Itoa(len(s.images))})
	table.Render()
	return buf.String()
}
