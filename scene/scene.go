package scene

import (
	"image"

	"github.com/f1vefour/carbide/types"
)

// The type tag attached to host scene objects.
type ObjectType string

const (
	ObjectMesh    ObjectType = "MESH"
	ObjectCurve   ObjectType = "CURVE"
	ObjectSurface ObjectType = "SURFACE"
	ObjectMeta    ObjectType = "META"
	ObjectFont    ObjectType = "FONT"
	ObjectCamera  ObjectType = "CAMERA"
	ObjectLamp    ObjectType = "LAMP"
	ObjectEmpty   ObjectType = "EMPTY"
)

// The native encoding of a host image.
type ImageFormat string

const (
	ImageBMP      ImageFormat = "BMP"
	ImagePNG      ImageFormat = "PNG"
	ImageJPEG     ImageFormat = "JPEG"
	ImageTarga    ImageFormat = "TARGA"
	ImageTargaRaw ImageFormat = "TARGA_RAW"
	ImageHDR      ImageFormat = "HDR"
)

// Where the pixel data of a host image comes from.
type ImageSource string

const (
	ImageSourceFile      ImageSource = "FILE"
	ImageSourceGenerated ImageSource = "GENERATED"
)

// A host image datablock. File-backed images carry the path to their source
// file; generated images only carry decoded pixels.
type Image struct {
	Name       string
	FileFormat ImageFormat
	Source     ImageSource
	Filepath   string

	// Decoded pixel data; may be nil for file-backed images that were
	// never loaded by the host.
	Pixels image.Image
}

// A host material. Materials are identified by name within a scene.
type Material struct {
	Name   string
	Albedo types.Vec3

	// Optional albedo texture.
	Texture *Image
}

// Triangulated geometry attached to an object.
type Mesh struct {
	Vertices  []types.Vec3
	Normals   []types.Vec3
	UVs       []types.Vec2
	Triangles [][3]uint32
}

// A host scene object.
type Object struct {
	Name        string
	Type        ObjectType
	MatrixWorld types.Mat4
	Smooth      bool

	// Material slots; only slot 0 is consulted by the exporter.
	MaterialSlots []*Material

	// Geometry; nil for objects without exportable geometry.
	Mesh *Mesh
}

// The active host camera.
type Camera struct {
	Name        string
	MatrixWorld types.Mat4

	// Field of view in degrees.
	FOV float32
}

// The environment/world entity.
type World struct {
	Name     string
	Emission types.Vec3
}

// Host render settings consumed by the exporter.
type RenderSettings struct {
	ResolutionX          int
	ResolutionY          int
	ResolutionPercentage int
	SamplesPerPixel      int
}

// A host scene snapshot. The object order is the host iteration order.
type Scene struct {
	Name    string
	World   *World
	Camera  *Camera
	Render  RenderSettings
	Objects []*Object
}

// Create a new scene with sane defaults.
func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		Camera: &Camera{
			Name:        "camera",
			MatrixWorld: types.Ident4(),
			FOV:         49.1,
		},
		Render: RenderSettings{
			ResolutionX:          1920,
			ResolutionY:          1080,
			ResolutionPercentage: 100,
			SamplesPerPixel:      64,
		},
		Objects: make([]*Object, 0),
	}
}
