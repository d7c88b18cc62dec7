package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/f1vefour/carbide/types"
)

// Wire form of a host scene snapshot. Transforms are given either as a
// row-major 16 element matrix or as translate/rotate/scale components.
type sceneFile struct {
	Name      string                  `json:"name"`
	Render    *renderFile             `json:"render"`
	Camera    *cameraFile             `json:"camera"`
	World     *worldFile              `json:"world"`
	Materials map[string]materialFile `json:"materials"`
	Objects   []objectFile            `json:"objects"`
}

type renderFile struct {
	ResolutionX          int `json:"resolution_x"`
	ResolutionY          int `json:"resolution_y"`
	ResolutionPercentage int `json:"resolution_percentage"`
	SamplesPerPixel      int `json:"spp"`
}

type cameraFile struct {
	Name      string        `json:"name"`
	FOV       float32       `json:"fov"`
	Transform transformFile `json:"transform"`
}

type worldFile struct {
	Name     string     `json:"name"`
	Emission [3]float32 `json:"emission"`
}

type materialFile struct {
	Albedo  [3]float32 `json:"albedo"`
	Texture *imageFile `json:"texture"`
}

type imageFile struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Path   string `json:"path"`
}

type objectFile struct {
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Smooth    *bool         `json:"smooth"`
	Transform transformFile `json:"transform"`
	Materials []string      `json:"materials"`
	Mesh      *meshFile     `json:"mesh"`
}

type meshFile struct {
	Vertices  [][3]float32 `json:"vertices"`
	Normals   [][3]float32 `json:"normals"`
	UVs       [][2]float32 `json:"uvs"`
	Triangles [][3]uint32  `json:"triangles"`
}

type transformFile struct {
	Matrix []float32 `json:"matrix"`

	Translate   *[3]float32 `json:"translate"`
	RotateAxis  *[3]float32 `json:"rotate_axis"`
	RotateAngle float32     `json:"rotate_angle"`
	Scale       *[3]float32 `json:"scale"`
}

// Load a host scene snapshot from a JSON file.
func Load(pathToFile string) (*Scene, error) {
	data, err := os.ReadFile(pathToFile)
	if err != nil {
		return nil, err
	}

	var sf sceneFile
	if err = json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("scene: could not parse %s: %v", pathToFile, err)
	}

	sc := NewScene(sf.Name)
	if sf.Render != nil {
		sc.Render = RenderSettings{
			ResolutionX:          sf.Render.ResolutionX,
			ResolutionY:          sf.Render.ResolutionY,
			ResolutionPercentage: sf.Render.ResolutionPercentage,
			SamplesPerPixel:      sf.Render.SamplesPerPixel,
		}
		if sc.Render.ResolutionPercentage == 0 {
			sc.Render.ResolutionPercentage = 100
		}
	}

	if sf.Camera != nil {
		matrix, err := sf.Camera.Transform.mat4()
		if err != nil {
			return nil, fmt.Errorf("scene: camera %q: %v", sf.Camera.Name, err)
		}
		sc.Camera = &Camera{
			Name:        sf.Camera.Name,
			MatrixWorld: matrix,
			FOV:         sf.Camera.FOV,
		}
	}

	if sf.World != nil {
		sc.World = &World{
			Name:     sf.World.Name,
			Emission: types.Vec3(sf.World.Emission),
		}
	}

	// Materials are shared between objects; instantiate each one once so
	// that slot references preserve identity.
	materials := make(map[string]*Material, len(sf.Materials))
	for name, mf := range sf.Materials {
		mat := &Material{
			Name:   name,
			Albedo: types.Vec3(mf.Albedo),
		}
		if mf.Texture != nil {
			mat.Texture = &Image{
				Name:       mf.Texture.Name,
				FileFormat: ImageFormat(mf.Texture.Format),
				Source:     ImageSourceFile,
				Filepath:   mf.Texture.Path,
			}
		}
		materials[name] = mat
	}

	for _, of := range sf.Objects {
		matrix, err := of.Transform.mat4()
		if err != nil {
			return nil, fmt.Errorf("scene: object %q: %v", of.Name, err)
		}

		obj := &Object{
			Name:        of.Name,
			Type:        ObjectType(of.Type),
			MatrixWorld: matrix,
			Smooth:      true,
		}
		if of.Smooth != nil {
			obj.Smooth = *of.Smooth
		}

		for _, matName := range of.Materials {
			mat, exists := materials[matName]
			if !exists {
				return nil, fmt.Errorf("scene: object %q references undefined material %q", of.Name, matName)
			}
			obj.MaterialSlots = append(obj.MaterialSlots, mat)
		}

		if of.Mesh != nil {
			mesh := &Mesh{
				Triangles: of.Mesh.Triangles,
			}
			for _, v := range of.Mesh.Vertices {
				mesh.Vertices = append(mesh.Vertices, types.Vec3(v))
			}
			for _, n := range of.Mesh.Normals {
				mesh.Normals = append(mesh.Normals, types.Vec3(n))
			}
			for _, uv := range of.Mesh.UVs {
				mesh.UVs = append(mesh.UVs, types.Vec2(uv))
			}
			obj.Mesh = mesh
		}

		sc.Objects = append(sc.Objects, obj)
	}

	return sc, nil
}

// Build the transform matrix for a wire transform block. An explicit matrix
// wins over the component form.
func (tf transformFile) mat4() (types.Mat4, error) {
	if tf.Matrix != nil {
		if len(tf.Matrix) != 16 {
			return types.Mat4{}, fmt.Errorf("transform matrix must have 16 elements; got %d", len(tf.Matrix))
		}
		var m types.Mat4
		copy(m[:], tf.Matrix)
		return m, nil
	}

	out := types.Ident4()
	if tf.Translate != nil {
		out = out.Mul4(types.Translate4(types.Vec3(*tf.Translate)))
	}
	if tf.RotateAxis != nil {
		angle := float32(float64(tf.RotateAngle) * math.Pi / 180.0)
		quat := types.QuatFromAxisAngle(types.Vec3(*tf.RotateAxis).Normalize(), angle)
		out = out.Mul4(quat.Mat4())
	}
	if tf.Scale != nil {
		out = out.Mul4(types.Scale4(types.Vec3(*tf.Scale)))
	}
	return out, nil
}
