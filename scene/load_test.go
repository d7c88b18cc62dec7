package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/f1vefour/carbide/types"
)

const testSnapshot = `{
    "name": "demo",
    "render": {"resolution_x": 1280, "resolution_y": 720, "resolution_percentage": 50, "spp": 16},
    "camera": {
        "name": "cam",
        "fov": 39.6,
        "transform": {"translate": [0, 1, 5]}
    },
    "world": {"name": "sky", "emission": [0.5, 0.6, 0.7]},
    "materials": {
        "red": {"albedo": [0.8, 0.1, 0.1]},
        "wood": {"albedo": [1, 1, 1], "texture": {"name": "planks", "format": "PNG", "path": "/tmp/planks.png"}}
    },
    "objects": [
        {
            "name": "cube",
            "type": "MESH",
            "transform": {"matrix": [1,0,0,4, 0,1,0,0, 0,0,1,0, 0,0,0,1]},
            "materials": ["red", "wood"],
            "mesh": {
                "vertices": [[0,0,0],[1,0,0],[0.5,1,0]],
                "normals": [[0,0,-1],[0,0,-1],[0,0,-1]],
                "uvs": [[0,0],[1,0],[0.5,1]],
                "triangles": [[0,1,2]]
            }
        },
        {
            "name": "cube2",
            "type": "MESH",
            "smooth": false,
            "transform": {"rotate_axis": [0, 0, 1], "rotate_angle": 90},
            "materials": ["red"]
        },
        {"name": "light", "type": "LAMP", "transform": {}}
    ]
}`

func loadTestScene(t *testing.T, snapshot string) *Scene {
	t.Helper()

	pathToFile := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(pathToFile, []byte(snapshot), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(pathToFile)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestLoadScene(t *testing.T) {
	sc := loadTestScene(t, testSnapshot)

	if sc.Name != "demo" {
		t.Fatalf("expected scene name demo; got %q", sc.Name)
	}
	if sc.Render.ResolutionX != 1280 || sc.Render.ResolutionPercentage != 50 {
		t.Fatalf("unexpected render settings: %+v", sc.Render)
	}
	if sc.Camera == nil || sc.Camera.FOV != 39.6 {
		t.Fatalf("unexpected camera: %+v", sc.Camera)
	}
	if sc.Camera.MatrixWorld != types.Translate4(types.Vec3{0, 1, 5}) {
		t.Fatalf("unexpected camera transform: %v", sc.Camera.MatrixWorld)
	}
	if sc.World == nil || sc.World.Emission != (types.Vec3{0.5, 0.6, 0.7}) {
		t.Fatalf("unexpected world: %+v", sc.World)
	}
	if len(sc.Objects) != 3 {
		t.Fatalf("expected 3 objects; got %d", len(sc.Objects))
	}

	cube := sc.Objects[0]
	if cube.Type != ObjectMesh || !cube.Smooth {
		t.Fatalf("unexpected cube object: %+v", cube)
	}
	if cube.MatrixWorld[3] != 4 {
		t.Fatalf("expected explicit matrix to be used; got %v", cube.MatrixWorld)
	}
	if cube.Mesh == nil || len(cube.Mesh.Vertices) != 3 || len(cube.Mesh.Triangles) != 1 {
		t.Fatalf("unexpected cube mesh: %+v", cube.Mesh)
	}

	cube2 := sc.Objects[1]
	if cube2.Smooth {
		t.Fatal("expected explicit smooth flag to be honored")
	}
	// 90 degrees around Z maps +X to +Y.
	out := cube2.MatrixWorld.Mul4x1(types.XYZW(1, 0, 0, 1))
	exp := types.XYZW(0, 1, 0, 1)
	for i := 0; i < 4; i++ {
		if diff := float64(out[i] - exp[i]); math.Abs(diff) > 1e-6 {
			t.Fatalf("expected rotated point %v; got %v", exp, out)
		}
	}

	// Both objects share one material instance.
	if sc.Objects[0].MaterialSlots[0] != sc.Objects[1].MaterialSlots[0] {
		t.Fatal("expected shared materials to preserve identity")
	}
}

func TestLoadSceneTexture(t *testing.T) {
	sc := loadTestScene(t, testSnapshot)

	wood := sc.Objects[0].MaterialSlots[1]
	if wood == nil || wood.Name != "wood" {
		t.Fatalf("expected the second slot to hold the wood material; got %+v", wood)
	}
	if wood.Texture == nil || wood.Texture.FileFormat != ImagePNG {
		t.Fatalf("unexpected texture: %+v", wood.Texture)
	}
	if wood.Texture.Source != ImageSourceFile || wood.Texture.Filepath != "/tmp/planks.png" {
		t.Fatalf("unexpected texture source: %+v", wood.Texture)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}

	pathToFile := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(pathToFile, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(pathToFile); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}

	undefMat := `{"objects": [{"name": "o", "type": "MESH", "transform": {}, "materials": ["nope"]}]}`
	if err := os.WriteFile(pathToFile, []byte(undefMat), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(pathToFile); err == nil {
		t.Fatal("expected an error for an undefined material reference")
	}

	badMatrix := `{"objects": [{"name": "o", "type": "MESH", "transform": {"matrix": [1, 2, 3]}}]}`
	if err := os.WriteFile(pathToFile, []byte(badMatrix), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(pathToFile); err == nil {
		t.Fatal("expected an error for a short transform matrix")
	}
}
