package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f1vefour/carbide/export"
	"github.com/f1vefour/carbide/scene"
	"github.com/f1vefour/carbide/types"
)

func newTestSession(t *testing.T) *export.Session {
	t.Helper()

	s, err := export.NewSession(export.Options{
		Path:       filepath.Join(t.TempDir(), "bundle"),
		Converters: Default(),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRendererConverter(t *testing.T) {
	s := newTestSession(t)

	sc := scene.NewScene("test")
	sc.Render.SamplesPerPixel = 128
	rec, err := Renderer{}.ConvertRenderer(s, sc)
	if err != nil {
		t.Fatal(err)
	}
	if rec["spp"] != 128 {
		t.Fatalf("expected spp 128; got %v", rec["spp"])
	}

	sc.Render.SamplesPerPixel = 0
	rec, err = Renderer{}.ConvertRenderer(s, sc)
	if err != nil {
		t.Fatal(err)
	}
	if rec["spp"] != 64 {
		t.Fatalf("expected default spp 64; got %v", rec["spp"])
	}
}

func TestIntegratorConverter(t *testing.T) {
	s := newTestSession(t)

	rec, err := Integrator{}.ConvertIntegrator(s, scene.NewScene("test"))
	if err != nil {
		t.Fatal(err)
	}
	if rec["type"] != "path_tracer" {
		t.Fatalf("expected path_tracer integrator; got %v", rec["type"])
	}
}

func TestCameraConverter(t *testing.T) {
	s := newTestSession(t)

	rec, err := Camera{}.ConvertCamera(s, &scene.Camera{FOV: 39.6})
	if err != nil {
		t.Fatal(err)
	}
	if rec["type"] != "pinhole" || rec["fov"] != float32(39.6) {
		t.Fatalf("unexpected camera record: %v", rec)
	}
}

func TestWorldConverter(t *testing.T) {
	s := newTestSession(t)

	rec, err := World{}.ConvertWorld(s, &scene.World{Name: "sky", Emission: types.Vec3{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if rec["name"] != "sky" || rec["type"] != "infinite_sphere" {
		t.Fatalf("unexpected world record: %v", rec)
	}
	emission := rec["emission"].([]float32)
	if emission[0] != 1 || emission[1] != 2 || emission[2] != 3 {
		t.Fatalf("unexpected world emission: %v", emission)
	}
}

func TestMaterialConverter(t *testing.T) {
	s := newTestSession(t)

	ref, full, err := Material{}.ConvertMaterial(s, &scene.Material{
		Name:   "red",
		Albedo: types.Vec3{0.8, 0.1, 0.1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ref["bsdf"] != "red" {
		t.Fatalf("expected reference fragment to point at red; got %v", ref)
	}
	if full["name"] != "red" || full["type"] != "lambert" {
		t.Fatalf("unexpected full record: %v", full)
	}
	albedo := full["albedo"].([]float32)
	if albedo[0] != 0.8 {
		t.Fatalf("unexpected albedo: %v", albedo)
	}
}

func TestMaterialConverterTexture(t *testing.T) {
	s := newTestSession(t)

	srcDir := t.TempDir()
	pathToFile := filepath.Join(srcDir, "planks.png")
	if err := os.WriteFile(pathToFile, []byte("PNG"), 0644); err != nil {
		t.Fatal(err)
	}

	_, full, err := Material{}.ConvertMaterial(s, &scene.Material{
		Name:   "wood",
		Albedo: types.Vec3{1, 1, 1},
		Texture: &scene.Image{
			Name:       "planks",
			FileFormat: scene.ImagePNG,
			Source:     scene.ImageSourceFile,
			Filepath:   pathToFile,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	// A non self-contained session references the texture by path.
	albedo, isPath := full["albedo"].(string)
	if !isPath || albedo == "" {
		t.Fatalf("expected albedo to be an image path; got %v", full["albedo"])
	}
	if filepath.IsAbs(albedo) {
		t.Fatalf("expected a working-directory relative path; got %q", albedo)
	}
}
