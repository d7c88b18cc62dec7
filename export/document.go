package export

// A manifest record. Converters contribute arbitrary renderer-specific keys
// so records stay schemaless.
type Record map[string]interface{}

// Merge other into the record. Keys from other win on conflict.
func (r Record) merge(other Record) {
	for k, v := range other {
		r[k] = v
	}
}

// Name of the fallback bsdf assigned to objects without a material.
const DefaultMaterialName = "__default_mat"

// Name of the manifest file inside the working directory.
const ManifestFile = "scene.json"

// The renderer manifest being built. Field order matches the document shape
// the renderer expects.
type Document struct {
	Media      []Record `json:"media"`
	Bsdfs      []Record `json:"bsdfs"`
	Primitives []Record `json:"primitives"`
	Camera     Record   `json:"camera"`
	Integrator Record   `json:"integrator"`
	Renderer   Record   `json:"renderer"`
}

// Create a manifest seeded with the renderer defaults and the fallback
// material. The fallback material always occupies bsdfs[0].
func newDocument() *Document {
	return &Document{
		Media: make([]Record, 0),
		Bsdfs: []Record{
			{
				"name":   DefaultMaterialName,
				"type":   "lambert",
				"albedo": 0.8,
			},
		},
		Primitives: make([]Record, 0),
		Camera:     Record{},
		Integrator: Record{},
		Renderer: Record{
			"output_file":            "scene.png",
			"overwrite_output_files": true,
			"enable_resume_render":   false,
			"checkpoint_interval":    0,
		},
	}
}
