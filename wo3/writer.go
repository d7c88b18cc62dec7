// Package wo3 writes the renderer's binary mesh format: a little-endian
// stream of a uint64 vertex count, interleaved position/normal/uv vertex
// records, a uint64 triangle count and per-triangle index triples with a
// material index.
package wo3

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/f1vefour/carbide/scene"
)

type vertexRecord struct {
	Pos    [3]float32
	Normal [3]float32
	UV     [2]float32
}

type triangleRecord struct {
	V0, V1, V2 uint32
	Material   int32
}

// Writer implements the export mesh writer collaborator.
type Writer struct{}

// Write the object's mesh to pathToFile and return the vertex and triangle
// counts. Missing normals and UVs are zero-filled.
func (Writer) WriteMesh(sc *scene.Scene, o *scene.Object, pathToFile string) (int, int, error) {
	m := o.Mesh
	if m == nil {
		return 0, 0, fmt.Errorf("wo3: object %q has no mesh data", o.Name)
	}

	for _, tri := range m.Triangles {
		for _, index := range tri {
			if index >= uint32(len(m.Vertices)) {
				return 0, 0, fmt.Errorf("wo3: object %q references vertex %d out of %d", o.Name, index, len(m.Vertices))
			}
		}
	}

	f, err := os.Create(pathToFile)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	verts := make([]vertexRecord, len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i].Pos = [3]float32(v)
		if i < len(m.Normals) {
			verts[i].Normal = [3]float32(m.Normals[i])
		}
		if i < len(m.UVs) {
			verts[i].UV = [2]float32(m.UVs[i])
		}
	}

	tris := make([]triangleRecord, len(m.Triangles))
	for i, tri := range m.Triangles {
		tris[i] = triangleRecord{V0: tri[0], V1: tri[1], V2: tri[2]}
	}

	bw := bufio.NewWriter(f)
	if err = binary.Write(bw, binary.LittleEndian, uint64(len(verts))); err != nil {
		return 0, 0, err
	}
	if err = binary.Write(bw, binary.LittleEndian, verts); err != nil {
		return 0, 0, err
	}
	if err = binary.Write(bw, binary.LittleEndian, uint64(len(tris))); err != nil {
		return 0, 0, err
	}
	if err = binary.Write(bw, binary.LittleEndian, tris); err != nil {
		return 0, 0, err
	}
	if err = bw.Flush(); err != nil {
		return 0, 0, err
	}

	return len(verts), len(tris), nil
}
