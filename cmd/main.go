package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"gopkg.in/yaml.v3"

	"github.com/stuarthighley/trlevel"
)

func main() {
	glbPath := flag.String("glb", "", "write one mesh as binary glTF to this file")
	meshIndex := flag.Int("mesh", 0, "mesh pointer index exported with -glb")
	workers := flag.Int("workers", 0, "goroutines used to resolve references (0 = GOMAXPROCS)")
	verbose := flag.Bool("v", false, "log decoding progress")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: trdump [-glb out.glb -mesh N] [-workers N] [-v] file\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		trlevel.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}

	path := flag.Arg(0)
	data, err := readLevelFile(path)
	if err != nil {
		log.Fatalln(err)
	}

	l, err := trlevel.DecodeWithOptions(data, trlevel.Options{Workers: *workers})
	if err != nil {
		log.Fatalln(err)
	}

	if err := writeSummary(os.Stdout, path, l); err != nil {
		log.Fatalln(err)
	}

	if *glbPath != "" {
		if err := exportMesh(l, *meshIndex, *glbPath); err != nil {
			log.Fatalln(err)
		}
	}
}

// readLevelFile reads a level, decompressing it first if it ends in .zst.
func readLevelFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

type summary struct {
	File            string         `yaml:"file"`
	Version         string         `yaml:"version"`
	Checksum        string         `yaml:"checksum"`
	Tables          map[string]int `yaml:"tables"`
	DistinctMeshes  int            `yaml:"distinct_meshes"`
	DuplicateMeshes int            `yaml:"duplicate_meshes"`
	AnimatedGroups  int            `yaml:"animated_texture_groups"`
	Entities        map[string]int `yaml:"entities"`
	EntityTypes     map[string]int `yaml:"entity_types,omitempty"`
	Categories      map[string]int `yaml:"entity_categories,omitempty"`
	Pickups         int            `yaml:"pickup_sprites"`
}

func writeSummary(w io.Writer, path string, l *trlevel.Level) error {
	s := summary{
		File:     path,
		Version:  l.Version.String(),
		Checksum: fmt.Sprintf("%016x", l.Checksum),
		Tables: map[string]int{
			"textiles":          len(l.Textiles),
			"rooms":             len(l.Rooms),
			"floor_data":        len(l.FloorData),
			"mesh_pointers":     len(l.MeshPointers),
			"animations":        len(l.Animations),
			"state_changes":     len(l.StateChanges),
			"anim_dispatches":   len(l.AnimDispatches),
			"models":            len(l.Models),
			"static_meshes":     len(l.StaticMeshes),
			"object_textures":   len(l.ObjectTextures),
			"sprite_textures":   len(l.SpriteTextures),
			"sprite_sequences":  len(l.SpriteSequences),
			"cameras":           len(l.Cameras),
			"sound_sources":     len(l.SoundSources),
			"boxes":             len(l.Boxes),
			"overlaps":          len(l.Overlaps),
			"entities":          len(l.Entities),
			"cinematic_frames":  len(l.CinematicFrames),
			"sound_details":     len(l.SoundDetails),
			"sample_indices":    len(l.SampleIndices),
			"animated_textures": len(l.AnimatedTextures),
		},
		Entities: map[string]int{},
	}

	// Meshes that are stored more than once with identical content
	seen := make(map[*trlevel.Mesh]bool)
	hashes := make(map[uint64]int)
	for _, m := range l.Meshes {
		if seen[m] {
			continue
		}
		seen[m] = true
		hashes[meshHash(m)]++
	}
	s.DistinctMeshes = len(hashes)
	for _, n := range hashes {
		s.DuplicateMeshes += n - 1
	}

	groups, err := l.AnimatedTextureGroups()
	if err != nil {
		return err
	}
	s.AnimatedGroups = len(groups)

	for _, o := range l.EntityObjects {
		s.Entities[o.Kind.String()]++
	}
	s.EntityTypes, s.Categories = entityTypes(l)
	for i := range l.Entities {
		if _, ok := l.PickupSprite(&l.Entities[i]); ok {
			s.Pickups++
		}
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s)
}

// entityTypes counts placed entities by type name and by category. Versions
// without a type table report nothing.
func entityTypes(l *trlevel.Level) (types, categories map[string]int) {
	for i := range l.Entities {
		e := &l.Entities[i]
		name, ok := e.TypeName(l.Version)
		if !ok {
			continue
		}
		if types == nil {
			types, categories = map[string]int{}, map[string]int{}
		}
		types[name]++
		for _, c := range e.Categories(l.Version).Names() {
			categories[c]++
		}
	}
	return types, categories
}

// meshHash fingerprints a mesh's decoded content.
func meshHash(m *trlevel.Mesh) uint64 {
	d := xxhash.New()
	binary.Write(d, binary.LittleEndian, m.Centre)
	binary.Write(d, binary.LittleEndian, m.CollisionRadius)
	binary.Write(d, binary.LittleEndian, m.Vertices)
	switch s := m.Shading.(type) {
	case trlevel.Normals:
		d.WriteString("n")
		binary.Write(d, binary.LittleEndian, []trlevel.Vertex(s))
	case trlevel.Lights:
		d.WriteString("l")
		binary.Write(d, binary.LittleEndian, []int16(s))
	}
	binary.Write(d, binary.LittleEndian, m.TexturedRectangles)
	binary.Write(d, binary.LittleEndian, m.TexturedTriangles)
	binary.Write(d, binary.LittleEndian, m.ColouredRectangles)
	binary.Write(d, binary.LittleEndian, m.ColouredTriangles)
	return d.Sum64()
}

// exportMesh writes the faces of one mesh as a single glTF primitive. The
// level's Y axis points down, so it is flipped.
func exportMesh(l *trlevel.Level, index int, outPath string) error {
	m := l.Mesh(index)
	if m == nil {
		return fmt.Errorf("no mesh %d (level has %d)", index, len(l.Meshes))
	}

	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.X), -float32(v.Y), float32(v.Z)}
	}

	var indices []uint32
	addTriangle := func(a, b, c uint16) {
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			return
		}
		indices = append(indices, uint32(a), uint32(b), uint32(c))
	}
	for _, faces := range [][]trlevel.Face4{m.TexturedRectangles, m.ColouredRectangles} {
		for _, f := range faces {
			addTriangle(f.Vertices[0], f.Vertices[1], f.Vertices[2])
			addTriangle(f.Vertices[0], f.Vertices[2], f.Vertices[3])
		}
	}
	for _, faces := range [][]trlevel.Face3{m.TexturedTriangles, m.ColouredTriangles} {
		for _, f := range faces {
			addTriangle(f.Vertices[0], f.Vertices[1], f.Vertices[2])
		}
	}
	if len(indices) == 0 {
		return fmt.Errorf("mesh %d has no faces", index)
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "trdump"

	posAccessor := modeler.WritePosition(doc, positions)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	meshGltf := &gltf.Mesh{Name: fmt.Sprintf("Mesh%d", index), Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0)}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, outPath); err != nil {
		return err
	}
	log.Printf("Wrote mesh %d (%d vertices, %d triangles) to %v", index, len(positions), len(indices)/3, outPath)
	return nil
}
