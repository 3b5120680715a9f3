package trlevel

import (
	"bytes"
	"encoding/binary"
)

// levelWriter encodes a Level back into the file layout so tests can build
// inputs from values.
type levelWriter struct {
	bytes.Buffer
	f format
}

func (w *levelWriter) put(v any) {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		panic(err)
	}
}

// offsets are input positions the tests corrupt or expect in errors.
type offsets struct {
	afterRoomCount int
	roomDataWords  []int
	sectors        []int
	meshData       int
	meshPointers   int
	models         int
	entities       int
	zones          int
}

func encodeLevel(l *Level) ([]byte, offsets) {
	w := &levelWriter{f: formats[l.Version]}
	var at offsets

	w.put(uint32(l.Version))
	if w.f.leadingPalettes {
		w.put(l.Palette)
		w.put(*l.Palette16)
	}

	w.put(uint32(len(l.Textiles)))
	w.put(l.Textiles)
	if w.f.textile16 {
		w.put(l.Textiles16)
	}
	w.put(uint32(0))

	w.put(uint16(len(l.Rooms)))
	at.afterRoomCount = w.Len()
	for i := range l.Rooms {
		w.writeRoom(&l.Rooms[i], &at)
	}

	w.put(uint32(len(l.FloorData)))
	w.put(l.FloorData)

	w.put(uint32(len(l.MeshData) / 2))
	at.meshData = w.Len()
	w.put(l.MeshData)
	w.put(uint32(len(l.MeshPointers)))
	at.meshPointers = w.Len()
	w.put(l.MeshPointers)

	w.put(uint32(len(l.Animations)))
	w.put(l.Animations)
	w.put(uint32(len(l.StateChanges)))
	w.put(l.StateChanges)
	w.put(uint32(len(l.AnimDispatches)))
	w.put(l.AnimDispatches)
	w.put(uint32(len(l.AnimCommands)))
	w.put(l.AnimCommands)
	w.put(uint32(len(l.MeshTrees)))
	w.put(l.MeshTrees)
	w.put(uint32(len(l.Frames)))
	w.put(l.Frames)
	w.put(uint32(len(l.Models)))
	at.models = w.Len()
	w.put(l.Models)

	w.put(uint32(len(l.StaticMeshes)))
	w.put(l.StaticMeshes)
	if !w.f.objectTexturesLate {
		w.put(uint32(len(l.ObjectTextures)))
		w.put(l.ObjectTextures)
	}
	w.put(uint32(len(l.SpriteTextures)))
	w.put(l.SpriteTextures)
	w.put(uint32(len(l.SpriteSequences)))
	w.put(l.SpriteSequences)
	w.put(uint32(len(l.Cameras)))
	w.put(l.Cameras)
	w.put(uint32(len(l.SoundSources)))
	w.put(l.SoundSources)

	w.put(uint32(len(l.Boxes)))
	for _, b := range l.Boxes {
		if w.f.gen == tr1 {
			w.put(binBox1(b))
		} else {
			w.put(binBox2{
				Zmin: uint8(b.Zmin), Zmax: uint8(b.Zmax),
				Xmin: uint8(b.Xmin), Xmax: uint8(b.Xmax),
				TrueFloor: b.TrueFloor, OverlapIndex: b.OverlapIndex,
			})
		}
	}
	w.put(uint32(len(l.Overlaps)))
	w.put(l.Overlaps)
	at.zones = w.Len()
	for _, a := range l.Zones.arrays(w.f.zoneArrays) {
		w.put(*a)
	}

	w.put(uint32(len(l.AnimatedTextures)))
	w.put(l.AnimatedTextures)
	if w.f.objectTexturesLate {
		w.put(uint32(len(l.ObjectTextures)))
		w.put(l.ObjectTextures)
	}

	w.put(uint32(len(l.Entities)))
	at.entities = w.Len()
	for _, e := range l.Entities {
		if w.f.gen == tr1 {
			w.put(binEntity1{
				TypeID: e.TypeID, Room: e.Room, Position: e.Position,
				Angle: e.Angle, Intensity1: e.Intensity1, Flags: e.Flags,
			})
		} else {
			w.put(binEntity2(e))
		}
	}

	w.put(l.LightMap)
	if w.f.trailingPalette {
		w.put(l.Palette)
	}
	w.put(uint16(len(l.CinematicFrames)))
	w.put(l.CinematicFrames)
	w.put(uint16(len(l.DemoData)))
	w.put(l.DemoData)
	w.put(l.SoundMap)
	w.put(uint32(len(l.SoundDetails)))
	w.put(l.SoundDetails)
	if w.f.samples {
		w.put(uint32(len(l.Samples)))
		w.put(l.Samples)
	}
	w.put(uint32(len(l.SampleIndices)))
	w.put(l.SampleIndices)

	return w.Bytes(), at
}

func (w *levelWriter) writeRoom(r *Room, at *offsets) {
	w.put(r.Info)
	at.roomDataWords = append(at.roomDataWords, w.Len())
	w.put(uint32(len(r.Data)))
	w.put(r.Data)

	w.put(uint16(len(r.Portals)))
	w.put(r.Portals)
	w.put(r.NumZSectors)
	w.put(r.NumXSectors)
	at.sectors = append(at.sectors, w.Len())
	w.put(r.Sectors)

	w.put(r.AmbientIntensity)
	if w.f.ambient2 {
		w.put(r.AmbientIntensity2)
	}
	if w.f.lightMode {
		w.put(r.LightMode)
	}

	w.put(uint16(len(r.Lights)))
	for _, li := range r.Lights {
		switch w.f.gen {
		case tr1:
			w.put(binRoomLight1{Position: li.Position, Intensity: uint16(li.Intensity1), Fade: uint32(li.Fade1)})
		case tr2:
			w.put(binRoomLight2{
				Position:   li.Position,
				Intensity1: uint16(li.Intensity1), Intensity2: uint16(li.Intensity2),
				Fade1: uint32(li.Fade1), Fade2: uint32(li.Fade2),
			})
		default:
			w.put(binRoomLight3{Position: li.Position, Colour: li.Colour, Type: li.Type, Data1: li.Intensity1, Data2: li.Fade1})
		}
	}

	w.put(uint16(len(r.StaticMeshes)))
	for _, s := range r.StaticMeshes {
		if w.f.gen == tr1 {
			w.put(binRoomStaticMesh1{Position: s.Position, Rotation: s.Rotation, Intensity1: s.Intensity1, MeshID: s.MeshID})
		} else {
			w.put(binRoomStaticMesh2(s))
		}
	}

	w.put(r.AlternateRoom)
	w.put(r.Flags)
	if w.f.roomTrailer {
		w.put([3]uint8{r.WaterScheme, r.ReverbInfo, r.Filler})
	}
}

// roomWords encodes room geometry as the data words stored in the file.
func roomWords(rd RoomData, gen generation) []uint16 {
	w := &levelWriter{}
	w.put(uint16(len(rd.Vertices)))
	for _, v := range rd.Vertices {
		if gen == tr1 {
			w.put(binRoomVertex1{Vertex: v.Vertex, Lighting: v.Lighting})
		} else {
			w.put(binRoomVertex2(v))
		}
	}
	w.put(uint16(len(rd.Rectangles)))
	w.put(rd.Rectangles)
	w.put(uint16(len(rd.Triangles)))
	w.put(rd.Triangles)
	w.put(uint16(len(rd.Sprites)))
	w.put(rd.Sprites)

	words := make([]uint16, w.Len()/2)
	binary.Decode(w.Bytes(), binary.LittleEndian, words)
	return words
}

// encodeMesh encodes one mesh record as it appears in the mesh blob.
func encodeMesh(m *Mesh) []byte {
	w := &levelWriter{}
	w.put(binMeshHeader{Centre: m.Centre, CollisionRadius: m.CollisionRadius})
	w.put(int16(len(m.Vertices)))
	w.put(m.Vertices)
	switch s := m.Shading.(type) {
	case Normals:
		w.put(int16(len(s)))
		w.put([]Vertex(s))
	case Lights:
		w.put(int16(-len(s)))
		w.put([]int16(s))
	}
	w.put(int16(len(m.TexturedRectangles)))
	w.put(m.TexturedRectangles)
	w.put(int16(len(m.TexturedTriangles)))
	w.put(m.TexturedTriangles)
	w.put(int16(len(m.ColouredRectangles)))
	w.put(m.ColouredRectangles)
	w.put(int16(len(m.ColouredTriangles)))
	w.put(m.ColouredTriangles)
	return w.Bytes()
}
