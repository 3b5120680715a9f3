package trlevel

import "bytes"

var testVersions = []Version{VersionTR1, VersionTR2, VersionTR3, VersionTR3Gold}

var (
	normalsMesh = &Mesh{
		Centre:          Vertex{1, 2, 3},
		CollisionRadius: 300,
		Vertices:        []Vertex{{0, 0, 0}, {100, 0, 0}, {0, -100, 0}},
		Shading:         Normals{{0, 0, 16384}, {0, 0, 16384}, {0, 0, 16384}},
		TexturedTriangles: []Face3{
			{Vertices: [3]uint16{0, 1, 2}, Texture: 0},
		},
	}
	lightsMesh = &Mesh{
		Centre:          Vertex{-5, 0, 5},
		CollisionRadius: 128,
		Vertices:        []Vertex{{0, 0, 0}, {64, 0, 0}, {64, 64, 0}, {0, 64, 0}},
		Shading:         Lights{4096, 4096, 8191, 0},
		ColouredRectangles: []Face4{
			{Vertices: [4]uint16{0, 1, 2, 3}, Texture: 12},
		},
	}
)

// testLevel builds a small level in which every table has a row and every
// reference resolves.
func testLevel(v Version) *Level {
	f := formats[v]
	l := &Level{Version: v}

	l.Palette[0] = Colour{63, 0, 0}
	l.Palette[255] = Colour{1, 2, 3}
	if f.leadingPalettes {
		l.Palette16 = new(Palette16)
		l.Palette16[7] = Colour4{10, 20, 30, 0}
	}

	l.Rooms = []Room{testRoom(f, 0), testRoom(f, 1)}
	l.FloorData = []uint16{0, 0x8001, 0x0004}

	// The first mesh is pointed at twice
	blob := append(encodeMesh(normalsMesh), encodeMesh(lightsMesh)...)
	l.MeshData = blob
	second := uint32(len(encodeMesh(normalsMesh)))
	l.MeshPointers = []uint32{0, second, 0}
	l.Meshes = []*Mesh{normalsMesh, lightsMesh, normalsMesh}

	l.Animations = []Animation{{
		FrameOffset:       0,
		FrameRate:         1,
		FrameSize:         12,
		StateID:           2,
		Speed:             3 << 16,
		Accel:             -(1 << 15),
		FrameStart:        0,
		FrameEnd:          1,
		NextAnimation:     0,
		NextFrame:         0,
		NumStateChanges:   1,
		StateChangeOffset: 0,
		NumAnimCommands:   1,
		AnimCommand:       0,
	}}
	l.StateChanges = []StateChange{{StateID: 1, NumAnimDispatches: 1, AnimDispatch: 0}}
	l.AnimDispatches = []AnimDispatch{{Low: 0, High: 5, NextAnimation: 0, NextFrame: 0}}
	l.AnimCommands = []int16{1, 0, 0, 0}
	l.MeshTrees = []int32{
		0, 0, 100, 0,
		2, 50, 0, 0,
	}
	l.Frames = []uint16{
		0xFF00, 0x0100, 0xFE00, 0x0000, 0xFF80, 0x0080,
		0, 0, 0, 0, 0, 0,
	}
	l.Models = []Model{{ID: 0, NumMeshes: 3, StartingMesh: 0, MeshTree: 0, FrameOffset: 0, Animation: 0}}

	l.StaticMeshes = []StaticMesh{{
		ID:         5,
		Mesh:       1,
		Visibility: BoundingBox{-10, 10, -20, 0, -10, 10},
		Collision:  BoundingBox{-8, 8, -16, 0, -8, 8},
		Flags:      2,
	}}
	l.ObjectTextures = []ObjectTexture{{
		Attribute:   1,
		TileAndFlag: 0,
		Vertices: [4]ObjectTextureVertex{
			{1, 0, 1, 0}, {1, 255, 1, 0}, {1, 255, 1, 255}, {0, 0, 0, 0},
		},
	}}
	l.SpriteTextures = []SpriteTexture{{Tile: 0, X: 4, Y: 8, Width: 0x1F00, Height: 0x1F00, LeftSide: -64, TopSide: -128, RightSide: 64, BottomSide: 0}}
	l.SpriteSequences = []SpriteSequence{{SpriteID: 190, NegativeLength: -1, Offset: 0}}
	l.Cameras = []Camera{{Position: Vector32{1024, -512, 2048}, Room: 1, Flag: 0}}
	l.SoundSources = []SoundSource{{Position: Vector32{512, 0, 512}, SoundID: 3, Flags: 0x80}}

	l.Boxes = []Box{
		{Zmin: 1, Zmax: 3, Xmin: 1, Xmax: 2, TrueFloor: -256, OverlapIndex: 0},
		{Zmin: 3, Zmax: 5, Xmin: 2, Xmax: 4, TrueFloor: 0, OverlapIndex: 0x8001},
	}
	l.Overlaps = []uint16{1, 0x8000}
	for i, a := range l.Zones.arrays(f.zoneArrays) {
		n := uint16(10 * i)
		*a = []uint16{n, n + 1, n + 2, n + 3}
	}

	l.AnimatedTextures = []uint16{1, 1, 0, 0}
	l.Entities = []Entity{
		{TypeID: 0, Room: 0, Position: Vector32{1536, 0, 1536}, Angle: 0x4000, Intensity1: -1, Flags: 0x3E00},
		{TypeID: 190, Room: 1, Position: Vector32{2560, -256, 512}, Angle: -0x8000, Intensity1: 4096, Flags: 0},
	}
	if f.gen != tr1 {
		l.Entities[1].Intensity2 = 4096
	}
	l.EntityObjects = []EntityObject{
		{Kind: ObjectModel, Index: 0},
		{Kind: ObjectSpriteSequence, Index: 0},
	}

	l.LightMap[0][1] = 1
	l.LightMap[31][255] = 200
	l.CinematicFrames = []CinematicFrame{{TargetX: 1, TargetY: 2, TargetZ: 3, PosZ: 4, PosY: 5, PosX: 6, FOV: 80, Roll: 0}}
	l.DemoData = []byte{9, 8, 7}
	l.SoundMap = make([]int16, f.soundMapSize)
	for i := range l.SoundMap {
		l.SoundMap[i] = -1
	}
	l.SoundMap[0] = 0
	l.SoundDetails = []SoundDetails{{Sample: 0, Volume: 0x7FFF, Chance: 0, Characteristics: 1}}
	if f.samples {
		l.Samples = []byte("RIFF")
	}
	l.SampleIndices = []uint32{0}
	return l
}

func testRoom(f format, i int) Room {
	r := Room{
		Info:          RoomInfo{X: int32(i) * 4096, Z: 0, YBottom: 0, YTop: -1024},
		AlternateRoom: -1,
		Flags:         0,
	}

	if i == 0 {
		r.Geometry = RoomData{
			Vertices: []RoomVertex{
				{Vertex: Vertex{0, 0, 0}, Lighting: 4096},
				{Vertex: Vertex{1024, 0, 0}, Lighting: 4096},
				{Vertex: Vertex{1024, 0, 1024}, Lighting: 8191},
				{Vertex: Vertex{0, -1024, 1024}, Lighting: 0},
			},
			Rectangles: []Face4{{Vertices: [4]uint16{0, 1, 2, 3}, Texture: 0}},
			Triangles:  []Face3{{Vertices: [3]uint16{0, 1, 2}, Texture: 0}},
			Sprites:    []RoomSprite{{Vertex: 3, Texture: 0}},
		}
		if f.gen != tr1 {
			r.Geometry.Vertices[2].Attributes = 0x8000
			r.Geometry.Vertices[2].Shade = 0x7FFF
		}
		r.Portals = []Portal{{
			AdjoiningRoom: 1,
			Normal:        Vertex{-1, 0, 0},
			Vertices:      [4]Vertex{{1024, 0, 0}, {1024, 0, 1024}, {1024, -1024, 1024}, {1024, -1024, 0}},
		}}
		r.NumZSectors, r.NumXSectors = 1, 2
		box0 := uint16(0)
		if f.packedBoxIndex {
			box0 = 0<<4 | 0x2
		}
		noBoxRaw := uint16(noBox)
		if f.packedBoxIndex {
			noBoxRaw = noPackedBox<<4 | 0x5
		}
		r.Sectors = []Sector{
			{FloorDataIndex: 1, BoxIndex: box0, RoomBelow: noRoom8, Floor: 0, RoomAbove: 1, Ceiling: -4},
			{FloorDataIndex: 0, BoxIndex: noBoxRaw, RoomBelow: noRoom8, Floor: -127, RoomAbove: noRoom8, Ceiling: -127},
		}
		r.AlternateRoom = 1
		r.StaticMeshes = []RoomStaticMesh{{Position: Vector32{512, 0, 512}, Rotation: 0x4000, Intensity1: 0x1000, MeshID: 5}}

		light := RoomLight{Position: Vector32{512, -512, 512}, Intensity1: 4000, Fade1: 8000}
		switch f.gen {
		case tr2:
			light.Intensity2 = 3000
			light.Fade2 = 6000
			r.StaticMeshes[0].Intensity2 = 0x0800
		case tr3:
			light.Colour = Colour{255, 128, 0}
			light.Type = 1
			r.StaticMeshes[0].Intensity2 = 0x0800
		}
		r.Lights = []RoomLight{light}
	} else {
		r.NumZSectors, r.NumXSectors = 1, 1
		r.Sectors = []Sector{{BoxIndex: noBox, RoomBelow: noRoom8, RoomAbove: noRoom8}}
		if f.packedBoxIndex {
			r.Sectors[0].BoxIndex = noPackedBox << 4
		}
	}

	r.Data = roomWords(r.Geometry, f.gen)
	r.AmbientIntensity = 0x1800
	if f.ambient2 {
		r.AmbientIntensity2 = 0x1000
	}
	if f.lightMode {
		r.LightMode = 1
	}
	if f.roomTrailer {
		r.WaterScheme, r.ReverbInfo, r.Filler = 1, 2, 0
	}
	return r
}

// emptyLevel has every counted table empty.
func emptyLevel(v Version) *Level {
	f := formats[v]
	l := &Level{Version: v}
	if f.leadingPalettes {
		l.Palette16 = new(Palette16)
	}
	l.SoundMap = make([]int16, f.soundMapSize)
	return l
}

// withTextiles adds one textile with a recognisable pattern.
func withTextiles(l *Level) *Level {
	var t Textile
	for i := range t {
		t[i] = byte(i % 251)
	}
	l.Textiles = []Textile{t}
	if formats[l.Version].textile16 {
		var t16 Textile16
		for i := range t16 {
			t16[i] = uint16(i)
		}
		l.Textiles16 = []Textile16{t16}
	}
	return l
}

// corrupt returns a copy of data with a little-endian value written at off.
func corrupt(data []byte, off int, v any) []byte {
	out := bytes.Clone(data)
	w := &levelWriter{}
	w.put(v)
	copy(out[off:], w.Bytes())
	return out
}
