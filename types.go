// Package trlevel decodes Tomb Raider 1, 2 and 3 level files (.PHD, .TR2) into
// a fully resolved, read-only scene model. The layout is documented in the
// TRosettaStone: https://opentomb.github.io/TRosettaStone3/trosettastone.html
//
// Every table in a Level is a flat slice. Relationships between tables are the
// integer indices and offsets stored in the file; Decode checks that every one
// of them lands inside its target table before returning the Level.
package trlevel

// Level is a decoded level file. It is never modified after Decode returns it.
type Level struct {
	Version Version

	Textiles   []Textile
	Textiles16 []Textile16 // TR2+
	Palette    Palette
	Palette16  *Palette16 // TR2+

	Rooms     []Room
	FloorData []uint16

	// MeshData is the raw mesh blob. MeshPointers are byte offsets into it and
	// Meshes holds the decoded record for each pointer. Pointers with the same
	// offset share one *Mesh.
	MeshData     []byte
	MeshPointers []uint32
	Meshes       []*Mesh

	Animations     []Animation
	StateChanges   []StateChange
	AnimDispatches []AnimDispatch
	AnimCommands   []int16
	MeshTrees      []int32 // mesh tree nodes, four words each
	Frames         []uint16
	Models         []Model

	StaticMeshes     []StaticMesh
	ObjectTextures   []ObjectTexture
	SpriteTextures   []SpriteTexture
	SpriteSequences  []SpriteSequence
	Cameras          []Camera
	SoundSources     []SoundSource
	Boxes            []Box
	Overlaps         []uint16
	Zones            Zones
	AnimatedTextures []uint16
	Entities         []Entity
	EntityObjects    []EntityObject // parallel to Entities

	LightMap        LightMap
	CinematicFrames []CinematicFrame
	DemoData        []byte
	SoundMap        []int16
	SoundDetails    []SoundDetails
	Samples         []byte // TR1 only
	SampleIndices   []uint32

	// Checksum is the xxhash64 of the input the level was decoded from.
	Checksum uint64

	format format
}

const TextileWidth, TextileHeight = 256, 256

// Textile is a 256x256 tile of palette indices.
type Textile [TextileWidth * TextileHeight]byte

// At returns the palette index at (x, y).
func (t *Textile) At(x, y int) byte {
	return t[y*TextileWidth+x]
}

// Textile16 is a 256x256 tile of ARGB1555 pixels.
type Textile16 [TextileWidth * TextileHeight]uint16

type Colour struct {
	Red, Green, Blue uint8
}

type Colour4 struct {
	Red, Green, Blue, Unused uint8
}

// Palette colours are 6 bits per channel.
type Palette [256]Colour

type Palette16 [256]Colour4

// LightMap holds 32 brightness levels of 256 palette remaps.
type LightMap [32][256]byte

type Vertex struct {
	X, Y, Z int16
}

type Vector32 struct {
	X, Y, Z int32
}

// Face4 is a quad. Vertices index into the owning room or mesh vertex list.
// Texture is an object texture index, or a palette index for coloured faces.
type Face4 struct {
	Vertices [4]uint16
	Texture  uint16
}

type Face3 struct {
	Vertices [3]uint16
	Texture  uint16
}

type BoundingBox struct {
	MinX, MaxX int16
	MinY, MaxY int16
	MinZ, MaxZ int16
}

// Rooms

type Room struct {
	Info RoomInfo

	// Data is the room's raw word array; Geometry is the same bytes decoded.
	Data     []uint16
	Geometry RoomData

	Portals     []Portal
	NumZSectors uint16
	NumXSectors uint16
	Sectors     []Sector // NumXSectors*NumZSectors, row-major by x

	AmbientIntensity  int16
	AmbientIntensity2 int16 // TR2
	LightMode         int16 // TR2+
	Lights            []RoomLight
	StaticMeshes      []RoomStaticMesh
	AlternateRoom     int16 // -1 if none
	Flags             int16

	// TR3 trailer
	WaterScheme uint8
	ReverbInfo  uint8
	Filler      uint8
}

// Sector returns the sector at column x, row z of the room's grid.
func (r *Room) Sector(x, z int) (*Sector, bool) {
	if x < 0 || z < 0 || x >= int(r.NumXSectors) || z >= int(r.NumZSectors) {
		return nil, false
	}
	return &r.Sectors[x*int(r.NumZSectors)+z], true
}

// RoomInfo places a room in world coordinates.
type RoomInfo struct {
	X, Z          int32
	YBottom, YTop int32
}

type RoomData struct {
	Vertices   []RoomVertex
	Rectangles []Face4
	Triangles  []Face3
	Sprites    []RoomSprite
}

// RoomVertex is 8 bytes in TR1 and 12 in TR2+. Shade is the second lighting
// value in TR2 and a 15-bit colour in TR3.
type RoomVertex struct {
	Vertex     Vertex
	Lighting   int16
	Attributes uint16
	Shade      uint16
}

type RoomSprite struct {
	Vertex  int16
	Texture int16
}

type Portal struct {
	AdjoiningRoom uint16
	Normal        Vertex
	Vertices      [4]Vertex
}

// Sector is one 1024x1024 column of a room.
type Sector struct {
	FloorDataIndex uint16 // 0 if none
	BoxIndex       uint16 // 0xFFFF if none; TR3 packs a material in bits 0-3
	RoomBelow      uint8  // 255 if none
	Floor          int8
	RoomAbove      uint8 // 255 if none
	Ceiling        int8
}

// RoomLight covers all three generations. TR1 uses Intensity1 and Fade1, TR2
// adds Intensity2 and Fade2, TR3 has Colour and Type and keeps the two words
// of its type-specific data in Intensity1 and Fade1.
type RoomLight struct {
	Position   Vector32
	Colour     Colour
	Type       uint8
	Intensity1 int32
	Intensity2 int32
	Fade1      int32
	Fade2      int32
}

type RoomStaticMesh struct {
	Position   Vector32
	Rotation   uint16
	Intensity1 uint16
	Intensity2 uint16 // TR2+
	MeshID     uint16
}

// Meshes

// Mesh is one record from the mesh blob. Shading is either Normals, one per
// vertex, or Lights, one intensity per vertex.
type Mesh struct {
	Centre          Vertex
	CollisionRadius int32
	Vertices        []Vertex
	Shading         Shading

	TexturedRectangles []Face4
	TexturedTriangles  []Face3
	ColouredRectangles []Face4
	ColouredTriangles  []Face3
}

// Shading is implemented only by Normals and Lights.
type Shading interface {
	Len() int
	shading()
}

type Normals []Vertex

type Lights []int16

func (n Normals) Len() int { return len(n) }
func (l Lights) Len() int  { return len(l) }

func (Normals) shading() {}
func (Lights) shading()  {}

// Animation tables

type Animation struct {
	FrameOffset       uint32 // byte offset into Frames
	FrameRate         uint8
	FrameSize         uint8 // words per frame
	StateID           uint16
	Speed             int32 // 16.16 fixed point
	Accel             int32 // 16.16 fixed point
	FrameStart        uint16
	FrameEnd          uint16
	NextAnimation     uint16
	NextFrame         uint16
	NumStateChanges   uint16
	StateChangeOffset uint16
	NumAnimCommands   uint16
	AnimCommand       uint16
}

func (a *Animation) SpeedValue() float64 {
	return fixedToFloat(a.Speed)
}

func (a *Animation) AccelValue() float64 {
	return fixedToFloat(a.Accel)
}

type StateChange struct {
	StateID           uint16
	NumAnimDispatches uint16
	AnimDispatch      uint16
}

type AnimDispatch struct {
	Low           int16
	High          int16
	NextAnimation int16
	NextFrame     int16
}

// Model is an animated object: a run of meshes, their tree and animations.
type Model struct {
	ID           uint32
	NumMeshes    uint16
	StartingMesh uint16 // index into MeshPointers
	MeshTree     uint32 // index into MeshTrees
	FrameOffset  uint32 // byte offset into Frames
	Animation    uint16 // 0xFFFF if none
}

// Object tables

type StaticMesh struct {
	ID         uint32
	Mesh       uint16 // index into MeshPointers
	Visibility BoundingBox
	Collision  BoundingBox
	Flags      uint16
}

type ObjectTextureVertex struct {
	XCoordinate uint8
	XPixel      uint8
	YCoordinate uint8
	YPixel      uint8
}

type ObjectTexture struct {
	Attribute   uint16
	TileAndFlag uint16
	Vertices    [4]ObjectTextureVertex
}

type SpriteTexture struct {
	Tile          uint16
	X, Y          uint8
	Width, Height uint16
	LeftSide      int16
	TopSide       int16
	RightSide     int16
	BottomSide    int16
}

type SpriteSequence struct {
	SpriteID       int32
	NegativeLength int16
	Offset         int16
}

type Camera struct {
	Position Vector32
	Room     int16
	Flag     uint16
}

type SoundSource struct {
	Position Vector32
	SoundID  uint16
	Flags    uint16
}

// Box is a navigation volume. TR1 stores the extents in world units, TR2+ in
// sectors.
type Box struct {
	Zmin, Zmax   int32
	Xmin, Xmax   int32
	TrueFloor    int16
	OverlapIndex uint16
}

// Zones are parallel to Boxes. TR1 has the Ground1, Ground2 and Fly arrays
// and their alternates; TR2+ add Ground3 and Ground4.
type Zones struct {
	Ground1, Ground2, Ground3, Ground4, Fly                []uint16
	Ground1Alt, Ground2Alt, Ground3Alt, Ground4Alt, FlyAlt []uint16
}

type Entity struct {
	TypeID     int16
	Room       int16
	Position   Vector32
	Angle      int16
	Intensity1 int16
	Intensity2 int16 // TR2+
	Flags      uint16
}

// Radians returns the facing angle.
func (e *Entity) Radians() float64 {
	return angleToRadians(e.Angle)
}

// ObjectKind says which table an entity's type ID resolved to.
type ObjectKind int

const (
	ObjectModel ObjectKind = iota
	ObjectSpriteSequence
)

func (k ObjectKind) String() string {
	if k == ObjectSpriteSequence {
		return "sprite sequence"
	}
	return "model"
}

// EntityObject is the row an entity's type ID resolved to.
type EntityObject struct {
	Kind  ObjectKind
	Index int
}

type CinematicFrame struct {
	TargetX, TargetY, TargetZ int16
	PosZ, PosY, PosX          int16
	FOV                       int16
	Roll                      int16
}

type SoundDetails struct {
	Sample          uint16
	Volume          uint16
	Chance          uint16
	Characteristics uint16
}
