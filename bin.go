package trlevel

// On-disk records whose layout differs between generations. Records that are
// identical in every version are decoded straight into the exported types.

type binRoomVertex1 struct {
	Vertex   Vertex
	Lighting int16
}

type binRoomVertex2 struct {
	Vertex     Vertex
	Lighting   int16
	Attributes uint16
	Shade      uint16
}

type binRoomLight1 struct {
	Position  Vector32
	Intensity uint16
	Fade      uint32
}

type binRoomLight2 struct {
	Position   Vector32
	Intensity1 uint16
	Intensity2 uint16
	Fade1      uint32
	Fade2      uint32
}

type binRoomLight3 struct {
	Position Vector32
	Colour   Colour
	Type     uint8
	Data1    int32
	Data2    int32
}

type binRoomStaticMesh1 struct {
	Position   Vector32
	Rotation   uint16
	Intensity1 uint16
	MeshID     uint16
}

type binRoomStaticMesh2 struct {
	Position   Vector32
	Rotation   uint16
	Intensity1 uint16
	Intensity2 uint16
	MeshID     uint16
}

type binBox1 struct {
	Zmin, Zmax   int32
	Xmin, Xmax   int32
	TrueFloor    int16
	OverlapIndex uint16
}

type binBox2 struct {
	Zmin, Zmax   uint8
	Xmin, Xmax   uint8
	TrueFloor    int16
	OverlapIndex uint16
}

type binEntity1 struct {
	TypeID     int16
	Room       int16
	Position   Vector32
	Angle      int16
	Intensity1 int16
	Flags      uint16
}

type binEntity2 struct {
	TypeID     int16
	Room       int16
	Position   Vector32
	Angle      int16
	Intensity1 int16
	Intensity2 int16
	Flags      uint16
}

type binMeshHeader struct {
	Centre          Vertex
	CollisionRadius int32
}

// Fixed record sizes, used when reporting the offset of a record.
const (
	sectorSize  = 8
	portalSize  = 32
	entitySize1 = 22
	entitySize2 = 24
	modelSize   = 18
	animSize    = 32
	stateSize   = 6
	staticSize  = 32
)
