package trlevel

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"github.com/cespare/xxhash/v2"
)

// Stage is a step of decoding. Errors record the stage they happened in.
type Stage int

const (
	StageUnknown Stage = iota
	StageReadHeader
	StageReadTextiles
	StageReadRooms
	StageReadFloorData
	StageReadMeshBlob
	StageReadAnimationTables
	StageReadObjectTables
	StageReadPaletteAudio
	StageResolve
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageUnknown:             "unknown stage",
	StageReadHeader:          "read header",
	StageReadTextiles:        "read textiles",
	StageReadRooms:           "read rooms",
	StageReadFloorData:       "read floor data",
	StageReadMeshBlob:        "read mesh blob",
	StageReadAnimationTables: "read animation tables",
	StageReadObjectTables:    "read object tables",
	StageReadPaletteAudio:    "read palette and audio",
	StageResolve:             "resolve",
	StageDone:                "done",
	StageFailed:              "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Options tune decoding.
type Options struct {
	// Workers bounds the goroutines used to resolve cross references.
	// Zero or less means runtime.GOMAXPROCS(0).
	Workers int
}

func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// layout records input offsets of tables the resolver reports errors
// against. It is dropped once Decode returns.
type layout struct {
	rooms        []roomLayout
	meshData     int
	meshPointers int
	animations   int
	stateChanges int
	models       int
	staticMeshes int
	entities     int
	entitySize   int
}

type decoder struct {
	c      *cursor
	f      format
	layout layout
	opts   Options
}

type step struct {
	stage Stage
	run   func(*Level) error
}

// Decode decodes a complete level file using DefaultOptions.
func Decode(data []byte) (*Level, error) {
	return DecodeWithOptions(data, DefaultOptions())
}

// DecodeWithOptions decodes a complete level file. On error the returned
// Level is nil and the error is a *DecodeError.
func DecodeWithOptions(data []byte, opts Options) (*Level, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	d := &decoder{c: newCursor(data), opts: opts}
	l := &Level{}

	steps := []step{
		{StageReadHeader, d.readHeader},
		{StageReadTextiles, d.readTextiles},
		{StageReadRooms, d.readRooms},
		{StageReadFloorData, d.readFloorData},
		{StageReadMeshBlob, d.readMeshBlob},
		{StageReadAnimationTables, d.readAnimationTables},
		{StageReadObjectTables, d.readObjectTables},
		{StageReadPaletteAudio, d.readPaletteAudio},
		{StageResolve, d.resolve},
	}
	for _, s := range steps {
		if err := s.run(l); err != nil {
			logger.Printf("Decode %v: %v", StageFailed, err)
			return nil, withStage(err, s.stage)
		}
	}

	if n := d.c.remaining(); n > 0 {
		logger.Printf("Ignoring %v trailing bytes", n)
	}
	l.Checksum = xxhash.Sum64(data)
	l.format = d.f
	logger.Printf("Decode %v: %v", StageDone, l.Version)
	return l, nil
}

// Open reads and decodes the level file at path.
func Open(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (d *decoder) readHeader(l *Level) error {
	logger.Println("Reading Header ...")
	v, err := d.c.u32()
	if err != nil {
		return err
	}
	f, ok := lookupFormat(Version(v))
	if !ok {
		return newError(ErrUnsupportedVersion, 0, "version tag %#x", v)
	}
	l.Version, d.f = Version(v), f

	if f.leadingPalettes {
		if err := d.c.read(&l.Palette); err != nil {
			return err
		}
		l.Palette16 = new(Palette16)
		if err := d.c.read(l.Palette16); err != nil {
			return err
		}
	}
	logger.Printf("Read header: %v", l.Version)
	return nil
}

func (d *decoder) readTextiles(l *Level) error {
	logger.Println("Reading Textiles ...")
	n, err := d.c.u32()
	if err != nil {
		return err
	}
	if l.Textiles, err = readArray[Textile](d.c, int(n)); err != nil {
		return err
	}
	if d.f.textile16 {
		if l.Textiles16, err = readArray[Textile16](d.c, int(n)); err != nil {
			return err
		}
	}
	// Unused
	if _, err := d.c.u32(); err != nil {
		return err
	}
	logger.Printf("Read %v textiles", len(l.Textiles))
	return nil
}

func (d *decoder) readFloorData(l *Level) error {
	logger.Println("Reading FloorData ...")
	var err error
	if l.FloorData, err = readCounted[uint16, uint32](d.c); err != nil {
		return err
	}
	logger.Printf("Read %v floor data words", len(l.FloorData))
	return nil
}

// readMeshBlob keeps the mesh blob as raw bytes. The pointers are only
// dereferenced once everything has been read.
func (d *decoder) readMeshBlob(l *Level) error {
	logger.Println("Reading Mesh Data ...")
	words, err := d.c.u32()
	if err != nil {
		return err
	}
	d.layout.meshData = d.c.pos()
	blob, err := d.c.readFixed(mulSat(int(words), 2))
	if err != nil {
		return err
	}
	if len(blob) > 0 {
		l.MeshData = bytes.Clone(blob)
	}

	d.layout.meshPointers = d.c.pos() + 4
	if l.MeshPointers, err = readCounted[uint32, uint32](d.c); err != nil {
		return err
	}
	logger.Printf("Read %v bytes of mesh data, %v mesh pointers", len(l.MeshData), len(l.MeshPointers))
	return nil
}
