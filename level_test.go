package trlevel

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
)

// decodeClean decodes data and clears the fields a test level cannot know.
func decodeClean(t *testing.T, data []byte) *Level {
	t.Helper()
	l, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if l.Checksum != xxhash.Sum64(data) {
		t.Errorf("checksum %#x, want %#x", l.Checksum, xxhash.Sum64(data))
	}
	l.Checksum = 0
	l.format = format{}
	return l
}

func compareLevels(t *testing.T, got, want *Level) {
	t.Helper()
	g, w := reflect.ValueOf(*got), reflect.ValueOf(*want)
	for i := 0; i < g.NumField(); i++ {
		name := g.Type().Field(i).Name
		if !g.Type().Field(i).IsExported() {
			continue
		}
		if !reflect.DeepEqual(g.Field(i).Interface(), w.Field(i).Interface()) {
			t.Errorf("%v: got %+v, want %+v", name, g.Field(i).Interface(), w.Field(i).Interface())
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, v := range testVersions {
		t.Run(v.String(), func(t *testing.T) {
			want := testLevel(v)
			data, _ := encodeLevel(want)
			got := decodeClean(t, data)
			compareLevels(t, got, want)

			if got.Meshes[0] != got.Meshes[2] {
				t.Errorf("mesh pointers with the same offset decoded to different meshes")
			}
			if got.Meshes[0] == got.Meshes[1] {
				t.Errorf("mesh pointers with different offsets share a mesh")
			}
		})
	}
}

func TestDecodeEmptyTables(t *testing.T) {
	for _, v := range testVersions {
		t.Run(v.String(), func(t *testing.T) {
			want := emptyLevel(v)
			data, _ := encodeLevel(want)
			got := decodeClean(t, data)
			compareLevels(t, got, want)
		})
	}
}

func TestDecodeTextiles(t *testing.T) {
	for _, v := range []Version{VersionTR1, VersionTR2} {
		want := withTextiles(emptyLevel(v))
		data, _ := encodeLevel(want)
		got := decodeClean(t, data)
		if len(got.Textiles) != 1 || got.Textiles[0] != want.Textiles[0] {
			t.Fatalf("%v: 8-bit textile did not round trip", v)
		}
		if got.Textiles[0].At(3, 1) != byte((TextileWidth+3)%251) {
			t.Errorf("%v: At(3, 1) = %v", v, got.Textiles[0].At(3, 1))
		}
		if !reflect.DeepEqual(got.Textiles16, want.Textiles16) {
			t.Errorf("%v: 16-bit textiles did not round trip", v)
		}
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	for _, tag := range [][]byte{
		[]byte("TR4\x00"),
		{0x21, 0, 0, 0},
		{0x38, 0x00, 0x08, 0x00},
	} {
		data := append(bytes.Clone(tag), make([]byte, 64)...)
		l, err := Decode(data)
		if l != nil {
			t.Errorf("%q: got a level", tag)
		}
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Fatalf("%q: got %v, want ErrUnsupportedVersion", tag, err)
		}
		var de *DecodeError
		if !errors.As(err, &de) || de.Offset != 0 || de.Stage != StageReadHeader {
			t.Errorf("%q: got %#v", tag, err)
		}
	}

	_, err := Decode(append([]byte("TR4\x00"), make([]byte, 64)...))
	if want := "version tag 0x345254"; err == nil || !strings.HasSuffix(err.Error(), want) {
		t.Errorf("got %v, want suffix %q", err, want)
	}
}

func TestDecodeTruncatedAfterRoomCount(t *testing.T) {
	for _, v := range testVersions {
		data, at := encodeLevel(testLevel(v))
		l, err := Decode(data[:at.afterRoomCount])
		if l != nil {
			t.Errorf("%v: got a level from truncated input", v)
		}
		if !errors.Is(err, ErrTruncatedInput) {
			t.Fatalf("%v: got %v, want ErrTruncatedInput", v, err)
		}
		var de *DecodeError
		errors.As(err, &de)
		if de.Offset != at.afterRoomCount {
			t.Errorf("%v: error offset %#x, want %#x", v, de.Offset, at.afterRoomCount)
		}
		if de.Stage != StageReadRooms {
			t.Errorf("%v: error stage %v, want %v", v, de.Stage, StageReadRooms)
		}
	}
}

// Every prefix of a valid level must fail cleanly at or before the cut.
func TestDecodeEveryPrefix(t *testing.T) {
	for _, v := range []Version{VersionTR1, VersionTR3} {
		data, _ := encodeLevel(testLevel(v))
		for n := 0; n < len(data); n++ {
			l, err := Decode(data[:n])
			if err == nil || l != nil {
				t.Fatalf("%v: prefix of %d bytes decoded", v, n)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("%v: prefix of %d bytes: %v is not a *DecodeError", v, n, err)
			}
			if !errors.Is(err, ErrTruncatedInput) && !errors.Is(err, ErrDerivedLengthInvariant) {
				t.Fatalf("%v: prefix of %d bytes: unexpected error %v", v, n, err)
			}
			if de.Offset > n {
				t.Fatalf("%v: prefix of %d bytes: error offset %d past the end", v, n, de.Offset)
			}
		}
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf, "", 0))
	defer SetLogger(log.New(io.Discard, "", log.LstdFlags))

	data, _ := encodeLevel(testLevel(VersionTR2))
	data = append(data, 1, 2, 3)
	if _, err := Decode(data); err != nil {
		t.Fatalf("decode with trailing bytes failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Ignoring 3 trailing bytes")) {
		t.Errorf("trailing bytes were not logged:\n%s", buf.String())
	}
}

func TestDecodeOptionsWorkers(t *testing.T) {
	data, _ := encodeLevel(testLevel(VersionTR3))
	for _, workers := range []int{-1, 0, 1, 3, 64} {
		if _, err := DecodeWithOptions(data, Options{Workers: workers}); err != nil {
			t.Errorf("workers %d: %v", workers, err)
		}
	}
}

func TestStageString(t *testing.T) {
	if s := StageReadAnimationTables.String(); s != "read animation tables" {
		t.Errorf("got %q", s)
	}
	if s := Stage(99).String(); s != "Stage(99)" {
		t.Errorf("got %q", s)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	data, at := encodeLevel(testLevel(VersionTR1))
	_, err := Decode(data[:at.afterRoomCount])
	want := "trlevel: read rooms: truncated input at offset"
	if err == nil || !bytes.HasPrefix([]byte(err.Error()), []byte(want)) {
		t.Errorf("got %v, want prefix %q", err, want)
	}
}

func TestOpen(t *testing.T) {
	data, _ := encodeLevel(testLevel(VersionTR1))
	path := filepath.Join(t.TempDir(), "LEVEL1.PHD")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Version != VersionTR1 || len(l.Rooms) != 2 {
		t.Errorf("got %v with %d rooms", l.Version, len(l.Rooms))
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.phd")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}
