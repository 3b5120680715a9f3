package trlevel

import "errors"

// roomLayout remembers where a room's indexed records start in the input so
// that errors found while resolving can point at them.
type roomLayout struct {
	portals   int
	sectors   int
	alternate int
}

func (d *decoder) readRooms(l *Level) error {
	logger.Println("Reading Rooms ...")
	numRooms, err := d.c.u16()
	if err != nil {
		return err
	}

	rooms := alloc[Room](int(numRooms))
	d.layout.rooms = alloc[roomLayout](int(numRooms))
	for i := range rooms {
		if err := d.readRoom(&rooms[i], &d.layout.rooms[i]); err != nil {
			return annotate(err, "room %d", i)
		}
	}
	l.Rooms = rooms
	logger.Printf("Read %v rooms", len(rooms))
	return nil
}

func (d *decoder) readRoom(r *Room, rl *roomLayout) error {
	c := d.c
	if err := c.read(&r.Info); err != nil {
		return err
	}

	// Raw data words, then the same words decoded as geometry
	numDataWords, err := c.u32()
	if err != nil {
		return err
	}
	region, err := c.sub(mulSat(int(numDataWords), 2))
	if err != nil {
		return err
	}
	if r.Data, err = readArray[uint16](region, int(numDataWords)); err != nil {
		return err
	}
	if err := region.seek(0); err != nil {
		return err
	}
	if r.Geometry, err = d.readRoomData(region); err != nil {
		if errors.Is(err, ErrTruncatedInput) {
			var de *DecodeError
			errors.As(err, &de)
			return newError(ErrRoomDataLengthMismatch, de.Offset,
				"geometry needs more than the %d data words", numDataWords)
		}
		return err
	}
	if left := region.remaining(); left != 0 {
		return newError(ErrRoomDataLengthMismatch, region.pos(),
			"geometry leaves %d of %d data bytes unused", left, 2*numDataWords)
	}

	// Portals
	rl.portals = c.pos() + 2
	if r.Portals, err = readCounted[Portal, uint16](c); err != nil {
		return err
	}

	// Sector grid
	if r.NumZSectors, err = c.u16(); err != nil {
		return err
	}
	if r.NumXSectors, err = c.u16(); err != nil {
		return err
	}
	rl.sectors = c.pos()
	if r.Sectors, err = readArray[Sector](c, int(r.NumXSectors)*int(r.NumZSectors)); err != nil {
		return err
	}

	// Ambient lighting
	if r.AmbientIntensity, err = c.i16(); err != nil {
		return err
	}
	if d.f.ambient2 {
		if r.AmbientIntensity2, err = c.i16(); err != nil {
			return err
		}
	}
	if d.f.lightMode {
		if r.LightMode, err = c.i16(); err != nil {
			return err
		}
	}

	// Lights and static meshes
	if r.Lights, err = d.readRoomLights(); err != nil {
		return err
	}
	if r.StaticMeshes, err = d.readRoomStaticMeshes(); err != nil {
		return err
	}

	rl.alternate = c.pos()
	if r.AlternateRoom, err = c.i16(); err != nil {
		return err
	}
	if r.Flags, err = c.i16(); err != nil {
		return err
	}

	if d.f.roomTrailer {
		var trailer [3]uint8
		if err := c.read(&trailer); err != nil {
			return err
		}
		r.WaterScheme, r.ReverbInfo, r.Filler = trailer[0], trailer[1], trailer[2]
	}
	return nil
}

// readRoomData decodes room geometry from the room's data word region.
func (d *decoder) readRoomData(c *cursor) (RoomData, error) {
	var rd RoomData
	numVertices, err := c.u16()
	if err != nil {
		return rd, err
	}
	if d.f.gen == tr1 {
		rd.Vertices, err = readTranslated(c, int(numVertices), func(v binRoomVertex1) RoomVertex {
			return RoomVertex{Vertex: v.Vertex, Lighting: v.Lighting}
		})
	} else {
		rd.Vertices, err = readTranslated(c, int(numVertices), func(v binRoomVertex2) RoomVertex {
			return RoomVertex(v)
		})
	}
	if err != nil {
		return rd, err
	}

	if rd.Rectangles, err = readCounted[Face4, uint16](c); err != nil {
		return rd, err
	}
	if rd.Triangles, err = readCounted[Face3, uint16](c); err != nil {
		return rd, err
	}
	if rd.Sprites, err = readCounted[RoomSprite, uint16](c); err != nil {
		return rd, err
	}
	return rd, nil
}

func (d *decoder) readRoomLights() ([]RoomLight, error) {
	c := d.c
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	switch d.f.gen {
	case tr1:
		return readTranslated(c, int(n), func(b binRoomLight1) RoomLight {
			return RoomLight{
				Position:   b.Position,
				Intensity1: int32(b.Intensity),
				Fade1:      int32(b.Fade),
			}
		})
	case tr2:
		return readTranslated(c, int(n), func(b binRoomLight2) RoomLight {
			return RoomLight{
				Position:   b.Position,
				Intensity1: int32(b.Intensity1),
				Intensity2: int32(b.Intensity2),
				Fade1:      int32(b.Fade1),
				Fade2:      int32(b.Fade2),
			}
		})
	default:
		return readTranslated(c, int(n), func(b binRoomLight3) RoomLight {
			return RoomLight{
				Position:   b.Position,
				Colour:     b.Colour,
				Type:       b.Type,
				Intensity1: b.Data1,
				Fade1:      b.Data2,
			}
		})
	}
}

func (d *decoder) readRoomStaticMeshes() ([]RoomStaticMesh, error) {
	c := d.c
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	if d.f.gen == tr1 {
		return readTranslated(c, int(n), func(b binRoomStaticMesh1) RoomStaticMesh {
			return RoomStaticMesh{
				Position:   b.Position,
				Rotation:   b.Rotation,
				Intensity1: b.Intensity1,
				MeshID:     b.MeshID,
			}
		})
	}
	return readTranslated(c, int(n), func(b binRoomStaticMesh2) RoomStaticMesh {
		return RoomStaticMesh(b)
	})
}
