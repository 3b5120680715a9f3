package trlevel

func (d *decoder) readObjectTables(l *Level) error {
	c := d.c
	var err error

	logger.Println("Reading StaticMeshes ...")
	d.layout.staticMeshes = c.pos() + 4
	if l.StaticMeshes, err = readCounted[StaticMesh, uint32](c); err != nil {
		return err
	}

	if !d.f.objectTexturesLate {
		if err := d.readObjectTextures(l); err != nil {
			return err
		}
	}

	logger.Println("Reading SpriteTextures ...")
	if l.SpriteTextures, err = readCounted[SpriteTexture, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading SpriteSequences ...")
	if l.SpriteSequences, err = readCounted[SpriteSequence, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading Cameras ...")
	if l.Cameras, err = readCounted[Camera, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading SoundSources ...")
	if l.SoundSources, err = readCounted[SoundSource, uint32](c); err != nil {
		return err
	}

	if err := d.readBoxes(l); err != nil {
		return err
	}

	logger.Println("Reading AnimatedTextures ...")
	if l.AnimatedTextures, err = readCounted[uint16, uint32](c); err != nil {
		return err
	}

	if d.f.objectTexturesLate {
		if err := d.readObjectTextures(l); err != nil {
			return err
		}
	}

	return d.readEntities(l)
}

func (d *decoder) readObjectTextures(l *Level) error {
	logger.Println("Reading ObjectTextures ...")
	var err error
	if l.ObjectTextures, err = readCounted[ObjectTexture, uint32](d.c); err != nil {
		return err
	}
	logger.Printf("Read %v object textures", len(l.ObjectTextures))
	return nil
}

func (d *decoder) readEntities(l *Level) error {
	logger.Println("Reading Entities ...")
	c := d.c
	n, err := c.u32()
	if err != nil {
		return err
	}
	d.layout.entities = c.pos()

	// Translate to canonical
	if d.f.gen == tr1 {
		d.layout.entitySize = entitySize1
		l.Entities, err = readTranslated(c, int(n), func(b binEntity1) Entity {
			return Entity{
				TypeID:     b.TypeID,
				Room:       b.Room,
				Position:   b.Position,
				Angle:      b.Angle,
				Intensity1: b.Intensity1,
				Flags:      b.Flags,
			}
		})
	} else {
		d.layout.entitySize = entitySize2
		l.Entities, err = readTranslated(c, int(n), func(b binEntity2) Entity {
			return Entity(b)
		})
	}
	if err != nil {
		return err
	}
	logger.Printf("Read %v entities", len(l.Entities))
	return nil
}

// readPaletteAudio reads everything after the entities: the light map, the
// TR1 palette, cinematic frames, demo data and the sound tables.
func (d *decoder) readPaletteAudio(l *Level) error {
	c := d.c
	var err error

	logger.Println("Reading LightMap ...")
	if err := c.read(&l.LightMap); err != nil {
		return err
	}

	if d.f.trailingPalette {
		logger.Println("Reading Palette ...")
		if err := c.read(&l.Palette); err != nil {
			return err
		}
	}

	logger.Println("Reading CinematicFrames ...")
	if l.CinematicFrames, err = readCounted[CinematicFrame, uint16](c); err != nil {
		return err
	}

	logger.Println("Reading DemoData ...")
	if l.DemoData, err = readCounted[byte, uint16](c); err != nil {
		return err
	}

	logger.Println("Reading SoundMap ...")
	if l.SoundMap, err = readArray[int16](c, d.f.soundMapSize); err != nil {
		return err
	}

	logger.Println("Reading SoundDetails ...")
	if l.SoundDetails, err = readCounted[SoundDetails, uint32](c); err != nil {
		return err
	}

	if d.f.samples {
		logger.Println("Reading Samples ...")
		if l.Samples, err = readCounted[byte, uint32](c); err != nil {
			return err
		}
	}

	logger.Println("Reading SampleIndices ...")
	if l.SampleIndices, err = readCounted[uint32, uint32](c); err != nil {
		return err
	}
	logger.Printf("Read %v sound details, %v samples", len(l.SoundDetails), len(l.SampleIndices))
	return nil
}
