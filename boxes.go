package trlevel

// zoneLength is the number of words in each zone array.
func zoneLength(numBoxes int) int {
	return mulSat(numBoxes, 2)
}

// readBoxes reads boxes, overlaps and the zone arrays. The zone arrays carry
// no count of their own; their length comes from the box count.
func (d *decoder) readBoxes(l *Level) error {
	logger.Println("Reading Boxes ...")
	c := d.c
	numBoxes, err := c.u32()
	if err != nil {
		return err
	}
	if d.f.gen == tr1 {
		l.Boxes, err = readTranslated(c, int(numBoxes), func(b binBox1) Box {
			return Box(b)
		})
	} else {
		l.Boxes, err = readTranslated(c, int(numBoxes), func(b binBox2) Box {
			return Box{
				Zmin:         int32(b.Zmin),
				Zmax:         int32(b.Zmax),
				Xmin:         int32(b.Xmin),
				Xmax:         int32(b.Xmax),
				TrueFloor:    b.TrueFloor,
				OverlapIndex: b.OverlapIndex,
			}
		})
	}
	if err != nil {
		return err
	}

	logger.Println("Reading Overlaps ...")
	if l.Overlaps, err = readCounted[uint16, uint32](c); err != nil {
		return err
	}

	if err := d.readZones(l, int(numBoxes)); err != nil {
		return err
	}
	logger.Printf("Read %v boxes, %v overlaps", len(l.Boxes), len(l.Overlaps))
	return nil
}

func (d *decoder) readZones(l *Level, numBoxes int) error {
	logger.Println("Reading Zones ...")
	c := d.c
	arrays := l.Zones.arrays(d.f.zoneArrays)
	if _, err := zoneSpan(len(arrays), numBoxes, c.remaining(), c.pos()); err != nil {
		return err
	}

	n := zoneLength(numBoxes)
	words, err := readArray[uint16](c, mulSat(n, len(arrays)))
	if err != nil {
		return err
	}
	for i, a := range arrays {
		if n > 0 {
			*a = words[i*n : (i+1)*n : (i+1)*n]
		}
	}
	return nil
}

// zoneSpan returns the bytes taken by count zone arrays for numBoxes boxes.
// It fails with ErrDerivedLengthInvariant at offset when fewer remain.
func zoneSpan(count, numBoxes, remaining, offset int) (int, error) {
	n := zoneLength(numBoxes)
	size := mulSat(mulSat(n, count), 2)
	if size > remaining {
		return 0, newError(ErrDerivedLengthInvariant, offset,
			"%d zone arrays of %d words for %d boxes need %d bytes, %d remain",
			count, n, numBoxes, size, remaining)
	}
	return size, nil
}

// arrays returns the zone arrays present in a format, in file order.
func (z *Zones) arrays(count int) []*[]uint16 {
	if count == 6 {
		return []*[]uint16{
			&z.Ground1, &z.Ground2, &z.Fly,
			&z.Ground1Alt, &z.Ground2Alt, &z.FlyAlt,
		}
	}
	return []*[]uint16{
		&z.Ground1, &z.Ground2, &z.Ground3, &z.Ground4, &z.Fly,
		&z.Ground1Alt, &z.Ground2Alt, &z.Ground3Alt, &z.Ground4Alt, &z.FlyAlt,
	}
}
