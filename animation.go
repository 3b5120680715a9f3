package trlevel

func (d *decoder) readAnimationTables(l *Level) error {
	c := d.c
	var err error

	logger.Println("Reading Animations ...")
	d.layout.animations = c.pos() + 4
	if l.Animations, err = readCounted[Animation, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading StateChanges ...")
	d.layout.stateChanges = c.pos() + 4
	if l.StateChanges, err = readCounted[StateChange, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading AnimDispatches ...")
	if l.AnimDispatches, err = readCounted[AnimDispatch, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading AnimCommands ...")
	if l.AnimCommands, err = readCounted[int16, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading MeshTrees ...")
	if l.MeshTrees, err = readCounted[int32, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading Frames ...")
	if l.Frames, err = readCounted[uint16, uint32](c); err != nil {
		return err
	}

	logger.Println("Reading Models ...")
	d.layout.models = c.pos() + 4
	if l.Models, err = readCounted[Model, uint32](c); err != nil {
		return err
	}

	logger.Printf("Read %v animations, %v state changes, %v dispatches, %v models",
		len(l.Animations), len(l.StateChanges), len(l.AnimDispatches), len(l.Models))
	return nil
}
