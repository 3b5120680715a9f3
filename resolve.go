package trlevel

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// resolve checks every index and offset the tables hold into other tables
// and dereferences the mesh pointers. Checks are independent of each other so
// they run concurrently; each one owns a result slot and the first failure
// in slot order is returned, whatever order the goroutines finish in.
func (d *decoder) resolve(l *Level) error {
	logger.Println("Resolving references ...")

	slots, distinct, err := d.meshSlots(l)
	if err != nil {
		return err
	}
	decoded := make([]*Mesh, len(distinct))
	entityObjects := alloc[EntityObject](len(l.Entities))

	var jobs []func() error
	for i, off := range distinct {
		jobs = append(jobs, func() error {
			m, err := d.resolveMesh(l, off)
			decoded[i] = m
			return err
		})
	}
	for i := range l.Rooms {
		jobs = append(jobs, func() error { return d.checkRoom(l, i) })
	}
	jobs = append(jobs,
		func() error { return d.checkModels(l) },
		func() error { return d.checkAnimations(l) },
		func() error { return d.checkStateChanges(l) },
		func() error { return d.checkStaticMeshes(l) },
		func() error { return d.resolveEntities(l, entityObjects) },
	)

	errs := make([]error, len(jobs))
	var g errgroup.Group
	g.SetLimit(d.opts.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			errs[i] = job()
			return nil
		})
	}
	// Jobs report through errs so the first failure in job order wins.
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	if len(slots) > 0 {
		l.Meshes = make([]*Mesh, len(slots))
		for i, s := range slots {
			l.Meshes[i] = decoded[s]
		}
	}
	l.EntityObjects = entityObjects
	logger.Printf("Resolved %v meshes (%v distinct), %v entities", len(l.Meshes), len(decoded), len(l.Entities))
	return nil
}

// meshSlots validates the mesh pointers and maps each one to the distinct
// offset it shares with any other pointer.
func (d *decoder) meshSlots(l *Level) (slots []int, distinct []uint32, err error) {
	seen := make(map[uint32]int)
	slots = alloc[int](len(l.MeshPointers))
	for i, p := range l.MeshPointers {
		at := d.layout.meshPointers + 4*i
		if p%2 != 0 {
			return nil, nil, newError(ErrCorruptMeshPointer, at, "mesh pointer %d is odd offset %#x", i, p)
		}
		if int(p) >= len(l.MeshData) {
			return nil, nil, newError(ErrCorruptMeshPointer, at,
				"mesh pointer %d offset %#x is past the %d byte mesh data", i, p, len(l.MeshData))
		}
		s, ok := seen[p]
		if !ok {
			s = len(distinct)
			seen[p] = s
			distinct = append(distinct, p)
		}
		slots[i] = s
	}
	return slots, distinct, nil
}

// resolveMesh decodes the mesh at an offset into the mesh data. The record
// must end inside the mesh data.
func (d *decoder) resolveMesh(l *Level, off uint32) (*Mesh, error) {
	c := &cursor{buf: l.MeshData, base: d.layout.meshData}
	if err := c.seek(int(off)); err != nil {
		return nil, newError(ErrCorruptMeshPointer, c.base+int(off), "mesh offset %#x", off)
	}
	m, err := readMesh(c)
	if errors.Is(err, ErrTruncatedInput) {
		return nil, newError(ErrCorruptMeshPointer, d.layout.meshData+int(off),
			"mesh at %#x runs past the end of the mesh data", off)
	}
	if err != nil {
		return nil, annotate(err, "mesh at %#x", off)
	}
	return m, nil
}

func (d *decoder) checkRoom(l *Level, i int) error {
	r := &l.Rooms[i]
	rl := d.layout.rooms[i]
	numRooms := len(l.Rooms)

	for j, p := range r.Portals {
		if int(p.AdjoiningRoom) >= numRooms {
			return newError(ErrCorruptRoomReference, rl.portals+j*portalSize,
				"room %d portal %d leads to room %d of %d", i, j, p.AdjoiningRoom, numRooms)
		}
	}

	for j, s := range r.Sectors {
		at := rl.sectors + j*sectorSize
		if s.FloorDataIndex != 0 && int(s.FloorDataIndex) >= len(l.FloorData) {
			return newError(ErrCorruptFloorDataIndex, at,
				"room %d sector %d floor data %d of %d", i, j, s.FloorDataIndex, len(l.FloorData))
		}
		if box, ok := d.f.boxIndex(s.BoxIndex); ok && box >= len(l.Boxes) {
			return newError(ErrCorruptBoxIndex, at,
				"room %d sector %d box %d of %d", i, j, box, len(l.Boxes))
		}
		if s.RoomBelow != noRoom8 && int(s.RoomBelow) >= numRooms {
			return newError(ErrCorruptRoomReference, at,
				"room %d sector %d room below %d of %d", i, j, s.RoomBelow, numRooms)
		}
		if s.RoomAbove != noRoom8 && int(s.RoomAbove) >= numRooms {
			return newError(ErrCorruptRoomReference, at,
				"room %d sector %d room above %d of %d", i, j, s.RoomAbove, numRooms)
		}
	}

	if r.AlternateRoom != -1 && (r.AlternateRoom < 0 || int(r.AlternateRoom) >= numRooms) {
		return newError(ErrCorruptRoomReference, rl.alternate,
			"room %d alternate room %d of %d", i, r.AlternateRoom, numRooms)
	}
	return nil
}

func (d *decoder) checkModels(l *Level) error {
	for i, m := range l.Models {
		at := d.layout.models + i*modelSize
		if int(m.StartingMesh)+int(m.NumMeshes) > len(l.MeshPointers) {
			return newError(ErrCorruptMeshPointer, at,
				"model %d meshes %d+%d of %d", i, m.StartingMesh, m.NumMeshes, len(l.MeshPointers))
		}
		if m.NumMeshes > 1 && int(m.MeshTree)+4*(int(m.NumMeshes)-1) > len(l.MeshTrees) {
			return newError(ErrCorruptAnimationReference, at,
				"model %d mesh tree %d for %d meshes of %d words", i, m.MeshTree, m.NumMeshes, len(l.MeshTrees))
		}
		if m.Animation == noAnim {
			continue
		}
		if int(m.Animation) >= len(l.Animations) {
			return newError(ErrCorruptAnimationReference, at,
				"model %d animation %d of %d", i, m.Animation, len(l.Animations))
		}
		if int(m.FrameOffset/2) >= len(l.Frames) {
			return newError(ErrCorruptAnimationReference, at,
				"model %d frame offset %#x past %d frame words", i, m.FrameOffset, len(l.Frames))
		}
	}
	return nil
}

func (d *decoder) checkAnimations(l *Level) error {
	for i, a := range l.Animations {
		at := d.layout.animations + i*animSize
		if a.NumStateChanges > 0 && int(a.StateChangeOffset)+int(a.NumStateChanges) > len(l.StateChanges) {
			return newError(ErrCorruptAnimationReference, at,
				"animation %d state changes %d+%d of %d", i, a.StateChangeOffset, a.NumStateChanges, len(l.StateChanges))
		}
		if a.NumAnimCommands > 0 && int(a.AnimCommand) >= len(l.AnimCommands) {
			return newError(ErrCorruptAnimationReference, at,
				"animation %d command %d of %d", i, a.AnimCommand, len(l.AnimCommands))
		}
		if int(a.FrameOffset/2) > len(l.Frames) {
			return newError(ErrCorruptAnimationReference, at,
				"animation %d frame offset %#x past %d frame words", i, a.FrameOffset, len(l.Frames))
		}
		if int(a.NextAnimation) >= len(l.Animations) {
			return newError(ErrCorruptAnimationReference, at,
				"animation %d next animation %d of %d", i, a.NextAnimation, len(l.Animations))
		}
	}
	return nil
}

func (d *decoder) checkStateChanges(l *Level) error {
	for i, s := range l.StateChanges {
		if s.NumAnimDispatches > 0 && int(s.AnimDispatch)+int(s.NumAnimDispatches) > len(l.AnimDispatches) {
			return newError(ErrCorruptAnimationReference, d.layout.stateChanges+i*stateSize,
				"state change %d dispatches %d+%d of %d", i, s.AnimDispatch, s.NumAnimDispatches, len(l.AnimDispatches))
		}
	}
	return nil
}

func (d *decoder) checkStaticMeshes(l *Level) error {
	for i, s := range l.StaticMeshes {
		if int(s.Mesh) >= len(l.MeshPointers) {
			return newError(ErrCorruptMeshPointer, d.layout.staticMeshes+i*staticSize,
				"static mesh %d mesh %d of %d", i, s.Mesh, len(l.MeshPointers))
		}
	}
	return nil
}

// resolveEntities finds the model or sprite sequence each entity's type ID
// names. Models take precedence.
func (d *decoder) resolveEntities(l *Level, out []EntityObject) error {
	models := make(map[int]int, len(l.Models))
	for i, m := range l.Models {
		if _, ok := models[int(m.ID)]; !ok {
			models[int(m.ID)] = i
		}
	}
	sprites := make(map[int]int, len(l.SpriteSequences))
	for i, s := range l.SpriteSequences {
		if _, ok := sprites[int(s.SpriteID)]; !ok {
			sprites[int(s.SpriteID)] = i
		}
	}

	for i, e := range l.Entities {
		at := d.layout.entities + i*d.layout.entitySize
		if e.Room < 0 || int(e.Room) >= len(l.Rooms) {
			return newError(ErrCorruptEntityReference, at,
				"entity %d room %d of %d", i, e.Room, len(l.Rooms))
		}
		if m, ok := models[int(e.TypeID)]; ok {
			out[i] = EntityObject{Kind: ObjectModel, Index: m}
		} else if s, ok := sprites[int(e.TypeID)]; ok {
			out[i] = EntityObject{Kind: ObjectSpriteSequence, Index: s}
		} else {
			return newError(ErrCorruptEntityReference, at,
				"entity %d type %d is neither a model nor a sprite sequence", i, e.TypeID)
		}
	}
	return nil
}
