package trlevel

// readMesh decodes one mesh record at the cursor position.
func readMesh(c *cursor) (*Mesh, error) {
	var header binMeshHeader
	if err := c.read(&header); err != nil {
		return nil, err
	}
	mesh := &Mesh{
		Centre:          header.Centre,
		CollisionRadius: header.CollisionRadius,
	}

	// Vertices
	numVertices, err := readCount16(c, "vertex")
	if err != nil {
		return nil, err
	}
	if mesh.Vertices, err = readArray[Vertex](c, numVertices); err != nil {
		return nil, err
	}

	// Normals when the count is positive, otherwise -count light values
	numNormals, err := c.i16()
	if err != nil {
		return nil, err
	}
	if numNormals > 0 {
		if int(numNormals) != numVertices {
			return nil, newError(ErrCorruptMeshPointer, c.pos()-2, "%d normals for %d vertices", numNormals, numVertices)
		}
		normals, err := readArray[Vertex](c, int(numNormals))
		if err != nil {
			return nil, err
		}
		mesh.Shading = Normals(normals)
	} else {
		lights, err := readArray[int16](c, int(abs(int32(numNormals))))
		if err != nil {
			return nil, err
		}
		mesh.Shading = Lights(lights)
	}

	// Faces
	if mesh.TexturedRectangles, err = readFaces[Face4](c, "textured rectangle"); err != nil {
		return nil, err
	}
	if mesh.TexturedTriangles, err = readFaces[Face3](c, "textured triangle"); err != nil {
		return nil, err
	}
	if mesh.ColouredRectangles, err = readFaces[Face4](c, "coloured rectangle"); err != nil {
		return nil, err
	}
	if mesh.ColouredTriangles, err = readFaces[Face3](c, "coloured triangle"); err != nil {
		return nil, err
	}
	return mesh, nil
}

func readFaces[T Face3 | Face4](c *cursor, what string) ([]T, error) {
	n, err := readCount16(c, what)
	if err != nil {
		return nil, err
	}
	return readArray[T](c, n)
}

// readCount16 reads a signed 16-bit count. Negative counts only make sense for
// the normals field, so anywhere else they mean the record is not a mesh.
func readCount16(c *cursor, what string) (int, error) {
	at := c.pos()
	n, err := c.i16()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, newError(ErrCorruptMeshPointer, at, "negative %s count %d", what, n)
	}
	return int(n), nil
}
