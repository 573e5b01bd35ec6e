package mesh

// Vertices, Faces and Edges are range-over-func iterators walking each
// collection in its current insertion order (head or tail, per SetOrder).
// Edges yields the first half of each pair only; use Sym to reach the
// other half. Safe to free the yielded entity during iteration, but not
// to call Clear or to allocate new entities of the same kind.
func (m *Mesh) Vertices(yield func(VertexID) bool) {
	for v := m.vertHead; v != NullVertex; {
		next := m.verts[v].next
		if !yield(v) {
			return
		}
		v = next
	}
}

func (m *Mesh) Faces(yield func(FaceID) bool) {
	for f := m.faceHead; f != NullFace; {
		next := m.faces[f].next
		if !yield(f) {
			return
		}
		f = next
	}
}

func (m *Mesh) Edges(yield func(EdgeID) bool) {
	for k := m.pairHead; k != -1; {
		next := m.pairs[k].next
		if !yield(EdgeID(2 * k)) {
			return
		}
		k = next
	}
}
