package blob

// Stats contains a snapshot of store occupancy.
type Stats struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	SizeInUse   int     // bytes occupied by live elements
	Capacity    int     // bytes of the backing block
	Utilization float64 // ratio of live slots to allocated slots (0.0-1.0)
	Disposable  bool    // element type has non-trivial teardown
}

// Stats returns a snapshot of store statistics.
func (s *Store) Stats() Stats {
	st := Stats{
		Len:        s.len,
		Cap:        s.cap,
		SizeInUse:  s.len * int(s.layout.Size),
		Capacity:   s.cap * int(s.layout.Size),
		Disposable: s.dispose != nil,
	}
	if s.cap > 0 {
		st.Utilization = float64(s.len) / float64(s.cap)
	}
	return st
}
