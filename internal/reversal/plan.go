package reversal

// Swap exchanges the entries at two positions of one sorted level.
type Swap struct {
	Index1 int
	Index2 int
	Path1  string
	Path2  string
}

// Plan returns the swaps that reverse paths: the outermost pair first,
// then moving inward. A middle element of an odd-length list is left alone,
// so len(paths)/2 swaps are produced.
func Plan(paths []string) []Swap {
	if len(paths) < 2 {
		return nil
	}

	swaps := make([]Swap, 0, len(paths)/2)
	for start, end := 0, len(paths)-1; start < end; start, end = start+1, end-1 {
		swaps = append(swaps, Swap{
			Index1: start,
			Index2: end,
			Path1:  paths[start],
			Path2:  paths[end],
		})
	}
	return swaps
}

// Apply performs swaps on a copy of paths and returns it. It is the
// in-memory counterpart of what the engine does on disk.
func Apply(paths []string, swaps []Swap) []string {
	result := append([]string(nil), paths...)
	for _, s := range swaps {
		result[s.Index1], result[s.Index2] = result[s.Index2], result[s.Index1]
	}
	return result
}
