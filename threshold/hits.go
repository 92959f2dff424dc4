package threshold

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Count tallies, per bin, how many minimizers hit it. Each bitmap holds the
// bins that report one minimizer as present. Bins at or beyond numBins are
// ignored.
func Count(minimizerHits []*roaring.Bitmap, numBins int) []uint32 {
	counts := make([]uint32, numBins)
	for _, bins := range minimizerHits {
		if bins == nil {
			continue
		}
		it := bins.Iterator()
		for it.HasNext() {
			b := it.Next()
			if int(b) >= numBins {
				break
			}
			counts[b]++
		}
	}
	return counts
}

// Hits returns the bins whose count reaches the threshold for a pattern
// with minimizers minimizers.
func (t Threshold) Hits(counts []uint32, minimizers int) *roaring.Bitmap {
	need := t.Get(minimizers)
	hits := roaring.New()
	for bin, c := range counts {
		if uint64(c) >= need {
			hits.Add(uint32(bin))
		}
	}
	return hits
}

// Query counts minimizer hits and selects the matching bins.
func (t Threshold) Query(minimizerHits []*roaring.Bitmap, numBins int) *roaring.Bitmap {
	return t.Hits(Count(minimizerHits, numBins), len(minimizerHits))
}
