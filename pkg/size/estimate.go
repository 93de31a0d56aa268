package size

import "math"

// Bitrate assumptions per resolution, kbps. Order matters: on equal distance
// the earlier (higher) resolution wins.
var resolutionBitrates = []struct {
	height int
	kbps   float64
}{
	{2160, 20000}, // 4K
	{1440, 12000},
	{1080, 5000},
	{720, 2500},
	{480, 1500},
	{360, 800},
	{240, 400},
	{144, 200},
}

// Estimate returns a best-effort byte size for a stream of the given duration.
// A positive total bitrate is used as-is, otherwise the bitrate is taken from
// the table entry closest to height. ok is false when duration is not positive.
func Estimate(durationSeconds, heightPixels, totalBitrateKbps float64) (int64, bool) {
	if durationSeconds <= 0 {
		return 0, false
	}
	if totalBitrateKbps > 0 {
		return FromBitrate(totalBitrateKbps, durationSeconds), true
	}
	return FromBitrate(bitrateForHeight(heightPixels), durationSeconds), true
}

// FromBitrate converts kbps over a duration into bytes.
func FromBitrate(kbps, durationSeconds float64) int64 {
	return int64(math.Round(kbps * 1000 / 8 * durationSeconds))
}

func bitrateForHeight(height float64) float64 {
	best := resolutionBitrates[0]
	bestDist := math.Abs(float64(best.height) - height)
	for _, r := range resolutionBitrates[1:] {
		if d := math.Abs(float64(r.height) - height); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best.kbps
}
