package probemap

type Stats struct {
	Size                    int
	Capacity                int
	EmptyBuckets            int
	Tombstones              int
	Load                    float64
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
