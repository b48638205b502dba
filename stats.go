package chainmap

type Stats struct {
	Size         int
	Buckets      int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float32
}
