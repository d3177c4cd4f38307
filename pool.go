package translit

import "sync"

// Inputs up to this many bytes run on pooled working buffers; larger
// ones get an exactly-hinted allocation of their own.
const pooledCapacity = 64

var bufPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, pooledCapacity)
	},
}
