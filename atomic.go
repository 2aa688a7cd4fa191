package opentsdb

import "sync/atomic"

type atomicInt struct {
	v int64
}

func (x *atomicInt) Load() int { return int(atomic.LoadInt64(&x.v)) }

func (x *atomicInt) Store(val int) { atomic.StoreInt64(&x.v, int64(val)) }
