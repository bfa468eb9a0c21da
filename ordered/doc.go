/*
Package ordered implements an array which keeps its items sorted at all times.

Items are inserted at the position found by binary search, then following items are
shifted to make room. Searching is O(log n), shifting is O(n). Removal of items works
the same way.

    a := ordered.New(1, 3, 5)
    a.InsertAll(0, 2, 4, 6)
    fmt.Println(a)     // prints "OrderedArray: [0 1 2 3 4 5 6]"

Arrays have value semantics through copy-on-write: Copy() shares the items until one
of the copies is modified.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.ordered'.
func tracer() tracing.Trace {
	return tracing.Select("cow.ordered")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered: "+msg, msgargs...)
		panic(msg)
	}
}
