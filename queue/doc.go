/*
Package queue implements a FIFO queue with value semantics.

Copies made with Copy() share their items until one of them is modified
(copy-on-write).

    q := queue.New("A", "B")
    q.Enqueue("C")
    front := q.Dequeue()     // Just("A")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.queue'.
func tracer() tracing.Trace {
	return tracing.Select("cow.queue")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
