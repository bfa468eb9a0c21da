/*
Package stack implements a LIFO stack with value semantics.

Copies made with Copy() share their items until one of them is modified
(copy-on-write).

    s := stack.New(1, 2)
    s.Push(3)
    top := s.Pop()     // Just(3)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.stack'.
func tracer() tracing.Trace {
	return tracing.Select("cow.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
