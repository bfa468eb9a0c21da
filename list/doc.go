/*
Package list implements a singly linked list with value semantics.

A List is a façade over a chain of nodes. Copies made with Copy() share the chain until
one of them is modified; the modifying copy then replicates the chain and continues on
its private replica (copy-on-write). Pushing at the head and appending at the tail are
O(1), everything positional is O(n).

    l := list.New(1, 2)
    m := l.Copy()
    m.Push(0)          // m clones the chain: l = 1 -> 2, m = 0 -> 1 -> 2

Traversal uses positions:

    for p := l.Start(); p != l.End(); p = p.Next() {
        fmt.Println(p.Value())
    }

Positions are opaque handles to nodes. They compare equal if they denote the same node.
A position captured before a copy-on-write clone still denotes a node of the old chain;
InsertAfter and RemoveAfter translate such positions to the corresponding node of the
clone. Positions of nodes which have since been removed are rejected by InsertAfter
and RemoveAfter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.list'.
func tracer() tracing.Trace {
	return tracing.Select("cow.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
