/*
Package cow provides the sharing machinery for a small set of value-semantic containers:
a singly linked list, an ordered array, a stack and a queue (see the sub-packages).

Each container is a thin façade over a mutable backend store. Copying a container with
Copy() is cheap: the backend is shared and reference-counted. The first mutation through
any of the sharing copies detects that the backend is not exclusively referenced and
clones it, leaving every other copy unchanged (copy-on-write). As long as a backend is
referenced by a single container, mutations happen in place.

Go does not offer copy constructors, so plain assignment of a container value aliases
the container, just like assigning a map does. Use Copy() to obtain an independent value.

Containers are not safe for concurrent mutation. Clients have to synchronize access
to copies sharing a backend, as the reference count is not maintained atomically.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow'.
func tracer() tracing.Trace {
	return tracing.Select("cow")
}
