/*
This file exists solely to aid consumers of depqueue when using
dependency managers that scan only a package's own import graph. A
dependency manager that resolves imports from this package will also
pick up its subpackages without the caller needing to reference them
directly.

For more information about depqueue, see the README at

	https://github.com/taskgraph/depqueue

*/
package depqueue

import (
	_ "github.com/taskgraph/depqueue/monitor"
	_ "github.com/taskgraph/depqueue/pqueue"
)
