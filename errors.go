// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import "github.com/db47h/hwsched/sense"

// InvariantError is the panic value raised by ProcessDomains when the
// ordering graph is malformed. See sense.InvariantError.
//
type InvariantError = sense.InvariantError

func invariant(obj interface{}, format string, args ...interface{}) {
	sense.Panicf(obj, format, args...)
}
