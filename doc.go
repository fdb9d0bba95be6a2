// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwsched implements the domain assignment stage of a static scheduler
for a hardware description language compiler.

Given an ordering graph of logic blocks and the signals they read and write,
already sorted so that every vertex comes after the vertices it depends on,
ProcessDomains decides for every piece of combinational logic the exact set
of signal events (its sensitivity domain) that must trigger its evaluation in
the generated simulation code. Logic that nothing can ever trigger is removed
from the graph and from its scope.

Sensitivity domains are sense.Tree values interned in a sense.Store, so that
two vertices triggered by the same events share the very same tree.

*/
package hwsched
