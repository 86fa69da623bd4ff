/*
Package tickets simulates a ticket seller at a queue.

Tickets cost 25. Customers pay with bills of 25, 50 or 100, strictly one
after the other. The seller starts without any money and may hand out as
change only bills received from earlier customers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tickets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'objkit.tickets'.
func tracer() tracing.Trace {
	return tracing.Select("objkit.tickets")
}
