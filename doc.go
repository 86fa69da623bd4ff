/*
Package objkit is a collection of small helpers for everyday object
handling, plus a builder for CSS selectors.

Sub-packages:

   selector       build, combine, render and match CSS selectors
   selector/sheet stylesheets of rules for built selectors
   objects        copy, merge, compare, freeze maps; JSON round-trips
   collections    sorting and grouping of records
   tickets        a ticket seller giving change from a queue

All functions are synchronous and free of I/O.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package objkit
