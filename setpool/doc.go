// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package setpool is a thin typed set-of-T façade over a single shared
ZDD factory (spec §4.7). A Pool owns the factory and the element ↔
variable-index mapping; each Set it mints holds exactly one ZDD
handle, a single-path diagram whose path variables are the set's
current members.

Set.Contains/Add/Remove translate to ZDD operations on that one path;
see set.go for why this façade realises them with CHANGE and SUBSET1
rather than the generic UNION/INTERSECTION/DIFFERENCE operators spec.md
names — those would not preserve the single-path invariant a pooled
set depends on.
*/
package setpool
