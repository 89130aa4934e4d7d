// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package engine implements the shared infrastructure behind both decision
diagram variants in this module: a hash-consed, maximally-shared node
arena (the "universe graph"), a fixed-capacity direct-mapped operation
cache, and the generic bookkeeping a memoised recursive apply needs
(variable ordering tables, construction-time validation, a tagged error
type, and a mark-sweep collector for nodes no longer reachable from any
live handle).

Package engine has no notion of Boolean functions or subset families on
its own; those semantics belong to the bdd and zdd packages, which both
build on top of a Factory. Everything in this package is agnostic to
which reduction rule a variant applies — callers supply that rule
through the Reduce field of Factory at construction time.
*/
package engine
