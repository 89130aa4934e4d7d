// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package zdd implements Zero-suppressed Decision Diagrams: each ZDD
handle denotes a family of subsets of a fixed universe {0, ..., N-1},
realised as one maximally-shared, maximally-reduced DAG per Factory.

Unlike bdd's reduction rule (identical children are redundant), zdd
zero-suppresses: a node whose hi-child is the empty family is
redundant, since a variable that never appears in any member set need
not appear in the graph at all. This makes ZDD the natural
representation for sparse families of sets, as opposed to BDD's natural
fit for dense Boolean functions.

The package is a thin variant layer over internal/engine, mirroring
package bdd; see that package and internal/engine's documentation for
the shared invariants (sharing, reduction, ordering) both variants rely
on.
*/
package zdd
