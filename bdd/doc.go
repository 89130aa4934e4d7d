// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams: each
BDD handle denotes a Boolean function over a fixed number of variables,
realised as one maximally-shared, maximally-reduced DAG per Factory.

Most operations return a BDD, an opaque, immutable handle onto one node
of that DAG; BDD supports identity-based equality and hashing, and a
structural String representation. All operations are pure — they never
mutate an existing BDD, only build and return new ones.

The package is a thin variant layer over internal/engine, which owns the
hash-consed node arena and the fixed-capacity operation cache; see that
package's documentation for the shared invariants (sharing, reduction,
ordering) both decision-diagram variants in this module rely on.
*/
package bdd
