// Package graph implements the node runtime of a pull-based signal graph.
//
// A node produces one block of samples per processing tick. An external
// scheduler calls ComputeNextBlock on every active node once per tick, in
// dependency order, so that a node reading another node's output through a
// signal binding always observes a fresh block. Nodes own their output
// buffers and internal state exclusively; downstream consumers treat the
// slice returned by Block as read-only.
//
// Polymorphic parameters are modeled by Param, which is either a bound
// constant or a reference to another node's output stream. Nodes resolve
// their compute and post-processing variants from the current binding tags
// whenever a binding changes, never per sample.
package graph
