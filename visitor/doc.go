// Package visitor walks native Go containers in a deterministic order.
// Structs are visited in field declaration order through xunsafe field
// accessors, maps in ascending key order and slices or arrays by index.
package visitor
