// Package ordering sorts a filtered record set by a single column.
//
// Sort never reorders its input; it returns a new slice. The sort is stable:
// records whose keys compare equal keep the order they had in the input,
// which for a filtered subset is source order.
package ordering
