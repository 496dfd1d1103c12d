// Package counter wraps readers and writers to keep track of how many
// bytes went through them.
package counter

// CountCallback receives the running total after each read or write.
type CountCallback func(count int64)
