// Package registry provides an ordered, identity-keyed, thread-safe registry.
//
// Ordered keeps values in insertion order. Every Add returns a fresh *Entry,
// and the entry pointer (not the value) is the identity used for removal and
// membership checks, so the same value can be added more than once and each
// addition is removed independently.
//
// # Basic Usage
//
//	r := registry.NewOrdered[func(string)]()
//	e := r.Add(func(s string) { fmt.Println(s) })
//
//	r.Contains(e) // true
//	r.Remove(e)   // true
//	r.Remove(e)   // false, already gone
//
// # Snapshot Iteration
//
// Snapshot returns a copy of the entries in order. Callers iterate the copy
// without holding the lock and re-check Contains per entry to observe
// removals made while iterating:
//
//	for _, e := range r.Snapshot() {
//	    if !r.Contains(e) {
//	        continue
//	    }
//	    e.Value("hello") // may call r.Add or r.Remove
//	}
//
// # Thread Safety
//
// All Ordered methods are safe for concurrent use. No method holds the lock
// while calling back into user code.
package registry
