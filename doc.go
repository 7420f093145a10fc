// Package u16view provides View, a read-only window onto a run of 16-bit
// (UTF-16) code units that somebody else owns.
//
// A View is a pointer and a length. It never allocates, copies or frees the
// memory it refers to. Slicing, trimming, searching, comparing and splitting
// all return views into the same buffer.
//
// # Borrowing
//
// A view borrows. Go cannot check the borrow at compile time, so it is an
// unchecked obligation on the caller: the referenced buffer must not be
// mutated while any view into it is in use. The garbage collector keeps the
// memory alive, but once the owner writes to it every result computed from a
// view over it is meaningless. The capacity of every view is clamped to its
// length, so appending to Data() always reallocates instead of writing into
// the borrowed buffer.
//
// # Null and empty
//
// The zero View is null: IsNull reports true and Size is 0. An empty view has
// Size 0 but refers to a real (possibly zero-length) buffer. Constructors from
// owning strings keep the two apart; see FromStringLike.
//
// # Admission
//
// Which arguments can become a view without copying is decided by their static
// type. Each rule has its own constructor:
//
//	FromPtr, FromPtrLen, FromRange   pointers to a CodeUnit type
//	FromArray                        terminator-slot arrays
//	FromStringLike                   owning strings (StringLike)
//	From, FromContainer              slices and Container types
//
// Classify and FromAny apply the same rules to a dynamic value through
// reflection.
//
// # Preconditions
//
// Out-of-range positions and lengths passed to At, First, Last, Sliced,
// SlicedN, Chopped, Truncate and Chop are programming errors and panic. Left,
// Right and Mid clamp instead. Search misses return NotFound and failed
// numeric conversions return ok == false.
package u16view
