// File: vec/insert.go
// License: Apache-2.0
//
// Appending and mid-sequence insertion with element shifting.

package vec

import "github.com/MrAwesomeRocks/libds/api"

// Push appends elem, growing on the geometric schedule when full.
func (v *Vector[T]) Push(elem T) error {
	if err := v.ensureRoom(1); err != nil {
		return err
	}
	v.buf[v.size] = elem
	v.size++
	return nil
}

// Append appends elems in order with at most one reallocation.
func (v *Vector[T]) Append(elems ...T) error {
	_, err := v.InsertSlice(v.size, elems)
	return err
}

// Insert places elem at position pos, 0 <= pos <= Len(); pos == Len()
// appends. Elements at [pos, Len()) shift forward one slot. Returns
// the position of the inserted element.
func (v *Vector[T]) Insert(pos int, elem T) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, v.insertOutOfRange(pos)
	}
	if err := v.ensureRoom(1); err != nil {
		return 0, err
	}
	copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size])
	v.buf[pos] = elem
	v.size++
	return pos, nil
}

// InsertN places count copies of elem starting at pos. Returns the
// position of the first inserted element.
func (v *Vector[T]) InsertN(pos, count int, elem T) (int, error) {
	if count < 0 {
		return 0, api.NewError(api.CodeInvalidArgument, "vec: negative insert count").
			WithContext("count", count)
	}
	if pos < 0 || pos > v.size {
		return 0, v.insertOutOfRange(pos)
	}
	if count == 0 {
		return pos, nil
	}
	if err := v.ensureRoom(count); err != nil {
		return 0, err
	}
	copy(v.buf[pos+count:v.size+count], v.buf[pos:v.size])
	for i := pos; i < pos+count; i++ {
		v.buf[i] = elem
	}
	v.size += count
	return pos, nil
}

// InsertSlice places elems in order starting at pos. Returns the
// position of the first inserted element. elems must not alias the
// vector's own storage (see Data); a reallocation during the insert
// would leave it pointing at the retired range.
func (v *Vector[T]) InsertSlice(pos int, elems []T) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, v.insertOutOfRange(pos)
	}
	if len(elems) == 0 {
		return pos, nil
	}
	if err := v.ensureRoom(len(elems)); err != nil {
		return 0, err
	}
	// copy is overlap-safe, so the shifted run survives moving within
	// the same range.
	copy(v.buf[pos+len(elems):v.size+len(elems)], v.buf[pos:v.size])
	copy(v.buf[pos:], elems)
	v.size += len(elems)
	return pos, nil
}

func (v *Vector[T]) insertOutOfRange(pos int) error {
	return api.NewError(api.CodeOutOfRange, "vec: insert position out of range").
		WithContext("pos", pos).
		WithContext("size", v.size)
}
