package glbuild

import (
	"errors"
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// VecPool serves as a pool of position and distance buffers for
// evaluating distance fields on the CPU while reducing garbage generation.
type VecPool struct {
	V3    bufPool[ms3.Vec]
	Float bufPool[float32]
}

// AssertAllReleased checks all buffers are not in use. Should be called
// after ending a run to find leaks.
func (vp *VecPool) AssertAllReleased() error {
	if err := vp.Float.assertAllReleased(); err != nil {
		return err
	}
	return vp.V3.assertAllReleased()
}

type bufPool[T any] struct {
	ins      [][]T
	acquired []bool
}

// Acquire returns a buffer of at least minLength elements.
func (bp *bufPool[T]) Acquire(minLength int) []T {
	for i, locked := range bp.acquired {
		if !locked && len(bp.ins[i]) >= minLength {
			bp.acquired[i] = true
			return bp.ins[i][:minLength]
		}
	}
	newSlice := make([]T, minLength)
	bp.ins = append(bp.ins, newSlice)
	bp.acquired = append(bp.acquired, true)
	return newSlice
}

// Release returns a buffer obtained with Acquire to the pool.
func (bp *bufPool[T]) Release(buf []T) error {
	if cap(buf) == 0 {
		return errors.New("release of empty buffer")
	}
	buf = buf[:1]
	for i, instance := range bp.ins {
		if cap(instance) > 0 && &instance[:1][0] == &buf[0] {
			if !bp.acquired[i] {
				return errors.New("release of unacquired resource")
			}
			bp.acquired[i] = false
			return nil
		}
	}
	return errors.New("release of nonexistent resource")
}

func (bp *bufPool[T]) assertAllReleased() error {
	for _, locked := range bp.acquired {
		if locked {
			return fmt.Errorf("locked %T resource found in VecPool, leak?", *new(T))
		}
	}
	return nil
}

// GetVecPool asserts the userData as a VecPool. If assert fails then
// an error is returned with information on what went wrong.
func GetVecPool(userData any) (*VecPool, error) {
	vp, ok := userData.(*VecPool)
	if !ok {
		vper, ok := userData.(interface{ VecPool() *VecPool })
		if !ok {
			return nil, fmt.Errorf("want userData type *glbuild.VecPool for CPU evaluations, got %T", userData)
		}
		vp = vper.VecPool()
		if vp == nil {
			return nil, fmt.Errorf("nil return value from VecPool method of %T", userData)
		}
	}
	return vp, nil
}
