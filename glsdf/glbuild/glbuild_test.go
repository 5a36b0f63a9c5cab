package glbuild

import (
	"testing"
)

func TestAppendFloat(t *testing.T) {
	for _, test := range []struct {
		v            float32
		neg, decimal byte
		want         string
	}{
		{v: 1.25, neg: '-', decimal: '.', want: "1.25"},
		{v: 3, neg: '-', decimal: '.', want: "3."},
		{v: -2, neg: 'n', decimal: 'p', want: "n2p"},
		{v: -0.5, neg: '-', decimal: '.', want: "-0.5"},
	} {
		got := string(AppendFloat(nil, test.v, test.neg, test.decimal))
		if got != test.want {
			t.Errorf("AppendFloat(%g): got %q. want %q", test.v, got, test.want)
		}
	}
}

func TestAppendMat3Decl(t *testing.T) {
	got := string(AppendMat3Decl(nil, "m", [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	const want = "mat3 m=mat3(1.,4.,7.,2.,5.,8.,3.,6.,9.);\n"
	if got != want {
		t.Errorf("got %q. want %q", got, want)
	}
}

func TestVecPool(t *testing.T) {
	var vp VecPool
	a := vp.Float.Acquire(4)
	b := vp.Float.Acquire(2)
	if len(a) != 4 || len(b) != 2 {
		t.Fatalf("got lengths %d, %d", len(a), len(b))
	}
	if err := vp.AssertAllReleased(); err == nil {
		t.Error("expected leak report")
	}
	if err := vp.Float.Release(a); err != nil {
		t.Fatal(err)
	}
	if err := vp.Float.Release(a); err == nil {
		t.Error("expected double release error")
	}
	// The released buffer is large enough to be reused.
	c := vp.Float.Acquire(3)
	if &c[0] != &a[0] {
		t.Error("released buffer not reused")
	}
	vp.Float.Release(b)
	vp.Float.Release(c)
	if err := vp.AssertAllReleased(); err != nil {
		t.Error(err)
	}
	if err := vp.Float.Release(make([]float32, 1)); err == nil {
		t.Error("expected error releasing foreign buffer")
	}
	if _, err := GetVecPool(&vp); err != nil {
		t.Error(err)
	}
	if _, err := GetVecPool(3); err == nil {
		t.Error("expected error for non pool user data")
	}
}
