package ewma

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Int_Seed(t *testing.T) {
	f := NewIntDefault[uint32]()

	assert.Equal(t, uint32(0), f.Average())

	avg := f.PushSample(77)
	assert.Equal(t, uint32(77), avg)
	assert.Equal(t, uint32(77), f.Average())

	if diff := cmp.Diff(Range[uint32]{Min: 77, Max: 77}, f.LocalRange()); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}

// the truncating divide happens to land the 0..999 ramp on exactly 900
func Test_Int_MonotonicRamp(t *testing.T) {
	for _, f := range []*Int[uint32]{NewIntDefault[uint32](), NewInt[uint32](1, 100)} {
		for i := 0; i < 1000; i++ {
			f.PushSample(uint32(i))
		}

		assert.Equal(t, uint32(900), f.Average())

		if diff := cmp.Diff(Range[uint32]{Min: 0, Max: 999}, f.LocalRange()); diff != "" {
			t.Errorf("range mismatch (-want +got):\n%s", diff)
		}
	}
}

func Test_Int_Int64Ramp(t *testing.T) {
	f := NewIntDefault[int64]()
	for i := 0; i < 1000; i++ {
		f.PushSample(int64(i))
	}

	assert.Equal(t, int64(900), f.Average())
}

func Test_Int_SnapOnNewExtreme(t *testing.T) {
	f := NewInt[int64](1, 10)
	f.PushSample(100)
	f.PushSample(90)

	f.PushSample(500)
	assert.Equal(t, int64(500), f.LocalRange().Max)

	f.PushSample(-200)
	assert.Equal(t, int64(-200), f.LocalRange().Min)
}

func Test_Int_ConstantConvergence(t *testing.T) {
	f := NewIntDefault[int64]()
	for i := 0; i < 100; i++ {
		f.PushSample(10000)
	}

	assert.Equal(t, int64(10000), f.Average())

	r := f.LocalRange()
	assert.Equal(t, int64(10000), r.Min)
	assert.Equal(t, int64(10000), r.Max)
}

// integer fading stalls once the remaining difference truncates to zero, so
// the average only approaches a jumped target within alphaDen/alphaNum
func Test_Int_TruncationStall(t *testing.T) {
	f := NewIntDefault[int64]()
	f.PushSample(0)
	for i := 0; i < 5000; i++ {
		f.PushSample(10000)
	}

	assert.InDelta(t, 10000, float64(f.Average()), 100)
	assert.Less(t, f.Average(), int64(10000))

	r := f.LocalRange()
	assert.Equal(t, int64(0), r.Min)
	assert.Equal(t, int64(10000), r.Max)
}

func Test_Int_Bounding(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	f := NewInt[int64](1, 50)

	v := int64(0)
	for i := 0; i < 10000; i++ {
		v += int64(rng.Intn(2001)) - 1000
		f.PushSample(v)

		r := f.LocalRange()
		require.LessOrEqual(t, r.Min, f.Average())
		require.LessOrEqual(t, f.Average(), r.Max)
	}
}

func Test_Int_ReadDoesNotMutate(t *testing.T) {
	f := NewIntDefault[int64]()
	f.PushSample(5)
	f.PushSample(9)

	avg := f.Average()
	r := f.LocalRange()
	for i := 0; i < 10; i++ {
		assert.Equal(t, avg, f.Average())
		assert.Equal(t, r, f.LocalRange())
	}
}

// the default integer ratio and the default float alpha describe the same
// fade rate, so both modes settle at the same point on the same input,
// modulo the integer truncation bias
func Test_Int_MatchesFloatDefault(t *testing.T) {
	fi := NewIntDefault[int64]()
	ff := NewFloatDefault[float64]()

	for i := 0; i < 1000; i++ {
		fi.PushSample(int64(i))
		ff.PushSample(float64(i))
	}

	assert.InDelta(t, ff.Average(), float64(fi.Average()), 1.0)
}

func Test_NewIntChecked(t *testing.T) {
	tests := []struct {
		num, den int64
		wantErr  bool
	}{
		{num: 1, den: 100},
		{num: 50, den: 100},
		{num: 99, den: 100},
		{num: 1, den: 0, wantErr: true},
		{num: 0, den: 100, wantErr: true},
		{num: 100, den: 100, wantErr: true},
		{num: 101, den: 100, wantErr: true},
		{num: -1, den: 100, wantErr: true},
	}

	for _, tt := range tests {
		f, err := NewIntChecked(tt.num, tt.den)
		if tt.wantErr {
			assert.Error(t, err, "ratio %v/%v", tt.num, tt.den)
			assert.Nil(t, f)
		} else {
			assert.NoError(t, err, "ratio %v/%v", tt.num, tt.den)
			assert.NotNil(t, f)
		}
	}

	_, err := NewIntChecked[uint32](1, 0)
	assert.Error(t, err)
}
