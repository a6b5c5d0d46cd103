package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("1.5px")
	if err != nil {
		t.Errorf("(4) %s", err.Error())
	} else if d != Dimen(1.5*float64(BP)) {
		t.Errorf("(4) expected d to be 1.5bp (%d), is %d", Dimen(1.5*float64(BP)), d)
	}
}

func TestLengthResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.core")
	defer teardown()
	//
	assert.Equal(t, 14*BP, Pct(100).Resolve(14*BP))
	assert.Equal(t, 21*BP, Pct(150).Resolve(14*BP))
	assert.Equal(t, 10*PT, Length{Val: float64(10 * PT), Kind: Absolute}.Resolve(14*BP))
	assert.Equal(t, 14*BP, Length{}.Resolve(14*BP))
	assert.True(t, Length{}.IsUnset())
	assert.False(t, Pct(0).IsUnset())
}
