package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pillarpond/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.font")
	defer teardown()
	//
	if n := NormalizeFontname("Gill Sans MT.ttf"); n != "gill_sans_mt" {
		t.Errorf("expected different normalized name, got %s", n)
	}
	if n := NormalizeTypeCaseName("Gill Sans MT", 12); n != "gill_sans_mt-12.00" {
		t.Errorf("expected different normalized typecase name, got %s", n)
	}
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.font")
	defer teardown()
	//
	f := FallbackFont()
	require.NotNil(t, f)
	assert.Equal(t, "Go Sans", f.Fontname)
	tc, err := f.PrepareCase(12.0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, tc.PtSize())
	assert.Same(t, f, tc.ScalableFontParent())
}

func TestRegistryFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.font")
	defer teardown()
	//
	reg := NewRegistry()
	tc, err := reg.TypeCase("no such font family xyz", 14.0)
	require.NotNil(t, tc)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "Go Sans", tc.ScalableFontParent().Fontname)
	// fallback typecase is cached: second lookup yields the identical case
	tc2, _ := reg.TypeCase("no such font family xyz", 14.0)
	assert.Same(t, tc, tc2)
}

func TestRegistryPrefixLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pond.font")
	defer teardown()
	//
	reg := NewRegistry()
	f := FallbackFont()
	reg.StoreFont(f)
	tc, err := reg.TypeCase("go", 10.0)
	require.NoError(t, err)
	assert.Equal(t, "Go Sans", tc.ScalableFontParent().Fontname)
}
