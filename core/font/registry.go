package font

import (
	"sync"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pillarpond/engine/core"
)

// Registry is a type for holding information about loaded fonts for a
// typesetter.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
	names     *trie.Trie // normalized family names, for prefix lookup
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
		names:     trie.New(),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	if _, ok := fr.fonts[fname]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
		fr.fonts[fname] = f
		fr.names.Add(fname, f)
	}
}

// TypeCase returns a concrete typecase for a given font name and size.
// If a suitable typecase has already been cached, TypeCase will return the
// cached one. Otherwise the registry tries, in order: a registered font with
// the normalized name, a registered font with the name as a prefix, a system
// font found by family name, and finally the system-wide fallback font. In
// the fallback case the returned error carries code core.EMISSING, together
// with a usable typecase.
func (fr *Registry) TypeCase(name string, size float64) (*TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", name, size)
	fname := NormalizeFontname(name)
	tname := NormalizeTypeCaseName(name, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found typecase %s", tname)
		return t, nil
	}
	f, ok := fr.fonts[fname]
	if !ok && fname != "" {
		if matches := fr.names.PrefixSearch(fname); len(matches) > 0 {
			tracer().Debugf("registry matches %s by prefix as %s", fname, matches[0])
			f = fr.fonts[matches[0]]
		}
	}
	if f == nil && name != "" {
		if fpath, err := findfont.Find(name); err == nil && fpath != "" {
			tracer().Debugf("%s is a system font", name)
			if sysfont, err := LoadOpenTypeFont(fpath); err == nil {
				f = sysfont
				f.Fontname = name
				fr.fonts[fname] = f
				fr.names.Add(fname, f)
			}
		}
	}
	if f != nil {
		t, err := f.PrepareCase(size)
		tracer().Infof("font registry has font %s, caches at %.2f", fname, size)
		t.scalableFontParent = f
		fr.typecases[tname] = t
		return t, err
	}
	tracer().Infof("registry does not contain font %s", name)
	err := core.Error(core.EMISSING, "font %s not found in registry", name)
	//
	// store typecase from fallback font, if not present yet, and return it
	fname = NormalizeFontname("fallback")
	tname = NormalizeTypeCaseName("fallback", size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	fb := FallbackFont()
	t, _ := fb.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size)
	fr.fonts[fname] = fb
	fr.typecases[tname] = t
	return t, err
}

// LogFontList is a helper function to dump the list of known fonts and
// typecases in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Infof("typecase [%s] = %v", k, v.scalableFontParent.Fontname)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
