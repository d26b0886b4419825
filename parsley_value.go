package parsley

// OptionValue is the resolved result for one option. Which payload field is
// meaningful depends on the option's kind: Flag uses Flag, Str uses Str, Int
// uses Ival, Real uses Real. For enumerations Str holds the chosen literal
// and Ival its zero-based index within the allowed choices, or -1 while
// unresolved.
type OptionValue struct {
	IsDefined bool // either explicitly or by default
	Flag      bool
	Str       string // str or enum value
	Ival      int    // int value or enum index
	Real      float64
}

// proxyValue holds the working value for one option during resolution.
type proxyValue struct {
	OptionValue
	spec *OptionSpec
}

// OptionValues is a read-only view of the resolved option values, keyed by
// long option name. Looking up an unknown name yields a zero OptionValue
// rather than failing.
type OptionValues struct {
	theMap map[string]*proxyValue
}

func newOptionValues() OptionValues {
	return OptionValues{theMap: make(map[string]*proxyValue)}
}

func (ov OptionValues) set(option string, value *proxyValue) {
	ov.theMap[option] = value
}

func (ov OptionValues) lookup(option string) *proxyValue {
	return ov.theMap[option]
}

// Get returns the resolved value for the named option. Unknown names yield
// an undefined, all-zero OptionValue.
func (ov OptionValues) Get(option string) OptionValue {
	entry, ok := ov.theMap[option]
	if !ok {
		return OptionValue{}
	}
	return entry.OptionValue
}
