package parsley

// Kind identifies what sort of value an option carries.
type Kind int

const (
	KindFlag Kind = iota
	KindStr
	KindEnum
	KindInt
	KindReal
)

func kindImage(kind Kind) string {
	switch kind {
	case KindFlag:
		return "flag"
	case KindStr:
		return "string"
	case KindEnum:
		return "enumeration"
	case KindInt:
		return "integer"
	case KindReal:
		return "real"
	}
	return "unknown"
}

// OptionSpec describes one command-line option: its names, kind, description
// and optional qualifiers (default value, numeric range, environment
// variable). Specs are immutable once created - the With* qualifier methods
// return a modified copy, so a base spec can safely be extended into several
// variants.
type OptionSpec struct {
	kind        Kind
	longName    string
	shortName   string // single character, "" if none
	description string
	isRequired  bool
	isSingleton bool

	enumChoices []string // KindEnum only

	rangeDefined bool
	minInt       int
	maxInt       int
	minReal      float64
	maxReal      float64

	evDefined bool
	evName    string

	defaultDefined bool
	defaultStr     string // str or enum
	defaultInt     int
	defaultReal    float64
}

func newSpec(kind Kind, longName, shortName, description string, isRequired bool) *OptionSpec {
	return &OptionSpec{
		kind:        kind,
		longName:    longName,
		shortName:   shortName,
		description: description,
		isRequired:  isRequired,
	}
}

// Help provides the conventional -h, --help singleton flag spec.
func Help() *OptionSpec {
	spec := newSpec(KindFlag, "help", "h", "Show this message and exit.", false)
	// Allows successful parsing even when otherwise required options
	// are not provided.
	spec.isSingleton = true
	spec.defaultDefined = true // the default is implicitly false
	return spec
}

// Version provides the conventional -V, --version singleton flag spec.
func Version() *OptionSpec {
	spec := newSpec(KindFlag, "version", "V", "Show version and exit.", false)
	spec.isSingleton = true
	spec.defaultDefined = true // the default is implicitly false
	return spec
}

// NewFlag constructs a flag option spec. Flags are implicitly optional
// and default to false.
func NewFlag(longName, shortName, description string) *OptionSpec {
	spec := newSpec(KindFlag, longName, shortName, description, false)
	spec.defaultDefined = true
	return spec
}

// NewSingletonFlag constructs a flag option spec whose presence on the
// command line short-circuits all further processing, help/version style.
func NewSingletonFlag(longName, shortName, description string) *OptionSpec {
	spec := NewFlag(longName, shortName, description)
	spec.isSingleton = true
	return spec
}

// NewStr constructs a string option spec.
func NewStr(longName, shortName, description string, isRequired bool) *OptionSpec {
	return newSpec(KindStr, longName, shortName, description, isRequired)
}

// NewEnum constructs an enumeration option spec. Choices are case-sensitive
// and their order determines the index reported in OptionValue.Ival.
// Uniqueness of the choices is the caller's responsibility.
func NewEnum(longName, shortName, description string, choices []string, isRequired bool) *OptionSpec {
	spec := newSpec(KindEnum, longName, shortName, description, isRequired)
	spec.enumChoices = append([]string(nil), choices...)
	return spec
}

// NewInt constructs an integer option spec.
func NewInt(longName, shortName, description string, isRequired bool) *OptionSpec {
	return newSpec(KindInt, longName, shortName, description, isRequired)
}

// NewReal constructs a real (float64) option spec.
func NewReal(longName, shortName, description string, isRequired bool) *OptionSpec {
	return newSpec(KindReal, longName, shortName, description, isRequired)
}

// LongName returns the option's long name.
func (s *OptionSpec) LongName() string {
	return s.longName
}

func (s *OptionSpec) clone() *OptionSpec {
	c := *s
	c.enumChoices = append([]string(nil), s.enumChoices...)
	return &c
}

// WithDefaultStr returns a copy of the spec with the given default value.
// Only meaningful for string and enumeration options; for enumerations the
// value must be one of the allowed choices. Misuse warns and leaves the
// default unset.
func (s *OptionSpec) WithDefaultStr(defValue string) *OptionSpec {
	c := s.clone()

	if c.kind != KindStr && c.kind != KindEnum {
		warn(s.longName, "default string value for %s ignored.", s.info())
	} else if c.defaultDefined {
		warn(s.longName, "secondary default value for %s ignored.", s.info())
	} else if c.kind == KindEnum && IndexOf(c.enumChoices, defValue) == -1 {
		warn(s.longName, "the default value for %s is not an allowed value.", s.info())
	} else {
		c.defaultStr = defValue
		c.defaultDefined = true
	}

	return c
}

// WithDefaultInt returns a copy of the spec with the given default value.
// Only meaningful for integer options. A default outside an already declared
// range warns but is still set.
func (s *OptionSpec) WithDefaultInt(defValue int) *OptionSpec {
	c := s.clone()

	if c.kind != KindInt {
		warn(s.longName, "default integer value for %s ignored.", s.info())
	} else if c.defaultDefined {
		warn(s.longName, "secondary default value for %s ignored.", s.info())
	} else {
		if c.rangeDefined && (defValue < c.minInt || defValue > c.maxInt) {
			warn(s.longName, "the default value for %s is out of range.", s.info())
		}
		c.defaultInt = defValue
		c.defaultDefined = true
	}

	return c
}

// WithDefaultReal returns a copy of the spec with the given default value.
// Only meaningful for real options. A default outside an already declared
// range warns but is still set.
func (s *OptionSpec) WithDefaultReal(defValue float64) *OptionSpec {
	c := s.clone()

	if c.kind != KindReal {
		warn(s.longName, "default real value for %s ignored.", s.info())
	} else if c.defaultDefined {
		warn(s.longName, "secondary default value for %s ignored.", s.info())
	} else {
		if c.rangeDefined && (defValue < c.minReal || defValue > c.maxReal) {
			warn(s.longName, "the default value for %s is out of range.", s.info())
		}
		c.defaultReal = defValue
		c.defaultDefined = true
	}

	return c
}

// WithIntRange returns a copy of the spec constrained to min <= value <= max.
// Only meaningful for integer options, and only once per spec.
func (s *OptionSpec) WithIntRange(min, max int) *OptionSpec {
	c := s.clone()

	if c.kind != KindInt {
		warn(s.longName, "integer range constraint for %s ignored.", s.info())
	} else if c.rangeDefined {
		warn(s.longName, "secondary range constraint for %s ignored.", s.info())
	} else {
		if c.defaultDefined && (c.defaultInt < min || c.defaultInt > max) {
			warn(s.longName, "the default value for %s is out of range.", s.info())
		}
		c.minInt = min
		c.maxInt = max
		c.rangeDefined = true
	}

	return c
}

// WithRealRange returns a copy of the spec constrained to min <= value <= max.
// Only meaningful for real options, and only once per spec.
func (s *OptionSpec) WithRealRange(min, max float64) *OptionSpec {
	c := s.clone()

	if c.kind != KindReal {
		warn(s.longName, "real range constraint for %s ignored.", s.info())
	} else if c.rangeDefined {
		warn(s.longName, "secondary range constraint for %s ignored.", s.info())
	} else {
		if c.defaultDefined && (c.defaultReal < min || c.defaultReal > max) {
			warn(s.longName, "the default value for %s is out of range.", s.info())
		}
		c.minReal = min
		c.maxReal = max
		c.rangeDefined = true
	}

	return c
}

// WithEnvVar returns a copy of the spec naming an environment variable that
// can supply the option value if not otherwise specified. An empty name is
// treated as not set. Only once per spec.
func (s *OptionSpec) WithEnvVar(envVarName string) *OptionSpec {
	c := s.clone()

	if c.evDefined {
		warn(s.longName, "secondary environment variable for %s ignored.", s.info())
	} else {
		c.evName = envVarName
		c.evDefined = len(envVarName) > 0
	}

	return c
}

// displayName is the form used in error messages and help output,
// e.g. "-n, --number" or "--number" when there is no short name.
func (s *OptionSpec) displayName() string {
	if s.shortName != "" {
		return "-" + s.shortName + ", --" + s.longName
	}
	return "--" + s.longName
}

// rangeText renders the range constraint as "<min> to <max>", or "" when
// not applicable.
func (s *OptionSpec) rangeText() string {
	if s.kind != KindInt && s.kind != KindReal {
		return ""
	}
	if !s.rangeDefined {
		return ""
	}

	var v1, v2 string
	if s.kind == KindInt {
		v1 = FormatInt(s.minInt)
		v2 = FormatInt(s.maxInt)
	} else {
		v1 = FormatReal(s.minReal)
		v2 = FormatReal(s.maxReal)
	}

	return v1 + " to " + v2
}

// enumSet renders the allowed values as "(a, b, c)".
func (s *OptionSpec) enumSet() string {
	if s.kind != KindEnum {
		return "(nil)"
	}
	return "(" + Join(s.enumChoices, ", ") + ")"
}

// info identifies the spec in diagnostics, e.g. "the integer option 'number'".
func (s *OptionSpec) info() string {
	return "the " + kindImage(s.kind) + " option '" + s.longName + "'"
}

// Help-text fragments, composed by OptionHelp.

func (s *OptionSpec) helpConstraint() string {
	switch s.kind {
	case KindEnum:
		return "Allowed values: " + s.enumSet() + ". "

	case KindInt, KindReal:
		if s.rangeDefined {
			return "Range: " + s.rangeText() + ". "
		}
	}
	return ""
}

func (s *OptionSpec) helpDefault() string {
	if !s.defaultDefined {
		return ""
	}

	result := "Default value: "
	switch s.kind {
	case KindFlag:
		result += "n/a"
	case KindStr, KindEnum:
		result += "'" + s.defaultStr + "'"
	case KindInt:
		result += FormatInt(s.defaultInt)
	case KindReal:
		result += FormatReal(s.defaultReal)
	}
	return result + ". "
}

func (s *OptionSpec) helpEnvVar() string {
	if !s.evDefined {
		return ""
	}

	result := "Use the " + s.evName + " environment variable to "
	if s.defaultDefined {
		result += "override the default value. "
	} else {
		result += "provide a default value. "
	}
	return result
}
