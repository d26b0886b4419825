package parsley

import "os"

type processCfg struct {
	skipProgramName bool
	envLookup       func(string) (string, bool)
}

// ProcessOpt configures a single Process call.
type ProcessOpt func(*processCfg)

// WithSkipProgramName controls whether the zeroth argument is skipped as the
// program name. The default is false, i.e. every argument is inspected.
func WithSkipProgramName(skip bool) ProcessOpt {
	return func(c *processCfg) {
		c.skipProgramName = skip
	}
}

// WithEnvLookup overrides how environment variables are read, primarily for
// testing. The default is os.LookupEnv.
func WithEnvLookup(lookup func(string) (string, bool)) ProcessOpt {
	return func(c *processCfg) {
		c.envLookup = lookup
	}
}

func newProcessCfg(opts []ProcessOpt) *processCfg {
	cfg := &processCfg{
		envLookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
