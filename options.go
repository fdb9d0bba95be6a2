// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsched

import (
	"log/slog"

	"github.com/db47h/hwsched/internal/config"
)

type options struct {
	tag            string
	dumpDir        string
	dumpLevel      int
	dumpGraphLevel int
	log            *slog.Logger
}

// An Option configures ProcessDomains.
//
type Option func(*options)

func newOptions(opts []Option) *options {
	c := config.Default()
	o := &options{
		tag:     c.Tag,
		dumpDir: c.DumpDir,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithConfig applies the debug settings of c. The log level of c is ignored;
// use WithLogger.
//
func WithConfig(c config.Config) Option {
	return func(o *options) {
		o.tag = c.Tag
		o.dumpDir = c.DumpDir
		o.dumpLevel = c.DumpLevel
		o.dumpGraphLevel = c.DumpGraphLevel
	}
}

// WithTag sets the string prepended to debug file names.
//
func WithTag(tag string) Option {
	return func(o *options) { o.tag = tag }
}

// WithDumpDir sets the directory debug files are written to.
//
func WithDumpDir(dir string) Option {
	return func(o *options) { o.dumpDir = dir }
}

// WithDumpLevel enables the signal/domain report when level > 0.
//
func WithDumpLevel(level int) Option {
	return func(o *options) { o.dumpLevel = level }
}

// WithDumpGraphLevel enables the Graphviz dump of the graph when level > 0.
//
func WithDumpGraphLevel(level int) Option {
	return func(o *options) { o.dumpGraphLevel = level }
}

// WithLogger sets the logger used for progress and per vertex debug
// messages. By default, nothing is logged.
//
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}
