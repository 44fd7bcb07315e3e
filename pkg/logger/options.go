package logger

import (
	"io"
	"os"
)

// RotationOptions controls file rotation when logging to a file.
type RotationOptions struct {
	Enabled    bool
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Options holds logger construction parameters.
type Options struct {
	Level    string // debug, info, warn, error
	Format   string // console or json
	File     string // empty means stdout
	Rotation RotationOptions
	writer   io.Writer // test hook, overrides File
}

func defaultOptions() *Options {
	return &Options{
		Level:  "info",
		Format: "console",
		Rotation: RotationOptions{
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
			Compress:   true,
		},
	}
}

func (o *Options) output() io.Writer {
	if o.writer != nil {
		return o.writer
	}
	return os.Stdout
}

// Option configures the logger.
type Option func(*Options)

func WithLevel(level string) Option {
	return func(o *Options) { o.Level = level }
}

func WithFormat(format string) Option {
	return func(o *Options) { o.Format = format }
}

func WithFile(path string) Option {
	return func(o *Options) { o.File = path }
}

func WithRotation(rotation RotationOptions) Option {
	return func(o *Options) { o.Rotation = rotation }
}

// WithWriter sends output to w instead of stdout. Used in tests.
func WithWriter(w io.Writer) Option {
	return func(o *Options) { o.writer = w }
}
