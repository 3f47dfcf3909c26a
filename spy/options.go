// SPDX-License-Identifier: MIT

package spy

import "gonum.org/v1/plot/vg"

// Defaults.
const (
	// DefaultTitle is the plot title when WithTitle is not used.
	DefaultTitle = "sparsity pattern"

	// DefaultMarkerRadius is the radius of each entry marker.
	DefaultMarkerRadius = vg.Length(2)

	// DefaultWidth and DefaultHeight size the rendered canvas.
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

const (
	panicRadiusInvalid = "spy: WithMarkerRadius: radius must be > 0"
	panicSizeInvalid   = "spy: WithSize: width and height must be > 0"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the effective plot configuration.
type Options struct {
	title  string
	radius vg.Length
	width  vg.Length
	height vg.Length
}

// WithTitle sets the plot title; an empty title hides it.
func WithTitle(s string) Option {
	return func(o *Options) { o.title = s }
}

// WithMarkerRadius sets the marker radius. Panics unless r > 0.
func WithMarkerRadius(r vg.Length) Option {
	if r <= 0 {
		panic(panicRadiusInvalid)
	}

	return func(o *Options) { o.radius = r }
}

// WithSize sets the canvas size used by Save and Write. Panics unless both are > 0.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = w, h }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		title:  DefaultTitle,
		radius: DefaultMarkerRadius,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
