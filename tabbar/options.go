package tabbar

import "log/slog"

// Option configures a Bar at construction.
type Option func(*Bar)

// WithDataSource sets the item source used by reloads.
func WithDataSource(source DataSource) Option {
	return func(b *Bar) { b.source = source }
}

// WithIndicator sets the indicator and its placement style.
func WithIndicator(indicator Indicator, style IndicatorStyle) Option {
	return func(b *Bar) {
		b.indicator = indicator
		b.indicatorStyle = style
	}
}

// WithScroller sets the receiver of content offsets.
func WithScroller(scroller Scroller) Option {
	return func(b *Bar) { b.scroller = scroller }
}

// WithAnimator sets the animation primitive. Nil applies changes immediately.
func WithAnimator(animator Animator) Option {
	return func(b *Bar) {
		if animator == nil {
			animator = immediateAnimator{}
		}
		b.animator = animator
	}
}

// WithLogger sets the logger used for reload and replay diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bar) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithAlignment sets the initial alignment.
func WithAlignment(mode AlignmentMode) Option {
	return func(b *Bar) { b.alignment = mode }
}

// WithAnimationStyle sets progressive or snap updates.
func WithAnimationStyle(style AnimationStyle) Option {
	return func(b *Bar) { b.style = style }
}

// WithInterButtonSpacing sets the gap between buttons.
func WithInterButtonSpacing(spacing float64) Option {
	return func(b *Bar) { b.spacing = spacing }
}

// WithContentMode sets how button widths are chosen.
func WithContentMode(mode ContentMode) Option {
	return func(b *Bar) { b.contentMode = mode }
}

// WithContentInset sets the explicit content inset.
func WithContentInset(insets EdgeInsets) Option {
	return func(b *Bar) { b.contentInset = insets }
}

// WithScrollMode sets whether the bar can be scrolled directly.
func WithScrollMode(mode ScrollMode) Option {
	return func(b *Bar) { b.scrollMode = mode }
}
