package tabbar

// EdgeFade returns how strongly the leading and trailing content edges should
// fade, each in [0, 1]. An edge fades fully once at least fadeWidth of content
// is scrolled past it.
func EdgeFade(offset, lo, hi, fadeWidth float64) (leading, trailing float64) {
	if fadeWidth <= 0 {
		return 0, 0
	}
	leading = clamp((offset-lo)/fadeWidth, 0, 1)
	trailing = clamp((hi-offset)/fadeWidth, 0, 1)
	return leading, trailing
}
