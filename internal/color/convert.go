package color

import "math"

// hueFromRGB returns hue in [0,1) given the extrema of r, g, b. Achromatic
// input (max == min) has hue 0.
func hueFromRGB(r, g, b, hi, lo float64) float64 {
	d := hi - lo
	if d == 0 {
		return 0
	}
	var h float64
	switch hi {
	case r:
		h = (g - b) / (6 * d)
		if g < b {
			h += 1
		}
	case g:
		h = (b-r)/(6*d) + 1.0/3
	default:
		h = (r-g)/(6*d) + 2.0/3
	}
	return h
}

func rgbToHSV(r, g, b float64) (h, s, v float64) {
	hi := max(r, g, b)
	lo := min(r, g, b)
	h = hueFromRGB(r, g, b, hi, lo)
	if hi != 0 {
		s = (hi - lo) / hi
	}
	return h, s, hi
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	if h == 1 {
		h = 0
	}
	h6 := 6 * h
	fl := math.Floor(h6)
	f := h6 - fl
	sector := ((int(fl) % 6) + 6) % 6
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - s*(1-f))
	switch sector {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	hi := max(r, g, b)
	lo := min(r, g, b)
	h = hueFromRGB(r, g, b, hi, lo)
	l = (hi + lo) / 2
	d := hi - lo
	switch {
	case l == 0 || d == 0:
		s = 0
	case l <= 0.5:
		s = d / (2 * l)
	default:
		s = d / (2 * (1 - l))
	}
	return h, s, l
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToChannel(p, q, h+1.0/3), hueToChannel(p, q, h), hueToChannel(p, q, h-1.0/3)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
