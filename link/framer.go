package link

// MaxLineBytes is the longest host line accepted, excluding the line ending.
const MaxLineBytes = 128

// Framer splits a byte stream into lines ended by "\n" or "\r\n". Lines longer than
// MaxLineBytes are discarded up to the next newline.
type Framer struct {
	buf       [MaxLineBytes]byte
	n         int
	cr        bool
	overflow  bool
	Discarded int
}

// Feed consumes p and calls emit for every completed line, without the line ending.
// The slice passed to emit is only valid during the call.
func (f *Framer) Feed(p []byte, emit func(line []byte)) {
	for _, c := range p {
		switch {
		case c == '\n':
			if f.overflow {
				f.Discarded++
			} else {
				emit(f.buf[:f.n])
			}
			f.Reset()
		case f.cr:
			// A lone '\r' belongs to the line.
			f.cr = false
			f.put('\r')
			if c == '\r' {
				f.cr = true
			} else {
				f.put(c)
			}
		case c == '\r':
			f.cr = true
		default:
			f.put(c)
		}
	}
}

func (f *Framer) put(c byte) {
	if f.overflow {
		return
	}
	if f.n == len(f.buf) {
		f.overflow = true
		return
	}
	f.buf[f.n] = c
	f.n++
}

// Reset drops any partial line.
func (f *Framer) Reset() {
	f.n = 0
	f.cr = false
	f.overflow = false
}
