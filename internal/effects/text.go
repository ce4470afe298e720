package effects

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const counterSteps = 200

// Counter counts a stat up to its target, one step per frame.
type Counter struct {
	target  int
	step    float64
	current float64
	done    bool
}

// NewCounter counts towards target in 200 steps.
func NewCounter(target int) *Counter {
	return &Counter{target: target, step: float64(target) / counterSteps}
}

// ParseCounter reads a stat such as "150+".
func ParseCounter(text string) (int, error) {
	return strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(text), "+"))
}

// Step advances one frame and returns the text to display and whether
// another frame is needed.
func (c *Counter) Step() (string, bool) {
	if c.done {
		return strconv.Itoa(c.target) + "+", false
	}
	if c.current < float64(c.target) && c.step > 0 {
		c.current += c.step
		return strconv.Itoa(int(math.Ceil(c.current))) + "+", true
	}
	c.done = true
	return strconv.Itoa(c.target) + "+", false
}

// Typewriter reveals text one character at a time after a start delay.
type Typewriter struct {
	text  []rune
	start time.Time
	delay time.Duration
	speed time.Duration
}

// TypeSpeed is the pause between characters.
const TypeSpeed = 100 * time.Millisecond

// NewTypewriter starts typing text delay after start.
func NewTypewriter(text string, start time.Time, delay time.Duration) *Typewriter {
	return &Typewriter{text: []rune(text), start: start, delay: delay, speed: TypeSpeed}
}

// Visible returns the typed prefix at now.
func (t *Typewriter) Visible(now time.Time) string {
	return string(t.text[:t.count(now)])
}

// Done reports whether every character has been typed.
func (t *Typewriter) Done(now time.Time) bool {
	return t.count(now) == len(t.text)
}

func (t *Typewriter) count(now time.Time) int {
	elapsed := now.Sub(t.start) - t.delay
	if elapsed < 0 {
		return 0
	}
	n := int(elapsed/t.speed) + 1
	if n > len(t.text) {
		n = len(t.text)
	}
	return n
}
