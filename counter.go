package ubjson

// Counter is a trivial diagnostic EventSink that tallies events by kind
// instead of materializing a value tree.
//
// It exists to exercise the EventSink interface without allocating a
// value for every scalar, useful in tests and in the ubjsoncat CLI's
// -stats mode.
type Counter struct {
	Nulls      int
	Bools      int
	Ints       int
	Uints      int
	Doubles    int
	Strings    int
	Keys       int
	Arrays     int
	Objects    int
	MaxDepth   int
	depth      int
}

func (c *Counter) OnNull() error      { c.Nulls++; return nil }
func (c *Counter) OnBool(bool) error  { c.Bools++; return nil }
func (c *Counter) OnInt(int64) error  { c.Ints++; return nil }
func (c *Counter) OnUint(uint8) error { c.Uints++; return nil }
func (c *Counter) OnDouble(float64) error {
	c.Doubles++
	return nil
}
func (c *Counter) OnString(string, StringTag) error { c.Strings++; return nil }
func (c *Counter) OnKey(string) error                { c.Keys++; return nil }

func (c *Counter) OnBeginArray(int64, bool) error {
	c.Arrays++
	c.enter()
	return nil
}

func (c *Counter) OnEndArray() error {
	c.depth--
	return nil
}

func (c *Counter) OnBeginObject(int64, bool) error {
	c.Objects++
	c.enter()
	return nil
}

func (c *Counter) OnEndObject() error {
	c.depth--
	return nil
}

func (c *Counter) enter() {
	c.depth++
	if c.depth > c.MaxDepth {
		c.MaxDepth = c.depth
	}
}

var _ EventSink = (*Counter)(nil)
