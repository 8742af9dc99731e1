package input


// Custom is the user-defined Input variant: a carrier context plus a set
// of callbacks implementing the capability set. Identity and hashing
// semantics are entirely user-defined.
type Custom struct {
	Context     any
	EqualsFn    func(ctx any, other *Custom) bool
	HashFn      func(ctx any) uint64
	LenFn       func(ctx any) int
	CloneFn     func(ctx any) any
	SubRangeFn  func(ctx any, offset, length int) (any, error)
	AppendFn    func(ctx any, otherCtx any) (any, error)
}

func (c *Custom) Equals(other Input) bool {
	o, ok := other.(*Custom)
	if ! ok { return false }

	return c.EqualsFn(c.Context, o)
}

func (c *Custom) Hash() uint64 { return c.HashFn(c.Context) }

func (c *Custom) Len() int { return c.LenFn(c.Context) }

func (c *Custom) Clone() Input {
	return &Custom{
		Context:    c.CloneFn(c.Context),
		EqualsFn:   c.EqualsFn,
		HashFn:     c.HashFn,
		LenFn:      c.LenFn,
		CloneFn:    c.CloneFn,
		SubRangeFn: c.SubRangeFn,
		AppendFn:   c.AppendFn,
	}
}

func (c *Custom) SubRange(offset, length int) (Input, error) {
	ctx, err := c.SubRangeFn(c.Context, offset, length)
	if err != nil { return nil, err }

	return &Custom{
		Context:    ctx,
		EqualsFn:   c.EqualsFn,
		HashFn:     c.HashFn,
		LenFn:      c.LenFn,
		CloneFn:    c.CloneFn,
		SubRangeFn: c.SubRangeFn,
		AppendFn:   c.AppendFn,
	}, nil
}

func (c *Custom) Append(other Input) (Input, error) {
	o, ok := other.(*Custom)
	if ! ok { return nil, ErrInvalidArgument }

	ctx, err := c.AppendFn(c.Context, o.Context)
	if err != nil { return nil, err }

	return &Custom{
		Context:    ctx,
		EqualsFn:   c.EqualsFn,
		HashFn:     c.HashFn,
		LenFn:      c.LenFn,
		CloneFn:    c.CloneFn,
		SubRangeFn: c.SubRangeFn,
		AppendFn:   c.AppendFn,
	}, nil
}
