package selector

// Combinator tokens. Any other string is accepted by Combine as well and is
// reproduced as is.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)

// Combined joins two selectors with a combinator. Either side may itself be
// Combined. Combined is immutable.
type Combined struct {
	left       Node
	combinator string
	right      Node
}

// Left returns left operand.
func (c *Combined) Left() Node { return c.left }

// Right returns right operand.
func (c *Combined) Right() Node { return c.right }

// Combinator returns combinator token as given.
func (c *Combined) Combinator() string { return c.combinator }

// Render returns "<left> <combinator> <right>". Operands with rejected
// fragments render only what was accepted, check Err first.
func (c *Combined) Render() string {
	return c.left.Render() + " " + c.combinator + " " + c.right.Render()
}

// Err returns first fragment error found in operands, left first.
func (c *Combined) Err() error {
	if err := c.left.Err(); err != nil {
		return err
	}
	return c.right.Err()
}

func (c *Combined) String() string {
	return c.Render()
}
