package grammar

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, l := range p.Lines {
		b.WriteString(l.String() + "\n")
	}
	return b.String()
}

func (l *Line) String() string {
	switch {
	case l.Comment != nil:
		return l.Comment.Text
	case l.Def != nil:
		return l.Def.String()
	case l.Constrain != nil:
		return l.Constrain.String()
	default:
		return ""
	}
}

func (d *Definition) String() string {
	return fmt.Sprintf("%%%d : %s = %s", d.Result, d.Type, d.Rhs.String())
}

func (r *Rhs) String() string {
	switch {
	case r.Param:
		return "param"
	case r.Not != nil:
		return "not " + r.Not.String()
	case r.Binary != nil:
		return r.Binary.String()
	case r.Literal != nil:
		return *r.Literal
	default:
		return ""
	}
}

func (b *BinaryRhs) String() string {
	return fmt.Sprintf("%s %s, %s", b.Op, b.Lhs.String(), b.Rhs.String())
}

func (o *Operand) String() string {
	switch {
	case o.Ref != nil:
		return fmt.Sprintf("%%%d", *o.Ref)
	case o.Bool != nil:
		return *o.Bool
	case o.Number != nil:
		return *o.Number
	default:
		return ""
	}
}

func (c *ConstrainStmt) String() string {
	s := fmt.Sprintf("constrain %s == %s", c.Lhs.String(), c.Rhs.String())
	if c.Msg != nil {
		s += " " + *c.Msg
	}
	return s
}
