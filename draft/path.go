package draft

import (
	"fmt"
	"strings"
)

// Seg is one step of a field path. Index is -1 when the segment names a
// field or group rather than a record inside it.
type Seg struct {
	Name  string
	Index int
}

func F(name string) Seg         { return Seg{Name: name, Index: -1} }
func At(name string, i int) Seg { return Seg{Name: name, Index: i} }

// Path addresses a field inside the draft tree, e.g.
// rooms[2].roomFacilities. Paths are the typed form; String() renders the
// dotted form used as error-map keys.
type Path []Seg

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Name)
		if s.Index >= 0 {
			fmt.Fprintf(&b, "[%d]", s.Index)
		}
	}
	return b.String()
}

// Child extends the path by one segment.
func (p Path) Child(s Seg) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}
