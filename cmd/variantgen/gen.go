package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/wippyai/variant/errors"
)

// maxArity matches layout.MaxTypes.
const maxArity = 8

type position struct {
	I    int
	T    string
	Live int
}

type arity struct {
	N      int
	Name   string
	Params string
	Args   string
	Pos    []position
}

type file struct {
	Package string
	Arities []arity
}

func newArity(n int) arity {
	a := arity{N: n, Name: fmt.Sprintf("V%d", n)}
	params := make([]string, n)
	args := make([]string, n)
	for i := range n {
		t := fmt.Sprintf("T%d", i)
		params[i] = fmt.Sprintf("%s Alternative[%s]", t, t)
		args[i] = t
		a.Pos = append(a.Pos, position{I: i, T: t, Live: i + 1})
	}
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	return a
}

// Render produces the formatted source of the containers for arities
// from through to.
func Render(pkg string, from, to int) ([]byte, error) {
	if from < 2 || to > maxArity || from > to {
		return nil, errors.InvalidInput(errors.PhaseGenerate,
			fmt.Sprintf("arity range [%d, %d] outside [2, %d]", from, to, maxArity))
	}

	f := file{Package: pkg}
	for n := from; n <= to; n++ {
		f.Arities = append(f.Arities, newArity(n))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "execute template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "format output")
	}
	return src, nil
}

var tmpl = template.Must(template.New("variant").Parse(source))

const source = `// Code generated by variantgen. DO NOT EDIT.

package {{.Package}}

import (
	"reflect"

	"github.com/wippyai/variant/errors"
)
{{range .Arities}}{{$v := .}}
// {{.Name}} holds exactly one of {{.N}} alternatives. The zero value is empty.
type {{.Name}}[{{.Params}}] struct {
	s slot
}
{{range .Pos}}
// {{$v.Name}}Of{{.I}} returns a container holding x as alternative {{.I}}.
func {{$v.Name}}Of{{.I}}[{{$v.Params}}](x {{.T}}) *{{$v.Name}}[{{$v.Args}}] {
	v := new({{$v.Name}}[{{$v.Args}}])
	v.s.install({{.I}}, x)
	return v
}
{{end}}
// Tag returns the index of the live alternative, or Empty.
func (v *{{.Name}}[{{.Args}}]) Tag() Tag { return v.s.tag() }

// Len returns {{.N}}.
func (v *{{.Name}}[{{.Args}}]) Len() int { return {{.N}} }

// IsEmpty reports whether no alternative is live.
func (v *{{.Name}}[{{.Args}}]) IsEmpty() bool { return v.s.live == 0 }

// Value returns the live alternative, or nil when empty.
func (v *{{.Name}}[{{.Args}}]) Value() Echoer {
	e, _ := v.s.value.(Echoer)
	return e
}

// Types returns the alternatives in declaration order.
func (v *{{.Name}}[{{.Args}}]) Types() []reflect.Type {
	return []reflect.Type{ {{- range $i, $p := .Pos}}{{if $i}}, {{end}}reflect.TypeFor[{{$p.T}}](){{end -}} }
}

// Layout returns the raw storage layout of the instantiation.
func (v *{{.Name}}[{{.Args}}]) Layout() Layout { return mustLayout(v.Types()) }

func (v *{{.Name}}[{{.Args}}]) storage() *slot { return &v.s }

func (v *{{.Name}}[{{.Args}}]) indexOf(ptr any) Tag {
	switch ptr.(type) {
{{- range .Pos}}
	case *{{.T}}:
		return {{.I}}
{{- end}}
	}
	return Empty
}

// Echo forwards to the live alternative.
// Panics with an *errors.Error when the container is empty.
func (v *{{.Name}}[{{.Args}}]) Echo() string {
	switch v.s.tag() {
{{- range .Pos}}
	case {{.I}}:
		return as[{{.T}}](&v.s).Echo()
{{- end}}
	}
	panic(emptyDispatch(errors.PhaseDispatch))
}

// Clone returns a container holding a deep copy of the live value.
// Cloning an empty container returns an empty container.
func (v *{{.Name}}[{{.Args}}]) Clone() *{{.Name}}[{{.Args}}] {
	c := new({{.Name}}[{{.Args}}])
	switch v.s.tag() {
{{- range .Pos}}
	case {{.I}}:
		c.s.install({{.I}}, cloneOf[{{.T}}](&v.s))
{{- end}}
	}
	return c
}

// Move relocates the live value into a new container and leaves v empty.
func (v *{{.Name}}[{{.Args}}]) Move() *{{.Name}}[{{.Args}}] {
	m := new({{.Name}}[{{.Args}}])
	m.s = v.s
	v.s = slot{}
	return m
}

// Drop destroys the live value, if any, and leaves the container empty.
func (v *{{.Name}}[{{.Args}}]) Drop() { v.s.destroy() }

// Assign installs value as alternative tag, dropping the previous value.
// Assigning Empty drops the live value.
func (v *{{.Name}}[{{.Args}}]) Assign(tag Tag, value any) error {
	switch tag {
{{- range .Pos}}
	case {{.I}}:
		x, ok := accepts[{{.T}}](value)
		if !ok {
			return assignMismatch[{{.T}}](value)
		}
		v.Set{{.I}}(x)
{{- end}}
	case Empty:
		v.s.destroy()
	default:
		return badTag(tag, {{.N}})
	}
	return nil
}
{{range .Pos}}
// Is{{.I}} reports whether alternative {{.I}} is live.
func (v *{{$v.Name}}[{{$v.Args}}]) Is{{.I}}() bool { return v.s.live == {{.Live}} }

// Get{{.I}} returns the live {{.T}}.
// Panics with an *errors.Error when alternative {{.I}} is not live.
func (v *{{$v.Name}}[{{$v.Args}}]) Get{{.I}}() {{.T}} {
	if v.s.live != {{.Live}} {
		panic(mismatch[{{.T}}](errors.PhaseAccess, &v.s))
	}
	return as[{{.T}}](&v.s)
}

// UnsafeGet{{.I}} is Get{{.I}} without the tag check. The caller must have
// established Is{{.I}}; otherwise the result is unspecified.
func (v *{{$v.Name}}[{{$v.Args}}]) UnsafeGet{{.I}}() {{.T}} {
	return as[{{.T}}](&v.s)
}

// Take{{.I}} moves the live {{.T}} out and leaves the container empty.
// Panics with an *errors.Error when alternative {{.I}} is not live.
func (v *{{$v.Name}}[{{$v.Args}}]) Take{{.I}}() {{.T}} {
	if v.s.live != {{.Live}} {
		panic(mismatch[{{.T}}](errors.PhaseAccess, &v.s))
	}
	x, _ := v.s.release().({{.T}})
	return x
}

// UnsafeTake{{.I}} is Take{{.I}} without the tag check. Whatever was live is
// released without being dropped.
func (v *{{$v.Name}}[{{$v.Args}}]) UnsafeTake{{.I}}() {{.T}} {
	x, _ := v.s.release().({{.T}})
	return x
}

// Set{{.I}} drops the live value, if any, and installs x.
func (v *{{$v.Name}}[{{$v.Args}}]) Set{{.I}}(x {{.T}}) {
	v.s.destroy()
	v.s.install({{.I}}, x)
}
{{end}}
// Match{{.N}} calls the function for the live alternative of v and returns its
// result. Panics with an *errors.Error when v is empty.
func Match{{.N}}[R any, {{.Params}}](v *{{.Name}}[{{.Args}}],
{{- range $i, $p := .Pos}}{{if $i}},{{end}} f{{$p.I}} func({{$p.T}}) R{{end}}) R {
	switch v.s.tag() {
{{- range .Pos}}
	case {{.I}}:
		return f{{.I}}(as[{{.T}}](&v.s))
{{- end}}
	}
	panic(emptyDispatch(errors.PhaseDispatch))
}
{{end}}`
