// Package glbuild writes GLSL distance function programs from trees of
// shader nodes.
package glbuild

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/soypat/glgl/math/ms3"
)

// Shader stores information for generating a GLSL distance function.
type Shader interface {
	// AppendShaderName appends the name of the GL shader function
	// to the buffer and returns the result. It should be unique to that shader.
	AppendShaderName(b []byte) []byte
	// AppendShaderBody appends the body of the shader function to the
	// buffer and returns the result. The body reads the position p.
	AppendShaderBody(b []byte) []byte
}

// Shader3D is a shader node of a 3D distance field.
type Shader3D interface {
	Shader
	ForEachChild(userData any, fn func(userData any, s *Shader3D) error) error
	Bounds() ms3.Box
}

var errNilChild = errors.New("got nil child shader")

// WriteProgram writes the functions of every node of root, children first,
// and returns the name of the function of root.
func WriteProgram(w io.Writer, root Shader3D) (name string, n int, err error) {
	name, nodes, err := ParseAppendNodes(nil, root)
	if err != nil {
		return "", 0, err
	}
	n, err = WriteShaders(w, nodes, nil)
	return name, n, err
}

// ParseAppendNodes appends all nodes of the tree in breadth first order
// to dst and returns the result with the name of the root function.
func ParseAppendNodes(dst []Shader3D, root Shader3D) (baseName string, nodes []Shader3D, err error) {
	if root == nil {
		return "", nil, errors.New("nil shader object")
	}
	baseName = string(root.AppendShaderName([]byte{}))
	if baseName == "" {
		return "", nil, errors.New("empty shader name")
	}
	dst, err = AppendAllNodes(dst, root)
	if err != nil {
		return "", nil, err
	}
	return baseName, dst, nil
}

// AppendAllNodes iterates over all of root's descendants and appends them
// to dst, root first.
func AppendAllNodes(dst []Shader3D, root Shader3D) ([]Shader3D, error) {
	children := []Shader3D{root}
	for next := 0; next < len(children); next++ {
		err := children[next].ForEachChild(nil, func(_ any, s *Shader3D) error {
			if s == nil || *s == nil {
				return errNilChild
			}
			children = append(children, *s)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return append(dst, children...), nil
}

// WriteShaders iterates over the argument nodes in reverse order and
// writes their GL code to the writer. scratch is an auxiliary buffer to avoid heap allocations.
// Functions sharing a name are written once.
func WriteShaders(w io.Writer, nodes []Shader3D, scratch []byte) (n int, err error) {
	if scratch == nil {
		scratch = make([]byte, 512)
	}
	written := make(map[string]bool)
	for i := len(nodes) - 1; i >= 0; i-- {
		name := string(nodes[i].AppendShaderName(scratch[:0]))
		if written[name] {
			continue
		}
		written[name] = true
		ngot, err := WriteShader(w, nodes[i], scratch[:0])
		n += ngot
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriteShader writes the GL code of a single shader to the writer. scratch is an auxiliary buffer to prevent allocations.
func WriteShader(w io.Writer, s Shader3D, scratch []byte) (int, error) {
	scratch = scratch[:0]
	scratch = append(scratch, "float "...)
	scratch = s.AppendShaderName(scratch)
	scratch = append(scratch, "(vec3 p) {\n"...)
	scratch = s.AppendShaderBody(scratch)
	scratch = append(scratch, "\n}\n\n"...)
	return w.Write(scratch)
}

func AppendVec3Decl(b []byte, name string, v ms3.Vec) []byte {
	b = append(b, "vec3 "...)
	b = append(b, name...)
	b = append(b, "=vec3("...)
	arr := [3]float32{v.X, v.Y, v.Z}
	b = AppendFloats(b, arr[:], ',', '-', '.')
	b = append(b, ')', ';', '\n')
	return b
}

func AppendFloatDecl(b []byte, name string, v float32) []byte {
	b = append(b, "float "...)
	b = append(b, name...)
	b = append(b, '=')
	b = AppendFloat(b, v, '-', '.')
	b = append(b, ';', '\n')
	return b
}

// AppendMat3Decl declares a mat3 from row major entries.
func AppendMat3Decl(b []byte, name string, rows [9]float32) []byte {
	b = append(b, "mat3 "...)
	b = append(b, name...)
	b = append(b, "=mat3("...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b = AppendFloat(b, rows[j*3+i], '-', '.') // Column major, as per OpenGL standard.
			if i != 2 || j != 2 {
				b = append(b, ',')
			}
		}
	}
	b = append(b, ");\n"...)
	return b
}

func AppendDistanceDecl(b []byte, s Shader, name, input string) []byte {
	b = append(b, "float "...)
	b = append(b, name...)
	b = append(b, '=')
	b = s.AppendShaderName(b)
	b = append(b, '(')
	b = append(b, input...)
	b = append(b, ");\n"...)
	return b
}

// AppendFloat appends v with six decimals and trailing zeros trimmed. The
// minus sign and decimal point are replaced by neg and decimal, which
// allows floats in function names.
func AppendFloat(b []byte, v float32, neg, decimal byte) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'f', 6, 32)
	idx := bytes.IndexByte(b[start:], '.')
	if decimal != '.' && idx >= 0 {
		b[start+idx] = decimal
	}
	if b[start] == '-' {
		b[start] = neg
	}
	// Finally trim zeroes.
	end := len(b)
	for i := len(b) - 1; idx >= 0 && i > idx+start && b[i] == '0'; i-- {
		end--
	}
	return b[:end]
}

func AppendFloats(b []byte, s []float32, sep, neg, decimal byte) []byte {
	for i, v := range s {
		b = AppendFloat(b, v, neg, decimal)
		if sep != 0 && i != len(s)-1 {
			b = append(b, sep)
		}
	}
	return b
}
