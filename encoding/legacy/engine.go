package legacy

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/viant/phpjson"
)

// Engine encodes phpjson values. Engines are stateless and safe for concurrent use.
type Engine struct {
	strict bool
}

type pathSegment struct {
	name  string
	index int
	isKey bool
}

type pathStack struct {
	segments []pathSegment
	depth    int
}

type encoderSession struct {
	buf  []byte
	path pathStack
}

var sessionPool = sync.Pool{New: func() interface{} { return &encoderSession{buf: make([]byte, 0, 256)} }}

// New creates an engine; a strict engine fails on unrepresentable values instead of skipping them.
func New(strict bool) *Engine {
	return &Engine{strict: strict}
}

// Marshal encodes value into a new byte slice.
func (e *Engine) Marshal(value phpjson.Value) ([]byte, error) {
	sess := acquireSession()
	defer releaseSession(sess)
	if err := e.appendValue(sess, value); err != nil {
		return nil, err
	}
	out := append([]byte(nil), sess.buf...)
	return out, nil
}

// MarshalString encodes value into a string.
func (e *Engine) MarshalString(value phpjson.Value) (string, error) {
	sess := acquireSession()
	defer releaseSession(sess)
	if err := e.appendValue(sess, value); err != nil {
		return "", err
	}
	return string(sess.buf), nil
}

// MarshalTo appends encoded value to dst and returns the resulting slice.
func (e *Engine) MarshalTo(dst []byte, value phpjson.Value) ([]byte, error) {
	dst = ensureSpare(dst, 128)
	sess := encoderSession{buf: dst}
	if err := e.appendValue(&sess, value); err != nil {
		return nil, err
	}
	return sess.buf, nil
}

func ensureSpare(dst []byte, minSpare int) []byte {
	if cap(dst)-len(dst) >= minSpare {
		return dst
	}
	if cap(dst) > 0 {
		return dst
	}
	grown := make([]byte, len(dst), len(dst)+minSpare)
	copy(grown, dst)
	return grown
}

func acquireSession() *encoderSession {
	s := sessionPool.Get().(*encoderSession)
	s.buf = s.buf[:0]
	s.path.reset()
	return s
}

func releaseSession(s *encoderSession) {
	const maxPooledCap = 64 << 10
	if cap(s.buf) > maxPooledCap {
		s.buf = make([]byte, 0, 256)
	}
	s.buf = s.buf[:0]
	s.path.reset()
	sessionPool.Put(s)
}

func (p *pathStack) reset() {
	p.depth = 0
}

func (p *pathStack) push(seg pathSegment) {
	if p.depth < len(p.segments) {
		p.segments[p.depth] = seg
	} else {
		p.segments = append(p.segments, seg)
	}
	p.depth++
}

func (p *pathStack) pop() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *pathStack) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, seg := range p.segments[:p.depth] {
		if seg.isKey {
			sb.WriteByte('.')
			sb.WriteString(seg.name)
			continue
		}
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(seg.index))
		sb.WriteByte(']')
	}
	return sb.String()
}

func (e *Engine) unrepresentable(sess *encoderSession, kind phpjson.Kind) error {
	if !e.strict {
		return nil
	}
	return &UnrepresentableError{Path: sess.path.String(), Kind: kind}
}

func (e *Engine) appendValue(sess *encoderSession, value phpjson.Value) error {
	switch value.Kind() {
	case phpjson.KindInt:
		sess.buf = strconv.AppendInt(sess.buf, value.Int(), 10)
		return nil
	case phpjson.KindText:
		sess.buf = appendQuoted(sess.buf, value.Text())
		return nil
	case phpjson.KindFloat:
		f := value.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return e.unrepresentable(sess, phpjson.KindFloat)
		}
		sess.buf = strconv.AppendFloat(sess.buf, f, 'g', -1, 64)
		return nil
	case phpjson.KindNull:
		sess.buf = append(sess.buf, "null"...)
		return nil
	case phpjson.KindBool:
		if value.Bool() {
			sess.buf = append(sess.buf, "true"...)
		} else {
			sess.buf = append(sess.buf, "false"...)
		}
		return nil
	case phpjson.KindSequence:
		return e.appendItems(sess, value.Items())
	case phpjson.KindArray:
		if value.IsList() {
			return e.appendListEntries(sess, value.Entries())
		}
		return e.appendObject(sess, value.Entries())
	case phpjson.KindRecord:
		return e.appendObject(sess, value.Entries())
	}
	return e.unrepresentable(sess, value.Kind())
}

func (e *Engine) appendItems(sess *encoderSession, items []phpjson.Value) error {
	sess.buf = append(sess.buf, '[')
	for i, item := range items {
		if i > 0 {
			sess.buf = append(sess.buf, ',')
		}
		if err := e.appendChild(sess, pathSegment{index: i}, item); err != nil {
			return err
		}
	}
	sess.buf = append(sess.buf, ']')
	return nil
}

func (e *Engine) appendListEntries(sess *encoderSession, entries []phpjson.Entry) error {
	sess.buf = append(sess.buf, '[')
	for i := range entries {
		if i > 0 {
			sess.buf = append(sess.buf, ',')
		}
		if err := e.appendChild(sess, pathSegment{index: i}, entries[i].Value); err != nil {
			return err
		}
	}
	sess.buf = append(sess.buf, ']')
	return nil
}

func (e *Engine) appendObject(sess *encoderSession, entries []phpjson.Entry) error {
	sess.buf = append(sess.buf, '{')
	for i := range entries {
		if i > 0 {
			sess.buf = append(sess.buf, ',')
		}
		name := entries[i].Key.String()
		sess.buf = appendQuoted(sess.buf, name)
		sess.buf = append(sess.buf, ':')
		if err := e.appendChild(sess, pathSegment{name: name, isKey: true}, entries[i].Value); err != nil {
			return err
		}
	}
	sess.buf = append(sess.buf, '}')
	return nil
}

func (e *Engine) appendChild(sess *encoderSession, seg pathSegment, value phpjson.Value) error {
	if !e.strict {
		return e.appendValue(sess, value)
	}
	sess.path.push(seg)
	err := e.appendValue(sess, value)
	sess.path.pop()
	return err
}
