package lineedit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countAction(n *int) Action {
	return func(byte) error {
		*n++
		return nil
	}
}

func TestDispatcherSimpleCommand(t *testing.T) {
	d := NewDispatcher()
	called := 0
	d.BindByte('a', countAction(&called))

	require.NoError(t, d.Run(strings.NewReader("a")))
	assert.Equal(t, 1, called)
}

func TestDispatcherLongestCommandMatches(t *testing.T) {
	d := NewDispatcher()
	var calledA, calledAB, calledABC int
	d.Bind([]byte("a"), countAction(&calledA))
	d.Bind([]byte("ab"), countAction(&calledAB))
	d.Bind([]byte("abc"), countAction(&calledABC))

	require.NoError(t, d.Run(strings.NewReader("abc")))

	assert.Equal(t, 0, calledA)
	assert.Equal(t, 0, calledAB)
	assert.Equal(t, 1, calledABC)
}

func TestDispatcherDefaultCommand(t *testing.T) {
	d := NewDispatcher()
	var calledA, calledDefault int
	d.BindByte('a', countAction(&calledA))
	d.SetFallback(countAction(&calledDefault))

	require.NoError(t, d.Run(strings.NewReader("x")))

	assert.Equal(t, 1, calledDefault)
	assert.Equal(t, 0, calledA)
}

func TestDispatcherEmptyInputStopsReading(t *testing.T) {
	d := NewDispatcher()
	var called int
	d.BindByte('a', countAction(&called))
	d.SetFallback(countAction(&called))

	require.NoError(t, d.Run(strings.NewReader("")))
	assert.Equal(t, 0, called)
}

func TestDispatcherConsecutiveCommands(t *testing.T) {
	d := NewDispatcher()
	var order []byte
	record := func(c byte) Action {
		return func(byte) error {
			order = append(order, c)
			return nil
		}
	}
	d.BindByte('a', record('a'))
	d.BindByte('b', record('b'))

	require.NoError(t, d.Run(strings.NewReader("ab")))
	assert.Equal(t, []byte("ab"), order)
}

func TestDispatcherConsecutiveCommandsWithDefault(t *testing.T) {
	d := NewDispatcher()
	var calledA, calledB, calledDefault int
	d.BindByte('a', countAction(&calledA))
	d.BindByte('b', countAction(&calledB))
	d.SetFallback(countAction(&calledDefault))

	require.NoError(t, d.Run(strings.NewReader("abcde")))

	assert.Equal(t, 1, calledA)
	assert.Equal(t, 1, calledB)
	assert.Equal(t, 3, calledDefault)
}

func TestDispatcherAmbiguousPrefixPushBack(t *testing.T) {
	d := NewDispatcher()
	var calledA, calledAB, calledDefault int
	var defaultBytes []byte
	d.Bind([]byte("a"), countAction(&calledA))
	d.Bind([]byte("ab"), countAction(&calledAB))
	d.SetFallback(func(c byte) error {
		calledDefault++
		defaultBytes = append(defaultBytes, c)
		return nil
	})

	// 'x' cannot extend "a", so the shorter match fires and 'x' is
	// reconsidered from the root, landing in the fallback.
	require.NoError(t, d.Run(strings.NewReader("ax")))

	assert.Equal(t, 1, calledA)
	assert.Equal(t, 0, calledAB)
	assert.Equal(t, 1, calledDefault)
	assert.Equal(t, []byte("x"), defaultBytes)
}

func TestDispatcherPrefixAtEndOfInputDoesNotFire(t *testing.T) {
	d := NewDispatcher()
	var calledESC int
	d.Bind([]byte{KeyEsc, '[', 'D'}, countAction(&calledESC))
	d.SetFallback(func(byte) error { return nil })

	// Input ends mid-sequence: nothing fires, no error.
	require.NoError(t, d.Run(strings.NewReader("\x1b[")))
	assert.Equal(t, 0, calledESC)
}

func TestDispatcherUnknownByteWithoutFallback(t *testing.T) {
	d := NewDispatcher()
	d.BindByte('a', noopAction)

	err := d.Run(strings.NewReader("z"))

	var unknownErr *UnknownCommandError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, byte('z'), unknownErr.Byte)
}

func TestDispatcherFallbackReceivesLiteralByte(t *testing.T) {
	d := NewDispatcher()
	var got []byte
	d.SetFallback(func(c byte) error {
		got = append(got, c)
		return nil
	})

	require.NoError(t, d.Run(strings.NewReader("hi")))
	assert.Equal(t, []byte("hi"), got)
}

func TestDispatcherStopFromAction(t *testing.T) {
	d := NewDispatcher()
	var calledA, calledB int
	d.BindByte('a', func(byte) error {
		calledA++
		d.Stop()
		return nil
	})
	d.BindByte('b', countAction(&calledB))

	require.NoError(t, d.Run(strings.NewReader("ab")))

	assert.Equal(t, 1, calledA)
	assert.Equal(t, 0, calledB)
}

func TestDispatcherActionErrorAborts(t *testing.T) {
	d := NewDispatcher()
	boom := errors.New("boom")
	d.BindByte('a', func(byte) error { return boom })

	assert.ErrorIs(t, d.Run(strings.NewReader("abc")), boom)
}

func TestDispatcherResetClearsSessionState(t *testing.T) {
	d := NewDispatcher()
	var called int
	d.BindByte('a', func(byte) error {
		called++
		d.Stop()
		return nil
	})

	require.NoError(t, d.Run(strings.NewReader("a")))
	require.Equal(t, 1, called)

	// Without Reset the stop flag would make the next Run return at once.
	d.Reset()
	require.NoError(t, d.Run(strings.NewReader("a")))
	assert.Equal(t, 2, called)
}

func TestDispatcherLastByte(t *testing.T) {
	d := NewDispatcher()
	d.SetFallback(func(byte) error { return nil })

	require.NoError(t, d.Run(strings.NewReader("xyz")))
	assert.Equal(t, byte('z'), d.LastByte())
}
