package beeper

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRecipientGrowthPreservesEntries(t *testing.T) {
	cleanRegistry(t)
	b, err := New("svc")
	require.NoError(t, err)
	require.Equal(t, RecipientSlots, b.recipients.capacity())

	var want []Recipient
	for i := range 9 {
		buf := &bytes.Buffer{}
		r := Recipient{Destination: buf, Wide: i%2 == 0, Formatted: i%3 == 0}
		require.NoError(t, AddRecipient(buf, r.Wide, r.Formatted))
		want = append(want, r)
	}
	assert.Equal(t, 16, b.recipients.capacity())
	assert.Equal(t, want, b.Recipients())
}

func TestRemoveRecipientReducesCountByOne(t *testing.T) {
	cleanRegistry(t)
	b, err := New("svc")
	require.NoError(t, err)

	bufs := make([]*bytes.Buffer, 4)
	for i := range bufs {
		bufs[i] = &bytes.Buffer{}
		require.NoError(t, AddRecipient(bufs[i], false, false))
	}
	require.NoError(t, RemoveRecipient(bufs[1]))
	assert.Len(t, b.Recipients(), 3)
	assert.Equal(t, RecipientSlots, b.recipients.capacity())

	// The freed slot is reused before the table grows.
	fresh := &bytes.Buffer{}
	require.NoError(t, AddRecipient(fresh, true, false))
	assert.Equal(t, RecipientSlots, b.recipients.capacity())
	assert.Same(t, fresh, b.Recipients()[1].Destination)
}

func TestRemoveRecipientRemovesOneDuplicate(t *testing.T) {
	cleanRegistry(t)
	b, err := New("svc")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, AddRecipient(&buf, false, false))
	require.NoError(t, AddRecipient(&buf, true, true))

	require.NoError(t, RemoveRecipient(&buf))
	got := b.Recipients()
	require.Len(t, got, 1)
	assert.True(t, got[0].Wide, "the later registration should remain")

	require.NoError(t, RemoveRecipient(&buf))
	assert.Equal(t, ResultInvalidFirst, Code(RemoveRecipient(&buf)))
}

func TestRecipientArgumentErrors(t *testing.T) {
	cleanRegistry(t)
	_, err := New("svc")
	require.NoError(t, err)

	var typedNil *bytes.Buffer
	cases := map[string]error{
		"nil":            AddRecipient(nil, false, false),
		"typed_nil":      AddRecipient(typedNil, false, false),
		"not_comparable": AddRecipient(sliceWriter("x"), false, false),
		"remove_nil":     RemoveRecipient(nil),
		"remove_unknown": RemoveRecipient(&bytes.Buffer{}),
	}
	for name, err := range cases {
		assert.ErrorIs(t, err, ErrInvalidArgument, name)
		assert.Equal(t, ResultInvalidFirst, Code(err), name)
	}
	assert.Empty(t, Active().Recipients())
}

func TestRecipientWrappedDestinations(t *testing.T) {
	cleanRegistry(t)
	b, err := New("svc")
	require.NoError(t, err)

	var buf bytes.Buffer
	wrapped := wrapWriter{&buf}
	require.NoError(t, AddRecipient(wrapped, false, false))

	bad := wrapWriter{sliceWriter(nil)}
	err = AddRecipient(bad, false, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, ResultInvalidFirst, Code(err))
	assert.NotPanics(t, func() { err = RemoveRecipient(bad) })
	assert.Equal(t, ResultInvalidFirst, Code(err))
	require.Len(t, b.Recipients(), 1)

	require.NoError(t, Info("kept"))
	assert.Contains(t, buf.String(), "kept")
	require.NoError(t, RemoveRecipient(wrapWriter{&buf}))
	assert.Empty(t, b.Recipients())
}

func TestAddRecipientSlotLimit(t *testing.T) {
	cleanRegistry(t)
	b, err := New("svc", WithSlotLimit(ThemeSlots))
	require.NoError(t, err)

	for i := range 8 {
		require.NoError(t, AddRecipient(&bytes.Buffer{}, false, false), fmt.Sprint(i))
	}
	err = AddRecipient(&bytes.Buffer{}, false, false)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, ResultNoMemory, Code(err))
	assert.Len(t, b.Recipients(), 8)
	assert.Equal(t, 8, b.recipients.capacity())
}

func TestRecipientOperationsWithoutActiveBeeper(t *testing.T) {
	cleanRegistry(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, AddRecipient(&buf, false, false), ErrInactive)
	assert.ErrorIs(t, AddTerminalRecipient(&buf, false), ErrInactive)
	assert.ErrorIs(t, RemoveRecipient(&buf), ErrInactive)
}
