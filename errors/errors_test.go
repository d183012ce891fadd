package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsWrap(t *testing.T) {
	cases := map[string]struct {
		err      error
		root     *Error
		wantMsg  string
		wantCode uint32
	}{
		"wrap of a root error": {
			err:      Wrap(ErrNotFound, "404"),
			root:     ErrNotFound,
			wantMsg:  "404: not found",
			wantCode: 3,
		},
		"wrap of a wrapped error": {
			err:      Wrap(Wrap(ErrState, "inner"), "outer"),
			root:     ErrState,
			wantMsg:  "outer: inner: invalid state",
			wantCode: 10,
		},
		"formatted wrap": {
			err:      Wrapf(ErrDuplicate, "id %d", 42),
			root:     ErrDuplicate,
			wantMsg:  "id 42: duplicate",
			wantCode: 6,
		},
		"new with description": {
			err:      ErrInput.New("bad payload"),
			root:     ErrInput,
			wantMsg:  "bad payload: invalid input",
			wantCode: 14,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			require.True(t, tc.root.Is(tc.err))
			assert.Equal(t, tc.wantMsg, tc.err.Error())
			assert.Equal(t, tc.wantCode, Code(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestIsRequiresRootMatch(t *testing.T) {
	err := Wrap(ErrNotFound, "it is gone")
	assert.True(t, ErrNotFound.Is(err))
	assert.False(t, ErrUnauthorized.Is(err))
	assert.False(t, ErrNotFound.Is(fmt.Errorf("not found")))
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, CodeInternalErr, Code(fmt.Errorf("any")))
	assert.Equal(t, uint32(0), Code(nil))
}

func TestAppend(t *testing.T) {
	assert.Nil(t, Append(nil, nil))

	single := Wrap(ErrEmpty, "nothing here")
	assert.Equal(t, single, Append(nil, single))

	combined := Append(
		Wrap(ErrEmpty, "first"),
		nil,
		Wrap(ErrState, "second"),
	)
	require.Error(t, combined)
	assert.True(t, Contains(combined, ErrEmpty))
	assert.True(t, Contains(combined, ErrState))
	assert.False(t, Contains(combined, ErrNotFound))

	// Nested append must flatten.
	flat := Append(combined, Wrap(ErrType, "third"))
	assert.Len(t, flat.(multiError), 3)
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("the end is near")
	}
	err := run()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
}

func TestRegisterPanicsOnCollision(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "also unauthorized")
}
