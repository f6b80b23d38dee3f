// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.ErrCodeInternal, "unexpected failure"},
		{"not found", errors.ErrCodeReminderNotFound, "reminder abc not found"},
		{"validation", errors.ErrCodeValidation, "title must not be empty"},
		{"invalid transition", errors.ErrCodeReminderInvalidTransition, "erledigt -> aktiv is not defined"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestWrap_PreservesCauseChain(t *testing.T) {
	t.Parallel()

	sentinel := stderrors.New("disk full")
	wrapped := errors.Wrap(sentinel, errors.ErrCodeStorage, "failed to persist reminders")

	require.NotNil(t, wrapped)
	assert.True(t, stderrors.Is(wrapped, sentinel))
	assert.Equal(t, errors.ErrCodeStorage, errors.CodeOf(wrapped))
}

func TestWrap_NilCauseYieldsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, errors.Wrap(nil, errors.ErrCodeStorage, "ignored"))
}

func TestWithDetail_ReturnsCopy(t *testing.T) {
	t.Parallel()

	base := errors.NotFound("reminder not found")
	detailed := base.WithDetail("id=42")

	assert.Empty(t, base.Detail)
	assert.Equal(t, "id=42", detailed.Detail)
	assert.Contains(t, detailed.Error(), "id=42")
}

func TestCodeOf_NonAppErrorReportsInternal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.ErrCodeInternal, errors.CodeOf(stderrors.New("boom")))
	assert.Equal(t, errors.ErrorCode(""), errors.CodeOf(nil))
}

func TestCodeOf_FindsAppErrorThroughFmtWrapping(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeReminderNotFound, "not found")
	outer := fmt.Errorf("service: %w", inner)

	assert.Equal(t, errors.ErrCodeReminderNotFound, errors.CodeOf(outer))
	assert.True(t, errors.IsNotFound(outer))
}

func TestHTTPStatus_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeValidation, http.StatusBadRequest},
		{errors.ErrCodeDeadlineInvalidReference, http.StatusBadRequest},
		{errors.ErrCodeReminderNotFound, http.StatusNotFound},
		{errors.ErrCodeReminderInvalidTransition, http.StatusConflict},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrorCode("unmapped"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.code.HTTPStatus(), "code %s", tc.code)
	}
}
