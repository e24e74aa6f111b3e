package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "dungeon session not found",
			expected: "NOT_FOUND: dungeon session not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "party level out of range",
			expected: "INVALID_ARGUMENT: party level out of range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain error becomes internal", func() {
		baseErr := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(baseErr, "failed to store session")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("failed to store session", wrapped.Message)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("structured error keeps its code and meta", func() {
		baseErr := errors.NotFound("session not found").WithMeta("session_id", "dgn_1")
		wrapped := errors.Wrapf(baseErr, "failed to load %s", "dgn_1")

		s.Equal(errors.CodeNotFound, wrapped.Code)
		s.Equal("failed to load dgn_1", wrapped.Message)
		s.Equal("dgn_1", wrapped.Meta["session_id"])
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "should be nil"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
	})
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("catalog unreadable").WithMeta("path", "monsters.json")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeFailedPrecondition, "population unavailable")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal("monsters.json", wrapped.Meta["path"])
	s.True(errors.IsFailedPrecondition(wrapped))
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgumentf("invalid level: %d", 25)
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsNotFound(invalidErr))
	s.True(errors.IsInvalidArgument(invalidErr))
	s.Equal("invalid level: 25", errors.GetMessage(invalidErr))

	s.Equal(errors.CodeNotFound, errors.GetCode(wrappedErr))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Nil(errors.GetMeta(fmt.Errorf("standard error")))

	s.True(notFoundErr.Is(errors.NotFound("other")))
	s.False(notFoundErr.Is(invalidErr))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	s.Run("code and message survive", func() {
		err := errors.NotFound("dungeon session not found")

		st, ok := status.FromError(errors.ToGRPCError(err))
		s.Require().True(ok)
		s.Equal(codes.NotFound, st.Code())
		s.Equal("dungeon session not found", st.Message())
	})

	s.Run("meta round trips through status details", func() {
		err := errors.InvalidArgument("bad input").
			WithMeta("field", "party_level").
			WithMeta("value", 25)

		back := errors.FromGRPCError(errors.ToGRPCError(err))

		s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
		meta := errors.GetMeta(back)
		s.Equal("party_level", meta["field"])
		s.Equal(float64(25), meta["value"])
	})

	s.Run("unsupported meta values are stringified", func() {
		err := errors.InvalidArgument("bad").WithMeta("fields", map[string][]string{"x": {"bad"}})

		back := errors.FromGRPCError(errors.ToGRPCError(err))
		s.Equal("map[x:[bad]]", errors.GetMeta(back)["fields"])
	})

	s.Run("plain errors become internal", func() {
		st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
		s.Require().True(ok)
		s.Equal(codes.Internal, st.Code())
	})

	s.Run("status errors pass through", func() {
		original := status.Error(codes.Unavailable, "down")
		s.Equal(original, errors.ToGRPCError(original))
		s.True(errors.IsUnavailable(errors.FromGRPCError(original)))
	})
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
