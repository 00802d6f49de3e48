package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "party not found")
	s.Equal("NOT_FOUND: party not found", err.Error())
	s.Equal(errors.CodeNotFound, err.Code)
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("world %s is not loaded", "overworld").WithMeta("world", "overworld")
	wrapped := errors.Wrap(base, "failed to attach watcher")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("overworld", wrapped.Meta["world"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapStandardErrorIsInternal() {
	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to flush")
	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to flush", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	base := errors.NotFoundf("missing party %s", "p1").WithMeta("party_id", "p1")
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("p1", wrapped.Meta["party_id"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFoundf("a"), "b"), errors.NotFoundf("c")))
	s.False(errors.Is(errors.NotFoundf("a"), errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.InvalidArgument("bad world"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("bad world", st.Message())

	back := errors.FromGRPCError(status.Error(codes.Unavailable, "redis down"))
	s.Equal(errors.CodeUnavailable, errors.GetCode(back))
	s.Equal("redis down", errors.GetMessage(back))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("party.max_size", 0, 1, 16, vb)
	errors.ValidatePositive("proximity.radius", -1, vb)
	errors.ValidateRequired("world", "  ", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "party.max_size: must be between 1 and 16")
	s.Contains(err.Error(), "proximity.radius: must be positive")
	s.Contains(err.Error(), "world: is required")

	s.NoError(errors.NewValidationBuilder().Build())
}
