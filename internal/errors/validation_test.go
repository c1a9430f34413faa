package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/block-cats/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Client").
		Fieldf("Slot", "must be between %d and %d", 0, 2)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("INVALID_ARGUMENT: validation failed: Client: is required; Slot: must be between 0 and 2", err.Error())
	s.NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", "  ", vb)
	errors.ValidateRange("Row", 8, 0, 7, vb)
	errors.ValidateRange("Col", 3, 0, 7, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "PlayerID: is required")
	s.Contains(err.Error(), "Row: must be between 0 and 7")
	s.NotContains(err.Error(), "Col")
}
