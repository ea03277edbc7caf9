//go:build unit

package commands_test

import (
	"testing"

	"stock-reservation/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind_Retryable(t *testing.T) {
	testCases := map[commands.ErrorKind]bool{
		commands.KindDuplicatePurchaseAttempt: true,
		commands.KindSystemError:              true,
		commands.KindProductNotFound:          false,
		commands.KindOutOfStock:               false,
		commands.KindInsufficientStock:        false,
	}
	for kind, want := range testCases {
		assert.Equal(t, want, kind.Retryable(), string(kind))
	}
}
