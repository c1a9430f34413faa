// Package errors provides coded errors for block-cats.
//
// Errors carry a Code, a message safe to show a player, an optional cause and
// free-form metadata:
//
//	err := errors.FailedPreconditionf("cell (%d,%d) is occupied", row, col).
//	    WithMeta("reason", "occupied")
//
// Wrapping keeps the code of the inner error:
//
//	if err := repo.SaveQuestProgress(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save quest progress")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) || errors.IsDataLoss(err) {
//	    // fall back to fresh state
//	}
//
// Layer guidelines:
//   - Repositories return NotFound for a missing key and DataLoss for a blob
//     that no longer parses.
//   - Orchestrators validate input with InvalidArgument and report rule
//     violations (occupied cells, empty inventory) with FailedPrecondition,
//     OutOfRange or ResourceExhausted.
//   - The CLI reports failures with Status and exits with ExitCode.
package errors
