package signin

import (
	"context"
	"fmt"
)

// Callback decides whether a sign-in attempt may proceed.
// A non-nil error rejects the attempt and its message is shown on the
// error page.
type Callback func(ctx context.Context, profile Profile, account Account, cc CallbackContext) (Decision, error)

// Gate runs the application callback and classifies what it did.
type Gate struct {
	callback Callback
}

// NewGate returns a gate backed by cb. A nil callback allows everything.
func NewGate(cb Callback) *Gate {
	return &Gate{callback: cb}
}

// Authorize invokes the callback once and returns exactly one verdict.
//
// Panics are classified too: a panic carrying an error is treated like a
// returned error, any other panic value is treated as a legacy
// reject-with-URL and stringified into the redirect target.
func (g *Gate) Authorize(ctx context.Context, profile Profile, account Account, cc CallbackContext) (v Verdict) {
	if g == nil || g.callback == nil {
		return Verdict{Outcome: OutcomeProceed}
	}

	defer func() {
		if r := recover(); r != nil {
			v = classifyPanic(r)
		}
	}()

	decision, err := g.callback(ctx, profile, account, cc)
	if err != nil {
		return rejected(err)
	}

	switch decision.kind {
	case decisionDeny:
		return Verdict{Outcome: OutcomeDeny}
	case decisionRedirect:
		return Verdict{Outcome: OutcomeRedirect, Target: decision.target}
	case decisionLegacyReject:
		return Verdict{Outcome: OutcomeLegacyRejected, Target: decision.target}
	default:
		return Verdict{Outcome: OutcomeProceed}
	}
}

func classifyPanic(r any) Verdict {
	switch val := r.(type) {
	case error:
		return rejected(val)
	case string:
		return Verdict{Outcome: OutcomeLegacyRejected, Target: val}
	default:
		return Verdict{Outcome: OutcomeLegacyRejected, Target: fmt.Sprint(val)}
	}
}

// rejected stringifies err while still under the gate's control, so a
// broken Error method (a typed nil pointer, say) cannot escape later.
func rejected(err error) (v Verdict) {
	v = Verdict{Outcome: OutcomeRejected, Err: err, Message: CodeAccessDenied}
	defer func() {
		if r := recover(); r != nil {
			v.Message = CodeAccessDenied
		}
	}()
	v.Message = err.Error()
	return v
}
