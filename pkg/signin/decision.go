package signin

type decisionKind uint8

const (
	decisionAllow decisionKind = iota
	decisionDeny
	decisionRedirect
	decisionLegacyReject
)

// Decision is what a sign-in callback answers. The zero value allows the
// sign-in to proceed.
type Decision struct {
	kind   decisionKind
	target string
}

// Allow lets the sign-in continue.
func Allow() Decision { return Decision{kind: decisionAllow} }

// Deny stops the sign-in and sends the user to the AccessDenied error page.
func Deny() Decision { return Decision{kind: decisionDeny} }

// Bool maps a plain yes/no answer onto Allow or Deny.
func Bool(ok bool) Decision {
	if ok {
		return Allow()
	}
	return Deny()
}

// RedirectTo stops the sign-in and sends the user to url. The value is used
// verbatim; the callback owns its validation.
func RedirectTo(url string) Decision {
	return Decision{kind: decisionRedirect, target: url}
}

// RejectRedirect rejects the sign-in and redirects to url.
//
// Deprecated: return an error from the callback instead; the error message
// is forwarded to the error page. Rejections built with RejectRedirect are
// logged with the SIGNIN_CALLBACK_REJECT_REDIRECT tag and will be removed.
func RejectRedirect(url string) Decision {
	return Decision{kind: decisionLegacyReject, target: url}
}

// Outcome classifies a callback result.
type Outcome uint8

const (
	// OutcomeProceed continues to email dispatch.
	OutcomeProceed Outcome = iota
	// OutcomeDeny redirects to the AccessDenied error page.
	OutcomeDeny
	// OutcomeRedirect redirects to the target chosen by the callback.
	OutcomeRedirect
	// OutcomeRejected carries the error the callback failed with.
	OutcomeRejected
	// OutcomeLegacyRejected carries a redirect target raised through the
	// deprecated reject-with-URL contract.
	OutcomeLegacyRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProceed:
		return "proceed"
	case OutcomeDeny:
		return "deny"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeRejected:
		return "rejected"
	case OutcomeLegacyRejected:
		return "legacy_rejected"
	default:
		return "unknown"
	}
}

// Verdict is the gate's classification of one callback invocation.
// Target is set for OutcomeRedirect and OutcomeLegacyRejected. Err and
// Message are set for OutcomeRejected; Message is Err.Error(), or
// CodeAccessDenied when Err cannot be stringified.
type Verdict struct {
	Outcome Outcome
	Target  string
	Err     error
	Message string
}
