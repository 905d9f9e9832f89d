package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid github data")
	ErrStrategyMismatch  = goerr.New("tag does not match versioning strategy")
	ErrNoRelease         = goerr.New("no release found")
)

// TagRefAlreadyExists marks errors caused by GitHub's "Reference already
// exists" conflict so that callers can rewrite them into a domain message.
var TagRefAlreadyExists = goerr.NewTag("ref_already_exists")
